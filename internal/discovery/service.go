package discovery

import (
	"portscribe/internal/logger"
)

// PreflightService filters management targets down to the ones
// worth opening sessions to
type PreflightService struct {
	scanner Scanner
	log     logger.Logger
}

// NewPreflightService returns a new instance of PreflightService
func NewPreflightService(scanner Scanner) *PreflightService {
	return &PreflightService{
		scanner: scanner,
		log:     logger.New(),
	}
}

// Filter splits targets into reachable and unreachable. Targets the
// scanner reports nothing for count as unreachable.
func (s *PreflightService) Filter(targets []string) ([]string, []string, error) {
	results, err := s.scanner.Scan()

	if err != nil {
		return nil, nil, err
	}

	reachableByIP := map[string]bool{}

	for _, result := range results {
		reachableByIP[result.IP] = result.Reachable
	}

	reachable := []string{}
	unreachable := []string{}

	for _, target := range targets {
		if reachableByIP[target] {
			reachable = append(reachable, target)
		} else {
			s.log.Warn().Str("ip", target).Msg("target unreachable, skipping")
			unreachable = append(unreachable, target)
		}
	}

	return reachable, unreachable, nil
}

// Stop stops the underlying scanner
func (s *PreflightService) Stop() {
	s.scanner.Stop()
}
