package discovery

import (
	"context"
	"strconv"
	"strings"

	"github.com/Ullaakut/nmap/v3"

	"portscribe/internal/logger"
)

// NmapScanner is an implementation of the Scanner interface
type NmapScanner struct {
	ctx     context.Context
	cancel  context.CancelFunc
	scanner *nmap.Scanner
	log     logger.Logger
}

// NewNmapScanner returns a scanner probing the ssh ports of the
// given targets
func NewNmapScanner(targets []string, ports []string) (*NmapScanner, error) {
	log := logger.New()

	// Use a cancelable context so we can properly cleanup when needed
	ctxWithCancel, cancel := context.WithCancel(context.Background())

	scanner, err := nmap.NewScanner(
		ctxWithCancel,
		nmap.WithTargets(targets...),
		nmap.WithPorts(strings.Join(ports, ",")),
		nmap.WithTimingTemplate(nmap.TimingFastest),
	)

	if err != nil {
		cancel()
		return nil, err
	}

	return &NmapScanner{
		ctx:     ctxWithCancel,
		cancel:  cancel,
		log:     log,
		scanner: scanner,
	}, nil
}

// Stop stops scanning. Once called this scanner will be useless,
// a new one will need to be instantiated to continue scanning.
func (s *NmapScanner) Stop() {
	s.cancel()
}

// Scan probes targets and reports which have an open ssh port
func (s *NmapScanner) Scan() ([]*Result, error) {
	s.log.Info().Msg("checking reachability of management targets")

	result, warnings, err := s.scanner.Run()

	if warnings != nil && len(*warnings) > 0 {
		fields := map[string]interface{}{}

		for i, warning := range *warnings {
			fields[strconv.Itoa(i)] = warning
		}

		s.log.Warn().
			Fields(fields).
			Msg("encountered scan warnings")
	}

	if err != nil {
		return nil, err
	}

	results := []*Result{}

	for _, host := range result.Hosts {
		ip := ""

		if len(host.Addresses) > 0 {
			ip = host.Addresses[0].String()
		}

		if ip == "" {
			continue
		}

		reachable := false

		for _, port := range host.Ports {
			if port.Status() == nmap.Open {
				reachable = true
				break
			}
		}

		results = append(results, &Result{
			IP:        ip,
			Reachable: reachable,
		})
	}

	return results, nil
}
