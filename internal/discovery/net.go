package discovery

import (
	"errors"
	"net"
	"sync"
	"time"

	"portscribe/internal/logger"
)

// NetScanner is a Scanner implementation using plain tcp dials,
// for hosts without the nmap binary installed
type NetScanner struct {
	canceled  bool
	targets   []string
	port      string
	semaphore chan struct{}
	log       logger.Logger
}

// NewNetScanner returns a tcp dial scanner for the given targets
func NewNetScanner(targets []string, port string) *NetScanner {
	return &NetScanner{
		canceled:  false,
		targets:   targets,
		port:      port,
		semaphore: make(chan struct{}, 50),
		log:       logger.New(),
	}
}

// Scan dials the ssh port of every target
func (s *NetScanner) Scan() ([]*Result, error) {
	if s.canceled {
		return nil, errors.New("network scanner is in a canceled state")
	}

	s.log.Info().Msg("checking reachability of management targets")

	wg := &sync.WaitGroup{}
	mux := &sync.Mutex{}

	results := []*Result{}

	for _, ip := range s.targets {
		s.semaphore <- struct{}{} // acquire
		wg.Add(1)
		go func(i string) {
			r := s.scanIP(i)
			mux.Lock()
			results = append(results, r)
			mux.Unlock()
			<-s.semaphore // release
			wg.Done()
		}(ip)
	}

	wg.Wait()

	return results, nil
}

// Stop stops network scanning
func (s *NetScanner) Stop() {
	s.canceled = true
}

func (s *NetScanner) scanIP(ip string) *Result {
	s.log.Debug().Str("ip", ip).Msg("dialing target")

	timeOut := time.Millisecond * 500
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(ip, s.port), timeOut)

	if err != nil {
		return &Result{IP: ip, Reachable: false}
	}

	defer conn.Close()

	return &Result{IP: ip, Reachable: true}
}
