package discovery

//go:generate mockgen -destination=../mock/discovery/mock_discovery.go -package=mock_discovery . Scanner

// Result represents the reachability of a single management target
type Result struct {
	IP        string
	Reachable bool
}

// Scanner interface for checking ssh reachability of targets
type Scanner interface {
	Scan() ([]*Result, error)
	Stop()
}
