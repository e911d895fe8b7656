package dns

import (
	"context"
	"strings"
	"time"

	"github.com/miekg/dns"

	"portscribe/internal/exception"
	"portscribe/internal/logger"
)

//go:generate mockgen -destination=../mock/dns/mock_dns.go -package=mock_dns . Resolver

// Resolver resolves an ip address to a hostname
type Resolver interface {
	Reverse(ctx context.Context, ip string) (string, error)
}

// PTRResolver implements Resolver with PTR queries against a fixed
// list of nameservers
type PTRResolver struct {
	servers []string
	client  *dns.Client
	log     logger.Logger
}

// NewPTRResolver returns a resolver querying the given servers in order
func NewPTRResolver(servers []string) *PTRResolver {
	return &PTRResolver{
		servers: servers,
		client: &dns.Client{
			Timeout: 3 * time.Second,
		},
		log: logger.New(),
	}
}

// Reverse looks up the PTR record for an ip and returns the full
// hostname without the trailing dot. Returns exception.ErrHostNotFound
// when no server has an answer.
func (r *PTRResolver) Reverse(ctx context.Context, ip string) (string, error) {
	addr, err := dns.ReverseAddr(ip)

	if err != nil {
		return "", err
	}

	q := new(dns.Msg)
	q.SetQuestion(addr, dns.TypePTR)

	for _, server := range r.servers {
		in, _, err := r.client.ExchangeContext(ctx, q, withDefaultPort(server))

		if err != nil {
			r.log.Warn().
				Err(err).
				Str("server", server).
				Str("ip", ip).
				Msg("dns query failed")
			continue
		}

		if in.Rcode != dns.RcodeSuccess {
			continue
		}

		for _, rr := range in.Answer {
			if ptr, ok := rr.(*dns.PTR); ok {
				return strings.TrimSuffix(ptr.Ptr, "."), nil
			}
		}
	}

	return "", exception.ErrHostNotFound
}

// ShortName returns the first label of a hostname, the form pushed
// into interface descriptions
func ShortName(hostname string) string {
	name, _, _ := strings.Cut(hostname, ".")
	return name
}

func withDefaultPort(server string) string {
	if strings.Contains(server, ":") {
		return server
	}

	return server + ":53"
}
