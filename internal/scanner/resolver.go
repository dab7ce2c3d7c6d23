package scanner

import (
	"context"
	"net"
	"time"

	"github.com/miekg/dns"
	"github.com/pkg/errors"
)

// Resolver turns a hostname into a single IP address. Implementations
// must honor the context deadline.
type Resolver interface {
	LookupIP(ctx context.Context, host string) (string, error)
}

// SystemResolver resolves through the operating system's stub resolver,
// the closest equivalent to a plain gethostbyname lookup.
type SystemResolver struct {
	r net.Resolver
}

func NewSystemResolver() *SystemResolver { return &SystemResolver{} }

func (s *SystemResolver) LookupIP(ctx context.Context, host string) (string, error) {
	addrs, err := s.r.LookupIPAddr(ctx, host)
	if err != nil {
		return "", err
	}
	if len(addrs) == 0 {
		return "", errors.Errorf("no addresses for %s", host)
	}
	return addrs[0].IP.String(), nil
}

// ServerResolver queries an explicit DNS server instead of the system
// resolver. A records are preferred; AAAA is tried when no A answer
// comes back.
type ServerResolver struct {
	client *dns.Client
	addr   string
}

// NewServerResolver creates a resolver against addr, which may be a
// bare host ("9.9.9.9") or host:port.
func NewServerResolver(addr string, timeout time.Duration) *ServerResolver {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, "53")
	}
	return &ServerResolver{
		client: &dns.Client{Timeout: timeout},
		addr:   addr,
	}
}

func (s *ServerResolver) LookupIP(ctx context.Context, host string) (string, error) {
	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		msg := new(dns.Msg)
		msg.SetQuestion(dns.Fqdn(host), qtype)

		res, _, err := s.client.ExchangeContext(ctx, msg, s.addr)
		if err != nil {
			return "", errors.Wrapf(err, "querying %s", s.addr)
		}
		if res.Rcode != dns.RcodeSuccess {
			continue
		}
		for _, rr := range res.Answer {
			switch a := rr.(type) {
			case *dns.A:
				return a.A.String(), nil
			case *dns.AAAA:
				return a.AAAA.String(), nil
			}
		}
	}
	return "", errors.Errorf("no A or AAAA records for %s", host)
}
