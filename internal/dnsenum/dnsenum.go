package dnsenum

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// RecordTypes lists the queried record types, in query order.
var RecordTypes = []string{"A", "AAAA", "CNAME", "MX", "TXT", "SOA", "NS", "PTR", "SRV"}

// RecordSet holds all records of one type for the target domain.
type RecordSet struct {
	Type    string
	Records []string
	TTL     uint32
}

// Result is the full enumeration outcome for one domain.
type Result struct {
	Domain string
	Sets   []RecordSet // only types with at least one record, query order
	Total  int
	When   time.Time
}

// Enumerate queries every record type in RecordTypes against server
// ("host" or "host:port"; empty = first nameserver from resolv.conf).
// A timed-out or unanswered type is skipped; NXDOMAIN aborts since the
// domain cannot hold any records at all.
func Enumerate(ctx context.Context, domain, server string, timeout time.Duration) (*Result, error) {
	addr, err := serverAddr(server)
	if err != nil {
		return nil, err
	}

	client := &dns.Client{Timeout: timeout}
	result := &Result{Domain: domain, When: time.Now()}

	for _, rtype := range RecordTypes {
		qtype, ok := dns.StringToType[rtype]
		if !ok {
			continue
		}

		msg := new(dns.Msg)
		msg.SetQuestion(dns.Fqdn(domain), qtype)

		res, _, err := client.ExchangeContext(ctx, msg, addr)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Debug().Str("type", rtype).Err(err).Msg("query failed")
			continue
		}
		if res.Rcode == dns.RcodeNameError {
			return nil, errors.Errorf("domain %s does not exist", domain)
		}
		if res.Rcode != dns.RcodeSuccess {
			continue
		}

		set := RecordSet{Type: rtype}
		for _, rr := range res.Answer {
			if rr.Header().Rrtype != qtype {
				continue
			}
			if set.TTL == 0 {
				set.TTL = rr.Header().Ttl
			}
			set.Records = append(set.Records, recordValue(rr))
		}
		if len(set.Records) > 0 {
			result.Sets = append(result.Sets, set)
			result.Total += len(set.Records)
		}
	}

	return result, nil
}

// serverAddr normalizes the DNS server address, falling back to the
// system's configured nameserver.
func serverAddr(server string) (string, error) {
	if server == "" {
		conf, err := dns.ClientConfigFromFile("/etc/resolv.conf")
		if err != nil || len(conf.Servers) == 0 {
			return "", errors.New("no DNS server configured, use --dns-server")
		}
		return net.JoinHostPort(conf.Servers[0], conf.Port), nil
	}
	if _, _, err := net.SplitHostPort(server); err != nil {
		server = net.JoinHostPort(server, "53")
	}
	return server, nil
}

// recordValue renders the data portion of a resource record the way
// dig would, without the header columns.
func recordValue(rr dns.RR) string {
	switch v := rr.(type) {
	case *dns.A:
		return v.A.String()
	case *dns.AAAA:
		return v.AAAA.String()
	case *dns.CNAME:
		return v.Target
	case *dns.MX:
		return fmt.Sprintf("%d %s", v.Preference, v.Mx)
	case *dns.TXT:
		return strings.Join(v.Txt, " ")
	case *dns.SOA:
		return fmt.Sprintf("%s %s %d", v.Ns, v.Mbox, v.Serial)
	case *dns.NS:
		return v.Ns
	case *dns.PTR:
		return v.Ptr
	case *dns.SRV:
		return fmt.Sprintf("%d %d %d %s", v.Priority, v.Weight, v.Port, v.Target)
	default:
		return rr.String()
	}
}
