package scanner

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/3UN014/subdomain-enumeration/internal/config"
)

// Responses larger than this are not scanned for a title.
const maxBodyBytes = 512 * 1024

// Prober performs the full check for one candidate: DNS resolution,
// an HTTP request, an HTTPS request, and server fingerprinting.
type Prober struct {
	resolver  Resolver
	client    *http.Client
	timeout   time.Duration
	userAgent string
	verbose   bool

	// Port overrides used by tests; empty means the scheme default.
	httpPort  string
	httpsPort string
}

// NewProber builds a Prober from the run options. The HTTP transport
// dials through the same resolver used for the DNS step, so a candidate
// is never resolved against two different servers within one probe.
func NewProber(opts *config.Options) *Prober {
	var resolver Resolver = NewSystemResolver()
	if opts.DNSServer != "" {
		resolver = NewServerResolver(opts.DNSServer, opts.Timeout)
	}

	ua := opts.UserAgent
	if ua == "" {
		ua = config.DefaultUserAgent
	}

	return &Prober{
		resolver: resolver,
		client: &http.Client{
			Transport: newTransport(resolver, opts.Timeout, opts.Threads),
			Timeout:   opts.Timeout,
		},
		timeout:   opts.Timeout,
		userAgent: ua,
		verbose:   opts.Verbose,
	}
}

// newTransport builds an HTTP transport that dials through resolver,
// skipping certificate verification like the original tool.
func newTransport(resolver Resolver, timeout time.Duration, threads int) *http.Transport {
	dialer := &net.Dialer{Timeout: timeout}
	return &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			host, port, err := net.SplitHostPort(addr)
			if err != nil {
				return nil, err
			}
			ip, err := resolver.LookupIP(ctx, host)
			if err != nil {
				return nil, err
			}
			return dialer.DialContext(ctx, network, net.JoinHostPort(ip, port))
		},
		MaxIdleConnsPerHost: threads,
		MaxIdleConns:        threads,
	}
}

// Probe checks a single candidate name. It never fails: every network
// error is recorded as an absent field in the returned Outcome. Each
// step is bounded by its own timeout, so a probe cannot block
// indefinitely.
func (p *Prober) Probe(ctx context.Context, subdomain string) Outcome {
	start := time.Now()
	out := Outcome{Subdomain: subdomain}

	resolveCtx, cancel := context.WithTimeout(ctx, p.timeout)
	ip, err := p.resolver.LookupIP(resolveCtx, subdomain)
	cancel()
	if err != nil {
		// A name that does not resolve cannot answer; skip the
		// HTTP checks entirely.
		if p.verbose {
			log.Debug().Str("subdomain", subdomain).Err(err).Msg("dns resolution failed")
		}
		out.Duration = time.Since(start)
		return out
	}
	out.IP = ip

	out.HTTPStatus, out.Server, out.Title = p.request(ctx, "http", subdomain)

	// HTTPS is attempted regardless of the HTTP result.
	status, server, title := p.request(ctx, "https", subdomain)
	out.HTTPSStatus = status
	if out.Server == "" {
		out.Server = server
	}
	if out.Title == "" {
		out.Title = title
	}

	out.Duration = time.Since(start)
	out.Discovered = out.HTTPStatus != 0 || out.HTTPSStatus != 0
	return out
}

// request performs a single GET against scheme://subdomain/ and returns
// the status code, Server header and page title. All failure modes
// yield zero values.
func (p *Prober) request(ctx context.Context, scheme, subdomain string) (status int, server, title string) {
	target := scheme + "://" + subdomain + "/"
	if port := p.portOverride(scheme); port != "" {
		target = scheme + "://" + net.JoinHostPort(subdomain, port) + "/"
	}

	reqCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, target, nil)
	if err != nil {
		return 0, "", ""
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		if p.verbose {
			log.Debug().Str("url", target).Err(err).Msg("request failed")
		}
		return 0, "", ""
	}
	defer resp.Body.Close()

	server = resp.Header.Get("Server")
	if doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxBodyBytes)); err == nil {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	return resp.StatusCode, server, title
}

func (p *Prober) portOverride(scheme string) string {
	if scheme == "https" {
		return p.httpsPort
	}
	return p.httpPort
}
