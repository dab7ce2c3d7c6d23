package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultUserAgent identifies the tool on outbound requests.
const DefaultUserAgent = "SubdomainEnum/2.0 (Educational Tool; +https://github.com/3UN014/subdomain-enumeration)"

// Options holds all configuration for an enumeration run.
type Options struct {
	// Target
	Domain       string
	WordlistPath string // empty = use embedded

	// Performance
	Threads int           // concurrent probes
	Timeout time.Duration // per network operation
	Delay   time.Duration // fixed delay before each probe per worker

	// DNS
	DNSServer string // "host" or "host:port"; empty = system resolver

	// HTTP
	UserAgent string

	// Output
	OutputFile   string
	OutputFormat string // "text", "json", "csv"
	SortResults  bool   // replay discoveries sorted by subdomain
	Quiet        bool
	NoColor      bool
	Verbose      bool

	// Hooks
	OnResultCmd string
}

// Default returns the options used when nothing overrides them. The
// thread count and timeout match the original tool's defaults.
func Default() *Options {
	return &Options{
		Threads:      50,
		Timeout:      10 * time.Second,
		UserAgent:    DefaultUserAgent,
		OutputFormat: "text",
	}
}

// fileOptions is the YAML shape of a config file. Durations are given
// as strings ("10s", "500ms") and parsed explicitly, since yaml.v3
// decodes time.Duration from raw nanosecond integers only.
type fileOptions struct {
	Domain      string `yaml:"domain"`
	Wordlist    string `yaml:"wordlist"`
	Threads     int    `yaml:"threads"`
	Timeout     string `yaml:"timeout"`
	Delay       string `yaml:"delay"`
	DNSServer   string `yaml:"dns_server"`
	UserAgent   string `yaml:"user_agent"`
	Output      string `yaml:"output"`
	Format      string `yaml:"format"`
	Sort        bool   `yaml:"sort"`
	Quiet       bool   `yaml:"quiet"`
	NoColor     bool   `yaml:"no_color"`
	Verbose     bool   `yaml:"verbose"`
	OnResultCmd string `yaml:"on_result"`
}

// LoadFile reads a YAML config file and applies it over the defaults.
func LoadFile(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}

	var file fileOptions
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrapf(err, "parsing config file %s", path)
	}

	opts := Default()
	if file.Domain != "" {
		opts.Domain = file.Domain
	}
	if file.Wordlist != "" {
		opts.WordlistPath = file.Wordlist
	}
	if file.Threads != 0 {
		opts.Threads = file.Threads
	}
	if file.Timeout != "" {
		d, err := time.ParseDuration(file.Timeout)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid timeout %q", file.Timeout)
		}
		opts.Timeout = d
	}
	if file.Delay != "" {
		d, err := time.ParseDuration(file.Delay)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid delay %q", file.Delay)
		}
		opts.Delay = d
	}
	if file.DNSServer != "" {
		opts.DNSServer = file.DNSServer
	}
	if file.UserAgent != "" {
		opts.UserAgent = file.UserAgent
	}
	if file.Output != "" {
		opts.OutputFile = file.Output
	}
	if file.Format != "" {
		opts.OutputFormat = file.Format
	}
	opts.SortResults = file.Sort
	opts.Quiet = file.Quiet
	opts.NoColor = file.NoColor
	opts.Verbose = file.Verbose
	opts.OnResultCmd = file.OnResultCmd

	return opts, nil
}

// Validate rejects configurations that cannot produce a meaningful scan.
// A validation failure means nothing has been dispatched yet.
func (o *Options) Validate() error {
	if o.Domain == "" {
		return errors.New("target domain is required")
	}
	if o.Threads < 1 {
		return errors.Errorf("threads must be at least 1, got %d", o.Threads)
	}
	if o.Timeout <= 0 {
		return errors.Errorf("timeout must be positive, got %s", o.Timeout)
	}
	switch o.OutputFormat {
	case "", "text", "json", "csv":
	default:
		return errors.Errorf("unknown output format %q", o.OutputFormat)
	}
	return nil
}
