package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	opts := Default()
	if opts.Threads != 50 {
		t.Errorf("Threads = %d, want 50", opts.Threads)
	}
	if opts.Timeout != 10*time.Second {
		t.Errorf("Timeout = %s, want 10s", opts.Timeout)
	}
	if opts.OutputFormat != "text" {
		t.Errorf("OutputFormat = %q, want text", opts.OutputFormat)
	}
	if opts.UserAgent == "" {
		t.Error("UserAgent should have a default")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Options {
		o := Default()
		o.Domain = "example.com"
		return o
	}

	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr string
	}{
		{"valid", func(o *Options) {}, ""},
		{"missing domain", func(o *Options) { o.Domain = "" }, "domain"},
		{"zero threads", func(o *Options) { o.Threads = 0 }, "threads"},
		{"negative threads", func(o *Options) { o.Threads = -3 }, "threads"},
		{"zero timeout", func(o *Options) { o.Timeout = 0 }, "timeout"},
		{"unknown format", func(o *Options) { o.OutputFormat = "xml" }, "format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid()
			tt.mutate(opts)
			err := opts.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
domain: example.com
threads: 25
timeout: 5s
delay: 250ms
dns_server: 9.9.9.9
format: json
sort: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	opts, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if opts.Domain != "example.com" {
		t.Errorf("Domain = %q", opts.Domain)
	}
	if opts.Threads != 25 {
		t.Errorf("Threads = %d, want 25", opts.Threads)
	}
	if opts.Timeout != 5*time.Second {
		t.Errorf("Timeout = %s, want 5s", opts.Timeout)
	}
	if opts.Delay != 250*time.Millisecond {
		t.Errorf("Delay = %s, want 250ms", opts.Delay)
	}
	if opts.DNSServer != "9.9.9.9" {
		t.Errorf("DNSServer = %q", opts.DNSServer)
	}
	if opts.OutputFormat != "json" {
		t.Errorf("OutputFormat = %q, want json", opts.OutputFormat)
	}
	if !opts.SortResults {
		t.Error("SortResults should be true")
	}
	// Unset values keep defaults.
	if opts.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q, want default", opts.UserAgent)
	}
}

func TestLoadFileBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("timeout: soon\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected an error for an unparseable duration")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
