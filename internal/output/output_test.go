package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/3UN014/subdomain-enumeration/internal/scanner"
)

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		name string
		out  scanner.Outcome
		want string
	}{
		{"both", scanner.Outcome{HTTPStatus: 200, HTTPSStatus: 301}, "HTTP:200 | HTTPS:301"},
		{"http only", scanner.Outcome{HTTPStatus: 404}, "HTTP:404"},
		{"https only", scanner.Outcome{HTTPSStatus: 403}, "HTTPS:403"},
		{"neither", scanner.Outcome{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusLabel(&tt.out); got != tt.want {
				t.Errorf("StatusLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

// captureWriter records the calls made against it.
type captureWriter struct {
	results []string
	footer  bool
}

func (c *captureWriter) WriteHeader(string) error { return nil }
func (c *captureWriter) WriteResult(out *scanner.Outcome) error {
	c.results = append(c.results, out.Subdomain)
	return nil
}
func (c *captureWriter) WriteFooter(*scanner.Report, scanner.Statistics) error {
	c.footer = true
	return nil
}
func (c *captureWriter) Close() error { return nil }

func TestSortedWriterReplaysInOrder(t *testing.T) {
	capture := &captureWriter{}
	w := NewSortedWriter(capture)

	for _, sub := range []string{"www.example.com", "api.example.com", "mail.example.com"} {
		if err := w.WriteResult(&scanner.Outcome{Subdomain: sub}); err != nil {
			t.Fatalf("WriteResult: %v", err)
		}
	}
	if len(capture.results) != 0 {
		t.Fatal("results should be buffered until the footer")
	}

	if err := w.WriteFooter(&scanner.Report{}, scanner.Statistics{}); err != nil {
		t.Fatalf("WriteFooter: %v", err)
	}

	want := []string{"api.example.com", "mail.example.com", "www.example.com"}
	if len(capture.results) != len(want) {
		t.Fatalf("got %d results, want %d", len(capture.results), len(want))
	}
	for i := range want {
		if capture.results[i] != want[i] {
			t.Errorf("results[%d] = %q, want %q", i, capture.results[i], want[i])
		}
	}
	if !capture.footer {
		t.Error("footer was not forwarded")
	}
}

func TestTextWriterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	w, err := NewTextWriter(path, true)
	if err != nil {
		t.Fatalf("NewTextWriter: %v", err)
	}

	if err := w.WriteHeader("example.com"); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	out := &scanner.Outcome{
		Subdomain:  "www.example.com",
		IP:         "93.184.216.34",
		HTTPStatus: 200,
		Server:     "nginx",
		Discovered: true,
	}
	if err := w.WriteResult(out); err != nil {
		t.Fatalf("WriteResult: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "example.com") {
		t.Error("header missing domain")
	}
	if !strings.Contains(text, "www.example.com [HTTP:200] [93.184.216.34] (nginx)") {
		t.Errorf("result line missing, got:\n%s", text)
	}
}

func TestJSONWriterDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	w, err := NewJSONWriter(path)
	if err != nil {
		t.Fatalf("NewJSONWriter: %v", err)
	}

	if err := w.WriteHeader("example.com"); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	if err := w.WriteResult(&scanner.Outcome{
		Subdomain:   "mail.example.com",
		IP:          "93.184.216.35",
		HTTPSStatus: 200,
		Duration:    120 * time.Millisecond,
		Discovered:  true,
	}); err != nil {
		t.Fatalf("WriteResult: %v", err)
	}

	start := time.Now()
	report := &scanner.Report{Domain: "example.com", Tested: 10, Found: 1, Start: start, End: start.Add(2 * time.Second)}
	if err := w.WriteFooter(report, scanner.Summarize(report)); err != nil {
		t.Fatalf("WriteFooter: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	var doc struct {
		Domain     string `json:"domain"`
		Statistics struct {
			Tested      int     `json:"tested"`
			Discovered  int     `json:"discovered"`
			SuccessRate float64 `json:"success_rate"`
		} `json:"statistics"`
		Discovered []struct {
			Subdomain   string `json:"subdomain"`
			IP          string `json:"ip_address"`
			HTTPSStatus int    `json:"https_status"`
			DurationMS  int64  `json:"duration_ms"`
		} `json:"discovered_subdomains"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Domain != "example.com" {
		t.Errorf("domain = %q", doc.Domain)
	}
	if doc.Statistics.Tested != 10 || doc.Statistics.Discovered != 1 {
		t.Errorf("statistics = %+v", doc.Statistics)
	}
	if doc.Statistics.SuccessRate != 0.1 {
		t.Errorf("success_rate = %f, want 0.1", doc.Statistics.SuccessRate)
	}
	if len(doc.Discovered) != 1 || doc.Discovered[0].Subdomain != "mail.example.com" {
		t.Fatalf("discovered = %+v", doc.Discovered)
	}
	if doc.Discovered[0].HTTPSStatus != 200 || doc.Discovered[0].DurationMS != 120 {
		t.Errorf("entry = %+v", doc.Discovered[0])
	}
}

func TestCSVWriterRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("NewCSVWriter: %v", err)
	}

	if err := w.WriteHeader("example.com"); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	if err := w.WriteResult(&scanner.Outcome{
		Subdomain:  "www.example.com",
		IP:         "93.184.216.34",
		HTTPStatus: 200,
		Duration:   80 * time.Millisecond,
	}); err != nil {
		t.Fatalf("WriteResult: %v", err)
	}
	if err := w.WriteFooter(nil, scanner.Statistics{}); err != nil {
		t.Fatalf("WriteFooter: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), data)
	}
	if lines[0] != "subdomain,ip_address,http_status,https_status,server,duration_ms" {
		t.Errorf("header = %q", lines[0])
	}
	// The https cell stays empty when the protocol did not respond.
	if lines[1] != "www.example.com,93.184.216.34,200,,,80" {
		t.Errorf("row = %q", lines[1])
	}
}
