package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/3UN014/subdomain-enumeration/internal/scanner"
)

type jsonEntry struct {
	Subdomain   string `json:"subdomain"`
	IP          string `json:"ip_address"`
	HTTPStatus  int    `json:"http_status,omitempty"`
	HTTPSStatus int    `json:"https_status,omitempty"`
	Server      string `json:"server,omitempty"`
	Title       string `json:"title,omitempty"`
	DurationMS  int64  `json:"duration_ms"`
}

type jsonStats struct {
	Tested         int     `json:"tested"`
	Discovered     int     `json:"discovered"`
	SuccessRate    float64 `json:"success_rate"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	RequestsPerSec float64 `json:"requests_per_second"`
}

type jsonDocument struct {
	Domain     string      `json:"domain"`
	Timestamp  string      `json:"timestamp"`
	Statistics jsonStats   `json:"statistics"`
	Discovered []jsonEntry `json:"discovered_subdomains"`
}

// JSONWriter buffers discoveries and emits one JSON document with the
// domain, the run statistics and the discovered subdomains.
type JSONWriter struct {
	w       io.Writer
	closer  io.Closer
	domain  string
	entries []jsonEntry
}

// NewJSONWriter creates a JSON output writer. If outputFile is empty,
// stdout is used.
func NewJSONWriter(outputFile string) (*JSONWriter, error) {
	var w io.Writer = os.Stdout
	var closer io.Closer
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return nil, err
		}
		w = f
		closer = f
	}
	return &JSONWriter{w: w, closer: closer}, nil
}

func (j *JSONWriter) WriteHeader(domain string) error {
	j.domain = domain
	return nil
}

func (j *JSONWriter) WriteResult(out *scanner.Outcome) error {
	j.entries = append(j.entries, jsonEntry{
		Subdomain:   out.Subdomain,
		IP:          out.IP,
		HTTPStatus:  out.HTTPStatus,
		HTTPSStatus: out.HTTPSStatus,
		Server:      out.Server,
		Title:       out.Title,
		DurationMS:  out.Duration.Milliseconds(),
	})
	return nil
}

func (j *JSONWriter) WriteFooter(report *scanner.Report, stats scanner.Statistics) error {
	doc := jsonDocument{
		Domain:    j.domain,
		Timestamp: report.End.Format(time.RFC3339),
		Statistics: jsonStats{
			Tested:         report.Tested,
			Discovered:     report.Found,
			SuccessRate:    stats.SuccessRate,
			ElapsedSeconds: stats.Elapsed.Seconds(),
			RequestsPerSec: stats.RequestsPerSec,
		},
		Discovered: j.entries,
	}
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func (j *JSONWriter) Close() error {
	if j.closer != nil {
		return j.closer.Close()
	}
	return nil
}
