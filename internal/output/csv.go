package output

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/3UN014/subdomain-enumeration/internal/scanner"
)

// CSVWriter writes one row per discovered subdomain.
type CSVWriter struct {
	w      *csv.Writer
	closer io.Closer
}

// NewCSVWriter creates a CSV output writer. If outputFile is empty,
// stdout is used.
func NewCSVWriter(outputFile string) (*CSVWriter, error) {
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
	return &CSVWriter{w: csv.NewWriter(w), closer: closer}, nil
}

func (c *CSVWriter) WriteHeader(_ string) error {
	return c.w.Write([]string{"subdomain", "ip_address", "http_status", "https_status", "server", "duration_ms"})
}

func (c *CSVWriter) WriteResult(out *scanner.Outcome) error {
	return c.w.Write([]string{
		out.Subdomain,
		out.IP,
		formatStatus(out.HTTPStatus),
		formatStatus(out.HTTPSStatus),
		out.Server,
		strconv.FormatInt(out.Duration.Milliseconds(), 10),
	})
}

func (c *CSVWriter) WriteFooter(_ *scanner.Report, _ scanner.Statistics) error {
	c.w.Flush()
	return c.w.Error()
}

func (c *CSVWriter) Close() error {
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}

// formatStatus renders a status code, leaving the cell empty when the
// protocol did not respond.
func formatStatus(code int) string {
	if code == 0 {
		return ""
	}
	return strconv.Itoa(code)
}
