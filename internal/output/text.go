package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/3UN014/subdomain-enumeration/internal/scanner"
)

// TextWriter writes discoveries as plain text lines plus a summary.
type TextWriter struct {
	w     io.Writer
	quiet bool
}

// NewTextWriter creates a text output writer. If outputFile is empty,
// stdout is used.
func NewTextWriter(outputFile string, quiet bool) (*TextWriter, error) {
	var w io.Writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return nil, err
		}
		w = f
	}
	return &TextWriter{w: w, quiet: quiet}, nil
}

func (t *TextWriter) WriteHeader(domain string) error {
	_, err := fmt.Fprintf(t.w, "Subdomain enumeration results for %s\n%s\n",
		domain, time.Now().Format("2006-01-02 15:04:05"))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(t.w, separator)
	return err
}

func (t *TextWriter) WriteResult(out *scanner.Outcome) error {
	line := fmt.Sprintf("%s [%s] [%s]", out.Subdomain, StatusLabel(out), out.IP)
	if out.Server != "" {
		line += fmt.Sprintf(" (%s)", out.Server)
	}
	_, err := fmt.Fprintln(t.w, line)
	return err
}

func (t *TextWriter) WriteFooter(report *scanner.Report, stats scanner.Statistics) error {
	if t.quiet {
		return nil
	}
	_, err := fmt.Fprintf(os.Stderr,
		"\nTested: %d | Discovered: %d | Success rate: %.1f%% | Elapsed: %s | %.1f req/s\n",
		report.Tested,
		report.Found,
		stats.SuccessRate*100,
		stats.Elapsed.Round(time.Millisecond),
		stats.RequestsPerSec,
	)
	return err
}

func (t *TextWriter) Close() error {
	if closer, ok := t.w.(io.Closer); ok && t.w != os.Stdout {
		return closer.Close()
	}
	return nil
}

const separator = "=================================================="
