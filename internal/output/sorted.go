package output

import (
	"sort"

	"github.com/3UN014/subdomain-enumeration/internal/scanner"
)

// SortedWriter buffers discoveries and replays them ordered by
// subdomain name when WriteFooter is called, the way the original
// tool's summary listed them. It wraps any other Writer.
type SortedWriter struct {
	inner   Writer
	results []scanner.Outcome
}

// NewSortedWriter wraps inner and buffers results for sorted replay.
func NewSortedWriter(inner Writer) *SortedWriter {
	return &SortedWriter{inner: inner}
}

func (w *SortedWriter) WriteHeader(domain string) error {
	return w.inner.WriteHeader(domain)
}

func (w *SortedWriter) WriteResult(out *scanner.Outcome) error {
	w.results = append(w.results, *out)
	return nil
}

func (w *SortedWriter) WriteFooter(report *scanner.Report, stats scanner.Statistics) error {
	sort.Slice(w.results, func(i, j int) bool {
		return w.results[i].Subdomain < w.results[j].Subdomain
	})
	for i := range w.results {
		if err := w.inner.WriteResult(&w.results[i]); err != nil {
			return err
		}
	}
	return w.inner.WriteFooter(report, stats)
}

func (w *SortedWriter) Close() error {
	return w.inner.Close()
}
