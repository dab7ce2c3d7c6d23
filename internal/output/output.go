package output

import (
	"fmt"
	"strings"

	"github.com/3UN014/subdomain-enumeration/internal/scanner"
)

// Writer is implemented by each output format.
type Writer interface {
	WriteHeader(domain string) error
	WriteResult(out *scanner.Outcome) error
	WriteFooter(report *scanner.Report, stats scanner.Statistics) error
	Close() error
}

// StatusLabel renders the responding protocols of a discovery,
// e.g. "HTTP:200 | HTTPS:301".
func StatusLabel(out *scanner.Outcome) string {
	var parts []string
	if out.HTTPStatus != 0 {
		parts = append(parts, fmt.Sprintf("HTTP:%d", out.HTTPStatus))
	}
	if out.HTTPSStatus != 0 {
		parts = append(parts, fmt.Sprintf("HTTPS:%d", out.HTTPSStatus))
	}
	return strings.Join(parts, " | ")
}
