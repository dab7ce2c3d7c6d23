package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/3UN014/subdomain-enumeration/internal/scanner"
)

// Console prints live discoveries in the classic "[+] Found:" style.
type Console struct {
	w     io.Writer
	quiet bool
	found *color.Color
}

// NewConsole creates a live discovery printer writing to w.
func NewConsole(w io.Writer, quiet, noColor bool) *Console {
	found := color.New(color.FgGreen)
	if noColor {
		found.DisableColor()
	}
	return &Console{w: w, quiet: quiet, found: found}
}

// Found prints a single discovery. No-op in quiet mode.
func (c *Console) Found(out *scanner.Outcome) {
	if c.quiet {
		return
	}
	line := fmt.Sprintf("[+] Found: %s [%s] [%s]", out.Subdomain, StatusLabel(out), out.IP)
	if out.Server != "" {
		line += fmt.Sprintf(" (%s)", out.Server)
	}
	c.found.Fprintln(c.w, line)
}
