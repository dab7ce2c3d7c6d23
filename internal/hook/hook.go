package hook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/3UN014/subdomain-enumeration/internal/scanner"
)

// outcomeJSON is the JSON payload sent to the hook command via stdin.
type outcomeJSON struct {
	Subdomain   string `json:"subdomain"`
	IP          string `json:"ip_address"`
	HTTPStatus  int    `json:"http_status,omitempty"`
	HTTPSStatus int    `json:"https_status,omitempty"`
	Server      string `json:"server,omitempty"`
	Title       string `json:"title,omitempty"`
}

// Runner executes a shell command for each discovered subdomain.
type Runner struct {
	cmd   string
	quiet bool
}

// NewRunner creates a hook runner. cmd is the shell command to execute;
// {subdomain}, {ip}, {http_status} and {https_status} placeholders are
// expanded before execution.
func NewRunner(cmd string, quiet bool) *Runner {
	return &Runner{cmd: cmd, quiet: quiet}
}

// Run executes the hook command with the outcome as JSON on stdin. The
// command runs with a 30-second timeout. Errors are logged but do not
// halt the scan.
func (r *Runner) Run(out *scanner.Outcome) {
	data, err := json.Marshal(outcomeJSON{
		Subdomain:   out.Subdomain,
		IP:          out.IP,
		HTTPStatus:  out.HTTPStatus,
		HTTPSStatus: out.HTTPSStatus,
		Server:      out.Server,
		Title:       out.Title,
	})
	if err != nil {
		log.Error().Err(err).Msg("hook: marshal failed")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	expanded := r.cmd
	expanded = strings.ReplaceAll(expanded, "{subdomain}", out.Subdomain)
	expanded = strings.ReplaceAll(expanded, "{ip}", out.IP)
	expanded = strings.ReplaceAll(expanded, "{http_status}", fmt.Sprintf("%d", out.HTTPStatus))
	expanded = strings.ReplaceAll(expanded, "{https_status}", fmt.Sprintf("%d", out.HTTPSStatus))

	shell, args := shellCommand()
	cmd := exec.CommandContext(ctx, shell, append(args, expanded)...)
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stderr = os.Stderr

	output, err := cmd.Output()
	if err != nil {
		if !r.quiet {
			log.Warn().Err(err).Str("subdomain", out.Subdomain).Msg("hook failed")
		}
		return
	}
	if len(output) > 0 && !r.quiet {
		fmt.Fprintf(os.Stderr, "[hook] %s", output)
	}
}

func shellCommand() (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C"}
	}
	return "sh", []string{"-c"}
}
