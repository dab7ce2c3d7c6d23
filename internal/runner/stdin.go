package runner

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/3UN014/subdomain-enumeration/internal/scanner"
)

// startStdinToggle lets the user pause and resume a running scan by
// pressing Enter. It returns nil when stdin is not a terminal (piped
// input, CI), in which case the pool runs ungated.
func startStdinToggle(quiet bool) *scanner.Pauser {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}

	pauser := scanner.NewPauser()

	go func() {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			if pauser.Toggle() {
				if !quiet {
					fmt.Fprint(os.Stderr, "\r\033[K[*] Scan paused, press Enter to resume\n")
				}
			} else if !quiet {
				fmt.Fprint(os.Stderr, "\r\033[K[*] Scan resumed\n")
			}
		}
	}()

	return pauser
}
