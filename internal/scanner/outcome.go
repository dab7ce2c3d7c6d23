package scanner

import "time"

// Outcome holds the result of probing a single candidate subdomain.
// Network failures are encoded as zero values: an empty IP means DNS
// resolution failed, a zero status code means that protocol did not
// respond within the timeout. Discovered is true iff the name resolved
// and at least one protocol answered; Discovered therefore implies a
// non-empty IP.
type Outcome struct {
	Subdomain   string
	IP          string
	HTTPStatus  int
	HTTPSStatus int
	Server      string // Server response header, if any
	Title       string // HTML page title, if any
	Duration    time.Duration
	Discovered  bool
}
