package scanner

import (
	"sync"
	"time"
)

// Report is the aggregate outcome of one run. Discovered holds
// subdomains in completion order, which varies between runs since
// probes finish out of order.
type Report struct {
	Domain     string
	Discovered []Outcome
	Tested     int
	Found      int
	Start      time.Time
	End        time.Time
}

// Aggregator accumulates probe outcomes for a single run. Record is
// safe for concurrent use from the pool's workers; Finalize hands the
// report off and locks the aggregator against further records. One
// aggregator serves exactly one run.
type Aggregator struct {
	mu        sync.Mutex
	report    *Report
	finalized bool
}

// NewAggregator opens a fresh report for domain, stamping the start time.
func NewAggregator(domain string) *Aggregator {
	return &Aggregator{
		report: &Report{
			Domain: domain,
			Start:  time.Now(),
		},
	}
}

// Record adds one probe outcome to the report. Calling Record after
// Finalize is a programming error and panics.
func (a *Aggregator) Record(out Outcome) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.finalized {
		panic("scanner: Record called after Finalize")
	}
	a.report.Tested++
	if out.Discovered {
		a.report.Discovered = append(a.report.Discovered, out)
		a.report.Found++
	}
}

// Finalize stamps the end time and returns the report. The aggregator
// must not be used afterwards.
func (a *Aggregator) Finalize() *Report {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.finalized {
		panic("scanner: Finalize called twice")
	}
	a.finalized = true
	a.report.End = time.Now()
	return a.report
}
