package scanner

import "time"

// Statistics are derived from a finished report.
type Statistics struct {
	Elapsed        time.Duration
	SuccessRate    float64 // discovered / tested, in [0, 1]
	RequestsPerSec float64 // 0 when elapsed is not positive
}

// Summarize computes run statistics from a report. It is pure: calling
// it repeatedly on the same report yields the same result and never
// mutates the report.
func Summarize(r *Report) Statistics {
	stats := Statistics{Elapsed: r.End.Sub(r.Start)}
	if r.Tested > 0 {
		stats.SuccessRate = float64(r.Found) / float64(r.Tested)
	}
	if secs := stats.Elapsed.Seconds(); secs > 0 {
		stats.RequestsPerSec = float64(r.Tested) / secs
	}
	return stats
}
