package runner

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/3UN014/subdomain-enumeration/internal/config"
	"github.com/3UN014/subdomain-enumeration/internal/hook"
	"github.com/3UN014/subdomain-enumeration/internal/output"
	"github.com/3UN014/subdomain-enumeration/internal/scanner"
	"github.com/3UN014/subdomain-enumeration/internal/wordlist"
	"github.com/3UN014/subdomain-enumeration/pkg/version"
)

// Scan is the integration point for external callers. It validates
// opts, builds the candidate set from words, drives the worker pool
// with a fresh aggregator, and returns the finalized report. onResult,
// when non-nil, is invoked once per completed probe after the outcome
// has been recorded; it may be called concurrently from multiple
// workers.
func Scan(ctx context.Context, opts *config.Options, words []string, onResult func(*scanner.Outcome)) (*scanner.Report, error) {
	prober := scanner.NewProber(opts)
	return scan(ctx, opts, words, prober.Probe, onResult, nil)
}

func scan(
	ctx context.Context,
	opts *config.Options,
	words []string,
	probe func(context.Context, string) scanner.Outcome,
	onResult func(*scanner.Outcome),
	pauser *scanner.Pauser,
) (*scanner.Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	candidates := buildCandidates(opts.Domain, words)
	if len(candidates) == 0 {
		return nil, errors.New("wordlist is empty")
	}

	agg := scanner.NewAggregator(opts.Domain)
	record := func(out scanner.Outcome) {
		agg.Record(out)
		if onResult != nil {
			onResult(&out)
		}
	}

	scanner.RunPool(ctx, probe, candidates, scanner.PoolConfig{
		Workers: opts.Threads,
		Delay:   opts.Delay,
		Pauser:  pauser,
	}, record)

	return agg.Finalize(), nil
}

// buildCandidates combines each wordlist entry with the target domain,
// lowercasing and deduplicating. Order follows the wordlist; probe
// completion order will not.
func buildCandidates(domain string, words []string) []string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	seen := make(map[string]struct{}, len(words))
	candidates := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		name := w + "." + domain
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		candidates = append(candidates, name)
	}
	return candidates
}

// Run executes the full CLI pipeline: wordlist loading, banner, live
// progress, the scan itself, and report writing. An interrupted run
// still writes whatever completed, matching the original tool's
// behavior on Ctrl+C.
func Run(ctx context.Context, opts *config.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	words, err := wordlist.Load(opts.WordlistPath)
	if err != nil {
		return errors.Wrap(err, "loading wordlist")
	}

	candidates := buildCandidates(opts.Domain, words)
	if len(candidates) == 0 {
		return errors.New("wordlist is empty")
	}

	if !opts.Quiet {
		printBanner(opts, len(candidates))
	}

	out, err := createWriter(opts)
	if err != nil {
		return errors.Wrap(err, "creating output writer")
	}
	defer out.Close()
	if err := out.WriteHeader(opts.Domain); err != nil {
		return err
	}

	var hookRunner *hook.Runner
	if opts.OnResultCmd != "" {
		hookRunner = hook.NewRunner(opts.OnResultCmd, opts.Quiet)
	}

	console := output.NewConsole(os.Stderr, opts.Quiet, opts.NoColor)
	progress := output.NewProgress(len(candidates), opts.Quiet)
	progress.Start()

	pauser := startStdinToggle(opts.Quiet)

	prober := scanner.NewProber(opts)
	report, err := scan(ctx, opts, words, prober.Probe, func(res *scanner.Outcome) {
		progress.Increment()
		if !res.Discovered {
			return
		}
		progress.IncrementFound()
		progress.ClearLine()
		console.Found(res)
		progress.Redraw()
		if hookRunner != nil {
			hookRunner.Run(res)
		}
	}, pauser)
	progress.Stop()
	if err != nil {
		return err
	}

	stats := scanner.Summarize(report)
	for i := range report.Discovered {
		if err := out.WriteResult(&report.Discovered[i]); err != nil {
			return err
		}
	}
	if err := out.WriteFooter(report, stats); err != nil {
		return err
	}

	// Interrupt is surfaced after the partial report has been written.
	return ctx.Err()
}

func createWriter(opts *config.Options) (output.Writer, error) {
	var w output.Writer
	var err error
	switch opts.OutputFormat {
	case "json":
		w, err = output.NewJSONWriter(opts.OutputFile)
	case "csv":
		w, err = output.NewCSVWriter(opts.OutputFile)
	default:
		w, err = output.NewTextWriter(opts.OutputFile, opts.Quiet)
	}
	if err != nil {
		return nil, err
	}
	if opts.SortResults {
		w = output.NewSortedWriter(w)
	}
	return w, nil
}

func printBanner(opts *config.Options, candidateCount int) {
	banner := color.New(color.FgCyan)
	dim := color.New(color.Faint)
	if opts.NoColor {
		banner.DisableColor()
		dim.DisableColor()
	}

	banner.Fprintf(os.Stderr, `
╔══════════════════════════════════════════════╗
║         Subdomain Enumeration Tool           ║
║                 v%-8s                     ║
╚══════════════════════════════════════════════╝
`, version.Version)

	fmt.Fprintf(os.Stderr, "  Target domain: %s\n", opts.Domain)
	fmt.Fprintf(os.Stderr, "  Candidates:    %d\n", candidateCount)
	fmt.Fprintf(os.Stderr, "  Threads:       %d\n", opts.Threads)
	fmt.Fprintf(os.Stderr, "  Timeout:       %s\n", opts.Timeout)
	if opts.DNSServer != "" {
		fmt.Fprintf(os.Stderr, "  DNS server:    %s\n", opts.DNSServer)
	}
	fmt.Fprintf(os.Stderr, "  Timestamp:     %s\n", time.Now().Format("2006-01-02 15:04:05"))
	dim.Fprintln(os.Stderr, strings.Repeat("-", 60))
}
