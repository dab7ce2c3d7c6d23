package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/3UN014/subdomain-enumeration/internal/config"
	"github.com/3UN014/subdomain-enumeration/internal/runner"
	"github.com/3UN014/subdomain-enumeration/pkg/version"
)

var (
	opts    config.Options
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:     "subenum <domain> [flags]",
	Short:   "Multi-threaded subdomain discovery over DNS and HTTP/HTTPS",
	Version: version.Version,
	Long: `subenum tests candidate names from a wordlist against DNS resolution
and HTTP/HTTPS reachability, concurrently, and reports which candidates
resolve and respond along with timing and throughput statistics.`,
	Example: `  subenum example.com
  subenum example.com -w wordlists/subdomains.txt -t 100
  subenum example.com --dns-server 9.9.9.9 --timeout 5s
  subenum example.com -o results.json --format json
  subenum example.com --on-result "notify-send {subdomain}"
  subenum dns example.com -o records.csv`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			opts.Domain = args[0]
		}
		if cfgFile != "" {
			fileOpts, err := config.LoadFile(cfgFile)
			if err != nil {
				return err
			}
			opts = *mergeFlagOverrides(cmd, &opts, fileOpts)
		}
		if opts.Domain == "" {
			_ = cmd.Help()
			fmt.Fprintln(os.Stderr)
			return fmt.Errorf("target domain required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return runner.Run(ctx, &opts)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	f := rootCmd.Flags()

	// Target
	f.StringVarP(&opts.WordlistPath, "wordlist", "w", "", "Custom wordlist path (default: built-in)")

	// Performance
	f.IntVarP(&opts.Threads, "threads", "t", 50, "Number of concurrent probes")
	f.DurationVar(&opts.Timeout, "timeout", 10*time.Second, "Timeout per DNS/HTTP operation")
	f.DurationVar(&opts.Delay, "delay", 0, "Delay between probes per thread")

	// DNS
	f.StringVar(&opts.DNSServer, "dns-server", "", "DNS server to query (default: system resolver)")

	// HTTP
	f.StringVar(&opts.UserAgent, "user-agent", "", "Custom User-Agent string")

	// Output
	f.StringVarP(&opts.OutputFile, "output", "o", "", "Output file path")
	f.StringVar(&opts.OutputFormat, "format", "text", "Output format: text, json, csv")
	f.BoolVar(&opts.SortResults, "sort", false, "Sort discoveries by subdomain instead of completion order")
	f.BoolVarP(&opts.Quiet, "quiet", "q", false, "Minimal output")
	f.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")

	// Hooks
	f.StringVar(&opts.OnResultCmd, "on-result", "", "Shell command to run for each discovery (receives JSON on stdin)")

	// Configuration
	f.StringVar(&cfgFile, "config", "", "YAML config file (flags take precedence)")

	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable verbose diagnostics")
}

// mergeFlagOverrides layers explicitly set flags over values loaded
// from a config file.
func mergeFlagOverrides(cmd *cobra.Command, flags, file *config.Options) *config.Options {
	merged := *file
	if flags.Domain != "" {
		merged.Domain = flags.Domain
	}
	f := cmd.Flags()
	if f.Changed("wordlist") {
		merged.WordlistPath = flags.WordlistPath
	}
	if f.Changed("threads") {
		merged.Threads = flags.Threads
	}
	if f.Changed("timeout") {
		merged.Timeout = flags.Timeout
	}
	if f.Changed("delay") {
		merged.Delay = flags.Delay
	}
	if f.Changed("dns-server") {
		merged.DNSServer = flags.DNSServer
	}
	if f.Changed("user-agent") {
		merged.UserAgent = flags.UserAgent
	}
	if f.Changed("output") {
		merged.OutputFile = flags.OutputFile
	}
	if f.Changed("format") {
		merged.OutputFormat = flags.OutputFormat
	}
	if f.Changed("sort") {
		merged.SortResults = flags.SortResults
	}
	if f.Changed("quiet") {
		merged.Quiet = flags.Quiet
	}
	if f.Changed("no-color") {
		merged.NoColor = flags.NoColor
	}
	if f.Changed("on-result") {
		merged.OnResultCmd = flags.OnResultCmd
	}
	if f.Changed("verbose") {
		merged.Verbose = flags.Verbose
	}
	return &merged
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
