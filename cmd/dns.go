package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/3UN014/subdomain-enumeration/internal/dnsenum"
)

var (
	dnsServer  string
	dnsTimeout time.Duration
	dnsOutput  string
	dnsNoColor bool
)

var dnsCmd = &cobra.Command{
	Use:   "dns <domain> [flags]",
	Short: "Enumerate DNS record types for a single domain",
	Long: `Queries A, AAAA, CNAME, MX, TXT, SOA, NS, PTR and SRV records for the
target domain and reports everything found. Unlike the main scan this
performs no fan-out: it is a single-target lookup across record types.`,
	Example: `  subenum dns example.com
  subenum dns example.com --dns-server 1.1.1.1 -o records.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		domain := args[0]
		fmt.Fprintf(os.Stderr, "[*] Starting DNS enumeration for %s\n", domain)

		result, err := dnsenum.Enumerate(ctx, domain, dnsServer, dnsTimeout)
		if err != nil {
			return err
		}

		printRecords(result)

		if dnsOutput != "" {
			if err := dnsenum.Save(result, dnsOutput); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "[+] Results saved to %s\n", dnsOutput)
		}
		return nil
	},
	SilenceUsage: true,
}

func printRecords(result *dnsenum.Result) {
	found := color.New(color.FgGreen)
	if dnsNoColor {
		found.DisableColor()
	}

	for _, set := range result.Sets {
		found.Printf("[+] %s records (%d found, TTL %d):\n", set.Type, len(set.Records), set.TTL)
		for _, record := range set.Records {
			fmt.Printf("    %s\n", record)
		}
	}

	fmt.Printf("\nTotal records: %d across %d types\n", result.Total, len(result.Sets))
}

func init() {
	f := dnsCmd.Flags()
	f.StringVar(&dnsServer, "dns-server", "", "DNS server to query (default: system resolver)")
	f.DurationVar(&dnsTimeout, "timeout", 10*time.Second, "Timeout per record-type query")
	f.StringVarP(&dnsOutput, "output", "o", "", "Output file (.json, .csv, or text)")
	f.BoolVar(&dnsNoColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(dnsCmd)
}
