package dnsenum

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type jsonSet struct {
	Records []string `json:"records"`
	Count   int      `json:"count"`
	TTL     uint32   `json:"ttl"`
}

type jsonDocument struct {
	Domain    string             `json:"domain"`
	Timestamp string             `json:"timestamp"`
	Results   map[string]jsonSet `json:"results"`
}

// Save writes the result to path, choosing the format by extension:
// .json, .csv, or plain text for everything else.
func Save(result *Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	switch {
	case strings.HasSuffix(path, ".json"):
		doc := jsonDocument{
			Domain:    result.Domain,
			Timestamp: result.When.Format(time.RFC3339),
			Results:   make(map[string]jsonSet, len(result.Sets)),
		}
		for _, set := range result.Sets {
			doc.Results[set.Type] = jsonSet{
				Records: set.Records,
				Count:   len(set.Records),
				TTL:     set.TTL,
			}
		}
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)

	case strings.HasSuffix(path, ".csv"):
		w := csv.NewWriter(f)
		if err := w.Write([]string{"record_type", "record_data", "ttl"}); err != nil {
			return err
		}
		for _, set := range result.Sets {
			for _, record := range set.Records {
				if err := w.Write([]string{set.Type, record, strconv.FormatUint(uint64(set.TTL), 10)}); err != nil {
					return err
				}
			}
		}
		w.Flush()
		return w.Error()

	default:
		fmt.Fprintf(f, "DNS enumeration results for %s\n", result.Domain)
		fmt.Fprintf(f, "Timestamp: %s\n", result.When.Format("2006-01-02 15:04:05"))
		fmt.Fprintln(f, strings.Repeat("=", 50))
		fmt.Fprintln(f)
		for _, set := range result.Sets {
			fmt.Fprintf(f, "%s records (%d found):\n", set.Type, len(set.Records))
			for _, record := range set.Records {
				fmt.Fprintf(f, "    %s\n", record)
			}
			fmt.Fprintln(f)
		}
		return nil
	}
}
