package wordlist

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Load returns the subdomain labels to test. If path is empty, the
// embedded default list is used. Entries are lowercased, blank lines
// and # comments are skipped, and duplicates are removed while keeping
// first-seen order.
func Load(path string) ([]string, error) {
	var raw string
	if path == "" {
		raw = embeddedWordlist
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading wordlist %s", path)
		}
		raw = string(data)
	}

	lines := strings.Split(raw, "\n")
	seen := make(map[string]struct{}, len(lines))
	var words []string

	for _, line := range lines {
		line = strings.ToLower(strings.TrimSpace(line))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		words = append(words, line)
	}

	return words, nil
}
