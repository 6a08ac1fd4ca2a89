package precompute

import (
	"fmt"
	"os"
	"strings"
)

// WriteTable writes entries to a plain text file, one "length|count" pair per
// line.
func WriteTable(entries []Entry, outputPath string) error {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%d|%d\n", e.Length, e.Count)
	}

	if err := os.WriteFile(outputPath, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write table file: %w", err)
	}

	return nil
}
