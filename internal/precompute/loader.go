package precompute

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// LoadTable reads a table written by WriteTable. Malformed lines are skipped.
// When a length appears more than once the last line wins. Entries are
// returned sorted by length.
func LoadTable(filename string) ([]Entry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open table file %s: %w", filename, err)
	}
	defer f.Close()

	byLength := make(map[int]uint64)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		e, ok := parseEntry(scanner.Text())
		if !ok {
			continue
		}
		byLength[e.Length] = e.Count
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading table file %s: %w", filename, err)
	}

	entries := make([]Entry, 0, len(byLength))
	for length, count := range byLength {
		entries = append(entries, Entry{Length: length, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Length < entries[j].Length })

	return entries, nil
}

// parseEntry parses a "length|count" line.
func parseEntry(line string) (Entry, bool) {
	parts := strings.Split(strings.TrimSpace(line), "|")
	if len(parts) != 2 {
		return Entry{}, false
	}

	length, err := strconv.Atoi(parts[0])
	if err != nil {
		return Entry{}, false
	}
	count, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return Entry{}, false
	}

	return Entry{Length: length, Count: count}, true
}
