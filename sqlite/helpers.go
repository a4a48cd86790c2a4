package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// joinSeeds flattens a seed list into a single TEXT column value. URLs
// cannot contain raw newlines, so the separator is unambiguous.
func joinSeeds(seeds []string) string {
	return strings.Join(seeds, "\n")
}

// splitSeeds reverses joinSeeds.
func splitSeeds(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, "\n")
}
