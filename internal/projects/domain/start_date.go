package domain

import (
	"fmt"
	"strings"
	"time"
)

// MonthLayout is the wire format of Project.StartDate.
const MonthLayout = "2006-01"

var startDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateOnly,
	"2006/01/02",
	MonthLayout,
}

// ParseStartDate reads a start date stored as text: an RFC 3339 timestamp,
// a bare date with dashes or slashes, or a YYYY-MM month. Values without a
// zone are taken as UTC.
func ParseStartDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range startDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: startDate %q", ErrInvalidInput, s)
}

// FormatMonth reduces t to its UTC calendar month.
func FormatMonth(t time.Time) string {
	return t.UTC().Format(MonthLayout)
}
