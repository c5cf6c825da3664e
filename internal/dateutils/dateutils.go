// Package dateutils provides date parsing and normalization for the
// document readers.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date format constants used throughout the application.
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutUS       = "01/02/2006"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
)

// CommonFormats is the ordered list of layouts tried when parsing dates.
// US month-first layouts come before the day-first variants.
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutUS,
	"1/2/2006",
	"01/02/06",
	DateLayoutEuropean,
	"02-01-2006",
	"2006/01/02",
	DateLayoutFull,
	time.RFC3339,
	"Jan 2, 2006",
	"January 2, 2006",
	"2-Jan-2006",
	"2 Jan 2006",
}

var spaceRe = regexp.MustCompile(`\s+`)

// ParseDate attempts to parse a date string using the common layouts and
// returns the parsed time plus the layout that matched.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = normalize(dateStr)

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// CleanDate normalizes a raw date cell to ISO form (YYYY-MM-DD). Values
// that cannot be parsed are passed through unchanged so no row is lost to
// an exotic date format; blank values become "Unknown".
func CleanDate(raw string) string {
	s := normalize(raw)
	if s == "" || strings.EqualFold(s, "nan") {
		return "Unknown"
	}

	if t, _, err := ParseDate(s); err == nil {
		return t.Format(DateLayoutISO)
	}
	return s
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

func normalize(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	return spaceRe.ReplaceAllString(dateStr, " ")
}
