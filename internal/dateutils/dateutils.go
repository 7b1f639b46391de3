// Package dateutils provides the date and month-label operations used
// throughout the application.
package dateutils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
	DateLayoutRFC3339  = time.RFC3339
)

// CommonFormats is a list of standard formats to try when parsing record dates
var CommonFormats = []string{
	DateLayoutRFC3339,
	DateLayoutISO,
	DateLayoutFull,
	DateLayoutEuropean,
	"02/01/2006",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate attempts to parse a date string using multiple common formats.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = CleanDateString(dateStr)

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// CleanDateString trims and normalizes whitespace in a date string.
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	re := regexp.MustCompile(`\s+`)
	return re.ReplaceAllString(dateStr, " ")
}

// MonthLabel formats a (year, month) pair as "January, 2025".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s, %d", month.String(), year)
}

// PreviousMonth returns the month before the given one, rolling the year back
// at the January boundary.
func PreviousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// ParseMonthLabel parses a summary-cache label into a (year, month) pair.
// Accepted forms, tried in order:
//
//	"2025-01"        numeric year-month
//	"January, 2025"  month name first
//	"2025 January"   year first
//	"2025"           bare year, resolved to January
func ParseMonthLabel(label string) (int, time.Month, error) {
	label = CleanDateString(label)
	if label == "" {
		return 0, 0, fmt.Errorf("empty month label")
	}

	// Numeric "YYYY-MM"
	if parts := strings.SplitN(label, "-", 2); len(parts) == 2 {
		year, errY := strconv.Atoi(strings.TrimSpace(parts[0]))
		monthNum, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errY == nil && errM == nil && monthNum >= 1 && monthNum <= 12 {
			return year, time.Month(monthNum), nil
		}
	}

	// "Month, YYYY" or "Month YYYY"
	cleaned := strings.ReplaceAll(label, ",", " ")
	cleaned = CleanDateString(cleaned)
	if parts := strings.Fields(cleaned); len(parts) == 2 {
		if month, ok := monthByName(parts[0]); ok {
			if year, err := strconv.Atoi(parts[1]); err == nil {
				return year, month, nil
			}
		}
		// "YYYY Month"
		if month, ok := monthByName(parts[1]); ok {
			if year, err := strconv.Atoi(parts[0]); err == nil {
				return year, month, nil
			}
		}
	}

	// Bare year resolves to January
	if year, err := strconv.Atoi(label); err == nil && year >= 1000 && year <= 9999 {
		return year, time.January, nil
	}

	return 0, 0, fmt.Errorf("unable to parse month label: %s", label)
}

// monthByName resolves a full or three-letter English month name.
func monthByName(name string) (time.Month, bool) {
	name = strings.ToLower(name)
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		if name == full || (len(name) == 3 && name == full[:3]) {
			return m, true
		}
	}
	return 0, false
}
