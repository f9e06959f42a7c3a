package pkg

import (
	"regexp"
	"strings"
	"time"
)

var yyyymmddPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidYYYYMMDD reports whether s is a real calendar date written as YYYY-MM-DD.
// "2024-02-30" and "24-1-1" both fail; "2024-02-29" passes (leap year).
func IsValidYYYYMMDD(s string) bool {
	if !yyyymmddPattern.MatchString(s) {
		return false
	}
	// time.Parse normalizes overflowing days (Feb 30 -> Mar 1), so round-trip
	// the parsed value to catch impossible dates.
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return false
	}
	return t.Format("2006-01-02") == s
}

// IsDateInPast reports whether the YYYY-MM-DD date is today or earlier.
// The format check is a precondition: malformed input is never "in the past".
func IsDateInPast(s string) bool {
	if !IsValidYYYYMMDD(s) {
		return false
	}
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return false
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return !d.After(today)
}

// FormatToYYYYMMDD trims the input and returns it when it is already a valid
// YYYY-MM-DD string, otherwise the empty string.
func FormatToYYYYMMDD(s string) string {
	cleaned := strings.TrimSpace(s)
	if IsValidYYYYMMDD(cleaned) {
		return cleaned
	}
	return ""
}
