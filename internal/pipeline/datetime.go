package pipeline

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	// Accepts hours 00-29 at the pattern level; range validation rejects 24-29.
	timeRe = regexp.MustCompile(`^[0-2]\d:[0-5]\d$`)
)

// IsValidDate reports whether s is a YYYY-MM-DD string naming a real
// calendar date. It never panics; malformed input is simply false.
func IsValidDate(s string) bool {
	if !dateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsValidTime reports whether s is a zero-padded 24-hour HH:MM string with
// the hour in [00,23] and the minute in [00,59].
func IsValidTime(s string) bool {
	if !timeRe.MatchString(s) {
		return false
	}
	hh, _, _ := strings.Cut(s, ":")
	h, err := strconv.Atoi(hh)
	if err != nil {
		return false
	}
	return h >= 0 && h <= 23
}
