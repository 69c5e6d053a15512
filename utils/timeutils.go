package utils

import (
	"time"
)

// Iso8601Now returns the current time in ISO8601 format
func Iso8601Now() string {
	return Iso8601(time.Now())
}

// Iso8601 formats t in UTC with second precision
func Iso8601(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ValidUntilFrom returns the expiry timestamp of something touched at base
func ValidUntilFrom(base time.Time, ttl time.Duration) string {
	if base.IsZero() || ttl <= 0 {
		return ""
	}
	return Iso8601(base.Add(ttl))
}
