// Package timezone keeps all time handling in the application timezone.
//
// The location comes from the APP_TIMEZONE environment variable (an IANA name
// such as "UTC" or "Africa/Cairo") and is loaded once when the package is
// imported.
//
//	now := timezone.Now()
//	formatted := timezone.Format(t, "2006-01-02 15:04:05")
//	parsed, err := timezone.Parse("2006-01-02", "2026-01-01")
package timezone
