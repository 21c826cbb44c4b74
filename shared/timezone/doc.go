// Package timezone pins every timestamp the service produces or parses to the
// application timezone configured through APP_TIMEZONE.
//
// Usage:
//
//	now := timezone.Now()                          // stamp createdAt
//	checkIn, err := timezone.ParseDate("2024-06-01") // booking dates
//	formatted := timezone.Format(t, time.RFC3339)
//
// Use IANA names ("UTC", "Europe/London", "America/New_York"). An unknown name
// falls back to UTC with an error log.
package timezone
