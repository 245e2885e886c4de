// Package timezone pins the application clock to the property's local timezone.
//
// Reservation calendar dates (check-in, check-out, enquiry and booking dates) and the
// YYYYMMDD stamp inside booking IDs are taken from Now, so a booking made shortly after
// midnight local time carries the local date rather than the UTC one.
//
//	now := timezone.Now()                                  // current time in the app timezone
//	stamp := timezone.Format(now, "20060102")              // booking id date stamp
//	day, err := timezone.Parse("2006-01-02", "2025-10-24") // calendar date in the app timezone
//
// The zone comes from APP_TIMEZONE (an IANA name such as "Asia/Kolkata") and falls back
// to UTC when unset or unknown. It is loaded once, when the package is imported.
package timezone
