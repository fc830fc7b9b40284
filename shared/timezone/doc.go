// Package timezone holds the single business timezone every slot is evaluated in.
//
// Usage Examples:
//
//  1. Current instant in the business timezone:
//     now := timezone.Now()
//
//  2. Composing a slot instant from a civil date and an HH:MM time:
//     start, err := timezone.Parse("2006-01-02 15:04", "2025-09-08 14:00")
//
//  3. Getting the timezone location:
//     loc := timezone.GetLocation()
//
// The zone is configured via APP_TIMEZONE (default Asia/Kolkata). When the zone
// cannot be loaded the package falls back to a fixed UTC+05:30 offset rather than
// UTC, so business hours never silently shift.
package timezone
