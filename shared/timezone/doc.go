// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Basic usage after initialization:
//     now := timezone.Now()                    // Get current time in app timezone
//     appTime := timezone.ToAppTime(someTime)  // Convert any time to app timezone
//
//  2. Parsing a booking date in app timezone:
//     day, err := timezone.Parse("2006-01-02", "2026-10-20")
//
// The timezone is configured via the APP_TIMEZONE environment variable and falls back to
// Asia/Ho_Chi_Minh, where the venues operate. Use standard IANA timezone names.
package timezone
