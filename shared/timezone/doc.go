// Package timezone holds the application's display timezone.
//
// Domain code stores instants in UTC; this package only affects how times are
// rendered and parsed at the edges. Before Init runs (and in tests) every
// helper behaves as if the app timezone were UTC.
//
// Configure with a standard IANA name ("UTC", "Asia/Jakarta",
// "America/New_York") through the APP_TIMEZONE environment variable.
package timezone
