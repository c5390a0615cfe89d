package clock

import (
	"time"

	"agenda/shared/timezone"
)

// Clock abstracts "now" so policy windows, token expiry and same-day cutoffs
// can be tested against a fixed instant.
type Clock interface {
	Now() time.Time
}

type appClock struct{}

// New returns a Clock backed by the application timezone.
func New() Clock {
	return appClock{}
}

func (appClock) Now() time.Time {
	return timezone.Now()
}

// Fixed is a Clock pinned to a single instant, for tests.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time {
	return f.Instant
}
