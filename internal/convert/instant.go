// Package convert converts naive and timezone-aware datetimes between
// IANA timezones, one at a time or in batches.
package convert

import (
	"fmt"
	"time"
)

// Layout is the fixed wall-clock format accepted by Parse and used for
// every converted time in a Record.
const Layout = "2006-01-02 15:04:05"

// offsetLayout renders an aware instant with its UTC offset.
const offsetLayout = Layout + "-07:00"

// Instant is a point in time that is either naive (wall-clock digits only)
// or aware (bound to a location). The zero Instant is naive.
type Instant struct {
	t     time.Time
	aware bool
}

// Aware returns an aware Instant for t. Its source zone is t.Location().
func Aware(t time.Time) Instant {
	return Instant{t: t, aware: true}
}

// Naive returns a naive Instant holding t's wall-clock digits.
// The location of t is discarded.
func Naive(t time.Time) Instant {
	return Instant{t: wall(t, time.UTC)}
}

// Parse parses s strictly against Layout and returns a naive Instant.
// Fractional seconds are rejected.
func Parse(s string) (Instant, error) {
	t, err := time.Parse(Layout, s)
	if err != nil || t.Format(Layout) != s {
		return Instant{}, fmt.Errorf("%w: %q does not match %q", ErrInvalidFormat, s, "YYYY-MM-DD HH:MM:SS")
	}
	return Instant{t: t}, nil
}

// IsNaive reports whether the instant has no zone information.
func (i Instant) IsNaive() bool {
	return !i.aware
}

// Time returns the underlying time. For a naive instant the wall-clock
// digits are returned in UTC and do not denote a real point in time.
func (i Instant) Time() time.Time {
	return i.t
}

// Location returns the instant's location, or nil when naive.
func (i Instant) Location() *time.Location {
	if !i.aware {
		return nil
	}
	return i.t.Location()
}

// Zone returns the name of the instant's location, or "" when naive.
// Unnamed fixed-offset locations are reported as their offset, e.g. "-04:00".
func (i Instant) Zone() string {
	if !i.aware {
		return ""
	}
	if name := i.t.Location().String(); name != "" {
		return name
	}
	return i.t.Format("-07:00")
}

// Format renders the wall-clock reading in Layout without any offset.
func (i Instant) Format() string {
	return i.t.Format(Layout)
}

// String renders the instant in Layout, followed by the UTC offset when aware.
func (i Instant) String() string {
	if !i.aware {
		return i.t.Format(Layout)
	}
	return i.t.Format(offsetLayout)
}

// Equal reports whether two instants denote the same value. Aware instants
// are equal when they share the same absolute time; naive instants when
// their wall clocks match. A naive instant never equals an aware one.
func (i Instant) Equal(o Instant) bool {
	if i.aware != o.aware {
		return false
	}
	return i.t.Equal(o.t)
}

// wall rebuilds t's wall-clock digits in loc.
func wall(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}
