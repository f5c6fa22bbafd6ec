package convert

import (
	"fmt"
	"time"

	"go.uber.org/multierr"
)

// ErrorPolicy controls how batch operations react to a failing element.
type ErrorPolicy int

const (
	// AbortOnError stops at the first failing element and returns no records.
	AbortOnError ErrorPolicy = iota
	// CollectErrors converts every element it can and returns the records
	// produced alongside all element errors combined.
	CollectErrors
)

// ParseErrorPolicy maps "abort" and "collect" to an ErrorPolicy.
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch s {
	case "", "abort":
		return AbortOnError, nil
	case "collect":
		return CollectErrors, nil
	}
	return AbortOnError, fmt.Errorf("invalid error policy %q: want abort or collect", s)
}

func (p ErrorPolicy) String() string {
	if p == CollectErrors {
		return "collect"
	}
	return "abort"
}

// NaivePolicy controls how LocalizeToLocal treats naive instants.
type NaivePolicy int

const (
	// NaiveAssumeLocal reads a naive wall clock as host local time.
	NaiveAssumeLocal NaivePolicy = iota
	// NaiveReject fails with ErrInvalidInput, like the other operations.
	NaiveReject
)

// Converter converts instants between zones. It is immutable once built
// and safe for concurrent use.
type Converter struct {
	zones   Zones
	local   func() *time.Location
	onError ErrorPolicy
	naive   NaivePolicy
}

// Option configures a Converter.
type Option func(*Converter)

// WithZones sets the zone database. Defaults to a new Database.
func WithZones(z Zones) Option {
	return func(c *Converter) { c.zones = z }
}

// WithLocal fixes the host local zone used by LocalizeToLocal.
func WithLocal(loc *time.Location) Option {
	return func(c *Converter) { c.local = func() *time.Location { return loc } }
}

// WithErrorPolicy sets the batch error policy. Defaults to AbortOnError.
func WithErrorPolicy(p ErrorPolicy) Option {
	return func(c *Converter) { c.onError = p }
}

// WithNaivePolicy sets the naive handling of LocalizeToLocal.
// Defaults to NaiveAssumeLocal.
func WithNaivePolicy(p NaivePolicy) Option {
	return func(c *Converter) { c.naive = p }
}

// New creates a Converter with the given options.
func New(opts ...Option) *Converter {
	c := &Converter{
		local:   func() *time.Location { return time.Local },
		onError: AbortOnError,
		naive:   NaiveAssumeLocal,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.zones == nil {
		c.zones = NewDatabase()
	}
	return c
}

// Convert returns the absolute instant of i expressed in zone. i must be aware;
// its own location is the source zone.
func (c *Converter) Convert(i Instant, zone string) (Instant, error) {
	if i.IsNaive() {
		return Instant{}, ErrInvalidInput
	}
	loc, err := c.zones.Lookup(zone)
	if err != nil {
		return Instant{}, err
	}
	return Aware(i.t.In(loc)), nil
}

// Localize binds i to zone. A naive instant keeps its wall-clock digits; an
// aware instant keeps its absolute time and takes zone's wall clock.
func (c *Converter) Localize(i Instant, zone string) (Instant, error) {
	loc, err := c.zones.Lookup(zone)
	if err != nil {
		return Instant{}, err
	}
	if i.IsNaive() {
		return Aware(wall(i.t, loc)), nil
	}
	return Aware(i.t.In(loc)), nil
}

// ConvertMany converts i to every zone in targets, in order. Duplicate
// targets produce duplicate records.
func (c *Converter) ConvertMany(i Instant, targets []string) ([]Record, error) {
	if i.IsNaive() {
		return nil, ErrInvalidInput
	}

	original := Text(i.Format())
	return c.each(len(targets), func(n int) (Record, error) {
		converted, err := c.Convert(i, targets[n])
		if err != nil {
			return Record{}, err
		}
		return Record{
			OriginalTime:  original,
			FromZone:      i.Zone(),
			ConvertedTime: converted.Format(),
			ToZone:        targets[n],
		}, nil
	})
}

// ConvertBatch converts every entry to target. Each entry is first bound to
// its declared source zone, which takes precedence over any zone the entry's
// instant already carries.
func (c *Converter) ConvertBatch(entries []Entry, target string) ([]Record, error) {
	return c.each(len(entries), func(n int) (Record, error) {
		e := entries[n]
		i, err := c.entryInstant(e)
		if err != nil {
			return Record{}, err
		}
		converted, err := c.Convert(i, target)
		if err != nil {
			return Record{}, err
		}
		return Record{
			OriginalTime:  e.Time,
			FromZone:      e.SourceZone,
			ConvertedTime: converted.Format(),
			ToZone:        target,
		}, nil
	})
}

// LocalizeToLocal returns i expressed in the host local zone. The result is
// never naive.
func (c *Converter) LocalizeToLocal(i Instant) (Instant, error) {
	loc := c.local()
	if i.IsNaive() {
		if c.naive == NaiveReject {
			return Instant{}, ErrInvalidInput
		}
		return Aware(wall(i.t, loc)), nil
	}
	return Aware(i.t.In(loc)), nil
}

func (c *Converter) entryInstant(e Entry) (Instant, error) {
	var i Instant
	switch {
	case e.Time.IsText():
		parsed, err := Parse(e.Time.text)
		if err != nil {
			return Instant{}, err
		}
		i = parsed
	case e.Time.IsInstant():
		i = e.Time.instant
	default:
		return Instant{}, fmt.Errorf("%w: empty time value", ErrInvalidFormat)
	}
	return c.Localize(i, e.SourceZone)
}

// each runs fn for indexes 0..n-1 under the converter's error policy.
func (c *Converter) each(n int, fn func(int) (Record, error)) ([]Record, error) {
	records := make([]Record, 0, n)
	var errs error
	for idx := 0; idx < n; idx++ {
		rec, err := fn(idx)
		if err != nil {
			itemErr := &ItemError{Index: idx, Err: err}
			if c.onError == AbortOnError {
				return nil, itemErr
			}
			errs = multierr.Append(errs, itemErr)
			continue
		}
		records = append(records, rec)
	}
	return records, errs
}
