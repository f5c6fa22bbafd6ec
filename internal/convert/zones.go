package convert

import (
	"fmt"
	"sync"
	"time"
)

// Zones resolves IANA zone identifiers to locations.
type Zones interface {
	Lookup(name string) (*time.Location, error)
}

// Database resolves zone identifiers through the time package's IANA
// database and memoises the result.
// Thread-safe for concurrent access.
type Database struct {
	mu    sync.RWMutex
	zones map[string]*time.Location
	load  func(name string) (*time.Location, error)
}

// NewDatabase creates a Database backed by time.LoadLocation.
func NewDatabase() *Database {
	return &Database{
		zones: make(map[string]*time.Location),
		load:  time.LoadLocation,
	}
}

// Lookup returns the location for name. "" and "Local" are rejected since
// they are not IANA identifiers.
func (d *Database) Lookup(name string) (*time.Location, error) {
	if loc := d.get(name); loc != nil {
		return loc, nil
	}

	if name == "" || name == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, name)
	}
	loc, err := d.load(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnknownZone, name, err)
	}

	d.set(name, loc)
	return loc, nil
}

// Len returns the number of resolved zones held by the database.
func (d *Database) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.zones)
}

func (d *Database) get(name string) *time.Location {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.zones[name]
}

func (d *Database) set(name string, loc *time.Location) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.zones[name] = loc
}
