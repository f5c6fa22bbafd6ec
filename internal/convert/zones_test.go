package convert

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestDatabase_Lookup(t *testing.T) {
	db := NewDatabase()

	loc, err := db.Lookup("Europe/London")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if loc.String() != "Europe/London" {
		t.Errorf("Lookup() = %q, want Europe/London", loc.String())
	}
	if db.Len() != 1 {
		t.Errorf("Len() = %d, want 1", db.Len())
	}
}

func TestDatabase_LookupMemoises(t *testing.T) {
	calls := 0
	db := NewDatabase()
	db.load = func(name string) (*time.Location, error) {
		calls++
		return time.FixedZone(name, 0), nil
	}

	for i := 0; i < 3; i++ {
		if _, err := db.Lookup("Test/Zone"); err != nil {
			t.Fatalf("Lookup() error = %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("load called %d times, want 1", calls)
	}
}

func TestDatabase_LookupFailuresNotCached(t *testing.T) {
	calls := 0
	db := NewDatabase()
	db.load = func(name string) (*time.Location, error) {
		calls++
		return nil, errors.New("unknown time zone " + name)
	}

	for i := 0; i < 2; i++ {
		_, err := db.Lookup("Invalid/Timezone")
		if !errors.Is(err, ErrUnknownZone) {
			t.Fatalf("Lookup() error = %v, want ErrUnknownZone", err)
		}
	}
	if calls != 2 {
		t.Errorf("load called %d times, want 2", calls)
	}
	if db.Len() != 0 {
		t.Errorf("Len() = %d, want 0", db.Len())
	}
}

func TestDatabase_RejectsNonIANANames(t *testing.T) {
	db := NewDatabase()
	for _, name := range []string{"", "Local"} {
		if _, err := db.Lookup(name); !errors.Is(err, ErrUnknownZone) {
			t.Errorf("Lookup(%q) error = %v, want ErrUnknownZone", name, err)
		}
	}
}

func TestDatabase_ConcurrentLookup(t *testing.T) {
	db := NewDatabase()
	zones := []string{"America/New_York", "Europe/London", "Asia/Tokyo", "UTC"}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := db.Lookup(zones[i%len(zones)]); err != nil {
				t.Errorf("Lookup() error = %v", err)
			}
		}(i)
	}
	wg.Wait()

	if db.Len() != len(zones) {
		t.Errorf("Len() = %d, want %d", db.Len(), len(zones))
	}
}

type stubZones map[string]*time.Location

func (s stubZones) Lookup(name string) (*time.Location, error) {
	if loc, ok := s[name]; ok {
		return loc, nil
	}
	return nil, ErrUnknownZone
}

func TestConverter_WithZones(t *testing.T) {
	c := New(WithZones(stubZones{"Office": time.FixedZone("OFFICE", 3*60*60)}))

	got, err := c.Convert(utcEvent(), "Office")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if got.Format() != "2024-10-25 18:00:00" {
		t.Errorf("Format() = %q, want %q", got.Format(), "2024-10-25 18:00:00")
	}

	if _, err := c.Convert(utcEvent(), "Asia/Tokyo"); !errors.Is(err, ErrUnknownZone) {
		t.Errorf("Convert() error = %v, want ErrUnknownZone from stub database", err)
	}
}
