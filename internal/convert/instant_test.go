package convert

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"
)

func TestParse_Valid(t *testing.T) {
	i, err := Parse("2024-10-25 12:00:00")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !i.IsNaive() {
		t.Error("Parse() should return a naive instant")
	}
	if i.Format() != "2024-10-25 12:00:00" {
		t.Errorf("Format() = %q, want %q", i.Format(), "2024-10-25 12:00:00")
	}
	if i.Zone() != "" {
		t.Errorf("Zone() = %q, want empty for naive instant", i.Zone())
	}
	if i.Location() != nil {
		t.Errorf("Location() = %v, want nil for naive instant", i.Location())
	}
}

func TestParse_InvalidFormat(t *testing.T) {
	testCases := []struct {
		name  string
		value string
	}{
		{"empty string", ""},
		{"ISO separator", "2024-10-25T12:00:00"},
		{"missing seconds", "2024-10-25 12:00"},
		{"unpadded month", "2024-1-25 12:00:00"},
		{"fractional seconds", "2024-10-25 12:00:00.5"},
		{"with offset", "2024-10-25 12:00:00+01:00"},
		{"trailing space", "2024-10-25 12:00:00 "},
		{"out of range hour", "2024-10-25 25:00:00"},
		{"not a date", "yesterday"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.value)
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidFormat", tc.value, err)
			}
		})
	}
}

func TestNaive_DropsLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("LoadLocation() error = %v", err)
	}

	i := Naive(time.Date(2024, 10, 25, 12, 0, 0, 0, tokyo))
	if !i.IsNaive() {
		t.Fatal("Naive() should return a naive instant")
	}
	if i.Format() != "2024-10-25 12:00:00" {
		t.Errorf("Format() = %q, want wall clock preserved", i.Format())
	}
}

func TestAware_Zone(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation() error = %v", err)
	}

	i := Aware(time.Date(2024, 10, 25, 11, 0, 0, 0, ny))
	if i.IsNaive() {
		t.Fatal("Aware() returned a naive instant")
	}
	if i.Zone() != "America/New_York" {
		t.Errorf("Zone() = %q, want America/New_York", i.Zone())
	}
	if i.String() != "2024-10-25 11:00:00-04:00" {
		t.Errorf("String() = %q, want %q", i.String(), "2024-10-25 11:00:00-04:00")
	}
}

func TestInstant_ZeroIsNaive(t *testing.T) {
	var i Instant
	if !i.IsNaive() {
		t.Error("zero Instant should be naive")
	}
}

func TestInstant_Equal(t *testing.T) {
	utc := Aware(time.Date(2024, 10, 25, 15, 0, 0, 0, time.UTC))
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation() error = %v", err)
	}
	sameInNY := Aware(utc.Time().In(ny))
	naive := Naive(utc.Time())

	if !utc.Equal(sameInNY) {
		t.Error("aware instants at the same absolute time should be equal")
	}
	if utc.Equal(naive) {
		t.Error("aware instant should never equal a naive instant")
	}
	if !naive.Equal(Naive(utc.Time())) {
		t.Error("naive instants with the same wall clock should be equal")
	}
}
