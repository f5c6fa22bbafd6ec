package convert

import (
	"encoding/json"
	"testing"
	"time"
)

func TestValue_Kinds(t *testing.T) {
	var empty Value
	if !empty.IsZero() || empty.IsText() || empty.IsInstant() {
		t.Error("zero Value should be empty")
	}

	text := Text("2024-10-25 12:00:00")
	if !text.IsText() || text.String() != "2024-10-25 12:00:00" {
		t.Errorf("Text() = %q, want text value", text)
	}

	at := At(utcEvent())
	if !at.IsInstant() || !at.Instant().Equal(utcEvent()) {
		t.Errorf("At() = %v, want instant value", at)
	}
	if at.String() != "2024-10-25 15:00:00+00:00" {
		t.Errorf("At().String() = %q, want %q", at.String(), "2024-10-25 15:00:00+00:00")
	}
}

func TestRecord_JSONKeys(t *testing.T) {
	rec := Record{
		OriginalTime:  At(Naive(time.Date(2024, 10, 25, 12, 0, 0, 0, time.UTC))),
		FromZone:      "Europe/London",
		ConvertedTime: "2024-10-25 20:00:00",
		ToZone:        "Asia/Tokyo",
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var fields map[string]string
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	want := map[string]string{
		"original_time":  "2024-10-25 12:00:00",
		"from_tz":        "Europe/London",
		"converted_time": "2024-10-25 20:00:00",
		"to_tz":          "Asia/Tokyo",
	}
	if len(fields) != len(want) {
		t.Errorf("record has %d keys, want %d: %v", len(fields), len(want), fields)
	}
	for key, value := range want {
		if fields[key] != value {
			t.Errorf("%s = %q, want %q", key, fields[key], value)
		}
	}
}
