package convert

// Value is the time field of a batch Entry: either a wall-clock string in
// Layout or an Instant. The zero Value is empty and fails conversion.
type Value struct {
	text    string
	instant Instant
	kind    valueKind
}

type valueKind int

const (
	valueEmpty valueKind = iota
	valueText
	valueInstant
)

// Text returns a Value holding the wall-clock string s. s is validated
// against Layout only when the Value is converted.
func Text(s string) Value {
	return Value{text: s, kind: valueText}
}

// At returns a Value holding the instant i.
func At(i Instant) Value {
	return Value{instant: i, kind: valueInstant}
}

// IsText reports whether v holds a string.
func (v Value) IsText() bool { return v.kind == valueText }

// IsInstant reports whether v holds an Instant.
func (v Value) IsInstant() bool { return v.kind == valueInstant }

// IsZero reports whether v holds nothing.
func (v Value) IsZero() bool { return v.kind == valueEmpty }

// Instant returns the held instant, or the zero Instant when v holds text.
func (v Value) Instant() Instant { return v.instant }

// String returns text unchanged, or the held instant's String.
func (v Value) String() string {
	switch v.kind {
	case valueText:
		return v.text
	case valueInstant:
		return v.instant.String()
	}
	return ""
}

// MarshalText implements encoding.TextMarshaler.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Entry is one element of a batch: a time and the zone it was read in.
type Entry struct {
	Time       Value
	SourceZone string
}

// Record reports one conversion. ConvertedTime is always in Layout; the
// zone it is expressed in is carried by ToZone.
type Record struct {
	OriginalTime  Value  `json:"original_time" yaml:"original_time"`
	FromZone      string `json:"from_tz" yaml:"from_tz"`
	ConvertedTime string `json:"converted_time" yaml:"converted_time"`
	ToZone        string `json:"to_tz" yaml:"to_tz"`
}
