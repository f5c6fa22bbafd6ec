package convert

var std = New()

// Convert converts i to zone using the default Converter.
func Convert(i Instant, zone string) (Instant, error) {
	return std.Convert(i, zone)
}

// Localize binds i to zone using the default Converter.
func Localize(i Instant, zone string) (Instant, error) {
	return std.Localize(i, zone)
}

// ConvertMany converts i to each of targets using the default Converter.
func ConvertMany(i Instant, targets []string) ([]Record, error) {
	return std.ConvertMany(i, targets)
}

// ConvertBatch converts entries to target using the default Converter.
func ConvertBatch(entries []Entry, target string) ([]Record, error) {
	return std.ConvertBatch(entries, target)
}

// LocalizeToLocal expresses i in the host local zone using the default
// Converter. Naive instants are read as local wall-clock time.
func LocalizeToLocal(i Instant) (Instant, error) {
	return std.LocalizeToLocal(i)
}
