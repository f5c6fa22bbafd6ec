// Package records reads batch entries from files and writes conversion
// records in the supported output formats.
package records

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/chrisedwards/tzconv/internal/convert"
)

// row is the on-disk shape of one batch entry.
type row struct {
	Time   string `json:"time" yaml:"time"`
	FromTZ string `json:"from_tz" yaml:"from_tz"`
}

// FormatFromPath guesses the input format from a file extension.
// Unknown extensions and "-" default to yaml.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".csv":
		return "csv"
	}
	return "yaml"
}

// Read decodes batch entries in format (yaml, json or csv). A time carrying
// an RFC 3339 offset becomes an aware instant; anything else is kept as
// text and validated when converted.
func Read(r io.Reader, format string) ([]convert.Entry, error) {
	var rows []row
	var err error
	switch format {
	case "yaml", "yml":
		err = yaml.NewDecoder(r).Decode(&rows)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	case "json":
		err = json.NewDecoder(r).Decode(&rows)
	case "csv":
		rows, err = readCSV(r)
	default:
		return nil, fmt.Errorf("unsupported input format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s entries: %w", format, err)
	}

	entries := make([]convert.Entry, len(rows))
	for i, rw := range rows {
		entries[i] = convert.Entry{Time: parseValue(rw.Time), SourceZone: rw.FromTZ}
	}
	return entries, nil
}

func parseValue(s string) convert.Value {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return convert.At(convert.Aware(t))
	}
	return convert.Text(s)
}

func readCSV(r io.Reader) ([]row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	timeCol, zoneCol := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case "time":
			timeCol = i
		case "from_tz":
			zoneCol = i
		}
	}
	if timeCol < 0 || zoneCol < 0 {
		return nil, fmt.Errorf("csv header must contain time and from_tz, got %v", header)
	}

	var rows []row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row{Time: rec[timeCol], FromTZ: rec[zoneCol]})
	}
}
