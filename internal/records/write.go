package records

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/chrisedwards/tzconv/internal/convert"
)

var csvHeader = []string{"original_time", "from_tz", "converted_time", "to_tz"}

// Write encodes recs to w in format (text, json, yaml or csv).
func Write(w io.Writer, recs []convert.Record, format string) error {
	if recs == nil {
		recs = []convert.Record{}
	}
	switch format {
	case "text":
		return writeText(w, recs)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(recs); err != nil {
			return err
		}
		return enc.Close()
	case "csv":
		return writeCSV(w, recs)
	}
	return fmt.Errorf("unsupported output format %q", format)
}

func writeText(w io.Writer, recs []convert.Record) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ORIGINAL\tFROM\tCONVERTED\tTO")
	for _, rec := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", rec.OriginalTime, rec.FromZone, rec.ConvertedTime, rec.ToZone)
	}
	return tw.Flush()
}

func writeCSV(w io.Writer, recs []convert.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range recs {
		if err := cw.Write([]string{rec.OriginalTime.String(), rec.FromZone, rec.ConvertedTime, rec.ToZone}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
