package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/chrisedwards/tzconv/internal/convert"
	"github.com/chrisedwards/tzconv/internal/records"
)

var (
	fromZone    string
	toZone      string
	collect     bool
	inputFormat string
	strictNaive bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <time>",
	Short: "Convert one time to another timezone",
	Long: `Convert one time to the timezone given by --to (default: the configured timezone).

The time must be timezone-aware: either RFC 3339 with an offset, "now", or a
"YYYY-MM-DD HH:MM:SS" wall clock together with --from.`,
	Example: `  tzconv convert 2024-10-25T15:00:00Z --to America/New_York
  tzconv convert "2024-10-25 12:00:00" --from Europe/London --to Asia/Tokyo`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

var manyCmd = &cobra.Command{
	Use:   "many <time> [zone...]",
	Short: "Convert one time to several timezones",
	Long: `Convert one timezone-aware time to every listed zone, in order.
Without zones, the configured targets are used.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMany,
}

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Convert a file of times, each with its own source zone",
	Long: `Convert every entry of a YAML, JSON or CSV file to one target zone.

Each entry has a "time" and a "from_tz". A time in "YYYY-MM-DD HH:MM:SS" is
read in from_tz; an RFC 3339 time is re-expressed in from_tz first.
Use "-" to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

var localCmd = &cobra.Command{
	Use:   "local <time>",
	Short: "Express a time in the host's local timezone",
	Long: `Express a time in the host's local timezone.

A "YYYY-MM-DD HH:MM:SS" wall clock is assumed to already be local time
unless --strict (or strict_naive in config) is set, in which case it is rejected.`,
	Args: cobra.ExactArgs(1),
	RunE: runLocal,
}

func init() {
	convertCmd.Flags().StringVar(&fromZone, "from", "", "zone of a wall-clock time")
	convertCmd.Flags().StringVar(&toZone, "to", "", "target zone (default: configured timezone)")

	manyCmd.Flags().StringVar(&fromZone, "from", "", "zone of a wall-clock time")
	manyCmd.Flags().BoolVar(&collect, "collect", false, "skip failing zones instead of aborting")

	batchCmd.Flags().StringVar(&toZone, "to", "", "target zone (default: configured timezone)")
	batchCmd.Flags().StringVar(&inputFormat, "input-format", "", "input format: yaml, json or csv (default: from file extension)")
	batchCmd.Flags().BoolVar(&collect, "collect", false, "convert every valid entry and report all failures")

	localCmd.Flags().BoolVar(&strictNaive, "strict", false, "reject wall-clock times without a zone")
}

func runConvert(cmd *cobra.Command, args []string) error {
	conv := newConverter()
	in, err := parseInstant(conv, args[0], fromZone)
	if err != nil {
		return err
	}
	target := targetZone()
	out, err := conv.Convert(in, target)
	if err != nil {
		return err
	}
	log.Debug("converted", "from", in.Zone(), "to", target)
	return writeInstant(cmd.OutOrStdout(), out)
}

func runMany(cmd *cobra.Command, args []string) error {
	conv := newConverter(policyOption())
	in, err := parseInstant(conv, args[0], fromZone)
	if err != nil {
		return err
	}
	targets := args[1:]
	if len(targets) == 0 {
		targets = cfg.Targets
	}
	log.Debug("converting to many zones", "from", in.Zone(), "targets", len(targets))

	recs, err := conv.ConvertMany(in, targets)
	return finishBatch(cmd.OutOrStdout(), recs, err)
}

func runBatch(cmd *cobra.Command, args []string) error {
	entries, err := readEntries(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}
	target := targetZone()
	log.Debug("converting batch", "entries", len(entries), "to", target)

	recs, err := newConverter(policyOption()).ConvertBatch(entries, target)
	return finishBatch(cmd.OutOrStdout(), recs, err)
}

func runLocal(cmd *cobra.Command, args []string) error {
	var opts []convert.Option
	if strictNaive {
		opts = append(opts, convert.WithNaivePolicy(convert.NaiveReject))
	}
	conv := newConverter(opts...)
	in, err := parseInstant(conv, args[0], "")
	if err != nil {
		return err
	}
	out, err := conv.LocalizeToLocal(in)
	if err != nil {
		return err
	}
	return writeInstant(cmd.OutOrStdout(), out)
}

// parseInstant reads "now", an RFC 3339 time, or a wall clock in
// convert.Layout. A non-empty from localizes the result into that zone.
func parseInstant(conv *convert.Converter, arg, from string) (convert.Instant, error) {
	var in convert.Instant
	switch t, err := time.Parse(time.RFC3339, arg); {
	case arg == "now":
		in = convert.Aware(time.Now())
	case err == nil:
		in = convert.Aware(t)
	default:
		in, err = convert.Parse(arg)
		if err != nil {
			return convert.Instant{}, err
		}
	}
	if from == "" {
		return in, nil
	}
	return conv.Localize(in, from)
}

func targetZone() string {
	if toZone != "" {
		return toZone
	}
	return cfg.Timezone
}

func policyOption() convert.Option {
	if collect {
		return convert.WithErrorPolicy(convert.CollectErrors)
	}
	return convert.WithErrorPolicy(cfg.ErrorPolicy())
}

func readEntries(stdin io.Reader, path string) ([]convert.Entry, error) {
	format := inputFormat
	if format == "" {
		format = records.FormatFromPath(path)
	}
	if path == "-" {
		return records.Read(stdin, format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return records.Read(f, format)
}

// finishBatch writes whatever records were produced and reports item errors.
func finishBatch(w io.Writer, recs []convert.Record, err error) error {
	if err != nil && recs == nil {
		return err
	}
	if werr := records.Write(w, recs, cfg.Format); werr != nil {
		return werr
	}
	if err != nil {
		for _, itemErr := range multierr.Errors(err) {
			log.Warn("entry failed", "error", itemErr)
		}
		return fmt.Errorf("%d of %d entries failed", len(multierr.Errors(err)), len(recs)+len(multierr.Errors(err)))
	}
	return nil
}

// instantView is the structured rendering of a single converted instant.
type instantView struct {
	Time   string `json:"time" yaml:"time"`
	Zone   string `json:"zone" yaml:"zone"`
	Offset string `json:"offset" yaml:"offset"`
	UTC    string `json:"utc" yaml:"utc"`
}

func writeInstant(w io.Writer, in convert.Instant) error {
	t := in.Time()
	view := instantView{
		Time:   in.Format(),
		Zone:   in.Zone(),
		Offset: t.Format("-07:00"),
		UTC:    t.UTC().Format(time.RFC3339),
	}

	switch cfg.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(view); err != nil {
			return err
		}
		return enc.Close()
	case "csv":
		_, err := fmt.Fprintf(w, "time,zone,offset,utc\n%s,%s,%s,%s\n", view.Time, view.Zone, view.Offset, view.UTC)
		return err
	}
	abbrev, _ := t.Zone()
	_, err := fmt.Fprintf(w, "%s %s (%s %s)\n", view.Time, view.Zone, abbrev, view.Offset)
	return err
}
