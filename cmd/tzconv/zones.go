package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/chrisedwards/tzconv/internal/zones"
)

var (
	zoneInclude []string
	zoneExclude []string
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List IANA timezone identifiers",
	Long: `List the IANA timezone identifiers found in the zoneinfo directory
(zoneinfo_dir in config, else $ZONEINFO, else /usr/share/zoneinfo).

--include and --exclude take glob patterns such as "Europe/*"; * does not
cross "/". Exclude patterns win over include patterns.`,
	Args: cobra.NoArgs,
	RunE: runZones,
}

func init() {
	zonesCmd.Flags().StringSliceVar(&zoneInclude, "include", nil, "glob patterns of zones to list (default: config include)")
	zonesCmd.Flags().StringSliceVar(&zoneExclude, "exclude", nil, "glob patterns of zones to skip (default: config exclude)")
}

func runZones(cmd *cobra.Command, args []string) error {
	root := cfg.ZoneinfoDir
	if root == "" {
		root = zones.Root()
	}
	include, exclude := cfg.Include, cfg.Exclude
	if cmd.Flags().Changed("include") {
		include = zoneInclude
	}
	if cmd.Flags().Changed("exclude") {
		exclude = zoneExclude
	}
	log.Debug("listing zones", "root", root, "include", formatPatterns(include), "exclude", formatPatterns(exclude))

	names, err := zones.NewCatalog(afero.NewOsFs(), root).List(include, exclude)
	if err != nil {
		return err
	}
	return writeNames(cmd.OutOrStdout(), names)
}

func writeNames(w io.Writer, names []string) error {
	if names == nil {
		names = []string{}
	}
	switch cfg.Format {
	case "json":
		return json.NewEncoder(w).Encode(names)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(names); err != nil {
			return err
		}
		return enc.Close()
	case "csv":
		if _, err := fmt.Fprintln(w, "zone"); err != nil {
			return err
		}
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}
