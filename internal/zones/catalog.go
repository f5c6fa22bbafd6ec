// Package zones lists the IANA zone identifiers available in a zoneinfo
// tree, filtered by glob patterns.
package zones

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// DefaultRoot is the zoneinfo directory used when ZONEINFO does not name one.
const DefaultRoot = "/usr/share/zoneinfo"

var tzifMagic = []byte("TZif")

// Directories and files in a zoneinfo tree that are not zone identifiers.
var skipped = map[string]bool{
	"posix":      true,
	"right":      true,
	"posixrules": true,
	"localtime":  true,
	"Factory":    true,
}

// Catalog reads zone identifiers from a zoneinfo tree.
type Catalog struct {
	fs   afero.Fs
	root string
}

// NewCatalog creates a Catalog over root in fs.
func NewCatalog(fs afero.Fs, root string) *Catalog {
	return &Catalog{fs: fs, root: root}
}

// Root returns the ZONEINFO directory if it is set and is a directory,
// otherwise DefaultRoot.
func Root() string {
	if dir := os.Getenv("ZONEINFO"); dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return DefaultRoot
}

// List returns the sorted zone identifiers in the tree that pass the
// include/exclude filter.
func (c *Catalog) List(include, exclude []string) ([]string, error) {
	var names []string
	err := afero.Walk(c.fs, c.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == c.root {
			return nil
		}
		if skipped[info.Name()] {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() || !info.Mode().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(c.root, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if !looksLikeZone(name) {
			return nil
		}
		ok, err := c.isTZif(path)
		if err != nil {
			return err
		}
		if ok {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read zoneinfo %s: %w", c.root, err)
	}

	sort.Strings(names)
	return NewFilter(include, exclude).Apply(names), nil
}

// looksLikeZone rejects data files such as zone.tab or leapseconds.
func looksLikeZone(name string) bool {
	if name == "" || strings.Contains(name, ".") {
		return false
	}
	first := name[0]
	return first >= 'A' && first <= 'Z'
}

func (c *Catalog) isTZif(path string) (bool, error) {
	f, err := c.fs.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	header := make([]byte, len(tzifMagic))
	if _, err := io.ReadFull(f, header); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return false, nil
		}
		return false, err
	}
	return bytes.Equal(header, tzifMagic), nil
}
