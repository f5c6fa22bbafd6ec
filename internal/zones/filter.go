package zones

import (
	"path"
	"strings"
)

// Filter applies include/exclude patterns to a list of zone names.
type Filter struct {
	include []string
	exclude []string
}

// NewFilter creates a Filter with the given include and exclude patterns.
func NewFilter(include, exclude []string) *Filter {
	return &Filter{
		include: include,
		exclude: exclude,
	}
}

// Apply filters the given zone names based on include/exclude patterns.
func (f *Filter) Apply(names []string) []string {
	return FilterZones(names, f.include, f.exclude)
}

// FilterZones returns the names that match an include pattern (or all names
// when include is empty) and match no exclude pattern. Order is preserved.
func FilterZones(names, include, exclude []string) []string {
	result := make([]string, 0, len(names))
	for _, name := range names {
		if len(include) > 0 && !MatchAny(include, name) {
			continue
		}
		if MatchAny(exclude, name) {
			continue
		}
		result = append(result, name)
	}
	return result
}

// MatchAny checks if a value matches any pattern in a list.
// Returns true if any pattern matches, false for empty pattern list.
// Short-circuits on first match.
func MatchAny(patterns []string, value string) bool {
	for _, pattern := range patterns {
		if MatchPattern(pattern, value) {
			return true
		}
	}
	return false
}

// MatchPattern matches a zone name against a glob pattern.
// * matches any sequence within one path element and ? a single character,
// so "America/*" does not match "America/Argentina/Salta".
// Matching is case-insensitive. Returns false for invalid patterns.
func MatchPattern(pattern, value string) bool {
	matched, err := path.Match(pattern, value)
	if err != nil {
		return false
	}
	if matched {
		return true
	}
	matched, _ = path.Match(strings.ToLower(pattern), strings.ToLower(value))
	return matched
}
