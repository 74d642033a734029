// Package pathname extracts the final component of a path.
package pathname

import (
	"os"
	"strings"
)

// Base strips trailing separators from name and returns its last
// component. A name made only of separators yields "". Interior "."
// components are skipped, so "a/." yields "a".
func Base(name string) string {
	end := len(name)
	for end > 0 && os.IsPathSeparator(name[end-1]) {
		end--
	}
	name = name[:end]

	for name != "" {
		i := len(name) - 1
		for i >= 0 && !os.IsPathSeparator(name[i]) {
			i--
		}
		last := name[i+1:]
		// A leading "." of a relative path is kept; any other one is not.
		if last != "." || i < 0 {
			return last
		}
		for i >= 0 && os.IsPathSeparator(name[i]) {
			i--
		}
		name = name[:i+1]
	}
	return ""
}

// StripSuffix removes suffix from name when it is a proper suffix. A
// suffix equal to the whole name is left in place.
func StripSuffix(name, suffix string) string {
	if name == suffix {
		return name
	}
	return strings.TrimSuffix(name, suffix)
}
