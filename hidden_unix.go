//go:build !windows

package pathwalk

import "strings"

// isHidden reports whether name (the base name of an entry) is hidden by
// Unix convention: a leading dot.
func isHidden(_, name string) bool {
	return strings.HasPrefix(name, ".")
}
