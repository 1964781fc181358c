//go:build windows

package pathwalk

import "golang.org/x/sys/windows"

// isHidden reports whether path carries the FILE_ATTRIBUTE_HIDDEN bit. A
// failed attribute query is treated as not hidden rather than propagated,
// matching the walker's general policy of falling back to "visible" when
// the host can't answer.
func isHidden(path, _ string) bool {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false
	}
	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0
}
