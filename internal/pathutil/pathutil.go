// Package pathutil provides the small, segment-aware path helpers the
// glob/ignore engine and the global-config reader share: prefix stripping,
// tilde expansion, and separator normalisation.
package pathutil

import (
	"path/filepath"
	"strings"
)

// RemovePrefix strips prefix from path only when it matches at a segment
// boundary, and only when doing so leaves a non-empty suffix. "foo" strips
// from "foo/bar/x" to yield "bar/x", but never matches "foobar/x" since
// "foobar" doesn't have "foo" as a whole leading segment.
func RemovePrefix(prefix, path string) string {
	if prefix == "" {
		return path
	}
	if !strings.HasPrefix(path, prefix) {
		return path
	}
	rest := path[len(prefix):]
	switch {
	case rest == "":
		return path
	case rest[0] == '/':
		rest = rest[1:]
	default:
		return path
	}
	if rest == "" {
		return path
	}
	return rest
}

// StripDotSlash removes a single leading "./" segment, if present.
func StripDotSlash(path string) string {
	return strings.TrimPrefix(path, "./")
}

// ExpandTilde replaces a leading "~/" with home + "/". Any other leading
// text, including a bare "~", is returned unchanged.
func ExpandTilde(s, home string) string {
	if home == "" {
		return s
	}
	if strings.HasPrefix(s, "~/") {
		return home + s[1:]
	}
	return s
}

// ToSlash normalizes OS-native path separators to '/', the separator every
// glob and ignore pattern is written against regardless of platform. It is
// a no-op on platforms where '/' is already the native separator.
func ToSlash(path string) string {
	return filepath.ToSlash(path)
}
