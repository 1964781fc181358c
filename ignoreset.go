package pathwalk

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cthing/pathwalk/internal/pathutil"
)

// MatchResult is the three-valued verdict an ignore set produces for a
// path: Ignore, Allow (an explicit negated match), or None (unmentioned).
type MatchResult int

const (
	MatchNone MatchResult = iota
	MatchIgnore
	MatchAllow
)

func (m MatchResult) String() string {
	switch m {
	case MatchIgnore:
		return "Ignore"
	case MatchAllow:
		return "Allow"
	default:
		return "None"
	}
}

// IgnoreSet holds a list of compiled ignore patterns rooted at a directory.
// Patterns are stored in reverse of file order so a linear scan's first hit
// corresponds to the last matching line in the source file.
type IgnoreSet struct {
	root     string
	patterns []*ignorePattern
}

// newIgnoreSetFromLines compiles an ordered list of pattern lines (as they
// would appear in an ignore file, top to bottom) into an ignore set rooted
// at root. A nil cache compiles every glob directly with no memoization.
func newIgnoreSetFromLines(root string, lines []string, caseSensitive bool, cache *GlobCache) (*IgnoreSet, error) {
	var patterns []*ignorePattern
	for _, line := range lines {
		p, err := compileIgnoreLine(line, caseSensitive, cache)
		if err != nil {
			return nil, err
		}
		if p != nil {
			patterns = append(patterns, p)
		}
	}
	reversePatterns(patterns)
	return &IgnoreSet{root: root, patterns: patterns}, nil
}

// newIgnoreSetFromFile reads and compiles an ignore file, rooted at the
// file's parent directory. A missing file is the caller's concern: this
// function returns the os error unchanged so the caller can decide whether
// a missing file is fatal or merely absent.
func newIgnoreSetFromFile(path string, caseSensitive bool, cache *GlobCache) (*IgnoreSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(content, "\n")
	return newIgnoreSetFromLines(filepath.Dir(path), lines, caseSensitive, cache)
}

func reversePatterns(p []*ignorePattern) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

// match decides the verdict for path (isDir indicates whether the entry is
// a directory). An empty ignore set always yields MatchNone.
func (s *IgnoreSet) match(path string, isDir bool) MatchResult {
	if s == nil || len(s.patterns) == 0 {
		return MatchNone
	}
	prepared := s.preparePath(path)
	for _, p := range s.patterns {
		if p.dirOnly && !isDir {
			continue
		}
		if !p.glob.Match(prepared) {
			continue
		}
		if p.negated {
			return MatchAllow
		}
		return MatchIgnore
	}
	return MatchNone
}

// preparePath strips a leading "./" from both the stored root and the
// argument, then strips the root as a segment-aligned prefix of path.
func (s *IgnoreSet) preparePath(path string) string {
	root := pathutil.StripDotSlash(s.root)
	p := pathutil.StripDotSlash(path)
	return pathutil.RemovePrefix(root, p)
}
