package pathwalk

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cthing/pathwalk/internal/pathutil"
)

// frame is one level of the descent stack: the ignore sets contributed by
// this directory and its ancestors below the work-tree root, most specific
// first, plus whether a repository marker has been seen on the way down.
type frame struct {
	ignores  []*IgnoreSet
	workTree bool
}

// Walker performs one hierarchical, gitignore-aware traversal of a
// directory tree. A Walker is not safe for concurrent use; two Walkers may
// run concurrently over disjoint trees.
type Walker struct {
	root    string
	absRoot string
	handler Handler
	opts    walkOptions

	includeMatcher *IgnoreSet
	baseIgnores    []*IgnoreSet
	baseWorkTree   bool
}

// NewWalker builds a Walker rooted at root, driving handler as entries are
// visited. Constructing a Walker resolves root to an absolute path, reads
// the global Git config (for core.excludesFile / core.ignoreCase) and,
// when respectIgnoreFiles is set, the ancestor ignore chain above root —
// all fatal on failure, absent-but-unreadable being treated as empty per
// section 7.
func NewWalker(root string, handler Handler, opts ...Option) (*Walker, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, newMatchError("could not resolve root path", err)
	}

	excludesFile, ignoreCase, err := globalConfigSettings()
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	o.caseSensitive = !ignoreCase
	for _, opt := range opts {
		opt(&o)
	}

	w := &Walker{root: root, absRoot: absRoot, handler: handler, opts: o}

	if len(o.includePatterns) > 0 {
		im, err := newIncludeMatcher(absRoot, o.includePatterns, o.caseSensitive, o.cache)
		if err != nil {
			return nil, newMatchError("could not compile include patterns", err)
		}
		w.includeMatcher = im
	}

	if o.respectIgnoreFiles {
		base, workTreeSeed, err := buildBaseIgnores(absRoot, excludesFile, o.caseSensitive, o.cache)
		if err != nil {
			return nil, err
		}
		w.baseIgnores = base
		w.baseWorkTree = workTreeSeed
	}

	return w, nil
}

// newIncludeMatcher compiles patterns as an allow-list: each pattern is
// compiled with its negation flipped, so a plain pattern matching a path
// yields Allow (keep) and a "!"-prefixed pattern yields Ignore (drop),
// mirroring how the original treats include patterns as negated ignore
// rules.
func newIncludeMatcher(root string, patterns []string, caseSensitive bool, cache *GlobCache) (*IgnoreSet, error) {
	flipped := make([]string, len(patterns))
	for i, p := range patterns {
		if strings.HasPrefix(p, "!") {
			flipped[i] = p[1:]
		} else {
			flipped[i] = "!" + p
		}
	}
	return newIgnoreSetFromLines(root, flipped, caseSensitive, cache)
}

// buildBaseIgnores walks the ancestors of absRoot (not absRoot itself),
// collecting each ancestor's local ignore file, stopping at (and including)
// the first ancestor carrying a repository marker, then appending the
// global ignore file if core.excludesFile named one. absRoot must already
// be absolute.
func buildBaseIgnores(absRoot, excludesFile string, caseSensitive bool, cache *GlobCache) ([]*IgnoreSet, bool, error) {
	var base []*IgnoreSet
	workTreeSeed := false

	for dir := filepath.Dir(absRoot); ; {
		if path, ok := localIgnoreFile(dir); ok {
			set, err := newIgnoreSetFromFile(path, caseSensitive, cache)
			if err != nil {
				return nil, false, newMatchError("could not parse "+path, err)
			}
			base = append(base, set)
		}
		if containsRepoMarker(dir) {
			workTreeSeed = true
			if path, ok := repoExcludeFile(dir); ok {
				set, err := newIgnoreSetFromFile(path, caseSensitive, cache)
				if err != nil {
					return nil, false, newMatchError("could not parse "+path, err)
				}
				// info/exclude anchors like a .gitignore at the repository
				// root, not at .git/info where the file itself lives.
				set.root = dir
				base = append(base, set)
			}
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if excludesFile != "" {
		if path, ok := readableFile(excludesFile); ok {
			set, err := newIgnoreSetFromFile(path, caseSensitive, cache)
			if err != nil {
				return nil, false, newMatchError("could not parse global excludes file", err)
			}
			// Git treats core.excludesFile patterns as if they lived in a
			// .gitignore at the work tree root, not at the excludes file's
			// own location, so an anchored pattern there anchors to the
			// tree being walked rather than to $HOME.
			set.root = absRoot
			base = append(base, set)
		}
	}

	return base, workTreeSeed, nil
}

// buildFrame extends parent with the ignore files contributed by dir
// itself: its own local ignore file and, if dir carries a repository
// marker, that repository's info/exclude file, marking work_tree from that
// point on. When ignore files are not respected, the frame only inherits
// parent's state.
func (w *Walker) buildFrame(parent *frame, dir string) (*frame, error) {
	f := &frame{workTree: parent.workTree}
	if !w.opts.respectIgnoreFiles {
		f.ignores = parent.ignores
		return f, nil
	}
	var pushed []*IgnoreSet

	if path, ok := localIgnoreFile(dir); ok {
		set, err := newIgnoreSetFromFile(path, w.opts.caseSensitive, w.opts.cache)
		if err != nil {
			return nil, newMatchError("could not parse "+path, err)
		}
		pushed = append(pushed, set)
	}
	if containsRepoMarker(dir) {
		f.workTree = true
		if path, ok := repoExcludeFile(dir); ok {
			set, err := newIgnoreSetFromFile(path, w.opts.caseSensitive, w.opts.cache)
			if err != nil {
				return nil, newMatchError("could not parse "+path, err)
			}
			set.root = dir
			pushed = append(pushed, set)
		}
	}

	f.ignores = append(pushed, parent.ignores...)
	return f, nil
}

// evaluateIgnores scans a frame's own ignore chain, then the base ignore
// chain, stopping at the first Ignore verdict. Any Allow verdict seen
// before that (in either chain) is remembered even if scanning continues.
func (w *Walker) evaluateIgnores(f *frame, relPath string, isDir bool) MatchResult {
	verdict := MatchNone
	for _, set := range f.ignores {
		switch set.match(relPath, isDir) {
		case MatchIgnore:
			return MatchIgnore
		case MatchAllow:
			verdict = MatchAllow
		}
	}
	for _, set := range w.baseIgnores {
		switch set.match(relPath, isDir) {
		case MatchIgnore:
			return MatchIgnore
		case MatchAllow:
			verdict = MatchAllow
		}
	}
	return verdict
}

// Run executes the walk. It returns any fatal error (parse failure, I/O
// failure enumerating a directory); a handler-requested termination is not
// an error, it simply ends the walk early.
func (w *Walker) Run() error {
	absRoot := w.absRoot

	rootFrame, err := w.buildFrame(&frame{workTree: w.baseWorkTree}, absRoot)
	if err != nil {
		return err
	}

	// The start directory is always visited: rooting the include matcher
	// and every ignore set at absRoot means "." can never itself match a
	// descendant-shaped pattern, so section 4.8's decision steps 1-3 apply
	// starting at its children, not at the root entry itself.
	w.opts.logger.Debug("walk starting at %q", absRoot)
	if vr, ok := w.handler.(verdictRecorder); ok {
		vr.recordVerdict(absRoot, true, MatchNone)
	}
	if !w.handler.Directory(absRoot, Attrs{IsDir: true}) {
		return nil
	}

	if w.opts.maxDepth != unboundedDepth && 0 >= w.opts.maxDepth {
		return nil
	}

	_, err = w.walkChildren(absRoot, absRoot, rootFrame, 0)
	return err
}

// walkChildren lists dir and visits each entry, returning true if the
// handler requested termination.
func (w *Walker) walkChildren(absRoot, dir string, f *frame, depth int) (terminate bool, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, newMatchError("could not read directory "+dir, err)
	}

	for _, entry := range entries {
		childPath := filepath.Join(dir, entry.Name())
		isSymlink := entry.Type()&fs.ModeSymlink != 0
		isDir := entry.IsDir()

		if isSymlink {
			info, statErr := os.Stat(childPath)
			isDir = statErr == nil && info.IsDir()
			if isDir && !w.opts.followLinks {
				term, err := w.visitFile(absRoot, childPath, entry.Name(), f, true)
				if err != nil || term {
					return term, err
				}
				continue
			}
		}

		if isDir {
			term, err := w.visitDirectory(absRoot, childPath, entry.Name(), f, depth+1)
			if err != nil || term {
				return term, err
			}
			continue
		}

		term, err := w.visitFile(absRoot, childPath, entry.Name(), f, isSymlink)
		if err != nil || term {
			return term, err
		}
	}

	return false, nil
}

// visitDirectory implements the pre-visit protocol for one subdirectory.
func (w *Walker) visitDirectory(absRoot, dir, name string, parent *frame, depth int) (terminate bool, err error) {
	relPath, err := relSlash(absRoot, dir)
	if err != nil {
		return false, err
	}
	matchPath := pathutil.ToSlash(dir)
	hidden := isHidden(dir, name)
	attrs := Attrs{IsDir: true, IsHidden: hidden}

	childFrame, err := w.buildFrame(parent, dir)
	if err != nil {
		return false, err
	}

	allowed := false
	verdict := MatchNone
	report := w.includeMatcher == nil
	if w.includeMatcher != nil {
		switch w.includeMatcher.match(matchPath, true) {
		case MatchIgnore:
			w.opts.logger.Debug("skipping directory %q: excluded by include pattern", relPath)
			return false, nil
		case MatchAllow:
			allowed = true
			report = true
			verdict = MatchAllow
		}
	}

	if childFrame.workTree {
		switch w.evaluateIgnores(childFrame, matchPath, true) {
		case MatchIgnore:
			w.opts.logger.Debug("skipping directory %q: ignored", relPath)
			return false, nil
		case MatchAllow:
			allowed = true
		}
	}

	if hidden && w.opts.excludeHidden && !allowed {
		w.opts.logger.Debug("skipping directory %q: hidden", relPath)
		return false, nil
	}

	// A directory is only reported to the handler when there is no include
	// matcher, or the directory itself matched an include pattern: with
	// patterns in play, an ordinary directory that doesn't itself match one
	// is still descended into (see the MatchIgnore check above) but isn't,
	// on its own, a result.
	if report {
		if vr, ok := w.handler.(verdictRecorder); ok {
			vr.recordVerdict(dir, true, verdict)
		}
		if !w.handler.Directory(dir, attrs) {
			return true, nil
		}
	}

	if w.opts.maxDepth != unboundedDepth && depth >= w.opts.maxDepth {
		return false, nil
	}

	return w.walkChildren(absRoot, dir, childFrame, depth)
}

// visitFile implements the file-visit protocol. isSymlink is true both for
// ordinary symlinked files and for symlinked directories that follow_links
// declined to descend into (the latter treated as a leaf).
func (w *Walker) visitFile(absRoot, path, name string, f *frame, isSymlink bool) (terminate bool, err error) {
	matchPath := pathutil.ToSlash(path)
	hidden := isHidden(path, name)
	attrs := Attrs{IsDir: false, IsHidden: hidden, IsSymlink: isSymlink}

	verdict := MatchNone
	if w.includeMatcher != nil {
		if w.includeMatcher.match(matchPath, false) != MatchAllow {
			return false, nil
		}
		verdict = MatchAllow
	}

	allowed := verdict == MatchAllow
	if f.workTree {
		switch w.evaluateIgnores(f, matchPath, false) {
		case MatchIgnore:
			return false, nil
		case MatchAllow:
			allowed = true
			verdict = MatchAllow
		}
	}

	if hidden && w.opts.excludeHidden && !allowed {
		return false, nil
	}

	if vr, ok := w.handler.(verdictRecorder); ok {
		vr.recordVerdict(path, false, verdict)
	}
	if !w.handler.File(path, attrs) {
		return true, nil
	}
	return false, nil
}

// relSlash computes path relative to root and normalizes it to '/', the
// separator every compiled glob is written against.
func relSlash(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", newMatchError("could not compute relative path for "+path, err)
	}
	return pathutil.ToSlash(rel), nil
}
