package pathwalk

import "sync"

// CollectingHandler is a Handler that accumulates matched paths in traversal
// order, plus the MatchResult that admitted each one. Directories are
// collected by default, alongside files, matching how the walked tree's
// entries are enumerated; set ExcludeDirectories to collect files only. It
// is mutex-guarded so it is safe to share across independently constructed
// walkers, even though any one Walker drives it single-threaded.
type CollectingHandler struct {
	// ExcludeDirectories, when set, omits directories from Paths/Verdicts,
	// collecting only files.
	ExcludeDirectories bool

	mu       sync.Mutex
	paths    []string
	verdicts []MatchResult
}

func (h *CollectingHandler) File(path string, _ Attrs) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.paths = append(h.paths, path)
	return true
}

func (h *CollectingHandler) Directory(path string, _ Attrs) bool {
	if h.ExcludeDirectories {
		return true
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.paths = append(h.paths, path)
	return true
}

// recordVerdict mirrors the ExcludeDirectories gate applied by File/Directory
// above, so Verdicts() stays aligned with Paths() element for element.
func (h *CollectingHandler) recordVerdict(_ string, isDir bool, verdict MatchResult) {
	if isDir && h.ExcludeDirectories {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.verdicts = append(h.verdicts, verdict)
}

// Paths returns the matched paths collected so far, in traversal order.
func (h *CollectingHandler) Paths() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.paths))
	copy(out, h.paths)
	return out
}

// Verdicts returns the MatchResult for each path returned by Paths, in the
// same order, distinguishing an explicit include-pattern match (Allow) from
// a path that passed only because nothing excluded it (None).
func (h *CollectingHandler) Verdicts() []MatchResult {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]MatchResult, len(h.verdicts))
	copy(out, h.verdicts)
	return out
}
