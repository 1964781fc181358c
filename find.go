package pathwalk

// Find builds a Walker rooted at root with the given include patterns and
// options, runs it with an internal CollectingHandler, and returns the
// matched paths in traversal order. It is the thin convenience façade
// forwarding to Walk/Walker for callers who don't need a custom Handler.
func Find(root string, patterns []string, opts ...Option) ([]string, error) {
	handler, err := collect(root, patterns, opts...)
	if err != nil {
		return nil, err
	}
	return handler.Paths(), nil
}

// FindVerdicts is Find, additionally returning the MatchResult that
// admitted each returned path.
func FindVerdicts(root string, patterns []string, opts ...Option) ([]string, []MatchResult, error) {
	handler, err := collect(root, patterns, opts...)
	if err != nil {
		return nil, nil, err
	}
	return handler.Paths(), handler.Verdicts(), nil
}

func collect(root string, patterns []string, opts ...Option) (*CollectingHandler, error) {
	handler := &CollectingHandler{}
	opts = append(opts, WithIncludePatterns(patterns))
	if err := Walk(root, handler, opts...); err != nil {
		return nil, err
	}
	return handler, nil
}

// Walk is the lower-level entry point: it builds a Walker rooted at root
// with the given options and a caller-supplied Handler, and runs it.
func Walk(root string, handler Handler, opts ...Option) error {
	w, err := NewWalker(root, handler, opts...)
	if err != nil {
		return err
	}
	return w.Run()
}
