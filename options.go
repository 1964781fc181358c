package pathwalk

import "github.com/cthing/pathwalk/internal/pathlog"

// unboundedDepth marks maxDepth as having no descent limit.
const unboundedDepth = -1

type walkOptions struct {
	includePatterns    []string
	excludeHidden      bool
	respectIgnoreFiles bool
	followLinks        bool
	maxDepth           int
	caseSensitive      bool
	logger             pathlog.Logger
	cache              *GlobCache
}

func defaultOptions() walkOptions {
	return walkOptions{
		excludeHidden:      true,
		respectIgnoreFiles: true,
		followLinks:        false,
		maxDepth:           unboundedDepth,
		caseSensitive:      true,
		logger:             pathlog.NoopLogger{},
	}
}

// Option configures a Walker at construction time.
type Option func(*walkOptions)

// WithIncludePatterns sets the allow-listing glob patterns. If empty (the
// default), every entry not otherwise excluded is a candidate.
func WithIncludePatterns(patterns []string) Option {
	return func(o *walkOptions) { o.includePatterns = patterns }
}

// WithExcludeHidden controls whether entries the filesystem reports as
// hidden are skipped unless an include pattern explicitly allows them.
// Default true.
func WithExcludeHidden(enabled bool) Option {
	return func(o *walkOptions) { o.excludeHidden = enabled }
}

// WithRespectIgnoreFiles controls whether ancestor, local, repo-info, and
// global ignore files are honoured. Default true.
func WithRespectIgnoreFiles(enabled bool) Option {
	return func(o *walkOptions) { o.respectIgnoreFiles = enabled }
}

// WithFollowLinks controls whether the walker descends into directories
// reached through a symbolic link. Default false.
func WithFollowLinks(enabled bool) Option {
	return func(o *walkOptions) { o.followLinks = enabled }
}

// WithMaxDepth bounds descent; the start directory is depth 0. Negative
// values mean unbounded, the default.
func WithMaxDepth(depth int) Option {
	if depth < 0 {
		depth = unboundedDepth
	}
	return func(o *walkOptions) { o.maxDepth = depth }
}

// WithCaseSensitive controls glob and ignore-pattern case sensitivity,
// overriding the value normally read from core.ignoreCase in the global
// git config. Without this option, matching is case-sensitive unless
// core.ignoreCase is true.
func WithCaseSensitive(enabled bool) Option {
	return func(o *walkOptions) { o.caseSensitive = enabled }
}

// WithLogger injects a logger the walker reports the start of the walk and
// each skipped directory (with the reason) to at Debug level. Skipped files,
// emitted entries and fatal errors are not logged. The default is a no-op
// logger.
func WithLogger(logger pathlog.Logger) Option {
	return func(o *walkOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithGlobCache shares a GlobCache across Walker/Find calls so identical
// glob text is compiled once.
func WithGlobCache(cache *GlobCache) Option {
	return func(o *walkOptions) { o.cache = cache }
}
