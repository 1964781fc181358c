package pathwalk

import "sync"

// GlobCache memoizes compiled globs by pattern text and case sensitivity.
// Passing one via WithGlobCache to multiple Find/Walker calls avoids
// recompiling identical include and ignore patterns, mirroring the
// original implementation's process-wide compiled-pattern cache.
type GlobCache struct {
	m sync.Map
}

// NewGlobCache returns an empty cache ready to share across Walker/Find
// calls.
func NewGlobCache() *GlobCache {
	return &GlobCache{}
}

type globCacheKey struct {
	pattern       string
	caseSensitive bool
}

func (c *GlobCache) compile(pattern string, caseSensitive bool) (*Glob, error) {
	if c == nil {
		return compileGlob(pattern, caseSensitive)
	}
	key := globCacheKey{pattern: pattern, caseSensitive: caseSensitive}
	if v, ok := c.m.Load(key); ok {
		return v.(*Glob), nil
	}
	g, err := compileGlob(pattern, caseSensitive)
	if err != nil {
		return nil, err
	}
	actual, _ := c.m.LoadOrStore(key, g)
	return actual.(*Glob), nil
}
