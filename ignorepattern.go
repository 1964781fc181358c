package pathwalk

import "strings"

// ignorePattern is one compiled line of an ignore file: the original text
// (for equality and diagnostics), the compiled glob, and the negation /
// directory-only flags extracted during preprocessing.
type ignorePattern struct {
	original string
	glob     *Glob
	negated  bool
	dirOnly  bool
}

func (p *ignorePattern) equal(o *ignorePattern) bool {
	return p.original == o.original
}

// compileIgnoreLine turns one line of an ignore file into a pattern. A nil
// pattern with a nil error means the line was blank or a comment and
// contributes nothing. A nil cache compiles directly with no memoization.
func compileIgnoreLine(line string, caseSensitive bool, cache *GlobCache) (*ignorePattern, error) {
	trimmed := trimTrailingWhitespace(line)
	if trimmed == "" {
		return nil, nil
	}
	if strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}

	body := trimmed
	negated := false
	absolute := false
	dirOnly := false

	switch {
	case strings.HasPrefix(body, `\!`), strings.HasPrefix(body, `\#`):
		body = body[1:]
		absolute = strings.HasPrefix(body, "/")
	default:
		if strings.HasPrefix(body, "!") {
			negated = true
			body = body[1:]
		}
		if strings.HasPrefix(body, "/") {
			absolute = true
			body = body[1:]
		}
	}

	if strings.HasSuffix(body, "/") {
		dirOnly = true
		body = strings.TrimSuffix(body, "/")
		if strings.HasSuffix(body, `\`) {
			body = strings.TrimSuffix(body, `\`)
		}
	}

	if body == "" {
		return nil, nil
	}

	if !absolute && !strings.Contains(body, "/") {
		if body != "**" && !strings.HasPrefix(body, "**/") {
			body = "**/" + body
		}
	}
	if strings.HasSuffix(body, "/**") {
		body = body + "/*"
	}

	glob, err := cache.compile(body, caseSensitive)
	if err != nil {
		return nil, err
	}

	return &ignorePattern{original: line, glob: glob, negated: negated, dirOnly: dirOnly}, nil
}

// trimTrailingWhitespace strips trailing unescaped spaces/tabs. A single
// trailing space preceded by an odd number of backslashes survives, with
// the escaping backslash consumed, matching how a literal trailing space is
// authored in a gitignore-style file.
func trimTrailingWhitespace(line string) string {
	end := len(line)
	for end > 0 && (line[end-1] == ' ' || line[end-1] == '\t') {
		end--
	}
	if end == len(line) {
		return line
	}

	bs := 0
	for i := end - 1; i >= 0 && line[i] == '\\'; i-- {
		bs++
	}
	if bs%2 == 1 && line[end] == ' ' {
		return line[:end-1] + " "
	}
	return line[:end]
}
