package pathwalk

import (
	"fmt"
	"regexp"
	"strings"
)

// Glob is a compiled glob pattern. It owns the original pattern text and
// exactly one of two matcher shapes: a literal string comparison, used only
// when every token is a plain literal and matching is case-sensitive, or a
// compiled regular expression built from the token stream.
type Glob struct {
	pattern   string
	isLiteral bool
	literal   string
	re        *regexp.Regexp
}

// compileGlob parses pattern and picks the literal fast path when possible,
// falling back to the regex translation of section 4.3 otherwise.
func compileGlob(pattern string, caseSensitive bool) (*Glob, error) {
	tokens, err := parseGlobTokens(pattern)
	if err != nil {
		return nil, err
	}

	if caseSensitive && len(tokens) > 0 && allLiteral(tokens) {
		return &Glob{pattern: pattern, isLiteral: true, literal: literalString(tokens)}, nil
	}

	re, err := buildRegex(tokens, caseSensitive)
	if err != nil {
		return nil, err
	}
	return &Glob{pattern: pattern, re: re}, nil
}

// Match reports whether path (already separator-normalized to '/') matches
// the compiled pattern.
func (g *Glob) Match(path string) bool {
	if g.isLiteral {
		return path == g.literal
	}
	return g.re.MatchString(path)
}

func (g *Glob) String() string { return g.pattern }

func allLiteral(tokens []globToken) bool {
	for _, t := range tokens {
		if t.kind != tokLiteral {
			return false
		}
	}
	return true
}

func literalString(tokens []globToken) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteRune(t.literal)
	}
	return b.String()
}

// buildRegex translates a token sequence into the anchored regular
// expression described in section 4.3. Go's RE2 engine has no equivalent of
// the "(?-u)" flag used to disable Unicode-aware case folding in other regex
// dialects; case sensitivity is controlled here with "(?i)" alone, which is
// a documented, intentional adaptation to Go's regexp package.
func buildRegex(tokens []globToken, caseSensitive bool) (*regexp.Regexp, error) {
	var b strings.Builder
	if !caseSensitive {
		b.WriteString("(?i)")
	}
	b.WriteString("^")

	if len(tokens) == 1 && tokens[0].kind == tokRecursivePrefix {
		b.WriteString(".*")
	} else {
		for _, t := range tokens {
			switch t.kind {
			case tokLiteral:
				b.WriteString(escapeLiteralRune(t.literal))
			case tokAny:
				b.WriteString("[^/]")
			case tokZeroOrMore:
				b.WriteString("[^/]*")
			case tokRecursivePrefix:
				b.WriteString(`(?:/?|.*/)`)
			case tokRecursiveSuffix:
				b.WriteString(`/.*`)
			case tokRecursiveMiddle:
				b.WriteString(`(?:/|/.*/)`)
			case tokCharClass:
				b.WriteString(buildCharClass(t))
			}
		}
	}
	b.WriteString("$")

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, errCouldNotCreateRegex
	}
	return re, nil
}

func buildCharClass(t globToken) string {
	var b strings.Builder
	b.WriteByte('[')
	if t.negated {
		b.WriteByte('^')
	}
	for _, r := range t.ranges {
		if r.lo == r.hi {
			b.WriteString(escapeClassRune(r.lo))
			continue
		}
		b.WriteString(escapeClassRune(r.lo))
		b.WriteByte('-')
		b.WriteString(escapeClassRune(r.hi))
	}
	b.WriteByte(']')
	return b.String()
}

// escapeLiteralRune escapes a literal rune for use outside a character
// class, per the table in section 4.3. A literal backslash is escaped too
// even though the spec's table omits it from the listed set, since an
// unescaped backslash in the output would otherwise start a new escape
// sequence rather than match itself.
func escapeLiteralRune(r rune) string {
	switch r {
	case '^', '$', '.', '|', '?', '*', '+', '(', ')', '[', ']', '{', '}', '\\':
		return "\\" + string(r)
	}
	if r < 0x20 || r > 0x7E {
		return fmt.Sprintf(`\x{%04x}`, r)
	}
	return string(r)
}

// escapeClassRune is the in-class variant. '-' is escaped in addition to
// the spec's listed set so a literal hyphen singleton never gets read back
// as a range operator once placed alongside other class members.
func escapeClassRune(r rune) string {
	switch r {
	case '^', '[', ']', '\\', '-':
		return "\\" + string(r)
	}
	if r < 0x20 || r > 0x7E {
		return fmt.Sprintf(`\x{%04x}`, r)
	}
	return string(r)
}
