// Package gitconfig parses the INI-like grammar used by Git configuration
// files: section headers, quoted values with backslash escapes, comments,
// and include.path recursion. It is a complete reader — the pathwalk core
// only ever asks it for core.excludesFile and core.ignoreCase, but nothing
// about the grammar below is scoped to those two keys.
package gitconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const maxIncludeDepth = 10

type entry struct {
	section    string
	subsection string
	name       string
	value      string
}

// Config is a parsed Git configuration: an ordered list of section/key/value
// entries, looked up case-insensitively on section and key.
type Config struct {
	entries []entry
}

// Load reads and parses the config file at path, following any
// include.path directives relative to its directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := cfg.parse(string(data), filepath.Dir(path), 1); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse parses text directly, as if it had no enclosing file (so a relative
// include.path resolves against dir).
func Parse(text, dir string) (*Config, error) {
	cfg := &Config{}
	if err := cfg.parse(text, dir, 1); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Get returns the last value assigned to section[.subsection].name, case
// folding section and key but preserving subsection case, and reports
// whether the key was present at all.
func (c *Config) Get(section, subsection, name string) (string, bool) {
	found := false
	var value string
	for _, e := range c.entries {
		if !strings.EqualFold(e.section, section) {
			continue
		}
		if e.subsection != subsection {
			continue
		}
		if !strings.EqualFold(e.name, name) {
			continue
		}
		value = e.value
		found = true
	}
	return value, found
}

// GetBool is Get followed by boolean coercion: "true|yes|on|1" (any case)
// is true, "false|no|off|0" is false, an empty value (a bare key with no
// "=value") is true, and anything else is an error. A missing key returns
// def unchanged.
func (c *Config) GetBool(section, subsection, name string, def bool) (bool, error) {
	raw, ok := c.Get(section, subsection, name)
	if !ok {
		return def, nil
	}
	return parseBool(raw)
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	case "":
		return true, nil
	default:
		return false, fmt.Errorf("invalid boolean: %q", raw)
	}
}

func (c *Config) parse(text string, dir string, depth int) error {
	if depth > maxIncludeDepth {
		return errTooManyIncludes
	}

	r := newReader(text)
	var section, subsection string
	haveSection := false

	for {
		ch, ok := r.peek()
		if !ok {
			return nil
		}

		switch {
		case ch == '\n', ch == ' ', ch == '\t', ch == '\r':
			r.read()
		case ch == ';' || ch == '#':
			skipLineComment(r)
		case ch == '[':
			r.read()
			sec, sub, err := readSectionHeader(r)
			if err != nil {
				return err
			}
			section, subsection = sec, sub
			haveSection = true
		default:
			if !haveSection {
				return errInvalidLine
			}
			name, value, err := readKeyValue(r)
			if err != nil {
				return err
			}
			c.entries = append(c.entries, entry{section: section, subsection: subsection, name: name, value: value})

			if strings.EqualFold(section, "include") && strings.EqualFold(name, "path") {
				if err := c.followInclude(value, dir, depth); err != nil {
					return err
				}
			}
		}
	}
}

func (c *Config) followInclude(relPath, dir string, depth int) error {
	if relPath == "" {
		return fmt.Errorf("invalid include.path value")
	}

	var file string
	if strings.HasPrefix(relPath, "~/") {
		home := os.Getenv("HOME")
		if home == "" {
			return nil
		}
		file = filepath.Join(home, relPath[2:])
	} else if filepath.IsAbs(relPath) {
		file = relPath
	} else {
		file = filepath.Join(dir, relPath)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("cannot read included config %s: %w", relPath, err)
	}

	if err := c.parse(string(data), filepath.Dir(file), depth+1); err != nil {
		return fmt.Errorf("cannot read included config %s: %w", relPath, err)
	}
	return nil
}

// reader is a small rune-at-a-time scanner with one-step lookahead, enough
// for the section/key/value grammar below without a full tokenizer.
type reader struct {
	runes []rune
	pos   int
}

func newReader(s string) *reader {
	return &reader{runes: []rune(s)}
}

func (r *reader) peek() (rune, bool) {
	if r.pos >= len(r.runes) {
		return 0, false
	}
	return r.runes[r.pos], true
}

func (r *reader) read() (rune, bool) {
	c, ok := r.peek()
	if ok {
		r.pos++
	}
	return c, ok
}

func skipLineComment(r *reader) {
	for {
		c, ok := r.read()
		if !ok || c == '\n' {
			return
		}
	}
}

// readSectionHeader consumes up to and including the closing ']'. The
// opening '[' has already been consumed.
func readSectionHeader(r *reader) (section, subsection string, err error) {
	var name strings.Builder
	for {
		c, ok := r.read()
		if !ok {
			return "", "", errUnexpectedEOF
		}
		if c == ']' {
			return name.String(), "", nil
		}
		if c == ' ' || c == '\t' {
			for {
				c, ok := r.read()
				if !ok {
					return "", "", errUnexpectedEOF
				}
				if c == '"' {
					break
				}
				if c == ' ' || c == '\t' {
					continue
				}
				return "", "", fmt.Errorf("bad section entry: %s", name.String())
			}
			sub, err := readQuotedSubsection(r)
			if err != nil {
				return "", "", err
			}
			c, ok := r.read()
			if !ok || c != ']' {
				return "", "", errBadGroupHeader
			}
			return name.String(), sub, nil
		}
		if isAlnum(c) || c == '.' || c == '-' {
			name.WriteRune(c)
			continue
		}
		return "", "", fmt.Errorf("bad section entry: %s", name.String())
	}
}

func readQuotedSubsection(r *reader) (string, error) {
	var name strings.Builder
	for {
		c, ok := r.read()
		if !ok {
			return "", errUnexpectedEOF
		}
		if c == '\n' {
			return "", errNewlineInQuotes
		}
		if c == '\\' {
			esc, ok := r.read()
			if !ok {
				return "", errEOFInEscape
			}
			name.WriteRune(esc)
			continue
		}
		if c == '"' {
			return name.String(), nil
		}
		name.WriteRune(c)
	}
}

// readKeyValue consumes one "name = value" assignment (or a bare "name",
// which yields an empty value) up to the end of the line.
func readKeyValue(r *reader) (name, value string, err error) {
	var nameBuf strings.Builder
	bare := false
	for {
		c, ok := r.read()
		if !ok {
			return "", "", errUnexpectedEOF
		}
		if c == '=' {
			break
		}
		if c == '\n' {
			bare = true
			break
		}
		if c == ' ' || c == '\t' {
			for {
				c, ok := r.read()
				if !ok {
					return "", "", errUnexpectedEOF
				}
				if c == '=' {
					break
				}
				if c == ';' || c == '#' {
					skipLineComment(r)
					bare = true
					break
				}
				if c == '\n' {
					bare = true
					break
				}
				if c == ' ' || c == '\t' {
					continue
				}
				return "", "", errBadEntryDelimiter
			}
			break
		}
		if isAlnum(c) || c == '-' {
			nameBuf.WriteRune(c)
			continue
		}
		return "", "", fmt.Errorf("bad entry name: %s", nameBuf.String())
	}

	if bare {
		return nameBuf.String(), "", nil
	}

	val, err := readValue(r)
	if err != nil {
		return "", "", err
	}
	return nameBuf.String(), val, nil
}

// readValue implements the value grammar: leading whitespace is skipped,
// trailing whitespace outside quotes is trimmed, ';'/'#' starts a comment
// unless quoted, and '\' escapes n/t/b/\\/"/newline.
func readValue(r *reader) (string, error) {
	var value strings.Builder
	var trailing strings.Builder
	quote := false
	leading := true

	for {
		c, ok := r.peek()
		if !ok {
			break
		}

		if c == '\n' {
			if quote {
				return "", errNewlineInQuotes
			}
			break
		}
		if !quote && (c == ';' || c == '#') {
			trailing.Reset()
			break
		}

		r.read()

		if isSpace(c) {
			if leading {
				continue
			}
			trailing.WriteRune(c)
			continue
		}
		leading = false
		if trailing.Len() > 0 {
			value.WriteString(trailing.String())
			trailing.Reset()
		}

		if c == '\\' {
			esc, ok := r.read()
			if !ok {
				return "", errEOFInEscape
			}
			switch esc {
			case '\n':
				continue
			case 't':
				value.WriteByte('\t')
			case 'b':
				value.WriteByte('\b')
			case 'n':
				value.WriteByte('\n')
			case '\\':
				value.WriteByte('\\')
			case '"':
				value.WriteByte('"')
			default:
				return "", fmt.Errorf("bad escape: %q", esc)
			}
			continue
		}

		if c == '"' {
			quote = !quote
			continue
		}

		value.WriteRune(c)
	}

	return value.String(), nil
}

func isAlnum(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r'
}
