// Package printer writes a walk's matched paths to an output stream, one
// line per path in text mode or as a single JSON array in JSON mode.
package printer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes the final result set of a walk to out.
type Printer struct {
	output    io.Writer
	useColors bool
	jsonMode  bool
}

// New creates a Printer writing to the configured output destination.
func New() *Printer {
	return &Printer{useColors: true}
}

// WithOutput sets the output destination.
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithColors enables or disables colored path output. Ignored in JSON mode.
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	return p
}

// WithJSON enables JSON output mode.
func (p *Printer) WithJSON(enabled bool) *Printer {
	p.jsonMode = enabled
	return p
}

// Print writes paths, either as newline-separated (optionally colorized)
// text or as a single indented JSON array.
func (p *Printer) Print(paths []string) error {
	if p.jsonMode {
		enc := json.NewEncoder(p.output)
		enc.SetIndent("", "  ")
		return enc.Encode(paths)
	}
	for _, path := range paths {
		line := path
		if p.useColors {
			line = color.CyanString(path)
		}
		if _, err := fmt.Fprintln(p.output, line); err != nil {
			return err
		}
	}
	return nil
}
