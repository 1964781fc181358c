// Package summary renders a tabular end-of-walk report, in place of the
// teacher's plain-text DisplayResults/DisplaySkippedItems pair.
package summary

import (
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Stats is one walk's headline numbers.
type Stats struct {
	Root    string
	Matched int
	Elapsed time.Duration
}

// Print renders Stats as a table to out.
func Print(out io.Writer, s Stats) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Root", "Matched", "Elapsed"})
	t.AppendRow(table.Row{s.Root, s.Matched, s.Elapsed.Round(time.Millisecond)})
	t.Render()
}
