// Package app wires a parsed Config into a pathwalk.Walker and writes its
// results, following the config -> matcher -> walker -> output sequence
// the teacher's own App.Run follows.
package app

import (
	"io"
	"os"
	"time"

	"github.com/cthing/pathwalk"
	"github.com/cthing/pathwalk/internal/config"
	"github.com/cthing/pathwalk/internal/pathlog"
	"github.com/cthing/pathwalk/internal/printer"
	"github.com/cthing/pathwalk/internal/summary"
	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
)

// Run executes one walk described by cfg and prints its results.
func Run(cfg *config.Config) error {
	color.NoColor = !cfg.UseColors

	var logOut io.Writer = os.Stderr
	if cfg.UseColors {
		logOut = colorable.NewColorable(os.Stderr)
	}
	log := pathlog.New(logOut, pathlog.ParseLevel(cfg.LogLevel), cfg.UseColors)

	handler := &pathwalk.CollectingHandler{}
	opts := []pathwalk.Option{
		pathwalk.WithIncludePatterns(cfg.Include),
		pathwalk.WithExcludeHidden(!cfg.Hidden),
		pathwalk.WithRespectIgnoreFiles(!cfg.NoIgnore),
		pathwalk.WithFollowLinks(cfg.FollowLinks),
		pathwalk.WithMaxDepth(cfg.MaxDepth),
		pathwalk.WithLogger(log),
	}

	log.Debug("walking %q (include=%v, no-ignore=%v, hidden=%v, follow-links=%v, max-depth=%d)",
		cfg.Root, cfg.Include, cfg.NoIgnore, cfg.Hidden, cfg.FollowLinks, cfg.MaxDepth)

	start := time.Now()
	if err := pathwalk.Walk(cfg.Root, handler, opts...); err != nil {
		log.Error("walk failed: %v", err)
		return err
	}
	elapsed := time.Since(start)

	paths := handler.Paths()

	out := printer.New().WithOutput(os.Stdout).WithColors(cfg.UseColors).WithJSON(cfg.JSON)
	if err := out.Print(paths); err != nil {
		log.Error("could not write output: %v", err)
		return err
	}

	if cfg.Stats {
		summary.Print(logOut, summary.Stats{Root: cfg.Root, Matched: len(paths), Elapsed: elapsed})
	}

	return nil
}
