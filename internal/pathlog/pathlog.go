// Package pathlog is the leveled, optionally colorized logger the walker
// accepts through an injected Logger. It generalizes the CLI-only logger
// the teacher tool used into something a library caller can plug in (or
// leave out, via NoopLogger) without pulling terminal-detection logic into
// the core package.
package pathlog

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Level is a log severity, least to most restrictive.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

// ParseLevel converts a level name to a Level, defaulting to LevelInfo for
// anything unrecognized.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "none", "off":
		return LevelNone
	default:
		return LevelInfo
	}
}

// Logger is the interface the walker (and its callers) log through.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// NoopLogger discards everything. It is the walker's default so library
// callers who don't ask for logging pay nothing for it.
type NoopLogger struct{}

func (NoopLogger) Debug(string, ...interface{}) {}
func (NoopLogger) Info(string, ...interface{})  {}
func (NoopLogger) Warn(string, ...interface{})  {}
func (NoopLogger) Error(string, ...interface{}) {}

// StdLogger writes leveled, timestamped lines to out, colorizing the level
// prefix when useColors is set.
type StdLogger struct {
	out       io.Writer
	useColors bool
	level     Level
}

// New builds a StdLogger writing to out at the given level.
func New(out io.Writer, level Level, useColors bool) *StdLogger {
	return &StdLogger{out: out, level: level, useColors: useColors}
}

func (l *StdLogger) Debug(format string, args ...interface{}) { l.log(LevelDebug, "DEBUG", color.CyanString, format, args) }
func (l *StdLogger) Info(format string, args ...interface{})  { l.log(LevelInfo, "INFO", color.BlueString, format, args) }
func (l *StdLogger) Warn(format string, args ...interface{})  { l.log(LevelWarn, "WARN", color.YellowString, format, args) }
func (l *StdLogger) Error(format string, args ...interface{}) { l.log(LevelError, "ERROR", color.RedString, format, args) }

func (l *StdLogger) log(level Level, prefix string, colorize func(string, ...interface{}) string, format string, args []interface{}) {
	if l.level > level {
		return
	}
	label := prefix
	if l.useColors {
		label = colorize(prefix)
	}
	fmt.Fprintf(l.out, "[%s %s] %s\n", time.Now().Format("15:04:05.000"), label, fmt.Sprintf(format, args...))
}
