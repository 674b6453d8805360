// Package logger builds the zerolog loggers used across the module.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Build assembles a logger writing to the given sink.
type Build struct {
	writer  io.Writer
	console bool
	level   zerolog.Level
}

// New starts a logger build. The default sink is stderr at the info level.
func New() *Build {
	return &Build{writer: os.Stderr, level: zerolog.InfoLevel}
}

// ToWriter directs log output to w.
func (b *Build) ToWriter(w io.Writer) *Build {
	b.writer = w
	return b
}

// Console enables the human-readable console writer, for the cmd frontends.
func (b *Build) Console() *Build {
	b.console = true
	return b
}

// Level sets the minimum level.
func (b *Build) Level(level zerolog.Level) *Build {
	b.level = level
	return b
}

// Make finishes the build.
func (b *Build) Make() zerolog.Logger {
	w := b.writer
	if b.console {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).Level(b.level).With().Timestamp().Logger()
}

// Nop returns a disabled logger, the library default.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
