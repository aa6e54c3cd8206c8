// Package log builds the slog.Logger used by every command.
//
// Without a log file, records below error go to stdout and errors go to
// stderr. With a file, everything goes to stderr and to the file.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelTrace is below Debug and enables per-report dumps.
const LevelTrace slog.Level = -8

// Config is embedded into the CLI under the "log." prefix.
type Config struct {
	Level   string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"SWEEPMAP_LOG_LEVEL"`
	Format  string `help:"Log format" enum:"text,json" default:"text" env:"SWEEPMAP_LOG_FORMAT"`
	File    string `help:"Also write logs to this file" env:"SWEEPMAP_LOG_FILE"`
	RawFile string `help:"Write a hex dump of every report to this file" env:"SWEEPMAP_LOG_RAW_FILE"`
}

// ParseLevel maps a level name to a slog level. Unknown names are info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			_ = h.Handle(ctx, r.Clone())
		}
	}
	return nil
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

// levelRange passes records with min <= level < max to h.
type levelRange struct {
	min, max slog.Level
	h        slog.Handler
}

func (l levelRange) pass(level slog.Level) bool { return level >= l.min && level < l.max }

func (l levelRange) Enabled(ctx context.Context, level slog.Level) bool {
	return l.pass(level) && l.h.Enabled(ctx, level)
}

func (l levelRange) Handle(ctx context.Context, r slog.Record) error {
	if !l.pass(r.Level) {
		return nil
	}
	return l.h.Handle(ctx, r)
}

func (l levelRange) WithAttrs(attrs []slog.Attr) slog.Handler {
	return levelRange{min: l.min, max: l.max, h: l.h.WithAttrs(attrs)}
}

func (l levelRange) WithGroup(name string) slog.Handler {
	return levelRange{min: l.min, max: l.max, h: l.h.WithGroup(name)}
}

// NewHandler returns a handler writing to w in the given format.
func NewHandler(w io.Writer, format string, level slog.Leveler) slog.Handler {
	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: renameTrace}
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func renameTrace(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if lvl, ok := a.Value.Any().(slog.Level); ok && lvl <= LevelTrace {
			a.Value = slog.StringValue("TRACE")
		}
	}
	return a
}

// Setup builds the logger described by cfg. The returned closers own the
// files opened for it.
func Setup(cfg Config) (*slog.Logger, []io.Closer, error) {
	return setup(cfg, os.Stdout, os.Stderr)
}

func setup(cfg Config, stdout, stderr io.Writer) (*slog.Logger, []io.Closer, error) {
	level := ParseLevel(cfg.Level)
	var handlers fanout
	var closers []io.Closer

	if cfg.File == "" {
		handlers = append(handlers,
			levelRange{min: LevelTrace - 1, max: slog.LevelError, h: NewHandler(stdout, cfg.Format, level)},
			levelRange{min: slog.LevelError, max: slog.LevelError + 100, h: NewHandler(stderr, cfg.Format, level)},
		)
	} else {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		closers = append(closers, f)
		handlers = append(handlers,
			NewHandler(stderr, cfg.Format, level),
			NewHandler(f, cfg.Format, level),
		)
	}
	return slog.New(handlers), closers, nil
}

// Raw returns the report dump for cfg: RawFile when set, stdout at trace
// level, and a no-op otherwise.
func Raw(cfg Config, logger *slog.Logger) (RawLogger, io.Closer) {
	if cfg.RawFile != "" {
		f, err := os.OpenFile(cfg.RawFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open raw log file", "file", cfg.RawFile, "error", err)
			return NewRaw(nil), nil
		}
		return NewRaw(f), f
	}
	if ParseLevel(cfg.Level) <= LevelTrace {
		return NewRaw(os.Stdout), nil
	}
	return NewRaw(nil), nil
}
