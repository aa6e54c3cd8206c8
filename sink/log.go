package sink

import (
	"context"
	"log/slog"
	"strings"

	"github.com/tkferris/sweepmap/hid"
	"github.com/tkferris/sweepmap/internal/log"
	"github.com/tkferris/sweepmap/keycode"
)

// Log records reports instead of sending them anywhere.
type Log struct {
	logger *slog.Logger
	raw    log.RawLogger
	count  int
}

// NewLog returns a sink logging each report at debug level and dumping
// its 34-byte HID form to raw.
func NewLog(logger *slog.Logger, raw log.RawLogger) *Log {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	return &Log{logger: logger, raw: raw}
}

// Count returns the number of reports written so far.
func (l *Log) Count() int { return l.count }

func (l *Log) WriteReport(r hid.Report) error {
	l.count++
	l.raw.Log(true, r.BuildReport())
	if l.logger.Enabled(context.Background(), slog.LevelDebug) {
		l.logger.Debug("report", "mods", r.Mods, "keys", KeyNames(r))
	}
	return nil
}

// KeyNames lists the held keys of r by keycode name.
func KeyNames(r hid.Report) string {
	keys := r.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = keycode.Keycode(k).String()
	}
	return strings.Join(names, " ")
}
