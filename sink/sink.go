// Package sink holds the report outputs that need no device: a logging
// sink for dry runs, a text renderer for trying a keymap in a terminal
// and a fan-out to several sinks at once.
package sink

import (
	"errors"

	"github.com/tkferris/sweepmap/hid"
)

// Writer receives every changed keyboard report.
type Writer interface {
	WriteReport(r hid.Report) error
}

// Tee writes each report to every writer and joins their errors.
type Tee []Writer

func (t Tee) WriteReport(r hid.Report) error {
	var errs []error
	for _, w := range t {
		if err := w.WriteReport(r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
