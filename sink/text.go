package sink

import (
	"fmt"
	"io"

	"github.com/tkferris/sweepmap/hid"
	"github.com/tkferris/sweepmap/keycode"
)

// Text renders what a report stream would type. Printable keys pressed
// with at most shift held come out as characters; everything else is
// written as its keycode name in angle brackets, e.g. <LCTL(KC_C)>.
type Text struct {
	w       io.Writer
	newline string
	prev    hid.Report
}

// NewText returns a Text sink. newline is written for KC_ENTER; a raw
// terminal wants "\r\n".
func NewText(w io.Writer, newline string) *Text {
	if newline == "" {
		newline = "\n"
	}
	return &Text{w: w, newline: newline}
}

func (t *Text) WriteReport(r hid.Report) error {
	prev := t.prev
	t.prev = r
	for _, usage := range r.Keys() {
		if prev.Pressed(usage) {
			continue
		}
		if _, err := io.WriteString(t.w, t.render(keycode.Keycode(usage), r.Mods)); err != nil {
			return fmt.Errorf("text sink: %w", err)
		}
	}
	return nil
}

func (t *Text) render(usage keycode.Keycode, mods keycode.Mods) string {
	if mods&^keycode.MaskShift == 0 {
		if usage == keycode.KeyEnter {
			return t.newline
		}
		if c, ok := hid.KeyChar(usage, mods.Has(keycode.MaskShift)); ok && c >= ' ' {
			return string(c)
		}
	}
	return "<" + keycode.WithMods(mods, usage).String() + ">"
}
