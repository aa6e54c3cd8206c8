package dispatch

import (
	"fmt"
	"strings"

	"github.com/tkferris/sweepmap/keycode"
	"github.com/tkferris/sweepmap/layer"
)

// Step is one element of a macro: literal text or a tapped keycode.
type Step struct {
	Text string
	Key  keycode.Keycode
}

// Text types s.
func Text(s string) Step { return Step{Text: s} }

// Key taps kc, chord modifiers included.
func Key(kc keycode.Keycode) Step { return Step{Key: kc} }

// Macro is an output sequence.
type Macro []Step

func (m Macro) play(h Host) {
	for _, s := range m {
		if s.Text != "" {
			h.SendString(s.Text)
			continue
		}
		if s.Key != keycode.NoKey {
			h.Tap(s.Key)
		}
	}
}

func (m Macro) String() string {
	parts := make([]string, 0, len(m))
	for _, s := range m {
		if s.Text != "" {
			parts = append(parts, fmt.Sprintf("%q", s.Text))
		} else {
			parts = append(parts, s.Key.String())
		}
	}
	return strings.Join(parts, " ")
}

// Action is the behavior bound to a custom keycode. The concrete types
// below are the only implementations.
type Action interface {
	kind() string
}

// Literal plays Output on press. With ToBase it then moves to the base
// layer.
type Literal struct {
	Output Macro
	ToBase bool
}

// ShiftSensitive plays Shifted when shift is held or armed as one-shot and
// the current layer is in Layers, Default otherwise. Shift is lifted while
// Shifted plays. A zero Layers matches every layer.
type ShiftSensitive struct {
	Default Macro
	Shifted Macro
	Layers  layer.Mask
}

// LayerMove taps Tap, if set, and moves to Layer on press.
type LayerMove struct {
	Layer layer.Layer
	Tap   keycode.Keycode
}

// DualFunction is a tap-hold layer key: a tap moves to Tap, a hold moves
// to Hold until release, then to Release.
type DualFunction struct {
	Tap     layer.Layer
	Hold    layer.Layer
	Release layer.Layer
}

// Latched holds Mods for as long as Key keeps being pressed within the
// latch timeout, pressing Key on every press.
type Latched struct {
	Mods keycode.Mods
	Key  keycode.Keycode
}

func (Literal) kind() string        { return "literal" }
func (ShiftSensitive) kind() string { return "shift-sensitive" }
func (LayerMove) kind() string      { return "layer-move" }
func (DualFunction) kind() string   { return "dual-function" }
func (Latched) kind() string        { return "latched" }

// Kind names the action type.
func Kind(a Action) string { return a.kind() }
