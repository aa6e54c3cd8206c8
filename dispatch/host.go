// Package dispatch implements the custom keycode dispatcher: it decides,
// per key event, whether a keycode gets a bespoke action or the default
// handling of the engine.
package dispatch

import (
	"time"

	"github.com/tkferris/sweepmap/keycode"
	"github.com/tkferris/sweepmap/keymap"
	"github.com/tkferris/sweepmap/layer"
)

// Host is what the dispatcher may observe and change in the runtime that
// calls it.
type Host interface {
	// Mods returns the held modifiers.
	Mods() keycode.Mods
	// SetMods replaces the held modifiers and reports the change.
	SetMods(m keycode.Mods)
	OneShotMods() keycode.Mods
	SetOneShotMods(m keycode.Mods)
	ClearOneShotMods()

	// Register presses kc, including the modifiers of a chord.
	Register(kc keycode.Keycode)
	Unregister(kc keycode.Keycode)
	// Tap presses and releases kc.
	Tap(kc keycode.Keycode)
	// SendString types s as ASCII, shifting characters that need it.
	SendString(s string)

	LayerMove(l layer.Layer)
	LayerOn(l layer.Layer)
	LayerOff(l layer.Layer)
	// CurrentLayer returns the highest active layer.
	CurrentLayer() layer.Layer
}

// Record describes one key event.
type Record struct {
	Pressed bool
	// Time is the monotonic event time.
	Time time.Duration
	// TapCount is non-zero when the tap-hold engine settled the key as a
	// tap, zero for a hold or a plain key.
	TapCount int
	Pos      keymap.Position
}
