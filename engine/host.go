package engine

import (
	"github.com/tkferris/sweepmap/hid"
	"github.com/tkferris/sweepmap/keycode"
	"github.com/tkferris/sweepmap/layer"
)

// The methods below implement dispatch.Host for the engine's dispatcher.

// Mods returns the held modifiers.
func (e *Engine) Mods() keycode.Mods { return e.mods }

// SetMods replaces the held modifiers and sends the report.
func (e *Engine) SetMods(m keycode.Mods) {
	e.mods = m
	e.send()
}

// OneShotMods returns the armed one-shot modifiers.
func (e *Engine) OneShotMods() keycode.Mods { return e.oneShot }

// SetOneShotMods replaces the armed one-shot modifiers.
func (e *Engine) SetOneShotMods(m keycode.Mods) { e.oneShot = m }

// ClearOneShotMods disarms every one-shot modifier.
func (e *Engine) ClearOneShotMods() { e.oneShot = 0 }

// Register presses kc. Chord modifiers and armed one-shot modifiers are
// sent as weak modifiers that last until the next registered key or the
// release of this one.
func (e *Engine) Register(kc keycode.Keycode) {
	basic := kc.Basic()
	if basic == keycode.NoKey {
		return
	}
	if basic.IsModifier() && !kc.IsChord() {
		e.mods |= basic.Mods()
		e.send()
		return
	}
	weak := kc.Mods()
	if kc.IsModTap() {
		weak = 0
	}
	if e.oneShot != 0 {
		weak |= e.oneShot
		e.oneShot = 0
	}
	e.weak = weak
	e.weakKey = basic
	e.keys.Press(uint8(basic))
	e.send()
}

// Unregister releases kc.
func (e *Engine) Unregister(kc keycode.Keycode) {
	basic := kc.Basic()
	if basic == keycode.NoKey {
		return
	}
	if basic.IsModifier() && !kc.IsChord() {
		e.mods &^= basic.Mods()
		e.send()
		return
	}
	e.keys.Release(uint8(basic))
	if e.weakKey == basic {
		e.weak = 0
		e.weakKey = keycode.NoKey
	}
	e.send()
}

// Tap presses and releases kc.
func (e *Engine) Tap(kc keycode.Keycode) {
	e.Register(kc)
	e.Unregister(kc)
}

// SendString types s. Characters the US layout cannot type are skipped.
func (e *Engine) SendString(s string) {
	for i := 0; i < len(s); i++ {
		kc, ok := hid.CharKeycode(s[i])
		if !ok {
			e.logger.Debug("untypeable character", "char", s[i])
			continue
		}
		e.Tap(kc)
	}
}

// LayerMove makes l the only active layer.
func (e *Engine) LayerMove(l layer.Layer) { e.layers.Move(l) }

// LayerOn activates l.
func (e *Engine) LayerOn(l layer.Layer) { e.layers.On(l) }

// LayerOff deactivates l.
func (e *Engine) LayerOff(l layer.Layer) { e.layers.Off(l) }

// CurrentLayer returns the highest active layer.
func (e *Engine) CurrentLayer() layer.Layer { return e.layers.Highest() }
