// Package override implements key overrides: while a modifier is held,
// pressing a trigger key sends a different keycode.
package override

import (
	"github.com/tkferris/sweepmap/keycode"
	"github.com/tkferris/sweepmap/layer"
)

// Override replaces Trigger with Replacement when any of Mods is held and
// the current layer is in Layers.
type Override struct {
	Mods        keycode.Mods
	Trigger     keycode.Keycode
	Replacement keycode.Keycode
	Layers      layer.Mask
}

// Basic returns an override active on every layer.
func Basic(mods keycode.Mods, trigger, replacement keycode.Keycode) Override {
	return WithLayers(mods, trigger, replacement, layer.All)
}

// WithLayers returns an override restricted to layers.
func WithLayers(mods keycode.Mods, trigger, replacement keycode.Keycode, layers layer.Mask) Override {
	return Override{Mods: mods, Trigger: trigger, Replacement: replacement, Layers: layers}
}

// Matches reports whether o fires for kc pressed with held on layer l.
func (o Override) Matches(held keycode.Mods, kc keycode.Keycode, l layer.Layer) bool {
	return kc == o.Trigger && held.Has(o.Mods) && o.Layers.Has(l)
}

// Suppressed returns the held modifiers that are lifted while the
// replacement is pressed.
func (o Override) Suppressed(held keycode.Mods) keycode.Mods {
	return held & o.Mods
}

// Set is an ordered list of overrides.
type Set []Override

// Find returns the first override matching the press, in list order.
func (s Set) Find(held keycode.Mods, kc keycode.Keycode, l layer.Layer) (Override, bool) {
	for _, o := range s {
		if o.Matches(held, kc, l) {
			return o, true
		}
	}
	return Override{}, false
}
