// Package combo describes multi-key shortcuts: a set of keys pressed
// together that produces one keycode.
package combo

import (
	"slices"

	"github.com/tkferris/sweepmap/keycode"
	"github.com/tkferris/sweepmap/layer"
)

// Combo fires Result when every key in Keys is down at once and the current
// layer is in Layers.
type Combo struct {
	Keys   []keycode.Keycode
	Result keycode.Keycode
	Layers layer.Mask
}

// New returns a combo allowed on every layer.
func New(result keycode.Keycode, keys ...keycode.Keycode) Combo {
	return Combo{Keys: keys, Result: result, Layers: layer.All}
}

// On restricts c to layers.
func (c Combo) On(layers ...layer.Layer) Combo {
	c.Layers = layer.MaskOf(layers...)
	return c
}

// Triggers reports whether c may fire while l is the current layer.
func (c Combo) Triggers(l layer.Layer) bool {
	return c.Layers.Has(l)
}

// Contains reports whether keys can be matched one to one against keys of
// c. Each combo key is used at most once, so a repeated keycode needs a
// repeated combo key.
func (c Combo) Contains(keys []keycode.Keycode) bool {
	if len(keys) > len(c.Keys) {
		return false
	}
	left := slices.Clone(c.Keys)
	for _, k := range keys {
		i := slices.Index(left, k)
		if i < 0 {
			return false
		}
		left = slices.Delete(left, i, i+1)
	}
	return true
}

// Complete reports whether keys is exactly the key set of c.
func (c Combo) Complete(keys []keycode.Keycode) bool {
	return len(keys) == len(c.Keys) && c.Contains(keys)
}

// Table is the list of combos of a keymap.
type Table []Combo

// Candidates reports whether some combo enabled on l could still complete
// once more keys join keys.
func (t Table) Candidates(keys []keycode.Keycode, l layer.Layer) bool {
	for _, c := range t {
		if c.Triggers(l) && len(keys) <= len(c.Keys) && c.Contains(keys) {
			return true
		}
	}
	return false
}

// Match returns the combo enabled on l whose key set is exactly keys.
func (t Table) Match(keys []keycode.Keycode, l layer.Layer) (Combo, bool) {
	for _, c := range t {
		if c.Triggers(l) && c.Complete(keys) {
			return c, true
		}
	}
	return Combo{}, false
}

// Longer reports whether a combo enabled on l has more keys than keys and
// contains all of them.
func (t Table) Longer(keys []keycode.Keycode, l layer.Layer) bool {
	for _, c := range t {
		if c.Triggers(l) && len(keys) < len(c.Keys) && c.Contains(keys) {
			return true
		}
	}
	return false
}
