// Package layer holds layer identifiers and the active layer state.
package layer

import "math/bits"

// Layer indexes one key-meaning table of a keymap.
type Layer uint8

// Layers used by the built-in keymaps.
const (
	Alpha Layer = iota
	Sym
	Num
	Nav
	Fn
	Media
	Gaming
	Maintenance
)

// Mask is a set of layers, bit n for layer n.
type Mask uint32

// All matches every layer.
const All Mask = 0xFFFFFFFF

// MaskOf returns the set holding the given layers.
func MaskOf(layers ...Layer) Mask {
	var m Mask
	for _, l := range layers {
		m |= 1 << l
	}
	return m
}

// Has reports whether l is in the set.
func (m Mask) Has(l Layer) bool { return m&(1<<l) != 0 }

// Highest returns the highest layer in the set, or 0 when empty.
func (m Mask) Highest() Layer {
	if m == 0 {
		return 0
	}
	return Layer(31 - bits.LeadingZeros32(uint32(m)))
}

// State tracks the persistent default layer and the active layers on
// top of it.
type State struct {
	Default Layer
	Active  Mask
}

// Move turns off every active layer and turns on l.
func (s *State) Move(l Layer) { s.Active = MaskOf(l) }

// On enables l.
func (s *State) On(l Layer) { s.Active |= MaskOf(l) }

// Off disables l.
func (s *State) Off(l Layer) { s.Active &^= MaskOf(l) }

// Clear drops every active layer, leaving only the default.
func (s *State) Clear() { s.Active = 0 }

// Highest returns the topmost layer, counting the default layer.
func (s State) Highest() Layer {
	return (s.Active | MaskOf(s.Default)).Highest()
}
