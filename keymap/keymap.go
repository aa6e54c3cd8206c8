// Package keymap holds the layer tables, key overrides and combos for the
// 34-key split board, plus the built-in keymaps.
package keymap

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tkferris/sweepmap/combo"
	"github.com/tkferris/sweepmap/keycode"
	"github.com/tkferris/sweepmap/layer"
	"github.com/tkferris/sweepmap/override"
)

var (
	ErrUnknownKeymap = errors.New("unknown keymap")
	ErrLayerCount    = errors.New("bad layer count")
	ErrKeyCount      = errors.New("bad key count")
)

// Grid is one layer: a keycode per physical position.
type Grid [NumKeys]keycode.Keycode

// Keymap is a complete set of tables read by the engine at startup.
type Keymap struct {
	Name       string
	LayerNames []string
	Layers     []Grid
	Overrides  override.Set
	Combos     combo.Table
	// Colors holds a "#rrggbb" indicator color per layer; empty means off.
	Colors []string
}

// Lookup returns the keycode at pos for the given layer state. Transparent
// entries fall through to the next active layer below, ending at the
// default layer.
func (k *Keymap) Lookup(s layer.State, pos Position) keycode.Keycode {
	if !pos.Valid() {
		return keycode.NoKey
	}
	active := s.Active | layer.MaskOf(s.Default)
	for l := len(k.Layers) - 1; l >= 0; l-- {
		if !active.Has(layer.Layer(l)) {
			continue
		}
		if kc := k.Layers[l][pos]; kc != keycode.Transparent {
			return kc
		}
	}
	return keycode.NoKey
}

// LayerName returns the name of l, or "" when unnamed.
func (k *Keymap) LayerName(l layer.Layer) string {
	if int(l) < len(k.LayerNames) {
		return k.LayerNames[l]
	}
	return ""
}

// LayerByName returns the index of the named layer. Matching ignores case
// and an optional "_LAYER" suffix.
func (k *Keymap) LayerByName(name string) (layer.Layer, bool) {
	want := normalizeLayerName(name)
	for i, n := range k.LayerNames {
		if normalizeLayerName(n) == want {
			return layer.Layer(i), true
		}
	}
	return 0, false
}

// Color returns the indicator color of l.
func (k *Keymap) Color(l layer.Layer) string {
	if int(l) < len(k.Colors) {
		return k.Colors[l]
	}
	return ""
}

// Validate checks the table shapes and that every layer reference points
// at an existing layer.
func (k *Keymap) Validate() error {
	if len(k.Layers) == 0 || len(k.Layers) > keycode.MaxLayer+1 {
		return fmt.Errorf("%w: %d", ErrLayerCount, len(k.Layers))
	}
	if len(k.LayerNames) != 0 && len(k.LayerNames) != len(k.Layers) {
		return fmt.Errorf("%w: %d names for %d layers", ErrLayerCount, len(k.LayerNames), len(k.Layers))
	}
	for l, g := range k.Layers {
		for pos, kc := range g {
			if kc.IsLayerTap() || kc.IsTo() || kc.IsMomentary() {
				if int(kc.Layer()) >= len(k.Layers) {
					return fmt.Errorf("layer %d position %d: %s targets missing layer", l, pos, kc)
				}
			}
		}
	}
	for i, c := range k.Combos {
		if len(c.Keys) < 2 {
			return fmt.Errorf("combo %d: needs at least two keys", i)
		}
	}
	return nil
}

func normalizeLayerName(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.TrimSuffix(s, "_LAYER")
}

var builtins = map[string]func() *Keymap{}

func register(name string, f func() *Keymap) { builtins[name] = f }

// Builtin returns a fresh copy of the named built-in keymap.
func Builtin(name string) (*Keymap, error) {
	f, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownKeymap, name, strings.Join(Builtins(), ", "))
	}
	return f(), nil
}

// Builtins lists the built-in keymap names.
func Builtins() []string {
	out := make([]string, 0, len(builtins))
	for n := range builtins {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// standardLayerNames names the eight layers shared by the built-ins.
func standardLayerNames() []string {
	return []string{"ALPHA", "SYM", "NUM", "NAV", "FN", "MEDIA", "GAMING", "QMK"}
}
