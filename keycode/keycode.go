// Package keycode defines the 16-bit keycode space used by keymaps.
//
// The low byte of every keycode that produces a key press is a USB HID
// keyboard usage. The high bits select what kind of key it is:
//
//	0x0000-0x00FF  basic HID usage
//	0x0100-0x1FFF  basic usage sent together with modifiers (a chord)
//	0x2000-0x3FFF  mod-tap: usage on tap, modifiers on hold
//	0x4000-0x4FFF  layer-tap: usage on tap, layer on hold
//	0x5200-0x521F  TO(layer): move to layer
//	0x5220-0x523F  MO(layer): layer while held
//	0x52A0-0x52BF  OSM(mods): one-shot modifiers
//	0x7C00-0x7C0F  maintenance keys
//	0x7E00-        custom keycodes handled by the dispatcher
//
// Modifiers inside a keycode are stored in a five bit form: ctrl, shift,
// alt, gui and a right-hand flag. Mods converts to and from the HID
// modifier byte.
package keycode

// Keycode is a single entry in a keymap layer.
type Keycode uint16

const (
	NoKey       Keycode = 0x0000
	Transparent Keycode = 0x0001
)

const (
	chordMin    Keycode = 0x0100
	chordMax    Keycode = 0x1FFF
	modTapMin   Keycode = 0x2000
	modTapMax   Keycode = 0x3FFF
	layerTapMin Keycode = 0x4000
	layerTapMax Keycode = 0x4FFF
	toMin       Keycode = 0x5200
	toMax       Keycode = 0x521F
	momentMin   Keycode = 0x5220
	momentMax   Keycode = 0x523F
	oneShotMin  Keycode = 0x52A0
	oneShotMax  Keycode = 0x52BF
	quantumMin  Keycode = 0x7C00
	quantumMax  Keycode = 0x7C0F

	// SafeRange is the first keycode available to custom actions.
	SafeRange Keycode = 0x7E00
)

// Maintenance keys.
const (
	Boot        Keycode = 0x7C00
	Reboot      Keycode = 0x7C01
	ClearEEPROM Keycode = 0x7C03
)

// MaxLayer is the highest layer index a keycode can address.
const MaxLayer = 15

const (
	mod5Ctrl  = 0x01
	mod5Shift = 0x02
	mod5Alt   = 0x04
	mod5GUI   = 0x08
	mod5Right = 0x10
)

// Basic returns the HID usage carried by k. For layer and quantum keycodes
// it returns NoKey.
func (k Keycode) Basic() Keycode {
	switch {
	case k <= modTapMax:
		return k & 0xFF
	case k >= layerTapMin && k <= layerTapMax:
		return k & 0xFF
	default:
		return NoKey
	}
}

// IsBasic reports whether k is a plain HID usage without modifiers.
func (k Keycode) IsBasic() bool { return k < chordMin }

// IsChord reports whether k is a HID usage combined with modifiers.
func (k Keycode) IsChord() bool { return k >= chordMin && k <= chordMax }

// IsModTap reports whether k is a mod-tap key.
func (k Keycode) IsModTap() bool { return k >= modTapMin && k <= modTapMax }

// IsLayerTap reports whether k is a layer-tap key.
func (k Keycode) IsLayerTap() bool { return k >= layerTapMin && k <= layerTapMax }

// IsTapHold reports whether the tap-hold engine has to decide between the
// tap and hold meaning of k.
func (k Keycode) IsTapHold() bool { return k.IsModTap() || k.IsLayerTap() }

// IsTo reports whether k is TO(layer).
func (k Keycode) IsTo() bool { return k >= toMin && k <= toMax }

// IsMomentary reports whether k is MO(layer).
func (k Keycode) IsMomentary() bool { return k >= momentMin && k <= momentMax }

// IsOneShot reports whether k is OSM(mods).
func (k Keycode) IsOneShot() bool { return k >= oneShotMin && k <= oneShotMax }

// IsQuantum reports whether k is a maintenance key.
func (k Keycode) IsQuantum() bool { return k >= quantumMin && k <= quantumMax }

// IsCustom reports whether k lies in the custom keycode range.
func (k Keycode) IsCustom() bool { return k >= SafeRange }

// IsModifier reports whether k is one of the eight modifier usages.
func (k Keycode) IsModifier() bool { return k >= KeyLeftCtrl && k <= KeyRightGUI }

// IsMouse reports whether k is a mouse key. Mouse keys have no HID
// keyboard report representation.
func (k Keycode) IsMouse() bool { return k >= KeyMouseUp && k <= KeyWheelRight }

// Mods returns the modifiers encoded in a chord, mod-tap or one-shot keycode.
// For modifier usages it returns the matching single modifier bit.
func (k Keycode) Mods() Mods {
	switch {
	case k.IsModifier():
		return Mods(1 << (k - KeyLeftCtrl))
	case k.IsChord(), k.IsModTap():
		return fromMod5(uint8(k>>8) & 0x1F)
	case k.IsOneShot():
		return fromMod5(uint8(k & 0x1F))
	default:
		return 0
	}
}

// Layer returns the layer addressed by a layer-tap, TO or MO keycode.
func (k Keycode) Layer() uint8 {
	switch {
	case k.IsLayerTap():
		return uint8(k>>8) & 0x0F
	case k.IsTo(), k.IsMomentary():
		return uint8(k & 0x1F)
	default:
		return 0
	}
}

// WithMods returns basic usage k sent together with m.
func WithMods(m Mods, k Keycode) Keycode {
	if m == 0 {
		return k.Basic()
	}
	return Keycode(toMod5(m))<<8 | k.Basic()
}

// LCtl returns k chorded with left control.
func LCtl(k Keycode) Keycode { return k | Keycode(mod5Ctrl)<<8 }

// LSft returns k chorded with left shift.
func LSft(k Keycode) Keycode { return k | Keycode(mod5Shift)<<8 }

// LAlt returns k chorded with left alt.
func LAlt(k Keycode) Keycode { return k | Keycode(mod5Alt)<<8 }

// LGui returns k chorded with left GUI.
func LGui(k Keycode) Keycode { return k | Keycode(mod5GUI)<<8 }

// RCtl returns k chorded with right control.
func RCtl(k Keycode) Keycode { return k | Keycode(mod5Right|mod5Ctrl)<<8 }

// RSft returns k chorded with right shift.
func RSft(k Keycode) Keycode { return k | Keycode(mod5Right|mod5Shift)<<8 }

// ModTap sends k on tap and holds m otherwise.
func ModTap(m Mods, k Keycode) Keycode {
	return modTapMin | Keycode(toMod5(m))<<8 | k.Basic()
}

// LayerTap sends k on tap and enables layer while held.
func LayerTap(layer uint8, k Keycode) Keycode {
	return layerTapMin | Keycode(layer&0x0F)<<8 | k.Basic()
}

// To moves to layer on press.
func To(layer uint8) Keycode { return toMin | Keycode(layer&0x1F) }

// Momentary enables layer while held.
func Momentary(layer uint8) Keycode { return momentMin | Keycode(layer&0x1F) }

// OneShot arms m for the next key press.
func OneShot(m Mods) Keycode { return oneShotMin | Keycode(toMod5(m)) }

func toMod5(m Mods) uint8 {
	left := uint8(m) & 0x0F
	right := uint8(m) >> 4
	if left == 0 && right != 0 {
		return mod5Right | right
	}
	return left | right
}

func fromMod5(b uint8) Mods {
	bits := Mods(b & 0x0F)
	if b&mod5Right != 0 {
		return bits << 4
	}
	return bits
}
