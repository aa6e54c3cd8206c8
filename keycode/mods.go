package keycode

import "strings"

// Mods is the HID modifier byte.
type Mods uint8

// Modifier key bitmasks
const (
	ModLeftCtrl   Mods = 0x01
	ModLeftShift  Mods = 0x02
	ModLeftAlt    Mods = 0x04
	ModLeftGUI    Mods = 0x08 // Windows/Command key
	ModRightCtrl  Mods = 0x10
	ModRightShift Mods = 0x20
	ModRightAlt   Mods = 0x40
	ModRightGUI   Mods = 0x80
)

const (
	MaskCtrl  = ModLeftCtrl | ModRightCtrl
	MaskShift = ModLeftShift | ModRightShift
	MaskAlt   = ModLeftAlt | ModRightAlt
	MaskGUI   = ModLeftGUI | ModRightGUI
)

var modNames = [8]string{"MOD_LCTL", "MOD_LSFT", "MOD_LALT", "MOD_LGUI", "MOD_RCTL", "MOD_RSFT", "MOD_RALT", "MOD_RGUI"}

// Has reports whether any bit of o is set in m.
func (m Mods) Has(o Mods) bool { return m&o != 0 }

// String renders m as MOD_* names joined by '|'.
func (m Mods) String() string {
	if m == 0 {
		return "0"
	}
	var parts []string
	for i, n := range modNames {
		if m&(1<<i) != 0 {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, "|")
}

// ParseMods parses MOD_* names joined by '|'. MOD_MASK_* names are
// accepted as well.
func ParseMods(s string) (Mods, bool) {
	var m Mods
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		switch part {
		case "MOD_MASK_SHIFT":
			m |= MaskShift
			continue
		case "MOD_MASK_CTRL":
			m |= MaskCtrl
			continue
		case "MOD_MASK_ALT":
			m |= MaskAlt
			continue
		case "MOD_MASK_GUI":
			m |= MaskGUI
			continue
		}
		found := false
		for i, n := range modNames {
			if n == part {
				m |= 1 << i
				found = true
				break
			}
		}
		if !found {
			return 0, false
		}
	}
	return m, true
}
