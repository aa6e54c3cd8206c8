// Package hid models the keyboard report the engine emits.
package hid

import (
	"io"

	"github.com/tkferris/sweepmap/keycode"
)

// Report is the full keyboard state sent to the host.
// Internally uses a 256-bit bitmap for N-key rollover support.
type Report struct {
	Mods      keycode.Mods // bit 0-7: LCtrl, LShift, LAlt, LGui, RCtrl, RShift, RAlt, RGui
	KeyBitmap [32]uint8    // 256 bits for HID usage codes 0x00-0xFF
}

// Press marks usage as held. Modifier usages set the matching modifier bit.
func (r *Report) Press(usage uint8) {
	if k := keycode.Keycode(usage); k.IsModifier() {
		r.Mods |= k.Mods()
		return
	}
	r.KeyBitmap[usage/8] |= 1 << (usage % 8)
}

// Release clears usage.
func (r *Report) Release(usage uint8) {
	if k := keycode.Keycode(usage); k.IsModifier() {
		r.Mods &^= k.Mods()
		return
	}
	r.KeyBitmap[usage/8] &^= 1 << (usage % 8)
}

// Pressed reports whether usage is held.
func (r Report) Pressed(usage uint8) bool {
	if k := keycode.Keycode(usage); k.IsModifier() {
		return r.Mods.Has(k.Mods())
	}
	return r.KeyBitmap[usage/8]&(1<<(usage%8)) != 0
}

// Keys returns the held non-modifier usages in ascending order.
func (r Report) Keys() []uint8 {
	var keys []uint8
	for i := 0; i < 256; i++ {
		if r.KeyBitmap[i/8]&(1<<uint(i%8)) != 0 {
			keys = append(keys, uint8(i))
		}
	}
	return keys
}

// Empty reports whether nothing is held.
func (r Report) Empty() bool {
	return r == Report{}
}

// BuildReport encodes the report into the 34-byte HID keyboard report.
//
// Report layout (34 bytes):
//
//	Byte 0: Modifiers (8 bits)
//	Byte 1: Reserved (0x00)
//	Bytes 2-33: Key bitmap (256 bits, 32 bytes)
func (r Report) BuildReport() []byte {
	b := make([]byte, 34)
	b[0] = uint8(r.Mods)
	copy(b[2:34], r.KeyBitmap[:])
	return b
}

// MarshalBinary encodes the report to the variable-length stream format.
//
// Wire format:
//
//	Byte 0: Modifiers
//	Byte 1: Key count
//	Bytes 2+: Key codes (HID usage codes of pressed keys)
func (r *Report) MarshalBinary() ([]byte, error) {
	keys := r.Keys()
	b := make([]byte, 2+len(keys))
	b[0] = uint8(r.Mods)
	b[1] = uint8(len(keys))
	copy(b[2:], keys)
	return b, nil
}

// UnmarshalBinary decodes the variable-length stream format.
func (r *Report) UnmarshalBinary(data []byte) error {
	if len(data) < 2 {
		return io.ErrUnexpectedEOF
	}
	count := int(data[1])
	if len(data) < 2+count {
		return io.ErrUnexpectedEOF
	}
	*r = Report{Mods: keycode.Mods(data[0])}
	for _, usage := range data[2 : 2+count] {
		r.KeyBitmap[usage/8] |= 1 << (usage % 8)
	}
	return nil
}
