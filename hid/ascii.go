package hid

import "github.com/tkferris/sweepmap/keycode"

// charToKey maps ASCII characters to their unshifted HID usage.
var charToKey = map[byte]keycode.Keycode{
	'a': keycode.KeyA, 'b': keycode.KeyB, 'c': keycode.KeyC, 'd': keycode.KeyD, 'e': keycode.KeyE,
	'f': keycode.KeyF, 'g': keycode.KeyG, 'h': keycode.KeyH, 'i': keycode.KeyI, 'j': keycode.KeyJ,
	'k': keycode.KeyK, 'l': keycode.KeyL, 'm': keycode.KeyM, 'n': keycode.KeyN, 'o': keycode.KeyO,
	'p': keycode.KeyP, 'q': keycode.KeyQ, 'r': keycode.KeyR, 's': keycode.KeyS, 't': keycode.KeyT,
	'u': keycode.KeyU, 'v': keycode.KeyV, 'w': keycode.KeyW, 'x': keycode.KeyX, 'y': keycode.KeyY,
	'z': keycode.KeyZ,

	'1': keycode.Key1, '2': keycode.Key2, '3': keycode.Key3, '4': keycode.Key4, '5': keycode.Key5,
	'6': keycode.Key6, '7': keycode.Key7, '8': keycode.Key8, '9': keycode.Key9, '0': keycode.Key0,

	'-': keycode.KeyMinus, '=': keycode.KeyEqual, '[': keycode.KeyLeftBrace, ']': keycode.KeyRightBrace,
	'\\': keycode.KeyBackslash, ';': keycode.KeySemicolon, '\'': keycode.KeyApostrophe,
	'`': keycode.KeyGrave, ',': keycode.KeyComma, '.': keycode.KeyPeriod, '/': keycode.KeySlash,

	' ': keycode.KeySpace, '\n': keycode.KeyEnter, '\t': keycode.KeyTab,
}

// shiftedChars maps characters typed with shift to their unshifted twin.
var shiftedChars = map[byte]byte{
	'!': '1', '@': '2', '#': '3', '$': '4', '%': '5',
	'^': '6', '&': '7', '*': '8', '(': '9', ')': '0',
	'_': '-', '+': '=', '{': '[', '}': ']', '|': '\\',
	':': ';', '"': '\'', '~': '`', '<': ',', '>': '.', '?': '/',
}

// CharKeycode returns the keycode that types c on a US layout. Characters
// that need shift come back as an LSFT chord.
func CharKeycode(c byte) (keycode.Keycode, bool) {
	if c >= 'A' && c <= 'Z' {
		return keycode.LSft(charToKey[c+('a'-'A')]), true
	}
	if base, ok := shiftedChars[c]; ok {
		return keycode.LSft(charToKey[base]), true
	}
	k, ok := charToKey[c]
	return k, ok
}

// NeedsShift returns true if the character requires the Shift modifier.
func NeedsShift(c byte) bool {
	k, ok := CharKeycode(c)
	return ok && k.Mods().Has(keycode.MaskShift)
}

var keyToChar = func() map[keycode.Keycode]byte {
	m := make(map[keycode.Keycode]byte, len(charToKey))
	for c, k := range charToKey {
		m[k] = c
	}
	return m
}()

var shiftedOf = func() map[byte]byte {
	m := make(map[byte]byte, len(shiftedChars))
	for shifted, base := range shiftedChars {
		m[base] = shifted
	}
	return m
}()

// KeyChar is the inverse of CharKeycode: the character usage types on a
// US layout with or without shift.
func KeyChar(usage keycode.Keycode, shift bool) (byte, bool) {
	c, ok := keyToChar[usage]
	if !ok {
		return 0, false
	}
	if !shift {
		return c, true
	}
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A'), true
	}
	if s, ok := shiftedOf[c]; ok {
		return s, true
	}
	return c, true
}
