//go:build linux

package uinput

import (
	"slices"

	"github.com/holoplot/go-evdev"

	"github.com/tkferris/sweepmap/keycode"
)

// evdevCodes maps HID keyboard usages to Linux input key codes.
var evdevCodes = map[keycode.Keycode]evdev.EvCode{
	keycode.KeyA: evdev.KEY_A, keycode.KeyB: evdev.KEY_B, keycode.KeyC: evdev.KEY_C,
	keycode.KeyD: evdev.KEY_D, keycode.KeyE: evdev.KEY_E, keycode.KeyF: evdev.KEY_F,
	keycode.KeyG: evdev.KEY_G, keycode.KeyH: evdev.KEY_H, keycode.KeyI: evdev.KEY_I,
	keycode.KeyJ: evdev.KEY_J, keycode.KeyK: evdev.KEY_K, keycode.KeyL: evdev.KEY_L,
	keycode.KeyM: evdev.KEY_M, keycode.KeyN: evdev.KEY_N, keycode.KeyO: evdev.KEY_O,
	keycode.KeyP: evdev.KEY_P, keycode.KeyQ: evdev.KEY_Q, keycode.KeyR: evdev.KEY_R,
	keycode.KeyS: evdev.KEY_S, keycode.KeyT: evdev.KEY_T, keycode.KeyU: evdev.KEY_U,
	keycode.KeyV: evdev.KEY_V, keycode.KeyW: evdev.KEY_W, keycode.KeyX: evdev.KEY_X,
	keycode.KeyY: evdev.KEY_Y, keycode.KeyZ: evdev.KEY_Z,

	keycode.Key1: evdev.KEY_1, keycode.Key2: evdev.KEY_2, keycode.Key3: evdev.KEY_3,
	keycode.Key4: evdev.KEY_4, keycode.Key5: evdev.KEY_5, keycode.Key6: evdev.KEY_6,
	keycode.Key7: evdev.KEY_7, keycode.Key8: evdev.KEY_8, keycode.Key9: evdev.KEY_9,
	keycode.Key0: evdev.KEY_0,

	keycode.KeyEnter:      evdev.KEY_ENTER,
	keycode.KeyEscape:     evdev.KEY_ESC,
	keycode.KeyBackspace:  evdev.KEY_BACKSPACE,
	keycode.KeyTab:        evdev.KEY_TAB,
	keycode.KeySpace:      evdev.KEY_SPACE,
	keycode.KeyMinus:      evdev.KEY_MINUS,
	keycode.KeyEqual:      evdev.KEY_EQUAL,
	keycode.KeyLeftBrace:  evdev.KEY_LEFTBRACE,
	keycode.KeyRightBrace: evdev.KEY_RIGHTBRACE,
	keycode.KeyBackslash:  evdev.KEY_BACKSLASH,
	keycode.KeySemicolon:  evdev.KEY_SEMICOLON,
	keycode.KeyApostrophe: evdev.KEY_APOSTROPHE,
	keycode.KeyGrave:      evdev.KEY_GRAVE,
	keycode.KeyComma:      evdev.KEY_COMMA,
	keycode.KeyPeriod:     evdev.KEY_DOT,
	keycode.KeySlash:      evdev.KEY_SLASH,
	keycode.KeyCapsLock:   evdev.KEY_CAPSLOCK,

	keycode.KeyF1: evdev.KEY_F1, keycode.KeyF2: evdev.KEY_F2, keycode.KeyF3: evdev.KEY_F3,
	keycode.KeyF4: evdev.KEY_F4, keycode.KeyF5: evdev.KEY_F5, keycode.KeyF6: evdev.KEY_F6,
	keycode.KeyF7: evdev.KEY_F7, keycode.KeyF8: evdev.KEY_F8, keycode.KeyF9: evdev.KEY_F9,
	keycode.KeyF10: evdev.KEY_F10, keycode.KeyF11: evdev.KEY_F11, keycode.KeyF12: evdev.KEY_F12,
	keycode.KeyF13: evdev.KEY_F13, keycode.KeyF14: evdev.KEY_F14, keycode.KeyF15: evdev.KEY_F15,
	keycode.KeyF16: evdev.KEY_F16, keycode.KeyF17: evdev.KEY_F17, keycode.KeyF18: evdev.KEY_F18,
	keycode.KeyF19: evdev.KEY_F19, keycode.KeyF20: evdev.KEY_F20, keycode.KeyF21: evdev.KEY_F21,
	keycode.KeyF22: evdev.KEY_F22, keycode.KeyF23: evdev.KEY_F23, keycode.KeyF24: evdev.KEY_F24,

	keycode.KeyPrintScreen: evdev.KEY_SYSRQ,
	keycode.KeyScrollLock:  evdev.KEY_SCROLLLOCK,
	keycode.KeyPause:       evdev.KEY_PAUSE,
	keycode.KeyInsert:      evdev.KEY_INSERT,
	keycode.KeyHome:        evdev.KEY_HOME,
	keycode.KeyPageUp:      evdev.KEY_PAGEUP,
	keycode.KeyDelete:      evdev.KEY_DELETE,
	keycode.KeyEnd:         evdev.KEY_END,
	keycode.KeyPageDown:    evdev.KEY_PAGEDOWN,
	keycode.KeyRight:       evdev.KEY_RIGHT,
	keycode.KeyLeft:        evdev.KEY_LEFT,
	keycode.KeyDown:        evdev.KEY_DOWN,
	keycode.KeyUp:          evdev.KEY_UP,

	keycode.KeyNumLock:    evdev.KEY_NUMLOCK,
	keycode.KeyKpSlash:    evdev.KEY_KPSLASH,
	keycode.KeyKpAsterisk: evdev.KEY_KPASTERISK,
	keycode.KeyKpMinus:    evdev.KEY_KPMINUS,
	keycode.KeyKpPlus:     evdev.KEY_KPPLUS,
	keycode.KeyKpEnter:    evdev.KEY_KPENTER,
	keycode.KeyKp1:        evdev.KEY_KP1,
	keycode.KeyKp2:        evdev.KEY_KP2,
	keycode.KeyKp3:        evdev.KEY_KP3,
	keycode.KeyKp4:        evdev.KEY_KP4,
	keycode.KeyKp5:        evdev.KEY_KP5,
	keycode.KeyKp6:        evdev.KEY_KP6,
	keycode.KeyKp7:        evdev.KEY_KP7,
	keycode.KeyKp8:        evdev.KEY_KP8,
	keycode.KeyKp9:        evdev.KEY_KP9,
	keycode.KeyKp0:        evdev.KEY_KP0,
	keycode.KeyKpDot:      evdev.KEY_KPDOT,
	keycode.KeyKpEqual:    evdev.KEY_KPEQUAL,

	keycode.KeyNonUSBackslash: evdev.KEY_102ND,
	keycode.KeyApplication:    evdev.KEY_COMPOSE,

	keycode.KeyMute:       evdev.KEY_MUTE,
	keycode.KeyVolumeUp:   evdev.KEY_VOLUMEUP,
	keycode.KeyVolumeDown: evdev.KEY_VOLUMEDOWN,

	keycode.KeyLeftCtrl:   evdev.KEY_LEFTCTRL,
	keycode.KeyLeftShift:  evdev.KEY_LEFTSHIFT,
	keycode.KeyLeftAlt:    evdev.KEY_LEFTALT,
	keycode.KeyLeftGUI:    evdev.KEY_LEFTMETA,
	keycode.KeyRightCtrl:  evdev.KEY_RIGHTCTRL,
	keycode.KeyRightShift: evdev.KEY_RIGHTSHIFT,
	keycode.KeyRightAlt:   evdev.KEY_RIGHTALT,
	keycode.KeyRightGUI:   evdev.KEY_RIGHTMETA,

	keycode.KeyMediaPlayPause: evdev.KEY_PLAYPAUSE,
	keycode.KeyMediaStop:      evdev.KEY_STOPCD,
	keycode.KeyMediaNext:      evdev.KEY_NEXTSONG,
	keycode.KeyMediaPrevious:  evdev.KEY_PREVIOUSSONG,
}

// Code returns the Linux key code for a HID usage.
func Code(usage keycode.Keycode) (evdev.EvCode, bool) {
	c, ok := evdevCodes[usage]
	return c, ok
}

// Codes returns every key code the virtual keyboard advertises, sorted.
func Codes() []evdev.EvCode {
	out := make([]evdev.EvCode, 0, len(evdevCodes))
	for _, c := range evdevCodes {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}
