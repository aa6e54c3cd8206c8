package keycode

import "fmt"

type nameEntry struct {
	code    Keycode
	name    string
	aliases []string
}

// names lists the canonical name of every named keycode first, followed by
// accepted aliases.
var names = []nameEntry{
	{NoKey, "KC_NO", []string{"XXXXXXX"}},
	{Transparent, "KC_TRNS", []string{"KC_TRANSPARENT", "_______"}},

	{KeyA, "KC_A", nil}, {KeyB, "KC_B", nil}, {KeyC, "KC_C", nil}, {KeyD, "KC_D", nil},
	{KeyE, "KC_E", nil}, {KeyF, "KC_F", nil}, {KeyG, "KC_G", nil}, {KeyH, "KC_H", nil},
	{KeyI, "KC_I", nil}, {KeyJ, "KC_J", nil}, {KeyK, "KC_K", nil}, {KeyL, "KC_L", nil},
	{KeyM, "KC_M", nil}, {KeyN, "KC_N", nil}, {KeyO, "KC_O", nil}, {KeyP, "KC_P", nil},
	{KeyQ, "KC_Q", nil}, {KeyR, "KC_R", nil}, {KeyS, "KC_S", nil}, {KeyT, "KC_T", nil},
	{KeyU, "KC_U", nil}, {KeyV, "KC_V", nil}, {KeyW, "KC_W", nil}, {KeyX, "KC_X", nil},
	{KeyY, "KC_Y", nil}, {KeyZ, "KC_Z", nil},

	{Key1, "KC_1", nil}, {Key2, "KC_2", nil}, {Key3, "KC_3", nil}, {Key4, "KC_4", nil},
	{Key5, "KC_5", nil}, {Key6, "KC_6", nil}, {Key7, "KC_7", nil}, {Key8, "KC_8", nil},
	{Key9, "KC_9", nil}, {Key0, "KC_0", nil},

	{KeyEnter, "KC_ENT", []string{"KC_ENTER"}},
	{KeyEscape, "KC_ESC", []string{"KC_ESCAPE"}},
	{KeyBackspace, "KC_BSPC", []string{"KC_BACKSPACE"}},
	{KeyTab, "KC_TAB", nil},
	{KeySpace, "KC_SPC", []string{"KC_SPACE"}},
	{KeyMinus, "KC_MINS", []string{"KC_MINUS"}},
	{KeyEqual, "KC_EQL", []string{"KC_EQUAL"}},
	{KeyLeftBrace, "KC_LBRC", nil},
	{KeyRightBrace, "KC_RBRC", nil},
	{KeyBackslash, "KC_BSLS", nil},
	{KeyNonUSHash, "KC_NUHS", nil},
	{KeySemicolon, "KC_SCLN", nil},
	{KeyApostrophe, "KC_QUOT", nil},
	{KeyGrave, "KC_GRV", nil},
	{KeyComma, "KC_COMM", []string{"KC_COMMA"}},
	{KeyPeriod, "KC_DOT", nil},
	{KeySlash, "KC_SLSH", nil},
	{KeyCapsLock, "KC_CAPS", nil},

	{KeyF1, "KC_F1", nil}, {KeyF2, "KC_F2", nil}, {KeyF3, "KC_F3", nil}, {KeyF4, "KC_F4", nil},
	{KeyF5, "KC_F5", nil}, {KeyF6, "KC_F6", nil}, {KeyF7, "KC_F7", nil}, {KeyF8, "KC_F8", nil},
	{KeyF9, "KC_F9", nil}, {KeyF10, "KC_F10", nil}, {KeyF11, "KC_F11", nil}, {KeyF12, "KC_F12", nil},
	{KeyF13, "KC_F13", nil}, {KeyF14, "KC_F14", nil}, {KeyF15, "KC_F15", nil}, {KeyF16, "KC_F16", nil},
	{KeyF17, "KC_F17", nil}, {KeyF18, "KC_F18", nil}, {KeyF19, "KC_F19", nil}, {KeyF20, "KC_F20", nil},
	{KeyF21, "KC_F21", nil}, {KeyF22, "KC_F22", nil}, {KeyF23, "KC_F23", nil}, {KeyF24, "KC_F24", nil},

	{KeyPrintScreen, "KC_PSCR", nil},
	{KeyScrollLock, "KC_SCRL", nil},
	{KeyPause, "KC_PAUS", nil},
	{KeyInsert, "KC_INS", nil},
	{KeyHome, "KC_HOME", nil},
	{KeyPageUp, "KC_PGUP", nil},
	{KeyDelete, "KC_DEL", nil},
	{KeyEnd, "KC_END", nil},
	{KeyPageDown, "KC_PGDN", nil},
	{KeyRight, "KC_RGHT", []string{"KC_RIGHT"}},
	{KeyLeft, "KC_LEFT", nil},
	{KeyDown, "KC_DOWN", nil},
	{KeyUp, "KC_UP", nil},

	{KeyNumLock, "KC_NUM", nil},
	{KeyKpSlash, "KC_PSLS", nil},
	{KeyKpAsterisk, "KC_PAST", nil},
	{KeyKpMinus, "KC_PMNS", nil},
	{KeyKpPlus, "KC_PPLS", nil},
	{KeyKpEnter, "KC_PENT", nil},
	{KeyKp1, "KC_P1", nil}, {KeyKp2, "KC_P2", nil}, {KeyKp3, "KC_P3", nil},
	{KeyKp4, "KC_P4", nil}, {KeyKp5, "KC_P5", nil}, {KeyKp6, "KC_P6", nil},
	{KeyKp7, "KC_P7", nil}, {KeyKp8, "KC_P8", nil}, {KeyKp9, "KC_P9", nil},
	{KeyKp0, "KC_P0", nil},
	{KeyKpDot, "KC_PDOT", nil},
	{KeyKpEqual, "KC_PEQL", nil},
	{KeyNonUSBackslash, "KC_NUBS", nil},
	{KeyApplication, "KC_APP", nil},

	{KeyMute, "KC_MUTE", nil},
	{KeyVolumeUp, "KC_VOLU", nil},
	{KeyVolumeDown, "KC_VOLD", nil},
	{KeyMediaPlayPause, "KC_MPLY", nil},
	{KeyMediaStop, "KC_MSTP", nil},
	{KeyMediaNext, "KC_MNXT", nil},
	{KeyMediaPrevious, "KC_MPRV", nil},

	{KeyMouseUp, "KC_MS_U", []string{"KC_MS_UP"}},
	{KeyMouseDown, "KC_MS_D", []string{"KC_MS_DOWN"}},
	{KeyMouseLeft, "KC_MS_L", []string{"KC_MS_LEFT"}},
	{KeyMouseRight, "KC_MS_R", []string{"KC_MS_RIGHT"}},
	{KeyMouseBtn1, "KC_BTN1", []string{"KC_MS_BTN1"}},
	{KeyMouseBtn2, "KC_BTN2", []string{"KC_MS_BTN2"}},
	{KeyMouseBtn3, "KC_BTN3", []string{"KC_MS_BTN3"}},
	{KeyWheelUp, "KC_WH_U", nil},
	{KeyWheelDown, "KC_WH_D", nil},
	{KeyWheelLeft, "KC_WH_L", nil},
	{KeyWheelRight, "KC_WH_R", nil},

	{KeyLeftCtrl, "KC_LCTL", nil},
	{KeyLeftShift, "KC_LSFT", nil},
	{KeyLeftAlt, "KC_LALT", nil},
	{KeyLeftGUI, "KC_LGUI", []string{"KC_LWIN"}},
	{KeyRightCtrl, "KC_RCTL", nil},
	{KeyRightShift, "KC_RSFT", nil},
	{KeyRightAlt, "KC_RALT", nil},
	{KeyRightGUI, "KC_RGUI", []string{"KC_RWIN"}},

	{KeyTilde, "KC_TILD", nil},
	{KeyExclaim, "KC_EXLM", nil},
	{KeyAt, "KC_AT", nil},
	{KeyHash, "KC_HASH", nil},
	{KeyDollar, "KC_DLR", nil},
	{KeyPercent, "KC_PERC", nil},
	{KeyCircumflex, "KC_CIRC", nil},
	{KeyAmpersand, "KC_AMPR", nil},
	{KeyAsterisk, "KC_ASTR", nil},
	{KeyLeftParen, "KC_LPRN", nil},
	{KeyRightParen, "KC_RPRN", nil},
	{KeyUnderscore, "KC_UNDS", nil},
	{KeyPlus, "KC_PLUS", nil},
	{KeyLeftCurly, "KC_LCBR", nil},
	{KeyRightCurly, "KC_RCBR", nil},
	{KeyPipe, "KC_PIPE", nil},
	{KeyColon, "KC_COLN", nil},
	{KeyDoubleQuote, "KC_DQUO", nil},
	{KeyLessThan, "KC_LT", nil},
	{KeyGreaterThan, "KC_GT", nil},
	{KeyQuestionMark, "KC_QUES", nil},

	{Boot, "QK_BOOT", []string{"RESET"}},
	{Reboot, "QK_RBT", []string{"QK_REBOOT"}},
	{ClearEEPROM, "EE_CLR", nil},
}

var (
	nameByCode = map[Keycode]string{}
	codeByName = map[string]Keycode{}
)

func init() {
	for _, e := range names {
		nameByCode[e.code] = e.name
		codeByName[e.name] = e.code
		for _, a := range e.aliases {
			codeByName[a] = e.code
		}
	}
	for code, name := range customNames {
		nameByCode[code] = name
		codeByName[name] = code
	}
}

// String returns the canonical name of k with layers printed as numbers.
func (k Keycode) String() string { return Format(k, nil) }

// Format renders k. layerName, when non-nil, names the layer argument of
// LT, TO and MO keycodes.
func Format(k Keycode, layerName func(uint8) string) string {
	if n, ok := nameByCode[k]; ok {
		return n
	}
	layer := func(l uint8) string {
		if layerName != nil {
			if n := layerName(l); n != "" {
				return n
			}
		}
		return fmt.Sprintf("%d", l)
	}
	switch {
	case k.IsChord():
		return wrapChord(k.Mods(), Format(k.Basic(), layerName))
	case k.IsModTap():
		inner := Format(k.Basic(), layerName)
		if fn, ok := modTapFuncs[k.Mods()]; ok {
			return fmt.Sprintf("%s(%s)", fn, inner)
		}
		return fmt.Sprintf("MT(%s,%s)", k.Mods(), inner)
	case k.IsLayerTap():
		return fmt.Sprintf("LT(%s,%s)", layer(k.Layer()), Format(k.Basic(), layerName))
	case k.IsTo():
		return fmt.Sprintf("TO(%s)", layer(k.Layer()))
	case k.IsMomentary():
		return fmt.Sprintf("MO(%s)", layer(k.Layer()))
	case k.IsOneShot():
		return fmt.Sprintf("OSM(%s)", k.Mods())
	}
	return fmt.Sprintf("0x%04X", uint16(k))
}

var chordFuncs = [8]string{"LCTL", "LSFT", "LALT", "LGUI", "RCTL", "RSFT", "RALT", "RGUI"}

var modTapFuncs = map[Mods]string{
	ModLeftCtrl:   "LCTL_T",
	ModLeftShift:  "LSFT_T",
	ModLeftAlt:    "LALT_T",
	ModLeftGUI:    "LGUI_T",
	ModRightCtrl:  "RCTL_T",
	ModRightShift: "RSFT_T",
	ModRightAlt:   "RALT_T",
	ModRightGUI:   "RGUI_T",
}

// wrapChord nests one function call per modifier, outermost first.
func wrapChord(m Mods, inner string) string {
	out := inner
	for i := 7; i >= 0; i-- {
		if m&(1<<i) != 0 {
			out = chordFuncs[i] + "(" + out + ")"
		}
	}
	return out
}
