package keycode_test

import (
	"testing"

	"github.com/tkferris/sweepmap/keycode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRanges(t *testing.T) {
	tests := []struct {
		name  string
		code  keycode.Keycode
		check func(k keycode.Keycode) bool
	}{
		{"basic", keycode.KeyA, keycode.Keycode.IsBasic},
		{"chord", keycode.LCtl(keycode.KeyC), keycode.Keycode.IsChord},
		{"shifted alias is a chord", keycode.KeyCircumflex, keycode.Keycode.IsChord},
		{"mod-tap", keycode.ModTap(keycode.ModLeftCtrl, keycode.KeyS), keycode.Keycode.IsModTap},
		{"layer-tap", keycode.LayerTap(3, keycode.KeySpace), keycode.Keycode.IsLayerTap},
		{"to", keycode.To(1), keycode.Keycode.IsTo},
		{"momentary", keycode.Momentary(4), keycode.Keycode.IsMomentary},
		{"one-shot", keycode.OneShot(keycode.ModLeftShift), keycode.Keycode.IsOneShot},
		{"boot", keycode.Boot, keycode.Keycode.IsQuantum},
		{"custom", keycode.ArrowMacro, keycode.Keycode.IsCustom},
		{"modifier", keycode.KeyRightGUI, keycode.Keycode.IsModifier},
		{"mouse", keycode.KeyMouseBtn1, keycode.Keycode.IsMouse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.code), "%s", tt.code)
		})
	}
}

func TestModsAndLayers(t *testing.T) {
	assert.Equal(t, keycode.ModLeftShift, keycode.KeyTilde.Mods())
	assert.Equal(t, keycode.KeyGrave, keycode.KeyTilde.Basic())

	rctl := keycode.ModTap(keycode.ModRightCtrl, keycode.KeyH)
	assert.Equal(t, keycode.ModRightCtrl, rctl.Mods())
	assert.Equal(t, keycode.KeyH, rctl.Basic())

	assert.Equal(t, keycode.ModLeftAlt, keycode.KeyLeftAlt.Mods())
	assert.Equal(t, keycode.ModRightShift, keycode.KeyRightShift.Mods())

	lt := keycode.LayerTap(5, keycode.KeyEnter)
	assert.Equal(t, uint8(5), lt.Layer())
	assert.Equal(t, keycode.KeyEnter, lt.Basic())
	assert.Equal(t, uint8(7), keycode.To(7).Layer())
	assert.Equal(t, keycode.NoKey, keycode.To(7).Basic())

	assert.Equal(t, keycode.ModLeftCtrl|keycode.ModLeftShift, keycode.OneShot(keycode.ModLeftCtrl|keycode.ModLeftShift).Mods())
}

func TestString(t *testing.T) {
	tests := []struct {
		code keycode.Keycode
		want string
	}{
		{keycode.NoKey, "KC_NO"},
		{keycode.Transparent, "KC_TRNS"},
		{keycode.KeyA, "KC_A"},
		{keycode.KeyCircumflex, "KC_CIRC"},
		{keycode.LCtl(keycode.KeyR), "LCTL(KC_R)"},
		{keycode.LCtl(keycode.LSft(keycode.KeyT)), "LCTL(LSFT(KC_T))"},
		{keycode.ModTap(keycode.ModLeftGUI, keycode.KeyR), "LGUI_T(KC_R)"},
		{keycode.ModTap(keycode.ModLeftCtrl|keycode.ModLeftAlt, keycode.KeyA), "MT(MOD_LCTL|MOD_LALT,KC_A)"},
		{keycode.LayerTap(2, keycode.KeySpace), "LT(2,KC_SPC)"},
		{keycode.To(3), "TO(3)"},
		{keycode.Momentary(1), "MO(1)"},
		{keycode.OneShot(keycode.ModLeftShift), "OSM(MOD_LSFT)"},
		{keycode.Boot, "QK_BOOT"},
		{keycode.ArrowMacro, "ARROW_MACRO"},
		{keycode.Win1, "WIN_1"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.String())
		})
	}
}

func TestFormatWithLayerNames(t *testing.T) {
	name := func(l uint8) string {
		if l == 3 {
			return "NAV"
		}
		return ""
	}
	assert.Equal(t, "TO(NAV)", keycode.Format(keycode.To(3), name))
	assert.Equal(t, "TO(2)", keycode.Format(keycode.To(2), name))
}

func TestParse(t *testing.T) {
	layers := func(s string) (uint8, bool) {
		switch s {
		case "SYM":
			return 1, true
		case "NAV":
			return 3, true
		}
		return 0, false
	}
	tests := []struct {
		in      string
		want    keycode.Keycode
		wantErr error
	}{
		{in: "KC_SPC", want: keycode.KeySpace},
		{in: "KC_SPACE", want: keycode.KeySpace},
		{in: "_______", want: keycode.Transparent},
		{in: "KC_DQUO", want: keycode.KeyDoubleQuote},
		{in: "S(KC_QUOT)", want: keycode.KeyDoubleQuote},
		{in: "LCTL(KC_V)", want: keycode.LCtl(keycode.KeyV)},
		{in: "LCTL(KC_PLUS)", want: keycode.LCtl(keycode.KeyPlus)},
		{in: "WIN_T(KC_R)", want: keycode.ModTap(keycode.ModLeftGUI, keycode.KeyR)},
		{in: "RCTL_T(KC_H)", want: keycode.ModTap(keycode.ModRightCtrl, keycode.KeyH)},
		{in: "MT(MOD_LCTL|MOD_LSFT, KC_A)", want: keycode.ModTap(keycode.ModLeftCtrl|keycode.ModLeftShift, keycode.KeyA)},
		{in: "LT(NAV, KC_SPC)", want: keycode.LayerTap(3, keycode.KeySpace)},
		{in: "TO(SYM)", want: keycode.To(1)},
		{in: "MO(4)", want: keycode.Momentary(4)},
		{in: "OSM(MOD_LSFT)", want: keycode.OneShot(keycode.ModLeftShift)},
		{in: "0x0004", want: keycode.KeyA},
		{in: "SYM_NAV", want: keycode.SymNav},
		{in: "KC_BOGUS", wantErr: keycode.ErrUnknownKeycode},
		{in: "TO(MISSING)", wantErr: keycode.ErrUnknownLayer},
		{in: "TO(99)", wantErr: keycode.ErrUnknownLayer},
		{in: "LCTL_T(TO(1))", wantErr: keycode.ErrUnknownKeycode},
		{in: "", wantErr: keycode.ErrUnknownKeycode},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := keycode.Parse(tt.in, layers)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	codes := []keycode.Keycode{
		keycode.KeyQ, keycode.KeyKp7, keycode.KeyMediaNext, keycode.KeyWheelDown,
		keycode.LCtl(keycode.KeyU), keycode.LSft(keycode.KeyV), keycode.RSft(keycode.KeyA),
		keycode.ModTap(keycode.ModLeftAlt, keycode.KeyT), keycode.ModTap(keycode.ModRightGUI, keycode.KeyE),
		keycode.LayerTap(6, keycode.KeyBackspace), keycode.To(7), keycode.Momentary(0),
		keycode.OneShot(keycode.ModRightCtrl), keycode.ClearEEPROM, keycode.AltShiftTab,
	}
	for _, k := range codes {
		got, err := keycode.Parse(k.String(), nil)
		require.NoError(t, err, k.String())
		assert.Equal(t, k, got, k.String())
	}
}

func TestParseMods(t *testing.T) {
	m, ok := keycode.ParseMods("MOD_MASK_SHIFT")
	require.True(t, ok)
	assert.Equal(t, keycode.MaskShift, m)

	m, ok = keycode.ParseMods("MOD_LCTL | MOD_RALT")
	require.True(t, ok)
	assert.Equal(t, keycode.ModLeftCtrl|keycode.ModRightAlt, m)

	_, ok = keycode.ParseMods("MOD_HYPER")
	assert.False(t, ok)

	assert.Equal(t, "MOD_LSFT|MOD_RSFT", keycode.MaskShift.String())
}
