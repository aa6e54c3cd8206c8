package hid_test

import (
	"io"
	"testing"

	"github.com/tkferris/sweepmap/hid"
	"github.com/tkferris/sweepmap/keycode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportPressRelease(t *testing.T) {
	var r hid.Report
	r.Press(uint8(keycode.KeyA))
	r.Press(uint8(keycode.KeyLeftShift))
	r.Press(uint8(keycode.KeyMediaNext))

	assert.True(t, r.Pressed(uint8(keycode.KeyA)))
	assert.True(t, r.Pressed(uint8(keycode.KeyLeftShift)))
	assert.Equal(t, keycode.ModLeftShift, r.Mods)
	assert.Equal(t, []uint8{uint8(keycode.KeyA), uint8(keycode.KeyMediaNext)}, r.Keys())

	r.Release(uint8(keycode.KeyLeftShift))
	r.Release(uint8(keycode.KeyA))
	r.Release(uint8(keycode.KeyMediaNext))
	assert.True(t, r.Empty())
}

func TestBuildReport(t *testing.T) {
	var r hid.Report
	r.Mods = keycode.ModLeftCtrl
	r.Press(uint8(keycode.KeyC))

	b := r.BuildReport()
	require.Len(t, b, 34)
	assert.Equal(t, uint8(0x01), b[0])
	assert.Equal(t, uint8(0x00), b[1])
	// KeyC = 0x06 lives in byte 0 bit 6 of the bitmap.
	assert.Equal(t, uint8(1<<6), b[2])
}

func TestMarshalUnmarshal(t *testing.T) {
	var r hid.Report
	r.Mods = keycode.ModLeftShift | keycode.ModRightAlt
	r.Press(uint8(keycode.KeyPeriod))
	r.Press(uint8(keycode.KeyMinus))

	data, err := r.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x42, 2, uint8(keycode.KeyMinus), uint8(keycode.KeyPeriod)}, data)

	var back hid.Report
	require.NoError(t, back.UnmarshalBinary(data))
	assert.Equal(t, r, back)

	assert.ErrorIs(t, back.UnmarshalBinary([]byte{0}), io.ErrUnexpectedEOF)
	assert.ErrorIs(t, back.UnmarshalBinary([]byte{0, 3, 4}), io.ErrUnexpectedEOF)
}

func TestLEDState(t *testing.T) {
	var st hid.LEDState
	require.NoError(t, st.UnmarshalBinary([]byte{hid.LEDCapsLock | hid.LEDKana}))
	assert.Equal(t, hid.LEDState{CapsLock: true, Kana: true}, st)
	assert.Error(t, st.UnmarshalBinary(nil))

	b, err := hid.LEDState{NumLock: true, ScrollLock: true}.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{hid.LEDNumLock | hid.LEDScrollLock}, b)
}

func TestCharKeycode(t *testing.T) {
	tests := []struct {
		c     byte
		want  keycode.Keycode
		shift bool
	}{
		{'a', keycode.KeyA, false},
		{'F', keycode.LSft(keycode.KeyF), true},
		{'-', keycode.KeyMinus, false},
		{'>', keycode.KeyGreaterThan, true},
		{'\'', keycode.KeyApostrophe, false},
		{' ', keycode.KeySpace, false},
	}
	for _, tt := range tests {
		got, ok := hid.CharKeycode(tt.c)
		require.True(t, ok, string(tt.c))
		assert.Equal(t, tt.want, got, string(tt.c))
		assert.Equal(t, tt.shift, hid.NeedsShift(tt.c), string(tt.c))
	}

	_, ok := hid.CharKeycode(0x7F)
	assert.False(t, ok)
}

func TestKeyChar(t *testing.T) {
	tests := []struct {
		usage keycode.Keycode
		shift bool
		want  byte
	}{
		{keycode.KeyA, false, 'a'},
		{keycode.KeyA, true, 'A'},
		{keycode.KeyPeriod, true, '>'},
		{keycode.KeyMinus, false, '-'},
		{keycode.Key2, true, '@'},
		{keycode.KeySpace, true, ' '},
	}
	for _, tt := range tests {
		c, ok := hid.KeyChar(tt.usage, tt.shift)
		require.True(t, ok)
		assert.Equal(t, string(tt.want), string(c))
	}
	_, ok := hid.KeyChar(keycode.KeyLeft, false)
	assert.False(t, ok)

	for _, c := range []byte("Hello, -> world!") {
		kc, ok := hid.CharKeycode(c)
		require.True(t, ok)
		back, ok := hid.KeyChar(kc.Basic(), kc.Mods().Has(keycode.MaskShift))
		require.True(t, ok)
		assert.Equal(t, c, back)
	}
}
