package hid

import "io"

// LED bitmasks
const (
	LEDNumLock    = 0x01
	LEDCapsLock   = 0x02
	LEDScrollLock = 0x04
	LEDCompose    = 0x08
	LEDKana       = 0x10
)

// LEDState represents the state of keyboard LEDs controlled by the host.
type LEDState struct {
	NumLock    bool
	CapsLock   bool
	ScrollLock bool
	Compose    bool
	Kana       bool
}

// UnmarshalBinary decodes a 1-byte LED bitmask into LEDState.
func (st *LEDState) UnmarshalBinary(data []byte) error {
	if len(data) < 1 {
		return io.ErrUnexpectedEOF
	}
	b := data[0]
	st.NumLock = b&LEDNumLock != 0
	st.CapsLock = b&LEDCapsLock != 0
	st.ScrollLock = b&LEDScrollLock != 0
	st.Compose = b&LEDCompose != 0
	st.Kana = b&LEDKana != 0
	return nil
}

// MarshalBinary encodes st as the 1-byte LED bitmask.
func (st LEDState) MarshalBinary() ([]byte, error) {
	var b byte
	for _, f := range []struct {
		on  bool
		bit byte
	}{
		{st.NumLock, LEDNumLock},
		{st.CapsLock, LEDCapsLock},
		{st.ScrollLock, LEDScrollLock},
		{st.Compose, LEDCompose},
		{st.Kana, LEDKana},
	} {
		if f.on {
			b |= f.bit
		}
	}
	return []byte{b}, nil
}
