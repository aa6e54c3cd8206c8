package keycode

// HID Usage codes for keyboard keys (USB HID Keyboard/Keypad usage page)
const (
	// Letters A-Z
	KeyA Keycode = 0x04
	KeyB Keycode = 0x05
	KeyC Keycode = 0x06
	KeyD Keycode = 0x07
	KeyE Keycode = 0x08
	KeyF Keycode = 0x09
	KeyG Keycode = 0x0A
	KeyH Keycode = 0x0B
	KeyI Keycode = 0x0C
	KeyJ Keycode = 0x0D
	KeyK Keycode = 0x0E
	KeyL Keycode = 0x0F
	KeyM Keycode = 0x10
	KeyN Keycode = 0x11
	KeyO Keycode = 0x12
	KeyP Keycode = 0x13
	KeyQ Keycode = 0x14
	KeyR Keycode = 0x15
	KeyS Keycode = 0x16
	KeyT Keycode = 0x17
	KeyU Keycode = 0x18
	KeyV Keycode = 0x19
	KeyW Keycode = 0x1A
	KeyX Keycode = 0x1B
	KeyY Keycode = 0x1C
	KeyZ Keycode = 0x1D

	// Numbers 1-0 (top row)
	Key1 Keycode = 0x1E
	Key2 Keycode = 0x1F
	Key3 Keycode = 0x20
	Key4 Keycode = 0x21
	Key5 Keycode = 0x22
	Key6 Keycode = 0x23
	Key7 Keycode = 0x24
	Key8 Keycode = 0x25
	Key9 Keycode = 0x26
	Key0 Keycode = 0x27

	KeyEnter      Keycode = 0x28
	KeyEscape     Keycode = 0x29
	KeyBackspace  Keycode = 0x2A
	KeyTab        Keycode = 0x2B
	KeySpace      Keycode = 0x2C
	KeyMinus      Keycode = 0x2D // - and _
	KeyEqual      Keycode = 0x2E // = and +
	KeyLeftBrace  Keycode = 0x2F // [ and {
	KeyRightBrace Keycode = 0x30 // ] and }
	KeyBackslash  Keycode = 0x31 // \ and |
	KeyNonUSHash  Keycode = 0x32
	KeySemicolon  Keycode = 0x33 // ; and :
	KeyApostrophe Keycode = 0x34 // ' and "
	KeyGrave      Keycode = 0x35 // ` and ~
	KeyComma      Keycode = 0x36 // , and <
	KeyPeriod     Keycode = 0x37 // . and >
	KeySlash      Keycode = 0x38 // / and ?
	KeyCapsLock   Keycode = 0x39

	KeyF1  Keycode = 0x3A
	KeyF2  Keycode = 0x3B
	KeyF3  Keycode = 0x3C
	KeyF4  Keycode = 0x3D
	KeyF5  Keycode = 0x3E
	KeyF6  Keycode = 0x3F
	KeyF7  Keycode = 0x40
	KeyF8  Keycode = 0x41
	KeyF9  Keycode = 0x42
	KeyF10 Keycode = 0x43
	KeyF11 Keycode = 0x44
	KeyF12 Keycode = 0x45

	KeyPrintScreen Keycode = 0x46
	KeyScrollLock  Keycode = 0x47
	KeyPause       Keycode = 0x48
	KeyInsert      Keycode = 0x49
	KeyHome        Keycode = 0x4A
	KeyPageUp      Keycode = 0x4B
	KeyDelete      Keycode = 0x4C
	KeyEnd         Keycode = 0x4D
	KeyPageDown    Keycode = 0x4E

	KeyRight Keycode = 0x4F
	KeyLeft  Keycode = 0x50
	KeyDown  Keycode = 0x51
	KeyUp    Keycode = 0x52

	KeyNumLock    Keycode = 0x53
	KeyKpSlash    Keycode = 0x54
	KeyKpAsterisk Keycode = 0x55
	KeyKpMinus    Keycode = 0x56
	KeyKpPlus     Keycode = 0x57
	KeyKpEnter    Keycode = 0x58
	KeyKp1        Keycode = 0x59
	KeyKp2        Keycode = 0x5A
	KeyKp3        Keycode = 0x5B
	KeyKp4        Keycode = 0x5C
	KeyKp5        Keycode = 0x5D
	KeyKp6        Keycode = 0x5E
	KeyKp7        Keycode = 0x5F
	KeyKp8        Keycode = 0x60
	KeyKp9        Keycode = 0x61
	KeyKp0        Keycode = 0x62
	KeyKpDot      Keycode = 0x63

	KeyNonUSBackslash Keycode = 0x64
	KeyApplication    Keycode = 0x65
	KeyKpEqual        Keycode = 0x67

	KeyF13 Keycode = 0x68
	KeyF14 Keycode = 0x69
	KeyF15 Keycode = 0x6A
	KeyF16 Keycode = 0x6B
	KeyF17 Keycode = 0x6C
	KeyF18 Keycode = 0x6D
	KeyF19 Keycode = 0x6E
	KeyF20 Keycode = 0x6F
	KeyF21 Keycode = 0x70
	KeyF22 Keycode = 0x71
	KeyF23 Keycode = 0x72
	KeyF24 Keycode = 0x73

	KeyMute       Keycode = 0x7F
	KeyVolumeUp   Keycode = 0x80
	KeyVolumeDown Keycode = 0x81

	// Mouse keys. These occupy otherwise unused usages and never reach a report.
	KeyMouseUp    Keycode = 0xCD
	KeyMouseDown  Keycode = 0xCE
	KeyMouseLeft  Keycode = 0xCF
	KeyMouseRight Keycode = 0xD0
	KeyMouseBtn1  Keycode = 0xD1
	KeyMouseBtn2  Keycode = 0xD2
	KeyMouseBtn3  Keycode = 0xD3
	KeyWheelUp    Keycode = 0xD9
	KeyWheelDown  Keycode = 0xDA
	KeyWheelLeft  Keycode = 0xDB
	KeyWheelRight Keycode = 0xDC

	KeyLeftCtrl   Keycode = 0xE0
	KeyLeftShift  Keycode = 0xE1
	KeyLeftAlt    Keycode = 0xE2
	KeyLeftGUI    Keycode = 0xE3
	KeyRightCtrl  Keycode = 0xE4
	KeyRightShift Keycode = 0xE5
	KeyRightAlt   Keycode = 0xE6
	KeyRightGUI   Keycode = 0xE7

	// Media control keys
	KeyMediaPlayPause Keycode = 0xE8
	KeyMediaStop      Keycode = 0xE9
	KeyMediaNext      Keycode = 0xEB
	KeyMediaPrevious  Keycode = 0xEC
)

// Shifted symbols.
const shifted = Keycode(mod5Shift) << 8

const (
	KeyTilde        = KeyGrave | shifted
	KeyExclaim      = Key1 | shifted
	KeyAt           = Key2 | shifted
	KeyHash         = Key3 | shifted
	KeyDollar       = Key4 | shifted
	KeyPercent      = Key5 | shifted
	KeyCircumflex   = Key6 | shifted
	KeyAmpersand    = Key7 | shifted
	KeyAsterisk     = Key8 | shifted
	KeyLeftParen    = Key9 | shifted
	KeyRightParen   = Key0 | shifted
	KeyUnderscore   = KeyMinus | shifted
	KeyPlus         = KeyEqual | shifted
	KeyLeftCurly    = KeyLeftBrace | shifted
	KeyRightCurly   = KeyRightBrace | shifted
	KeyPipe         = KeyBackslash | shifted
	KeyColon        = KeySemicolon | shifted
	KeyDoubleQuote  = KeyApostrophe | shifted
	KeyLessThan     = KeyComma | shifted
	KeyGreaterThan  = KeyPeriod | shifted
	KeyQuestionMark = KeySlash | shifted
)
