package keycode

// Custom keycodes. Their behavior lives in the dispatch package; they are
// declared here so keymaps and keymap files can name them.
const (
	ArrowMacro Keycode = SafeRange + iota
	VimF
	VimFF
	VimT
	VimTT
	Copy
	Cut
	Paste
	Undo
	Redo
	Find
	ShiftDot
	ShiftComma
	EscBase
	SymNav
	AltTab
	AltShiftTab
	Win1
	Win2
	Win3
	Win4
	Win5
	Win6
	Win7
	Win8
	Win9
)

var customNames = map[Keycode]string{
	ArrowMacro:  "ARROW_MACRO",
	VimF:        "VIM_F",
	VimFF:       "VIM_FF",
	VimT:        "VIM_T",
	VimTT:       "VIM_TT",
	Copy:        "COPY",
	Cut:         "CUT",
	Paste:       "PASTE",
	Undo:        "UNDO",
	Redo:        "REDO",
	Find:        "FIND",
	ShiftDot:    "SFT_DOT",
	ShiftComma:  "SFT_COMM",
	EscBase:     "ESC_BASE",
	SymNav:      "SYM_NAV",
	AltTab:      "ALT_TAB",
	AltShiftTab: "ALT_STAB",
	Win1:        "WIN_1",
	Win2:        "WIN_2",
	Win3:        "WIN_3",
	Win4:        "WIN_4",
	Win5:        "WIN_5",
	Win6:        "WIN_6",
	Win7:        "WIN_7",
	Win8:        "WIN_8",
	Win9:        "WIN_9",
}
