package dispatch

import (
	"github.com/tkferris/sweepmap/keycode"
	"github.com/tkferris/sweepmap/layer"
)

// DefaultActions returns the action table of the built-in custom keycodes.
func DefaultActions() Actions {
	a := Actions{
		keycode.ArrowMacro: Literal{Output: Macro{Text("->")}},
		keycode.VimF:       Literal{Output: Macro{Text("f")}, ToBase: true},
		keycode.VimFF:      Literal{Output: Macro{Key(keycode.LSft(keycode.KeyF))}, ToBase: true},
		keycode.VimT:       Literal{Output: Macro{Text("t")}, ToBase: true},
		keycode.VimTT:      Literal{Output: Macro{Key(keycode.LSft(keycode.KeyT))}, ToBase: true},

		keycode.Copy:  ctrl(keycode.KeyC),
		keycode.Cut:   ctrl(keycode.KeyX),
		keycode.Paste: ctrl(keycode.KeyV),
		keycode.Undo:  ctrl(keycode.KeyZ),
		keycode.Redo:  ctrl(keycode.KeyY),
		keycode.Find:  ctrl(keycode.KeyF),

		keycode.ShiftDot: ShiftSensitive{
			Default: Macro{Key(keycode.KeyPeriod)},
			Shifted: Macro{Text("->")},
		},
		keycode.ShiftComma: ShiftSensitive{
			Default: Macro{Key(keycode.KeyComma)},
			Shifted: Macro{Text("' ")},
			Layers:  layer.MaskOf(layer.Alpha),
		},

		keycode.EscBase: LayerMove{Layer: layer.Alpha, Tap: keycode.KeyEscape},
		keycode.SymNav:  DualFunction{Tap: layer.Sym, Hold: layer.Nav, Release: layer.Alpha},

		keycode.AltTab:      Latched{Mods: keycode.ModLeftAlt, Key: keycode.KeyTab},
		keycode.AltShiftTab: Latched{Mods: keycode.ModLeftAlt, Key: keycode.LSft(keycode.KeyTab)},
	}
	digits := []keycode.Keycode{
		keycode.Key1, keycode.Key2, keycode.Key3, keycode.Key4, keycode.Key5,
		keycode.Key6, keycode.Key7, keycode.Key8, keycode.Key9,
	}
	for i, d := range digits {
		a[keycode.Win1+keycode.Keycode(i)] = Literal{Output: Macro{Key(keycode.LGui(d))}}
	}
	return a
}

func ctrl(k keycode.Keycode) Literal {
	return Literal{Output: Macro{Key(keycode.LCtl(k))}}
}
