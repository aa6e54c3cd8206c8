package keycode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownKeycode = errors.New("unknown keycode")
	ErrUnknownLayer   = errors.New("unknown layer")
)

// LayerResolver maps a layer name used inside LT, TO and MO to its index.
type LayerResolver func(name string) (uint8, bool)

var chordAliases = map[string]Mods{
	"LCTL": ModLeftCtrl, "C": ModLeftCtrl,
	"LSFT": ModLeftShift, "S": ModLeftShift,
	"LALT": ModLeftAlt, "A": ModLeftAlt,
	"LGUI": ModLeftGUI, "G": ModLeftGUI, "LWIN": ModLeftGUI,
	"RCTL": ModRightCtrl,
	"RSFT": ModRightShift,
	"RALT": ModRightAlt,
	"RGUI": ModRightGUI, "RWIN": ModRightGUI,
}

var modTapAliases = map[string]Mods{
	"CTL_T": ModLeftCtrl, "SFT_T": ModLeftShift, "ALT_T": ModLeftAlt,
	"GUI_T": ModLeftGUI, "WIN_T": ModLeftGUI, "LWIN_T": ModLeftGUI, "RWIN_T": ModRightGUI,
}

func init() {
	for m, fn := range modTapFuncs {
		modTapAliases[fn] = m
	}
}

// Parse reads a keycode written in keymap notation, for example "KC_A",
// "LCTL_T(KC_S)", "LT(NAV,KC_SPC)" or "TO(1)". layers may be nil, in which
// case layer arguments must be numbers.
func Parse(s string, layers LayerResolver) (Keycode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NoKey, fmt.Errorf("%w: empty", ErrUnknownKeycode)
	}
	if code, ok := codeByName[s]; ok {
		return code, nil
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 16)
		if err != nil {
			return NoKey, fmt.Errorf("%w: %q", ErrUnknownKeycode, s)
		}
		return Keycode(v), nil
	}

	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return NoKey, fmt.Errorf("%w: %q", ErrUnknownKeycode, s)
	}
	fn := s[:open]
	args := splitArgs(s[open+1 : len(s)-1])

	switch {
	case chordAliases[fn] != 0:
		if len(args) != 1 {
			return NoKey, fmt.Errorf("%w: %s takes one argument", ErrUnknownKeycode, fn)
		}
		inner, err := Parse(args[0], layers)
		if err != nil {
			return NoKey, err
		}
		if !inner.IsBasic() && !inner.IsChord() {
			return NoKey, fmt.Errorf("%w: %s needs a basic keycode, got %q", ErrUnknownKeycode, fn, args[0])
		}
		return WithMods(chordAliases[fn]|inner.Mods(), inner), nil

	case modTapAliases[fn] != 0:
		if len(args) != 1 {
			return NoKey, fmt.Errorf("%w: %s takes one argument", ErrUnknownKeycode, fn)
		}
		return parseModTap(modTapAliases[fn], args[0], layers)
	}

	switch fn {
	case "MT":
		if len(args) != 2 {
			return NoKey, fmt.Errorf("%w: MT takes two arguments", ErrUnknownKeycode)
		}
		m, ok := ParseMods(args[0])
		if !ok || m == 0 {
			return NoKey, fmt.Errorf("%w: bad modifiers %q", ErrUnknownKeycode, args[0])
		}
		return parseModTap(m, args[1], layers)
	case "LT":
		if len(args) != 2 {
			return NoKey, fmt.Errorf("%w: LT takes two arguments", ErrUnknownKeycode)
		}
		l, err := parseLayer(args[0], layers)
		if err != nil {
			return NoKey, err
		}
		inner, err := Parse(args[1], layers)
		if err != nil {
			return NoKey, err
		}
		if !inner.IsBasic() {
			return NoKey, fmt.Errorf("%w: LT needs a basic keycode, got %q", ErrUnknownKeycode, args[1])
		}
		return LayerTap(l, inner), nil
	case "TO", "MO":
		if len(args) != 1 {
			return NoKey, fmt.Errorf("%w: %s takes one argument", ErrUnknownKeycode, fn)
		}
		l, err := parseLayer(args[0], layers)
		if err != nil {
			return NoKey, err
		}
		if fn == "TO" {
			return To(l), nil
		}
		return Momentary(l), nil
	case "OSM":
		if len(args) != 1 {
			return NoKey, fmt.Errorf("%w: OSM takes one argument", ErrUnknownKeycode)
		}
		m, ok := ParseMods(args[0])
		if !ok || m == 0 {
			return NoKey, fmt.Errorf("%w: bad modifiers %q", ErrUnknownKeycode, args[0])
		}
		return OneShot(m), nil
	}
	return NoKey, fmt.Errorf("%w: %q", ErrUnknownKeycode, s)
}

func parseModTap(m Mods, arg string, layers LayerResolver) (Keycode, error) {
	inner, err := Parse(arg, layers)
	if err != nil {
		return NoKey, err
	}
	if !inner.IsBasic() {
		return NoKey, fmt.Errorf("%w: mod-tap needs a basic keycode, got %q", ErrUnknownKeycode, arg)
	}
	return ModTap(m, inner), nil
}

func parseLayer(s string, layers LayerResolver) (uint8, error) {
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		if n > MaxLayer {
			return 0, fmt.Errorf("%w: %d out of range", ErrUnknownLayer, n)
		}
		return uint8(n), nil
	}
	if layers != nil {
		if l, ok := layers(s); ok {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLayer, s)
}

// splitArgs splits a comma separated argument list, ignoring commas inside
// nested parentheses.
func splitArgs(s string) []string {
	var out []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(out, strings.TrimSpace(s[start:]))
}
