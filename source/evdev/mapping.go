//go:build linux

package evdev

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/holoplot/go-evdev"

	"github.com/tkferris/sweepmap/keymap"
)

// Mapping assigns physical key codes of the source keyboard to positions.
type Mapping map[evdev.EvCode]keymap.Position

// DefaultMapping lays the 34 keys over the letter block of a regular
// QWERTY keyboard: Q-P, A-;, Z-/ for the three rows, left alt and space
// for the left thumbs, right alt and right ctrl for the right thumbs.
func DefaultMapping() Mapping {
	rows := [][]evdev.EvCode{
		{evdev.KEY_Q, evdev.KEY_W, evdev.KEY_E, evdev.KEY_R, evdev.KEY_T, evdev.KEY_Y, evdev.KEY_U, evdev.KEY_I, evdev.KEY_O, evdev.KEY_P},
		{evdev.KEY_A, evdev.KEY_S, evdev.KEY_D, evdev.KEY_F, evdev.KEY_G, evdev.KEY_H, evdev.KEY_J, evdev.KEY_K, evdev.KEY_L, evdev.KEY_SEMICOLON},
		{evdev.KEY_Z, evdev.KEY_X, evdev.KEY_C, evdev.KEY_V, evdev.KEY_B, evdev.KEY_N, evdev.KEY_M, evdev.KEY_COMMA, evdev.KEY_DOT, evdev.KEY_SLASH},
		{evdev.KEY_LEFTALT, evdev.KEY_SPACE, evdev.KEY_RIGHTALT, evdev.KEY_RIGHTCTRL},
	}
	m := Mapping{}
	for r, row := range rows {
		for c, code := range row {
			m[code] = keymap.Position(r*10 + c)
		}
	}
	return m
}

// ParseMapping applies "KEY_NAME=position" overrides on top of base.
func ParseMapping(base Mapping, overrides []string) (Mapping, error) {
	m := Mapping{}
	for k, v := range base {
		m[k] = v
	}
	for _, o := range overrides {
		name, posStr, ok := strings.Cut(o, "=")
		if !ok {
			return nil, fmt.Errorf("key mapping %q: want KEY_NAME=position", o)
		}
		name = strings.ToUpper(strings.TrimSpace(name))
		code, ok := evdev.KEYFromString[name]
		if !ok {
			return nil, fmt.Errorf("key mapping %q: unknown key %q", o, name)
		}
		pos, err := strconv.Atoi(strings.TrimSpace(posStr))
		if err != nil || !keymap.Position(pos).Valid() || pos < 0 {
			return nil, fmt.Errorf("key mapping %q: position must be 0-%d", o, keymap.NumKeys-1)
		}
		for k, v := range m {
			if v == keymap.Position(pos) {
				delete(m, k)
			}
		}
		m[code] = keymap.Position(pos)
	}
	return m, nil
}
