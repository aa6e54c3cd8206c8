// Package layout draws keymap layers as split-board grids.
package layout

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tkferris/sweepmap/keycode"
	"github.com/tkferris/sweepmap/keymap"
	"github.com/tkferris/sweepmap/layer"
)

// Style selects how grids are drawn.
type Style string

const (
	// Plain draws fixed width text columns.
	Plain Style = "plain"
	// Box draws a bordered cell per key.
	Box Style = "box"
)

// Options tune Render.
type Options struct {
	Style Style
	// Width is the label width of one key; longer labels are cut.
	Width int
}

func (o Options) width() int {
	if o.Width <= 0 {
		return 7
	}
	return o.Width
}

// Label is the short name of kc shown in a grid cell: the keycode name
// without its KC_ prefixes, blank for KC_NO and "▽" for KC_TRNS.
func Label(km *keymap.Keymap, kc keycode.Keycode) string {
	switch kc {
	case keycode.NoKey:
		return ""
	case keycode.Transparent:
		return "▽"
	}
	name := keycode.Format(kc, func(l uint8) string { return km.LayerName(layer.Layer(l)) })
	return strings.ReplaceAll(name, "KC_", "")
}

// Render writes the given layers of km to w. No layers means all of them.
func Render(w io.Writer, km *keymap.Keymap, layers []layer.Layer, opts Options) error {
	if len(layers) == 0 {
		for i := range km.Layers {
			layers = append(layers, layer.Layer(i))
		}
	}
	r := lipgloss.NewRenderer(w)
	for i, l := range layers {
		if int(l) >= len(km.Layers) {
			return fmt.Errorf("keymap %s has no layer %d", km.Name, l)
		}
		var out string
		if opts.Style == Box {
			out = box(r, km, l, opts.width())
		} else {
			out = plain(km, l, opts.width())
		}
		if i > 0 {
			out = "\n" + out
		}
		if _, err := io.WriteString(w, title(r, km, l)+"\n"+out+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func title(r *lipgloss.Renderer, km *keymap.Keymap, l layer.Layer) string {
	name := km.LayerName(l)
	if name == "" {
		name = fmt.Sprintf("layer %d", l)
	}
	s := r.NewStyle().Bold(true)
	if c := km.Color(l); c != "" && c != keymap.ColorBlack {
		s = s.Foreground(lipgloss.Color(c))
	}
	return s.Render(fmt.Sprintf("%d %s", l, name))
}

func cut(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width])
	}
	return s
}

func plain(km *keymap.Keymap, l layer.Layer, width int) string {
	g := km.Layers[l]
	cell := func(pos int) string {
		return fmt.Sprintf("%-*s", width, cut(Label(km, g[pos]), width))
	}
	var b strings.Builder
	for row := 0; row < 3; row++ {
		var left, right []string
		for c := 0; c < 5; c++ {
			left = append(left, cell(row*10+c))
			right = append(right, cell(row*10+5+c))
		}
		b.WriteString(strings.TrimRight(strings.Join(left, " ")+"   "+strings.Join(right, " "), " "))
		b.WriteByte('\n')
	}
	pad := strings.Repeat(" ", 3*(width+1))
	thumbs := pad + cell(30) + " " + cell(31) + "   " + cell(32) + " " + cell(33)
	b.WriteString(strings.TrimRight(thumbs, " "))
	return b.String()
}

func box(r *lipgloss.Renderer, km *keymap.Keymap, l layer.Layer, width int) string {
	g := km.Layers[l]
	style := r.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder())
	cells := func(positions ...int) string {
		parts := make([]string, len(positions))
		for i, p := range positions {
			parts[i] = style.Render(cut(Label(km, g[p]), width))
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	gap := "  "
	var rows []string
	for row := 0; row < 3; row++ {
		b := row * 10
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			cells(b, b+1, b+2, b+3, b+4), gap, cells(b+5, b+6, b+7, b+8, b+9)))
	}
	pad := strings.Repeat(" ", 3*(width+2))
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
		pad, cells(30, 31), gap, cells(32, 33)))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
