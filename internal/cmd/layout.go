package cmd

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/tkferris/sweepmap/internal/layout"
	"github.com/tkferris/sweepmap/layer"
)

// Layout prints keymap layers as grids.
type Layout struct {
	KeymapSource `embed:""`
	Layers       []string `arg:"" optional:"" help:"Layer names or numbers to draw (default: all)"`
	Style        string   `help:"Drawing style; auto draws boxes on a terminal" enum:"auto,plain,box" default:"auto"`
	Width        int      `help:"Label width of a key" default:"7"`
}

func (c *Layout) Run() error {
	km, err := c.Load()
	if err != nil {
		return err
	}
	var layers []layer.Layer
	for _, s := range c.Layers {
		l, ok := km.LayerByName(s)
		if !ok {
			var n int
			if _, err := fmt.Sscanf(s, "%d", &n); err != nil || n < 0 || n >= len(km.Layers) {
				return fmt.Errorf("keymap %s has no layer %q", km.Name, s)
			}
			l = layer.Layer(n)
		}
		layers = append(layers, l)
	}
	style := layout.Style(c.Style)
	if c.Style == "auto" {
		style = layout.Plain
		if term.IsTerminal(int(os.Stdout.Fd())) {
			style = layout.Box
		}
	}
	return layout.Render(os.Stdout, km, layers, layout.Options{Style: style, Width: c.Width})
}
