package keymap

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tkferris/sweepmap/combo"
	"github.com/tkferris/sweepmap/keycode"
	"github.com/tkferris/sweepmap/layer"
	"github.com/tkferris/sweepmap/override"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// Format is a keymap file encoding.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

var ErrFormat = errors.New("unsupported keymap format")

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
}

// File is the on-disk form of a keymap. Keycodes are written by name.
type File struct {
	Name      string         `yaml:"name" toml:"name"`
	Layers    []FileLayer    `yaml:"layers" toml:"layers"`
	Overrides []FileOverride `yaml:"overrides,omitempty" toml:"overrides,omitempty"`
	Combos    []FileCombo    `yaml:"combos,omitempty" toml:"combos,omitempty"`
}

type FileLayer struct {
	Name  string   `yaml:"name" toml:"name"`
	Color string   `yaml:"color,omitempty" toml:"color,omitempty"`
	Keys  []string `yaml:"keys,flow" toml:"keys"`
}

type FileOverride struct {
	Mods        string   `yaml:"mods" toml:"mods"`
	Trigger     string   `yaml:"trigger" toml:"trigger"`
	Replacement string   `yaml:"replacement" toml:"replacement"`
	Layers      []string `yaml:"layers,omitempty,flow" toml:"layers,omitempty"`
}

type FileCombo struct {
	Keys   []string `yaml:"keys,flow" toml:"keys"`
	Result string   `yaml:"result" toml:"result"`
	Layers []string `yaml:"layers,omitempty,flow" toml:"layers,omitempty"`
}

// Load reads a keymap file, picking the decoder from the extension.
func Load(path string) (*Keymap, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	k, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return k, nil
}

// Decode reads and validates a keymap.
func Decode(r io.Reader, format Format) (*Keymap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var f File
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &f)
	case TOML:
		err = toml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	k, err := f.Keymap()
	if err != nil {
		return nil, err
	}
	if err := k.Validate(); err != nil {
		return nil, err
	}
	return k, nil
}

// Encode writes k in the given format.
func Encode(w io.Writer, k *Keymap, format Format) error {
	f := k.File()
	var (
		data []byte
		err  error
	)
	switch format {
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		err = enc.Encode(f)
		data = buf.Bytes()
	case TOML:
		data, err = toml.Marshal(f)
	default:
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	_, err = w.Write(data)
	return err
}

// Keymap converts the file form into tables.
func (f *File) Keymap() (*Keymap, error) {
	k := &Keymap{Name: f.Name}
	if len(f.Layers) == 0 {
		return nil, fmt.Errorf("%w: no layers", ErrLayerCount)
	}
	for i, l := range f.Layers {
		name := l.Name
		if name == "" {
			name = fmt.Sprintf("L%d", i)
		}
		k.LayerNames = append(k.LayerNames, name)
		k.Colors = append(k.Colors, l.Color)
	}
	resolve := k.resolver()
	for _, l := range f.Layers {
		g, err := ParseGrid(l.Keys, resolve)
		if err != nil {
			return nil, fmt.Errorf("layer %s: %w", l.Name, err)
		}
		k.Layers = append(k.Layers, g)
	}
	for i, o := range f.Overrides {
		ov, err := o.override(k, resolve)
		if err != nil {
			return nil, fmt.Errorf("override %d: %w", i, err)
		}
		k.Overrides = append(k.Overrides, ov)
	}
	for i, c := range f.Combos {
		cb, err := c.combo(k, resolve)
		if err != nil {
			return nil, fmt.Errorf("combo %d: %w", i, err)
		}
		k.Combos = append(k.Combos, cb)
	}
	if allEmpty(k.Colors) {
		k.Colors = nil
	}
	return k, nil
}

func (o FileOverride) override(k *Keymap, resolve keycode.LayerResolver) (override.Override, error) {
	mods, ok := keycode.ParseMods(o.Mods)
	if !ok || mods == 0 {
		return override.Override{}, fmt.Errorf("bad mods %q", o.Mods)
	}
	trigger, err := keycode.Parse(o.Trigger, resolve)
	if err != nil {
		return override.Override{}, err
	}
	repl, err := keycode.Parse(o.Replacement, resolve)
	if err != nil {
		return override.Override{}, err
	}
	layers, err := k.parseMask(o.Layers)
	if err != nil {
		return override.Override{}, err
	}
	return override.WithLayers(mods, trigger, repl, layers), nil
}

func (c FileCombo) combo(k *Keymap, resolve keycode.LayerResolver) (combo.Combo, error) {
	result, err := keycode.Parse(c.Result, resolve)
	if err != nil {
		return combo.Combo{}, err
	}
	keys := make([]keycode.Keycode, 0, len(c.Keys))
	for _, s := range c.Keys {
		kc, err := keycode.Parse(s, resolve)
		if err != nil {
			return combo.Combo{}, err
		}
		keys = append(keys, kc)
	}
	layers, err := k.parseMask(c.Layers)
	if err != nil {
		return combo.Combo{}, err
	}
	cb := combo.New(result, keys...)
	cb.Layers = layers
	return cb, nil
}

func (k *Keymap) parseMask(names []string) (layer.Mask, error) {
	if len(names) == 0 {
		return layer.All, nil
	}
	var m layer.Mask
	for _, n := range names {
		l, ok := k.LayerByName(n)
		if !ok {
			return 0, fmt.Errorf("%w: %q", keycode.ErrUnknownLayer, n)
		}
		m |= layer.MaskOf(l)
	}
	return m, nil
}

// File converts k into its on-disk form.
func (k *Keymap) File() File {
	name := func(l uint8) string { return k.LayerName(layer.Layer(l)) }
	f := File{Name: k.Name}
	for i, g := range k.Layers {
		fl := FileLayer{Name: k.LayerName(layer.Layer(i)), Color: k.Color(layer.Layer(i))}
		if fl.Name == "" {
			fl.Name = fmt.Sprintf("L%d", i)
		}
		for _, kc := range g {
			fl.Keys = append(fl.Keys, keycode.Format(kc, name))
		}
		f.Layers = append(f.Layers, fl)
	}
	for _, o := range k.Overrides {
		f.Overrides = append(f.Overrides, FileOverride{
			Mods:        o.Mods.String(),
			Trigger:     keycode.Format(o.Trigger, name),
			Replacement: keycode.Format(o.Replacement, name),
			Layers:      k.maskNames(o.Layers),
		})
	}
	for _, c := range k.Combos {
		fc := FileCombo{Result: keycode.Format(c.Result, name), Layers: k.maskNames(c.Layers)}
		for _, kc := range c.Keys {
			fc.Keys = append(fc.Keys, keycode.Format(kc, name))
		}
		f.Combos = append(f.Combos, fc)
	}
	return f
}

func (k *Keymap) maskNames(m layer.Mask) []string {
	if m == layer.All {
		return nil
	}
	var out []string
	for i := range k.Layers {
		if m.Has(layer.Layer(i)) {
			n := k.LayerName(layer.Layer(i))
			if n == "" {
				n = fmt.Sprintf("L%d", i)
			}
			out = append(out, n)
		}
	}
	return out
}

func allEmpty(ss []string) bool {
	for _, s := range ss {
		if s != "" {
			return false
		}
	}
	return true
}
