package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/tkferris/sweepmap/internal/configpaths"
	"github.com/tkferris/sweepmap/keymap"
)

// KeymapSource picks the keymap a command works on.
type KeymapSource struct {
	Keymap     string `help:"Built-in keymap (colemak-dh, graphite)" default:"graphite" env:"SWEEPMAP_KEYMAP"`
	KeymapFile string `help:"Load the keymap from a YAML or TOML file instead of a built-in" type:"path" env:"SWEEPMAP_KEYMAP_FILE"`
}

// Load returns the selected keymap.
func (k KeymapSource) Load() (*keymap.Keymap, error) {
	if k.KeymapFile != "" {
		return keymap.Load(k.KeymapFile)
	}
	return keymap.Builtin(k.Keymap)
}

// KeymapCommand groups keymap file subcommands.
type KeymapCommand struct {
	List   KeymapList   `cmd:"" help:"List the built-in keymaps"`
	Export KeymapExport `cmd:"" help:"Write a keymap to a YAML or TOML file"`
	Check  KeymapCheck  `cmd:"" help:"Validate keymap files"`
}

// KeymapList prints the built-in keymap names.
type KeymapList struct{}

func (c *KeymapList) Run() error {
	return printBuiltins(os.Stdout)
}

func printBuiltins(w io.Writer) error {
	for _, name := range keymap.Builtins() {
		km, err := keymap.Builtin(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%-12s %d layers, %d overrides, %d combos\n",
			name, len(km.Layers), len(km.Overrides), len(km.Combos)); err != nil {
			return err
		}
	}
	return nil
}

// KeymapExport writes a keymap out so it can be edited and loaded back
// with --keymap-file.
type KeymapExport struct {
	KeymapSource `embed:""`
	Output       string `arg:"" help:"Destination file (.yaml, .yml or .toml); '-' writes YAML to stdout"`
	Force        bool   `help:"Overwrite if the file already exists"`
}

func (c *KeymapExport) Run(logger *slog.Logger) error {
	km, err := c.Load()
	if err != nil {
		return err
	}
	if c.Output == "-" {
		return keymap.Encode(os.Stdout, km, keymap.YAML)
	}
	format, err := keymap.FormatOf(c.Output)
	if err != nil {
		return err
	}
	if !c.Force {
		if _, err := os.Stat(c.Output); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(c.Output); err != nil {
		return err
	}
	f, err := os.Create(c.Output)
	if err != nil {
		return err
	}
	if err := keymap.Encode(f, km, format); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("keymap exported", "keymap", km.Name, "file", c.Output, "format", format)
	return nil
}

// KeymapCheck loads and validates keymap files.
type KeymapCheck struct {
	Files []string `arg:"" help:"Keymap files to check" type:"existingfile"`
}

func (c *KeymapCheck) Run(logger *slog.Logger) error {
	var failed []string
	for _, path := range c.Files {
		km, err := keymap.Load(path)
		if err != nil {
			logger.Error("invalid keymap", "file", path, "error", err)
			failed = append(failed, path)
			continue
		}
		logger.Info("keymap ok", "file", path, "name", km.Name, "layers", len(km.Layers),
			"overrides", len(km.Overrides), "combos", len(km.Combos))
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d invalid keymap(s): %s", len(failed), strings.Join(failed, ", "))
	}
	return nil
}
