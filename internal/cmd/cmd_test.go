package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkferris/sweepmap/engine"
	"github.com/tkferris/sweepmap/keymap"
	"github.com/tkferris/sweepmap/sink"
)

func discard() *slog.Logger { return slog.New(slog.DiscardHandler) }

func TestTemplateRun(t *testing.T) {
	root, err := Template("run")
	require.NoError(t, err)

	assert.Equal(t, "graphite", root["keymap"])
	assert.Equal(t, "uinput", root["output"])

	eng, ok := root["engine"].(map[string]any)
	require.True(t, ok, "engine section: %#v", root["engine"])
	assert.Equal(t, "200ms", eng["tapping-term"])
	assert.Equal(t, "1s", eng["latch-timeout"])

	viiper, ok := root["viiper"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "localhost:3242", viiper["addr"])

	input, ok := root["input"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, input["grab"])

	_, err = Template("bogus")
	assert.Error(t, err)
}

func TestConfigInitWritesFormats(t *testing.T) {
	dir := t.TempDir()
	for _, format := range []string{"json", "yaml", "toml"} {
		dest := filepath.Join(dir, "sub", "try."+format)
		c := &ConfigInit{Command: "try", Format: format, Output: dest}
		require.NoError(t, c.Run(discard()), format)
		data, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Contains(t, string(data), "graphite", format)

		assert.Error(t, c.Run(discard()), "refuses to overwrite")
		c.Force = true
		assert.NoError(t, c.Run(discard()))
	}

	data, err := os.ReadFile(filepath.Join(dir, "sub", "try.json"))
	require.NoError(t, err)
	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.NotContains(t, parsed, "output", "try has no output flags")
}

func TestKeymapSource(t *testing.T) {
	km, err := KeymapSource{Keymap: "colemak-dh"}.Load()
	require.NoError(t, err)
	assert.Equal(t, "colemak-dh", km.Name)

	_, err = KeymapSource{Keymap: "dvorak"}.Load()
	assert.ErrorIs(t, err, keymap.ErrUnknownKeymap)
}

func TestKeymapExportAndCheck(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "graphite.yaml")
	tomlPath := filepath.Join(dir, "graphite.toml")

	for _, p := range []string{yamlPath, tomlPath} {
		exp := &KeymapExport{KeymapSource: KeymapSource{Keymap: "graphite"}, Output: p}
		require.NoError(t, exp.Run(discard()))
		assert.Error(t, exp.Run(discard()))
	}

	require.NoError(t, (&KeymapCheck{Files: []string{yamlPath, tomlPath}}).Run(discard()))

	km, err := KeymapSource{KeymapFile: tomlPath}.Load()
	require.NoError(t, err)
	orig, err := keymap.Builtin("graphite")
	require.NoError(t, err)
	assert.Equal(t, orig.Layers, km.Layers)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("name: x\nlayers: []\n"), 0o644))
	err = (&KeymapCheck{Files: []string{yamlPath, bad}}).Run(discard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}

func TestPrintBuiltins(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printBuiltins(&buf))
	assert.Contains(t, buf.String(), "colemak-dh")
	assert.Contains(t, buf.String(), "graphite     8 layers")
}

func TestRunEngineTypes(t *testing.T) {
	km, err := keymap.Builtin("graphite")
	require.NoError(t, err)

	var buf bytes.Buffer
	text := sink.NewText(&buf, "\n")
	feed := func(ctx context.Context, start time.Time, out chan<- engine.Event) error {
		for _, pos := range []keymap.Position{0, 1} {
			out <- engine.Event{Pos: pos, Pressed: true, Time: time.Since(start)}
			out <- engine.Event{Pos: pos, Pressed: false, Time: time.Since(start)}
		}
		time.Sleep(100 * time.Millisecond)
		return nil
	}
	cfg := engine.DefaultConfig()
	require.NoError(t, runEngine(context.Background(), km, text, cfg, discard(), feed))
	assert.Equal(t, "ql", buf.String())
}

func TestOutputLog(t *testing.T) {
	w, closeFn, err := OutputFlags{Output: "log"}.open(context.Background(), discard(), nil)
	require.NoError(t, err)
	defer closeFn()
	_, ok := w.(*sink.Log)
	assert.True(t, ok)

	_, _, err = OutputFlags{Output: "carrier-pigeon"}.open(context.Background(), discard(), nil)
	assert.Error(t, err)
}

func TestFlagKey(t *testing.T) {
	type flags struct {
		TappingTerm string
		VendorID    uint16
		Keymap      string
		ConfigFile  string `name:"config"`
	}
	typ := reflect.TypeOf(flags{})
	want := []string{"tapping-term", "vendor-id", "keymap", "config"}
	for i, w := range want {
		assert.Equal(t, w, flagKey(typ.Field(i)))
	}
}
