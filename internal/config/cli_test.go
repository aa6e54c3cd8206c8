package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args []string, opts ...kong.Option) (*CLI, *kong.Context) {
	t.Helper()
	var cli CLI
	opts = append([]kong.Option{kong.Name("sweepmap"), kong.Exit(func(int) { t.Fatal("unexpected exit") })}, opts...)
	parser, err := kong.New(&cli, opts...)
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, ctx
}

func TestRunDefaults(t *testing.T) {
	cli, ctx := parse(t, []string{"run"})
	assert.Equal(t, "run", ctx.Command())
	assert.Equal(t, "graphite", cli.Run.Keymap)
	assert.Equal(t, "uinput", cli.Run.Output)
	assert.Equal(t, 200*time.Millisecond, cli.Run.Engine.TappingTerm)
	assert.Equal(t, 5*time.Millisecond, cli.Run.Engine.TickInterval)
	assert.True(t, cli.Run.Input.Grab)
	assert.Equal(t, "info", cli.Log.Level)
}

func TestRunFlags(t *testing.T) {
	cli, _ := parse(t, []string{
		"--log.level=debug", "run",
		"--keymap=colemak-dh", "--output=viiper", "--viiper.addr=10.0.0.2:3242",
		"--engine.tapping-term=180ms", "--no-input.grab", "--input.map=KEY_B=14",
	})
	assert.Equal(t, "debug", cli.Log.Level)
	assert.Equal(t, "colemak-dh", cli.Run.Keymap)
	assert.Equal(t, "viiper", cli.Run.Output)
	assert.Equal(t, "10.0.0.2:3242", cli.Run.Viiper.Addr)
	assert.Equal(t, 180*time.Millisecond, cli.Run.Engine.TappingTerm)
	assert.False(t, cli.Run.Input.Grab)
	assert.Equal(t, []string{"KEY_B=14"}, cli.Run.Input.Map)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweepmap.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"keymap": "colemak-dh", "output": "log", "engine": {"combo-term": "40ms"}}`), 0o644))

	cli, _ := parse(t, []string{"run"}, kong.Configuration(kong.JSON, path))
	assert.Equal(t, "colemak-dh", cli.Run.Keymap)
	assert.Equal(t, "log", cli.Run.Output)
	assert.Equal(t, 40*time.Millisecond, cli.Run.Engine.ComboTerm)

	cli, _ = parse(t, []string{"run", "--keymap=graphite"}, kong.Configuration(kong.JSON, path))
	assert.Equal(t, "graphite", cli.Run.Keymap, "flags win over the file")
}

func TestConfigFlagAndCommand(t *testing.T) {
	cli, ctx := parse(t, []string{"--config", "x.toml", "config", "init", "try", "--format=toml"})
	assert.Equal(t, "config init <command>", ctx.Command())
	assert.Equal(t, "try", cli.Config.Init.Command)
	assert.Equal(t, "toml", cli.Config.Init.Format)
	assert.True(t, filepath.IsAbs(cli.ConfigFile))
}
