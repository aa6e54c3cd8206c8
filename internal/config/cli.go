// Package config declares the sweepmap command line.
package config

import (
	"github.com/tkferris/sweepmap/internal/cmd"
	"github.com/tkferris/sweepmap/internal/log"
)

// CLI is the root command parsed by kong. Values come from flags, then
// environment variables, then the first config file found.
type CLI struct {
	ConfigFile string     `name:"config" help:"Config file (JSON, YAML or TOML by extension)" type:"path" env:"SWEEPMAP_CONFIG"`
	Log        log.Config `embed:"" prefix:"log."`

	Run     cmd.Run           `cmd:"" help:"Remap a physical keyboard"`
	Try     cmd.Try           `cmd:"" help:"Try a keymap in the terminal"`
	Layout  cmd.Layout        `cmd:"" help:"Draw keymap layers"`
	Keymap  cmd.KeymapCommand `cmd:"" help:"Manage keymap files"`
	Devices cmd.Devices       `cmd:"" help:"List input devices"`
	Config  cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
	Service cmd.Service       `cmd:"" help:"Manage the system service"`
}
