//go:build !linux

package cmd

import (
	"errors"
	"log/slog"
)

var errNoService = errors.New("service installation is only supported with systemd on Linux")

func install(*slog.Logger, string) error { return errNoService }

func uninstall(*slog.Logger) error { return errNoService }
