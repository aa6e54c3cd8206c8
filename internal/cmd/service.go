package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Service installs sweepmap as a system service running "run".
type Service struct {
	Install   ServiceInstall   `cmd:"" help:"Install and start the service"`
	Uninstall ServiceUninstall `cmd:"" help:"Stop and remove the service"`
}

// ServiceInstall writes and enables the unit.
type ServiceInstall struct {
	ConfigFile string `arg:"" optional:"" help:"Config file the service runs with" type:"existingfile"`
}

func (s *ServiceInstall) Run(logger *slog.Logger) error {
	return install(logger, s.ConfigFile)
}

// ServiceUninstall removes the unit.
type ServiceUninstall struct{}

func (s *ServiceUninstall) Run(logger *slog.Logger) error {
	return uninstall(logger)
}

func currentExecutable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return exe, nil
}
