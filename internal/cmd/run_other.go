//go:build !linux

package cmd

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/tkferris/sweepmap/engine"
	"github.com/tkferris/sweepmap/sink/uinput"
	evsource "github.com/tkferris/sweepmap/source/evdev"
)

var errLinuxOnly = errors.New("evdev input and uinput output need Linux; use 'try' or --output=viiper")

type input interface {
	Run(ctx context.Context, start time.Time, out chan<- engine.Event) error
	Close() error
}

func openInput(evsource.Config, *slog.Logger) (input, error) { return nil, errLinuxOnly }

func openUinput(uinput.Config, *slog.Logger) (reportCloser, error) { return nil, errLinuxOnly }

func listDevices() error { return errLinuxOnly }
