//go:build linux

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/tkferris/sweepmap/engine"
	"github.com/tkferris/sweepmap/sink/uinput"
	evsource "github.com/tkferris/sweepmap/source/evdev"
)

type input interface {
	Run(ctx context.Context, start time.Time, out chan<- engine.Event) error
	Close() error
}

func openInput(cfg evsource.Config, logger *slog.Logger) (input, error) {
	src, err := evsource.Open(cfg, logger.With("component", "input"))
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	return src, nil
}

func openUinput(cfg uinput.Config, logger *slog.Logger) (reportCloser, error) {
	s, err := uinput.Open(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("uinput output: %w", err)
	}
	return s, nil
}

func listDevices() error {
	devs, err := evsource.List()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tNAME\tKEYS")
	for _, d := range devs {
		fmt.Fprintf(w, "%s\t%s\t%d\n", d.Path, d.Name, d.Keys)
	}
	return w.Flush()
}
