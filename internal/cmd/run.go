package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tkferris/sweepmap/engine"
	"github.com/tkferris/sweepmap/hid"
	"github.com/tkferris/sweepmap/internal/log"
	"github.com/tkferris/sweepmap/keymap"
	"github.com/tkferris/sweepmap/layer"
	"github.com/tkferris/sweepmap/sink"
	"github.com/tkferris/sweepmap/sink/uinput"
	"github.com/tkferris/sweepmap/sink/viiper"
	evsource "github.com/tkferris/sweepmap/source/evdev"
)

// OutputFlags select where reports go.
type OutputFlags struct {
	Output string         `help:"Report destination" enum:"uinput,viiper,log" default:"uinput" env:"SWEEPMAP_OUTPUT"`
	Uinput uinput.Config `embed:"" prefix:"uinput."`
	Viiper viiper.Config `embed:"" prefix:"viiper."`
}

// Run remaps a physical keyboard.
type Run struct {
	KeymapSource `embed:""`
	Engine       engine.Config   `embed:"" prefix:"engine."`
	Input        evsource.Config `embed:"" prefix:"input."`
	OutputFlags  `embed:""`
}

// Run is called by Kong when the run command is executed.
func (r *Run) Run(logger *slog.Logger, raw log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	km, err := r.Load()
	if err != nil {
		return err
	}
	out, closeOut, err := r.open(ctx, logger, raw)
	if err != nil {
		return err
	}
	defer closeOut()

	src, err := openInput(r.Input, logger)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	logger.Info("remapping", "keymap", km.Name, "output", r.Output)
	return runEngine(ctx, km, out, r.Engine, logger, src.Run)
}

type reportCloser interface {
	sink.Writer
	io.Closer
}

type feedFunc func(ctx context.Context, start time.Time, out chan<- engine.Event) error

// open returns the report writer for o. The raw logger always sees the
// reports as well.
func (o OutputFlags) open(ctx context.Context, logger *slog.Logger, raw log.RawLogger) (sink.Writer, func(), error) {
	dump := sink.NewLog(logger.With("component", "report"), raw)
	switch o.Output {
	case "log":
		return dump, func() {}, nil
	case "viiper":
		s, err := viiper.Open(ctx, o.Viiper, logger.With("component", "viiper"),
			viiper.OnLEDs(func(st hid.LEDState) {
				if b, err := st.MarshalBinary(); err == nil {
					raw.Log(false, b)
				}
			}))
		if err != nil {
			return nil, nil, fmt.Errorf("viiper output: %w", err)
		}
		return sink.Tee{s, dump}, closer(logger, "viiper", s), nil
	case "uinput":
		s, err := openUinput(o.Uinput, logger.With("component", "uinput"))
		if err != nil {
			return nil, nil, err
		}
		return sink.Tee{s, dump}, closer(logger, "uinput", s), nil
	default:
		return nil, nil, fmt.Errorf("unknown output %q", o.Output)
	}
}

func closer(logger *slog.Logger, name string, c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			logger.Warn("close output", "output", name, "error", err)
		}
	}
}

// runEngine wires feed -> engine -> out until ctx is done, the feed ends
// or the bootloader key asks for an exit.
func runEngine(ctx context.Context, km *keymap.Keymap, out sink.Writer, cfg engine.Config, logger *slog.Logger, feed feedFunc) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eng := engine.New(km, out, cfg, logger.With("component", "engine"),
		engine.OnBoot(func() {
			logger.Warn("bootloader key pressed, exiting")
			cancel()
		}),
		engine.OnLayer(func(l layer.Layer, color string) {
			logger.Info("layer", "layer", km.LayerName(l), "color", color)
		}),
	)

	start := time.Now()
	events := make(chan engine.Event, 64)
	feedErr := make(chan error, 1)
	go func() {
		defer close(events)
		feedErr <- feed(ctx, start, events)
	}()

	loopErr := eng.Loop(ctx, events, engine.Ticker(ctx, start, cfg.TickInterval))
	cancel()
	var fErr error
	select {
	case fErr = <-feedErr:
	case <-time.After(time.Second):
		logger.Debug("input still blocked after shutdown")
	}
	return errors.Join(loopErr, fErr)
}
