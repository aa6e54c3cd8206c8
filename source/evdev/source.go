//go:build linux

// Package evdev reads a physical keyboard through the Linux input
// subsystem and turns its key codes into board positions.
package evdev

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/holoplot/go-evdev"

	"github.com/tkferris/sweepmap/engine"
)

// Reader is the part of an input device the source reads from.
type Reader interface {
	ReadOne() (*evdev.InputEvent, error)
}

// Source forwards key transitions of one input device.
type Source struct {
	dev     *evdev.InputDevice
	reader  Reader
	mapping Mapping
	grabbed bool
	logger  *slog.Logger
}

// Open opens cfg.Device, by path when it starts with '/' and by name
// otherwise.
func Open(cfg Config, logger *slog.Logger) (*Source, error) {
	if cfg.Device == "" {
		return nil, errors.New("no input device configured")
	}
	mapping, err := ParseMapping(DefaultMapping(), cfg.Map)
	if err != nil {
		return nil, err
	}

	var dev *evdev.InputDevice
	if strings.HasPrefix(cfg.Device, "/") {
		dev, err = evdev.Open(cfg.Device)
	} else {
		dev, err = evdev.OpenByName(cfg.Device)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Device, err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Source{dev: dev, reader: dev, mapping: mapping, logger: logger}
	name, _ := dev.Name()
	if cfg.Grab {
		if err := dev.Grab(); err != nil {
			_ = dev.Close()
			return nil, fmt.Errorf("grab %s: %w", cfg.Device, err)
		}
		s.grabbed = true
	}
	logger.Info("input device opened", "path", dev.Path(), "name", name, "grabbed", s.grabbed)
	return s, nil
}

// New returns a source reading from r. It is meant for tests and for
// readers that are not device nodes.
func New(r Reader, mapping Mapping, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Source{reader: r, mapping: mapping, logger: logger}
}

// Run reads events until ctx is done or the device fails, sending mapped
// key transitions to out. Event times are measured from start.
// Autorepeat and unmapped keys are dropped.
func (s *Source) Run(ctx context.Context, start time.Time, out chan<- engine.Event) error {
	for {
		ev, err := s.reader.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}
		if ev.Type != evdev.EV_KEY {
			continue
		}
		kev := evdev.NewKeyEvent(ev)
		if kev.State == evdev.KeyHold {
			continue
		}
		pos, ok := s.mapping[ev.Code]
		if !ok {
			s.logger.Debug("unmapped key", "code", evdev.CodeName(evdev.EV_KEY, ev.Code))
			continue
		}
		select {
		case out <- engine.Event{Pos: pos, Pressed: kev.State == evdev.KeyDown, Time: time.Since(start)}:
		case <-ctx.Done():
			return nil
		}
	}
}

// Close releases the grab and closes the device. Closing unblocks Run.
func (s *Source) Close() error {
	if s.dev == nil {
		return nil
	}
	var errs []error
	if s.grabbed {
		errs = append(errs, s.dev.Ungrab())
	}
	errs = append(errs, s.dev.Close())
	return errors.Join(errs...)
}

// Device describes an input device found by List.
type Device struct {
	Path string
	Name string
	Keys int
}

// List returns the input devices that report key events.
func List() ([]Device, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, fmt.Errorf("list input devices: %w", err)
	}
	var out []Device
	for _, p := range paths {
		d, err := evdev.OpenWithFlags(p.Path, os.O_RDONLY)
		if err != nil {
			continue
		}
		keys := len(d.CapableEvents(evdev.EV_KEY))
		_ = d.Close()
		if keys == 0 {
			continue
		}
		out = append(out, Device{Path: p.Path, Name: p.Name, Keys: keys})
	}
	return out, nil
}
