//go:build linux

// Package uinput writes keyboard reports to a Linux uinput device, so the
// engine's output shows up as an ordinary local keyboard.
package uinput

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"syscall"
	"time"

	"github.com/holoplot/go-evdev"
	"golang.org/x/sys/unix"

	"github.com/tkferris/sweepmap/hid"
	"github.com/tkferris/sweepmap/keycode"
)

// DevicePath is the uinput control node.
const DevicePath = "/dev/uinput"

// ErrNoAccess is returned by Preflight when the uinput node is missing or
// not writable.
var ErrNoAccess = errors.New("uinput not accessible")

// Preflight checks that the uinput node exists and is writable by this
// process.
func Preflight() error {
	if err := unix.Access(DevicePath, unix.W_OK); err != nil {
		return fmt.Errorf("%w: %s: %v (load the uinput module and check permissions)", ErrNoAccess, DevicePath, err)
	}
	return nil
}

// Device is what the sink writes events to.
type Device interface {
	WriteOne(ev *evdev.InputEvent) error
	Close() error
}

// Sink turns report changes into EV_KEY events followed by SYN_REPORT.
type Sink struct {
	dev    Device
	logger *slog.Logger

	mu   sync.Mutex
	prev hid.Report
}

// Open creates the virtual keyboard.
func Open(cfg Config, logger *slog.Logger) (*Sink, error) {
	if err := Preflight(); err != nil {
		return nil, err
	}
	dev, err := evdev.CreateDevice(cfg.Name,
		evdev.InputID{BusType: 0x03, Vendor: cfg.VendorID, Product: cfg.ProductID, Version: 1},
		map[evdev.EvType][]evdev.EvCode{evdev.EV_KEY: Codes()},
	)
	if err != nil {
		return nil, fmt.Errorf("create uinput keyboard: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger.Info("uinput keyboard created", "name", cfg.Name, "keys", len(evdevCodes))
	return New(dev, logger), nil
}

// New returns a sink writing to dev.
func New(dev Device, logger *slog.Logger) *Sink {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Sink{dev: dev, logger: logger}
}

func (s *Sink) WriteReport(r hid.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := Diff(s.prev, r)
	if len(events) == 0 {
		return nil
	}
	tv := syscall.NsecToTimeval(time.Now().UnixNano())
	for i := range events {
		events[i].Time = tv
		if err := s.dev.WriteOne(&events[i]); err != nil {
			return fmt.Errorf("uinput write: %w", err)
		}
	}
	s.prev = r
	return nil
}

// Close releases every held key and destroys the device.
func (s *Sink) Close() error {
	err := s.WriteReport(hid.Report{})
	return errors.Join(err, s.dev.Close())
}

// Diff returns the key events that turn prev into next, ending with
// SYN_REPORT. Releases come before presses; modifiers are pressed before
// and released after the other keys. Usages without a Linux key code are
// dropped.
func Diff(prev, next hid.Report) []evdev.InputEvent {
	var releases, presses []evdev.InputEvent
	key := func(usage keycode.Keycode, down bool) {
		code, ok := Code(usage)
		if !ok {
			return
		}
		ev := evdev.InputEvent{Type: evdev.EV_KEY, Code: code}
		if down {
			ev.Value = int32(evdev.KeyDown)
			presses = append(presses, ev)
		} else {
			ev.Value = int32(evdev.KeyUp)
			releases = append(releases, ev)
		}
	}

	for _, u := range prev.Keys() {
		if !next.Pressed(u) {
			key(keycode.Keycode(u), false)
		}
	}
	for i := 0; i < 8; i++ {
		bit := keycode.Mods(1 << i)
		usage := keycode.KeyLeftCtrl + keycode.Keycode(i)
		switch {
		case prev.Mods.Has(bit) && !next.Mods.Has(bit):
			key(usage, false)
		case !prev.Mods.Has(bit) && next.Mods.Has(bit):
			key(usage, true)
		}
	}
	for _, u := range next.Keys() {
		if !prev.Pressed(u) {
			key(keycode.Keycode(u), true)
		}
	}

	if len(releases)+len(presses) == 0 {
		return nil
	}
	out := append(releases, presses...)
	return append(out, evdev.InputEvent{Type: evdev.EV_SYN, Code: evdev.SYN_REPORT})
}
