// Package viiper drives a virtual USB keyboard on a VIIPER server. The
// engine's reports are streamed to the device and the host's LED state is
// read back.
package viiper

import (
	"context"
	"encoding"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/tkferris/sweepmap/hid"
	"github.com/tkferris/sweepmap/sink/viiper/api"
)

// Config selects the server and the bus the keyboard is attached to.
type Config struct {
	Addr      string        `help:"VIIPER API server address" default:"localhost:3242" env:"SWEEPMAP_VIIPER_ADDR"`
	Password  string        `help:"VIIPER API password (empty disables authentication)" env:"SWEEPMAP_VIIPER_PASSWORD"`
	Bus       uint32        `help:"Bus to attach to; 0 uses the first existing bus or creates one" default:"0" env:"SWEEPMAP_VIIPER_BUS"`
	VendorID  string        `help:"USB vendor ID override, e.g. 0x1209" env:"SWEEPMAP_VIIPER_VID"`
	ProductID string        `help:"USB product ID override" env:"SWEEPMAP_VIIPER_PID"`
	Timeout   time.Duration `help:"API request timeout" default:"5s" env:"SWEEPMAP_VIIPER_TIMEOUT"`
}

func (c Config) transport() TransportConfig {
	tc := DefaultTransportConfig()
	tc.Password = c.Password
	if c.Timeout > 0 {
		tc.ReadTimeout, tc.WriteTimeout = c.Timeout, c.Timeout
	}
	return tc
}

func (c Config) deviceOptions() (*DeviceOptions, error) {
	var o DeviceOptions
	for _, f := range []struct {
		s   string
		dst **uint16
	}{{c.VendorID, &o.VendorID}, {c.ProductID, &o.ProductID}} {
		if f.s == "" {
			continue
		}
		id, err := api.ParseID(f.s)
		if err != nil {
			return nil, err
		}
		*f.dst = &id
	}
	return &o, nil
}

// Sink writes reports to a VIIPER keyboard.
type Sink struct {
	client  *Client
	stream  *Stream
	device  api.Device
	ownsBus bool
	logger  *slog.Logger
	onLEDs  func(hid.LEDState)

	mu   sync.Mutex
	leds hid.LEDState

	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// Option customizes a Sink.
type Option func(*Sink)

// OnLEDs is called from the feedback reader whenever the host sets the
// keyboard LEDs.
func OnLEDs(f func(hid.LEDState)) Option { return func(s *Sink) { s.onLEDs = f } }

// Open connects to cfg.Addr and attaches a new keyboard.
func Open(ctx context.Context, cfg Config, logger *slog.Logger, opts ...Option) (*Sink, error) {
	return New(ctx, NewClient(NewTransport(cfg.Addr, cfg.transport(), logger)), cfg, logger, opts...)
}

// New attaches a keyboard through client. The bus is cfg.Bus when set and
// otherwise the first bus on the server; a bus that does not exist yet is
// created and removed again on Close.
func New(ctx context.Context, client *Client, cfg Config, logger *slog.Logger, opts ...Option) (*Sink, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Sink{client: client, logger: logger}
	for _, o := range opts {
		o(s)
	}
	devOpts, err := cfg.deviceOptions()
	if err != nil {
		return nil, err
	}

	ping, err := client.Ping(ctx)
	if err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}
	logger.Info("connected to VIIPER", "server", ping.Server, "version", ping.Version)

	busID, err := s.bus(ctx, cfg.Bus)
	if err != nil {
		return nil, err
	}

	dev, err := client.DeviceAdd(ctx, busID, KeyboardType, devOpts)
	if err != nil {
		_ = s.removeBus(ctx, busID)
		return nil, fmt.Errorf("add keyboard: %w", err)
	}
	s.device = *dev
	logger.Info("keyboard attached", "bus", dev.BusID, "device", dev.DevID, "vid", dev.Vid, "pid", dev.Pid)

	s.stream, err = client.OpenStream(ctx, dev.BusID, dev.DevID)
	if err != nil {
		_ = s.detach(ctx)
		return nil, fmt.Errorf("open stream: %w", err)
	}

	readCtx, cancel := context.WithCancel(context.Background())
	s.cancel, s.done = cancel, make(chan struct{})
	go s.readLEDs(readCtx)
	return s, nil
}

func (s *Sink) bus(ctx context.Context, want uint32) (uint32, error) {
	list, err := s.client.BusList(ctx)
	if err != nil {
		return 0, fmt.Errorf("list buses: %w", err)
	}
	if want == 0 && len(list.Buses) > 0 {
		return list.Buses[0], nil
	}
	if want != 0 && slices.Contains(list.Buses, want) {
		return want, nil
	}
	created, err := s.client.BusCreate(ctx, want)
	if err != nil {
		return 0, fmt.Errorf("create bus: %w", err)
	}
	s.ownsBus = true
	s.logger.Info("created bus", "bus", created.BusID)
	return created.BusID, nil
}

func (s *Sink) removeBus(ctx context.Context, busID uint32) error {
	if !s.ownsBus {
		return nil
	}
	if _, err := s.client.BusRemove(ctx, busID); err != nil {
		s.logger.Warn("remove bus", "bus", busID, "error", err)
		return err
	}
	return nil
}

func (s *Sink) detach(ctx context.Context) error {
	var errs []error
	if _, err := s.client.DeviceRemove(ctx, s.device.BusID, s.device.DevID); err != nil {
		s.logger.Warn("remove keyboard", "device", s.device.DevID, "error", err)
		errs = append(errs, err)
	}
	errs = append(errs, s.removeBus(ctx, s.device.BusID))
	return errors.Join(errs...)
}

func (s *Sink) readLEDs(ctx context.Context) {
	defer close(s.done)
	err := s.stream.ReadMessages(ctx, 1,
		func() encoding.BinaryUnmarshaler { return new(hid.LEDState) },
		func(m encoding.BinaryUnmarshaler) {
			st := *m.(*hid.LEDState)
			s.mu.Lock()
			s.leds = st
			s.mu.Unlock()
			s.logger.Debug("leds", "caps", st.CapsLock, "num", st.NumLock, "scroll", st.ScrollLock)
			if s.onLEDs != nil {
				s.onLEDs(st)
			}
		})
	if err != nil && ctx.Err() == nil {
		s.logger.Warn("keyboard feedback stopped", "error", err)
	}
}

// Device returns the attached keyboard.
func (s *Sink) Device() api.Device { return s.device }

// LEDs returns the LED state last set by the host.
func (s *Sink) LEDs() hid.LEDState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.leds
}

func (s *Sink) WriteReport(r hid.Report) error {
	if err := s.stream.WriteBinary(&r); err != nil {
		return fmt.Errorf("viiper %s: %w", s.device.DevID, err)
	}
	return nil
}

// Close stops the feedback reader and detaches the keyboard.
func (s *Sink) Close() error {
	s.closeOnce.Do(func() {
		s.cancel()
		err := s.stream.Close()
		<-s.done
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.closeErr = errors.Join(err, s.detach(ctx))
	})
	return s.closeErr
}
