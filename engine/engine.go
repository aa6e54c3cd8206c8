// Package engine is the keyboard runtime: it turns physical key
// transitions into HID reports through combos, tap-hold resolution, key
// overrides, the custom keycode dispatcher and default keycode handling.
//
// An Engine is not safe for concurrent use. Loop owns it for the lifetime
// of a run.
package engine

import (
	"log/slog"
	"time"

	"github.com/tkferris/sweepmap/chord"
	"github.com/tkferris/sweepmap/dispatch"
	"github.com/tkferris/sweepmap/hid"
	"github.com/tkferris/sweepmap/keycode"
	"github.com/tkferris/sweepmap/keymap"
	"github.com/tkferris/sweepmap/layer"
)

// Event is one physical key transition.
type Event struct {
	Pos     keymap.Position
	Pressed bool
	// Time is monotonic, measured from the start of the run.
	Time time.Duration
}

// Sink receives every changed report.
type Sink interface {
	WriteReport(r hid.Report) error
}

// Config holds the timing knobs of the engine.
type Config struct {
	TappingTerm   time.Duration `help:"Time a lone tap-hold key may be held and still tap" default:"200ms"`
	ChordTimeout  time.Duration `help:"Longest wait for a same-hand tap-hold decision" default:"800ms"`
	StreakTimeout time.Duration `help:"Typing streak window that forces taps (0 disables)" default:"100ms"`
	ComboTerm     time.Duration `help:"Window in which combo keys must all be pressed" default:"50ms"`
	LatchTimeout  time.Duration `help:"Idle time after which the alt-tab latch releases" default:"1s"`
	TickInterval  time.Duration `help:"Housekeeping tick interval" default:"5ms"`
}

// DefaultConfig returns the timing the built-in keymaps are tuned for.
func DefaultConfig() Config {
	return Config{
		TappingTerm:   chord.DefaultTappingTerm,
		ChordTimeout:  chord.DefaultTimeout,
		StreakTimeout: chord.DefaultStreakTimeout,
		ComboTerm:     50 * time.Millisecond,
		LatchTimeout:  dispatch.DefaultLatchTimeout,
		TickInterval:  5 * time.Millisecond,
	}
}

// Policy returns the default chord policy with c's timing.
func (c Config) Policy() *chord.Achordion {
	p := chord.Default()
	p.Term = c.TappingTerm
	p.Wait = c.ChordTimeout
	p.Streak = c.StreakTimeout
	return p
}

// Option customizes an Engine.
type Option func(*Engine)

// WithPolicy replaces the tap-hold policy.
func WithPolicy(p chord.Policy) Option { return func(e *Engine) { e.policy = p } }

// WithActions replaces the custom keycode table.
func WithActions(a dispatch.Actions) Option { return func(e *Engine) { e.actions = a } }

// OnBoot is called when the bootloader key is pressed.
func OnBoot(f func()) Option { return func(e *Engine) { e.onBoot = f } }

// OnLayer is called from the tick whenever the highest layer changes.
func OnLayer(f func(l layer.Layer, color string)) Option {
	return func(e *Engine) { e.onLayer = f }
}

// Engine implements dispatch.Host for its dispatcher.
type Engine struct {
	cfg     Config
	km      *keymap.Keymap
	sink    Sink
	logger  *slog.Logger
	policy  chord.Policy
	actions dispatch.Actions
	latch   *dispatch.Latch
	disp    *dispatch.Dispatcher
	onBoot  func()
	onLayer func(layer.Layer, string)

	now    time.Duration
	layers layer.State

	keys    hid.Report // held usages; Mods unused
	mods    keycode.Mods
	weak    keycode.Mods
	weakKey keycode.Keycode
	oneShot keycode.Mods
	sent    hid.Report
	sinkErr error

	// physical maps a pressed position to the keycode looked up on press.
	physical map[keymap.Position]keycode.Keycode
	// active maps a position to what its press resolved to.
	active map[keymap.Position]activeKey

	comboPending []rawEvent
	combos       []*activeCombo

	pending   *tapHold
	lastPress time.Duration
	anyPress  bool

	indicated    layer.Layer
	hasIndicated bool
}

// New returns an engine for km writing to sink.
func New(km *keymap.Keymap, sink Sink, cfg Config, logger *slog.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	e := &Engine{
		cfg:      cfg,
		km:       km,
		sink:     sink,
		logger:   logger,
		physical: map[keymap.Position]keycode.Keycode{},
		active:   map[keymap.Position]activeKey{},
	}
	e.policy = cfg.Policy()
	for _, o := range opts {
		o(e)
	}
	e.latch = &dispatch.Latch{Timeout: cfg.LatchTimeout}
	e.disp = dispatch.New(e, e.latch, e.actions, logger.With("component", "dispatch"))
	return e
}

// Keymap returns the keymap the engine runs.
func (e *Engine) Keymap() *keymap.Keymap { return e.km }

// Layers returns the current layer state.
func (e *Engine) Layers() layer.State { return e.layers }

// Report returns the last report written to the sink.
func (e *Engine) Report() hid.Report { return e.sent }

// Reset releases every key, drops modifiers, one-shots and the latch, and
// returns to the default layer.
func (e *Engine) Reset() {
	e.keys = hid.Report{}
	e.mods, e.weak, e.weakKey, e.oneShot = 0, 0, 0, 0
	e.layers.Clear()
	e.physical = map[keymap.Position]keycode.Keycode{}
	e.active = map[keymap.Position]activeKey{}
	e.comboPending = nil
	e.combos = nil
	e.pending = nil
	e.latch.Active = false
	e.latch.Mods = 0
	e.send()
}

// Err returns the first error returned by the sink.
func (e *Engine) Err() error { return e.sinkErr }

func (e *Engine) send() {
	r := e.keys
	r.Mods |= e.mods | e.weak
	if r == e.sent {
		return
	}
	e.sent = r
	if err := e.sink.WriteReport(r); err != nil {
		if e.sinkErr == nil {
			e.sinkErr = err
		}
		e.logger.Error("write report", "error", err)
	}
}
