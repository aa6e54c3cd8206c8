package dispatch

import (
	"log/slog"
	"time"

	"github.com/tkferris/sweepmap/keycode"
	"github.com/tkferris/sweepmap/layer"
)

// DefaultLatchTimeout is how long the alt-tab latch stays engaged after
// the last press.
const DefaultLatchTimeout = 1000 * time.Millisecond

// Latch is the alt-tab state shared between key events and the per-tick
// check.
type Latch struct {
	Active   bool
	LastUsed time.Duration
	Timeout  time.Duration
	// Mods are the modifiers the latch asserted itself. Bits that were
	// already held when it engaged are left to their owner.
	Mods keycode.Mods
}

// NewLatch returns an idle latch with the default timeout.
func NewLatch() *Latch {
	return &Latch{Timeout: DefaultLatchTimeout}
}

// Expired reports whether an active latch has been idle past its timeout.
func (l *Latch) Expired(now time.Duration) bool {
	return l.Active && now-l.LastUsed > l.Timeout
}

// Actions maps custom keycodes to their behavior.
type Actions map[keycode.Keycode]Action

// Dispatcher runs custom keycode actions against a Host.
type Dispatcher struct {
	host    Host
	latch   *Latch
	actions Actions
	logger  *slog.Logger
}

// New returns a dispatcher. A nil actions table selects DefaultActions.
func New(host Host, latch *Latch, actions Actions, logger *slog.Logger) *Dispatcher {
	if actions == nil {
		actions = DefaultActions()
	}
	if latch == nil {
		latch = NewLatch()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{host: host, latch: latch, actions: actions, logger: logger}
}

// Latch returns the latch passed to New.
func (d *Dispatcher) Latch() *Latch { return d.latch }

// Lookup returns the action bound to kc.
func (d *Dispatcher) Lookup(kc keycode.Keycode) (Action, bool) {
	a, ok := d.actions[kc]
	return a, ok
}

// IsTapHold reports whether kc needs tap-hold resolution before it reaches
// Process.
func (d *Dispatcher) IsTapHold(kc keycode.Keycode) bool {
	_, ok := d.actions[kc].(DualFunction)
	return ok
}

// Process handles one event. It returns true when kc has no action and the
// caller should apply its default handling, false when the event was
// consumed.
func (d *Dispatcher) Process(kc keycode.Keycode, rec Record) bool {
	a, ok := d.actions[kc]
	if !ok {
		return true
	}
	h := d.host
	switch a := a.(type) {
	case Literal:
		if rec.Pressed {
			d.playUnshifted(a.Output)
			if a.ToBase {
				h.LayerMove(layer.Alpha)
			}
		}
	case ShiftSensitive:
		if rec.Pressed {
			d.shiftSensitive(a)
		}
	case LayerMove:
		if rec.Pressed {
			if a.Tap != keycode.NoKey {
				h.Tap(a.Tap)
			}
			h.LayerMove(a.Layer)
		}
	case DualFunction:
		switch {
		case rec.TapCount > 0:
			if rec.Pressed {
				h.LayerMove(a.Tap)
			}
		case rec.Pressed:
			h.LayerMove(a.Hold)
		default:
			h.LayerMove(a.Release)
		}
	case Latched:
		if rec.Pressed {
			if !d.latch.Active {
				d.latch.Active = true
				d.latch.Mods = a.Mods &^ h.Mods()
				h.SetMods(h.Mods() | a.Mods)
				d.logger.Debug("latch engaged", "mods", a.Mods)
			}
			d.latch.LastUsed = rec.Time
			h.Register(a.Key)
		} else {
			h.Unregister(a.Key)
		}
	default:
		return true
	}
	return false
}

// Task runs the per-tick bookkeeping. It must run after the events of the
// same tick so their latch refreshes are seen.
func (d *Dispatcher) Task(now time.Duration) {
	if !d.latch.Expired(now) {
		return
	}
	d.host.SetMods(d.host.Mods() &^ d.latch.Mods)
	d.logger.Debug("latch released", "mods", d.latch.Mods, "idle", now-d.latch.LastUsed)
	d.latch.Active = false
	d.latch.Mods = 0
}

// playUnshifted plays m with shift lifted so literal text is typed
// exactly. Held shift comes back afterwards; an armed one-shot shift is
// used up.
func (d *Dispatcher) playUnshifted(m Macro) {
	held := d.host.Mods()
	if oneShot := d.host.OneShotMods(); oneShot&keycode.MaskShift != 0 {
		d.host.SetOneShotMods(oneShot &^ keycode.MaskShift)
	}
	if held&keycode.MaskShift == 0 {
		m.play(d.host)
		return
	}
	d.host.SetMods(held &^ keycode.MaskShift)
	m.play(d.host)
	d.host.SetMods(held)
}

// shiftSensitive assumes nothing else changes the held modifiers while
// the alternate output plays; the saved set is written back as is.
func (d *Dispatcher) shiftSensitive(a ShiftSensitive) {
	h := d.host
	held := h.Mods()
	oneShot := h.OneShotMods()
	gated := a.Layers == 0 || a.Layers.Has(h.CurrentLayer())
	if (held|oneShot)&keycode.MaskShift == 0 || !gated {
		a.Default.play(h)
		return
	}
	if oneShot&keycode.MaskShift != 0 {
		h.SetOneShotMods(oneShot &^ keycode.MaskShift)
	}
	h.SetMods(held &^ keycode.MaskShift)
	a.Shifted.play(h)
	h.SetMods(held)
}
