package engine

import (
	"time"

	"github.com/tkferris/sweepmap/chord"
	"github.com/tkferris/sweepmap/dispatch"
	"github.com/tkferris/sweepmap/keycode"
	"github.com/tkferris/sweepmap/keymap"
)

type rawEvent struct {
	pos     keymap.Position
	kc      keycode.Keycode
	pressed bool
	at      time.Duration
	// combo results keep their keycode when layers change under them.
	combo bool
}

type activeKey struct {
	kc       keycode.Keycode
	tapCount int
	// hold is set when a tap-hold key settled as held.
	hold bool
}

type activeCombo struct {
	pos  keymap.Position
	keys []keymap.Position
	sent bool
}

type tapHold struct {
	rawEvent
	eager keycode.Mods
	queue []rawEvent
	// overdue is set once a mod-tap outlived its tapping term alone. The
	// next key decides it; the chord timeout settles it as held.
	overdue bool
}

// HandleEvent feeds one physical transition through the pipeline.
func (e *Engine) HandleEvent(ev Event) {
	if ev.Time > e.now {
		e.now = ev.Time
	}
	if !ev.Pos.Valid() {
		e.logger.Warn("ignoring key outside the layout", "pos", ev.Pos)
		return
	}
	if ev.Pressed {
		if _, down := e.physical[ev.Pos]; down {
			return
		}
		kc := e.km.Lookup(e.layers, ev.Pos)
		e.physical[ev.Pos] = kc
		e.logger.Debug("press", "pos", ev.Pos, "keycode", kc)
		e.comboPress(rawEvent{pos: ev.Pos, kc: kc, pressed: true, at: ev.Time})
		return
	}
	kc, down := e.physical[ev.Pos]
	if !down {
		return
	}
	delete(e.physical, ev.Pos)
	e.logger.Debug("release", "pos", ev.Pos, "keycode", kc)
	e.comboRelease(rawEvent{pos: ev.Pos, kc: kc, at: ev.Time})
}

func (e *Engine) pendingKeys(extra keycode.Keycode) []keycode.Keycode {
	keys := make([]keycode.Keycode, 0, len(e.comboPending)+1)
	for _, p := range e.comboPending {
		keys = append(keys, p.kc)
	}
	return append(keys, extra)
}

func (e *Engine) comboPress(ev rawEvent) {
	if len(e.km.Combos) == 0 {
		e.feed(ev)
		return
	}
	keys := e.pendingKeys(ev.kc)
	l := e.CurrentLayer()
	if e.km.Combos.Candidates(keys, l) {
		e.comboPending = append(e.comboPending, ev)
		if c, ok := e.km.Combos.Match(keys, l); ok && !e.km.Combos.Longer(keys, l) {
			e.fireCombo(c.Result)
		}
		return
	}
	if len(e.comboPending) > 0 {
		e.flushCombo(false)
		e.comboPress(ev)
		return
	}
	e.feed(ev)
}

func (e *Engine) comboRelease(ev rawEvent) {
	for _, p := range e.comboPending {
		if p.pos == ev.pos {
			e.flushCombo(false)
			e.feed(ev)
			return
		}
	}
	for i, c := range e.combos {
		for j, pos := range c.keys {
			if pos != ev.pos {
				continue
			}
			c.keys = append(c.keys[:j], c.keys[j+1:]...)
			if !c.sent {
				c.sent = true
				e.feed(rawEvent{pos: c.pos, at: ev.at})
			}
			if len(c.keys) == 0 {
				e.combos = append(e.combos[:i], e.combos[i+1:]...)
			}
			return
		}
	}
	e.feed(ev)
}

func (e *Engine) fireCombo(result keycode.Keycode) {
	c := &activeCombo{pos: e.comboPending[0].pos}
	for _, p := range e.comboPending {
		c.keys = append(c.keys, p.pos)
	}
	at := e.comboPending[len(e.comboPending)-1].at
	e.comboPending = nil
	e.combos = append(e.combos, c)
	e.logger.Debug("combo", "result", result, "keys", c.keys)
	e.feed(rawEvent{pos: c.pos, kc: result, pressed: true, at: at, combo: true})
}

// flushCombo ends combo buffering. With match set, a complete combo still
// fires; otherwise the buffered presses go through as plain keys.
func (e *Engine) flushCombo(match bool) {
	if len(e.comboPending) == 0 {
		return
	}
	if match {
		keys := e.pendingKeys(keycode.NoKey)
		keys = keys[:len(keys)-1]
		if c, ok := e.km.Combos.Match(keys, e.CurrentLayer()); ok {
			e.fireCombo(c.Result)
			return
		}
	}
	q := e.comboPending
	e.comboPending = nil
	for _, ev := range q {
		e.feed(ev)
	}
}

func (e *Engine) isTapHold(kc keycode.Keycode) bool {
	return kc.IsTapHold() || e.disp.IsTapHold(kc)
}

// feed is the tap-hold stage.
func (e *Engine) feed(ev rawEvent) {
	if th := e.pending; th != nil {
		switch {
		case ev.pos == th.pos && !ev.pressed:
			e.settle(th.overdue)
			e.feed(ev)
			return
		case ev.pressed:
			if e.policy.Chord(chord.Key{Code: th.kc, Pos: th.pos}, chord.Key{Code: ev.kc, Pos: ev.pos}) {
				e.settle(true)
				e.feed(e.relookup(ev))
				return
			}
			if th.overdue {
				e.settle(false)
				e.feed(ev)
				return
			}
			th.queue = append(th.queue, ev)
			return
		case th.queued(ev.pos):
			th.queue = append(th.queue, ev)
			return
		}
	}

	if !ev.pressed {
		e.resolved(ev.pos, ev.kc, false, 0)
		return
	}
	streak := e.anyPress && ev.at-e.lastPress < e.policy.StreakTimeout(ev.kc)
	e.lastPress, e.anyPress = ev.at, true
	if !e.isTapHold(ev.kc) {
		e.resolved(ev.pos, ev.kc, true, 0)
		return
	}
	if streak {
		e.logger.Debug("streak tap", "keycode", ev.kc)
		e.tap(ev)
		return
	}
	th := &tapHold{rawEvent: ev}
	if ev.kc.IsModTap() && e.policy.EagerMod(ev.kc.Mods()) {
		th.eager = ev.kc.Mods() &^ e.mods
		if th.eager != 0 {
			e.mods |= th.eager
			e.send()
		}
	}
	e.pending = th
}

func (th *tapHold) queued(pos keymap.Position) bool {
	for _, q := range th.queue {
		if q.pos == pos && q.pressed {
			return true
		}
	}
	return false
}

// deadline returns when the undecided key next needs attention: the
// tapping term while it is alone, the chord timeout after that.
func (e *Engine) deadline(th *tapHold) (time.Duration, bool) {
	if len(th.queue) == 0 && !th.overdue {
		return th.at + e.policy.TappingTerm(th.kc), true
	}
	if t := e.policy.Timeout(th.kc); t > 0 {
		return th.at + t, true
	}
	return 0, false
}

// expire handles a reached deadline. A lone mod-tap past its tapping term
// stays undecided until the next key or the chord timeout; everything else
// settles as held.
func (e *Engine) expire(th *tapHold) {
	if !th.overdue && len(th.queue) == 0 && th.kc.IsModTap() && e.policy.Timeout(th.kc) > 0 {
		if th.at+e.policy.Timeout(th.kc) > e.now {
			th.overdue = true
			e.logger.Debug("tapping term passed, waiting for the next key", "keycode", th.kc)
			return
		}
	}
	e.settle(true)
}

// settle decides the pending tap-hold key and replays what queued behind
// it.
func (e *Engine) settle(hold bool) {
	th := e.pending
	e.pending = nil
	if hold {
		e.hold(th)
	} else {
		if th.eager != 0 {
			e.mods &^= th.eager
			e.send()
		}
		e.tap(th.rawEvent)
	}
	for _, q := range th.queue {
		if hold {
			q = e.relookup(q)
		}
		e.feed(q)
	}
}

// relookup refreshes the keycode of a press that waited behind a key
// which has since changed layers.
func (e *Engine) relookup(ev rawEvent) rawEvent {
	if !ev.pressed || ev.combo {
		return ev
	}
	if _, down := e.physical[ev.pos]; !down {
		return ev
	}
	ev.kc = e.km.Lookup(e.layers, ev.pos)
	e.physical[ev.pos] = ev.kc
	return ev
}

func (e *Engine) tap(ev rawEvent) {
	kc := ev.kc
	if kc.IsModTap() || kc.IsLayerTap() {
		kc = kc.Basic()
	}
	e.resolved(ev.pos, kc, true, 1)
}

func (e *Engine) hold(th *tapHold) {
	kc := th.kc
	e.logger.Debug("hold", "keycode", kc)
	e.active[th.pos] = activeKey{kc: kc, hold: true}
	switch {
	case kc.IsModTap():
		e.mods |= kc.Mods()
		e.send()
	case kc.IsLayerTap():
		e.LayerOn(layerOf(kc))
	default:
		e.disp.Process(kc, dispatch.Record{Pressed: true, Time: th.at, Pos: th.pos})
	}
}

func (e *Engine) releaseHold(pos keymap.Position, a activeKey) {
	switch {
	case a.kc.IsModTap():
		e.mods &^= a.kc.Mods()
		e.send()
	case a.kc.IsLayerTap():
		e.LayerOff(layerOf(a.kc))
	default:
		e.disp.Process(a.kc, dispatch.Record{Time: e.now, Pos: pos})
	}
}

// resolved runs key overrides, the dispatcher and default handling for a
// settled key.
func (e *Engine) resolved(pos keymap.Position, kc keycode.Keycode, pressed bool, tapCount int) {
	if !pressed {
		a, ok := e.active[pos]
		if !ok {
			return
		}
		delete(e.active, pos)
		if a.hold {
			e.releaseHold(pos, a)
			return
		}
		rec := dispatch.Record{Time: e.now, TapCount: a.tapCount, Pos: pos}
		if e.disp.Process(a.kc, rec) {
			e.defaultRelease(a.kc)
		}
		return
	}

	l := e.CurrentLayer()
	if o, ok := e.km.Overrides.Find(e.mods|e.oneShot, kc, l); ok {
		// Held trigger mods come back after the replacement; one-shot
		// ones are used up by it.
		suppressed := o.Suppressed(e.mods | e.oneShot)
		e.logger.Debug("override", "trigger", o.Trigger, "replacement", o.Replacement)
		e.oneShot &^= suppressed
		held := suppressed & e.mods
		e.mods &^= held
		e.send()
		e.press(pos, o.Replacement, tapCount)
		e.mods |= held
		e.send()
		return
	}
	e.press(pos, kc, tapCount)
}

func (e *Engine) press(pos keymap.Position, kc keycode.Keycode, tapCount int) {
	e.active[pos] = activeKey{kc: kc, tapCount: tapCount}
	rec := dispatch.Record{Pressed: true, Time: e.now, TapCount: tapCount, Pos: pos}
	if e.disp.Process(kc, rec) {
		e.defaultPress(kc)
	}
}
