package engine

import (
	"context"
	"fmt"
	"time"
)

// Task runs the per-tick housekeeping at now: tap-hold deadlines, the
// combo window, the alt-tab latch and the layer indicator.
func (e *Engine) Task(now time.Duration) {
	if now > e.now {
		e.now = now
	}
	now = e.now
	if th := e.pending; th != nil {
		if at, ok := e.deadline(th); ok && now >= at {
			e.expire(th)
		}
	}
	if len(e.comboPending) > 0 && now-e.comboPending[0].at >= e.cfg.ComboTerm {
		e.flushCombo(true)
	}
	e.disp.Task(now)
	e.indicate()
}

func (e *Engine) indicate() {
	l := e.layers.Highest()
	if e.hasIndicated && l == e.indicated {
		return
	}
	e.indicated, e.hasIndicated = l, true
	color := e.km.Color(l)
	e.logger.Debug("layer", "layer", l, "name", e.km.LayerName(l), "color", color)
	if e.onLayer != nil {
		e.onLayer(l, color)
	}
}

// Loop runs the engine until ctx is done or events is closed. Every event
// queued at the time a tick arrives is handled before that tick's Task.
// On return the sink is left with an empty report.
func (e *Engine) Loop(ctx context.Context, events <-chan Event, ticks <-chan time.Duration) error {
	defer e.Reset()
	e.indicate()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			e.HandleEvent(ev)
		case now := <-ticks:
			if !e.drain(events) {
				return nil
			}
			e.Task(now)
		}
		if e.sinkErr != nil {
			return fmt.Errorf("sink: %w", e.sinkErr)
		}
	}
}

func (e *Engine) drain(events <-chan Event) bool {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			e.HandleEvent(ev)
		default:
			return true
		}
	}
}

// Ticker sends the time since start every interval until ctx is done.
func Ticker(ctx context.Context, start time.Time, interval time.Duration) <-chan time.Duration {
	out := make(chan time.Duration)
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-t.C:
				select {
				case out <- now.Sub(start):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
