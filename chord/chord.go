// Package chord decides how tap-hold keys resolve when other keys are
// pressed while they are down.
package chord

import (
	"time"

	"github.com/tkferris/sweepmap/keycode"
	"github.com/tkferris/sweepmap/keymap"
)

// Key is a keycode together with the position it was pressed at.
type Key struct {
	Code keycode.Keycode
	Pos  keymap.Position
}

// Policy answers the tap-hold engine's questions about one tap-hold key.
type Policy interface {
	// TappingTerm is how long a lone tap-hold key may be held and still
	// count as a tap.
	TappingTerm(kc keycode.Keycode) time.Duration
	// Chord reports whether pressing other while tapHold is down settles
	// tapHold as held.
	Chord(tapHold, other Key) bool
	// Timeout caps how long an undecided key waits before it is treated
	// as held. Zero disables the cap.
	Timeout(kc keycode.Keycode) time.Duration
	// EagerMod reports whether a mod-tap's modifier is applied as soon as
	// the key goes down.
	EagerMod(m keycode.Mods) bool
	// StreakTimeout is the typing-streak window: a tap-hold key pressed
	// sooner than this after the previous key settles as a tap. Zero
	// disables streak detection.
	StreakTimeout(kc keycode.Keycode) time.Duration
}

const (
	DefaultTappingTerm   = 200 * time.Millisecond
	DefaultTimeout       = 800 * time.Millisecond
	DefaultStreakTimeout = 100 * time.Millisecond
)

// Achordion resolves chords by hand: keys on opposite halves of the board
// chord, same-hand rolls wait. Thumbs belong to their half.
type Achordion struct {
	Term   time.Duration
	Wait   time.Duration
	Streak time.Duration
	// ExtraTerm lengthens the tapping term of individual keys.
	ExtraTerm map[keycode.Keycode]time.Duration
	// Always lists tap-hold keycodes that chord regardless of hands.
	Always map[keycode.Keycode]bool
	// Eager lists modifiers applied on key down.
	Eager keycode.Mods
}

// Default returns the policy the built-in keymaps are tuned for.
func Default() *Achordion {
	return &Achordion{
		Term:   DefaultTappingTerm,
		Wait:   DefaultTimeout,
		Streak: DefaultStreakTimeout,
		ExtraTerm: map[keycode.Keycode]time.Duration{
			keycode.ModTap(keycode.ModLeftGUI, keycode.KeyR):  100 * time.Millisecond,
			keycode.ModTap(keycode.ModRightGUI, keycode.KeyE): 100 * time.Millisecond,
		},
		Always: map[keycode.Keycode]bool{
			keycode.SymNav: true,
		},
		Eager: keycode.MaskShift | keycode.MaskCtrl,
	}
}

func (a *Achordion) TappingTerm(kc keycode.Keycode) time.Duration {
	return a.Term + a.ExtraTerm[kc]
}

func (a *Achordion) Chord(tapHold, other Key) bool {
	if a.Always[tapHold.Code] {
		return true
	}
	return tapHold.Pos.Hand() != other.Pos.Hand()
}

func (a *Achordion) Timeout(keycode.Keycode) time.Duration { return a.Wait }

// EagerMod reports true only when every bit of m is eager.
func (a *Achordion) EagerMod(m keycode.Mods) bool {
	return m != 0 && m&^a.Eager == 0
}

func (a *Achordion) StreakTimeout(kc keycode.Keycode) time.Duration {
	if kc.IsLayerTap() || kc == keycode.SymNav {
		return 0
	}
	return a.Streak
}
