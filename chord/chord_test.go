package chord_test

import (
	"testing"
	"time"

	"github.com/tkferris/sweepmap/chord"
	"github.com/tkferris/sweepmap/keycode"

	"github.com/stretchr/testify/assert"
)

func TestTappingTerm(t *testing.T) {
	p := chord.Default()
	assert.Equal(t, 200*time.Millisecond, p.TappingTerm(keycode.ModTap(keycode.ModLeftCtrl, keycode.KeyS)))
	assert.Equal(t, 300*time.Millisecond, p.TappingTerm(keycode.ModTap(keycode.ModLeftGUI, keycode.KeyR)))
	assert.Equal(t, 300*time.Millisecond, p.TappingTerm(keycode.ModTap(keycode.ModRightGUI, keycode.KeyE)))
}

func TestChord(t *testing.T) {
	p := chord.Default()
	ctlS := keycode.ModTap(keycode.ModLeftCtrl, keycode.KeyS)

	tests := []struct {
		name    string
		tapHold chord.Key
		other   chord.Key
		want    bool
	}{
		{"same hand roll", chord.Key{Code: ctlS, Pos: 13}, chord.Key{Code: keycode.KeyD, Pos: 2}, false},
		{"opposite hands", chord.Key{Code: ctlS, Pos: 13}, chord.Key{Code: keycode.KeyH, Pos: 16}, true},
		{"same hand thumb", chord.Key{Code: ctlS, Pos: 13}, chord.Key{Code: keycode.KeyBackspace, Pos: 31}, false},
		{"opposite thumb", chord.Key{Code: ctlS, Pos: 13}, chord.Key{Code: keycode.KeySpace, Pos: 32}, true},
		{"always chords", chord.Key{Code: keycode.SymNav, Pos: 33}, chord.Key{Code: keycode.KeyI, Pos: 19}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Chord(tt.tapHold, tt.other))
		})
	}
}

func TestEagerAndStreak(t *testing.T) {
	p := chord.Default()
	assert.True(t, p.EagerMod(keycode.ModLeftShift))
	assert.True(t, p.EagerMod(keycode.ModRightCtrl))
	assert.False(t, p.EagerMod(keycode.ModLeftAlt))
	assert.False(t, p.EagerMod(keycode.ModLeftGUI))
	assert.False(t, p.EagerMod(0))

	assert.Equal(t, 800*time.Millisecond, p.Timeout(keycode.ModTap(keycode.ModLeftAlt, keycode.KeyT)))
	assert.Equal(t, 100*time.Millisecond, p.StreakTimeout(keycode.ModTap(keycode.ModLeftAlt, keycode.KeyT)))
	assert.Zero(t, p.StreakTimeout(keycode.LayerTap(3, keycode.KeySpace)))
	assert.Zero(t, p.StreakTimeout(keycode.SymNav))
}
