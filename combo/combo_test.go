package combo_test

import (
	"testing"

	"github.com/tkferris/sweepmap/combo"
	"github.com/tkferris/sweepmap/keycode"
	"github.com/tkferris/sweepmap/layer"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	table := combo.Table{
		combo.New(keycode.KeyEnter, keycode.KeyBackspace, keycode.KeySpace).On(layer.Alpha),
		combo.New(keycode.KeyEscape, keycode.KeyBackspace, keycode.KeyLeftShift).On(layer.Alpha),
		combo.New(keycode.KeyTab, keycode.KeyQ, keycode.KeyW),
	}

	c, ok := table.Match([]keycode.Keycode{keycode.KeySpace, keycode.KeyBackspace}, layer.Alpha)
	assert.True(t, ok)
	assert.Equal(t, keycode.KeyEnter, c.Result)

	_, ok = table.Match([]keycode.Keycode{keycode.KeySpace, keycode.KeyBackspace}, layer.Gaming)
	assert.False(t, ok, "layer gated combo must not fire on another layer")

	c, ok = table.Match([]keycode.Keycode{keycode.KeyW, keycode.KeyQ}, layer.Gaming)
	assert.True(t, ok)
	assert.Equal(t, keycode.KeyTab, c.Result)

	_, ok = table.Match([]keycode.Keycode{keycode.KeyBackspace}, layer.Alpha)
	assert.False(t, ok)
}

func TestCandidates(t *testing.T) {
	table := combo.Table{
		combo.New(keycode.KeyEnter, keycode.KeyBackspace, keycode.KeySpace).On(layer.Alpha),
	}
	assert.True(t, table.Candidates([]keycode.Keycode{keycode.KeyBackspace}, layer.Alpha))
	assert.False(t, table.Candidates([]keycode.Keycode{keycode.KeyBackspace}, layer.Sym))
	assert.False(t, table.Candidates([]keycode.Keycode{keycode.KeyA}, layer.Alpha))
	assert.False(t, table.Candidates([]keycode.Keycode{keycode.KeyBackspace, keycode.KeySpace, keycode.KeyA}, layer.Alpha))
}

func TestLonger(t *testing.T) {
	table := combo.Table{
		combo.New(keycode.KeyEnter, keycode.KeyA, keycode.KeyS),
		combo.New(keycode.KeyEscape, keycode.KeyA, keycode.KeyS, keycode.KeyD),
	}
	assert.True(t, table.Longer([]keycode.Keycode{keycode.KeyA, keycode.KeyS}, layer.Alpha))
	assert.False(t, table.Longer([]keycode.Keycode{keycode.KeyA, keycode.KeyS, keycode.KeyD}, layer.Alpha))
}

func TestRepeatedKeycode(t *testing.T) {
	table := combo.Table{
		combo.New(keycode.KeyEnter, keycode.KeyBackspace, keycode.KeySpace).On(layer.Alpha),
	}
	spaces := []keycode.Keycode{keycode.KeySpace, keycode.KeySpace}
	_, ok := table.Match(spaces, layer.Alpha)
	assert.False(t, ok, "one key pressed twice is not the combo")
	assert.False(t, table.Candidates(spaces, layer.Alpha))

	double := combo.Table{combo.New(keycode.KeyEscape, keycode.KeyJ, keycode.KeyJ)}
	c, ok := double.Match([]keycode.Keycode{keycode.KeyJ, keycode.KeyJ}, layer.Alpha)
	assert.True(t, ok)
	assert.Equal(t, keycode.KeyEscape, c.Result)
	assert.False(t, double.Candidates([]keycode.Keycode{keycode.KeyJ, keycode.KeyJ, keycode.KeyJ}, layer.Alpha))
}
