// Package tty feeds the engine from a terminal in raw mode, for trying a
// keymap without a keyboard grab. Terminals only report characters, so
// every byte becomes a press and release of the key it is mapped to. An
// upper case letter presses its key and keeps it held until the next
// key has been tapped, which is enough to exercise holds and chords.
package tty

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/tkferris/sweepmap/engine"
	"github.com/tkferris/sweepmap/keymap"
)

// Interrupt is the byte that ends Run (ctrl-c).
const Interrupt = 0x03

// Keys maps terminal bytes to board positions: the QWERTY letter block
// for the three rows, tab and space for the left thumbs, enter and
// backspace for the right thumbs.
func Keys() map[byte]keymap.Position {
	rows := []string{"qwertyuiop", "asdfghjkl;", "zxcvbnm,./", "\t \r\x7f"}
	m := make(map[byte]keymap.Position, keymap.NumKeys)
	for r, row := range rows {
		for c := 0; c < len(row); c++ {
			m[row[c]] = keymap.Position(r*10 + c)
		}
	}
	return m
}

// Source turns terminal input into key events.
type Source struct {
	in   *bufio.Reader
	keys map[byte]keymap.Position
	// Gap separates the press and release of a tap.
	Gap time.Duration
}

// New returns a source reading from in.
func New(in io.Reader) *Source {
	return &Source{in: bufio.NewReader(in), keys: Keys(), Gap: 10 * time.Millisecond}
}

// Run reads until ctx is done, in ends or ctrl-c is typed. Event times are
// measured from start.
func (s *Source) Run(ctx context.Context, start time.Time, out chan<- engine.Event) error {
	var held []keymap.Position
	send := func(pos keymap.Position, pressed bool) bool {
		select {
		case out <- engine.Event{Pos: pos, Pressed: pressed, Time: time.Since(start)}:
			return true
		case <-ctx.Done():
			return false
		}
	}
	release := func() bool {
		for _, p := range held {
			if !send(p, false) {
				return false
			}
		}
		held = held[:0]
		return true
	}
	defer release()

	for {
		b, err := s.in.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read terminal: %w", err)
		}
		if b == Interrupt {
			return nil
		}
		hold := b >= 'A' && b <= 'Z'
		if hold {
			b += 'a' - 'A'
		}
		pos, ok := s.keys[b]
		if !ok {
			continue
		}
		if !send(pos, true) {
			return nil
		}
		if hold {
			held = append(held, pos)
			continue
		}
		if s.Gap > 0 {
			select {
			case <-time.After(s.Gap):
			case <-ctx.Done():
				return nil
			}
		}
		if !send(pos, false) || !release() {
			return nil
		}
	}
}

// MakeRaw puts f into raw mode and returns the function restoring it.
func MakeRaw(f *os.File) (func() error, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%s is not a terminal", f.Name())
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("raw mode: %w", err)
	}
	return func() error { return term.Restore(fd, state) }, nil
}
