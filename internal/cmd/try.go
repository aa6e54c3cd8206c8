package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tkferris/sweepmap/engine"
	"github.com/tkferris/sweepmap/sink"
	"github.com/tkferris/sweepmap/source/tty"
)

// Try runs a keymap against the terminal and prints what it types.
type Try struct {
	KeymapSource `embed:""`
	Engine       engine.Config `embed:"" prefix:"engine."`
}

// Run is called by Kong when the try command is executed.
func (t *Try) Run(logger *slog.Logger) error {
	km, err := t.Load()
	if err != nil {
		return err
	}
	restore, err := tty.MakeRaw(os.Stdin)
	if err != nil {
		return err
	}
	defer func() { _ = restore() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stdout, "keymap %s: type on the QWERTY letter block, upper case holds a key, ctrl-c quits\r\n", km.Name)
	out := sink.NewText(os.Stdout, "\r\n")
	err = runEngine(ctx, km, out, t.Engine, logger, tty.New(os.Stdin).Run)
	fmt.Fprint(os.Stdout, "\r\n")
	return err
}
