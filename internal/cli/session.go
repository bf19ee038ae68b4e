// Package cli implements the interactive command layer of the address book:
// parsing typed commands, running them against the book and printing
// localized, colored replies.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/storage"
)

// Options tune the presentation of a session.
type Options struct {
	Language string
	NoColor  bool
}

// Session owns the address book for the lifetime of one interactive run.
type Session struct {
	Book  *addressbook.AddressBook
	Store storage.Store
	Clock addressbook.Clock // Injected clock for testability (e.g. mocking time travel)

	In  io.Reader
	Out io.Writer

	tr     *Translator
	styles Styles
}

// NewSession wires a session around an already loaded book.
func NewSession(book *addressbook.AddressBook, store storage.Store, in io.Reader, out io.Writer, opts Options) *Session {
	return &Session{
		Book:   book,
		Store:  store,
		Clock:  addressbook.RealClock{}, // Default to real clock in production
		In:     in,
		Out:    out,
		tr:     NewTranslator(opts.Language),
		styles: NewStyles(out, opts.NoColor),
	}
}

// Translator exposes the session translator, e.g. for calendar summaries.
func (s *Session) Translator() *Translator {
	return s.tr
}

// Execute runs one input line and returns the rendered output. exit is true
// for the close/exit/quit commands; saving is left to the caller.
func (s *Session) Execute(line string) (output string, exit bool) {
	cmd, args := parseInput(line)
	switch cmd {
	case "":
		return "", false
	case config.CmdClose, config.CmdExit, config.CmdQuit:
		return "", true
	}

	h, ok := handlers[cmd]
	if !ok {
		return s.styles.Render(ToneWarn, s.tr.Msg(config.TKeyInvalidCommand, nil)), false
	}

	reply, err := h(s, args)
	if err != nil {
		slog.Debug(config.MsgCommandFailed,
			config.LogKeyComponent, config.CompCLI,
			config.LogKeyCommand, cmd,
			config.LogKeyError, err,
		)
		return s.styles.Render(ToneWarn, s.renderError(err)), false
	}

	slog.Debug(config.MsgCommand,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyCommand, cmd,
		config.LogKeyArgs, len(args),
	)
	return s.styles.Render(reply.Tone, reply.Text), false
}

// renderError turns a handler error into the matching warning message.
func (s *Session) renderError(err error) string {
	data := map[string]any{"Err": err.Error()}
	switch {
	case addressbook.IsValidation(err):
		return s.tr.Msg(config.TKeyWarnValue, data)
	case errors.Is(err, addressbook.ErrNotFound):
		return s.tr.Msg(config.TKeyWarnNotFound, data)
	case errors.Is(err, ErrMissingArgument):
		return s.tr.Msg(config.TKeyWarnMissingArg, data)
	default:
		return err.Error()
	}
}

// Greet prints the welcome banner followed by the current contacts.
func (s *Session) Greet() {
	s.println(s.styles.Render(ToneAdd, s.tr.Msg(config.TKeyWelcome, nil)))
	s.println(s.styles.Render(ToneChange, s.tr.Msg(config.TKeyHelpHint, nil)))
	s.println("")
	s.println(s.tr.Msg(config.TKeyPhonebook, nil))
	s.println(s.contactsTable())
}

// Run reads commands until an exit command, end of input or cancellation of
// ctx, then saves the book. A failed save is reported and returned.
//
// On cancellation Run returns without waiting for a pending read; the reader
// goroutine exits once In yields a line, EOF or an error.
func (s *Session) Run(ctx context.Context) error {
	s.Greet()

	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	// The reader goroutine lets cancellation stop waiting on a blocking read.
	go func() {
		scanner := bufio.NewScanner(s.In)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()

loop:
	for {
		s.print(s.tr.Msg(config.TKeyPrompt, nil))

		select {
		case <-ctx.Done():
			s.println("")
			break loop
		case err := <-readErr:
			s.println("")
			if err != nil {
				slog.Error(config.ErrInputRead,
					config.LogKeyComponent, config.CompCLI,
					config.LogKeyError, err,
				)
			}
			break loop
		case line := <-lines:
			out, exit := s.Execute(line)
			if exit {
				break loop
			}
			if out != "" {
				s.println(out)
			}
		}
	}

	slog.Info(config.MsgSessionEnd,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyCount, s.Book.Len(),
	)
	return s.save(context.WithoutCancel(ctx))
}

// save runs even when the session was cancelled, so no edits are lost.
func (s *Session) save(ctx context.Context) error {
	if err := s.Store.Save(ctx, s.Book); err != nil {
		s.println(s.styles.Render(ToneWarn, s.tr.Msg(config.TKeyWarnSave, map[string]any{"Err": err.Error()})))
		return err
	}
	s.println(s.styles.Render(ToneDelete, s.tr.Msg(config.TKeyGoodbye, nil)))
	return nil
}

func (s *Session) print(text string) {
	_, _ = fmt.Fprint(s.Out, text)
}

func (s *Session) println(text string) {
	_, _ = fmt.Fprintln(s.Out, text)
}
