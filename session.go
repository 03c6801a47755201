package clix

import (
	"github.com/google/uuid"
	"github.com/saylorsolutions/clix/history"
	"io"
	"log/slog"
	"strings"
)

// Session orchestrates one interactive client: it holds the current-menu
// cursor, a private global scope with the built-in commands, and a bounded
// command history, and it feeds raw lines into the dispatch engine.
//
// A Session's mutable state belongs to that Session alone, so Feed runs
// synchronously to completion with no locks. Run concurrent clients as
// separate Sessions, one each.
type Session struct {
	shell       *Shell
	current     *Menu
	globalScope *Menu
	out         io.Writer
	printer     *Printer
	history     *history.History
	exitAction  func(out *Printer)
	id          string
	log         *slog.Logger
	stopped     bool
	closed      bool
}

// NewSession attaches a new Session writing to out, registers out with the
// shell's broadcaster under the session id, and installs the built-in
// help, exit, and history commands in the session's global scope.
//
// Close the Session when the client disconnects so its sink detaches from
// the broadcaster.
func (sh *Shell) NewSession(out io.Writer, opts ...SessionOption) *Session {
	cfg := sessionConfig{historySize: sh.historySize}
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Session{
		shell:      sh,
		current:    sh.root,
		out:        out,
		printer:    NewPrinter(out),
		history:    history.New(cfg.historySize),
		exitAction: cfg.exitAction,
		id:         uuid.NewString(),
		log:        sh.log,
	}
	s.globalScope = NewMenu("")
	s.globalScope.
		Add(NewFunc("help", func(*Printer) {
			s.Help()
		}, "This help message")).
		Add(NewFunc("exit", func(*Printer) {
			s.Exit()
			s.stopped = true
		}, "Quit the session")).
		Add(NewFunc("history", func(*Printer) {
			s.ShowHistory()
		}, "Show the history"))
	sh.broadcast.Register(s.id, out)
	s.log.Debug("session opened", "session", s.id, "history_size", cfg.historySize)
	return s
}

// Feed tokenizes one raw line and dispatches it: built-in global commands
// first, then the current menu with its ancestor fallback. An accepted line
// is appended to the history; a miss reports "Command unknown" on the
// session output and changes nothing. Every call restarts history browsing
// at the newest entry, and a blank line does nothing else.
func (s *Session) Feed(line string) {
	s.history.Reset()
	args := strings.Fields(line)
	if len(args) == 0 {
		return
	}
	found := s.globalScope.scan(s, args)
	if !found {
		found = s.current.scan(s, args)
	}
	if found {
		s.history.Add(args)
		return
	}
	s.log.Debug("unknown command", "session", s.id, "line", line)
	s.printer.Printf("Command unknown: %s\n", line)
}

// Prompt returns the prompt for the current menu, its name plus "> ".
func (s *Session) Prompt() string {
	return s.current.name + "> "
}

// WritePrompt prints the prompt without a trailing newline.
func (s *Session) WritePrompt() {
	s.printer.Print(s.Prompt())
}

// Help renders the aggregated command listing: the built-in global commands
// followed by the current menu's commands and its ancestor chain.
func (s *Session) Help() {
	s.printer.Println("Commands available:")
	s.globalScope.mainHelp(s.printer)
	s.current.mainHelp(s.printer)
}

// Exit runs the session-local exit hook, then the shell-wide one. It does
// not tear the Session down; use [Session.Close] for that.
func (s *Session) Exit() {
	if s.exitAction != nil {
		s.exitAction(s.printer)
	}
	s.shell.runExitAction(s.printer)
}

// OnExit installs or replaces the session-local exit hook, which runs before
// the shell-wide hook when the exit built-in fires.
func (s *Session) OnExit(fn func(out *Printer)) {
	s.exitAction = fn
}

// PrevCommand returns the history entry at the cursor and then moves the
// cursor one entry older, so the first call after a fed line recalls the
// newest entry. Browsing wraps around at the oldest entry.
func (s *Session) PrevCommand() string {
	result := s.history.Current()
	s.history.Prev()
	return result
}

// NextCommand returns the history entry at the cursor and then moves the
// cursor one entry newer, wrapping to the oldest entry from the newest.
func (s *Session) NextCommand() string {
	result := s.history.Current()
	s.history.Next()
	return result
}

// ShowHistory renders the history buffer on the session output, newest
// first.
func (s *Session) ShowHistory() {
	s.history.Show(s.out)
}

// Complete returns completion candidates for a partial line: built-in
// global commands first, then the current menu's scope-aware candidates.
// Duplicates from same-named commands are preserved.
func (s *Session) Complete(line string) []string {
	result := s.globalScope.completions(line)
	return append(result, s.current.completions(line)...)
}

// ID returns the unique id of this Session, which also keys its sink in the
// shell's broadcaster.
func (s *Session) ID() string {
	return s.id
}

// Out returns the session's Printer.
func (s *Session) Out() *Printer {
	return s.printer
}

// Close detaches the session's sink from the shell's broadcaster. It is safe
// to call more than once.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.shell.broadcast.Unregister(s.id)
	s.log.Debug("session closed", "session", s.id)
}

func (s *Session) setCurrent(m *Menu) {
	s.current = m
	s.log.Debug("menu entered", "session", s.id, "menu", m.name)
}
