package clix

import (
	"github.com/saylorsolutions/clix/fanout"
	"io"
	"log/slog"
)

// DefaultHistorySize is the per-session history capacity used when no
// option overrides it.
const DefaultHistorySize = 100

// Shell owns a command tree and the collaborators its sessions share: the
// shell-wide exit hook and the output broadcaster. Create one Shell per
// embedded command tree and any number of Sessions against it.
type Shell struct {
	root        *Menu
	exitAction  func(out *Printer)
	broadcast   *fanout.Broadcaster
	log         *slog.Logger
	historySize int
}

// NewShell creates a Shell over the given root menu. A nil root gets an
// empty menu named "shell". Logging is discarded unless [WithLogger] is
// given.
func NewShell(root *Menu, opts ...Option) *Shell {
	if root == nil {
		root = NewMenu("shell")
	}
	sh := &Shell{
		root:        root,
		broadcast:   fanout.NewBroadcaster(),
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		historySize: DefaultHistorySize,
	}
	for _, opt := range opts {
		opt(sh)
	}
	return sh
}

// Root returns the shell's root menu.
func (sh *Shell) Root() *Menu {
	return sh.root
}

// Broadcast returns the shell's output broadcaster. Every session's sink is
// registered here for its lifetime; extra sinks like transcript files may be
// registered alongside them.
func (sh *Shell) Broadcast() *fanout.Broadcaster {
	return sh.broadcast
}

// Out returns a Printer over the broadcaster for messages that should reach
// every attached session at once.
func (sh *Shell) Out() *Printer {
	return NewPrinter(sh.broadcast)
}

// ExitAction installs or replaces the shell-wide exit hook, which runs after
// any session-local hook when a session's exit built-in fires.
func (sh *Shell) ExitAction(fn func(out *Printer)) {
	sh.exitAction = fn
}

func (sh *Shell) runExitAction(p *Printer) {
	if sh.exitAction != nil {
		sh.exitAction(p)
	}
}

// Option configures a [Shell].
type Option func(*Shell)

// WithExitAction sets the shell-wide exit hook.
func WithExitAction(fn func(out *Printer)) Option {
	return func(sh *Shell) {
		sh.exitAction = fn
	}
}

// WithLogger sets the logger used for session and dispatch debug events.
func WithLogger(log *slog.Logger) Option {
	return func(sh *Shell) {
		if log != nil {
			sh.log = log
		}
	}
}

// WithHistorySize sets the default history capacity for new sessions.
// Values below 1 are ignored.
func WithHistorySize(n int) Option {
	return func(sh *Shell) {
		if n > 0 {
			sh.historySize = n
		}
	}
}

type sessionConfig struct {
	historySize int
	exitAction  func(out *Printer)
}

// SessionOption configures a single [Session].
type SessionOption func(*sessionConfig)

// WithSessionHistorySize overrides the shell's default history capacity for
// one session. Values below 1 are ignored.
func WithSessionHistorySize(n int) SessionOption {
	return func(cfg *sessionConfig) {
		if n > 0 {
			cfg.historySize = n
		}
	}
}

// WithSessionExitAction sets the session-local exit hook, which runs before
// the shell-wide hook.
func WithSessionExitAction(fn func(out *Printer)) SessionOption {
	return func(cfg *sessionConfig) {
		cfg.exitAction = fn
	}
}
