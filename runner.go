package clix

import (
	"bufio"
	"context"
	"golang.org/x/term"
	"io"
	"os"
)

// Runner drives a [Session] from a line-based reader: prompt, read,
// dispatch, repeat. It deliberately knows nothing about terminals beyond
// whether the input is one; raw-mode key handling, completion, and history
// recall belong to hosts that own the terminal and can call the [Session]
// methods directly.
type Runner struct {
	shell *Shell
	in    io.Reader
	out   io.Writer
	opts  []SessionOption
}

// NewRunner creates a Runner feeding lines from in into a new Session
// writing to out. The SessionOptions are applied to the Session that
// [Runner.Run] opens.
func NewRunner(sh *Shell, in io.Reader, out io.Writer, opts ...SessionOption) *Runner {
	return &Runner{shell: sh, in: in, out: out, opts: opts}
}

// Run opens a Session and processes lines until the input ends, the reader
// fails, the exit built-in fires, or ctx is cancelled. Cancellation is
// observed between lines; a blocked read is not interrupted.
//
// The prompt is only written when the input is a terminal, so piped scripts
// don't see prompt noise in their output. Run returns nil on end of input or
// exit, the reader's error, or ctx.Err().
func (r *Runner) Run(ctx context.Context) error {
	sess := r.shell.NewSession(r.out, r.opts...)
	defer sess.Close()
	prompt := isTerminal(r.in)
	scanner := bufio.NewScanner(r.in)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if prompt {
			sess.WritePrompt()
		}
		switch {
		case scanner.Scan():
			sess.Feed(scanner.Text())
			if sess.stopped {
				return nil
			}
		default:
			return scanner.Err()
		}
	}
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
