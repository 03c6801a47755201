package clix

import (
	"fmt"
	"io"
)

// Printer is the output sink handed to command callbacks and used for all
// session-visible text. Write errors are dropped; a shell has nowhere better
// to report a broken terminal than the terminal.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer over the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}
