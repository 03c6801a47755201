package clix

import "strings"

// Command is a node in a shell's command tree: either a [Menu] or one of the
// typed leaf commands from [NewFunc] through [NewFunc4].
//
// The variant set is closed. Dispatch, help rendering, and completion rely
// on invariants the constructors establish, so external implementations are
// not supported.
type Command interface {
	// Name returns the token that selects this command.
	Name() string

	// exec attempts to consume the full token list, returning true only if
	// this command handled it. args is never empty.
	exec(s *Session, args []string) bool

	// help renders this command's one-line listing entry.
	help(p *Printer)

	// completePath returns full command-path candidates for a partial line.
	completePath(line string) []string
}

// leaf carries the identity shared by every non-menu command.
type leaf struct {
	name        string
	description string
}

func (l leaf) Name() string {
	return l.name
}

// completePath for a leaf offers the command's name when the partial line is
// a prefix of it: completing "sh" offers "show".
func (l leaf) completePath(line string) []string {
	if strings.HasPrefix(l.name, line) {
		return []string{l.name}
	}
	return nil
}

func newLeaf(name string, description []string) leaf {
	l := leaf{name: name}
	if len(description) > 0 {
		l.description = description[0]
	}
	return l
}

// writeHelpLine renders the shared two-line listing format, with one type
// tag per declared parameter after the name.
func writeHelpLine(p *Printer, name, description string, tags ...string) {
	if len(tags) > 0 {
		name += " " + strings.Join(tags, " ")
	}
	p.Printf(" - %s\n\t%s\n", name, description)
}
