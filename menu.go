package clix

import "strings"

// Menu is the composite [Command]: a named scope grouping child commands and
// submenus. Feeding a menu's bare name makes it the session's current scope;
// prefixing a child's line with the menu's name dispatches into it from
// outside.
//
// Children keep insertion order, and that order is dispatch order, help
// order, and completion order. The parent link is set by [Menu.Add] and is
// only used for scope fallback and completion; it implies no ownership.
type Menu struct {
	leaf
	parent   *Menu
	children []Command
}

// NewMenu creates an empty Menu. The optional description defaults to
// "(menu)" in help listings.
func NewMenu(name string, description ...string) *Menu {
	m := &Menu{leaf: newLeaf(name, description)}
	if len(description) == 0 {
		m.description = "(menu)"
	}
	return m
}

// Add appends cmd to this menu's children and returns the receiver for
// chaining. Adding a submenu sets its parent link to this menu.
//
// The tree must be fully assembled before sessions start feeding lines;
// dispatch assumes a fixed shape and takes no locks. Passing a nil Command
// will panic.
func (m *Menu) Add(cmd Command) *Menu {
	if cmd == nil {
		panic("nil command")
	}
	if sub, ok := cmd.(*Menu); ok {
		sub.parent = m
	}
	m.children = append(m.children, cmd)
	return m
}

// exec consumes args when args[0] names this menu: a bare name enters the
// menu, anything longer is offered to each child with the name stripped.
func (m *Menu) exec(s *Session, args []string) bool {
	if args[0] != m.name {
		return false
	}
	if len(args) == 1 {
		s.setCurrent(m)
		return true
	}
	rest := args[1:]
	for _, child := range m.children {
		if child.exec(s, rest) {
			return true
		}
	}
	return false
}

// scan is the scope-resolution entry point used on the current menu: every
// direct child gets the full token list, and on a full miss the parent gets
// one exec attempt so ancestor commands stay reachable by prefixing the
// ancestor's name. A miss on a parentless menu is terminal.
func (m *Menu) scan(s *Session, args []string) bool {
	for _, child := range m.children {
		if child.exec(s, args) {
			return true
		}
	}
	if m.parent != nil && m.parent.exec(s, args) {
		return true
	}
	return false
}

func (m *Menu) help(p *Printer) {
	writeHelpLine(p, m.name, m.description)
}

// mainHelp renders every direct child's help line, then one line per
// ancestor walking the parent chain to the root, so a nested scope still
// shows the way back up.
func (m *Menu) mainHelp(p *Printer) {
	for _, child := range m.children {
		child.help(p)
	}
	for up := m.parent; up != nil; up = up.parent {
		up.help(p)
	}
}

// completions aggregates candidates the way scan aggregates dispatch:
// every child's completePath over the line, then the parent's contribution
// appended after them.
func (m *Menu) completions(line string) []string {
	var result []string
	for _, child := range m.children {
		result = append(result, child.completePath(line)...)
	}
	if m.parent != nil {
		result = append(result, m.parent.completePath(line)...)
	}
	return result
}

// completePath reconstructs full command paths. When the line starts with
// this menu's name, the name is stripped, remaining leading whitespace is
// trimmed, and each child completes the remainder with "name " prefixed to
// every candidate. Otherwise the menu completes like a plain named command.
//
// Candidates keep child insertion order and are not deduplicated; siblings
// sharing a name yield the name once each.
func (m *Menu) completePath(line string) []string {
	if !strings.HasPrefix(line, m.name) {
		return m.leaf.completePath(line)
	}
	rest := strings.TrimLeft(line[len(m.name):], " \t")
	var result []string
	for _, child := range m.children {
		for _, candidate := range child.completePath(rest) {
			result = append(result, m.name+" "+candidate)
		}
	}
	return result
}
