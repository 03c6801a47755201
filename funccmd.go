package clix

// The leaf command family is a closed set of arities from 0 to 4 typed
// parameters. Each variant matches only a token list of exactly name plus
// arity tokens, and only when every token converts to its declared type;
// any failed conversion makes the whole attempt a non-match with zero
// callback invocations, which is what lets same-named commands with
// different signatures resolve by trial.

// Func is a leaf command with no parameters.
type Func struct {
	leaf
	fn func(out *Printer)
}

// NewFunc creates a leaf command invoking fn. The optional description is
// used in help listings. Passing a nil fn will panic.
func NewFunc(name string, fn func(out *Printer), description ...string) *Func {
	if fn == nil {
		panic("nil command function")
	}
	return &Func{leaf: newLeaf(name, description), fn: fn}
}

func (c *Func) exec(s *Session, args []string) bool {
	if len(args) != 1 || args[0] != c.name {
		return false
	}
	c.fn(s.printer)
	return true
}

func (c *Func) help(p *Printer) {
	writeHelpLine(p, c.name, c.description)
}

// Func1 is a leaf command with one typed parameter.
type Func1[A1 Arg] struct {
	leaf
	fn func(out *Printer, a1 A1)
}

// NewFunc1 creates a leaf command with one typed parameter, inferred from
// fn's signature. Passing a nil fn will panic.
func NewFunc1[A1 Arg](name string, fn func(out *Printer, a1 A1), description ...string) *Func1[A1] {
	if fn == nil {
		panic("nil command function")
	}
	return &Func1[A1]{leaf: newLeaf(name, description), fn: fn}
}

func (c *Func1[A1]) exec(s *Session, args []string) bool {
	if len(args) != 2 || args[0] != c.name {
		return false
	}
	a1, err := parseArg[A1](args[1])
	if err != nil {
		return false
	}
	c.fn(s.printer, a1)
	return true
}

func (c *Func1[A1]) help(p *Printer) {
	writeHelpLine(p, c.name, c.description, typeName[A1]())
}

// Func2 is a leaf command with two typed parameters.
type Func2[A1, A2 Arg] struct {
	leaf
	fn func(out *Printer, a1 A1, a2 A2)
}

// NewFunc2 creates a leaf command with two typed parameters, inferred from
// fn's signature. Passing a nil fn will panic.
func NewFunc2[A1, A2 Arg](name string, fn func(out *Printer, a1 A1, a2 A2), description ...string) *Func2[A1, A2] {
	if fn == nil {
		panic("nil command function")
	}
	return &Func2[A1, A2]{leaf: newLeaf(name, description), fn: fn}
}

func (c *Func2[A1, A2]) exec(s *Session, args []string) bool {
	if len(args) != 3 || args[0] != c.name {
		return false
	}
	a1, err := parseArg[A1](args[1])
	if err != nil {
		return false
	}
	a2, err := parseArg[A2](args[2])
	if err != nil {
		return false
	}
	c.fn(s.printer, a1, a2)
	return true
}

func (c *Func2[A1, A2]) help(p *Printer) {
	writeHelpLine(p, c.name, c.description, typeName[A1](), typeName[A2]())
}

// Func3 is a leaf command with three typed parameters.
type Func3[A1, A2, A3 Arg] struct {
	leaf
	fn func(out *Printer, a1 A1, a2 A2, a3 A3)
}

// NewFunc3 creates a leaf command with three typed parameters, inferred from
// fn's signature. Passing a nil fn will panic.
func NewFunc3[A1, A2, A3 Arg](name string, fn func(out *Printer, a1 A1, a2 A2, a3 A3), description ...string) *Func3[A1, A2, A3] {
	if fn == nil {
		panic("nil command function")
	}
	return &Func3[A1, A2, A3]{leaf: newLeaf(name, description), fn: fn}
}

func (c *Func3[A1, A2, A3]) exec(s *Session, args []string) bool {
	if len(args) != 4 || args[0] != c.name {
		return false
	}
	a1, err := parseArg[A1](args[1])
	if err != nil {
		return false
	}
	a2, err := parseArg[A2](args[2])
	if err != nil {
		return false
	}
	a3, err := parseArg[A3](args[3])
	if err != nil {
		return false
	}
	c.fn(s.printer, a1, a2, a3)
	return true
}

func (c *Func3[A1, A2, A3]) help(p *Printer) {
	writeHelpLine(p, c.name, c.description, typeName[A1](), typeName[A2](), typeName[A3]())
}

// Func4 is a leaf command with four typed parameters.
type Func4[A1, A2, A3, A4 Arg] struct {
	leaf
	fn func(out *Printer, a1 A1, a2 A2, a3 A3, a4 A4)
}

// NewFunc4 creates a leaf command with four typed parameters, inferred from
// fn's signature. Passing a nil fn will panic.
func NewFunc4[A1, A2, A3, A4 Arg](name string, fn func(out *Printer, a1 A1, a2 A2, a3 A3, a4 A4), description ...string) *Func4[A1, A2, A3, A4] {
	if fn == nil {
		panic("nil command function")
	}
	return &Func4[A1, A2, A3, A4]{leaf: newLeaf(name, description), fn: fn}
}

func (c *Func4[A1, A2, A3, A4]) exec(s *Session, args []string) bool {
	if len(args) != 5 || args[0] != c.name {
		return false
	}
	a1, err := parseArg[A1](args[1])
	if err != nil {
		return false
	}
	a2, err := parseArg[A2](args[2])
	if err != nil {
		return false
	}
	a3, err := parseArg[A3](args[3])
	if err != nil {
		return false
	}
	a4, err := parseArg[A4](args[4])
	if err != nil {
		return false
	}
	c.fn(s.printer, a1, a2, a3, a4)
	return true
}

func (c *Func4[A1, A2, A3, A4]) help(p *Printer) {
	writeHelpLine(p, c.name, c.description, typeName[A1](), typeName[A2](), typeName[A3](), typeName[A4]())
}
