/*
Package clix provides an embeddable interactive command shell built around a
tree of menus and typed leaf commands.

There are a few opinionated (IMHO reasonable) policies baked in.

  - The command tree is fixed before sessions start feeding lines. Dispatch
    holds no locks because nothing mutates the tree at runtime.
  - Leaf commands declare 0 to 4 typed parameters, and a line only matches
    when every argument converts to its declared type. A failed conversion is
    a non-match rather than an error, so same-named commands with different
    signatures can coexist and resolve by trial.
  - Output goes through a [Printer] handed to every callback. The shell never
    writes to package-level streams.
  - Terminal handling stays out: a [Runner] works line-by-line on any
    [io.Reader], and hosts that own a real terminal drive completion and
    history recall through [Session.Complete], [Session.PrevCommand], and
    [Session.NextCommand] themselves.

# Building a command tree

A shell is a [Menu] tree. Menus group commands and can be entered by name,
which makes them the session's current scope:

	root := clix.NewMenu("demo", "demo shell")
	root.Add(clix.NewFunc("hello", func(out *clix.Printer) {
		out.Println("Hello, world!")
	}, "Say hello"))

	net := clix.NewMenu("net", "network commands")
	net.Add(clix.NewFunc2("set", func(out *clix.Printer, host string, port uint16) {
		out.Printf("%s:%d\n", host, port)
	}, "Set the remote endpoint"))
	root.Add(net)

Typed parameters come from the [NewFunc1] through [NewFunc4] constructors;
the parameter types are inferred from the callback signature.

# Sessions

A [Shell] owns the root menu, a shell-wide exit hook, and a [fanout.Broadcaster]
that fans shell-wide messages out to every attached session. Each connected
client gets its own [Session] with a private current-menu cursor, built-in
help/exit/history commands, and a bounded command history. Lines are pushed
through [Session.Feed]; anything unmatched is reported on the session's
output and leaves all state untouched.

[NewRunner] wires a Session to a reader and writer for the common
read-prompt-dispatch loop. For anything fancier, feed the Session yourself.
*/
package clix
