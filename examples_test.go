package clix

import (
	"fmt"
	"os"
)

func ExampleNewShell() {
	// Assemble the command tree first. Menus group related commands, and the
	// typed constructors convert tokens before the function runs.
	root := NewMenu("calc")
	root.Add(NewFunc2("add", func(out *Printer, a, b int) {
		out.Printf("%d\n", a+b)
	}, "Add two integers"))

	net := NewMenu("net", "Network helpers")
	net.Add(NewFunc1("ping", func(out *Printer, host string) {
		out.Printf("pinging %s\n", host)
	}, "Ping a host"))
	root.Add(net)

	// A Shell holds the tree. Each consumer of the shell gets its own
	// Session with its own output and history.
	sh := NewShell(root)
	sess := sh.NewSession(os.Stdout)
	defer sess.Close()

	// A menu prefix reaches nested commands without entering the menu.
	sess.Feed("add 2 3")
	sess.Feed("net ping localhost")

	// Feeding a bare menu name changes the session's scope and prompt.
	sess.Feed("net")
	fmt.Printf("%q\n", sess.Prompt())

	// Anything unresolved is reported with the line as typed.
	sess.Feed("frobnicate")
	// Output:
	// 5
	// pinging localhost
	// "net> "
	// Command unknown: frobnicate
}

func ExampleSession_Complete() {
	root := NewMenu("tool")
	net := NewMenu("net")
	net.Add(NewFunc("show", func(*Printer) {}, "Show interfaces"))
	net.Add(NewFunc("stats", func(*Printer) {}, "Show counters"))
	root.Add(net)

	sess := NewShell(root).NewSession(os.Stdout)
	defer sess.Close()

	// Completion rebuilds full command paths from a partial line, so a
	// readline-style frontend can offer them directly.
	fmt.Println(sess.Complete("net s"))
	fmt.Println(sess.Complete("net sh"))
	// Output:
	// [net show net stats]
	// [net show]
}

func ExampleSession_PrevCommand() {
	root := NewMenu("tool")
	root.Add(NewFunc1("echo", func(out *Printer, word string) {
		out.Println(word)
	}, "Echo a word"))

	sess := NewShell(root).NewSession(os.Stdout)
	defer sess.Close()

	sess.Feed("echo one")
	sess.Feed("echo two")

	// Recall starts at the newest entry and walks backward, returning each
	// line rebuilt from its tokens.
	fmt.Printf("%q\n", sess.PrevCommand())
	fmt.Printf("%q\n", sess.PrevCommand())
	// Output:
	// one
	// two
	// "echo two "
	// "echo one "
}
