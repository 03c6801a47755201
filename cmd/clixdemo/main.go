// Clixdemo runs an interactive shell on stdin/stdout showing off the clix
// command tree, typed commands, history recall, and session broadcasting.
package main

import (
	"context"
	"errors"
	"fmt"
	charmlog "github.com/charmbracelet/log"
	"github.com/saylorsolutions/clix"
	"github.com/saylorsolutions/clix/env"
	flag "github.com/spf13/pflag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
)

const appName = "clixdemo"

func main() {
	var (
		name        = flag.String("name", env.Val("CLIX_NAME", appName), "Top level menu name")
		historySize = flag.Int("history-size", int(env.Int("CLIX_HISTORY_SIZE", clix.DefaultHistorySize)), "Recall buffer entries per session")
		logLevel    = flag.String("log-level", env.Val("CLIX_LOG_LEVEL", "warn"), "Log level: debug, info, warn, error")
		transcript  = flag.String("transcript", env.Val("CLIX_TRANSCRIPT", ""), "Append a transcript of all shell output to this file")
		banner      = flag.Bool("banner", env.Bool("CLIX_BANNER", true), "Print the greeting before the first prompt")
	)
	flag.Parse()

	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: false,
		Level:           parseLevel(*logLevel),
	})

	sh := clix.NewShell(buildTree(*name),
		clix.WithLogger(slog.New(logger)),
		clix.WithHistorySize(*historySize),
		clix.WithExitAction(func(out *clix.Printer) {
			out.Println("Goodbye!")
		}),
	)
	sh.Root().Add(clix.NewFunc1("announce", func(_ *clix.Printer, message string) {
		sh.Out().Printf("[announcement] %s\n", message)
	}, "Broadcast a message to every attached session"))

	if *transcript != "" {
		f, err := os.OpenFile(*transcript, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			logger.Fatal("Failed to open transcript file", "error", err)
		}
		defer func() {
			_ = f.Close()
		}()
		sh.Broadcast().Register("transcript", f)
		defer sh.Broadcast().Unregister("transcript")
	}

	if *banner {
		fmt.Printf("%s interactive shell. Type 'help' to see what's available.\n", *name)
	}

	runner := clix.NewRunner(sh, os.Stdin, os.Stdout)
	if err := runner.Run(interruptCtx(context.Background())); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("Session ended abnormally", "error", err)
	}
}

func buildTree(name string) *clix.Menu {
	root := clix.NewMenu(name, "Top level commands")

	root.Add(clix.NewFunc("version", func(out *clix.Printer) {
		out.Println("clixdemo 0.1.0")
	}, "Print the demo version"))
	root.Add(clix.NewFunc1("echo", func(out *clix.Printer, word string) {
		out.Println(word)
	}, "Echo a word back"))

	calc := clix.NewMenu("calc", "Small integer calculator")
	calc.Add(clix.NewFunc2("add", func(out *clix.Printer, a, b int) {
		out.Printf("%d\n", a+b)
	}, "Add two integers"))
	calc.Add(clix.NewFunc2("mul", func(out *clix.Printer, a, b int) {
		out.Printf("%d\n", a*b)
	}, "Multiply two integers"))
	calc.Add(clix.NewFunc3("clamp", func(out *clix.Printer, val, low, high int) {
		out.Printf("%d\n", min(max(val, low), high))
	}, "Clamp a value to a range"))
	root.Add(calc)

	color := clix.NewMenu("color", "Color helpers")
	color.Add(clix.NewFunc4("rgba", func(out *clix.Printer, r, g, b uint8, alpha float64) {
		out.Printf("#%02x%02x%02x at %.0f%% opacity\n", r, g, b, alpha*100)
	}, "Render a color as hex"))
	root.Add(color)

	return root
}

func parseLevel(level string) charmlog.Level {
	lvl, err := charmlog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return charmlog.WarnLevel
	}
	return lvl
}

// interruptCtx cancels the returned context on the first interrupt and
// force-exits on the second, so a blocked read can't trap the user.
func interruptCtx(parent context.Context) context.Context {
	ctx, cancel := context.WithCancel(parent)
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	go func() {
		defer cancel()
		<-sigs
		cancel()
		<-sigs
		os.Exit(1)
	}()
	return ctx
}
