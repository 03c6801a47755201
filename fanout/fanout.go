// Package fanout provides a keyed output broadcaster so text written once
// can reach every attached sink, like each connected session's terminal plus
// any transcript writers.
package fanout

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

// Broadcaster is an [io.Writer] that fans writes out to a keyed set of
// sinks. Sinks are registered and unregistered by id, so the sink of a
// closing session can be detached without comparing writer values.
//
// A Broadcaster is the one piece of shell state shared between sessions, so
// it is concurrency safe: registration and writes are serialized under one
// lock, which also keeps whole broadcast payloads from interleaving in a
// shared sink. Fan-out order between sinks is not defined.
type Broadcaster struct {
	mux   sync.Mutex
	sinks map[string]io.Writer
}

// NewBroadcaster creates an empty Broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{sinks: map[string]io.Writer{}}
}

// Register attaches w under the given id, replacing any sink already
// registered with the same id.
//
// Passing a nil writer to this function will panic.
func (b *Broadcaster) Register(id string, w io.Writer) {
	if w == nil {
		panic("nil writer")
	}
	b.mux.Lock()
	defer b.mux.Unlock()
	b.sinks[id] = w
}

// Unregister detaches the sink registered under id, if any.
func (b *Broadcaster) Unregister(id string) {
	b.mux.Lock()
	defer b.mux.Unlock()
	delete(b.sinks, id)
}

// Len returns the number of registered sinks.
func (b *Broadcaster) Len() int {
	b.mux.Lock()
	defer b.mux.Unlock()
	return len(b.sinks)
}

// Write fans p out to every registered sink. The reported length is always
// len(p); failures of individual sinks are collected and joined, each
// annotated with the failing sink's id, so one broken sink doesn't hide the
// write from the others.
func (b *Broadcaster) Write(p []byte) (int, error) {
	b.mux.Lock()
	defer b.mux.Unlock()
	var errs []error
	for id, w := range b.sinks {
		if _, err := w.Write(p); err != nil {
			errs = append(errs, fmt.Errorf("sink %q: %w", id, err))
		}
	}
	return len(p), errors.Join(errs...)
}
