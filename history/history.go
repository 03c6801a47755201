// Package history provides the bounded command history used by shell
// sessions: accepted command lines are retained most recent first, and a
// cursor supports recalling entries in both directions with cyclic
// wraparound.
package history

import (
	"fmt"
	"github.com/saylorsolutions/clix/structures/ring"
	"io"
	"strings"
)

// History is a bounded record of accepted command lines, stored as token
// lists most recent first.
//
// The cursor starts at 0 (the most recent entry) and moves with [History.Prev]
// and [History.Next]. Moving past either end wraps around to the other, which
// makes browsing cyclic on purpose. A History is not concurrency safe; each
// session owns exactly one.
type History struct {
	entries *ring.Buffer[[]string]
	cursor  int
}

// New creates a History retaining at most maxSize entries.
func New(maxSize int) *History {
	return &History{entries: ring.New[[]string](maxSize)}
}

// Add records tokens as the most recent entry, evicting the oldest entry if
// the History is at capacity. The cursor is left where it was.
func (h *History) Add(tokens []string) {
	h.entries.PushFront(tokens)
}

// Prev moves the cursor one entry older. From the oldest entry it wraps to
// the most recent. Does nothing when the History is empty.
func (h *History) Prev() {
	if h.entries.Len() == 0 {
		return
	}
	if h.cursor == h.entries.Len()-1 {
		h.cursor = 0
		return
	}
	h.cursor++
}

// Next moves the cursor one entry newer. From the most recent entry it wraps
// to the oldest. Does nothing when the History is empty.
func (h *History) Next() {
	if h.entries.Len() == 0 {
		return
	}
	if h.cursor == 0 {
		h.cursor = h.entries.Len() - 1
		return
	}
	h.cursor--
}

// Current renders the entry at the cursor as a single string, each token
// followed by one space. Returns the empty string when the History is empty.
// The cursor is not moved.
func (h *History) Current() string {
	tokens, ok := h.entries.At(h.cursor)
	if !ok {
		return ""
	}
	return joinTokens(tokens)
}

// Reset moves the cursor back to the most recent entry. Sessions call this
// for every fed line so browsing always restarts from the newest entry.
func (h *History) Reset() {
	h.cursor = 0
}

// Len returns the number of retained entries.
func (h *History) Len() int {
	return h.entries.Len()
}

// Show writes every entry to out, newest first, one per line, with one blank
// line before and after the listing.
func (h *History) Show(out io.Writer) {
	_, _ = fmt.Fprintln(out)
	for tokens := range h.entries.All() {
		_, _ = fmt.Fprintln(out, joinTokens(tokens))
	}
	_, _ = fmt.Fprintln(out)
}

func joinTokens(tokens []string) string {
	var buf strings.Builder
	for _, token := range tokens {
		buf.WriteString(token)
		buf.WriteByte(' ')
	}
	return buf.String()
}
