package history

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestHistory_Add_Eviction(t *testing.T) {
	h := New(3)
	for _, line := range [][]string{
		{"first"},
		{"second"},
		{"third"},
		{"fourth"},
	} {
		h.Add(line)
	}
	assert.Equal(t, 3, h.Len(), "Only the most recent maxSize entries should remain")
	assert.Equal(t, "fourth ", h.Current())

	h.Prev()
	assert.Equal(t, "third ", h.Current())
	h.Prev()
	assert.Equal(t, "second ", h.Current(), "The oldest entry should have been evicted")
}

func TestHistory_CursorWraparound(t *testing.T) {
	h := New(10)
	h.Add([]string{"a"})
	h.Add([]string{"b"})
	h.Add([]string{"c"})

	// Most recent first: c, b, a.
	assert.Equal(t, "c ", h.Current())
	h.Prev()
	assert.Equal(t, "b ", h.Current())
	h.Prev()
	assert.Equal(t, "a ", h.Current())
	h.Prev()
	assert.Equal(t, "c ", h.Current(), "Prev from the oldest entry should wrap to the most recent")

	h.Reset()
	h.Next()
	assert.Equal(t, "a ", h.Current(), "Next from the most recent entry should wrap to the oldest")
	h.Next()
	assert.Equal(t, "b ", h.Current())
}

func TestHistory_Current(t *testing.T) {
	h := New(5)
	assert.Equal(t, "", h.Current(), "Empty history should render as an empty string")

	h.Add([]string{"show", "hw"})
	assert.Equal(t, "show hw ", h.Current(), "Every token should carry a trailing space")
	assert.Equal(t, "show hw ", h.Current(), "Current should not move the cursor")
}

func TestHistory_EmptyNavigation(t *testing.T) {
	h := New(5)
	h.Prev()
	h.Next()
	assert.Equal(t, "", h.Current())

	h.Add([]string{"only"})
	assert.Equal(t, "only ", h.Current(), "Navigation on an empty history should not corrupt the cursor")
}

func TestHistory_Reset(t *testing.T) {
	h := New(5)
	h.Add([]string{"one"})
	h.Add([]string{"two"})
	h.Prev()
	assert.Equal(t, "one ", h.Current())
	h.Reset()
	assert.Equal(t, "two ", h.Current())
}

func TestHistory_Show(t *testing.T) {
	h := New(5)
	h.Add([]string{"first", "cmd"})
	h.Add([]string{"second"})

	var buf bytes.Buffer
	h.Show(&buf)
	assert.Equal(t, "\nsecond \nfirst cmd \n\n", buf.String(), "Entries should list newest first, surrounded by blank lines")
}
