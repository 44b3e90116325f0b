package main

import (
	"bufio"
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runScript(t *testing.T, capacity int, script string) string {
	t.Helper()
	var out bytes.Buffer
	logger := slog.New(slog.DiscardHandler)
	r, err := newREPL(bufio.NewReader(strings.NewReader(script)), &out, capacity, logger, false)
	require.NoError(t, err)
	require.NoError(t, r.run())
	return out.String()
}

func TestREPLEditsAndLayout(t *testing.T) {
	out := runScript(t, 2, `append a b c d e
chunks
insert 1 x
dump
remove 0
get 0
set 0 y
dump
len
`)

	assert.Contains(t, out, "Appended 5 values, len=5")
	assert.Contains(t, out, "[[a, b] -> [c, d] -> [e]]")
	assert.Contains(t, out, "[a, x, b, c, d, e]")
	assert.Contains(t, out, `Removed "a", len=5`)
	assert.Contains(t, out, `"x"`)
	assert.Contains(t, out, "[y, b, c, d, e]")
	assert.True(t, strings.HasSuffix(out, "5\n"))
}

func TestREPLErrorsDoNotStopSession(t *testing.T) {
	out := runScript(t, 3, `get 0
remove x
insert 5 z
new -1
bogus
append ok
dump
`)

	assert.Contains(t, out, "Get error: index out of range")
	assert.Contains(t, out, "Invalid index")
	assert.Contains(t, out, "Insert error: index out of range")
	assert.Contains(t, out, "Error creating list: chunk capacity must be positive")
	assert.Contains(t, out, "Unknown command: bogus")
	assert.Contains(t, out, "[ok]")
}

func TestREPLMaintenanceCommands(t *testing.T) {
	out := runScript(t, 4, `append 1 2 3 4 5 6 7 8
remove 1
remove 1
remove 1
remove 1
chunks
stats
compact
chunks
find 7
delete 7
find 7
quit
append never
`)

	assert.Contains(t, out, "[[1] -> [6, 7, 8]]")
	assert.Contains(t, out, "Mergeable pairs: 1")
	assert.Contains(t, out, "Released 1 chunks")
	assert.Contains(t, out, "[[1, 6, 7, 8]]")
	assert.Contains(t, out, `"7" first at 2, last at 2`)
	assert.Contains(t, out, "Deleted 1, len=3")
	assert.Contains(t, out, `"7" not found`)
	assert.NotContains(t, out, "never")
}

func TestREPLNewKeepsCapacity(t *testing.T) {
	out := runScript(t, 3, "append a\nnew\nnew 5\nlen\n")
	assert.Contains(t, out, "Created empty list with chunk capacity 3")
	assert.Contains(t, out, "Created empty list with chunk capacity 5")
	assert.True(t, strings.HasSuffix(out, "0\n"))
}
