package unrolled

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	l := newIntList(t, 4, 1, 2, 3, 4, 5, 6, 7, 8)
	for range 3 {
		_, err := l.Remove(1)
		require.NoError(t, err)
	}
	_, err := l.Remove(1)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1}, {6, 7, 8}}, l.Chunks())

	stats := l.Stats()
	assert.Equal(t, ChainStats{
		Len:            4,
		Chunks:         2,
		ChunkCapacity:  4,
		UsedSlots:      4,
		FreeSlots:      4,
		FillRatio:      0.5,
		MergeablePairs: 1,
	}, stats)
}

func TestStatsEmpty(t *testing.T) {
	var l List[int]
	stats := l.Stats()
	assert.Equal(t, 0, stats.Len)
	assert.Equal(t, 1, stats.Chunks)
	assert.Equal(t, DefaultChunkCapacity, stats.FreeSlots)
	assert.Zero(t, stats.FillRatio)
}

func TestCompact(t *testing.T) {
	l := newIntList(t, 4, 1, 2, 3, 4, 5, 6, 7, 8)
	for range 4 {
		_, err := l.Remove(1)
		require.NoError(t, err)
	}
	require.Equal(t, [][]int{{1}, {6, 7, 8}}, l.Chunks())

	stats := l.Compact()
	assert.Equal(t, MaintenanceStats{ChunksReleased: 1}, stats)
	assert.Equal(t, [][]int{{1, 6, 7, 8}}, l.Chunks())
	require.NoError(t, l.verify())

	// Already dense: nothing to release.
	assert.Equal(t, MaintenanceStats{}, l.Compact())
	assert.Equal(t, []int{1, 6, 7, 8}, l.Slice())
}

func TestCompactFragmentedChain(t *testing.T) {
	values := make([]int, 30)
	for i := range values {
		values[i] = i
	}
	l := newIntList(t, 5, values...)

	// Thin every chunk out without emptying any.
	for i := l.Len() - 1; i >= 0; i-- {
		if i%5 != 0 && i%5 != 3 {
			_, err := l.Remove(i)
			require.NoError(t, err)
		}
	}
	want := l.Slice()
	before := l.Stats()
	require.Equal(t, 6, before.Chunks)
	require.Greater(t, before.MergeablePairs, 0)

	stats := l.Compact()
	require.NoError(t, l.verify())
	assert.Equal(t, want, l.Slice())

	after := l.Stats()
	assert.Equal(t, before.Chunks-stats.ChunksReleased, after.Chunks)
	assert.Equal(t, 3, after.Chunks) // 12 elements in chunks of 5
	assert.Zero(t, after.MergeablePairs)

	// The compacted chain stays editable.
	require.NoError(t, l.Insert(0, -1))
	l.Append(99)
	require.NoError(t, l.verify())
	assert.Equal(t, append(append([]int{-1}, want...), 99), l.Slice())
}

func TestCompactLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l, err := FromSlice(Options{ChunkCapacity: 2, Logger: logger}, []int{1, 2, 3, 4})
	require.NoError(t, err)

	_, err = l.Remove(1)
	require.NoError(t, err)
	_, err = l.Remove(1)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1}, {4}}, l.Chunks())

	buf.Reset()
	l.Compact()
	assert.Contains(t, buf.String(), "chain compacted")
	assert.Contains(t, buf.String(), "released=1")
}
