package unrolled

import "log/slog"

// DefaultChunkCapacity is the chunk capacity used when Options leaves it unset.
const DefaultChunkCapacity = 10

// Options configures a List.
type Options struct {
	// ChunkCapacity is the number of elements each chunk holds. Zero selects
	// DefaultChunkCapacity; negative values are rejected. Fixed for the
	// lifetime of the list.
	ChunkCapacity int

	// Logger receives debug records for structural changes (chunk allocation,
	// unlinking, compaction). Nil discards them.
	Logger *slog.Logger
}

// resolve validates the options and fills in defaults.
func (o Options) resolve() (Options, error) {
	if o.ChunkCapacity < 0 {
		return o, ErrInvalidCapacity
	}
	if o.ChunkCapacity == 0 {
		o.ChunkCapacity = DefaultChunkCapacity
	}
	if o.Logger == nil {
		o.Logger = discardLogger
	}
	return o, nil
}

var discardLogger = slog.New(slog.DiscardHandler)
