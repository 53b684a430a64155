package region

import "go.uber.org/zap"

// Backing selects where a region's block is reserved from.
type Backing string

const (
	// BackingMmap maps anonymous memory from the operating system and unmaps
	// it on Release. Only available on unix platforms.
	BackingMmap Backing = "mmap"

	// BackingHeap reserves the block as a Go byte slice. Release drops the
	// slice and leaves reclamation to the garbage collector.
	BackingHeap Backing = "heap"
)

type options struct {
	logger  *zap.Logger
	backing Backing
}

// Option configures a Region at construction.
type Option func(*options)

// WithLogger sets the logger used for lifecycle events. Defaults to zap.L().
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBacking sets the memory backing. Defaults to DefaultBacking.
func WithBacking(b Backing) Option {
	return func(o *options) {
		o.backing = b
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger:  zap.L(),
		backing: DefaultBacking,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
