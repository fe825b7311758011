package upq

import "errors"

var (
	// ErrEmptyQueue is returned by Peek and RemoveMin when the queue holds no entries.
	ErrEmptyQueue = errors.New("upq: queue is empty")

	// ErrItemNotFound is returned by UpdatePriority when the item is not queued.
	ErrItemNotFound = errors.New("upq: item not found")
)

// Default growth parameters for the backing slices.
const (
	DefaultCapacity = 10 // initial number of slots
	GrowthStep      = 5  // slots added each time the queue is full
)

// Option configures a Queue at construction time.
type Option func(*Options)

// Options holds the tunables for New.
type Options struct {
	// Capacity is the initial number of slots. Values < 1 fall back to DefaultCapacity.
	Capacity int
}

// DefaultOptions returns Options with Capacity = DefaultCapacity.
func DefaultOptions() Options {
	return Options{Capacity: DefaultCapacity}
}

// WithCapacity sets the initial slot count.
// Non-positive values are ignored.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Capacity = n
		}
	}
}
