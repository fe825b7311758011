package upq

import (
	"fmt"
	"strconv"
	"strings"
)

// Queue is a unique priority queue over comparable items.
// items[i] carries priority prio[i]; prio is kept non-decreasing, and entries
// of equal priority sit in insertion order.
// The zero value is not usable; construct with New.
type Queue[T comparable] struct {
	items []T
	prio  []float64
}

// New returns an empty Queue.
func New[T comparable](opts ...Option) *Queue[T] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Capacity < 1 {
		cfg.Capacity = DefaultCapacity
	}

	return &Queue[T]{
		items: make([]T, 0, cfg.Capacity),
		prio:  make([]float64, 0, cfg.Capacity),
	}
}

// Add inserts item with priority p. If item is already queued the call is a
// no-op and the existing priority is kept.
// The new entry goes after every entry whose priority is <= p.
func (q *Queue[T]) Add(item T, p float64) {
	if q.indexOf(item) >= 0 {
		return
	}
	q.grow()

	// 1. Walk back from the tail past strictly greater priorities.
	idx := len(q.items)
	for idx > 0 && q.prio[idx-1] > p {
		idx--
	}

	// 2. Open a slot at idx and shift the tail right.
	var zero T
	q.items = append(q.items, zero)
	q.prio = append(q.prio, 0)
	copy(q.items[idx+1:], q.items[idx:])
	copy(q.prio[idx+1:], q.prio[idx:])

	// 3. Place the entry.
	q.items[idx] = item
	q.prio[idx] = p
}

// Contains reports whether item is queued.
func (q *Queue[T]) Contains(item T) bool {
	return q.indexOf(item) >= 0
}

// Priority returns the priority stored for item.
func (q *Queue[T]) Priority(item T) (float64, bool) {
	i := q.indexOf(item)
	if i < 0 {
		return 0, false
	}

	return q.prio[i], true
}

// Peek returns the item with the lowest priority without removing it.
// Ties resolve to the earliest inserted item.
func (q *Queue[T]) Peek() (T, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	return q.items[0], nil
}

// RemoveMin removes and returns the item Peek would return.
func (q *Queue[T]) RemoveMin() (T, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	item := q.items[0]
	q.removeAt(0)

	return item, nil
}

// UpdatePriority replaces the priority of item. The entry is removed and added
// again, so it lands behind any entries that already share the new priority.
func (q *Queue[T]) UpdatePriority(item T, p float64) error {
	i := q.indexOf(item)
	if i < 0 {
		return fmt.Errorf("%w: %v", ErrItemNotFound, item)
	}
	q.removeAt(i)
	q.Add(item, p)

	return nil
}

// Len returns the number of queued entries.
func (q *Queue[T]) Len() int { return len(q.items) }

// IsEmpty reports whether the queue has no entries.
func (q *Queue[T]) IsEmpty() bool { return len(q.items) == 0 }

// Cap returns the current slot capacity.
func (q *Queue[T]) Cap() int { return cap(q.items) }

// Items returns a copy of the queued items in retrieval order.
func (q *Queue[T]) Items() []T {
	out := make([]T, len(q.items))
	copy(out, q.items)

	return out
}

// String renders the entries as "a [1], b [2.5]" or "empty".
func (q *Queue[T]) String() string {
	if len(q.items) == 0 {
		return "empty"
	}
	var sb strings.Builder
	for i := range q.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v [%s]", q.items[i], strconv.FormatFloat(q.prio[i], 'g', -1, 64))
	}

	return sb.String()
}

// indexOf returns the position of item, or -1.
func (q *Queue[T]) indexOf(item T) int {
	for i := range q.items {
		if q.items[i] == item {
			return i
		}
	}

	return -1
}

// removeAt drops the entry at i, shifting the tail left.
func (q *Queue[T]) removeAt(i int) {
	last := len(q.items) - 1
	copy(q.items[i:], q.items[i+1:])
	copy(q.prio[i:], q.prio[i+1:])

	var zero T
	q.items[last] = zero // release reference
	q.items = q.items[:last]
	q.prio = q.prio[:last]
}

// grow extends capacity by GrowthStep when the queue is full.
func (q *Queue[T]) grow() {
	if len(q.items) < cap(q.items) {
		return
	}
	items := make([]T, len(q.items), cap(q.items)+GrowthStep)
	prio := make([]float64, len(q.prio), cap(q.items)+GrowthStep)
	copy(items, q.items)
	copy(prio, q.prio)
	q.items, q.prio = items, prio
}
