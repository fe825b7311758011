// Package upq implements a unique priority queue: an ordered container that
// maps items to float64 priorities, keeps at most one entry per item, and
// hands items back in ascending priority order.
//
// What:
//
//   - Add inserts an item unless it is already present (uniqueness).
//   - Peek / RemoveMin return the lowest-priority item; among equal
//     priorities the earliest inserted wins (FIFO tie-break).
//   - UpdatePriority re-inserts an item as if freshly added, so it moves
//     behind every entry that already holds the same priority.
//
// Why:
//
//   - Greedy search steps that must pick the "best" of a handful of
//     candidates deterministically, with no duplicates.
//   - container/heap does not keep insertion order among equal keys; a dense
//     ascending slice does, with no extra bookkeeping.
//
// Complexity:
//
//   - Add, Contains, UpdatePriority, RemoveMin: O(n) (linear scan + shift)
//   - Peek, Len, IsEmpty:                      O(1)
//   - Memory:                                  O(n)
//
// Intended for small n (tens of entries). Rebuild per step rather than
// keeping one huge queue.
//
// Errors:
//
//   - ErrEmptyQueue    Peek or RemoveMin on an empty queue.
//   - ErrItemNotFound  UpdatePriority for an item that is not queued.
package upq
