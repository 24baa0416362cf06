// SPDX-License-Identifier: MIT
// Package: lvmaze/pq
//
// heap.go - comparator-parameterized binary heap.

package pq

import "errors"

// ErrEmptyHeap is returned when removing from or peeking into an empty heap.
var ErrEmptyHeap = errors.New("pq: heap is empty")

// Item is a single heap entry.
type Item[T any] struct {
	Value    T
	Priority float64
}

// Outranked reports whether priority a belongs above priority b.
type Outranked func(a, b float64) bool

// Less orders a min-heap.
func Less(a, b float64) bool { return a < b }

// GreaterOrEqual orders a max-heap.
func GreaterOrEqual(a, b float64) bool { return a >= b }

// Heap is a binary heap. The zero value is not usable; use New, NewMin or NewMax.
type Heap[T any] struct {
	items     []Item[T]
	outranked Outranked
}

// New returns an empty heap ordered by outranked. A nil predicate falls
// back to Less.
func New[T any](outranked Outranked) *Heap[T] {
	if outranked == nil {
		outranked = Less
	}

	return &Heap[T]{outranked: outranked}
}

// NewMin returns an empty min-heap.
func NewMin[T any]() *Heap[T] { return New[T](Less) }

// NewMax returns an empty max-heap.
func NewMax[T any]() *Heap[T] { return New[T](GreaterOrEqual) }

// Enqueue inserts value with the given priority.
// Complexity: O(log n).
func (h *Heap[T]) Enqueue(value T, priority float64) {
	h.items = append(h.items, Item[T]{})
	n := len(h.items) - 1
	for n > 0 {
		parent := (n - 1) / 2
		if h.outranked(h.items[parent].Priority, priority) {
			break
		}
		h.items[n] = h.items[parent]
		n = parent
	}
	h.items[n] = Item[T]{Value: value, Priority: priority}
}

// Dequeue removes and returns the root value.
// Returns ErrEmptyHeap when the heap holds no items.
// Complexity: O(log n).
func (h *Heap[T]) Dequeue() (T, error) {
	var zero T
	if len(h.items) == 0 {
		return zero, ErrEmptyHeap
	}

	top := h.items[0]
	length := len(h.items) - 1
	last := h.items[length]
	h.items[length] = Item[T]{} // drop reference for GC
	h.items = h.items[:length]

	n := 0
	for n*2+1 < length {
		child := n*2 + 1
		if right := child + 1; right < length && h.outranked(h.items[right].Priority, h.items[child].Priority) {
			child = right
		}
		if h.outranked(last.Priority, h.items[child].Priority) {
			break
		}
		h.items[n] = h.items[child]
		n = child
	}
	if length > 0 {
		h.items[n] = last
	}

	return top.Value, nil
}

// Peek returns the root value and its priority without removing it.
func (h *Heap[T]) Peek() (T, float64, error) {
	var zero T
	if len(h.items) == 0 {
		return zero, 0, ErrEmptyHeap
	}

	return h.items[0].Value, h.items[0].Priority, nil
}

// Len reports the number of items.
func (h *Heap[T]) Len() int { return len(h.items) }

// Size is an alias of Len.
func (h *Heap[T]) Size() int { return len(h.items) }

// Reset drops every item while keeping the allocated capacity.
func (h *Heap[T]) Reset() {
	clear(h.items)
	h.items = h.items[:0]
}
