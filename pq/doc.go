// SPDX-License-Identifier: MIT
// Package: lvmaze/pq

// Package pq implements an array-backed binary heap of (value, priority)
// pairs ordered by a caller-supplied predicate.
//
// A single Heap type covers both orientations:
//
//   - NewMin: outranked(a,b) = a < b   (smallest priority dequeued first)
//   - NewMax: outranked(a,b) = a >= b  (largest priority dequeued first)
//
// Enqueue sifts up and stops as soon as the parent already outranks the new
// priority. Dequeue moves the last element to the root and sifts down,
// preferring the right child whenever outranked(right, left) holds. These
// tie-breaking rules are part of the contract: searches built on the heap
// depend on them for reproducible visitation orders.
//
// Errors:
//
//   - ErrEmptyHeap: Dequeue or Peek on an empty heap.
//
// Complexity: Enqueue/Dequeue O(log n), Peek/Len O(1).
package pq
