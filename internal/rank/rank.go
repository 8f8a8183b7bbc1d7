// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rank selects the highest-valued entries from a sequence
// of key-value pairs using a bounded binary min-heap.
package rank

import (
	"cmp"
	"iter"
	"slices"
)

// Entry is a key together with its value.
type Entry[K, V cmp.Ordered] struct {
	Key   K
	Value V
}

// Top returns the n entries of seq with the greatest values, in
// descending order of value. Ties are broken by ascending key.
// The complexity is O(m log n) where m is the length of seq.
func Top[K, V cmp.Ordered](seq iter.Seq2[K, V], n int) []Entry[K, V] {
	if n <= 0 {
		return nil
	}
	h := &heap[K, V]{}
	for k, v := range seq {
		e := Entry[K, V]{k, v}
		if len(h.items) < n {
			h.push(e)
			continue
		}
		// The root is the weakest of the entries kept so far.
		if worse(h.items[0], e) {
			h.items[0] = e
			h.down(0, len(h.items))
		}
	}
	result := make([]Entry[K, V], 0, len(h.items))
	for len(h.items) > 0 {
		result = append(result, h.pop())
	}
	slices.Reverse(result)
	return result
}

// worse reports whether a ranks below b.
func worse[K, V cmp.Ordered](a, b Entry[K, V]) bool {
	if c := cmp.Compare(a.Value, b.Value); c != 0 {
		return c < 0
	}
	return a.Key > b.Key
}

// heap is a min-heap of entries ordered by worse, so the root is
// always the entry that should be evicted first.
type heap[K, V cmp.Ordered] struct {
	items []Entry[K, V]
}

func (h *heap[K, V]) push(e Entry[K, V]) {
	h.items = append(h.items, e)
	h.up(len(h.items) - 1)
}

// pop removes and returns the minimum entry.
func (h *heap[K, V]) pop() Entry[K, V] {
	n := len(h.items) - 1
	h.items[0], h.items[n] = h.items[n], h.items[0]
	h.down(0, n)
	e := h.items[n]
	h.items = h.items[:n]
	return e
}

func (h *heap[K, V]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !worse(h.items[j], h.items[i]) {
			break
		}
		h.items[i], h.items[j] = h.items[j], h.items[i]
		j = i
	}
}

func (h *heap[K, V]) down(i, n int) {
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && worse(h.items[j2], h.items[j1]) {
			j = j2 // right child
		}
		if !worse(h.items[j], h.items[i]) {
			break
		}
		h.items[i], h.items[j] = h.items[j], h.items[i]
		i = j
	}
}
