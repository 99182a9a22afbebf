package rrb

import (
	"iter"

	"github.com/relaxedtree/rrbvec/pkg/xiter"
)

// Cursor is a stateful random-access iterator over a Vector (spec.md
// §4.8), grounded on the original's boost::iterator_facade-based
// iterator: it caches the leaf currently under the cursor and only
// calls back into arrayFor when advancing past that leaf's boundary,
// so that a run of sequential Next/Prev calls costs O(1) each instead
// of repaying the full O(log n) descent every time.
type Cursor[T any] struct {
	v     *Vector[T]
	i     uint64
	base  uint64
	leaf  *node[T]
	valid bool
}

// Cursor returns a cursor positioned before the vector's first element.
func (v *Vector[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{v: v}
}

// CursorAt returns a cursor positioned at index i. i may equal v.Size()
// to represent the end position.
func (v *Vector[T]) CursorAt(i uint64) *Cursor[T] {
	c := &Cursor[T]{v: v, i: i}
	c.resync()
	return c
}

func (c *Cursor[T]) resync() {
	if c.i >= c.v.size {
		c.base = c.i - (c.i & uint64(c.v.mask))
		c.valid = false
		return
	}
	leaf, off := c.v.arrayFor(c.i)
	c.leaf = leaf
	c.base = c.i - uint64(off)
	c.valid = true
}

// Next advances the cursor by one and reports whether it now points at
// a valid element.
func (c *Cursor[T]) Next() bool {
	if c.leaf == nil && c.i == 0 {
		// A cursor from Cursor() has not visited index 0 yet.
		c.resync()
		return c.valid
	}
	if c.i >= c.v.size {
		return false
	}
	c.i++
	if c.i >= c.v.size {
		c.valid = false
		return false
	}
	if c.i-c.base >= uint64(c.v.m) {
		c.resync()
	}
	return c.valid
}

// Prev moves the cursor back by one and reports whether it now points
// at a valid element.
func (c *Cursor[T]) Prev() bool {
	if c.i == 0 {
		c.valid = false
		return false
	}
	c.i--
	if c.i < c.base || !c.valid {
		c.resync()
	}
	return c.valid
}

// Seek moves the cursor directly to index i.
func (c *Cursor[T]) Seek(i uint64) {
	c.i = i
	c.resync()
}

// Index returns the cursor's current position.
func (c *Cursor[T]) Index() uint64 { return c.i }

// Value returns the element at the cursor's current position. It
// panics if the cursor does not point at a valid element. The leaf
// cached by the last resync is read directly when the cursor is still
// within it; otherwise (past the end of a leaf shorter than M) the
// element is resolved again through arrayFor.
func (c *Cursor[T]) Value() T {
	if !c.valid {
		panic("rrb: cursor does not point at a valid element")
	}
	off := int(c.i - c.base)
	if c.leaf.isLeaf() && off < c.leaf.count() {
		return c.leaf.asLeaf().items[off]
	}
	leaf, off := c.v.arrayFor(c.i)
	return leaf.asLeaf().items[off]
}

// values returns a front-to-back iter.Seq[T] driven by a Cursor, so
// that All below pays only the cursor's amortized per-step cost rather
// than re-deriving index arithmetic with a separate leaf walk.
func (v *Vector[T]) values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if v.size == 0 {
			return
		}
		c := v.CursorAt(0)
		for {
			if !yield(c.Value()) {
				return
			}
			if !c.Next() {
				return
			}
		}
	}
}

// All returns a Go range-over-func iterator over (index, value) pairs,
// front to back (spec.md §4.8), built by running the cursor-driven
// sequence above through xiter.Enumerate for the index rather than
// hand-rolling a counter.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return xiter.Enumerate(v.values())
}
