package rrb

import (
	"fmt"

	"github.com/relaxedtree/rrbvec/pkg/opt"
)

// Assoc returns a new vector with the element at index i replaced by
// value; syntactic sugar over Update (spec.md §4.4). It panics if i is
// out of range.
func (v *Vector[T]) Assoc(i uint64, value T) *Vector[T] {
	return v.Update(i, func(T) T { return value })
}

// Update returns a new vector with the element at index i replaced by
// f applied to its current value, copying only the path from the root
// (or the tail) down to that element (spec.md §4.6).
func (v *Vector[T]) Update(i uint64, f func(T) T) *Vector[T] {
	if i >= v.size {
		panic(fmt.Sprintf("rrb: index %d out of range [0, %d)", i, v.size))
	}

	tailOff := v.tailOffset()
	if i >= tailOff {
		newTail := v.doUpdateLast(v.tail, uint32(i-tailOff), f)
		v.root.Inc()
		return v.withSameParams(v.size, v.shift, v.root, newTail)
	}

	newRoot := v.doUpdate(v.root, v.shift, i, f)
	v.tail.Inc()
	return v.withSameParams(v.size, v.shift, newRoot, v.tail)
}

// doUpdate copies the single path from node (currently at level) down
// to index i, applying f to the element it finds there.
func (v *Vector[T]) doUpdate(n *node[T], level uint, i uint64, f func(T) T) *node[T] {
	if level == 0 {
		return v.doUpdateLast(n, uint32(i)&v.mask, f)
	}

	in := n.asInner()
	var slot uint32
	idx := i
	if in.sizes.IsSome() {
		sizes := in.sizes.Unwrap()
		slot = uint32(i>>level) & v.mask
		for sizes[slot] <= idx {
			slot++
		}
		if slot > 0 {
			idx -= sizes[slot-1]
		}
	} else {
		slot = uint32(i>>level) & v.mask
	}

	newNode := v.copyInnerAny(n)
	newIn := newNode.asInner()
	// copyInnerAny already Inc()'d every child, including slot; that
	// reference is the one being replaced below, so drop it explicitly
	// (rvektor.hpp:641-643's dec_unsafe before overwrite) rather than
	// letting it sit over-retained.
	newIn.children[slot].DecUnsafe()
	newIn.children[slot] = v.doUpdate(in.children[slot], level-v.b, idx, f)
	return newNode
}

// doUpdateLast applies f at slot within a leaf, copying that leaf only.
// spec.md's Open Questions flag the original's do_update_full as passing
// the wrong count (the destination's in-progress length rather than the
// source's full length) to its relaxed sizing helper; since leaves are
// never relaxed, this implementation sidesteps that entirely by copying
// leaf.items verbatim and mutating a single slot in the copy.
func (v *Vector[T]) doUpdateLast(n *node[T], slot uint32, f func(T) T) *node[T] {
	src := n.asLeaf()
	dst := makeLeaf[T]()
	items := append([]T{}, src.items...)
	items[slot] = f(items[slot])
	dst.asLeaf().items = items
	return dst
}

// copyInnerAny copies every child of n (strict or relaxed alike),
// incrementing reference counts on the retained children the way
// copyInner/copyInnerR do for the narrower push/concat paths.
func (v *Vector[T]) copyInnerAny(n *node[T]) *node[T] {
	in := n.asInner()
	if in.sizes.IsSome() {
		dst := makeInnerR[T]()
		dstIn := dst.asInner()
		dstIn.children = append(dstIn.children, in.children...)
		for _, c := range dstIn.children {
			c.Inc()
		}
		dstIn.sizes = opt.Some(append([]uint64{}, in.sizes.Unwrap()...))
		return dst
	}

	dst := makeInner[T]()
	dstIn := dst.asInner()
	dstIn.children = append(dstIn.children, in.children...)
	for _, c := range dstIn.children {
		c.Inc()
	}
	return dst
}
