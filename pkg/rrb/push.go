package rrb

import (
	"github.com/relaxedtree/rrbvec/pkg/opt"
	"github.com/relaxedtree/rrbvec/pkg/tuple"
)

// PushBack returns a new vector with v appended. If the tail has room,
// this is a single copy-and-extend of the tail leaf (spec.md §4.5); once
// the tail fills up, the old tail is promoted into the trie and a fresh
// one-element tail is opened.
func (vec *Vector[T]) PushBack(value T) *Vector[T] {
	ts := vec.tailSize()
	if ts < uint64(vec.m) {
		newTail := copyLeafEmplace(vec.tail, int(ts), value)
		vec.root.Inc()
		return vec.withSameParams(vec.size+1, vec.shift, vec.root, newTail)
	}

	newTail := makeLeafWith(value)
	shift, root := vec.pushTailIntoRoot(vec.tail).Unpack()
	vec.tail.Inc()
	return vec.withSameParams(vec.size+1, shift, root, newTail)
}

// pushTailIntoRoot promotes the current tail into the trie, growing the
// tree's height when it would otherwise overflow (spec.md §4.5).
func (vec *Vector[T]) pushTailIntoRoot(tail *node[T]) tuple.Tuple2[uint, *node[T]] {
	if vec.isOverflow() {
		vec.root.Inc()
		newPath := vec.makePath(vec.shift, tail)

		var newRoot *node[T]
		if vec.root.asInner().sizes.IsSome() {
			// The pushed path's subtree is not, in general, a fully
			// saturated sibling of root's existing children, so the new
			// root is always built relaxed here and its sizes
			// recomputed from scratch below, the same as the original:
			// the partial size it could cheaply pass through at this
			// point is never actually used by the redistribution.
			newRoot = makeInnerR2Children(vec.root, newPath)
		} else {
			newRoot = makeInner2(vec.root, newPath)
		}
		if newRoot.asInner().sizes.IsSome() {
			vec.setSizes(newRoot, vec.shift+vec.b)
		}
		return tuple.New2(vec.shift+vec.b, newRoot)
	}

	newRoot := vec.pushTail(vec.shift, vec.root, tail)
	return tuple.New2(vec.shift, newRoot)
}

// isOverflow reports whether the trie at its current height has no room
// left for one more full leaf, by walking the right spine re-deriving
// size/count at each level (spec.md §4.5, following
// original_source/immu/detail/rvektor.hpp's is_overflow precisely,
// except that a non-relaxed node encountered partway down the spine is
// treated the same way as one found at the top, instead of risking a nil
// dereference on its absent sizes array).
func (vec *Vector[T]) isOverflow() bool {
	n := vec.root
	count := vec.tailOffset()

	if !n.asInner().sizes.IsSome() {
		return (count >> vec.b) >= (uint64(1) << vec.shift)
	}

	// Once every level down to (but not including) the one whose
	// children are leaves has checked out fully saturated and relaxed,
	// the tree is overflowing regardless of that final node's own
	// shape: it is never consulted.
	for level := vec.shift; level > vec.b; level -= vec.b {
		in := n.asInner()
		if !in.sizes.IsSome() {
			return (count >> vec.b) >= (uint64(1) << level)
		}

		slots := len(in.children)
		if uint32(slots) != vec.m {
			return false
		}

		sizes := in.sizes.Unwrap()
		n = in.children[slots-1]
		count = (sizes[vec.m-1] - sizes[vec.m-2]) + uint64(vec.m)
	}
	return true
}

// pushTail recursively promotes tail into parent (currently at level),
// reusing the last child when it is not yet a fully saturated subtree
// at this level, or opening a new slot otherwise.
func (vec *Vector[T]) pushTail(level uint, parent *node[T], tail *node[T]) *node[T] {
	in := parent.asInner()
	if in.sizes.IsSome() {
		sizes := in.sizes.Unwrap()
		count := len(in.children)
		idx := count - 1

		childSize := sizes[idx]
		if idx > 0 {
			childSize -= sizes[idx-1]
		}

		// Branch explicitly on "reusing the last child" vs. "appending a
		// brand-new slot" before ever reading sizes at the new index:
		// spec.md's Open Questions call out the original as reading
		// sizes[idx] for a slot that may not exist yet when appending.
		full := childSize == uint64(1)<<level
		newIdx := idx
		if full {
			newIdx = idx + 1
		}

		// The result always retains every existing child: when reusing
		// the last child it is overwritten in place, when appending a
		// new one it is added after, so the copy always spans all of
		// parent's current count children regardless of which case
		// applies (spec.md §4.5: "copy the node as relaxed with
		// new_idx + 1 slots").
		newParent := copyInnerR(parent, count)
		newIn := newParent.asInner()

		var promoted *node[T]
		switch {
		case level == vec.b:
			promoted = tail
		case !full:
			promoted = vec.pushTail(level-vec.b, in.children[idx], tail)
		default:
			promoted = vec.makePath(level-vec.b, tail)
		}

		if full {
			newIn.children = append(newIn.children, promoted)
		} else {
			// copyInnerR(parent, count) above already Inc()'d every
			// child it copied, including the slot being overwritten
			// here — the reused child is still alive through in's own
			// reference, so the copy's reference is the one being
			// discarded (rvektor.hpp:642's dec_unsafe before overwrite).
			newIn.children[newIdx].DecUnsafe()
			newIn.children[newIdx] = promoted
		}

		// The new cumulative count at new_idx is always the old total
		// (sizes[idx], the last valid cumulative entry) plus one full
		// tail's worth of elements, whether that total now belongs to a
		// grown existing child or a newly appended one.
		newSizes := newIn.sizes.Unwrap()
		newSize := sizes[idx] + uint64(vec.m)
		if full {
			newSizes = append(newSizes, newSize)
		} else {
			newSizes[newIdx] = newSize
		}
		newIn.sizes = opt.Some(newSizes)

		return newParent
	}

	idx := int((vec.size - uint64(vec.m) - 1) >> level & uint64(vec.mask))
	newIdx := int((vec.size - 1) >> level & uint64(vec.mask))

	// Copy parent's actual children, not idx+1: idx is only meaningful
	// as "the last occupied slot" once parent is non-empty. On the very
	// first tail promotion (parent freshly empty) vec.size-vec.m-1
	// underflows and idx no longer agrees with parent's real length, so
	// anchoring the copy width on len(in.children) (mirroring
	// copyInnerR's count above) keeps this correct in both the reuse
	// and append cases.
	newParent := copyInner(parent, len(in.children))
	newIn := newParent.asInner()

	var promoted *node[T]
	switch {
	case level == vec.b:
		promoted = tail
	case idx == newIdx:
		promoted = vec.pushTail(level-vec.b, in.children[idx], tail)
	default:
		promoted = vec.makePath(level-vec.b, tail)
	}

	if idx == newIdx {
		// Same discipline as the relaxed branch above: copyInner already
		// Inc()'d the slot being reused, so drop that reference here
		// rather than overwriting it and leaking the count.
		newIn.children[newIdx].DecUnsafe()
		newIn.children[newIdx] = promoted
	} else {
		newIn.children = append(newIn.children, promoted)
	}

	return newParent
}

// makePath wraps a leaf (or an already-built subtree) in level/B
// single-child strict inners. Bounded by shift/B (~13 levels for B=5 on
// a 64-bit size), safe to leave recursive per spec.md's design notes.
func (vec *Vector[T]) makePath(level uint, n *node[T]) *node[T] {
	if level == 0 {
		return n
	}
	return makeInner1(vec.makePath(level-vec.b, n))
}
