package rrb

import (
	"fmt"

	"github.com/relaxedtree/rrbvec/internal/debug"
)

// defaultBranch is B, the production branching exponent (spec.md §3):
// M = 1<<defaultBranch = 32 children per node. Go has no const-generic
// parameters, so B lives on the value rather than the type; New builds
// vectors at this default, and newWithBranch (unexported, used only by
// this package's own tests) builds vectors at an arbitrary B so that the
// overflow scenarios in spec.md §8 (B=2, M=4) can be reproduced without
// pushing thousands of elements.
const defaultBranch = 5

// Vector is the persistent, structurally shared indexed sequence handle
// of spec.md §3: {size, shift, root, tail}. A Vector value is four
// machine words plus its branching parameters; copying it is cheap and
// yields a fully independent view that shares structure with the
// original until one of them is mutated further (which never happens in
// place — every operation returns a new Vector).
type Vector[T any] struct {
	size  uint64
	shift uint
	root  *node[T]
	tail  *node[T]

	b    uint
	m    uint32
	mask uint32
}

// New returns the empty vector at the production branching factor.
func New[T any]() *Vector[T] {
	return newWithBranch[T](defaultBranch)
}

// Of builds a vector containing the given values, in order, by
// repeated PushBack from New[T]().
func Of[T any](values ...T) *Vector[T] {
	v := New[T]()
	for _, x := range values {
		v = v.PushBack(x)
	}
	return v
}

func newWithBranch[T any](b uint) *Vector[T] {
	debug.Assert(b > 0 && b < 32, "rrb: branching exponent out of range: %d", b)
	m := uint32(1) << b
	return &Vector[T]{
		size:  0,
		shift: b,
		root:  makeInner[T](),
		tail:  makeLeaf[T](),
		b:     b,
		m:     m,
		mask:  m - 1,
	}
}

// Size returns the number of elements in the vector.
func (v *Vector[T]) Size() uint64 { return v.size }

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool { return v.size == 0 }

func (v *Vector[T]) tailSize() uint64 { return uint64(v.tail.count()) }

func (v *Vector[T]) tailOffset() uint64 { return v.size - v.tailSize() }

// withSameParams builds a sibling Vector, copying the branching
// parameters of v. Every operation in this package constructs its
// result through this helper (or New/newWithBranch) so that B/M/mask
// are never recomputed or allowed to drift between a vector and its
// derivatives.
func (v *Vector[T]) withSameParams(size uint64, shift uint, root, tail *node[T]) *Vector[T] {
	return &Vector[T]{
		size: size, shift: shift, root: root, tail: tail,
		b: v.b, m: v.m, mask: v.mask,
	}
}

// Get returns the element at index i. It panics if i is out of range,
// matching Go slice semantics and spec.md §7's treatment of bounds
// violations as a precondition the caller must uphold.
func (v *Vector[T]) Get(i uint64) T {
	if i >= v.size {
		panic(fmt.Sprintf("rrb: index %d out of range [0, %d)", i, v.size))
	}
	arr, off := v.arrayFor(i)
	return arr.asLeaf().items[off]
}

// Release runs the reference-count decrement traversal over the
// vector's root and tail exactly once (spec.md's Open Questions flags
// the original handle destructor as never calling dec() at all — either
// a deliberate arena/GC assumption or a bug; this module treats it as a
// bug and gives callers an explicit way to fix it). Calling Release more
// than once on the same Vector, or using the Vector afterward, is a
// programming error: the refcount contract assumes each call releases
// exactly the one reference this Vector value owned.
func (v *Vector[T]) Release() {
	v.decTraversal()
}

func (v *Vector[T]) String() string {
	return fmt.Sprintf("Vector[len=%d, shift=%d]", v.size, v.shift)
}
