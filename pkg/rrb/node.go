package rrb

import (
	"github.com/relaxedtree/rrbvec/internal/debug"
	"github.com/relaxedtree/rrbvec/internal/refcount"
	"github.com/relaxedtree/rrbvec/pkg/either"
	"github.com/relaxedtree/rrbvec/pkg/opt"
)

// leaf holds up to m values of T. It never owns a sizes array; spec.md
// §3 is explicit that leaves are never relaxed.
type leaf[T any] struct {
	items []T
}

// inner holds up to m child pointers. A present sizes option marks the
// node relaxed (variable-size children, cumulative counts tracked in
// sizes); its absence marks the node strict (every child but the last is
// a fully saturated subtree of the level below).
//
// sizes is an opt.Option[[]uint64] rather than a bare nilable slice: the
// presence/absence of the side-array is a structural bit the spec calls
// out explicitly, not an incidental optimization, so it gets an explicit
// discriminant the way spec.md's own design notes recommend for a
// null-pointer-free language.
type inner[T any] struct {
	children []*node[T]
	sizes    opt.Option[[]uint64]
}

// node is the single heterogeneous trie node of spec.md §3: a tagged
// union of leaf and inner shapes, plus the reference count that makes it
// safe to share across persistent versions. either.Either is the sum
// type standing in for the C++ source's tagged union; shape.HasLeft()
// answers "is this node currently a leaf" the way the original's
// node_t.kind did.
type node[T any] struct {
	refcount.Counter
	shape either.Either[*leaf[T], *inner[T]]
}

func (n *node[T]) isLeaf() bool  { return n.shape.HasLeft() }
func (n *node[T]) isInner() bool { return n.shape.HasRight() }

func (n *node[T]) asLeaf() *leaf[T] {
	debug.Assert(n.isLeaf(), "rrb: asLeaf called on an inner node")
	return n.shape.UnwrapLeft()
}

func (n *node[T]) asInner() *inner[T] {
	debug.Assert(n.isInner(), "rrb: asInner called on a leaf node")
	return n.shape.UnwrapRight()
}

// isRelaxed reports whether an inner node carries a sizes side-array.
func (n *node[T]) isRelaxed() bool {
	return n.isInner() && n.asInner().sizes.IsSome()
}

// count returns the number of occupied slots, regardless of shape: the
// leaf's element count or the inner's child count.
func (n *node[T]) count() int {
	if n.isLeaf() {
		return len(n.asLeaf().items)
	}
	return len(n.asInner().children)
}

// ---- constructors (spec.md §4.1) ----

func makeLeaf[T any]() *node[T] {
	return &node[T]{shape: either.Left[*leaf[T], *inner[T]](&leaf[T]{})}
}

func makeLeafWith[T any](x T) *node[T] {
	n := makeLeaf[T]()
	n.asLeaf().items = append(n.asLeaf().items, x)
	return n
}

func makeInner[T any]() *node[T] {
	return &node[T]{shape: either.Right[*leaf[T], *inner[T]](&inner[T]{})}
}

func makeInnerR[T any]() *node[T] {
	return &node[T]{shape: either.Right[*leaf[T], *inner[T]](&inner[T]{sizes: opt.Some([]uint64{})})}
}

func makeInner1[T any](x *node[T]) *node[T] {
	n := makeInner[T]()
	n.asInner().children = append(n.asInner().children, x)
	return n
}

func makeInner2[T any](x, y *node[T]) *node[T] {
	n := makeInner[T]()
	n.asInner().children = append(n.asInner().children, x, y)
	return n
}

func makeInnerR1[T any](x *node[T]) *node[T] {
	n := makeInnerR[T]()
	n.asInner().children = append(n.asInner().children, x)
	return n
}

// ---- copiers (spec.md §4.1) ----

// copyInner produces a fresh strict inner holding the first n children
// of src, incrementing each retained child's reference count.
func copyInner[T any](src *node[T], n int) *node[T] {
	srcIn := src.asInner()
	dst := makeInner[T]()
	dstIn := dst.asInner()
	dstIn.children = append(dstIn.children, srcIn.children[:n]...)
	for _, c := range dstIn.children {
		c.Inc()
	}
	return dst
}

// copyInnerR is copyInner plus the first n entries of the sizes array.
func copyInnerR[T any](src *node[T], n int) *node[T] {
	srcIn := src.asInner()
	dst := makeInnerR[T]()
	dstIn := dst.asInner()
	dstIn.children = append(dstIn.children, srcIn.children[:n]...)
	for _, c := range dstIn.children {
		c.Inc()
	}
	srcSizes := srcIn.sizes.Unwrap()
	dstIn.sizes = opt.Some(append([]uint64{}, srcSizes[:n]...))
	return dst
}

// copyLeaf copies the first n elements of src into a fresh leaf.
func copyLeaf[T any](src *node[T], n int) *node[T] {
	dst := makeLeaf[T]()
	dst.asLeaf().items = append(dst.asLeaf().items, src.asLeaf().items[:n]...)
	return dst
}

// copyLeafConcat concatenates the first n1 elements of src1 and the
// first n2 elements of src2 into a single fresh leaf.
func copyLeafConcat[T any](src1 *node[T], n1 int, src2 *node[T], n2 int) *node[T] {
	dst := makeLeaf[T]()
	items := make([]T, 0, n1+n2)
	items = append(items, src1.asLeaf().items[:n1]...)
	items = append(items, src2.asLeaf().items[:n2]...)
	dst.asLeaf().items = items
	return dst
}

// copyLeafRange copies the n-idx elements src.items[idx:n] into a fresh
// leaf. spec.md's Open Questions flag the original copy_leaf(src, idx,
// n) as ambiguous about whether it sets slots to n-idx or to n while
// copying n elements; this implementation copies and counts the same
// n-idx elements, which is the only self-consistent reading.
func copyLeafRange[T any](src *node[T], idx, n int) *node[T] {
	dst := makeLeaf[T]()
	dst.asLeaf().items = append(dst.asLeaf().items, src.asLeaf().items[idx:n]...)
	return dst
}

// copyLeafEmplace copies the first n elements of src and appends x.
func copyLeafEmplace[T any](src *node[T], n int, x T) *node[T] {
	dst := copyLeaf(src, n)
	dst.asLeaf().items = append(dst.asLeaf().items, x)
	return dst
}

// disposeInner and disposeLeaf mirror delete_inner/delete_leaf: they run
// when the dec-traversal (traverse.go) determines a node's reference
// count has reached zero. Go's garbage collector reclaims the backing
// arrays regardless, but clearing the slices here drops the node's
// outgoing pointers immediately rather than waiting on a GC cycle, which
// matters for a host layering deterministic pooling on top of the
// refcount hooks.
func disposeInner[T any](n *node[T]) {
	in := n.asInner()
	in.children = nil
	in.sizes = opt.None[[]uint64]()
}

func disposeLeaf[T any](n *node[T]) {
	n.asLeaf().items = nil
}
