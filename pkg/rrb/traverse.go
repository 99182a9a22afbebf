package rrb

// decTraversal walks root and tail once, decrementing every node's
// reference count and disposing any node whose count drops to zero
// (spec.md's Open Questions: the original handle destructor never ran
// this at all). The walk is unconditional: every node reachable from
// this Vector's root/tail gets exactly one Dec, matching the one
// reference this Vector value is understood to own.
func (v *Vector[T]) decTraversal() {
	decNode(v.root)
	decNode(v.tail)
}

func decNode[T any](n *node[T]) {
	if n == nil {
		return
	}
	if !n.Dec() {
		return
	}

	if n.isLeaf() {
		disposeLeaf(n)
		return
	}

	in := n.asInner()
	for _, c := range in.children {
		decNode(c)
	}
	disposeInner(n)
}

// Reduce folds f over every element of the vector from front to back,
// starting from init, by walking the trie's leaves in order and then
// the tail (spec.md §4.8's traversal-for-free-functions note). It uses
// walkInOrder, as Each does; the range-over-func iterator in
// iterator.go is driven by a Cursor instead.
func Reduce[T, A any](v *Vector[T], init A, f func(A, T) A) A {
	acc := init
	walkInOrder(v.root, func(x T) {
		acc = f(acc, x)
	})
	for _, x := range v.tail.asLeaf().items {
		acc = f(acc, x)
	}
	return acc
}

// walkInOrder visits every element reachable from n, leaf-first,
// left to right. n may be an empty root inner node (no children),
// in which case it visits nothing.
func walkInOrder[T any](n *node[T], visit func(T)) {
	if n.isLeaf() {
		for _, x := range n.asLeaf().items {
			visit(x)
		}
		return
	}

	for _, c := range n.asInner().children {
		walkInOrder(c, visit)
	}
}

// Each calls f once per element, in order. Unlike Reduce it carries no
// accumulator; used where the caller only wants side effects (spec.md
// §4.8).
func (v *Vector[T]) Each(f func(T)) {
	walkInOrder(v.root, f)
	for _, x := range v.tail.asLeaf().items {
		f(x)
	}
}
