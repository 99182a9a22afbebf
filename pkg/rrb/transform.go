package rrb

import "github.com/relaxedtree/rrbvec/pkg/xiter"

// Map builds a new vector by applying f to every element of v, in
// order. It is implemented on top of the same values() sequence the
// range-over-func iterator in iterator.go uses, piped through
// xiter.Map rather than a hand-written loop, and collected back into a
// vector via repeated PushBack.
func Map[T, U any](v *Vector[T], f func(T) U) *Vector[U] {
	out := newWithBranch[U](v.b)
	for x := range xiter.Map(v.values(), f) {
		out = out.PushBack(x)
	}
	return out
}

// Filter builds a new vector holding only the elements of v for which
// keep returns true, preserving order.
func Filter[T any](v *Vector[T], keep func(T) bool) *Vector[T] {
	out := newWithBranch[T](v.b)
	for x := range xiter.Filter(v.values(), keep) {
		out = out.PushBack(x)
	}
	return out
}

// Fold is Reduce expressed directly in terms of xiter.Fold over the
// same cursor-driven sequence, rather than its own leaf walk; Reduce
// is kept alongside it because it is the name spec.md's traversal
// section uses, and some callers may prefer not to pull in the
// iterator machinery at all.
func Fold[T, A any](v *Vector[T], init A, f func(A, T) A) A {
	return xiter.Fold(v.values(), init, f)
}
