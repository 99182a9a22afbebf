package rrb

import (
	"github.com/relaxedtree/rrbvec/internal/debug"
	"github.com/relaxedtree/rrbvec/pkg/res"
)

// Transient is a work-in-progress mutable builder over a Vector's
// structure, grounded on the upstream project's own
// set_transient.hpp, which at the point this package was written
// forward-declares the type and implements none of its methods. The
// operations below are kept as an explicit, typed surface rather than
// left unexported or omitted, so that a caller can compile against the
// eventual mutable-builder API now and get a clear runtime error
// instead of a missing symbol until it lands.
type Transient[T any] struct {
	from *Vector[T]
}

// AsTransient begins (in name only, for now) a transient build session
// seeded from v. Calling Persist without any successful mutation
// returns a vector equal to v.
func (v *Vector[T]) AsTransient() *Transient[T] {
	return &Transient[T]{from: v}
}

// PushBack is the transient counterpart to Vector.PushBack.
func (t *Transient[T]) PushBack(T) res.Result[*Transient[T]] {
	return res.Err[*Transient[T]](debug.Unsupported())
}

// Set is the transient counterpart to Vector.Assoc.
func (t *Transient[T]) Set(uint64, T) res.Result[*Transient[T]] {
	return res.Err[*Transient[T]](debug.Unsupported())
}

// Persist finalizes the transient session, returning an ordinary
// persistent Vector.
func (t *Transient[T]) Persist() res.Result[*Vector[T]] {
	return res.Err[*Vector[T]](debug.Unsupported())
}
