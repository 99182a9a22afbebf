// Package rrb implements a persistent, structurally shared indexed
// sequence backed by a Relaxed Radix Balanced tree (RRB-tree) with a
// tail optimization.
//
// The tree is a wide, shallow trie whose interior nodes are either
// strict (every child but the last is a fully saturated subtree) or
// relaxed (children carry a cumulative size index, allowing uneven
// subtree sizes after concatenation). A small append buffer, the tail,
// sits outside the trie to amortize sequential growth so that repeated
// PushBack calls do not pay the cost of a full path copy for every
// element.
//
// All public operations are persistent: they return a new Vector[T]
// sharing as much structure as possible with the receiver, and never
// mutate a node once it has been published into a Vector. Vector[T]
// values are cheap to copy (four words); sharing discipline is
// maintained internally via reference counts (package
// github.com/relaxedtree/rrbvec/internal/refcount), not by the Go
// garbage collector's reachability alone, so that a host embedding this
// package can eventually recycle disposed subtrees deterministically by
// swapping in its own refcount policy.
package rrb
