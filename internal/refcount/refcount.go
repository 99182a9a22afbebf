// Package refcount provides the reference-counting contract that the
// rrb package's nodes are built on.
//
// This is the "allocator/refcount policy" that spec.md §4.2 and §6
// describe as external and consumed rather than designed by the core:
// node lifetime is owned by whoever holds a pointer to it, and every
// persistent operation that retains a child it did not create must call
// Inc, while every operation that drops a child it is replacing must call
// Dec (or DecUnsafe, when the caller already knows a sibling reference
// keeps the node alive and only wants to skip the zero-check).
//
// Counter embeds no lock: the core assumes single-threaded use, per
// spec.md §5. It is built the way the teacher's internal/xsync atomic
// wrappers are built — a small struct wrapping a primitive counter with a
// handful of named methods — but without the atomic machinery, since
// there is no concurrency contract to uphold here.
package refcount

// Counter is the per-node reference count. A freshly constructed node
// starts at zero; callers that publish a node by storing it in a parent
// slot are expected to call Inc once for every outstanding reference,
// mirroring the "each pointer is an owning reference" discipline of
// spec.md §9.
type Counter struct {
	n int32
}

// Inc increments the reference count of the node this counter belongs
// to. Call this whenever a slot retains a pointer it did not just
// allocate fresh.
func (c *Counter) Inc() {
	c.n++
}

// Dec decrements the reference count and reports whether it reached
// zero, signalling the caller to recursively dispose of the node's
// contents (its sizes array for an inner node, its element slots for a
// leaf).
func (c *Counter) Dec() bool {
	c.n--
	return c.n <= 0
}

// DecUnsafe decrements without checking for zero. It exists for the same
// reason the original's dec_unsafe does: the calling path has just
// produced a replacement pointer for a slot and is about to overwrite
// it, so the old value's count can never legitimately observe this
// decrement taking it to zero without another reference already keeping
// it alive — and if it does reach zero, the immediate overwrite means no
// one will ever ask.
func (c *Counter) DecUnsafe() {
	c.n--
}

// Load returns the current count. Exposed for tests and debugging only;
// production code should never branch on its value directly (that's what
// Dec's bool return is for).
func (c *Counter) Load() int32 {
	return c.n
}
