package rrb

import "github.com/relaxedtree/rrbvec/pkg/opt"

// rrbExtras and rrbInvariant are the RRB redistribution-search
// constants from the original's rebalance: the packing loop keeps
// merging while the node count is at least rrbExtras above the optimum
// (so at most rrbExtras-1 extra nodes survive), and a node is skipped
// as already good enough only when it holds more than m-rrbInvariant
// slots.
const (
	rrbExtras    = 2
	rrbInvariant = 1
)

// Concat returns a new vector holding v's elements followed by r's
// (spec.md §4.7). Small right-hand concatenations fold directly into
// the tail/trie boundary the way PushBack does; large ones build a
// joint subtree via concatSubTree/rebalance and recompute the result's
// shift and sizes from scratch.
func (v *Vector[T]) Concat(r *Vector[T]) *Vector[T] {
	if v.size == 0 {
		r.root.Inc()
		r.tail.Inc()
		return r.withSameParams(r.size, r.shift, r.root, r.tail)
	}
	if r.size == 0 {
		v.root.Inc()
		v.tail.Inc()
		return v.withSameParams(v.size, v.shift, v.root, v.tail)
	}

	if r.size <= uint64(v.m) {
		ts := v.tailSize()
		switch {
		case ts == uint64(v.m):
			r.tail.Inc()
			shift, newRoot := v.pushTailIntoRoot(v.tail).Unpack()
			v.tail.Inc()
			return v.withSameParams(v.size+r.size, shift, newRoot, r.tail)

		case ts+r.size <= uint64(v.m):
			newTail := copyLeafConcat(v.tail, int(ts), r.tail, int(r.size))
			v.root.Inc()
			return v.withSameParams(v.size+r.size, v.shift, v.root, newTail)

		default:
			remaining := uint64(v.m) - ts
			addTail := copyLeafConcat(v.tail, int(ts), r.tail, int(remaining))
			newTail := copyLeafRange(r.tail, int(remaining), int(r.size))
			shift, newRoot := v.pushTailIntoRoot(addTail).Unpack()
			return v.withSameParams(v.size+r.size, shift, newRoot, newTail)
		}
	}

	leftShift, leftRoot := v.pushTailIntoRoot(v.tail).Unpack()
	newRoot := v.concatSubTree(leftShift, leftRoot, r.shift, r.root, true)
	newShift := v.computeShift(newRoot)
	v.setSizes(newRoot, newShift)
	r.tail.Inc()
	return v.withSameParams(v.size+r.size, newShift, newRoot, r.tail)
}

// concatSubTree walks both spines down to a common height, joining the
// two rightmost/leftmost boundary nodes at every level it descends past
// and rebalancing the result at each level on the way back up (spec.md
// §4.7).
func (v *Vector[T]) concatSubTree(lshift uint, lnode *node[T], rshift uint, rnode *node[T], isTop bool) *node[T] {
	switch {
	case lshift > rshift:
		lin := lnode.asInner()
		lidx := len(lin.children) - 1
		cnode := v.concatSubTree(lshift-v.b, lin.children[lidx], rshift, rnode, false)
		return v.rebalance(lnode, cnode, nil, lshift, isTop)

	case lshift < rshift:
		rin := rnode.asInner()
		cnode := v.concatSubTree(lshift, lnode, rshift-v.b, rin.children[0], false)
		return v.rebalance(nil, cnode, rnode, rshift, isTop)

	case lshift == 0:
		lslots := lnode.count()
		rslots := rnode.count()
		if isTop && lslots+rslots <= int(v.m) {
			return copyLeafConcat(lnode, lslots, rnode, rslots)
		}
		return makeInnerR2Children(lnode, rnode)

	default:
		lin := lnode.asInner()
		rin := rnode.asInner()
		lidx := len(lin.children) - 1
		cnode := v.concatSubTree(lshift-v.b, lin.children[lidx], rshift-v.b, rin.children[0], false)
		return v.rebalance(lnode, cnode, rnode, lshift, isTop)
	}
}

// makeInnerR2Children builds a relaxed two-child node without computing
// sizes, left for the caller: pushTailIntoRoot and Concat run setSizes
// on the result, while concatSubTree's non-top leaf join is only ever
// flattened by the parent rebalance, which reads its children and
// discards the wrapper.
func makeInnerR2Children[T any](x, y *node[T]) *node[T] {
	n := makeInnerR[T]()
	in := n.asInner()
	in.children = append(in.children, x, y)
	return n
}

// rebalance implements the RRB redistribution pass: it flattens lnode's
// children (minus its rightmost, already folded into cnode),
// cnode's own children, and rnode's children (minus its leftmost,
// likewise already folded in), then greedily merges short runs until
// fewer than rrbExtras more nodes exist than the theoretical optimum,
// before finally repacking the survivors' contents into freshly sized
// nodes (spec.md §4.7 and §6's sharing-after-concat note).
func (v *Vector[T]) rebalance(lnode, cnode, rnode *node[T], shift uint, isTop bool) *node[T] {
	var all []*node[T]
	if lnode != nil {
		children := lnode.asInner().children
		all = append(all, children[:len(children)-1]...)
	}
	all = append(all, cnode.asInner().children...)
	if rnode != nil {
		children := rnode.asInner().children
		all = append(all, children[1:]...)
	}

	allN := len(all)
	allSlots := make([]int, allN)
	totalAllSlots := 0
	for i, n := range all {
		allSlots[i] = n.count()
		totalAllSlots += allSlots[i]
	}

	optimalSlots := (totalAllSlots-1)/int(v.m) + 1
	shuffledN := allN
	i := 0
	for shuffledN >= optimalSlots+rrbExtras {
		for allSlots[i] > int(v.m)-rrbInvariant {
			i++
		}

		remaining := allSlots[i]
		for {
			minSize := remaining + allSlots[i+1]
			if minSize > int(v.m) {
				minSize = int(v.m)
			}
			allSlots[i] = minSize
			remaining += allSlots[i+1] - minSize
			i++
			if remaining <= 0 {
				break
			}
		}

		copy(allSlots[i:shuffledN-1], allSlots[i+1:shuffledN])
		shuffledN--
		i--
	}

	repacked := v.repackSlots(all, allSlots[:shuffledN], shift)

	if shuffledN <= int(v.m) {
		node := makeInnerR[T]()
		in := node.asInner()
		in.children = append(in.children, repacked...)
		v.setSizes(node, shift)
		if isTop {
			return node
		}

		// The non-top wrapper's own sizes are never read: every
		// non-top result only ever feeds the parent rebalance call's
		// flatten step, which reads its .children and discards the
		// wrapper node itself (spec.md's Open Questions raise this as
		// worth confirming; it does not need one).
		return makeInnerR1(node)
	}

	node1 := makeInnerR[T]()
	node1.asInner().children = append(node1.asInner().children, repacked[:v.m]...)
	v.setSizes(node1, shift)

	node2 := makeInnerR[T]()
	node2.asInner().children = append(node2.asInner().children, repacked[v.m:]...)
	v.setSizes(node2, shift)

	return makeInnerR2Children(node1, node2)
}

// repackSlots redistributes the elements held across all (leaves when
// shift==B, inner nodes one level down otherwise) into shuffledSlots's
// plan: a new node per entry in shuffledSlots, each holding exactly
// that many elements read off all in order. A plan entry that already
// matches its source node's own count at a zero offset reuses the
// source outright (no copy, just a reference-count bump) instead of
// rebuilding it.
func (v *Vector[T]) repackSlots(all []*node[T], shuffledSlots []int, shift uint) []*node[T] {
	out := make([]*node[T], len(shuffledSlots))
	fromI, fromOffset := 0, 0

	for i, newSlots := range shuffledSlots {
		fromNode := all[fromI]
		fromSlots := fromNode.count()

		if fromOffset == 0 && newSlots == fromSlots {
			fromNode.Inc()
			out[i] = fromNode
			fromI++
			continue
		}

		if shift == v.b {
			items := make([]T, 0, newSlots)
			cur := 0
			for cur < newSlots {
				fromData := fromNode.asLeaf().items
				if newSlots-cur >= fromSlots-fromOffset {
					items = append(items, fromData[fromOffset:fromSlots]...)
					cur += fromSlots - fromOffset
					fromI++
					if cur < newSlots {
						fromNode = all[fromI]
						fromSlots = fromNode.count()
						fromOffset = 0
					}
				} else {
					toCopy := newSlots - cur
					items = append(items, fromData[fromOffset:fromOffset+toCopy]...)
					fromOffset += toCopy
					cur = newSlots
				}
			}
			dst := makeLeaf[T]()
			dst.asLeaf().items = items
			out[i] = dst
		} else {
			children := make([]*node[T], 0, newSlots)
			cur := 0
			for cur < newSlots {
				fromData := fromNode.asInner().children
				if newSlots-cur >= fromSlots-fromOffset {
					for _, c := range fromData[fromOffset:fromSlots] {
						c.Inc()
					}
					children = append(children, fromData[fromOffset:fromSlots]...)
					cur += fromSlots - fromOffset
					fromI++
					if cur < newSlots {
						fromNode = all[fromI]
						fromSlots = fromNode.count()
						fromOffset = 0
					}
				} else {
					toCopy := newSlots - cur
					for _, c := range fromData[fromOffset : fromOffset+toCopy] {
						c.Inc()
					}
					children = append(children, fromData[fromOffset:fromOffset+toCopy]...)
					fromOffset += toCopy
					cur = newSlots
				}
			}
			dst := makeInnerR[T]()
			dst.asInner().children = children
			v.setSizes(dst, shift-v.b)
			out[i] = dst
		}
	}

	return out
}

// setSizes recomputes and installs node's cumulative-size side-array
// from its children's actual sizes at the level below (spec.md §4.7).
func (v *Vector[T]) setSizes(n *node[T], shift uint) {
	in := n.asInner()
	sizes := make([]uint64, len(in.children))
	acc := uint64(0)
	for i, c := range in.children {
		acc += v.computeSize(c, shift-v.b)
		sizes[i] = acc
	}
	in.sizes = opt.Some(sizes)
}

// computeSize returns the total element count reachable under n,
// trusting an existing sizes array when present rather than walking
// every child.
func (v *Vector[T]) computeSize(n *node[T], shift uint) uint64 {
	if shift == 0 {
		return uint64(n.count())
	}

	in := n.asInner()
	slots := len(in.children)
	if in.sizes.IsSome() {
		sizes := in.sizes.Unwrap()
		return sizes[slots-1]
	}
	return uint64(slots-1)<<shift + v.computeSize(in.children[slots-1], shift-v.b)
}

// computeShift measures the height of the subtree rooted at n, in the
// same B-sized units as Vector.shift, by following its leftmost spine.
func (v *Vector[T]) computeShift(n *node[T]) uint {
	if n.isLeaf() {
		return 0
	}
	return v.b + v.computeShift(n.asInner().children[0])
}
