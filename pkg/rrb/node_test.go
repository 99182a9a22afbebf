package rrb

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNodeShapeAndCount(t *testing.T) {
	Convey("Given a fresh leaf and a fresh inner node", t, func() {
		l := makeLeafWith(7)
		in := makeInner1(l)

		Convey("Each reports its own shape correctly", func() {
			So(l.isLeaf(), ShouldBeTrue)
			So(l.isInner(), ShouldBeFalse)
			So(in.isInner(), ShouldBeTrue)
			So(in.isLeaf(), ShouldBeFalse)
		})

		Convey("count reflects occupied slots regardless of shape", func() {
			So(l.count(), ShouldEqual, 1)
			So(in.count(), ShouldEqual, 1)
		})

		Convey("A strict inner node is never relaxed", func() {
			So(in.isRelaxed(), ShouldBeFalse)
		})

		Convey("A relaxed inner node reports relaxed", func() {
			r := makeInnerR1(l)
			So(r.isRelaxed(), ShouldBeTrue)
		})
	})
}

func TestCopyLeafRangeCountsMatchCopiedSlice(t *testing.T) {
	Convey("Given a leaf with five elements", t, func() {
		src := makeLeaf[int]()
		src.asLeaf().items = []int{0, 1, 2, 3, 4}

		Convey("copyLeafRange(src, 2, 5) copies exactly the elements it counts", func() {
			dst := copyLeafRange(src, 2, 5)
			So(dst.count(), ShouldEqual, 3)
			So(dst.asLeaf().items, ShouldResemble, []int{2, 3, 4})
		})
	})
}

func TestCopyLeafConcat(t *testing.T) {
	Convey("Given two leaves", t, func() {
		a := makeLeaf[int]()
		a.asLeaf().items = []int{1, 2, 3}
		b := makeLeaf[int]()
		b.asLeaf().items = []int{4, 5}

		Convey("copyLeafConcat joins the requested prefix of each", func() {
			dst := copyLeafConcat(a, 2, b, 2)
			So(dst.asLeaf().items, ShouldResemble, []int{1, 2, 4, 5})
		})
	})
}

func TestRefcountSharingAcrossCopies(t *testing.T) {
	Convey("Given an inner node copied via copyInner", t, func() {
		child := makeLeafWith(1)
		parent := makeInner1(child)

		Convey("The child's reference count increments once per retained copy", func() {
			before := child.Load()
			cp := copyInner(parent, 1)
			So(child.Load(), ShouldEqual, before+1)
			So(cp.asInner().children[0], ShouldEqual, child)
		})
	})
}
