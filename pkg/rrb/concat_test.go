package rrb_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/relaxedtree/rrbvec/pkg/rrb"
)

func TestConcatEmptyOperands(t *testing.T) {
	Convey("Given an empty vector and a non-empty one", t, func() {
		empty := rrb.New[int]()
		full := rrb.Of(1, 2, 3)

		Convey("Concatenating empty with full returns full's elements", func() {
			c := empty.Concat(full)
			So(c.Size(), ShouldEqual, full.Size())
			for i := uint64(0); i < full.Size(); i++ {
				So(c.Get(i), ShouldEqual, full.Get(i))
			}
		})

		Convey("Concatenating full with empty returns full's elements", func() {
			c := full.Concat(empty)
			So(c.Size(), ShouldEqual, full.Size())
			for i := uint64(0); i < full.Size(); i++ {
				So(c.Get(i), ShouldEqual, full.Get(i))
			}
		})
	})
}

func TestConcatPreservesOrder(t *testing.T) {
	Convey("Given a large vector concatenated with another", t, func() {
		a := rrb.New[int]()
		for i := 0; i < 5000; i++ {
			a = a.PushBack(i)
		}

		b := rrb.New[int]()
		for i := 5000; i < 8000; i++ {
			b = b.PushBack(i)
		}

		c := a.Concat(b)

		Convey("The result's length is the sum of both lengths", func() {
			So(c.Size(), ShouldEqual, a.Size()+b.Size())
		})

		Convey("Every index reads back the expected value, in order", func() {
			for i := 0; i < 8000; i += 37 {
				So(c.Get(uint64(i)), ShouldEqual, i)
			}
			So(c.Get(7999), ShouldEqual, 7999)
		})
	})
}

func TestConcatAssociativity(t *testing.T) {
	Convey("Given three vectors built to exercise several trie heights", t, func() {
		buildRange := func(lo, hi int) *rrb.Vector[int] {
			v := rrb.New[int]()
			for i := lo; i < hi; i++ {
				v = v.PushBack(i)
			}
			return v
		}

		a := buildRange(0, 17)
		b := buildRange(17, 900)
		c := buildRange(900, 2400)

		Convey("(A.Concat(B)).Concat(C) agrees index-for-index with A.Concat(B.Concat(C))", func() {
			left := a.Concat(b).Concat(c)
			right := a.Concat(b.Concat(c))

			So(left.Size(), ShouldEqual, right.Size())
			So(left.Size(), ShouldEqual, uint64(2400))
			for i := 0; i < 2400; i += 13 {
				So(left.Get(uint64(i)), ShouldEqual, right.Get(uint64(i)))
				So(left.Get(uint64(i)), ShouldEqual, i)
			}
			So(left.Get(2399), ShouldEqual, right.Get(2399))
		})
	})
}

func TestConcatSmallRightOperand(t *testing.T) {
	Convey("Given a vector concatenated with a right operand no bigger than one node", t, func() {
		a := rrb.New[int]()
		for i := 0; i < 100; i++ {
			a = a.PushBack(i)
		}
		b := rrb.Of(100, 101, 102)

		c := a.Concat(b)

		Convey("The combined vector reads back correctly", func() {
			So(c.Size(), ShouldEqual, uint64(103))
			for i := 0; i < 103; i++ {
				So(c.Get(uint64(i)), ShouldEqual, i)
			}
		})
	})
}
