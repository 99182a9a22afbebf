package rrb_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/relaxedtree/rrbvec/pkg/rrb"
)

func TestMapAndFilter(t *testing.T) {
	Convey("Given a vector of integers", t, func() {
		v := rrb.Of(1, 2, 3, 4, 5, 6)

		Convey("Map transforms every element, preserving order and length", func() {
			doubled := rrb.Map(v, func(x int) int { return x * 2 })
			So(doubled.Size(), ShouldEqual, v.Size())
			for i := uint64(0); i < v.Size(); i++ {
				So(doubled.Get(i), ShouldEqual, v.Get(i)*2)
			}
		})

		Convey("Map can change the element type", func() {
			strs := rrb.Map(v, func(x int) bool { return x%2 == 0 })
			So(strs.Size(), ShouldEqual, v.Size())
			So(strs.Get(0), ShouldBeFalse)
			So(strs.Get(1), ShouldBeTrue)
		})

		Convey("Filter keeps only matching elements, in order", func() {
			evens := rrb.Filter(v, func(x int) bool { return x%2 == 0 })
			So(evens.Size(), ShouldEqual, uint64(3))
			So(evens.Get(0), ShouldEqual, 2)
			So(evens.Get(1), ShouldEqual, 4)
			So(evens.Get(2), ShouldEqual, 6)
		})

		Convey("Fold and Reduce agree", func() {
			sum1 := rrb.Fold(v, 0, func(acc, x int) int { return acc + x })
			sum2 := rrb.Reduce(v, 0, func(acc, x int) int { return acc + x })
			So(sum1, ShouldEqual, sum2)
		})
	})
}
