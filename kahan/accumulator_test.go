// Copyright © 2024 Genome Research Limited
//
//  This file is part of covstab.
//
//  covstab is free software: you can redistribute it and/or modify
//  it under the terms of the GNU Lesser General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  covstab is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU Lesser General Public License for more details.
//
//  You should have received a copy of the GNU Lesser General Public License
//  along with covstab. If not, see <http://www.gnu.org/licenses/>.

package kahan

import (
	"math/big"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// exactPrec is enough bits to hold the exact sum of any of our test sequences.
const exactPrec = 2048

// sumErrors adds the first n values of seq to an Accumulator, to a plain
// float64 and to an exact big.Float, and returns the absolute errors of the
// Accumulator's Value() and of the plain sum.
func sumErrors(seq func(i int) float64, n int) (compensated, plain *big.Float) {
	acc := New(0)
	var naive float64
	exact := new(big.Float).SetPrec(exactPrec)
	for i := 0; i < n; i++ {
		v := seq(i)
		acc.Add(v)
		naive += v
		exact.Add(exact, new(big.Float).SetPrec(exactPrec).SetFloat64(v))
	}

	compensated = new(big.Float).SetPrec(exactPrec).SetFloat64(acc.Value())
	compensated.Sub(compensated, exact).Abs(compensated)
	plain = new(big.Float).SetPrec(exactPrec).SetFloat64(naive)
	plain.Sub(plain, exact).Abs(plain)
	return compensated, plain
}

func BenchmarkAccumulator(b *testing.B) {
	acc := New(0)
	for n := 0; n < b.N; n++ {
		acc.Add(0.1)
	}
}

func TestAccumulator(t *testing.T) {
	Convey("A new Accumulator starts at its seed", t, func() {
		So(New(0).Value(), ShouldEqual, 0)
		So(New(42.5).Value(), ShouldEqual, 42.5)
		So(New(42.5).Compensation(), ShouldEqual, 0)

		var zero Accumulator
		zero.Add(3)
		So(zero.Value(), ShouldEqual, 3)
	})

	Convey("Given an Accumulator", t, func() {
		acc := New(0)

		Convey("Adding 0.1 ten times gives exactly 1, unlike plain addition", func() {
			var naive float64
			for i := 0; i < 10; i++ {
				acc.Add(0.1)
				naive += 0.1
			}
			So(acc.Value(), ShouldEqual, 1)
			So(naive, ShouldNotEqual, 1)
		})

		Convey("Its value is always total + compensation", func() {
			for i := 0; i < 1000; i++ {
				acc.Add(1.0 / float64(i+1))
				So(acc.Value(), ShouldEqual, acc.Total()+acc.Compensation())
			}
		})

		Convey("Tiny values added to a large one are not lost", func() {
			acc.Add(1)
			var naive float64 = 1
			for i := 0; i < 10000; i++ {
				acc.Add(1e-16)
				naive += 1e-16
			}
			So(naive, ShouldEqual, 1)
			So(acc.Value(), ShouldBeGreaterThan, 1)
			So(acc.Value(), ShouldAlmostEqual, 1.000000000001, 1e-15)
		})

		Convey("AddAccumulator adds the other's value as a scalar", func() {
			other := New(0)
			for i := 0; i < 10; i++ {
				other.Add(0.1)
			}
			acc.Add(5)
			scalar := New(5)

			acc.AddAccumulator(other)
			scalar.Add(other.Value())
			So(acc.Value(), ShouldEqual, scalar.Value())
			So(acc.Total(), ShouldEqual, scalar.Total())
			So(acc.Compensation(), ShouldEqual, scalar.Compensation())
		})
	})

	Convey("For a variety of sequences, Value() is at least as close to the exact sum as plain addition", t, func() {
		for _, test := range [...]struct {
			name string
			seq  func(i int) float64
			max  int
		}{
			{"repeated tenths", func(i int) float64 { return 0.1 }, 100000},
			{"one then tiny values", func(i int) float64 {
				if i == 0 {
					return 1
				}
				return 1e-16
			}, 10000},
			{"a ramp", func(i int) float64 {
				// conversions stop the products being fused into the sum
				return float64(float64(i%97)*0.37) + float64(0.001*float64(i%13))
			}, 100000},
			{"large values mixed with reciprocals", func(i int) float64 {
				if i%3 == 0 {
					return 1e8
				}
				return 1.0 / float64(i+1)
			}, 30000},
			{"squares of an alternating stream around 1e7", func(i int) float64 {
				d := -1.0
				if i%2 == 1 {
					d = 1
				}
				v := 1e7 + d
				return float64(v * v)
			}, 200000},
		} {
			for _, n := range []int{10, 100, 1000, 10000, 30000, 100000, 200000} {
				if n > test.max {
					continue
				}
				compensated, plain := sumErrors(test.seq, n)
				So(compensated.Cmp(plain), ShouldBeLessThanOrEqualTo, 0)
			}
		}
	})
}
