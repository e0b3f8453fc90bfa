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

/*
Package kahan provides a compensated running sum of float64 values.

An Accumulator tracks the rounding error lost by each addition and feeds it
back into the next one, so that the accumulated error stays at about one unit
in the last place regardless of how many values are added. Plain sequential
addition instead accumulates error proportional to the magnitude of the sum.

	import "github.com/VertebrateResequencing/covstab/kahan"

	acc := kahan.New(0)
	for i := 0; i < 10; i++ {
	    acc.Add(0.1)
	}
	acc.Value() // 1, where a plain float64 sum gives 0.9999999999999999

Note that AddAccumulator() folds in the other Accumulator's Value() as a plain
scalar; the other Accumulator's pending compensation is not merged, so
chaining Accumulators loses some of the compensation precision.
*/
package kahan
