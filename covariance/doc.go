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
Package covariance provides incremental estimators of the covariance of a
stream of (x, y) observation pairs.

There are exactly three kinds of Estimator, which differ only in their
numerical strategy:

Naive keeps plain float64 running sums of x, y and x*y and computes
(sumXY - sumX*sumY/n) / n on demand. With large values the subtraction
suffers catastrophic cancellation, and the sums themselves accumulate rounding
error proportional to their magnitude.

Compensated has the same algebraic structure, but each running sum is a
kahan.Accumulator.

OnlineMean maintains running means of x and y and accumulates the products of
the mean-centred deviations, keeping the operands near zero. The means are
updated in a fixed interleaving: mean x first, then the cross-product using the
new mean x but the old mean y, then mean y.

	import "github.com/VertebrateResequencing/covstab/covariance"

	estimators := covariance.NewAll()
	for _, e := range estimators {
	    e.Ingest(100001, 100001)
	    e.Ingest(99999, 99999)
	}
	for _, e := range estimators {
	    fmt.Printf("%s: %g\n", e.Name(), e.Covariance())
	}

All Estimators divide by the count as it is when Covariance() is called. You
must Ingest() at least one pair before calling Covariance(); with a count of
zero the result is NaN.

Estimators are not safe for concurrent use.
*/
package covariance
