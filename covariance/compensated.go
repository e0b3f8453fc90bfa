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

package covariance

import (
	"github.com/VertebrateResequencing/covstab/kahan"
)

// Compensated is like Naive, but keeps its running sums in Kahan-compensated
// Accumulators.
type Compensated struct {
	count uint64
	sumX  kahan.Accumulator
	sumY  kahan.Accumulator
	sumXY kahan.Accumulator
}

// NewCompensated creates a new zeroed Compensated Estimator.
func NewCompensated() *Compensated {
	return &Compensated{}
}

// Ingest adds x, y and x*y to their compensated running sums.
func (e *Compensated) Ingest(x, y float64) {
	e.count++
	e.sumX.Add(x)
	e.sumY.Add(y)
	e.sumXY.Add(float64(x * y))
}

// Covariance returns (sumXY - sumX*sumY/n) / n, using the Value() of each sum.
func (e *Compensated) Covariance() float64 {
	n := float64(e.count)
	return (e.sumXY.Value() - e.sumX.Value()*e.sumY.Value()/n) / n
}

// Name returns NameCompensated.
func (e *Compensated) Name() string {
	return NameCompensated
}
