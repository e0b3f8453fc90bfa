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

// Naive estimates covariance from plain float64 running sums.
type Naive struct {
	count uint64
	sumX  float64
	sumY  float64
	sumXY float64
}

// NewNaive creates a new zeroed Naive Estimator.
func NewNaive() *Naive {
	return &Naive{}
}

// Ingest adds x, y and x*y to their running sums.
func (e *Naive) Ingest(x, y float64) {
	e.count++
	e.sumX += x
	e.sumY += y
	// the conversion rounds the product, so it can't be fused into the sum
	e.sumXY += float64(x * y)
}

// Covariance returns (sumXY - sumX*sumY/n) / n.
func (e *Naive) Covariance() float64 {
	n := float64(e.count)
	return (e.sumXY - e.sumX*e.sumY/n) / n
}

// Name returns NameNaive.
func (e *Naive) Name() string {
	return NameNaive
}
