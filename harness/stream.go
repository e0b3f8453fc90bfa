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

package harness

// Stream is a source of synthetic observation pairs with a known true
// covariance.
type Stream interface {
	// Next returns the next observation pair.
	Next() (x, y float64)

	// Covariance returns the true covariance of the stream, derived from its
	// parameters rather than from the pairs.
	Covariance() float64
}

// Alternating is a Stream where x and y both start at a fixed mean and deviate
// from it by a fixed perturbation whose sign flips on every pair. Over any even
// number of pairs the population covariance is exactly perturbation squared.
type Alternating struct {
	mean float64
	xDev float64
	yDev float64
	d    float64
}

// NewAlternating creates an Alternating Stream. The first pair it returns is
// (mean - perturbation, mean - perturbation).
func NewAlternating(mean, perturbation float64) *Alternating {
	return &Alternating{
		mean: mean,
		xDev: perturbation,
		yDev: perturbation,
		d:    perturbation,
	}
}

// Next flips the sign of the deviations and returns the next pair.
func (a *Alternating) Next() (x, y float64) {
	a.xDev = -a.xDev
	a.yDev = -a.yDev
	return a.mean + a.xDev, a.mean + a.yDev
}

// Covariance returns perturbation squared.
func (a *Alternating) Covariance() float64 {
	return a.d * a.d
}
