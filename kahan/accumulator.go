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

// This file contains the implementation of the Accumulator.

// Accumulator is a Kahan-compensated running sum. The zero value is an empty
// sum ready to use.
type Accumulator struct {
	total        float64
	compensation float64
}

// New creates a new Accumulator seeded with the given value.
func New(seed float64) *Accumulator {
	return &Accumulator{total: seed}
}

// Add folds value into the running total, keeping track of the rounding error
// of the fold in the compensation term.
func (a *Accumulator) Add(value float64) {
	y := value - a.compensation
	t := a.total + y
	a.compensation = (t - a.total) - y
	a.total = t
}

// AddAccumulator adds the current Value() of other as if it were a scalar.
// other's compensation term is not merged into ours.
func (a *Accumulator) AddAccumulator(other *Accumulator) {
	a.Add(other.Value())
}

// Value returns total + compensation, our best estimate of the exact sum of
// everything added so far.
func (a *Accumulator) Value() float64 {
	return a.total + a.compensation
}

// Total returns the running total without the compensation term applied.
func (a *Accumulator) Total() float64 {
	return a.total
}

// Compensation returns the pending compensation term.
func (a *Accumulator) Compensation() float64 {
	return a.compensation
}
