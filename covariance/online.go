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

// OnlineMean estimates covariance from running means and the sum of products
// of deviations from those means.
type OnlineMean struct {
	count       uint64
	meanX       float64
	meanY       float64
	sumProducts float64
}

// NewOnlineMean creates a new zeroed OnlineMean Estimator.
func NewOnlineMean() *OnlineMean {
	return &OnlineMean{}
}

// Ingest updates meanX, then adds (x - meanX) * (y - meanY) to the sum of
// products, then updates meanY. The product therefore uses the new meanX but
// the previous meanY; changing this order changes the results.
func (e *OnlineMean) Ingest(x, y float64) {
	e.count++
	n := float64(e.count)
	e.meanX += (x - e.meanX) / n
	e.sumProducts += float64((x - e.meanX) * (y - e.meanY))
	e.meanY += (y - e.meanY) / n
}

// Covariance returns sumProducts / n.
func (e *OnlineMean) Covariance() float64 {
	return e.sumProducts / float64(e.count)
}

// Name returns NameOnlineMean.
func (e *OnlineMean) Name() string {
	return NameOnlineMean
}
