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

import "math"

// Metric scores an estimate against the target value it should have had.
type Metric func(target, value float64) float64

// Relative returns |value - target| / |target|. target must not be zero.
func Relative(target, value float64) float64 {
	return math.Abs(value-target) / math.Abs(target)
}

// FlooredRelative returns |value - target| / max(1, |target|), which is the
// absolute error for targets smaller than 1, including zero.
func FlooredRelative(target, value float64) float64 {
	return math.Abs(value-target) / math.Max(1, math.Abs(target))
}

// MetricFor returns FlooredRelative if floor is true, otherwise Relative.
func MetricFor(floor bool) Metric {
	if floor {
		return FlooredRelative
	}
	return Relative
}
