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

// This file contains error handling code.

import (
	"fmt"
)

// harness has some typical errors
const (
	ErrInvalidRun       = "invalid run"
	ErrBadMean          = "mean must be finite"
	ErrBadPerturbation  = "perturbation must be finite"
	ErrZeroTruth        = "a zero perturbation gives a zero true covariance, which needs the floored error denominator"
	ErrNoLength         = "stream length must be positive"
	ErrNoSampling       = "one of cadence or checkpoints must be set"
	ErrCadenceTooLong   = "cadence must be shorter than the stream"
	ErrCheckpointBounds = "checkpoint outside the stream"
)

// Error records an error and the operation and run that caused it.
type Error struct {
	Mean  float64 // the Run's Mean
	Op    string  // name of the method
	Err   string  // one of our Err constants
	cause error
}

func (e Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("harness(mean %g) %s(): %s: %s", e.Mean, e.Op, e.Err, e.cause)
	}
	return fmt.Sprintf("harness(mean %g) %s(): %s", e.Mean, e.Op, e.Err)
}

// Unwrap returns the underlying cause of the error, if any. For ErrInvalidRun
// this is a *multierror.Error listing every problem found.
func (e Error) Unwrap() error {
	return e.cause
}
