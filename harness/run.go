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

// This file contains the Run definition and its validation.

import (
	"errors"
	"fmt"
	"math"
	"sort"

	multierror "github.com/hashicorp/go-multierror"
)

// Run describes one measurement: the synthetic stream to generate and when to
// sample it.
type Run struct {
	// Mean is the base value of both x and y.
	Mean float64

	// Perturbation is the magnitude of the deviation from Mean; the true
	// covariance is its square.
	Perturbation float64

	// Length is the number of pairs in the stream.
	Length uint64

	// Cadence, if Checkpoints is empty, makes us sample every Cadence pairs
	// before the end of the stream. The final pair itself is not sampled.
	Cadence uint64

	// Checkpoints, if not empty, are the exact counts at which to sample.
	Checkpoints []uint64

	// FloorDenominator selects FlooredRelative instead of Relative as the
	// error metric.
	FloorDenominator bool
}

// CadenceFor returns the Cadence that divides a stream of the given length in
// to the desired number of steps. Since the end of the stream is not sampled,
// that gives you one sample fewer than steps when length is a multiple of it.
// It is never less than 1.
func CadenceFor(length uint64, samples int) uint64 {
	if samples < 1 {
		samples = 1
	}
	cadence := length / uint64(samples)
	if cadence < 1 {
		cadence = 1
	}
	return cadence
}

// Validate checks that the Run makes sense, returning an Error wrapping every
// problem found.
func (r Run) Validate() error {
	var merr *multierror.Error

	if math.IsNaN(r.Mean) || math.IsInf(r.Mean, 0) {
		merr = multierror.Append(merr, errors.New(ErrBadMean))
	}

	if math.IsNaN(r.Perturbation) || math.IsInf(r.Perturbation, 0) {
		merr = multierror.Append(merr, errors.New(ErrBadPerturbation))
	} else if r.Perturbation == 0 && !r.FloorDenominator {
		merr = multierror.Append(merr, errors.New(ErrZeroTruth))
	}

	if r.Length == 0 {
		merr = multierror.Append(merr, errors.New(ErrNoLength))
	}

	if len(r.Checkpoints) == 0 {
		switch {
		case r.Cadence == 0:
			merr = multierror.Append(merr, errors.New(ErrNoSampling))
		case r.Length > 0 && r.Cadence >= r.Length:
			merr = multierror.Append(merr, fmt.Errorf("%s (%d >= %d)", ErrCadenceTooLong, r.Cadence, r.Length))
		}
	}

	for _, c := range r.Checkpoints {
		if c == 0 || c > r.Length {
			merr = multierror.Append(merr, fmt.Errorf("%s (%d)", ErrCheckpointBounds, c))
		}
	}

	if err := merr.ErrorOrNil(); err != nil {
		return Error{Mean: r.Mean, Op: "Validate", Err: ErrInvalidRun, cause: err}
	}
	return nil
}

// schedule decides which counts of a Run get sampled.
type schedule struct {
	length      uint64
	cadence     uint64
	checkpoints []uint64
	next        int
}

// newSchedule creates a schedule for a valid Run. Checkpoints are sorted and
// de-duplicated.
func newSchedule(r Run) *schedule {
	s := &schedule{length: r.Length, cadence: r.Cadence}
	if len(r.Checkpoints) == 0 {
		return s
	}

	cps := make([]uint64, len(r.Checkpoints))
	copy(cps, r.Checkpoints)
	sort.Slice(cps, func(i, j int) bool { return cps[i] < cps[j] })
	for i, c := range cps {
		if i > 0 && c == cps[i-1] {
			continue
		}
		s.checkpoints = append(s.checkpoints, c)
	}
	return s
}

// due tells you if we should sample after n pairs have been ingested. It must
// be called with every n in increasing order.
func (s *schedule) due(n uint64) bool {
	if s.checkpoints != nil {
		if s.next < len(s.checkpoints) && s.checkpoints[s.next] == n {
			s.next++
			return true
		}
		return false
	}
	return n < s.length && n%s.cadence == 0
}
