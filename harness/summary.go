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

// This file summarises the errors sampled for an estimator over a run.

import (
	"github.com/VividCortex/ewma"
	"github.com/carbocation/runningvariance"
)

// Summary describes the distribution of the errors sampled for one estimator.
type Summary struct {
	// Samples is the number of errors summarised.
	Samples uint

	// Mean and StdDev are the mean and sample standard deviation of the
	// errors.
	Mean   float64
	StdDev float64

	// Recent is an exponentially weighted moving average of the errors,
	// dominated by the later samples.
	Recent float64
}

// summariser accumulates a Summary.
type summariser struct {
	stat   *runningvariance.RunningStat
	recent ewma.MovingAverage
}

func newSummariser() *summariser {
	return &summariser{
		stat:   runningvariance.NewRunningStat(),
		recent: ewma.NewMovingAverage(),
	}
}

// add adds an error to the summary.
func (s *summariser) add(err float64) {
	s.stat.Push(err)
	s.recent.Add(err)
}

// summary returns the Summary of the errors added so far.
func (s *summariser) summary() Summary {
	return Summary{
		Samples: s.stat.NumDataValues(),
		Mean:    s.stat.Mean(),
		StdDev:  s.stat.StandardDeviation(),
		Recent:  s.recent.Value(),
	}
}
