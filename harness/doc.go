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
Package harness measures how the relative error of each covariance Estimator
evolves over a long synthetic stream.

A Harness is created for a set of estimator kinds, and each call to Measure()
takes a Run describing the stream (base mean, perturbation and length) and when
to sample it (every Cadence pairs short of the end of the stream, or at
explicit Checkpoints). The whole stream is ingested by every estimator in
lockstep; at each sampling point the current covariance of every estimator is
scored against the stream's known true covariance with the Run's error Metric.

	import (
	    "github.com/VertebrateResequencing/covstab/harness"
	    "github.com/inconshreveable/log15"
	)

	logger := log15.New()
	h := harness.New(logger)
	result, err := h.Measure(harness.Run{
	    Mean:         1e5,
	    Perturbation: 1,
	    Length:       10000000,
	    Cadence:      100000,
	})
	for i, name := range result.Estimators {
	    fmt.Printf("%s max error: %g\n", name, result.MaxErrors[i])
	}

The stream is generated by Alternating, which keeps x and y equal and flips
the sign of their deviation from the mean on every pair, so that the true
(population) covariance is known in closed form.

Results can be flattened in to (count, estimator, error) Samples for
presentation; see the report package.
*/
package harness
