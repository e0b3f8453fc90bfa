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

// This file contains the implementation of the main struct in the harness
// package, the Harness.

import (
	"strings"
	"time"

	"github.com/VertebrateResequencing/covstab/covariance"
	"github.com/gofrs/uuid"
	"github.com/inconshreveable/log15"
)

// Harness drives synthetic streams through a set of covariance estimators.
type Harness struct {
	kinds  []covariance.Kind
	logger log15.Logger
}

// New creates a new Harness that will measure estimators of the given kinds,
// in that order; with no kinds, all of them. The logger may be nil, in which
// case nothing is logged.
func New(logger log15.Logger, kinds ...covariance.Kind) *Harness {
	if logger == nil {
		logger = log15.New()
		logger.SetHandler(log15.DiscardHandler())
	}
	if len(kinds) == 0 {
		kinds = covariance.Kinds()
	}
	return &Harness{
		kinds:  kinds,
		logger: logger.New("pkg", "harness"),
	}
}

// Kinds returns the kinds of estimator we measure.
func (h *Harness) Kinds() []covariance.Kind {
	return h.kinds
}

// Measure validates the Run, then feeds every pair of its stream to fresh
// estimators, sampling them according to the Run's Cadence or Checkpoints.
func (h *Harness) Measure(run Run) (*Result, error) {
	if err := run.Validate(); err != nil {
		return nil, err
	}

	estimators := covariance.NewAll(h.kinds...)
	stream := NewAlternating(run.Mean, run.Perturbation)
	metric := MetricFor(run.FloorDenominator)
	sched := newSchedule(run)
	result := newResult(run, stream.Covariance(), estimators)

	logger := h.logger.New("run", uuid.Must(uuid.NewV4()).String(), "mean", run.Mean)
	logger.Info("measurement started", "length", run.Length, "estimators", strings.Join(result.Estimators, ","))
	started := time.Now()

	for n := uint64(1); n <= run.Length; n++ {
		x, y := stream.Next()
		for _, e := range estimators {
			e.Ingest(x, y)
		}

		if !sched.due(n) {
			continue
		}
		p := result.sample(n, estimators, metric)
		logger.Debug("sampled", "count", n, "errors", p.Errors)
	}

	result.finish()
	logger.Info("measurement complete", "samples", len(result.Points), "took", time.Since(started), "fingerprint", result.Fingerprint())
	return result, nil
}

// MeasureAll calls Measure() on each Run in turn, stopping at the first error.
func (h *Harness) MeasureAll(runs []Run) ([]*Result, error) {
	results := make([]*Result, 0, len(runs))
	for _, run := range runs {
		result, err := h.Measure(run)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}
