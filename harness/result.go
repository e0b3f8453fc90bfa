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

// This file contains the types describing the results of a measurement.

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/VertebrateResequencing/covstab/covariance"
	"github.com/dgryski/go-farm"
)

// Point holds what every estimator reported at one sampling point. The slices
// are in the same order as Result.Estimators.
type Point struct {
	Count       uint64
	Covariances []float64
	Errors      []float64
}

// Sample is a single (count, estimator, error) observation, along with the
// covariance that was scored.
type Sample struct {
	Count      uint64
	Estimator  string
	Covariance float64
	Error      float64
}

// Result holds everything measured during one Run.
type Result struct {
	Run        Run
	Truth      float64
	Estimators []string
	Points     []Point
	MaxErrors  []float64
	Summaries  []Summary

	summarisers []*summariser
}

// newResult creates an empty Result for the given estimators.
func newResult(run Run, truth float64, estimators []covariance.Estimator) *Result {
	r := &Result{
		Run:         run,
		Truth:       truth,
		Estimators:  make([]string, len(estimators)),
		MaxErrors:   make([]float64, len(estimators)),
		summarisers: make([]*summariser, len(estimators)),
	}
	for i, e := range estimators {
		r.Estimators[i] = e.Name()
		r.summarisers[i] = newSummariser()
	}
	return r
}

// sample queries every estimator, scores them with the metric and records a
// new Point.
func (r *Result) sample(count uint64, estimators []covariance.Estimator, metric Metric) Point {
	p := Point{
		Count:       count,
		Covariances: make([]float64, len(estimators)),
		Errors:      make([]float64, len(estimators)),
	}
	for i, e := range estimators {
		cov := e.Covariance()
		err := metric(r.Truth, cov)
		p.Covariances[i] = cov
		p.Errors[i] = err
		if err > r.MaxErrors[i] {
			r.MaxErrors[i] = err
		}
		r.summarisers[i].add(err)
	}
	r.Points = append(r.Points, p)
	return p
}

// finish fills in Summaries.
func (r *Result) finish() {
	r.Summaries = make([]Summary, len(r.summarisers))
	for i, s := range r.summarisers {
		r.Summaries[i] = s.summary()
	}
}

// Samples flattens our Points in to one Sample per estimator per Point, in
// count order and then estimator order.
func (r *Result) Samples() []Sample {
	samples := make([]Sample, 0, len(r.Points)*len(r.Estimators))
	for _, p := range r.Points {
		for i, name := range r.Estimators {
			samples = append(samples, Sample{
				Count:      p.Count,
				Estimator:  name,
				Covariance: p.Covariances[i],
				Error:      p.Errors[i],
			})
		}
	}
	return samples
}

// Fingerprint returns a hash of the Run parameters and the exact bits of every
// sampled covariance. Identical runs on identical floating point hardware give
// identical fingerprints.
func (r *Result) Fingerprint() string {
	b := make([]byte, 0, 24+len(r.Points)*8*(1+len(r.Estimators)))
	b = binary.LittleEndian.AppendUint64(b, math.Float64bits(r.Run.Mean))
	b = binary.LittleEndian.AppendUint64(b, math.Float64bits(r.Run.Perturbation))
	b = binary.LittleEndian.AppendUint64(b, r.Run.Length)
	for _, p := range r.Points {
		b = binary.LittleEndian.AppendUint64(b, p.Count)
		for _, c := range p.Covariances {
			b = binary.LittleEndian.AppendUint64(b, math.Float64bits(c))
		}
	}
	l, h := farm.Hash128(b)
	return fmt.Sprintf("%016x%016x", l, h)
}
