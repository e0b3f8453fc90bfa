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


package report

// This file contains the JSON renderer.

import (
	"io"

	"github.com/VertebrateResequencing/covstab/harness"
	"github.com/ugorji/go/codec"
)

// Document is the JSON representation of a harness.Result. Errors are
// fractions, not percentages.
type Document struct {
	Mean             float64      `codec:"mean"`
	Perturbation     float64      `codec:"perturbation"`
	Length           uint64       `codec:"length"`
	Cadence          uint64       `codec:"cadence,omitempty"`
	Checkpoints      []uint64     `codec:"checkpoints,omitempty"`
	FloorDenominator bool         `codec:"floor_denominator"`
	Truth            float64      `codec:"truth"`
	Estimators       []string     `codec:"estimators"`
	Points           []PointDoc   `codec:"points"`
	MaxErrors        []float64    `codec:"max_errors"`
	Summaries        []SummaryDoc `codec:"summaries"`
	Fingerprint      string       `codec:"fingerprint"`
}

// PointDoc is the JSON representation of a harness.Point.
type PointDoc struct {
	Count       uint64    `codec:"count"`
	Covariances []float64 `codec:"covariances"`
	Errors      []float64 `codec:"errors"`
}

// SummaryDoc is the JSON representation of a harness.Summary.
type SummaryDoc struct {
	Samples uint    `codec:"samples"`
	Mean    float64 `codec:"mean"`
	StdDev  float64 `codec:"stddev"`
	Recent  float64 `codec:"recent"`
}

// NewDocument converts a Result in to a Document.
func NewDocument(result *harness.Result) Document {
	doc := Document{
		Mean:             result.Run.Mean,
		Perturbation:     result.Run.Perturbation,
		Length:           result.Run.Length,
		Cadence:          result.Run.Cadence,
		Checkpoints:      result.Run.Checkpoints,
		FloorDenominator: result.Run.FloorDenominator,
		Truth:            result.Truth,
		Estimators:       result.Estimators,
		Points:           make([]PointDoc, len(result.Points)),
		MaxErrors:        result.MaxErrors,
		Summaries:        make([]SummaryDoc, len(result.Summaries)),
		Fingerprint:      result.Fingerprint(),
	}
	for i, p := range result.Points {
		doc.Points[i] = PointDoc{Count: p.Count, Covariances: p.Covariances, Errors: p.Errors}
	}
	for i, s := range result.Summaries {
		doc.Summaries[i] = SummaryDoc(s)
	}
	return doc
}

// jsonHandle returns the handle we encode with.
func jsonHandle() *codec.JsonHandle {
	jh := new(codec.JsonHandle)
	jh.Indent = 2
	jh.TermWhitespace = true
	return jh
}

// JSON writes a JSON array of Documents, one per Result, to w.
func JSON(w io.Writer, results []*harness.Result) error {
	docs := make([]Document, len(results))
	for i, result := range results {
		docs[i] = NewDocument(result)
	}
	enc := codec.NewEncoder(w, jsonHandle())
	return enc.Encode(docs)
}

// DecodeJSON reads back what JSON wrote.
func DecodeJSON(r io.Reader) ([]Document, error) {
	var docs []Document
	dec := codec.NewDecoder(r, jsonHandle())
	err := dec.Decode(&docs)
	return docs, err
}
