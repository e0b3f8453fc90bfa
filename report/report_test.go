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

import (
	"bytes"
	"strings"
	"testing"

	"github.com/VertebrateResequencing/covstab/covariance"
	"github.com/VertebrateResequencing/covstab/harness"
	"github.com/fatih/color"
	. "github.com/smartystreets/goconvey/convey"
)

func TestReport(t *testing.T) {
	Convey("Percent formats errors as percentages", t, func() {
		So(Percent(0.25, 10), ShouldEqual, "25")
		So(Percent(0.001234567, 3), ShouldEqual, "0.123")
		So(Percent(0, 10), ShouldEqual, "0")
		So(Percent(0.5, 0), ShouldEqual, Percent(0.5, DefaultPrecision))
	})

	Convey("Given some measured results", t, func() {
		h := harness.New(nil)
		cadenced, err := h.Measure(harness.Run{Mean: 1e5, Perturbation: 1, Length: 1000, Cadence: 100})
		So(err, ShouldBeNil)
		checkpointed, err := h.Measure(harness.Run{
			Mean:             1e3,
			Perturbation:     0.5,
			Length:           1000,
			Checkpoints:      []uint64{10, 100, 1000},
			FloorDenominator: true,
		})
		So(err, ShouldBeNil)

		Convey("Title describes the mean", func() {
			So(Title(cadenced), ShouldEqual, "mean: 100,000")
			So(Title(checkpointed), ShouldEqual, "mean: 1,000")
		})

		Convey("Table renders a row per point and the summaries", func() {
			var buf bytes.Buffer
			err := Table(&buf, cadenced, Options{Precision: 10})
			So(err, ShouldBeNil)
			out := buf.String()
			So(out, ShouldStartWith, "mean: 100,000\n")
			So(out, ShouldNotContainSubstring, "\x1b[")
			for _, name := range []string{covariance.NameNaive, covariance.NameCompensated, covariance.NameOnlineMean} {
				So(out, ShouldContainSubstring, name)
			}
			So(out, ShouldContainSubstring, labelCount)
			So(out, ShouldContainSubstring, " 900 ")
			So(out, ShouldContainSubstring, " 500 ")
			for _, label := range []string{labelMaxError, labelMeanError, labelStdDev, labelRecent} {
				So(strings.Count(out, label), ShouldEqual, 1)
			}
			So(strings.Index(out, " 900 "), ShouldBeLessThan, strings.Index(out, labelMaxError))

			// 1 line for the title, 3 for the header, 9 points, 4
			// summaries and the bottom border
			So(strings.Count(out, "\n"), ShouldEqual, 1+3+9+4+1)
		})

		Convey("Table can colour the title", func() {
			orig := color.NoColor
			color.NoColor = false
			defer func() {
				color.NoColor = orig
			}()

			var buf bytes.Buffer
			err := Table(&buf, cadenced, DefaultOptions())
			So(err, ShouldBeNil)
			So(buf.String(), ShouldStartWith, "\x1b[")
			So(buf.String(), ShouldContainSubstring, "mean: 100,000")
		})

		Convey("Tables renders them all in order", func() {
			var buf bytes.Buffer
			err := Tables(&buf, []*harness.Result{cadenced, checkpointed}, Options{})
			So(err, ShouldBeNil)
			out := buf.String()
			first := strings.Index(out, "mean: 100,000")
			second := strings.Index(out, "\n\nmean: 1,000\n")
			So(first, ShouldEqual, 0)
			So(second, ShouldBeGreaterThan, first)
		})

		Convey("JSON writes documents that can be read back", func() {
			var buf bytes.Buffer
			err := JSON(&buf, []*harness.Result{cadenced, checkpointed})
			So(err, ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, `"max_errors"`)
			So(buf.String(), ShouldContainSubstring, `"floor_denominator"`)

			docs, err := DecodeJSON(&buf)
			So(err, ShouldBeNil)
			So(len(docs), ShouldEqual, 2)

			So(docs[0].Mean, ShouldEqual, 1e5)
			So(docs[0].Perturbation, ShouldEqual, 1)
			So(docs[0].Length, ShouldEqual, 1000)
			So(docs[0].Cadence, ShouldEqual, 100)
			So(docs[0].Checkpoints, ShouldBeEmpty)
			So(docs[0].Truth, ShouldEqual, 1)
			So(docs[0].Estimators, ShouldResemble, cadenced.Estimators)
			So(len(docs[0].Points), ShouldEqual, 9)
			So(docs[0].Points[8].Count, ShouldEqual, 900)
			So(docs[0].Points[8].Covariances, ShouldResemble, cadenced.Points[8].Covariances)
			So(docs[0].MaxErrors, ShouldResemble, cadenced.MaxErrors)
			So(len(docs[0].Summaries), ShouldEqual, 3)
			So(docs[0].Summaries[0].Samples, ShouldEqual, 9)
			So(docs[0].Fingerprint, ShouldEqual, cadenced.Fingerprint())

			So(docs[1].Mean, ShouldEqual, 1e3)
			So(docs[1].Cadence, ShouldEqual, 0)
			So(docs[1].Checkpoints, ShouldResemble, []uint64{10, 100, 1000})
			So(docs[1].FloorDenominator, ShouldBeTrue)
			So(docs[1].Truth, ShouldEqual, 0.25)
			So(len(docs[1].Points), ShouldEqual, 3)
			So(docs[1].Fingerprint, ShouldEqual, checkpointed.Fingerprint())
			So(docs[1].Fingerprint, ShouldNotEqual, docs[0].Fingerprint)
		})
	})
}
