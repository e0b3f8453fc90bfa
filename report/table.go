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

// This file contains the table renderer.

import (
	"fmt"
	"io"
	"strconv"

	"github.com/VertebrateResequencing/covstab/harness"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// DefaultPrecision is the number of significant digits errors are shown with
// by default.
const DefaultPrecision = 10

// labels for the summary rows beneath the sampled errors
const (
	labelCount     = "Count"
	labelMaxError  = "MaxError"
	labelMeanError = "MeanError"
	labelStdDev    = "StdDev"
	labelRecent    = "Recent"
)

var titleColor = color.New(color.FgCyan, color.Bold)

// Options control how tables are rendered.
type Options struct {
	// Precision is the number of significant digits to show errors with. Less
	// than 1 means DefaultPrecision.
	Precision int

	// Color turns on coloured titles.
	Color bool
}

// DefaultOptions returns Options with DefaultPrecision and colour on.
func DefaultOptions() Options {
	return Options{Precision: DefaultPrecision, Color: true}
}

// Title returns the title of the table for the given Result.
func Title(result *harness.Result) string {
	return "mean: " + humanize.Commaf(result.Run.Mean)
}

// Table writes a titled table of the given Result to w: a row for every
// sampled point showing each estimator's relative error as a percentage,
// followed by rows summarising those errors.
func Table(w io.Writer, result *harness.Result, opts Options) error {
	var err error
	if opts.Color {
		_, err = titleColor.Fprintf(w, "%s\n", Title(result))
	} else {
		_, err = fmt.Fprintf(w, "%s\n", Title(result))
	}
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeader(append([]string{labelCount}, result.Estimators...))

	for _, p := range result.Points {
		table.Append(row(humanize.Comma(int64(p.Count)), p.Errors, opts.Precision))
	}

	n := len(result.Estimators)
	means, stddevs, recents := make([]float64, n), make([]float64, n), make([]float64, n)
	for i, s := range result.Summaries {
		means[i] = s.Mean
		stddevs[i] = s.StdDev
		recents[i] = s.Recent
	}
	table.Append(row(labelMaxError, result.MaxErrors, opts.Precision))
	table.Append(row(labelMeanError, means, opts.Precision))
	table.Append(row(labelStdDev, stddevs, opts.Precision))
	table.Append(row(labelRecent, recents, opts.Precision))

	table.Render()
	return nil
}

// Tables calls Table for each Result, with a blank line between them.
func Tables(w io.Writer, results []*harness.Result, opts Options) error {
	for i, result := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := Table(w, result, opts); err != nil {
			return err
		}
	}
	return nil
}

// row makes a table row out of a label and errors, showing the errors as
// percentages.
func row(label string, errors []float64, precision int) []string {
	cells := make([]string, 0, len(errors)+1)
	cells = append(cells, label)
	for _, e := range errors {
		cells = append(cells, Percent(e, precision))
	}
	return cells
}

// Percent formats a fractional error as a percentage with the given number of
// significant digits. Less than 1 digit means DefaultPrecision.
func Percent(err float64, precision int) string {
	if precision < 1 {
		precision = DefaultPrecision
	}
	return strconv.FormatFloat(err*100, 'g', precision, 64)
}
