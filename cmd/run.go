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


package cmd

import (
	"os"
	"strings"

	"github.com/VertebrateResequencing/covstab/harness"
	"github.com/VertebrateResequencing/covstab/internal"
	"github.com/VertebrateResequencing/covstab/report"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// options for this cmd
var runMeans string
var runPerturbation float64
var runLength int
var runSamples int
var runCheckpoints string
var runFloor bool
var runEstimators string
var runOutput string
var runPrecision int
var runNoColor bool
var runDebug bool

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Measure the estimators",
	Long: `Measure the relative error of covariance estimators along synthetic streams.

For each mean, a fresh set of estimators is fed a stream of pairs that
alternate between mean - perturbation and mean + perturbation, so the true
covariance is perturbation squared. At each sampling point every estimator is
asked for its covariance, and its relative error against the truth is
recorded.

Results are shown as a table per mean, with errors as percentages, followed by
the maximum, mean, standard deviation and a recent-weighted average of each
estimator's errors. Use -o json for machine readable output, where errors are
fractions.

Options default to those of the current --profile, as modified by your config
files and environment variables (see 'covstab conf'). Options given here take
precedence.`,
	Run: func(cmd *cobra.Command, args []string) {
		applyRunFlags(cmd)

		runs, err := config.Runs()
		if err != nil {
			die("bad config: %s", err)
		}
		kinds, err := config.EstimatorKinds()
		if err != nil {
			die("bad estimators: %s", err)
		}
		if odd := oddSamplingPoint(runs); odd > 0 {
			warn("sampling after %d pairs, an odd number, where the true covariance is only approximate", odd)
		}

		h := harness.New(setupLogging(runDebug), kinds...)
		results, err := h.MeasureAll(runs)
		if err != nil {
			die("measurement failed: %s", err)
		}

		means := make([]string, len(results))
		for i, result := range results {
			means[i] = report.Title(result)
		}
		info("measured %d estimators for %s", len(kinds), strings.Join(means, "; "))

		switch config.OutputFormat {
		case internal.OutputJSON:
			err = report.JSON(os.Stdout, results)
		default:
			if runNoColor {
				color.NoColor = true
			}
			err = report.Tables(os.Stdout, results, report.Options{
				Precision: config.Precision,
				Color:     !color.NoColor,
			})
		}
		if err != nil {
			die("could not output results: %s", err)
		}
	},
}

func init() {
	RootCmd.AddCommand(runCmd)

	// flags specific to this sub-command
	runCmd.Flags().StringVar(&runMeans, "means", "", "comma separated means of the streams (default from config)")
	runCmd.Flags().Float64Var(&runPerturbation, "perturbation", 0, "distance of each pair from the mean (default from config)")
	runCmd.Flags().IntVar(&runLength, "length", 0, "number of pairs in each stream (default from config)")
	runCmd.Flags().IntVar(&runSamples, "samples", 0, "number of evenly spaced samples (default from config)")
	runCmd.Flags().StringVar(&runCheckpoints, "checkpoints", "", "comma separated stream lengths to sample at instead (default from config)")
	runCmd.Flags().BoolVar(&runFloor, "floor", false, "divide errors by max(1, |truth|) (default from config)")
	runCmd.Flags().StringVar(&runEstimators, "estimators", "", "comma separated estimators out of naive, kahan and welford (default from config)")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "output format, table or json (default from config)")
	runCmd.Flags().IntVar(&runPrecision, "precision", 0, "significant digits of errors in tables (default from config)")
	runCmd.Flags().BoolVar(&runNoColor, "no-color", false, "do not colour table titles")
	runCmd.Flags().BoolVar(&runDebug, "debug", false, "log every sample to STDERR")
}

// applyRunFlags overrides the config with the options that were explicitly
// given on the command line.
func applyRunFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	config.Override(configSourceFlag, func(c *internal.Config) {
		if flags.Changed("means") {
			c.Means = runMeans
		}
		if flags.Changed("perturbation") {
			c.Perturbation = runPerturbation
		}
		if flags.Changed("length") {
			c.Length = runLength
		}
		if flags.Changed("samples") {
			c.Samples = runSamples
		}
		if flags.Changed("checkpoints") {
			c.Checkpoints = runCheckpoints
		}
		if flags.Changed("floor") {
			c.FloorDenominator = runFloor
		}
		if flags.Changed("estimators") {
			c.Estimators = runEstimators
		}
		if flags.Changed("output") {
			c.OutputFormat = runOutput
		}
		if flags.Changed("precision") {
			c.Precision = runPrecision
		}
	})
}

// oddSamplingPoint returns the first odd count at which one of the runs will be
// sampled, or 0 if they are all even.
func oddSamplingPoint(runs []harness.Run) uint64 {
	for _, run := range runs {
		if len(run.Checkpoints) == 0 {
			if run.Cadence%2 != 0 && run.Cadence < run.Length {
				return run.Cadence
			}
			continue
		}
		for _, c := range run.Checkpoints {
			if c%2 != 0 {
				return c
			}
		}
	}
	return 0
}
