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
Package main is a stub for covstab's command line interface, with the actual
implementation in the cmd package.

covstab measures how numerically stable different ways of incrementally
estimating covariance are. It feeds long synthetic streams of pairs, whose
exact covariance is known, to each estimator and tracks how far their answers
drift from the truth as the stream grows.

Basics

See how the errors grow along 10 million pairs with means of 1e5 and 1e7:

    covstab run

Compare small through large means at fixed stream lengths, with errors shown
relative to max(1, truth):

    covstab run --profile checkpoint

Package Overview

The kahan package implements a compensated floating point accumulator.

The covariance package implements the estimators behind a common interface: a
naive sum of products, the same using kahan accumulators, and Welford's
online-mean algorithm.

The harness package generates the synthetic streams, drives them through the
estimators and scores their answers at sampling points.

The report package renders harness results as tables or JSON.

The internal package contains general utility functions, and most notably
config.go holds the code for how the command line interface deals with config
options.
*/
package main

import (
	"github.com/VertebrateResequencing/covstab/cmd"
)

func main() {
	cmd.Execute()
}
