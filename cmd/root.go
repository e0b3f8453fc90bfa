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

// this is the cobra file that enables subcommands and handles command-line args

import (
	"fmt"
	"os"
	"strings"

	"github.com/VertebrateResequencing/covstab/internal"
	"github.com/inconshreveable/log15"
	"github.com/sb10/l15h"
	"github.com/spf13/cobra"
)

// configSourceFlag is the config source recorded for values given on the
// command line.
const configSourceFlag = "flag"

// appLogger is used for logging events in our commands
var appLogger = log15.New()

// these variables are accessible by all subcommands.
var profile string
var config internal.Config

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "covstab",
	Short: "covstab measures the numerical stability of covariance estimators.",
	Long: `covstab measures the numerical stability of covariance estimators.

It feeds a long synthetic stream of (x, y) pairs, whose exact covariance is
known, to a naive sum-of-products estimator, the same with Kahan compensated
sums, and Welford's online-mean estimator. Every so often it compares what each
reports to the truth and shows you the relative errors.

See how the errors grow along 10 million pairs with large means:
$ covstab run

Or compare small through large means at fixed stream lengths:
$ covstab run --profile checkpoint

Settings come from config files and environment variables; see what is being
used with:
$ covstab conf`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen once to
// the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		die(err.Error())
	}
}

func init() {
	// set up logging to stderr
	appLogger.SetHandler(log15.LvlFilterHandler(log15.LvlInfo, log15.StderrHandler))

	// global flags
	RootCmd.PersistentFlags().StringVar(&profile, "profile", internal.DefaultProfile(), "use "+strings.Join(internal.Profiles(), " or ")+" config")

	cobra.OnInitialize(initConfig)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config = internal.ConfigLoad(profile, appLogger)
}

// info is a convenience to log a message at the Info level.
func info(msg string, a ...interface{}) {
	appLogger.Info(fmt.Sprintf(msg, a...))
}

// warn is a convenience to log a message at the Warn level.
func warn(msg string, a ...interface{}) {
	appLogger.Warn(fmt.Sprintf(msg, a...))
}

// die is a convenience to log a message at the Error level and exit non zero.
func die(msg string, a ...interface{}) {
	appLogger.Error(fmt.Sprintf(msg, a...))
	os.Exit(1)
}

// setupLogging is a function to provide a new logger who's logging depends on
// debug.
func setupLogging(debug bool) log15.Logger {
	myLogger := log15.New()
	logLevel := log15.LvlWarn
	if debug {
		logLevel = log15.LvlDebug
	}
	myLogger.SetHandler(log15.LvlFilterHandler(logLevel, l15h.CallerInfoHandler(log15.StderrHandler)))
	return myLogger
}
