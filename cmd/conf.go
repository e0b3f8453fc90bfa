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
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultYML = `# The format of this file is YAML

# Put settings common to all profiles in ~/.covstab_config.yml, and settings
# for just one profile in eg. ~/.covstab_config.checkpoint.yml. Files in the
# directory pointed to by $COVSTAB_CONFIG_DIR are read first, then those in
# your home directory, then those in the current directory, with later files
# taking precedence. Any setting can also be given as an environment variable
# named COVSTAB_[setting in caps], eg. COVSTAB_SAMPLES=20, which files
# override.

# means: A comma separated list of the means of the synthetic streams. Each
# mean is measured separately. The trajectory profile defaults to
# "100000,10000000" and the checkpoint profile to "1,1000,1000000".
#means: "100000,10000000"

# perturbation: How far each pair is from the mean. Pairs alternate between
# mean - perturbation and mean + perturbation, so the true covariance is
# perturbation squared. Must be greater than 0.
perturbation: 1

# length: How many pairs to feed each estimator.
length: 10000000

# samples: When no checkpoints are set, how many equal steps to divide the
# stream in to. The errors are sampled at the end of every step except the last,
# so the default of 100 samples every 1% and gives 99 rows. Keep length/samples
# even, since the true covariance is only exact after an even number of pairs.
samples: 100

# checkpoints: A comma separated list of stream lengths at which to sample the
# errors, instead of sampling evenly. The checkpoint profile defaults to
# "1000,10000,100000,1000000,10000000". They must not exceed length.
#checkpoints: ""

# floordenominator: Divide errors by max(1, |truth|) instead of |truth|. The
# checkpoint profile defaults to true.
#floordenominator: false

# estimators: A comma separated list of which estimators to measure, out of
# naive, kahan and welford.
estimators: "naive,kahan,welford"

# outputformat: "table" or "json".
outputformat: "table"

# precision: How many significant digits to show errors with in tables.
precision: 10
`

var confDefault bool

// confCmd represents the conf command
var confCmd = &cobra.Command{
	Use:   "conf",
	Short: "Show current covstab config",
	Long: `Show the current covstab config and where each value came from.

Config values can come from the defaults, the profile (--profile), environment
variables or config files. This command shows you the currently active values
and their sources.

Use the --default option to see an example config file, with documentation on
each option.`,
	Run: func(cmd *cobra.Command, args []string) {
		if confDefault {
			fmt.Print(defaultYML)
			os.Exit(0)
		}

		fmt.Printf("%s", config)
	},
}

func init() {
	RootCmd.AddCommand(confCmd)

	// flags specific to this sub-command
	confCmd.Flags().BoolVarP(&confDefault, "default", "d", false, "print default config yml file to STDOUT")
}
