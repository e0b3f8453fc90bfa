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

package internal

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/VertebrateResequencing/covstab/covariance"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/inconshreveable/log15"
	"github.com/sb10/l15h"
	. "github.com/smartystreets/goconvey/convey"
)

var configEnvVars = []string{
	"COVSTAB_PROFILE",
	"COVSTAB_CONFIG_DIR",
	"COVSTAB_SAMPLES",
	"COVSTAB_MEANS",
	"COVSTAB_LENGTH",
	"COVSTAB_PERTURBATION",
	"COVSTAB_FLOORDENOMINATOR",
	"COVSTAB_PRECISION",
	"SAMPLES",
	"LENGTH",
	"MEANS",
	"PERTURBATION",
}

// isolateConfig points HOME and COVSTAB_CONFIG_DIR at empty temp dirs and
// clears our env vars, returning the two dirs and a function to restore
// things.
func isolateConfig(t *testing.T) (string, string, func()) {
	origHome := os.Getenv("HOME")
	origEnv := make(map[string]string)
	for _, name := range configEnvVars {
		if val, set := os.LookupEnv(name); set {
			origEnv[name] = val
		}
		os.Unsetenv(name)
	}

	home := t.TempDir()
	configDir := t.TempDir()
	os.Setenv("HOME", home)
	os.Setenv("COVSTAB_CONFIG_DIR", configDir)

	return home, configDir, func() {
		os.Setenv("HOME", origHome)
		for _, name := range configEnvVars {
			os.Unsetenv(name)
		}
		for name, val := range origEnv {
			os.Setenv(name, val)
		}
	}
}

func writeConfigFile(dir, basename, content string) string {
	path := filepath.Join(dir, basename)
	err := os.WriteFile(path, []byte(content), 0600)
	So(err, ShouldBeNil)
	return path
}

func TestConfig(t *testing.T) {
	Convey("Given an isolated environment and a logger", t, func() {
		home, configDir, restore := isolateConfig(t)
		defer restore()

		store := l15h.NewStore()
		logger := log15.New()
		logger.SetHandler(l15h.StoreHandler(store, log15.LogfmtFormat()))

		Convey("The default config is the trajectory profile", func() {
			config, err := configLoad("", logger)
			So(err, ShouldBeNil)
			So(config.Profile, ShouldEqual, Trajectory)
			So(config.IsCheckpoint(), ShouldBeFalse)
			So(Profiles(), ShouldResemble, []string{Trajectory, Checkpoint})
			So(config.Means, ShouldEqual, "100000,10000000")
			So(config.Perturbation, ShouldEqual, 1)
			So(config.Length, ShouldEqual, 10000000)
			So(config.Samples, ShouldEqual, 100)
			So(config.Checkpoints, ShouldBeEmpty)
			So(config.FloorDenominator, ShouldBeFalse)
			So(config.OutputFormat, ShouldEqual, OutputTable)
			So(config.Source("Samples"), ShouldEqual, ConfigSourceDefault)
			So(config.Source("Means"), ShouldEqual, ConfigSourceDefault)

			Convey("Its runs sample every 1% of the stream", func() {
				runs, err := config.Runs()
				So(err, ShouldBeNil)
				So(len(runs), ShouldEqual, 2)
				So(runs[0].Mean, ShouldEqual, 1e5)
				So(runs[1].Mean, ShouldEqual, 1e7)
				for _, run := range runs {
					So(run.Length, ShouldEqual, 10000000)
					So(run.Cadence, ShouldEqual, 100000)
					So(run.Checkpoints, ShouldBeEmpty)
					So(run.FloorDenominator, ShouldBeFalse)
					So(run.Validate(), ShouldBeNil)
				}
			})

			Convey("String() shows every value and its source", func() {
				str := config.String()
				So(str, ShouldContainSubstring, "SOURCE")
				So(str, ShouldContainSubstring, "Samples")
				So(str, ShouldContainSubstring, "100000,10000000")
				So(str, ShouldContainSubstring, ConfigSourceDefault)
				So(str, ShouldNotContainSubstring, sourcesProperty)
			})
		})

		Convey("The checkpoint profile changes the means, checkpoints and metric", func() {
			config, err := configLoad(Checkpoint, logger)
			So(err, ShouldBeNil)
			So(config.Profile, ShouldEqual, Checkpoint)
			So(config.IsCheckpoint(), ShouldBeTrue)
			So(config.Means, ShouldEqual, "1,1000,1000000")
			So(config.Source("Means"), ShouldEqual, ConfigSourceProfile)
			So(config.FloorDenominator, ShouldBeTrue)
			So(config.Source("Samples"), ShouldEqual, ConfigSourceDefault)

			runs, err := config.Runs()
			So(err, ShouldBeNil)
			So(len(runs), ShouldEqual, 3)
			So(runs[2].Mean, ShouldEqual, 1e6)
			So(runs[0].Checkpoints, ShouldResemble, []uint64{1000, 10000, 100000, 1000000, 10000000})
			So(runs[0].Cadence, ShouldEqual, 0)
			So(runs[0].FloorDenominator, ShouldBeTrue)
			So(runs[0].Validate(), ShouldBeNil)
		})

		Convey("The profile can come from the environment", func() {
			os.Setenv("COVSTAB_PROFILE", Checkpoint)
			So(DefaultProfile(), ShouldEqual, Checkpoint)
			config, err := configLoad("", logger)
			So(err, ShouldBeNil)
			So(config.Profile, ShouldEqual, Checkpoint)

			os.Setenv("COVSTAB_PROFILE", "foo")
			So(DefaultProfile(), ShouldEqual, Trajectory)
		})

		Convey("An unknown profile is warned about and the default used", func() {
			config, err := configLoad("foo", logger)
			So(err, ShouldBeNil)
			So(config.Profile, ShouldEqual, Trajectory)
			So(strings.Join(store.Logs(), ""), ShouldContainSubstring, "unknown profile")
		})

		Convey("Env vars override the profile", func() {
			os.Setenv("COVSTAB_SAMPLES", "20")
			os.Setenv("COVSTAB_MEANS", "5,6")
			config, err := configLoad(Checkpoint, logger)
			So(err, ShouldBeNil)
			So(config.Samples, ShouldEqual, 20)
			So(config.Source("Samples"), ShouldEqual, ConfigSourceEnvVar)
			So(config.Means, ShouldEqual, "5,6")
			So(config.Source("Means"), ShouldEqual, ConfigSourceEnvVar)
			So(config.FloorDenominator, ShouldBeTrue)
			So(config.Source("FloorDenominator"), ShouldEqual, ConfigSourceProfile)
		})

		Convey("Config files override env vars, with later dirs taking precedence", func() {
			os.Setenv("COVSTAB_SAMPLES", "20")
			os.Setenv("COVSTAB_LENGTH", "5000")
			os.Setenv("COVSTAB_PRECISION", "4")
			dirCommon := writeConfigFile(configDir, configCommonBasename, "samples: 30\nlength: 1000\n")
			dirProfile := writeConfigFile(configDir, ".covstab_config.trajectory.yml", "perturbation: 0.5\n")
			homeCommon := writeConfigFile(home, configCommonBasename, "length: 2000\nmeans: \"1, 2\"\n")

			config, err := configLoad(Trajectory, logger)
			So(err, ShouldBeNil)
			So(config.Samples, ShouldEqual, 30)
			So(config.Source("Samples"), ShouldEqual, dirCommon)
			So(config.Perturbation, ShouldEqual, 0.5)
			So(config.Source("Perturbation"), ShouldEqual, dirProfile)
			So(config.Length, ShouldEqual, 2000)
			So(config.Source("Length"), ShouldEqual, homeCommon)
			So(config.Means, ShouldEqual, "1,2")
			So(config.Precision, ShouldEqual, 4)
			So(config.Source("Precision"), ShouldEqual, ConfigSourceEnvVar)

			Convey("But the other profile's file is ignored", func() {
				config, err := configLoad(Checkpoint, logger)
				So(err, ShouldBeNil)
				So(config.Perturbation, ShouldEqual, 1)
			})
		})

		Convey("Bad config files are an error", func() {
			writeConfigFile(configDir, configCommonBasename, "samples: [\n")
			_, err := configLoad(Trajectory, logger)
			So(err, ShouldNotBeNil)
		})

		Convey("You can override values, recording the source", func() {
			config, err := configLoad(Trajectory, logger)
			So(err, ShouldBeNil)
			config.Override("flag", func(c *Config) {
				c.Samples = 5
				c.Perturbation = 2
				c.Length = 10000000
			})
			So(config.Samples, ShouldEqual, 5)
			So(config.Source("Samples"), ShouldEqual, "flag")
			So(config.Perturbation, ShouldEqual, 2)
			So(config.Source("Perturbation"), ShouldEqual, "flag")
			So(config.Source("Length"), ShouldEqual, ConfigSourceDefault)
		})
	})

	Convey("Given a config", t, func() {
		config := Config{}
		So(config.Source("Means"), ShouldEqual, ConfigSourceDefault)
		config.Means = "1e5"
		config.Perturbation = 1
		config.Length = 100
		config.Samples = 10
		config.Estimators = "welford,naive"
		config.OutputFormat = OutputJSON
		config.Precision = 6

		Convey("It validates and gives you runs and kinds", func() {
			So(config.Validate(), ShouldBeNil)
			runs, err := config.Runs()
			So(err, ShouldBeNil)
			So(len(runs), ShouldEqual, 1)
			So(runs[0].Cadence, ShouldEqual, 10)

			kinds, err := config.EstimatorKinds()
			So(err, ShouldBeNil)
			So(kinds, ShouldResemble, []covariance.Kind{covariance.KindOnlineMean, covariance.KindNaive})
		})

		Convey("Every problem is reported", func() {
			config.Means = "1,x"
			config.Checkpoints = "-5"
			config.Estimators = "pairwise"
			config.Length = 0
			config.Samples = 0
			config.Precision = 0
			config.OutputFormat = "xml"

			err := config.Validate()
			So(err, ShouldNotBeNil)
			var merr *multierror.Error
			So(errors.As(err, &merr), ShouldBeTrue)
			So(len(merr.Errors), ShouldEqual, 7)
			So(err.Error(), ShouldContainSubstring, "means:")
			So(err.Error(), ShouldContainSubstring, "outputformat:")

			_, err = config.Runs()
			So(err, ShouldNotBeNil)
		})

		Convey("Empty means are not allowed", func() {
			config.Means = " , "
			err := config.Validate()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "at least one mean")
		})
	})
}
