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

// this file implements the config system used by the cmd package

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/VertebrateResequencing/covstab/covariance"
	"github.com/VertebrateResequencing/covstab/harness"
	"github.com/creasty/defaults"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/inconshreveable/log15"
	"github.com/jinzhu/configor"
	"github.com/olekukonko/tablewriter"
)

const (
	configCommonBasename = ".covstab_config.yml"

	// Trajectory is the name of the profile that samples the relative error
	// every 1% of a long stream, for a couple of large means.
	Trajectory = "trajectory"

	// Checkpoint is the name of the profile that samples the relative error
	// at a few fixed stream lengths, for small through large means.
	Checkpoint = "checkpoint"

	// ConfigSourceEnvVar is a config value source
	ConfigSourceEnvVar = "env var"

	// ConfigSourceDefault is a config value source
	ConfigSourceDefault = "default"

	// ConfigSourceProfile is a config value source
	ConfigSourceProfile = "profile"

	// OutputTable is the OutputFormat for tables
	OutputTable = "table"

	// OutputJSON is the OutputFormat for JSON
	OutputJSON = "json"

	sourcesProperty = "sources"
)

// profiles holds the settings that differ from the defaults for each profile.
var profiles = map[string]func(c *Config){
	Trajectory: func(c *Config) {},
	Checkpoint: func(c *Config) {
		c.Means = "1,1000,1000000"
		c.Checkpoints = "1000,10000,100000,1000000,10000000"
		c.FloorDenominator = true
	},
}

// Config holds the configuration options for measurement runs and their
// output.
type Config struct {
	Means            string  `default:"100000,10000000"`
	Perturbation     float64 `default:"1"`
	Length           int     `default:"10000000"`
	Samples          int     `default:"100"`
	Checkpoints      string  `default:""`
	FloorDenominator bool    `default:"false"`
	Estimators       string  `default:"naive,kahan,welford"`
	OutputFormat     string  `default:"table"`
	Precision        int     `default:"10"`
	Profile          string  `default:"trajectory"`
	sources          map[string]string
}

// merge compares existing to new Config values, and for each one that has
// changed, sets the given source on the changed property in our sources,
// and sets the new value on ourselves.
func (c *Config) merge(new *Config, source string) {
	v := reflect.ValueOf(*c)
	typeOfC := v.Type()
	vNew := reflect.ValueOf(*new)

	if c.sources == nil {
		c.sources = make(map[string]string)
	}

	for i := 0; i < v.NumField(); i++ {
		property := typeOfC.Field(i).Name
		if property == sourcesProperty {
			continue
		}

		if vNew.Field(i).Interface() != v.Field(i).Interface() {
			c.sources[property] = source

			adrField := reflect.ValueOf(c).Elem().Field(i)
			switch typeOfC.Field(i).Type.Kind() {
			case reflect.String:
				adrField.SetString(vNew.Field(i).String())
			case reflect.Int:
				adrField.SetInt(vNew.Field(i).Int())
			case reflect.Float64:
				adrField.SetFloat(vNew.Field(i).Float())
			case reflect.Bool:
				adrField.SetBool(vNew.Field(i).Bool())
			}
		}
	}
}

// clone makes a new Config with our values.
func (c *Config) clone() *Config {
	new := &Config{}

	v := reflect.ValueOf(*c)
	typeOfC := v.Type()
	for i := 0; i < v.NumField(); i++ {
		property := typeOfC.Field(i).Name
		if property == sourcesProperty {
			continue
		}

		adrField := reflect.ValueOf(new).Elem().Field(i)
		switch typeOfC.Field(i).Type.Kind() {
		case reflect.String:
			adrField.SetString(v.Field(i).String())
		case reflect.Int:
			adrField.SetInt(v.Field(i).Int())
		case reflect.Float64:
			adrField.SetFloat(v.Field(i).Float())
		case reflect.Bool:
			adrField.SetBool(v.Field(i).Bool())
		}
	}

	new.sources = make(map[string]string)
	for key, val := range c.sources {
		new.sources[key] = val
	}

	return new
}

// Override sets a property to the given value, recording source as where it
// came from. It's used to apply command line options on top of a loaded
// Config.
func (c *Config) Override(source string, set func(c *Config)) {
	changed := c.clone()
	set(changed)
	c.merge(changed, source)
}

// Source returns where the value of a Config field was defined.
func (c Config) Source(field string) string {
	if c.sources == nil {
		return ConfigSourceDefault
	}
	source, set := c.sources[field]
	if !set {
		return ConfigSourceDefault
	}
	return source
}

func (c Config) String() string {
	v := reflect.ValueOf(c)
	typeOfC := v.Type()

	tableString := &strings.Builder{}
	table := tablewriter.NewWriter(tableString)
	table.SetHeader([]string{"Config", "Value", "Source"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for i := 0; i < v.NumField(); i++ {
		property := typeOfC.Field(i).Name
		if property == sourcesProperty {
			continue
		}

		table.Append([]string{property, fmt.Sprintf("%v", v.Field(i).Interface()), c.Source(property)})
	}

	table.Render()
	return tableString.String()
}

// MeanValues parses Means.
func (c Config) MeanValues() ([]float64, error) {
	return ParseFloatList(c.Means)
}

// CheckpointValues parses Checkpoints.
func (c Config) CheckpointValues() ([]uint64, error) {
	return ParseUintList(c.Checkpoints)
}

// EstimatorKinds parses Estimators.
func (c Config) EstimatorKinds() ([]covariance.Kind, error) {
	return covariance.ParseKinds(c.Estimators)
}

// Validate checks that every property can be used, returning an error
// describing all the problems found.
func (c Config) Validate() error {
	var merr *multierror.Error

	means, err := c.MeanValues()
	if err != nil {
		merr = multierror.Append(merr, fmt.Errorf("means: %w", err))
	} else if len(means) == 0 {
		merr = multierror.Append(merr, errors.New("means: at least one mean is required"))
	}
	if _, err = c.CheckpointValues(); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("checkpoints: %w", err))
	}
	if _, err = c.EstimatorKinds(); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("estimators: %w", err))
	}
	if c.Length < 1 {
		merr = multierror.Append(merr, fmt.Errorf("length: %d is not positive", c.Length))
	}
	if c.Samples < 1 {
		merr = multierror.Append(merr, fmt.Errorf("samples: %d is not positive", c.Samples))
	}
	if c.Precision < 1 {
		merr = multierror.Append(merr, fmt.Errorf("precision: %d is not positive", c.Precision))
	}
	if c.OutputFormat != OutputTable && c.OutputFormat != OutputJSON {
		merr = multierror.Append(merr, fmt.Errorf("outputformat: %q is not one of %s or %s", c.OutputFormat, OutputTable, OutputJSON))
	}

	return merr.ErrorOrNil()
}

// Runs converts the Config in to one harness.Run per mean. Runs are not
// themselves validated; call Measure() to find out if they make sense.
func (c Config) Runs() ([]harness.Run, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	means, _ := c.MeanValues()
	checkpoints, _ := c.CheckpointValues()
	length := uint64(c.Length)

	runs := make([]harness.Run, len(means))
	for i, mean := range means {
		runs[i] = harness.Run{
			Mean:             mean,
			Perturbation:     c.Perturbation,
			Length:           length,
			Checkpoints:      checkpoints,
			FloorDenominator: c.FloorDenominator,
		}
		if len(checkpoints) == 0 {
			runs[i].Cadence = harness.CadenceFor(length, c.Samples)
		}
	}
	return runs, nil
}

/*
ConfigLoad loads configuration settings from the profile, files and environment
variables. Note, this function exits on error, since without config we can't
do anything.

We prefer settings in config file in current dir over config file in home
directory over config file in dir pointed to by COVSTAB_CONFIG_DIR, over
environment variables, over the profile's settings, over the defaults.

The profile argument determines if we read .covstab_config.trajectory.yml or
.covstab_config.checkpoint.yml; we always read .covstab_config.yml. If the
empty string is supplied, profile is taken from the environment variable
COVSTAB_PROFILE, and if that's not set it defaults to trajectory.

Settings can be set with the environment variable
COVSTAB_<setting name in caps>, eg.
export COVSTAB_SAMPLES="20"
*/
func ConfigLoad(profile string, logger log15.Logger) Config {
	config, err := configLoad(profile, logger)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	return config
}

// configLoad does the work of ConfigLoad, returning errors instead of exiting.
func configLoad(profile string, logger log15.Logger) (Config, error) {
	pwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	// if profile not set on the command line
	if _, known := profiles[profile]; !known {
		if profile != "" {
			logger.Warn("unknown profile, using the default", "profile", profile)
		}
		profile = DefaultProfile()
	}

	err = os.Setenv("CONFIGOR_ENV_PREFIX", "COVSTAB")
	if err != nil {
		return Config{}, err
	}

	// because we want to know the source of every value, we can't take
	// advantage of configor.Load() being able to take all env vars and config
	// files at once. We do it repeatedly and merge results instead
	config := &Config{}
	if err = defaults.Set(config); err != nil {
		return Config{}, err
	}

	config.Override(ConfigSourceProfile, profiles[profile])

	// load env vars on top of a clone, so that configor doesn't reset profile
	// settings back to their defaults
	configEnv := config.clone()
	if err = configor.Load(configEnv); err != nil {
		return Config{}, err
	}
	config.merge(configEnv, ConfigSourceEnvVar)

	// read each config file and merge results
	configProfileBasename := ".covstab_config." + profile + ".yml"

	var dirs []string
	if configDir := os.Getenv("COVSTAB_CONFIG_DIR"); configDir != "" {
		dirs = append(dirs, TildaToHome(configDir))
	}
	if home, herr := os.UserHomeDir(); herr == nil && home != "" {
		dirs = append(dirs, home)
	} else {
		logger.Warn("could not find home dir", "err", herr)
	}
	dirs = append(dirs, pwd)

	for _, dir := range dirs {
		for _, basename := range []string{configCommonBasename, configProfileBasename} {
			if err = configLoadFromFile(config, filepath.Join(dir, basename)); err != nil {
				return Config{}, err
			}
		}
	}

	// adjust properties as needed
	config.Profile = profile
	config.Means = strings.Join(strings.Fields(config.Means), "")

	return *config, nil
}

func configLoadFromFile(config *Config, path string) error {
	_, err := os.Stat(path)
	if err != nil {
		return nil
	}

	// env vars were already merged in as their own layer; don't let configor
	// apply them again on top of the file
	configFile := config.clone()
	err = configor.New(&configor.Config{ENVPrefix: "-"}).Load(configFile, path)
	if err != nil {
		return err
	}
	config.merge(configFile, path)
	return nil
}

// IsCheckpoint tells you if we're using the checkpoint profile.
func (c Config) IsCheckpoint() bool {
	return c.Profile == Checkpoint
}

// Profiles returns the names of the known profiles.
func Profiles() []string {
	return []string{Trajectory, Checkpoint}
}

// DefaultProfile works out the default profile: the value of the environment
// variable COVSTAB_PROFILE if that's a known profile, otherwise Trajectory.
func DefaultProfile() string {
	if env := os.Getenv("COVSTAB_PROFILE"); env != "" {
		if _, known := profiles[env]; known {
			return env
		}
	}
	return Trajectory
}
