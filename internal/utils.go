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

// this file has general utility functions

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ParseFloatList parses a comma separated list of numbers like
// "1e5, 10000000". Empty entries are ignored.
func ParseFloatList(list string) ([]float64, error) {
	var values []float64
	for _, field := range splitList(list) {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// ParseUintList parses a comma separated list of counts like "1000,1e6".
// Counts may be given in scientific notation, but must be whole numbers.
// Empty entries are ignored.
func ParseUintList(list string) ([]uint64, error) {
	var values []uint64
	for _, field := range splitList(list) {
		v, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			// try again treating it as a float, to allow eg. 1e7
			f, ferr := strconv.ParseFloat(field, 64)
			if ferr != nil || f < 0 || f != float64(uint64(f)) {
				return nil, err
			}
			v = uint64(f)
		}
		values = append(values, v)
	}
	return values, nil
}

// splitList splits on commas, trimming space and dropping empty entries.
func splitList(list string) []string {
	var fields []string
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field != "" {
			fields = append(fields, field)
		}
	}
	return fields
}

// TildaToHome converts a path beginning with ~/ to the absolute path based in
// the current home directory. If that cannot be determined, path is returned
// unaltered.
func TildaToHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/"))
}
