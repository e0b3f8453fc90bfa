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
Package report renders the Results of covstab measurements, either as
human-readable tables of the relative errors or as a JSON document.

	h := harness.New(logger)
	results, err := h.MeasureAll(runs)
	if err != nil {
		// handle it
	}
	err = report.Tables(os.Stdout, results, report.DefaultOptions())
*/
package report
