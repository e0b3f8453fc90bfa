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

package covariance

// This file contains error handling code.

import (
	"fmt"
)

// covariance has some typical errors
const (
	ErrUnknownKind = "unknown estimator kind"
	ErrNoKinds     = "no estimator kinds specified"
)

// Error records an error and the operation and estimator name that caused it.
type Error struct {
	Name string // the estimator name we were given
	Op   string // name of the method
	Err  string // one of our Err constants
}

func (e Error) Error() string {
	return fmt.Sprintf("covariance(%s) %s(): %s", e.Name, e.Op, e.Err)
}
