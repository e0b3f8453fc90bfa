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

// This file contains the Estimator interface and the closed set of Kinds that
// implement it.

import (
	"strings"
)

// Names of the Estimator implementations, as returned by their Name() methods.
const (
	NameNaive       = "Naive"
	NameCompensated = "Kahan"
	NameOnlineMean  = "Welford"
)

// Estimator is something that incrementally estimates the covariance of a
// stream of (x, y) pairs.
type Estimator interface {
	// Ingest folds a new observation pair into the estimate.
	Ingest(x, y float64)

	// Covariance returns the current estimate, computed fresh from the
	// current state. At least one pair must have been ingested.
	Covariance() float64

	// Name returns a stable label for the kind of Estimator.
	Name() string
}

// Kind identifies one of our Estimator implementations.
type Kind int

// The kinds of Estimator.
const (
	KindNaive Kind = iota
	KindCompensated
	KindOnlineMean
)

// kindAliases maps the lower case names we accept in ParseKind() to Kinds.
var kindAliases = map[string]Kind{
	"naive":       KindNaive,
	"dummy":       KindNaive,
	"kahan":       KindCompensated,
	"compensated": KindCompensated,
	"welford":     KindOnlineMean,
	"online":      KindOnlineMean,
	"online-mean": KindOnlineMean,
	"onlinemean":  KindOnlineMean,
}

// Kinds returns every Kind, in the order they are conventionally compared.
func Kinds() []Kind {
	return []Kind{KindNaive, KindCompensated, KindOnlineMean}
}

// String returns the Name() that an Estimator of this Kind would have.
func (k Kind) String() string {
	switch k {
	case KindNaive:
		return NameNaive
	case KindCompensated:
		return NameCompensated
	case KindOnlineMean:
		return NameOnlineMean
	}
	return "Unknown"
}

// ParseKind converts a name like "kahan" or "Welford" to a Kind. The names
// returned by Name() and a few aliases are understood, case insensitively.
func ParseKind(name string) (Kind, error) {
	kind, known := kindAliases[strings.ToLower(strings.TrimSpace(name))]
	if !known {
		return 0, Error{Name: name, Op: "ParseKind", Err: ErrUnknownKind}
	}
	return kind, nil
}

// ParseKinds parses a comma separated list of names with ParseKind(),
// ignoring duplicates and empty entries.
func ParseKinds(list string) ([]Kind, error) {
	var kinds []Kind
	seen := make(map[Kind]bool)
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		kind, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		if seen[kind] {
			continue
		}
		seen[kind] = true
		kinds = append(kinds, kind)
	}
	if len(kinds) == 0 {
		return nil, Error{Name: list, Op: "ParseKinds", Err: ErrNoKinds}
	}
	return kinds, nil
}

// New creates a new zeroed Estimator of the given Kind. It panics if kind is
// not one of our Kind constants.
func New(kind Kind) Estimator {
	switch kind {
	case KindNaive:
		return NewNaive()
	case KindCompensated:
		return NewCompensated()
	case KindOnlineMean:
		return NewOnlineMean()
	}
	panic(Error{Name: kind.String(), Op: "New", Err: ErrUnknownKind})
}

// NewAll creates a new Estimator for each of the given kinds, in order. With
// no kinds, creates one of every Kind.
func NewAll(kinds ...Kind) []Estimator {
	if len(kinds) == 0 {
		kinds = Kinds()
	}
	estimators := make([]Estimator, len(kinds))
	for i, kind := range kinds {
		estimators[i] = New(kind)
	}
	return estimators
}
