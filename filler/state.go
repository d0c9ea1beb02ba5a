// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package filler

import (
	"slices"

	"github.com/0xsoniclabs/aida-filler/mapping"
	"github.com/0xsoniclabs/aida-filler/normalize"
	"github.com/cockroachdb/errors"
)

// Expectation describes one expected outcome of a scenario. All fields are
// optional. PostState lists only the changes relative to the pre-state.
type Expectation struct {
	PostState   mapping.Map
	Networks    []string
	Transaction mapping.Map
}

// ExtendPreState merges state fragments into the pre-state of the named
// scenario. Later fragments take precedence; every referenced account ends
// up fully populated.
func ExtendPreState(f Fixture, name string, fragments ...mapping.Map) (Fixture, error) {
	record, err := f.Scenario(name)
	if err != nil {
		return nil, err
	}
	state, err := normalize.State(fragments...)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %q", name)
	}
	pre := mapping.DeepMerge(AccountDefaults(state.Keys()...), record.Sub("pre"), state)
	return f.with(name, mapping.Assoc(record, "pre", pre)), nil
}

// AddExpectation appends an expectation to the named scenario. Its result is
// the current pre-state overridden by the post-state. A transaction is
// merged over DefaultMainTransaction and added to the scenario's group of
// transaction variants; the expectation records where its values sit there.
func AddExpectation(f Fixture, name string, e Expectation) (Fixture, error) {
	record, err := f.Scenario(name)
	if err != nil {
		return nil, err
	}
	post, err := normalize.State(e.PostState)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %q", name)
	}
	expectation := mapping.Map{
		"result": mapping.DeepMerge(AccountDefaults(post.Keys()...), record.Sub("pre"), post),
	}

	var group mapping.Map
	if e.Transaction != nil {
		tx, err := normalize.Transaction(mapping.DeepMerge(DefaultMainTransaction(), e.Transaction))
		if err != nil {
			return nil, errors.Wrapf(err, "scenario %q", name)
		}
		var indexes mapping.Map
		group, indexes, err = AddTransactionToGroup(record.Sub("transaction"), tx)
		if err != nil {
			return nil, errors.Wrapf(err, "scenario %q", name)
		}
		expectation["indexes"] = indexes
	}

	if e.Networks != nil {
		networks, err := normalize.Networks(e.Networks)
		if err != nil {
			return nil, errors.Wrapf(err, "scenario %q", name)
		}
		expectation["networks"] = networks
	}

	existing, _ := record["expect"].([]any)
	res := mapping.Assoc(record, "expect", append(slices.Clone(existing), expectation))
	if group != nil {
		res["transaction"] = group
	}
	return f.with(name, res), nil
}
