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

// Package filler assembles state test fixtures. A fixture maps scenario names
// to scenario records holding the block environment (env), the world state
// before execution (pre), the execution context (exec), the group of
// transaction variants (transaction) and the expected outcomes (expect).
//
// Every operation takes the current fixture and returns a new one; the
// fixture passed in is never modified, so a failed step leaves it as it was.
package filler

import (
	"maps"
	"slices"

	"github.com/0xsoniclabs/aida-filler/mapping"
	"github.com/0xsoniclabs/aida-filler/normalize"
	"github.com/cockroachdb/errors"
)

// Fixture maps scenario names to scenario records.
type Fixture map[string]mapping.Map

// Names returns the scenario names of f in ascending order.
func (f Fixture) Names() []string {
	return slices.Sorted(maps.Keys(f))
}

// Scenario returns the record of the named scenario.
func (f Fixture) Scenario(name string) (mapping.Map, error) {
	record, ok := f[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownScenario, "%q", name)
	}
	return record, nil
}

// with returns a shallow copy of f whose named record is replaced.
func (f Fixture) with(name string, record mapping.Map) Fixture {
	res := make(Fixture, len(f)+1)
	maps.Copy(res, f)
	res[name] = record
	return res
}

// Merge returns a fixture holding the scenarios of f and other. Scenario
// names must not collide.
func (f Fixture) Merge(other Fixture) (Fixture, error) {
	res := make(Fixture, len(f)+len(other))
	maps.Copy(res, f)
	for name, record := range other {
		if _, ok := res[name]; ok {
			return nil, errors.Newf("scenario %q defined twice", name)
		}
		res[name] = record
	}
	return res, nil
}

// Setup creates a fixture holding one empty scenario with the given environment.
func Setup(name string, env mapping.Map) (Fixture, error) {
	normalized, err := normalize.Environment(env)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %q", name)
	}
	return Fixture{name: mapping.Map{
		"env": normalized,
		"pre": mapping.Map{},
	}}, nil
}

// SetupMain is Setup with env merged over DefaultMainEnvironment.
func SetupMain(name string, env mapping.Map) (Fixture, error) {
	return Setup(name, mapping.DeepMerge(DefaultMainEnvironment(), env))
}

// TestName returns the name of the single scenario held by f.
func TestName(f Fixture) (string, error) {
	switch len(f) {
	case 0:
		return "", errors.Wrap(ErrUnknownScenario, "fixture is empty")
	case 1:
		for name := range f {
			return name, nil
		}
	}
	return "", errors.Wrapf(ErrAmbiguousScenario, "fixture holds %d scenarios", len(f))
}

// Pre returns the typed pre-state of the named scenario.
func (f Fixture) Pre(name string) (WorldState, error) {
	record, err := f.Scenario(name)
	if err != nil {
		return nil, err
	}
	return WorldStateOf(record.Sub("pre"))
}

// Expectations returns the expectation records of the named scenario in declaration order.
func (f Fixture) Expectations(name string) ([]mapping.Map, error) {
	record, err := f.Scenario(name)
	if err != nil {
		return nil, err
	}
	raw, _ := record["expect"].([]any)
	res := make([]mapping.Map, 0, len(raw))
	for _, item := range raw {
		expectation, ok := mapping.AsMap(item)
		if !ok {
			return nil, errors.Newf("scenario %q: expectation has unexpected type %T", name, item)
		}
		res = append(res, expectation)
	}
	return res, nil
}
