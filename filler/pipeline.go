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
	"github.com/0xsoniclabs/aida-filler/compiler"
	"github.com/0xsoniclabs/aida-filler/mapping"
)

// Step is one composition step applied to the named scenario of a fixture.
type Step func(f Fixture, name string) (Fixture, error)

// WithPreState is the Step form of ExtendPreState.
func WithPreState(fragments ...mapping.Map) Step {
	return func(f Fixture, name string) (Fixture, error) {
		return ExtendPreState(f, name, fragments...)
	}
}

// WithExpectation is the Step form of AddExpectation.
func WithExpectation(e Expectation) Step {
	return func(f Fixture, name string) (Fixture, error) {
		return AddExpectation(f, name, e)
	}
}

// WithExecution is the Step form of SetExecution.
func WithExecution(fragment mapping.Map, c compiler.Compiler) Step {
	return func(f Fixture, name string) (Fixture, error) {
		return SetExecution(f, name, fragment, c)
	}
}

// Apply runs steps in order against the single scenario of f. The first
// failing step aborts the chain.
func Apply(f Fixture, steps ...Step) (Fixture, error) {
	name, err := TestName(f)
	if err != nil {
		return nil, err
	}
	for _, step := range steps {
		if f, err = step(f, name); err != nil {
			return nil, err
		}
	}
	return f, nil
}
