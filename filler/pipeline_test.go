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
	"testing"

	"github.com/0xsoniclabs/aida-filler/mapping"
	"github.com/cockroachdb/errors"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_Apply(t *testing.T) {
	f, err := Apply(setupTestFixture(t),
		WithPreState(mapping.Map{addrA: mapping.Map{"balance": 5}}),
		WithExpectation(Expectation{PostState: mapping.Map{addrA: mapping.Map{"balance": 10}}}),
	)
	require.NoError(t, err)

	expectations, err := f.Expectations("T1")
	require.NoError(t, err)
	require.Len(t, expectations, 1)
	assert.Equal(t, uint256.NewInt(10), expectations[0].Sub("result").Sub(addrA)["balance"])
}

func TestPipeline_Apply_StopsAtFirstError(t *testing.T) {
	called := false
	_, err := Apply(setupTestFixture(t),
		WithExpectation(Expectation{Networks: []string{"Atlantis"}}),
		func(f Fixture, name string) (Fixture, error) {
			called = true
			return f, nil
		},
	)
	assert.Error(t, err)
	assert.False(t, called)
}

func TestPipeline_Apply_RequiresSingleScenario(t *testing.T) {
	_, err := Apply(Fixture{})
	assert.True(t, errors.Is(err, ErrUnknownScenario))
}
