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
	"github.com/0xsoniclabs/aida-filler/normalize"
	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixture_Setup(t *testing.T) {
	f, err := Setup("T1", mapping.Map{"currentNumber": "0x05"})
	require.NoError(t, err)

	require.Equal(t, []string{"T1"}, f.Names())
	assert.Equal(t, mapping.Map{"currentNumber": uint256.NewInt(5)}, f["T1"]["env"])
	assert.Equal(t, mapping.Map{}, f["T1"]["pre"])
}

func TestFixture_SetupMain_MergesOverDefaults(t *testing.T) {
	f, err := SetupMain("T1", mapping.Map{"currentNumber": 7})
	require.NoError(t, err)

	env := f["T1"].Sub("env")
	assert.Equal(t, uint256.NewInt(7), env["currentNumber"])
	assert.Equal(t, uint256.NewInt(1000), env["currentTimestamp"])
	assert.Equal(t, common.HexToAddress("0x2adc25665018aa1fe0e6bc666dac8fc2697ff9ba"), env["currentCoinbase"])
	assert.Len(t, env, len(DefaultMainEnvironment()))
}

func TestFixture_Setup_InvalidEnvironment(t *testing.T) {
	_, err := Setup("T1", mapping.Map{"currentCoinbase": "nope"})
	assert.True(t, errors.Is(err, normalize.ErrNormalization))
}

func TestFixture_TestName(t *testing.T) {
	name, err := TestName(setupTestFixture(t))
	require.NoError(t, err)
	assert.Equal(t, "T1", name)

	_, err = TestName(Fixture{})
	assert.True(t, errors.Is(err, ErrUnknownScenario))

	_, err = TestName(Fixture{"a": {}, "b": {}})
	assert.True(t, errors.Is(err, ErrAmbiguousScenario))
}

func TestFixture_Merge(t *testing.T) {
	first := setupTestFixture(t)
	second, err := SetupMain("T2", nil)
	require.NoError(t, err)

	merged, err := first.Merge(second)
	require.NoError(t, err)
	assert.Equal(t, []string{"T1", "T2"}, merged.Names())

	_, err = merged.Merge(first)
	assert.Error(t, err)
}

func TestFixture_Pre(t *testing.T) {
	f, err := ExtendPreState(setupTestFixture(t), "T1", mapping.Map{addrA: mapping.Map{"balance": 5}})
	require.NoError(t, err)

	ws, err := f.Pre("T1")
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, uint256.NewInt(5), ws[common.HexToAddress(addrA)].Balance)

	_, err = f.Pre("T2")
	assert.True(t, errors.Is(err, ErrUnknownScenario))
}
