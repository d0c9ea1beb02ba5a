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

package mapping

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTestLayers() (Map, Map, Map) {
	a := Map{
		"balance": uint256.NewInt(1),
		"storage": Map{"0x1": uint256.NewInt(1), "0x2": uint256.NewInt(2)},
		"list":    []any{1, 2},
	}
	b := Map{
		"nonce":   uint256.NewInt(7),
		"storage": Map{"0x2": uint256.NewInt(20)},
	}
	c := Map{
		"balance": uint256.NewInt(3),
		"storage": Map{"0x3": uint256.NewInt(30)},
		"list":    []any{3},
	}
	return a, b, c
}

func TestMapping_DeepMerge_Identity(t *testing.T) {
	a, _, _ := makeTestLayers()
	assert.True(t, Equal(a, DeepMerge(a)))
}

func TestMapping_DeepMerge_Empty(t *testing.T) {
	assert.Equal(t, Map{}, DeepMerge())
	assert.Equal(t, Map{}, DeepMerge(nil, nil))
}

func TestMapping_DeepMerge_LaterWins(t *testing.T) {
	a, b, c := makeTestLayers()
	got := DeepMerge(a, b, c)

	want := Map{
		"balance": uint256.NewInt(3),
		"nonce":   uint256.NewInt(7),
		"storage": Map{"0x1": uint256.NewInt(1), "0x2": uint256.NewInt(20), "0x3": uint256.NewInt(30)},
		"list":    []any{3},
	}
	assert.True(t, Equal(want, got), "got %v", got)
}

func TestMapping_DeepMerge_Associative(t *testing.T) {
	a, b, c := makeTestLayers()
	flat := DeepMerge(a, b, c)
	assert.True(t, Equal(flat, DeepMerge(DeepMerge(a, b), c)))
	assert.True(t, Equal(flat, DeepMerge(a, DeepMerge(b, c))))
}

func TestMapping_DeepMerge_SequencesAreReplaced(t *testing.T) {
	got := DeepMerge(Map{"list": []any{1, 2, 3}}, Map{"list": []any{4}})
	assert.Equal(t, []any{4}, got["list"])
}

func TestMapping_DeepMerge_MapReplacesScalar(t *testing.T) {
	got := DeepMerge(Map{"key": 1}, Map{"key": Map{"inner": 2}})
	assert.Equal(t, Map{"inner": 2}, got["key"])

	got = DeepMerge(Map{"key": Map{"inner": 2}}, Map{"key": 1})
	assert.Equal(t, 1, got["key"])
}

func TestMapping_DeepMerge_CreatesIntermediateKeys(t *testing.T) {
	got := DeepMerge(Map{}, Map{"a": Map{"b": Map{"c": 1}}})
	assert.Equal(t, 1, got.Sub("a").Sub("b")["c"])
}

func TestMapping_DeepMerge_AcceptsPlainMaps(t *testing.T) {
	got := DeepMerge(Map{"a": map[string]any{"x": 1}}, Map{"a": map[any]any{"y": 2}})
	assert.Equal(t, Map{"x": 1, "y": 2}, got["a"])
}

func TestMapping_DeepMerge_DoesNotMutateInputs(t *testing.T) {
	a, b, c := makeTestLayers()
	aCopy, bCopy, cCopy := Clone(a), Clone(b), Clone(c)

	got := DeepMerge(a, b, c)
	got.Sub("storage")["0x1"] = uint256.NewInt(100)
	got["balance"].(*uint256.Int).SetUint64(100)
	got["list"].([]any)[0] = 100

	assert.True(t, Equal(aCopy, a))
	assert.True(t, Equal(bCopy, b))
	assert.True(t, Equal(cCopy, c))
}

func TestMapping_Assoc(t *testing.T) {
	m := Map{"a": 1}
	got := Assoc(m, "b", 2)
	assert.Equal(t, Map{"a": 1, "b": 2}, got)
	assert.False(t, m.Has("b"))
}

func TestMapping_Keys_Sorted(t *testing.T) {
	m := Map{"c": 1, "a": 2, "b": 3}
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
}

func TestMapping_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"same ints", uint256.NewInt(5), uint256.NewInt(5), true},
		{"different ints", uint256.NewInt(5), uint256.NewInt(6), false},
		{"bytes", hexutil.Bytes{1, 2}, []byte{1, 2}, true},
		{"empty bytes", hexutil.Bytes{}, hexutil.Bytes(nil), true},
		{"different bytes", hexutil.Bytes{1}, hexutil.Bytes{2}, false},
		{"addresses", common.Address{1}, common.Address{1}, true},
		{"int and bytes", uint256.NewInt(1), hexutil.Bytes{1}, false},
		{"sequences", []any{uint256.NewInt(1)}, []any{uint256.NewInt(1)}, true},
		{"maps", Map{"a": uint256.NewInt(1)}, map[string]any{"a": uint256.NewInt(1)}, true},
		{"map sizes", Map{"a": 1}, Map{"a": 1, "b": 2}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, Equal(test.a, test.b))
		})
	}
}

func TestMapping_IndexOf(t *testing.T) {
	seq := []any{uint256.NewInt(100), uint256.NewInt(200)}
	assert.Equal(t, 1, IndexOf(seq, uint256.NewInt(200)))
	assert.Equal(t, -1, IndexOf(seq, uint256.NewInt(300)))
}

func TestMapping_Clone_Bytes(t *testing.T) {
	orig := hexutil.Bytes{1, 2, 3}
	cloned, ok := Clone(orig).(hexutil.Bytes)
	require.True(t, ok)
	cloned[0] = 9
	assert.Equal(t, byte(1), orig[0])
}
