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

// Package mapping holds the nested key/value documents fixtures are made of.
// A value inside a Map is either another Map, which merges recursively, or a
// leaf (scalar or sequence), which is replaced wholesale.
package mapping

import (
	"bytes"
	"fmt"
	"maps"
	"math/big"
	"reflect"
	"slices"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// Map is a nested document keyed by field name.
type Map map[string]any

// AsMap reports whether v is a mapping and returns it as Map. Decoders hand
// out map[string]any and map[any]any, both are accepted.
func AsMap(v any) (Map, bool) {
	switch m := v.(type) {
	case Map:
		return m, true
	case map[string]any:
		return m, true
	case map[any]any:
		res := make(Map, len(m))
		for k, val := range m {
			key, ok := k.(string)
			if !ok {
				key = toKey(k)
			}
			res[key] = val
		}
		return res, true
	}
	return nil, false
}

// DeepMerge combines maps left to right. For every key path the value of the
// last map defining it wins; only nested maps are merged, everything else
// is replaced. Inputs are never modified and the result shares no mutable
// value with them.
func DeepMerge(layers ...Map) Map {
	res := Map{}
	for _, m := range layers {
		mergeInto(res, m)
	}
	return res
}

// mergeInto expects every nested Map of dst to be owned by the caller.
func mergeInto(dst, src Map) {
	for key, value := range src {
		sub, ok := AsMap(value)
		if !ok {
			dst[key] = Clone(value)
			continue
		}
		existing, ok := dst[key].(Map)
		if !ok {
			existing = Map{}
			dst[key] = existing
		}
		mergeInto(existing, sub)
	}
}

// Assoc returns a shallow copy of m with key set to value.
func Assoc(m Map, key string, value any) Map {
	res := make(Map, len(m)+1)
	maps.Copy(res, m)
	res[key] = value
	return res
}

// Sub returns the nested map stored under key or nil.
func (m Map) Sub(key string) Map {
	sub, _ := AsMap(m[key])
	return sub
}

// Has reports whether key is present in m.
func (m Map) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// Keys returns the keys of m in ascending order.
func (m Map) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

// Clone deep-copies v. Immutable scalars are returned as they are.
func Clone(v any) any {
	switch val := v.(type) {
	case Map, map[string]any, map[any]any:
		m, _ := AsMap(val)
		res := make(Map, len(m))
		for k, item := range m {
			res[k] = Clone(item)
		}
		return res
	case []any:
		res := make([]any, len(val))
		for i, item := range val {
			res[i] = Clone(item)
		}
		return res
	case []string:
		return slices.Clone(val)
	case hexutil.Bytes:
		return hexutil.Bytes(bytes.Clone(val))
	case []byte:
		return bytes.Clone(val)
	case *uint256.Int:
		if val == nil {
			return val
		}
		return val.Clone()
	case *big.Int:
		if val == nil {
			return val
		}
		return new(big.Int).Set(val)
	}
	return v
}

// Equal is exact equality over canonical values: integers by value, byte
// sequences by content, maps and sequences element by element.
func Equal(a, b any) bool {
	if ma, ok := AsMap(a); ok {
		mb, ok := AsMap(b)
		if !ok || len(ma) != len(mb) {
			return false
		}
		for k, va := range ma {
			vb, ok := mb[k]
			if !ok || !Equal(va, vb) {
				return false
			}
		}
		return true
	}
	switch va := a.(type) {
	case *uint256.Int:
		vb, ok := b.(*uint256.Int)
		if !ok || va == nil || vb == nil {
			return ok && va == vb
		}
		return va.Eq(vb)
	case hexutil.Bytes:
		vb, ok := asBytes(b)
		return ok && bytes.Equal(va, vb)
	case []byte:
		vb, ok := asBytes(b)
		return ok && bytes.Equal(va, vb)
	case []any:
		vb, ok := b.([]any)
		if !ok || len(va) != len(vb) {
			return false
		}
		for i := range va {
			if !Equal(va[i], vb[i]) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}

// IndexOf returns the position of the first element of seq equal to v, or -1.
func IndexOf(seq []any, v any) int {
	return slices.IndexFunc(seq, func(item any) bool {
		return Equal(item, v)
	})
}

func asBytes(v any) ([]byte, bool) {
	switch b := v.(type) {
	case hexutil.Bytes:
		return b, true
	case []byte:
		return b, true
	}
	return nil, false
}

func toKey(k any) string {
	return fmt.Sprint(k)
}
