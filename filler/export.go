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
	"encoding/json"

	"github.com/0xsoniclabs/aida-filler/mapping"
	"github.com/0xsoniclabs/aida-filler/normalize"
	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// Export serializes f into the JSON document handed to state test runners.
// Integers are written as hex quantities, byte sequences as hex strings and
// addresses in lower case. Keys are sorted, so equal fixtures export equally.
func Export(f Fixture) ([]byte, error) {
	doc := make(map[string]any, len(f))
	for name, record := range f {
		value, err := exportValue(record)
		if err != nil {
			return nil, errors.Wrapf(err, "scenario %q", name)
		}
		doc[name] = value
	}
	return json.MarshalIndent(doc, "", "  ")
}

func exportValue(v any) (any, error) {
	if m, ok := mapping.AsMap(v); ok {
		res := make(map[string]any, len(m))
		for key, item := range m {
			value, err := exportValue(item)
			if err != nil {
				return nil, errors.Wrapf(err, "%s", key)
			}
			res[key] = value
		}
		return res, nil
	}
	switch val := v.(type) {
	case []any:
		res := make([]any, len(val))
		for i, item := range val {
			value, err := exportValue(item)
			if err != nil {
				return nil, errors.Wrapf(err, "%d", i)
			}
			res[i] = value
		}
		return res, nil
	case *uint256.Int:
		return val.Hex(), nil
	case common.Address:
		return normalize.AddressKey(val), nil
	case common.Hash:
		return val.Hex(), nil
	case hexutil.Bytes:
		return val.String(), nil
	case []string, string, int, bool:
		return val, nil
	}
	return nil, errors.Newf("value %v of type %T cannot be exported", v, v)
}
