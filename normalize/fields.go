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

package normalize

import (
	"github.com/0xsoniclabs/aida-filler/mapping"
	"github.com/cockroachdb/errors"
)

type formatter func(v any) (any, error)

func integer(v any) (any, error)    { return Integer(v) }
func byteSeq(v any) (any, error)    { return Bytes(v) }
func address(v any) (any, error)    { return Address(v) }
func hash(v any) (any, error)       { return Hash(v) }
func secretKey(v any) (any, error)  { return SecretKey(v) }
func sourceCode(v any) (any, error) { return source(v) }

// recipient accepts an address or the empty string for contract creation.
func recipient(v any) (any, error) {
	if s, ok := v.(string); ok && s == "" {
		return "", nil
	}
	return Address(v)
}

func source(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case []byte:
		return string(val), nil
	}
	return "", fail("source", v, "unsupported type %T", v)
}

var environmentFields = map[string]formatter{
	"currentCoinbase":      address,
	"currentDifficulty":    integer,
	"currentGasLimit":      integer,
	"currentNumber":        integer,
	"currentTimestamp":     integer,
	"currentBaseFee":       integer,
	"currentRandom":        hash,
	"currentExcessBlobGas": integer,
	"previousHash":         hash,
}

var executionFields = map[string]formatter{
	"address":  address,
	"origin":   address,
	"caller":   address,
	"value":    integer,
	"data":     byteSeq,
	"code":     byteSeq,
	"gasPrice": integer,
	"gas":      integer,
	"lllCode":  sourceCode,
}

var transactionFields = map[string]formatter{
	"data":                 byteSeq,
	"gasLimit":             integer,
	"gasPrice":             integer,
	"maxFeePerGas":         integer,
	"maxPriorityFeePerGas": integer,
	"nonce":                integer,
	"secretKey":            secretKey,
	"to":                   recipient,
	"value":                integer,
}

var accountFields = map[string]formatter{
	"balance": integer,
	"nonce":   integer,
	"code":    byteSeq,
}

// applyFormatters formats every field of raw with its formatter. Unknown
// fields are rejected.
func applyFormatters(section string, formatters map[string]formatter, raw mapping.Map) (mapping.Map, error) {
	res := make(mapping.Map, len(raw))
	for key, value := range raw {
		format, ok := formatters[key]
		if !ok {
			return nil, fail(section, key, "unknown field")
		}
		formatted, err := format(value)
		if err != nil {
			return nil, errors.Wrapf(err, "%s.%s", section, key)
		}
		res[key] = formatted
	}
	return res, nil
}

// Environment normalizes a block environment fragment.
func Environment(raw mapping.Map) (mapping.Map, error) {
	return applyFormatters("env", environmentFields, raw)
}

// Execution normalizes an execution context fragment.
func Execution(raw mapping.Map) (mapping.Map, error) {
	return applyFormatters("exec", executionFields, raw)
}

// Transaction normalizes a flat transaction fragment.
func Transaction(raw mapping.Map) (mapping.Map, error) {
	return applyFormatters("transaction", transactionFields, raw)
}

// State normalizes world state fragments and merges them in order. Account
// addresses become canonical keys, so "0xAB.." and "0xab.." address the same
// account. Within one fragment an account may be listed only once.
func State(fragments ...mapping.Map) (mapping.Map, error) {
	normalized := make([]mapping.Map, 0, len(fragments))
	for _, fragment := range fragments {
		state := mapping.Map{}
		for _, rawAddr := range fragment.Keys() {
			addr, err := Address(rawAddr)
			if err != nil {
				return nil, errors.Wrap(err, "state")
			}
			key := AddressKey(addr)
			if state.Has(key) {
				return nil, fail("state", rawAddr, "account %s listed twice", key)
			}
			account, err := accountFragment(key, fragment[rawAddr])
			if err != nil {
				return nil, err
			}
			state = mapping.DeepMerge(state, mapping.Map{key: account})
		}
		normalized = append(normalized, state)
	}
	return mapping.DeepMerge(normalized...), nil
}

func accountFragment(key string, raw any) (mapping.Map, error) {
	if raw == nil {
		return mapping.Map{}, nil
	}
	fields, ok := mapping.AsMap(raw)
	if !ok {
		return nil, fail("state."+key, raw, "account must be a mapping")
	}
	storage, hasStorage := fields["storage"]
	res, err := applyFormatters("state."+key, accountFields, without(fields, "storage"))
	if err != nil {
		return nil, err
	}
	if hasStorage {
		slots, err := storageFragment(key, storage)
		if err != nil {
			return nil, err
		}
		res["storage"] = slots
	}
	return res, nil
}

func storageFragment(key string, raw any) (mapping.Map, error) {
	res := mapping.Map{}
	if raw == nil {
		return res, nil
	}
	slots, ok := mapping.AsMap(raw)
	if !ok {
		return nil, fail("state."+key+".storage", raw, "storage must be a mapping")
	}
	for rawSlot, rawValue := range slots {
		slot, err := StorageKey(rawSlot)
		if err != nil {
			return nil, errors.Wrapf(err, "state.%s.storage", key)
		}
		value, err := Integer(rawValue)
		if err != nil {
			return nil, errors.Wrapf(err, "state.%s.storage.%s", key, slot)
		}
		res[slot] = value
	}
	return res, nil
}

func without(m mapping.Map, key string) mapping.Map {
	res := make(mapping.Map, len(m))
	for k, v := range m {
		if k != key {
			res[k] = v
		}
	}
	return res
}
