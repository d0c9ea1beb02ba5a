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
	"github.com/0xsoniclabs/aida-filler/mapping"
	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// trackedFields are the transaction fields allowed to vary between the
// expectations of one scenario, with the key their position is reported under.
var trackedFields = []struct {
	field string
	index string
}{
	{"data", "data"},
	{"gasLimit", "gas"},
	{"value", "value"},
}

func isTracked(field string) bool {
	for _, tracked := range trackedFields {
		if tracked.field == field {
			return true
		}
	}
	return false
}

// AddTransactionToGroup adds a normalized transaction to a group of
// transaction variants and returns the new group together with the
// positions of the transaction's tracked values within it.
//
// Tracked fields hold the ordered list of distinct values seen so far; a
// value already present is not appended again. All other fields form the
// template shared by every variant and have to match it.
func AddTransactionToGroup(group, tx mapping.Map) (mapping.Map, mapping.Map, error) {
	res := mapping.DeepMerge(group)
	for _, key := range tx.Keys() {
		if isTracked(key) {
			continue
		}
		if current, ok := res[key]; ok && !mapping.Equal(current, tx[key]) {
			return nil, nil, errors.Wrapf(ErrTransactionTemplate, "field %s is %v, group has %v", key, tx[key], current)
		}
		res[key] = mapping.Clone(tx[key])
	}

	indexes := mapping.Map{}
	for _, tracked := range trackedFields {
		value, ok := tx[tracked.field]
		if !ok {
			continue
		}
		candidates, _ := res[tracked.field].([]any)
		idx := mapping.IndexOf(candidates, value)
		if idx < 0 {
			candidates = append(candidates, mapping.Clone(value))
			idx = len(candidates) - 1
		}
		res[tracked.field] = candidates
		indexes[tracked.index] = idx
	}
	return res, indexes, nil
}

// Sender derives the address signing the transactions of a group from its secret key.
func Sender(group mapping.Map) (common.Address, error) {
	key, ok := group["secretKey"].(hexutil.Bytes)
	if !ok {
		return common.Address{}, errors.New("transaction group has no secret key")
	}
	private, err := crypto.ToECDSA(key)
	if err != nil {
		return common.Address{}, errors.Wrap(err, "invalid secret key")
	}
	return crypto.PubkeyToAddress(private.PublicKey), nil
}
