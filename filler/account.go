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
	"bytes"
	"fmt"

	"github.com/0xsoniclabs/aida-filler/mapping"
	"github.com/0xsoniclabs/aida-filler/normalize"
	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
)

// Account is a fully populated account record of a world state.
type Account struct {
	Balance *uint256.Int
	Nonce   uint64
	Code    hexutil.Bytes
	Storage map[common.Hash]common.Hash
}

// NewAccount returns an empty account: zero balance and nonce, no code, no storage.
func NewAccount() Account {
	return Account{
		Balance: new(uint256.Int),
		Code:    hexutil.Bytes{},
		Storage: make(map[common.Hash]common.Hash),
	}
}

// Map renders the account in the canonical fixture form.
func (a Account) Map() mapping.Map {
	storage := make(mapping.Map, len(a.Storage))
	for key, value := range a.Storage {
		storage[new(uint256.Int).SetBytes(key.Bytes()).Hex()] = new(uint256.Int).SetBytes(value.Bytes())
	}
	balance := new(uint256.Int)
	if a.Balance != nil {
		balance.Set(a.Balance)
	}
	return mapping.Map{
		"balance": balance,
		"nonce":   uint256.NewInt(a.Nonce),
		"code":    hexutil.Bytes(bytes.Clone(a.Code)),
		"storage": storage,
	}
}

func (a Account) String() string {
	return fmt.Sprintf("Account{balance: %v, nonce: %d, code: %v, storage: %d slots}", a.Balance, a.Nonce, a.Code, len(a.Storage))
}

// AccountDefaults maps every given address key to an empty account. It is
// the lowest precedence layer of every world state merge.
func AccountDefaults(addresses ...string) mapping.Map {
	res := make(mapping.Map, len(addresses))
	for _, addr := range addresses {
		res[addr] = NewAccount().Map()
	}
	return res
}

// AccountOf decodes a canonical account map.
func AccountOf(m mapping.Map) (Account, error) {
	acc := NewAccount()
	balance, ok := m["balance"].(*uint256.Int)
	if !ok {
		return Account{}, errors.Newf("balance has unexpected type %T", m["balance"])
	}
	acc.Balance = balance.Clone()

	nonce, ok := m["nonce"].(*uint256.Int)
	if !ok || !nonce.IsUint64() {
		return Account{}, errors.Newf("nonce %v is not a 64 bit integer", m["nonce"])
	}
	acc.Nonce = nonce.Uint64()

	code, ok := m["code"].(hexutil.Bytes)
	if !ok {
		return Account{}, errors.Newf("code has unexpected type %T", m["code"])
	}
	acc.Code = bytes.Clone(code)

	storage, ok := mapping.AsMap(m["storage"])
	if !ok {
		return Account{}, errors.Newf("storage has unexpected type %T", m["storage"])
	}
	for rawKey, rawValue := range storage {
		key, err := uint256.FromHex(rawKey)
		if err != nil {
			return Account{}, errors.Wrapf(err, "storage key %s", rawKey)
		}
		value, ok := rawValue.(*uint256.Int)
		if !ok {
			return Account{}, errors.Newf("storage value %s has unexpected type %T", rawKey, rawValue)
		}
		acc.Storage[key.Bytes32()] = value.Bytes32()
	}
	return acc, nil
}

// WorldState is the typed form of a world state section.
type WorldState map[common.Address]Account

// WorldStateOf decodes a canonical world state map.
func WorldStateOf(state mapping.Map) (WorldState, error) {
	res := make(WorldState, len(state))
	for _, key := range state.Keys() {
		addr, err := normalize.Address(key)
		if err != nil {
			return nil, err
		}
		acc, err := AccountOf(state.Sub(key))
		if err != nil {
			return nil, errors.Wrapf(err, "account %s", key)
		}
		res[addr] = acc
	}
	return res, nil
}

// Alloc converts the world state into the genesis allocation consumed by
// state test runners.
func (ws WorldState) Alloc() types.GenesisAlloc {
	alloc := make(types.GenesisAlloc, len(ws))
	for addr, acc := range ws {
		storage := make(map[common.Hash]common.Hash, len(acc.Storage))
		for k, v := range acc.Storage {
			storage[k] = v
		}
		alloc[addr] = types.Account{
			Code:    bytes.Clone(acc.Code),
			Storage: storage,
			Balance: acc.Balance.ToBig(),
			Nonce:   acc.Nonce,
		}
	}
	return alloc
}
