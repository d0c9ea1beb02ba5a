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

// Package normalize converts raw scenario definition values (hex strings,
// decimal strings, numbers, address literals) into the canonical forms used
// inside fixtures: *uint256.Int for integers, hexutil.Bytes for byte
// sequences, common.Address for addresses and common.Hash for hashes.
package normalize

import (
	"encoding/hex"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// ErrNormalization marks every error caused by a malformed raw value.
var ErrNormalization = errors.New("normalization error")

func fail(field string, value any, format string, args ...any) error {
	err := errors.Newf("cannot normalize %s (%v): %s", field, value, fmt.Sprintf(format, args...))
	return errors.Mark(err, ErrNormalization)
}

// Integer converts v into a non-negative 256-bit integer.
func Integer(v any) (*uint256.Int, error) {
	switch val := v.(type) {
	case *uint256.Int:
		if val == nil {
			return nil, fail("integer", v, "nil value")
		}
		return val.Clone(), nil
	case uint256.Int:
		return val.Clone(), nil
	case *big.Int:
		return fromBig(val, v)
	case int:
		return fromInt64(int64(val), v)
	case int32:
		return fromInt64(int64(val), v)
	case int64:
		return fromInt64(val, v)
	case uint:
		return uint256.NewInt(uint64(val)), nil
	case uint32:
		return uint256.NewInt(uint64(val)), nil
	case uint64:
		return uint256.NewInt(val), nil
	case float64:
		if val < 0 || val != math.Trunc(val) || val >= math.MaxInt64 {
			return nil, fail("integer", v, "not a representable non-negative integer")
		}
		return uint256.NewInt(uint64(val)), nil
	case string:
		return parseInteger(val)
	}
	return nil, fail("integer", v, "unsupported type %T", v)
}

func parseInteger(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	base := 10
	digits := s
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		digits = s[2:]
		if digits == "" {
			return new(uint256.Int), nil
		}
	}
	res, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fail("integer", s, "invalid base %d literal", base)
	}
	return fromBig(res, s)
}

func fromBig(b *big.Int, raw any) (*uint256.Int, error) {
	if b == nil || b.Sign() < 0 {
		return nil, fail("integer", raw, "negative or nil")
	}
	res, overflow := uint256.FromBig(b)
	if overflow {
		return nil, fail("integer", raw, "exceeds 256 bits")
	}
	return res, nil
}

func fromInt64(i int64, raw any) (*uint256.Int, error) {
	if i < 0 {
		return nil, fail("integer", raw, "negative")
	}
	return uint256.NewInt(uint64(i)), nil
}

// Bytes converts a hex string (with or without 0x prefix) or a byte slice.
func Bytes(v any) (hexutil.Bytes, error) {
	switch val := v.(type) {
	case hexutil.Bytes:
		return append(hexutil.Bytes{}, val...), nil
	case []byte:
		return append(hexutil.Bytes{}, val...), nil
	case string:
		s := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(val), "0x"), "0X")
		res, err := hex.DecodeString(s)
		if err != nil {
			return nil, fail("bytes", v, "%v", err)
		}
		return append(hexutil.Bytes{}, res...), nil
	}
	return nil, fail("bytes", v, "unsupported type %T", v)
}

// Address converts a 20 byte address literal.
func Address(v any) (common.Address, error) {
	switch val := v.(type) {
	case common.Address:
		return val, nil
	case *common.Address:
		if val == nil {
			return common.Address{}, fail("address", v, "nil value")
		}
		return *val, nil
	case []byte:
		if len(val) != common.AddressLength {
			return common.Address{}, fail("address", v, "expected %d bytes, got %d", common.AddressLength, len(val))
		}
		return common.BytesToAddress(val), nil
	case string:
		if !common.IsHexAddress(val) {
			return common.Address{}, fail("address", v, "not a hex address")
		}
		return common.HexToAddress(val), nil
	}
	return common.Address{}, fail("address", v, "unsupported type %T", v)
}

// AddressKey renders addr the way world state maps are keyed.
func AddressKey(addr common.Address) string {
	return hexutil.Encode(addr.Bytes())
}

// Hash converts a 32 byte hash literal.
func Hash(v any) (common.Hash, error) {
	if h, ok := v.(common.Hash); ok {
		return h, nil
	}
	b, err := Bytes(v)
	if err != nil {
		return common.Hash{}, err
	}
	if len(b) != common.HashLength {
		return common.Hash{}, fail("hash", v, "expected %d bytes, got %d", common.HashLength, len(b))
	}
	return common.BytesToHash(b), nil
}

// SecretKey converts a private key and checks it is a valid secp256k1 scalar.
func SecretKey(v any) (hexutil.Bytes, error) {
	b, err := Bytes(v)
	if err != nil {
		return nil, err
	}
	if _, err := crypto.ToECDSA(b); err != nil {
		return nil, fail("secret key", v, "%v", err)
	}
	return b, nil
}

// StorageKey renders a raw storage slot as canonical map key.
func StorageKey(v any) (string, error) {
	i, err := Integer(v)
	if err != nil {
		return "", err
	}
	return i.Hex(), nil
}
