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
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// DefaultMainEnvironment is the block environment of main network scenarios.
func DefaultMainEnvironment() mapping.Map {
	return mapping.Map{
		"currentCoinbase":   common.HexToAddress("0x2adc25665018aa1fe0e6bc666dac8fc2697ff9ba"),
		"currentDifficulty": uint256.NewInt(131072),
		"currentGasLimit":   uint256.NewInt(1000000),
		"currentNumber":     uint256.NewInt(1),
		"currentTimestamp":  uint256.NewInt(1000),
		"previousHash":      common.HexToHash("0x5e20a0453cecd065ea59c37ac63e079ee08998b6045136a8ce6635c7912ec0b6"),
	}
}

// DefaultMainTransaction is the template every expected transaction is merged over.
func DefaultMainTransaction() mapping.Map {
	return mapping.Map{
		"data":      hexutil.Bytes{},
		"gasLimit":  uint256.NewInt(100000),
		"gasPrice":  new(uint256.Int),
		"nonce":     new(uint256.Int),
		"secretKey": hexutil.Bytes(hexutil.MustDecode("0x45a915e4d060149eb4365960e6a7a45f334393093061116b197e3240065ff2d8")),
		"to":        common.HexToAddress("0x0f572e5295c57f15886f9b263e2f6d2d6c7b5ec6"),
		"value":     new(uint256.Int),
	}
}

// DefaultExecution is the execution context fragments are merged over.
func DefaultExecution() mapping.Map {
	return mapping.Map{
		"address":  common.HexToAddress("0x0f572e5295c57f15886f9b263e2f6d2d6c7b5ec6"),
		"origin":   common.HexToAddress("0xcd1722f2947def4cf144679da39c4c32bdc35681"),
		"caller":   common.HexToAddress("0xcd1722f2947def4cf144679da39c4c32bdc35681"),
		"value":    uint256.NewInt(1000000000000000000),
		"data":     hexutil.Bytes{},
		"gasPrice": uint256.NewInt(1),
		"gas":      uint256.NewInt(100000),
	}
}
