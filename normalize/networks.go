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
	"slices"

	"golang.org/x/text/cases"
)

var knownNetworks = []string{
	"Frontier",
	"Homestead",
	"EIP150",
	"EIP158",
	"Byzantium",
	"Constantinople",
	"ConstantinopleFix",
	"Petersburg",
	"Istanbul",
	"MuirGlacier",
	"Berlin",
	"London",
	"ArrowGlacier",
	"GrayGlacier",
	"Altair",
	"Bellatrix",
	"Paris",
	"Shanghai",
	"Cancun",
	"Prague",
	"Osaka",
	"TestNetwork",
}

var networksByFold = func() map[string]string {
	fold := cases.Fold()
	res := make(map[string]string, len(knownNetworks))
	for _, name := range knownNetworks {
		res[fold.String(name)] = name
	}
	return res
}()

// KnownNetworks returns the fork names accepted by Networks, oldest first.
func KnownNetworks() []string {
	return slices.Clone(knownNetworks)
}

// Networks resolves fork names case-insensitively and returns them as a
// sorted set.
func Networks(raw []string) ([]string, error) {
	fold := cases.Fold()
	res := make([]string, 0, len(raw))
	for _, name := range raw {
		canonical, ok := networksByFold[fold.String(name)]
		if !ok {
			return nil, fail("networks", name, "unknown network")
		}
		res = append(res, canonical)
	}
	slices.Sort(res)
	return slices.Compact(res), nil
}
