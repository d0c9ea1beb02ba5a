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

import "github.com/cockroachdb/errors"

var (
	// ErrConsistency is returned when code compiled from a source literal
	// differs from the code given next to it.
	ErrConsistency = errors.New("compiled code mismatch")
	// ErrUnknownScenario is returned when extending a scenario that was never set up.
	ErrUnknownScenario = errors.New("unknown scenario")
	// ErrAmbiguousScenario is returned by TestName for fixtures holding more than one scenario.
	ErrAmbiguousScenario = errors.New("ambiguous scenario")
	// ErrNoCompiler is returned when an execution carries a source literal but no compiler is available.
	ErrNoCompiler = errors.New("no compiler configured")
	// ErrTransactionTemplate is returned when a transaction disagrees with its group
	// on a field that is not tracked for variation.
	ErrTransactionTemplate = errors.New("transaction does not match group template")
)
