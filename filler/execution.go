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
	"github.com/0xsoniclabs/aida-filler/compiler"
	"github.com/0xsoniclabs/aida-filler/mapping"
	"github.com/0xsoniclabs/aida-filler/normalize"
	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// SetExecution merges an execution context fragment over DefaultExecution
// and stores it as exec of the named scenario.
//
// A caller without an explicit origin is its own origin. An lllCode source
// literal is compiled with c; when code is given as well, both have to be
// identical or ErrConsistency is returned.
//
// Every call merges over DefaultExecution, so a field left out of fragment
// falls back to its default even if an earlier call set it.
func SetExecution(f Fixture, name string, fragment mapping.Map, c compiler.Compiler) (Fixture, error) {
	record, err := f.Scenario(name)
	if err != nil {
		return nil, err
	}
	exec, err := normalize.Execution(fragment)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %q", name)
	}

	if exec.Has("caller") && !exec.Has("origin") {
		exec = mapping.Assoc(exec, "origin", exec["caller"])
	}

	if source, ok := exec["lllCode"].(string); ok {
		if c == nil {
			return nil, errors.Wrapf(ErrNoCompiler, "scenario %q", name)
		}
		compiled, err := c.Compile(source)
		if err != nil {
			return nil, err
		}
		code := hexutil.Bytes(compiled)
		if explicit, ok := exec["code"]; ok && !mapping.Equal(explicit, code) {
			return nil, errors.Wrapf(ErrConsistency, "scenario %q: compiled code %v does not match code %v", name, code, explicit)
		}
		exec = mapping.Assoc(exec, "code", code)
	}

	exec = mapping.DeepMerge(DefaultExecution(), exec)
	return f.with(name, mapping.Assoc(record, "exec", mapping.DeepMerge(record.Sub("exec"), exec))), nil
}
