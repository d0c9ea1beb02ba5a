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

// Package compiler turns source code literals of execution fragments into
// bytecode.
package compiler

import (
	"encoding/hex"
	"strings"

	"github.com/0xsoniclabs/aida-filler/utils"
	"github.com/cockroachdb/errors"
)

// ErrCompilation marks failures of the external compiler.
var ErrCompilation = errors.New("compilation failed")

//go:generate mockgen -source compiler.go -destination compiler_mock.go -package compiler

// Compiler compiles a source literal into bytecode.
type Compiler interface {
	Compile(source string) ([]byte, error)
}

// NewLllCompiler returns a Compiler running the given LLL compiler binary.
// The source is passed on standard input, the binary prints hex bytecode.
func NewLllCompiler(shell utils.ShellExecutor, binary string) *LllCompiler {
	return &LllCompiler{shell: shell, binary: binary}
}

// LllCompiler compiles LLL sources with an external lllc binary.
type LllCompiler struct {
	shell  utils.ShellExecutor
	binary string
}

// Compile returns the bytecode printed by the compiler for source.
func (c *LllCompiler) Compile(source string) ([]byte, error) {
	out, err := c.shell.CommandWithInput([]byte(source), c.binary)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "%s: %s", c.binary, strings.TrimSpace(string(out))), ErrCompilation)
	}
	code, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(string(out)), "0x"))
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "%s printed invalid bytecode", c.binary), ErrCompilation)
	}
	return code, nil
}

// Version returns the version line reported by the compiler binary.
func (c *LllCompiler) Version() (string, error) {
	out, err := c.shell.Command(c.binary, "--version")
	if err != nil {
		return "", errors.Mark(errors.Wrapf(err, "cannot query %s version", c.binary), ErrCompilation)
	}
	version, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return version, nil
}
