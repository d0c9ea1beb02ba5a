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

package utils

import (
	"bytes"
	"os/exec"
)

// ShellExecutor runs external programs and returns their combined output.
//
//go:generate mockgen -source shell.go -destination shell_mock.go -package utils
type ShellExecutor interface {
	Command(name string, arg ...string) ([]byte, error)
	// CommandWithInput runs the program with input connected to its standard input.
	CommandWithInput(input []byte, name string, arg ...string) ([]byte, error)
}

type shell struct{}

func (s shell) Command(name string, arg ...string) ([]byte, error) {
	return exec.Command(name, arg...).CombinedOutput()
}

func (s shell) CommandWithInput(input []byte, name string, arg ...string) ([]byte, error) {
	cmd := exec.Command(name, arg...)
	cmd.Stdin = bytes.NewReader(input)
	return cmd.CombinedOutput()
}

func NewShell() ShellExecutor {
	return shell{}
}
