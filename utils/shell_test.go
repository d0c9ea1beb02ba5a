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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShell_Command(t *testing.T) {
	s := NewShell()
	out, err := s.Command("echo", "hello")
	assert.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))
}

func TestShell_CommandWithInput(t *testing.T) {
	s := NewShell()
	out, err := s.CommandWithInput([]byte("(seq (stop))"), "cat")
	assert.NoError(t, err)
	assert.Equal(t, "(seq (stop))", string(out))
}

func TestShell_Command_UnknownProgram(t *testing.T) {
	s := NewShell()
	_, err := s.Command("this-program-does-not-exist")
	assert.Error(t, err)
}
