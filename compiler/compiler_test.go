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

package compiler

import (
	"testing"

	"github.com/0xsoniclabs/aida-filler/utils"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLllCompiler_Compile(t *testing.T) {
	ctrl := gomock.NewController(t)
	shell := utils.NewMockShellExecutor(ctrl)
	shell.EXPECT().CommandWithInput([]byte("(seq (stop))"), "lllc").Return([]byte("0x6000\n"), nil)

	code, err := NewLllCompiler(shell, "lllc").Compile("(seq (stop))")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x60, 0x00}, code)
}

func TestLllCompiler_Compile_CompilerFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	shell := utils.NewMockShellExecutor(ctrl)
	shell.EXPECT().CommandWithInput(gomock.Any(), "lllc").Return([]byte("Parse error.\n"), errors.New("exit status 1"))

	_, err := NewLllCompiler(shell, "lllc").Compile("(seq")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCompilation))
	assert.Contains(t, err.Error(), "Parse error.")
}

func TestLllCompiler_Compile_InvalidOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	shell := utils.NewMockShellExecutor(ctrl)
	shell.EXPECT().CommandWithInput(gomock.Any(), "lllc").Return([]byte("not hex"), nil)

	_, err := NewLllCompiler(shell, "lllc").Compile("(seq (stop))")
	assert.True(t, errors.Is(err, ErrCompilation))
}

func TestLllCompiler_Version(t *testing.T) {
	ctrl := gomock.NewController(t)
	shell := utils.NewMockShellExecutor(ctrl)
	shell.EXPECT().Command("lllc", "--version").Return([]byte("LLLC, the Lovely Little Language Compiler\nVersion: 0.4.26\n"), nil)

	version, err := NewLllCompiler(shell, "lllc").Version()
	require.NoError(t, err)
	assert.Equal(t, "LLLC, the Lovely Little Language Compiler", version)
}
