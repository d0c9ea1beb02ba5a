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
	"fmt"

	"github.com/0xsoniclabs/aida-filler/logger"
	"github.com/urfave/cli/v2"
)

// ArgumentMode defines how many positional arguments a command expects.
type ArgumentMode int

const (
	NoArgs ArgumentMode = iota
	OneOrMoreArgs
)

// Config holds the settings of a filler command.
type Config struct {
	AppName     string
	CommandName string

	LogLevel   string   // level of the logging of the app action
	Output     string   // fixture output path, stdout if empty
	LllcBinary string   // LLL compiler binary
	NoSummary  bool     // disables the summary table
	Inputs     []string // scenario definition files
}

// NewConfig creates a Config from the flags and arguments of ctx.
func NewConfig(ctx *cli.Context, mode ArgumentMode) (*Config, error) {
	cfg := &Config{
		CommandName: ctx.Command.Name,
		LogLevel:    ctx.String(logger.LogLevelFlag.Name),
		Output:      ctx.Path(OutputFlag.Name),
		LllcBinary:  ctx.String(LllcBinaryFlag.Name),
		NoSummary:   ctx.Bool(NoSummaryFlag.Name),
		Inputs:      ctx.Args().Slice(),
	}
	if ctx.App != nil {
		cfg.AppName = ctx.App.HelpName
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = logger.LogLevelFlag.Value
	}
	if cfg.LllcBinary == "" {
		cfg.LllcBinary = LllcBinaryFlag.Value
	}

	switch mode {
	case NoArgs:
		if len(cfg.Inputs) != 0 {
			return nil, fmt.Errorf("command %s takes no arguments", cfg.CommandName)
		}
	case OneOrMoreArgs:
		if len(cfg.Inputs) == 0 {
			return nil, fmt.Errorf("command %s requires at least one scenario definition file", cfg.CommandName)
		}
	}
	return cfg, nil
}
