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

package main

import (
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/0xsoniclabs/aida-filler/compiler"
	"github.com/0xsoniclabs/aida-filler/definition"
	"github.com/0xsoniclabs/aida-filler/filler"
	"github.com/0xsoniclabs/aida-filler/logger"
	"github.com/0xsoniclabs/aida-filler/utils"
	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

// FillCommand composes fixtures from scenario definition files.
var FillCommand = cli.Command{
	Action:    fillAction,
	Name:      "fill",
	Usage:     "fills scenario definitions into a state test fixture",
	ArgsUsage: "<definition.yaml> [<definition.yaml> ...]",
	Flags: []cli.Flag{
		&utils.OutputFlag,
		&utils.LllcBinaryFlag,
		&utils.NoSummaryFlag,
		&logger.LogLevelFlag,
	},
}

func fillAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.OneOrMoreArgs)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Filler")
	c := compiler.NewLllCompiler(utils.NewShell(), cfg.LllcBinary)
	if log.IsEnabledFor(logging.DEBUG) {
		if version, err := c.Version(); err == nil {
			log.Debugf("Using %s", version)
		} else {
			log.Debugf("LLL compiler unavailable: %v", err)
		}
	}
	return fill(cfg, c, log, os.Stdout)
}

// fill loads every input of cfg, fills all definitions and writes the
// combined fixture to cfg.Output. The summary table goes to summary.
func fill(cfg *utils.Config, c compiler.Compiler, log logger.Logger, summary io.Writer) error {
	start := time.Now()

	fixture := filler.Fixture{}
	for _, path := range cfg.Inputs {
		defs, err := definition.LoadFile(path)
		if err != nil {
			return err
		}
		log.Infof("Loaded %d scenarios from %s", len(defs), path)
		for _, def := range defs {
			f, err := def.Fill(c, log)
			if err != nil {
				return errors.Wrapf(err, "%s", path)
			}
			if fixture, err = fixture.Merge(f); err != nil {
				return errors.Wrapf(err, "%s", path)
			}
		}
	}

	data, err := filler.Export(fixture)
	if err != nil {
		return err
	}
	if err = writeOutput(cfg.Output, data); err != nil {
		return err
	}

	if !cfg.NoSummary {
		// the summary would interleave with the fixture on stdout
		out := summary
		if cfg.Output == "" {
			out = os.Stderr
		}
		if err = printSummary(out, fixture); err != nil {
			return err
		}
	}

	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Noticef("Filled %d scenarios in %vh %vm %vs", len(fixture), hours, minutes, seconds)
	return nil
}

// printSummary renders one row per scenario of f.
func printSummary(w io.Writer, f filler.Fixture) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Scenario", "Accounts", "Expectations", "Networks", "Sender"})
	for _, name := range f.Names() {
		pre, err := f.Pre(name)
		if err != nil {
			return err
		}
		expectations, err := f.Expectations(name)
		if err != nil {
			return err
		}
		var networks []string
		for _, e := range expectations {
			if list, ok := e["networks"].([]string); ok {
				networks = append(networks, list...)
			}
		}
		sender := "-"
		if group := f[name].Sub("transaction"); group != nil {
			addr, err := filler.Sender(group)
			if err != nil {
				return errors.Wrapf(err, "scenario %q", name)
			}
			sender = addr.Hex()
		}
		t.AppendRow(table.Row{name, len(pre), len(expectations), strings.Join(uniqueSorted(networks), ","), sender})
	}
	t.AppendFooter(table.Row{"Total", "", "", "", len(f)})
	t.Render()
	return nil
}

func uniqueSorted(values []string) []string {
	res := slices.Clone(values)
	slices.Sort(res)
	return slices.Compact(res)
}
