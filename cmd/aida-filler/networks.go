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
	"fmt"
	"io"
	"os"

	"github.com/0xsoniclabs/aida-filler/normalize"
	"github.com/urfave/cli/v2"
)

// NetworksCommand prints the fork names expectations may refer to.
var NetworksCommand = cli.Command{
	Action: networksAction,
	Name:   "networks",
	Usage:  "lists the network names accepted by expectations",
}

func networksAction(ctx *cli.Context) error {
	if ctx.Args().Len() != 0 {
		return fmt.Errorf("command %s takes no arguments", ctx.Command.Name)
	}
	return printNetworks(os.Stdout)
}

func printNetworks(w io.Writer) error {
	for _, network := range normalize.KnownNetworks() {
		if _, err := fmt.Fprintln(w, network); err != nil {
			return err
		}
	}
	return nil
}
