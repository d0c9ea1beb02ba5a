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
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
)

// writeOutput writes data to path, or to stdout if path is empty. Paths
// ending with .gz are gzip-compressed.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create %s", path)
	}

	var (
		w      io.Writer = file
		closer io.Closer = file
	)
	if strings.HasSuffix(path, ".gz") {
		gzipWriter := gzip.NewWriter(file)
		w = gzipWriter
		closer = multiCloser{gzipWriter, file}
	}

	buffer := bufio.NewWriter(w)
	_, err = buffer.Write(data)
	return errors.CombineErrors(err, errors.CombineErrors(buffer.Flush(), closer.Close()))
}

// multiCloser closes its members in order.
type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var err error
	for _, c := range m {
		err = errors.CombineErrors(err, c.Close())
	}
	return err
}
