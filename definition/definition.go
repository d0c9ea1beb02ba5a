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

// Package definition reads scenario definitions from YAML documents and
// fills them into fixtures.
package definition

import (
	"bytes"
	"io"
	"os"

	"github.com/0xsoniclabs/aida-filler/compiler"
	"github.com/0xsoniclabs/aida-filler/filler"
	"github.com/0xsoniclabs/aida-filler/logger"
	"github.com/0xsoniclabs/aida-filler/mapping"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Definition is one scenario as written by a test author.
type Definition struct {
	// Name uniquely identifies the scenario within one fill run.
	Name string `yaml:"name"`

	// Main merges Env over the main network default environment.
	Main bool `yaml:"main"`

	Env Section `yaml:"env,omitempty"`

	// Pre holds world state fragments, merged in order.
	Pre []Section `yaml:"pre,omitempty"`

	Exec Section `yaml:"exec,omitempty"`

	Expect []ExpectDefinition `yaml:"expect,omitempty"`
}

// ExpectDefinition is one expected outcome of a scenario.
type ExpectDefinition struct {
	Post        Section  `yaml:"post,omitempty"`
	Networks    []string `yaml:"networks,omitempty"`
	Transaction Section  `yaml:"transaction,omitempty"`
}

// Section is a mapping read from YAML in which integer and float scalars keep
// their literal text. Unquoted hex literals such as 0x6001 stay byte strings
// and decimals beyond 64 bits keep their precision; the normalizers decide
// what each value means.
type Section mapping.Map

func (s *Section) UnmarshalYAML(node *yaml.Node) error {
	value, err := literal(node)
	if err != nil {
		return err
	}
	if value == nil {
		*s = nil
		return nil
	}
	m, ok := value.(mapping.Map)
	if !ok {
		return errors.Newf("line %d: expected a mapping", node.Line)
	}
	*s = Section(m)
	return nil
}

// Map returns s as a plain mapping.
func (s Section) Map() mapping.Map {
	return mapping.Map(s)
}

func literal(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return literal(node.Content[0])
	case yaml.AliasNode:
		return literal(node.Alias)
	case yaml.MappingNode:
		res := make(mapping.Map, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, errors.Newf("line %d: mapping keys must be scalars", key.Line)
			}
			value, err := literal(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			res[key.Value] = value
		}
		return res, nil
	case yaml.SequenceNode:
		res := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			value, err := literal(item)
			if err != nil {
				return nil, err
			}
			res = append(res, value)
		}
		return res, nil
	}
	switch node.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!str", "!!int", "!!float":
		return node.Value, nil
	}
	var value any
	if err := node.Decode(&value); err != nil {
		return nil, errors.Wrapf(err, "line %d", node.Line)
	}
	return value, nil
}

// Parse reads all YAML documents of r as definitions.
func Parse(r io.Reader) ([]*Definition, error) {
	decoder := yaml.NewDecoder(r)
	var res []*Definition
	for {
		def := new(Definition)
		err := decoder.Decode(def)
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "cannot decode definition %d", len(res))
		}
		if def.Name == "" {
			return nil, errors.Newf("definition %d has no name", len(res))
		}
		res = append(res, def)
	}
}

// LoadFile reads all definitions of a YAML file.
func LoadFile(path string) ([]*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read %s", path)
	}
	defs, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return defs, nil
}

// Steps returns the composition steps described by d, in the order they are
// applied: pre-state, execution, expectations.
func (d *Definition) Steps(c compiler.Compiler) []filler.Step {
	var steps []filler.Step
	if len(d.Pre) > 0 {
		fragments := make([]mapping.Map, 0, len(d.Pre))
		for _, fragment := range d.Pre {
			fragments = append(fragments, fragment.Map())
		}
		steps = append(steps, filler.WithPreState(fragments...))
	}
	if d.Exec != nil {
		steps = append(steps, filler.WithExecution(d.Exec.Map(), c))
	}
	for _, e := range d.Expect {
		steps = append(steps, filler.WithExpectation(filler.Expectation{
			PostState:   e.Post.Map(),
			Networks:    e.Networks,
			Transaction: e.Transaction.Map(),
		}))
	}
	return steps
}

// Fill builds the fixture of d.
func (d *Definition) Fill(c compiler.Compiler, log logger.Logger) (filler.Fixture, error) {
	setup := filler.Setup
	if d.Main {
		setup = filler.SetupMain
	}
	f, err := setup(d.Name, d.Env.Map())
	if err != nil {
		return nil, err
	}
	steps := d.Steps(c)
	log.Debugf("Filling %s: %d pre-state fragments, %d expectations, %d steps", d.Name, len(d.Pre), len(d.Expect), len(steps))
	return filler.Apply(f, steps...)
}
