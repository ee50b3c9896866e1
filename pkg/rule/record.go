// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package rule

import (
	"fmt"
	"os"
	"path"

	"github.com/consensys/go-smtx/pkg/condition"
	"github.com/segmentio/encoding/json"
	"gopkg.in/yaml.v3"
)

// Params holds the parameters of a rule.  Each rule uses only those it needs.
type Params struct {
	// Direction to move a node (LEFT or RIGHT)
	Direction string `json:"direction,omitempty" yaml:"direction,omitempty"`
	// Text (or pattern) to be replaced
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	// Replacement text
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
	// Whether source is a regular expression
	Regex bool `json:"regex,omitempty" yaml:"regex,omitempty"`
}

// Record describes the application of a rule in a form which can be replayed
// on other nodes, or other formulas.
type Record struct {
	// Name of the rule to apply
	Action string
	// Parameters given to the rule
	Params Params
	// Condition under which the rule applies to a given node
	Condition condition.Condition
}

func (r Record) String() string {
	return fmt.Sprintf("%s %+v %s", r.Action, r.Params, condition.String(r.Condition))
}

// Serialised form of a record, where the condition is written as an
// S-Expression.
type wireRecord struct {
	Action    string `json:"action" yaml:"action"`
	Params    Params `json:"params" yaml:"params"`
	Condition string `json:"condition" yaml:"condition"`
}

func (r Record) toWire() wireRecord {
	return wireRecord{r.Action, r.Params, condition.String(r.Condition)}
}

func (r *Record) fromWire(w wireRecord) error {
	cond, err := condition.Parse(w.Condition)
	if err != nil {
		return fmt.Errorf("invalid condition for %s: %w", w.Action, err)
	}
	//
	*r = Record{w.Action, w.Params, cond}
	//
	return nil
}

// MarshalJSON implementation for json.Marshaler interface.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.toWire())
}

// UnmarshalJSON implementation for json.Unmarshaler interface.
func (r *Record) UnmarshalJSON(bytes []byte) error {
	var w wireRecord
	//
	if err := json.Unmarshal(bytes, &w); err != nil {
		return err
	}
	//
	return r.fromWire(w)
}

// MarshalYAML implementation for yaml.Marshaler interface.
func (r Record) MarshalYAML() (any, error) {
	return r.toWire(), nil
}

// UnmarshalYAML implementation for yaml.Unmarshaler interface.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	var w wireRecord
	//
	if err := node.Decode(&w); err != nil {
		return err
	}
	//
	return r.fromWire(w)
}

// Stack is an ordered sequence of records, which are replayed in order.
type Stack []Record

// Format identifies an encoding of a rule stack.
type Format uint8

const (
	// JSON_FORMAT is the default encoding of rule stacks.
	JSON_FORMAT Format = iota
	// YAML_FORMAT encodes rule stacks in YAML.
	YAML_FORMAT
)

// FormatOf determines the format of a rule stack file from its extension.
// Anything other than .yaml or .yml is assumed to be JSON.
func FormatOf(filename string) Format {
	switch path.Ext(filename) {
	case ".yaml", ".yml":
		return YAML_FORMAT
	default:
		return JSON_FORMAT
	}
}

// EncodeStack encodes a given rule stack in a given format.
func EncodeStack(stack Stack, format Format) ([]byte, error) {
	// Always write a list, even when empty
	if stack == nil {
		stack = Stack{}
	}
	//
	if format == YAML_FORMAT {
		return yaml.Marshal(stack)
	}
	//
	return json.MarshalIndent(stack, "", "  ")
}

// DecodeStack decodes a rule stack from bytes in a given format.
func DecodeStack(bytes []byte, format Format) (Stack, error) {
	var (
		stack Stack
		err   error
	)
	//
	if format == YAML_FORMAT {
		err = yaml.Unmarshal(bytes, &stack)
	} else {
		err = json.Unmarshal(bytes, &stack)
	}
	//
	if err != nil {
		return nil, err
	}
	//
	return stack, nil
}

// LoadStack reads a rule stack from a given file, whose format is determined
// by its extension.
func LoadStack(filename string) (Stack, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	stack, err := DecodeStack(bytes, FormatOf(filename))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	return stack, nil
}

// SaveStack writes a rule stack to a given file, whose format is determined by
// its extension.
func SaveStack(filename string, stack Stack) error {
	bytes, err := EncodeStack(stack, FormatOf(filename))
	if err != nil {
		return err
	}
	//
	return os.WriteFile(filename, bytes, 0644)
}
