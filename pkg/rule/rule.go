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
	"errors"
	"fmt"
	"slices"

	"github.com/consensys/go-smtx/pkg/ast"
	"github.com/consensys/go-smtx/pkg/condition"
)

// ErrUnknownRule is reported when a rule name is not in the catalog.
var ErrUnknownRule = errors.New("unknown rule")

// ErrUnsupportedReorder is reported when moving a node whose parent does not
// permit its operands to be reordered.
var ErrUnsupportedReorder = errors.New("parent does not support reordering")

// ErrInvalidParams is reported when the parameters given to a rule are
// missing or malformed.
var ErrInvalidParams = errors.New("invalid rule parameters")

// Names of the rules in the catalog.
const (
	SQUASH_NEGATION = "squashNegation"
	MOVE            = "move"
	FLIP_CMP        = "flipCmp"
	TO_IMP          = "toImp"
	REPLACE         = "replace"
	CHANGE_BREAK    = "changeBreak"
	CHANGE_BRACKET  = "changeBracket"
)

// Rule rewrites an AST at a given focus node, provided a given condition holds
// for that node.  A rule never mutates the AST it is given.  Instead, it
// returns a modified copy along with a flag indicating whether anything
// changed.  A rule which does not apply returns false along with the AST it
// was given, which is the normal "nothing to do here" outcome rather than a
// failure.  Rules only clone once they know they will change something.
type Rule func(focus ast.NodeID, tree *ast.AST, params Params, cond condition.Condition) (bool, *ast.AST, error)

var catalog = map[string]Rule{
	SQUASH_NEGATION: SquashNegation,
	MOVE:            Move,
	FLIP_CMP:        FlipCmp,
	TO_IMP:          ToImp,
	REPLACE:         Replace,
	CHANGE_BREAK:    ChangeBreak,
	CHANGE_BRACKET:  ChangeBracket,
}

// Lookup a rule by name in the catalog.
func Lookup(name string) (Rule, bool) {
	r, ok := catalog[name]
	return r, ok
}

// Names returns the names of all rules in the catalog, sorted alphabetically.
func Names() []string {
	var names []string
	//
	for name := range catalog {
		names = append(names, name)
	}
	//
	slices.Sort(names)
	//
	return names
}

// Run the rule described by a given record at a given focus node.
func Run(record Record, focus ast.NodeID, tree *ast.AST) (bool, *ast.AST, error) {
	r, ok := Lookup(record.Action)
	if !ok {
		return false, tree, fmt.Errorf("%w \"%s\"", ErrUnknownRule, record.Action)
	}
	//
	return r(focus, tree, record.Params, record.Condition)
}

// Apply a named rule at a given focus node unconditionally.  If this changes
// the AST, then a record of the application is also returned whose condition
// generalises the focus node, such that it can be replayed elsewhere.
func Apply(name string, focus ast.NodeID, tree *ast.AST, params Params) (bool, *ast.AST, Record, error) {
	var record = Record{name, params, condition.True{}}
	//
	changed, result, err := Run(record, focus, tree)
	//
	if err != nil || !changed {
		return false, result, Record{}, err
	}
	// Generalise using the focus as it was before the rewrite
	record.Condition = Generalize(name, focus, tree)
	//
	return true, result, record, nil
}

// Check the focus node is live and satisfies a given condition.
func prepare(focus ast.NodeID, tree *ast.AST, cond condition.Condition) bool {
	return tree.IsLive(focus) && condition.Holds(cond, tree, focus)
}
