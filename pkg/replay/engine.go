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
package replay

import (
	"errors"
	"fmt"

	"github.com/consensys/go-smtx/pkg/ast"
	"github.com/consensys/go-smtx/pkg/condition"
	"github.com/consensys/go-smtx/pkg/rule"
	"github.com/consensys/go-smtx/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// ErrNoFixpoint is reported when a rule keeps rewriting an AST beyond the
// maximum number of rewrites permitted.
var ErrNoFixpoint = errors.New("fixpoint not reached")

// DEFAULT_MAX_REWRITES is the default limit on the number of times a single
// rule can rewrite an AST during replay.
const DEFAULT_MAX_REWRITES = uint(10_000)

// Engine replays a stack of rules over an AST.  Each rule is applied
// repeatedly until it no longer changes anything (i.e. it reaches a fixpoint)
// before moving on to the next rule.
type Engine struct {
	maxRewrites uint
}

// NewEngine constructs an engine permitting at most a given number of
// rewrites per rule.
func NewEngine(maxRewrites uint) *Engine {
	return &Engine{maxRewrites}
}

// Run a given stack of rules over a given AST using the default limit.
func Run(tree *ast.AST, stack rule.Stack) (*ast.AST, error) {
	return NewEngine(DEFAULT_MAX_REWRITES).Run(tree, stack)
}

// Run a given stack of rules over a given AST.  For each rule in turn, the
// live nodes are scanned in arena order and the rule is applied to the first
// node where it changes something.  Scanning then restarts from the beginning
// of the (new) AST with the same rule.  Only once a complete scan changes
// nothing does the next rule begin.  If a rule exceeds the permitted number of
// rewrites, then ErrNoFixpoint is returned along with the AST reached so far.
func (p *Engine) Run(tree *ast.AST, stack rule.Stack) (*ast.AST, error) {
	for i, record := range stack {
		if _, ok := rule.Lookup(record.Action); !ok {
			return tree, fmt.Errorf("rule %d: %w \"%s\"", i, rule.ErrUnknownRule, record.Action)
		}
		//
		var rewrites uint
		//
		for {
			changed, next, err := scan(record, tree)
			if err != nil {
				return tree, fmt.Errorf("rule %d (%s): %w", i, record.Action, err)
			} else if !changed {
				break
			} else if rewrites++; rewrites > p.maxRewrites {
				return tree, fmt.Errorf("rule %d (%s): %w after %d rewrites", i, record.Action, ErrNoFixpoint, p.maxRewrites)
			}
			// Validate every rewrite when debugging
			if log.IsLevelEnabled(log.DebugLevel) {
				if err := next.Validate(); err != nil {
					return tree, fmt.Errorf("rule %d (%s) produced malformed AST: %w", i, record.Action, err)
				}
			}
			//
			tree = next
		}
		//
		log.Debugf("rule %d (%s) reached fixpoint after %d rewrite(s)", i, record.Action, rewrites)
	}
	//
	return tree, nil
}

// Apply a rule to the first live node on which it changes something.  Nodes
// failing the condition of the rule are skipped without running it, as are
// nodes whose parent cannot be reordered.
func scan(record rule.Record, tree *ast.AST) (bool, *ast.AST, error) {
	for _, id := range tree.Live() {
		if !condition.Holds(record.Condition, tree, id) {
			continue
		}
		//
		changed, next, err := rule.Run(record, id, tree)
		//
		if errors.Is(err, rule.ErrUnsupportedReorder) {
			continue
		} else if err != nil {
			return false, tree, err
		} else if changed {
			return true, next, nil
		}
	}
	//
	return false, tree, nil
}

// Result holds the outcome of replaying a rule stack over a single formula.
type Result struct {
	// Formula which was replayed
	Source source.File
	// Final AST, or nil if the formula could not be parsed.
	Tree *ast.AST
	// Error arising from parsing or replaying, if any.
	Err error
}

// RunAll parses each of a given set of formulas independently, and replays a
// given stack over each.  Failures are reported per formula and do not prevent
// other formulas from being replayed.
func (p *Engine) RunAll(formulas []source.File, stack rule.Stack) []Result {
	var results = make([]Result, len(formulas))
	//
	for i := range formulas {
		var formula = &formulas[i]
		//
		log.Debugf("replaying %d rule(s) over %s", len(stack), formula.Filename())
		//
		tree, err := ast.ParseFile(formula)
		if err == nil {
			tree, err = p.Run(tree, stack)
		}
		//
		results[i] = Result{*formula, tree, err}
	}
	//
	return results
}
