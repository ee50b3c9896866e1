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
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/consensys/go-smtx/pkg/ast"
	"github.com/consensys/go-smtx/pkg/condition"
	"github.com/consensys/go-smtx/pkg/render"
	"github.com/consensys/go-smtx/pkg/rule"
	"github.com/consensys/go-smtx/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var squashThenMove = rule.Stack{
	{Action: rule.SQUASH_NEGATION, Condition: condition.True{}},
	{Action: rule.MOVE, Params: rule.Params{Direction: rule.LEFT}, Condition: condition.TokenEquals{Token: "x"}},
}

func TestReplay_00(t *testing.T) {
	// Negations are squashed before anything is moved
	checkReplay(t, squashThenMove, "(+ y (not (not x)))", "(+ x y)")
}

func TestReplay_01(t *testing.T) {
	// Moves under a comparison are skipped
	checkReplay(t, squashThenMove, "(and (not (> x 1)) z)", "(and (<= x 1) z)")
}

func TestReplay_02(t *testing.T) {
	checkReplay(t, squashThenMove, "(and (not (not (not (< a b)))) (* y z x))", "(and (>= a b) (* x y z))")
}

func TestReplay_03(t *testing.T) {
	checkReplay(t, nil, "(and (not (not p)) q)", "(and (not (not p)) q)")
}

func TestReplay_04(t *testing.T) {
	stack := rule.Stack{
		{Action: rule.CHANGE_BREAK, Condition: condition.NewAnd(condition.DepthEquals{Depth: 1},
			condition.FlagEquals{Flag: condition.BREAK, Value: false})},
	}
	// Each node at depth one is broken exactly once
	checkReplay(t, stack, "(and (< x y) p q)", "(and \n\t(< x y) \n\tp \n\tq)")
}

func TestReplay_05(t *testing.T) {
	stack := rule.Stack{
		{Action: rule.REPLACE, Params: rule.Params{Source: "tmp_", Target: ""}, Condition: condition.True{}},
	}
	// Only the first occurrence per token is replaced on each rewrite
	checkReplay(t, stack, "(= tmp_tmp_a b)", "(= a b)")
}

func TestReplay_06(t *testing.T) {
	// Replaying a recorded application on another formula
	example := parse(t, "(and (< x y) q)")
	//
	changed, _, record, err := rule.Apply(rule.FLIP_CMP, 1, example, rule.Params{})
	require.NoError(t, err)
	require.True(t, changed)
	//
	checkReplay(t, rule.Stack{record}, "(or (< a b) (and (< c d) r))", "(or (>= b a) (and (< c d) r))")
}

func TestReplay_07(t *testing.T) {
	level := log.GetLevel()
	log.SetLevel(log.DebugLevel)
	//
	defer log.SetLevel(level)
	// Rewrites are validated at debug level
	checkReplay(t, squashThenMove, "(* (not (not y)) (not (not z)) x)", "(* x y z)")
}

func TestReplay_08(t *testing.T) {
	var (
		operands = make([]string, 2000)
		stack    = rule.Stack{
			{Action: rule.CHANGE_BREAK, Condition: condition.NewAnd(condition.DepthEquals{Depth: 1},
				condition.FlagEquals{Flag: condition.BREAK, Value: false})},
		}
	)
	//
	for i := range operands {
		operands[i] = fmt.Sprintf("x%d", i)
	}
	//
	tree := parse(t, fmt.Sprintf("(and %s)", strings.Join(operands, " ")))
	start := time.Now()
	result, err := Run(tree, stack)
	// Each rewrite copies the arena at most once
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 10*time.Second)
	//
	for _, child := range result.Node(result.Root()).Children {
		assert.True(t, result.Node(child).ShouldBreak)
	}
	//
	assert.Len(t, result.Node(result.Root()).Children, len(operands))
}

func TestReplay_Err_00(t *testing.T) {
	// Flipping an equality never reaches a fixpoint
	stack := rule.Stack{{Action: rule.FLIP_CMP, Condition: condition.True{}}}
	//
	tree := parse(t, "(= a b)")
	result, err := NewEngine(10).Run(tree, stack)
	//
	assert.ErrorIs(t, err, ErrNoFixpoint)
	require.NotNil(t, result)
	assert.NoError(t, result.Validate())
}

func TestReplay_Err_01(t *testing.T) {
	stack := rule.Stack{
		{Action: rule.SQUASH_NEGATION, Condition: condition.True{}},
		{Action: "simplify", Condition: condition.True{}},
	}
	//
	_, err := Run(parse(t, "(not (not p))"), stack)
	assert.ErrorIs(t, err, rule.ErrUnknownRule)
}

func TestReplay_Err_02(t *testing.T) {
	stack := rule.Stack{{Action: rule.REPLACE, Condition: condition.True{}}}
	//
	_, err := Run(parse(t, "(not p)"), stack)
	assert.ErrorIs(t, err, rule.ErrInvalidParams)
}

func TestReplay_Err_03(t *testing.T) {
	stack := rule.Stack{{Action: rule.MOVE, Params: rule.Params{Direction: "up"}, Condition: condition.True{}}}
	//
	_, err := Run(parse(t, "(+ x y)"), stack)
	assert.ErrorIs(t, err, rule.ErrInvalidParams)
}

func TestRunAll_00(t *testing.T) {
	var (
		file     = source.NewSourceFile("batch.smt", []byte("(+ y (not (not x)))\n\n(and (not (> x 1)\n  z)\n\n\n(or (not (< x y)) x)\n"))
		formulas = file.SplitFormulas()
		results  = NewEngine(DEFAULT_MAX_REWRITES).RunAll(formulas, squashThenMove)
	)
	//
	require.Len(t, results, 3)
	// First formula
	assert.NoError(t, results[0].Err)
	assert.Equal(t, "batch.smt#1", results[0].Source.Filename())
	assert.Equal(t, "(+ x y)", render.Render(results[0].Tree, results[0].Tree.Root(), render.NO_HIGHLIGHT))
	// Second formula is malformed
	assert.Error(t, results[1].Err)
	assert.Nil(t, results[1].Tree)
	// Third formula
	assert.NoError(t, results[2].Err)
	assert.Equal(t, "(or x (>= x y))", render.Render(results[2].Tree, results[2].Tree.Root(), render.NO_HIGHLIGHT))
}

func parse(t *testing.T, text string) *ast.AST {
	tree, err := ast.Parse(text)
	require.NoError(t, err)
	//
	return tree
}

// Check replaying a stack over a formula gives the expected rendering, and
// leaves the original AST untouched.
func checkReplay(t *testing.T, stack rule.Stack, input string, expected string) {
	tree := parse(t, input)
	//
	result, err := Run(tree, stack)
	require.NoError(t, err)
	assert.Equal(t, expected, render.Render(result, result.Root(), render.NO_HIGHLIGHT))
	assert.NoError(t, result.Validate())
	assert.Equal(t, input, render.Render(tree, tree.Root(), render.NO_HIGHLIGHT))
}
