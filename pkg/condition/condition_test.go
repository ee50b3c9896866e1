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
package condition

import (
	"testing"

	"github.com/consensys/go-smtx/pkg/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCondition_00(t *testing.T) {
	checkCondition(t, "(true)", True{})
}

func TestCondition_01(t *testing.T) {
	checkCondition(t, "(token x)", TokenEquals{"x"})
}

func TestCondition_02(t *testing.T) {
	checkCondition(t, `(token "a b")`, TokenEquals{"a b"})
}

func TestCondition_03(t *testing.T) {
	checkCondition(t, `(token "\"s\"")`, TokenEquals{`"s"`})
}

func TestCondition_04(t *testing.T) {
	checkCondition(t, "(depth 2)", DepthEquals{2})
}

func TestCondition_05(t *testing.T) {
	checkCondition(t, "(flag break false)", FlagEquals{BREAK, false})
}

func TestCondition_06(t *testing.T) {
	checkCondition(t, "(flag bracket true)", FlagEquals{BRACKET, true})
}

func TestCondition_07(t *testing.T) {
	checkCondition(t, "(and (token +) (depth 1))", And{TokenEquals{"+"}, DepthEquals{1}})
}

func TestCondition_08(t *testing.T) {
	checkCondition(t, "(and (token =>) (and (depth 0) (flag break true)))",
		NewAnd(TokenEquals{"=>"}, DepthEquals{0}, FlagEquals{BREAK, true}))
}

func TestCondition_09(t *testing.T) {
	// Legacy forms
	for _, text := range []string{"", "true", "  true "} {
		c, err := Parse(text)
		require.NoError(t, err)
		assert.Equal(t, True{}, c)
	}
}

func TestCondition_10(t *testing.T) {
	c, err := Parse("(and (token x) (depth 1) (true))")
	require.NoError(t, err)
	assert.Equal(t, NewAnd(TokenEquals{"x"}, DepthEquals{1}, True{}), c)
}

func TestCondition_11(t *testing.T) {
	assert.Equal(t, "(true)", String(nil))
	assert.Equal(t, TokenEquals{"x"}, NewAnd(TokenEquals{"x"}))
}

// ============================================================================
// Negative Tests
// ============================================================================

func TestCondition_Err_00(t *testing.T) {
	checkConditionErr(t, "(depth x)")
}

func TestCondition_Err_01(t *testing.T) {
	checkConditionErr(t, "(depth -1)")
}

func TestCondition_Err_02(t *testing.T) {
	checkConditionErr(t, "(flag colour true)")
}

func TestCondition_Err_03(t *testing.T) {
	checkConditionErr(t, "(flag break maybe)")
}

func TestCondition_Err_04(t *testing.T) {
	checkConditionErr(t, "(token a b)")
}

func TestCondition_Err_05(t *testing.T) {
	checkConditionErr(t, "(or (true) (true))")
}

func TestCondition_Err_06(t *testing.T) {
	checkConditionErr(t, "(and)")
}

func TestCondition_Err_07(t *testing.T) {
	checkConditionErr(t, "(token x")
}

func TestCondition_Err_08(t *testing.T) {
	checkConditionErr(t, "false")
}

func TestCondition_Err_09(t *testing.T) {
	checkConditionErr(t, "(token (x))")
}

// ============================================================================
// Holds
// ============================================================================

func TestHolds_00(t *testing.T) {
	tree := parse(t, "(and (< x y) p)")
	//
	assert.True(t, Holds(nil, tree, 2))
	assert.True(t, Holds(True{}, tree, 2))
	assert.True(t, Holds(TokenEquals{"<"}, tree, 1))
	assert.False(t, Holds(TokenEquals{"<"}, tree, 0))
	assert.True(t, Holds(DepthEquals{2}, tree, 3))
	assert.False(t, Holds(DepthEquals{1}, tree, 3))
	assert.True(t, Holds(And{TokenEquals{"p"}, DepthEquals{1}}, tree, 4))
	assert.False(t, Holds(And{TokenEquals{"p"}, DepthEquals{2}}, tree, 4))
}

func TestHolds_01(t *testing.T) {
	tree := parse(t, "(and p q)")
	tree.Node(1).ShouldBreak = true
	tree.Node(2).ShouldInBracket = false
	//
	assert.True(t, Holds(FlagEquals{BREAK, true}, tree, 1))
	assert.False(t, Holds(FlagEquals{BREAK, true}, tree, 2))
	assert.True(t, Holds(FlagEquals{BRACKET, false}, tree, 2))
	assert.True(t, Holds(FlagEquals{BRACKET, true}, tree, 0))
}

// ============================================================================
// Helpers
// ============================================================================

// Check a condition parses as expected, and that it prints back as the same
// text.
func checkCondition(t *testing.T, text string, expected Condition) {
	actual, err := Parse(text)
	require.NoError(t, err, text)
	assert.Equal(t, expected, actual)
	assert.Equal(t, text, actual.String())
}

func checkConditionErr(t *testing.T, text string) {
	c, err := Parse(text)
	assert.Error(t, err, "expected error for %s", text)
	assert.Nil(t, c)
}

func parse(t *testing.T, text string) *ast.AST {
	tree, err := ast.Parse(text)
	require.NoError(t, err)
	//
	return tree
}
