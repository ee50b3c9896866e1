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
package render

import (
	"testing"

	"github.com/consensys/go-smtx/pkg/ast"
	"github.com/consensys/go-smtx/pkg/util/termio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_00(t *testing.T) {
	checkRender(t, "(and (< x y) p)", "(and (< x y) p)")
}

func TestRender_01(t *testing.T) {
	checkRender(t, "  (and\n (< x y)\n\t p)  ", "(and (< x y) p)")
}

func TestRender_02(t *testing.T) {
	checkRender(t, "(f x (g y))", "(f x (g y))")
}

func TestRender_03(t *testing.T) {
	// Singleton lists are not bracketed
	checkRender(t, "(and ((p q)) r)", "(and (p q) r)")
}

func TestRender_04(t *testing.T) {
	checkRender(t, "(p)", "(p)")
}

func TestRender_05(t *testing.T) {
	checkRender(t, "(and () p)", "(and () p)")
}

func TestRender_06(t *testing.T) {
	checkRender(t, "(assert (not p))", "(assert (not p))")
}

func TestRender_07(t *testing.T) {
	checkRender(t, `(= s "a b")`, `(= s "a b")`)
}

func TestRender_08(t *testing.T) {
	checkRender(t, "(and)", "(and)")
}

func TestRender_09(t *testing.T) {
	checkRender(t, "((g) x)", "((g) x)")
	checkRender(t, "(or (f) p)", "(or (f) p)")
}

func TestRender_10(t *testing.T) {
	// Singleton root list
	checkRender(t, "((p q))", "((p q))")
}

func TestRender_Subtree_00(t *testing.T) {
	tree := parse(t, "(and (< x y) p)")
	//
	assert.Equal(t, "(< x y)", Render(tree, 1, NO_HIGHLIGHT))
	assert.Equal(t, "y", Render(tree, 3, NO_HIGHLIGHT))
}

func TestRender_Bracket_00(t *testing.T) {
	tree := parse(t, "(and (< x y) p)")
	tree.Node(1).ShouldInBracket = false
	//
	assert.Equal(t, "(and < x y p)", Render(tree, 0, NO_HIGHLIGHT))
}

func TestRender_Bracket_01(t *testing.T) {
	tree := parse(t, "(not p)")
	tree.Node(0).ShouldInBracket = false
	//
	assert.Equal(t, "not p", Render(tree, 0, NO_HIGHLIGHT))
}

func TestRender_Break_00(t *testing.T) {
	tree := parse(t, "(and (< x y) p)")
	tree.Node(1).ShouldBreak = true
	tree.Node(4).ShouldBreak = true
	//
	assert.Equal(t, "(and \n\t(< x y) \n\tp)", Render(tree, 0, NO_HIGHLIGHT))
}

func TestRender_Break_01(t *testing.T) {
	tree := parse(t, "(and (< x y) p)")
	tree.Node(3).ShouldBreak = true
	//
	renderer := &Renderer{"  ", NoMarker{}}
	assert.Equal(t, "(and (< x \n    y) p)", renderer.Render(tree, 0, NO_HIGHLIGHT))
}

func TestRender_Break_02(t *testing.T) {
	tree := parse(t, "(and p q)")
	tree.Node(0).ShouldBreak = true
	//
	assert.Equal(t, "\n(and p q)", Render(tree, 0, NO_HIGHLIGHT))
}

func TestRender_Highlight_00(t *testing.T) {
	tree := parse(t, "(and (< x y) p)")
	//
	assert.Equal(t, `(and <span class="highlighted">(< x y)</span> p)`, Render(tree, 0, 1))
	assert.Equal(t, `(and (< <span class="highlighted">x</span> y) p)`, Render(tree, 0, 2))
	assert.Equal(t, `<span class="highlighted">(and (< x y) p)</span>`, Render(tree, 0, 0))
}

func TestRender_Highlight_01(t *testing.T) {
	tree := parse(t, "(and p q)")
	tree.Node(2).ShouldBreak = true
	// Line break precedes the highlight
	assert.Equal(t, "(and p \n\t<span class=\"highlighted\">q</span>)", Render(tree, 0, 2))
}

func TestRender_Highlight_02(t *testing.T) {
	var (
		tree     = parse(t, "(and p q)")
		renderer = &Renderer{"\t", NewAnsiMarker()}
		open     = termio.BoldAnsiEscape().FgColour(termio.TERM_YELLOW).Build()
		closed   = termio.ResetAnsiEscape().Build()
	)
	//
	assert.Equal(t, "(and "+open+"p"+closed+" q)", renderer.Render(tree, 0, 1))
}

func TestRender_Highlight_03(t *testing.T) {
	tree := parse(t, "(and p q)")
	renderer := &Renderer{"\t", NoMarker{}}
	//
	assert.Equal(t, "(and p q)", renderer.Render(tree, 0, 1))
}

func parse(t *testing.T, text string) *ast.AST {
	tree, err := ast.Parse(text)
	require.NoError(t, err)
	//
	return tree
}

func checkRender(t *testing.T, input string, expected string) {
	tree := parse(t, input)
	assert.Equal(t, expected, Render(tree, tree.Root(), NO_HIGHLIGHT))
	// Rendering is stable
	again := parse(t, expected)
	assert.Equal(t, expected, Render(again, again.Root(), NO_HIGHLIGHT))
}
