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
package sexp

import (
	"testing"

	"github.com/consensys/go-smtx/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSexp_00(t *testing.T) {
	CheckOk(t, "()", "()")
}

func TestSexp_01(t *testing.T) {
	CheckOk(t, "(())", "(())")
}

func TestSexp_02(t *testing.T) {
	CheckOk(t, "(+ 1)", "(+ 1)")
}

func TestSexp_03(t *testing.T) {
	CheckOk(t, "(hello (world))", "(hello (world))")
}

func TestSexp_04(t *testing.T) {
	CheckOk(t, "  \n (and  p\n\tq) \n", "(and p q)")
}

func TestSexp_05(t *testing.T) {
	CheckOk(t, `(= s "a b")`, `(= s "a b")`)
}

func TestSexp_06(t *testing.T) {
	CheckOk(t, `(= s "a \" (b")`, `(= s "a \" (b")`)
}

func TestSexp_07(t *testing.T) {
	CheckOk(t, `(f a\ b)`, `(f a\ b)`)
}

func TestSexp_08(t *testing.T) {
	CheckOk(t, "(|x|\r\ny)", "(|x| y)")
}

func TestSexp_09(t *testing.T) {
	// Deep nesting must not exhaust the stack
	var text string
	//
	for i := 0; i < 10_000; i++ {
		text += "("
	}
	//
	for i := 0; i < 10_000; i++ {
		text += ")"
	}
	//
	list, err := ParseString(text)
	require.Nil(t, err)
	assert.Equal(t, 1, list.Len())
}

// ============================================================================
// Positions
// ============================================================================

func TestSexp_Pos_00(t *testing.T) {
	list, err := ParseString("(+ x\n  y)")
	require.Nil(t, err)
	//
	assert.Equal(t, source.Range{Start: pos(0, 0), End: pos(1, 3)}, list.Range())
	assert.Equal(t, source.Range{Start: pos(0, 1), End: pos(0, 1)}, list.Get(0).Range())
	assert.Equal(t, source.Range{Start: pos(0, 3), End: pos(0, 3)}, list.Get(1).Range())
	assert.Equal(t, source.Range{Start: pos(1, 2), End: pos(1, 2)}, list.Get(2).Range())
}

func TestSexp_Pos_01(t *testing.T) {
	list, err := ParseString("(and (< xx y) p)")
	require.Nil(t, err)
	//
	inner := list.Get(1).AsList()
	require.NotNil(t, inner)
	//
	assert.Equal(t, source.Range{Start: pos(0, 5), End: pos(0, 12)}, inner.Range())
	assert.Equal(t, source.Range{Start: pos(0, 8), End: pos(0, 9)}, inner.Get(1).Range())
	span := inner.Span()
	assert.Equal(t, 5, span.Start())
	assert.Equal(t, 13, span.End())
}

// ============================================================================
// Negative Tests
// ============================================================================

func TestSexp_Err_00(t *testing.T) {
	CheckErr(t, "", "unexpected end-of-file", 0, 0)
}

func TestSexp_Err_01(t *testing.T) {
	CheckErr(t, ")", "expected '('", 0, 0)
}

func TestSexp_Err_02(t *testing.T) {
	CheckErr(t, "x", "expected '('", 0, 0)
}

func TestSexp_Err_03(t *testing.T) {
	CheckErr(t, "())", "unexpected remainder", 0, 2)
}

func TestSexp_Err_04(t *testing.T) {
	CheckErr(t, "(a) (b)", "unexpected remainder", 0, 4)
}

func TestSexp_Err_05(t *testing.T) {
	CheckErr(t, "(a\n (b c)\n (d", "unterminated list", 2, 1)
}

func TestSexp_Err_06(t *testing.T) {
	CheckErr(t, `(a "bc)`, "unterminated string", 0, 3)
}

func TestSexp_Err_07(t *testing.T) {
	CheckErr(t, `(a \`, "dangling escape", 0, 3)
}

// ============================================================================
// Symbols
// ============================================================================

func TestSexp_Symbol_00(t *testing.T) {
	assert.True(t, IsPlainSymbol("x"))
	assert.True(t, IsPlainSymbol("=>"))
	assert.False(t, IsPlainSymbol(""))
	assert.False(t, IsPlainSymbol("a b"))
	assert.False(t, IsPlainSymbol("(a"))
	assert.False(t, IsPlainSymbol(`"a"`))
}

func TestSexp_Symbol_01(t *testing.T) {
	assert.Equal(t, "x", NewSymbol("x").String(true))
	assert.Equal(t, `"a b"`, NewSymbol("a b").String(true))
	assert.Equal(t, "a b", NewSymbol("a b").String(false))
}

// ============================================================================
// Helpers
// ============================================================================

func CheckOk(t *testing.T, input string, expected string) {
	list, err := ParseString(input)
	//
	if err != nil {
		t.Fatalf("unexpected error parsing %q: %s", input, err.Error())
	}
	//
	assert.Equal(t, expected, list.String(false))
}

func CheckErr(t *testing.T, input string, msg string, line int, offset int) {
	_, err := ParseString(input)
	//
	if err == nil {
		t.Fatalf("expected error parsing %q", input)
	}
	//
	assert.Equal(t, msg, err.Message())
	assert.Equal(t, pos(line, offset), err.Position())
}

func pos(line int, offset int) source.Position {
	return source.Position{Line: line, Offset: offset}
}
