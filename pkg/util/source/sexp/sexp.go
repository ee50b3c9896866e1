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
	"strconv"
	"strings"
	"unicode"

	"github.com/consensys/go-smtx/pkg/util/source"
)

// SExp is an S-Expression is either a List of zero or more S-Expressions, or
// a Symbol.  Every S-Expression produced by the parser remembers where it came
// from in the original text.
type SExp interface {
	// AsList checks whether this S-Expression is a list and, if
	// so, returns it.  Otherwise, it returns nil.
	AsList() *List
	// AsSymbol checks whether this S-Expression is a symbol and,
	// if so, returns it.  Otherwise, it returns nil.
	AsSymbol() *Symbol
	// Span returns the characters of the original text covered by this
	// S-Expression.
	Span() source.Span
	// Range returns the line / offset positions of the first and last
	// characters of this S-Expression.  For lists, these are the enclosing
	// brackets.
	Range() source.Range
	// String generates a string representation which may (may not) be quoted.
	// Quoting is used to manage symbol names which contain whitespace
	// characters and braces, etc.
	String(quote bool) string
}

// ===================================================================
// List
// ===================================================================

// List represents a list of zero or more S-Expressions.
type List struct {
	Elements []SExp
	span     source.Span
	rng      source.Range
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ SExp = (*List)(nil)

// AsList returns the given list.
func (l *List) AsList() *List { return l }

// AsSymbol returns nil for a list.
func (l *List) AsSymbol() *Symbol { return nil }

// Span returns the characters covered by this list, including its brackets.
func (l *List) Span() source.Span { return l.span }

// Range returns the positions of the opening and closing brackets.
func (l *List) Range() source.Range { return l.rng }

// Len gets the number of elements in this list.
func (l *List) Len() int { return len(l.Elements) }

// Get the ith element of this list
func (l *List) Get(i int) SExp { return l.Elements[i] }

// Append a new element onto this list.
func (l *List) Append(element SExp) {
	l.Elements = append(l.Elements, element)
}

func (l *List) String(quote bool) string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	//
	for i := 0; i < len(l.Elements); i++ {
		if i != 0 {
			builder.WriteString(" ")
		}

		builder.WriteString(l.Elements[i].String(quote))
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

// ===================================================================
// Symbol
// ===================================================================

// Symbol represents a terminating symbol.  The value is kept exactly as it
// appeared in the original text, including any quotes and escapes.
type Symbol struct {
	Value string
	span  source.Span
	rng   source.Range
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ SExp = (*Symbol)(nil)

// NewSymbol creates a new symbol from a given string.  The symbol does not
// originate from any source text.
func NewSymbol(value string) *Symbol {
	return &Symbol{value, source.Span{}, source.NoRange}
}

// AsList returns nil for a symbol.
func (s *Symbol) AsList() *List { return nil }

// AsSymbol returns the given symbol
func (s *Symbol) AsSymbol() *Symbol { return s }

// Span returns the characters covered by this symbol.
func (s *Symbol) Span() source.Span { return s.span }

// Range returns the positions of the first and last characters of this symbol.
func (s *Symbol) Range() source.Range { return s.rng }

func (s *Symbol) String(quote bool) string {
	if quote && !IsPlainSymbol(s.Value) {
		return strconv.Quote(s.Value)
	}
	// No quote required
	return s.Value
}

// IsPlainSymbol checks whether a given string can be written as a symbol
// without quoting.  That is, it is non-empty, contains no whitespace, brackets,
// escapes or quotes.
func IsPlainSymbol(value string) bool {
	if value == "" {
		return false
	}
	//
	for _, r := range value {
		if !isSymbolLetter(r) || r == '"' || r == '\\' {
			return false
		}
	}
	//
	return true
}

func isSymbolLetter(r rune) bool {
	return r != '(' && r != ')' && !unicode.IsSpace(r)
}
