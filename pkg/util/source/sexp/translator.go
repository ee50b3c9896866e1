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
	"fmt"
	"reflect"

	"github.com/consensys/go-smtx/pkg/util/source"
)

// SymbolRule is a symbol generator is responsible for converting a terminating
// expression (i.e. a symbol) into an expression type T.
type SymbolRule[T any] func(string) (T, bool, error)

// ListRule is a list translator is responsible converting a list with a given
// sequence of zero or more arguments into an expression type T.
type ListRule[T any] func(*List) (T, []source.SyntaxError)

// SymbolListRule is a wrapper for translating lists whose arguments must all
// be symbols, and of which there must be a fixed number.  The wrapper takes
// care of ensuring the right arguments are given.
type SymbolListRule[T any] func([]string) (T, error)

// RecursiveRule is a recursive translator is a wrapper for translating lists whose
// elements can be built by recursively reusing the enclosing
// translator.
type RecursiveRule[T any] func(string, []T) (T, error)

// ===================================================================
// Translator
// ===================================================================

// Translator is a generic mechanism for translating S-Expressions into a structured
// form.
type Translator[T any] struct {
	srcfile *source.File
	// Rules for parsing lists
	lists map[string]ListRule[T]
	// Rules for parsing symbols
	symbols []SymbolRule[T]
}

// NewTranslator constructs a new Translator instance.
func NewTranslator[T any](srcfile *source.File) *Translator[T] {
	return &Translator[T]{
		srcfile: srcfile,
		lists:   make(map[string]ListRule[T]),
		symbols: make([]SymbolRule[T], 0),
	}
}

// Translate a given S-Expression into a given structured representation T
// using an appropriately configured translator.
func (p *Translator[T]) Translate(sexp SExp) (T, []source.SyntaxError) {
	return translateSExp(p, sexp)
}

// AddRecursiveListRule adds a new list translator to this expression translator.
func (p *Translator[T]) AddRecursiveListRule(name string, t RecursiveRule[T]) {
	// Construct a recursive list translator as a wrapper around a generic list translator.
	p.lists[name] = func(l *List) (T, []source.SyntaxError) {
		var (
			empty  T
			errors []source.SyntaxError
		)
		// Extract expression name
		head := (l.Elements[0].(*Symbol)).Value
		// Translate arguments
		args := make([]T, len(l.Elements)-1)
		//
		for i, s := range l.Elements[1:] {
			var errs []source.SyntaxError
			args[i], errs = translateSExp(p, s)
			errors = append(errors, errs...)
		}
		// Check for error
		if len(errors) != 0 {
			return empty, errors
		}
		// Apply constructor
		term, err := t(head, args)
		if err != nil {
			return empty, p.SyntaxErrors(l, err.Error())
		}
		//
		return term, nil
	}
}

// AddSymbolListRule adds a rule for lists consisting of a head followed by
// exactly arity symbols.
func (p *Translator[T]) AddSymbolListRule(name string, arity int, t SymbolListRule[T]) {
	var empty T
	//
	p.lists[name] = func(l *List) (T, []source.SyntaxError) {
		if len(l.Elements) != arity+1 {
			msg := fmt.Sprintf("incorrect number of arguments (expected %d, found %d)", arity, len(l.Elements)-1)
			return empty, p.SyntaxErrors(l, msg)
		}
		//
		args := make([]string, arity)
		//
		for i, ith := range l.Elements[1:] {
			if sym := ith.AsSymbol(); sym != nil {
				args[i] = sym.Value
			} else {
				return empty, p.SyntaxErrors(ith, "expected symbol")
			}
		}
		//
		term, err := t(args)
		if err != nil {
			return empty, p.SyntaxErrors(l, err.Error())
		}
		//
		return term, nil
	}
}

// AddSymbolRule adds a new symbol translator to this expression translator.
func (p *Translator[T]) AddSymbolRule(t SymbolRule[T]) {
	p.symbols = append(p.symbols, t)
}

// SyntaxError constructs a suitable syntax error for a given S-Expression.
//
//nolint:revive
func (p *Translator[T]) SyntaxError(s SExp, msg string) *source.SyntaxError {
	return p.srcfile.SyntaxError(s.Span(), msg)
}

// SyntaxErrors constructs a suitable syntax error for a given S-Expression.
//
//nolint:revive
func (p *Translator[T]) SyntaxErrors(s SExp, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.SyntaxError(s, msg)}
}

// ===================================================================
// Private
// ===================================================================

func translateSExp[T any](p *Translator[T], s SExp) (T, []source.SyntaxError) {
	var empty T

	switch e := s.(type) {
	case *List:
		return translateSExpList(p, e)
	case *Symbol:
		for i := 0; i != len(p.symbols); i++ {
			node, ok, err := (p.symbols[i])(e.Value)
			if ok && err != nil {
				// Transform into syntax error
				return empty, p.SyntaxErrors(s, err.Error())
			} else if ok {
				return node, nil
			}
		}
		//
		return empty, p.SyntaxErrors(s, fmt.Sprintf("unknown symbol \"%s\"", e.Value))
	}
	// This should be unreachable.
	typeof := reflect.TypeOf(s)
	// But, if it is reached ... produce a nice error :)
	return empty, p.SyntaxErrors(s, fmt.Sprintf("invalid s-expression (%s)", typeof))
}

// Translate a list of S-Expressions whose kind is determined by the first
// element of the list.
func translateSExpList[T any](p *Translator[T], l *List) (T, []source.SyntaxError) {
	var empty T
	// Sanity check this list makes sense
	if len(l.Elements) == 0 || l.Elements[0].AsSymbol() == nil {
		return empty, p.SyntaxErrors(l, "invalid list")
	}
	// Extract expression name
	name := (l.Elements[0].(*Symbol)).Value
	// Lookup appropriate translator
	if t := p.lists[name]; t != nil {
		return t(l)
	}
	//
	return empty, p.SyntaxErrors(l, fmt.Sprintf("unknown list \"%s\"", name))
}
