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
	"unicode"

	"github.com/consensys/go-smtx/pkg/util/collection/stack"
	"github.com/consensys/go-smtx/pkg/util/source"
)

// Parse a given source file into an S-expression, or return an error if the
// text is malformed.  The text must consist of exactly one list (optionally
// surrounded by whitespace), and that list is returned.
func Parse(s *source.File) (*List, *source.SyntaxError) {
	return NewParser(s).Parse()
}

// ParseString is a convenience wrapper around Parse for anonymous text.
func ParseString(text string) (*List, *source.SyntaxError) {
	return Parse(source.NewSourceString(text))
}

// Parser represents a parser in the process of parsing a given string into an
// S-expression.
type Parser struct {
	// Source file being parsed
	srcfile *source.File
	// Cache (for simplicity)
	text []rune
	// Determine current position within text
	index int
	// Line / offset of the character at index.
	pos source.Position
	// Line / offset of the most recently consumed character.
	last source.Position
}

// NewParser constructs a new instance of Parser
func NewParser(srcfile *source.File) *Parser {
	// Construct initial parser.
	return &Parser{
		srcfile: srcfile,
		text:    srcfile.Contents(),
		index:   0,
		pos:     source.Position{Line: 0, Offset: 0},
		last:    source.Position{Line: 0, Offset: 0},
	}
}

// Parse the text into a single list, or produce an error.
func (p *Parser) Parse() (*List, *source.SyntaxError) {
	// Skip over any leading whitespace.
	p.SkipWhiteSpace()
	//
	if p.index == len(p.text) {
		return nil, p.error("unexpected end-of-file")
	} else if p.text[p.index] != '(' {
		return nil, p.error("expected '('")
	}
	//
	list, err := p.parseList()
	if err != nil {
		return nil, err
	}
	// Sanity check everything was parsed
	p.SkipWhiteSpace()
	//
	if p.index != len(p.text) {
		return nil, p.error("unexpected remainder")
	}
	// Done
	return list, nil
}

// SkipWhiteSpace skips over any whitespace.
func (p *Parser) SkipWhiteSpace() {
	for p.index < len(p.text) && unicode.IsSpace(p.text[p.index]) {
		p.advance()
	}
}

// Parse a list starting at the current position, which is expected to hold an
// opening bracket.  Nested lists are tracked on an explicit stack, rather than
// by recursion, so that arbitrarily deep input cannot exhaust the goroutine
// stack.
func (p *Parser) parseList() (*List, *source.SyntaxError) {
	var (
		open   = stack.NewStack[*List]()
		starts = stack.NewStack[int]()
	)
	//
	for {
		p.SkipWhiteSpace()
		//
		if p.index == len(p.text) {
			// Report against the innermost unclosed list
			start := starts.Peek(0)
			return nil, p.srcfile.SyntaxError(source.NewSpan(start, start+1), "unterminated list")
		}
		//
		switch p.text[p.index] {
		case '(':
			open.Push(&List{rng: source.Range{Start: p.pos}})
			starts.Push(p.index)
			p.advance()
		case ')':
			p.advance()
			//
			list := open.Pop()
			list.span = source.NewSpan(starts.Pop(), p.index)
			list.rng.End = p.last
			//
			if open.IsEmpty() {
				return list, nil
			}
			//
			open.Peek(0).Append(list)
		default:
			symbol, err := p.parseSymbol()
			if err != nil {
				return nil, err
			}
			//
			open.Peek(0).Append(symbol)
		}
	}
}

// Parse a symbol, which is a maximal run of characters other than whitespace
// and brackets.  A backslash escapes the character following it, and a double
// quote begins a string which runs until the next unescaped double quote.
func (p *Parser) parseSymbol() (*Symbol, *source.SyntaxError) {
	var (
		start    = p.index
		startPos = p.pos
	)
	//
	for p.index < len(p.text) {
		c := p.text[p.index]
		//
		if c == '(' || c == ')' || unicode.IsSpace(c) {
			break
		} else if c == '\\' {
			if err := p.parseEscape(); err != nil {
				return nil, err
			}
		} else if c == '"' {
			if err := p.parseString(); err != nil {
				return nil, err
			}
		} else {
			p.advance()
		}
	}
	//
	span := source.NewSpan(start, p.index)
	value := string(p.text[start:p.index])
	//
	return &Symbol{value, span, source.Range{Start: startPos, End: p.last}}, nil
}

func (p *Parser) parseEscape() *source.SyntaxError {
	// Consume backslash
	p.advance()
	//
	if p.index == len(p.text) {
		return p.srcfile.SyntaxError(source.NewSpan(p.index-1, p.index), "dangling escape")
	}
	// Consume escaped character
	p.advance()
	//
	return nil
}

func (p *Parser) parseString() *source.SyntaxError {
	start := p.index
	// Consume opening quote
	p.advance()
	//
	for p.index < len(p.text) {
		switch p.text[p.index] {
		case '\\':
			if err := p.parseEscape(); err != nil {
				return err
			}
		case '"':
			p.advance()
			return nil
		default:
			p.advance()
		}
	}
	//
	return p.srcfile.SyntaxError(source.NewSpan(start, start+1), "unterminated string")
}

// Consume the character at the current position, updating the line / offset
// counters.  Offsets are reset on every newline.
func (p *Parser) advance() {
	p.last = p.pos
	//
	if p.text[p.index] == '\n' {
		p.pos = source.Position{Line: p.pos.Line + 1, Offset: 0}
	} else {
		p.pos.Offset++
	}
	//
	p.index++
}

// Construct a parser error at the current position in the input stream.
func (p *Parser) error(msg string) *source.SyntaxError {
	span := source.NewSpan(p.index, min(p.index+1, len(p.text)))
	return p.srcfile.SyntaxError(span, msg)
}
