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
package source

import (
	"fmt"
)

// Span represents a contiguous slice of the original string.  Instead of
// representing this as a string slice, however, it is useful to retain the
// physical indices.  This allows us to do certain things, such as determine the
// enclosing line, etc.
type Span struct {
	// The first character of this span in the original string.
	start int
	// One past the final character of this span in the original string.
	end int
}

// NewSpan constructs a new span whilst checking the internal invariants are
// maintained.
func NewSpan(start int, end int) Span {
	if start > end {
		panic("invalid span")
	}

	return Span{start, end}
}

// Start returns the starting index of this span in the original string.
func (p *Span) Start() int {
	return p.start
}

// End returns one past the last index of this span in the original string.
func (p *Span) End() int {
	return p.end
}

// Length returns the number of characters covered by this span in the original
// string.
func (p *Span) Length() int {
	return p.end - p.start
}

// Position identifies a single character by its line and its offset within
// that line.  Both are counted from 0.
type Position struct {
	Line   int
	Offset int
}

// Compare positions lexicographically, returning a negative number when p
// comes before q, zero when they are equal and a positive number otherwise.
func (p Position) Compare(q Position) int {
	if p.Line != q.Line {
		return p.Line - q.Line
	}
	//
	return p.Offset - q.Offset
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Offset)
}

// Range identifies a region of text between two positions, where both ends are
// inclusive.  That is, End is the position of the last character covered.
type Range struct {
	Start Position
	End   Position
}

// NoRange is used for nodes which do not originate from any source text.
var NoRange = Range{Position{-1, -1}, Position{-1, -1}}

// IsValid checks whether this range originates from some source text.
func (r Range) IsValid() bool {
	return r.Start.Line >= 0 && r.End.Line >= 0
}

// Contains checks whether a given position lies within this range, comparing
// lines before offsets.
func (r Range) Contains(p Position) bool {
	return r.IsValid() && r.Start.Compare(p) <= 0 && p.Compare(r.End) <= 0
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start.String(), r.End.String())
}
