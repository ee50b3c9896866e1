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
	"fmt"

	"github.com/consensys/go-smtx/pkg/ast"
	"github.com/consensys/go-smtx/pkg/util/source/sexp"
)

// Condition is a predicate over a node of an AST, which determines whether a
// recorded rule may be applied to that node.  Conditions form a closed set of
// variants, each of which can be written as an S-Expression (see String) and
// read back with Parse.
type Condition interface {
	// Holds checks whether this condition is satisfied by a given node of a
	// given AST.
	Holds(tree *ast.AST, id ast.NodeID) bool
	// String returns the S-Expression form of this condition.
	String() string
}

// Holds checks whether a given (possibly nil) condition is satisfied.  A nil
// condition always holds.
func Holds(c Condition, tree *ast.AST, id ast.NodeID) bool {
	return c == nil || c.Holds(tree, id)
}

// ============================================================================
// True
// ============================================================================

// True is satisfied by every node.
type True struct{}

// Holds implementation for Condition interface.
func (c True) Holds(tree *ast.AST, id ast.NodeID) bool {
	return true
}

func (c True) String() string {
	return "(true)"
}

// ============================================================================
// TokenEquals
// ============================================================================

// TokenEquals is satisfied by nodes with a given token.
type TokenEquals struct {
	Token string
}

// Holds implementation for Condition interface.
func (c TokenEquals) Holds(tree *ast.AST, id ast.NodeID) bool {
	return tree.Node(id).Token == c.Token
}

func (c TokenEquals) String() string {
	return fmt.Sprintf("(token %s)", sexp.NewSymbol(c.Token).String(true))
}

// ============================================================================
// DepthEquals
// ============================================================================

// DepthEquals is satisfied by nodes at a given depth.
type DepthEquals struct {
	Depth uint
}

// Holds implementation for Condition interface.
func (c DepthEquals) Holds(tree *ast.AST, id ast.NodeID) bool {
	return tree.Depth(id) == c.Depth
}

func (c DepthEquals) String() string {
	return fmt.Sprintf("(depth %d)", c.Depth)
}

// ============================================================================
// FlagEquals
// ============================================================================

// Flag identifies one of the formatting flags of a node.
type Flag uint8

const (
	// BREAK refers to ast.Node.ShouldBreak
	BREAK Flag = iota
	// BRACKET refers to ast.Node.ShouldInBracket
	BRACKET
)

func (f Flag) String() string {
	switch f {
	case BREAK:
		return "break"
	case BRACKET:
		return "bracket"
	default:
		return "unknown"
	}
}

// Of returns the value of this flag for a given node.
func (f Flag) Of(node *ast.Node) bool {
	switch f {
	case BREAK:
		return node.ShouldBreak
	case BRACKET:
		return node.ShouldInBracket
	default:
		panic(fmt.Sprintf("unknown flag %d", f))
	}
}

// FlagEquals is satisfied by nodes where a given formatting flag has a given
// value.
type FlagEquals struct {
	Flag  Flag
	Value bool
}

// Holds implementation for Condition interface.
func (c FlagEquals) Holds(tree *ast.AST, id ast.NodeID) bool {
	return c.Flag.Of(tree.Node(id)) == c.Value
}

func (c FlagEquals) String() string {
	return fmt.Sprintf("(flag %s %t)", c.Flag.String(), c.Value)
}

// ============================================================================
// And
// ============================================================================

// And is satisfied when both of its operands are.
type And struct {
	Left  Condition
	Right Condition
}

// NewAnd constructs the conjunction of one or more conditions, associating to
// the right.
func NewAnd(first Condition, rest ...Condition) Condition {
	if len(rest) == 0 {
		return first
	}
	//
	return And{first, NewAnd(rest[0], rest[1:]...)}
}

// Holds implementation for Condition interface.
func (c And) Holds(tree *ast.AST, id ast.NodeID) bool {
	return Holds(c.Left, tree, id) && Holds(c.Right, tree, id)
}

func (c And) String() string {
	return fmt.Sprintf("(and %s %s)", String(c.Left), String(c.Right))
}

// String returns the S-Expression form of a given (possibly nil) condition.
func String(c Condition) string {
	if c == nil {
		return True{}.String()
	}
	//
	return c.String()
}
