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
package ast

import (
	"slices"

	"github.com/consensys/go-smtx/pkg/util/source"
)

// NodeID identifies a node within an AST.  The identifier of a node is its
// position within the arena of the AST, and is never reused or compacted.
type NodeID int

// ROOT is the parent identifier given to the root node of an AST.
const ROOT = NodeID(-1)

// TOMBSTONE is the identifier of the sentinel node occupying the slot of a
// deleted node.
const TOMBSTONE = NodeID(-100)

// TOMBSTONE_TOKEN is the token carried by tombstones.
const TOMBSTONE_TOKEN = "null-node"

// LIST_MARKER is the token given to plain lists whose head is not a symbol
// (e.g. a nested list), or which are empty.
const LIST_MARKER = "list"

// Kind determines how a node was constructed from its source text, which
// affects how it is rendered.
type Kind uint8

const (
	// LEAF is a single token.
	LEAF Kind = iota
	// OPERATOR is a list headed by a known operator.  The operator itself is
	// the token of the node, and is not one of its children.
	OPERATOR
	// LIST is a plain list, where every element (including the first) is a
	// child.
	LIST
)

func (k Kind) String() string {
	switch k {
	case LEAF:
		return "leaf"
	case OPERATOR:
		return "operator"
	case LIST:
		return "list"
	default:
		return "unknown"
	}
}

// Node represents a single node within the arena of an AST.
type Node struct {
	// Identifier of this node, which is its index in the arena.
	Id NodeID
	// Head symbol (for operators and lists) or text (for leaves).
	Token string
	// Kind of this node.
	Kind Kind
	// Identifier of the enclosing node, or ROOT.
	Parent NodeID
	// Ordered children of this node.
	Children []NodeID
	// Render this node on its own indented line.
	ShouldBreak bool
	// Wrap the rendering of this node in brackets (where it has more than one
	// element, is the root, or has no children).
	ShouldInBracket bool
	// Region of source text from which this node was parsed, or
	// source.NoRange for synthesised nodes.
	Range source.Range
}

// NewNode constructs a node which does not originate from any source text.
func NewNode(id NodeID, token string, kind Kind, parent NodeID, children ...NodeID) *Node {
	return &Node{
		Id:              id,
		Token:           token,
		Kind:            kind,
		Parent:          parent,
		Children:        children,
		ShouldBreak:     false,
		ShouldInBracket: true,
		Range:           source.NoRange,
	}
}

func newTombstone() *Node {
	return &Node{Id: TOMBSTONE, Token: TOMBSTONE_TOKEN, Parent: TOMBSTONE, Range: source.NoRange}
}

// IsLive checks whether this node is not a tombstone.
func (n *Node) IsLive() bool {
	return n.Id != TOMBSTONE
}

// IsLeaf checks whether this node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// IsRoot checks whether this node has no parent.
func (n *Node) IsRoot() bool {
	return n.Parent == ROOT
}

// IndexOf returns the position of a given child amongst the children of this
// node, or -1 if it is not a child.
func (n *Node) IndexOf(child NodeID) int {
	return slices.Index(n.Children, child)
}
