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
	"github.com/consensys/go-smtx/pkg/util/source"
	"github.com/consensys/go-smtx/pkg/util/source/sexp"
)

// Parse a given formula into an AST, or return a syntax error if the formula
// is malformed.
func Parse(text string) (*AST, error) {
	return ParseFile(source.NewSourceString(text))
}

// ParseFile parses the contents of a given source file into an AST, or returns
// a syntax error if the contents are malformed.
func ParseFile(srcfile *source.File) (*AST, error) {
	list, err := sexp.Parse(srcfile)
	// Avoid returning a typed nil as an error
	if err != nil {
		return nil, err
	}
	//
	return Build(list), nil
}

// Build constructs an AST from a given S-Expression, which becomes the root.
func Build(list *sexp.List) *AST {
	var tree AST
	//
	tree.root = tree.build(ROOT, list)
	tree.RebuildView()
	//
	return &tree
}

// Construct the node for a given S-Expression along with all nodes beneath it.
// Nodes are allocated in pre-order, such that a node always precedes its
// children in the arena.
func (p *AST) build(parent NodeID, s sexp.SExp) NodeID {
	var (
		id   = NodeID(len(p.nodes))
		node *Node
		list = s.AsList()
	)
	//
	switch {
	case list == nil:
		node = NewNode(id, s.AsSymbol().Value, LEAF, parent)
	case list.Len() > 0 && list.Get(0).AsSymbol() != nil && IsOperator(list.Get(0).AsSymbol().Value):
		node = NewNode(id, list.Get(0).AsSymbol().Value, OPERATOR, parent)
	case list.Len() > 0 && list.Get(0).AsSymbol() != nil:
		node = NewNode(id, list.Get(0).AsSymbol().Value, LIST, parent)
	default:
		node = NewNode(id, LIST_MARKER, LIST, parent)
	}
	//
	node.Range = s.Range()
	p.nodes = append(p.nodes, node)
	//
	if list != nil {
		elements := list.Elements
		// Operators do not include their head as a child
		if node.Kind == OPERATOR {
			elements = elements[1:]
		}
		//
		for _, element := range elements {
			node.Children = append(node.Children, p.build(id, element))
		}
	}
	//
	return id
}
