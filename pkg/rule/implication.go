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
package rule

import (
	"github.com/consensys/go-smtx/pkg/ast"
	"github.com/consensys/go-smtx/pkg/condition"
)

// ToImp rewrites one operand of a disjunction into an implication.  That is,
// focusing on p in (or p q r) gives (=> (not p) (or q r)).  The implication
// reuses the slot (and hence identifier) of the original disjunction, whilst
// the negation and the residual disjunction are new nodes.
func ToImp(focus ast.NodeID, tree *ast.AST, _ Params, cond condition.Condition) (bool, *ast.AST, error) {
	if !prepare(focus, tree, cond) {
		return false, tree, nil
	}
	//
	if tree.Node(focus).IsRoot() || tree.Node(tree.Node(focus).Parent).Token != "or" {
		return false, tree, nil
	}
	//
	var (
		clone  = tree.Clone()
		node   = clone.Node(focus)
		parent = clone.Node(node.Parent)
		rest   []ast.NodeID
	)
	// Negate the focus
	head := clone.Add("not", ast.OPERATOR, parent.Id, focus)
	node.Parent = head
	// Collect remaining operands
	for _, child := range parent.Children {
		if child != focus {
			rest = append(rest, child)
		}
	}
	//
	tail := clone.Add("or", ast.OPERATOR, parent.Id, rest...)
	//
	for _, child := range rest {
		clone.Node(child).Parent = tail
	}
	// Overwrite the disjunction in place
	parent.Token = "=>"
	parent.Kind = ast.OPERATOR
	parent.Children = []ast.NodeID{head, tail}
	clone.RebuildView()
	//
	return true, clone, nil
}
