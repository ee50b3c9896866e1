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

// Comparisons and their equivalents when the operands are swapped.
var flipped = map[string]string{
	"=":  "=",
	"<":  ">=",
	">":  "<=",
	">=": "<",
	"<=": ">",
}

// FlipCmp swaps the operands of a binary comparison, replacing the comparison
// to match.  For example, (> x y) becomes (<= y x).  The node keeps its
// identifier, parent and formatting.
func FlipCmp(focus ast.NodeID, tree *ast.AST, _ Params, cond condition.Condition) (bool, *ast.AST, error) {
	if !prepare(focus, tree, cond) {
		return false, tree, nil
	}
	//
	token, ok := flipped[tree.Node(focus).Token]
	//
	if !ok || tree.Node(focus).Kind != ast.OPERATOR || len(tree.Node(focus).Children) != 2 {
		return false, tree, nil
	}
	//
	clone := tree.Clone()
	node := clone.Node(focus)
	node.Token = token
	node.Children[0], node.Children[1] = node.Children[1], node.Children[0]
	clone.RebuildView()
	//
	return true, clone, nil
}
