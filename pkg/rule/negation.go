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

// Comparisons which absorb an enclosing negation.
var negated = map[string]string{
	"<": ">=",
	">": "<=",
}

// SquashNegation collapses a "not" node into its operand.  A double negation
// is removed entirely, whilst a negated strict comparison is replaced by its
// complement, e.g. (not (< x y)) becomes (>= x y).  Any other operand is left
// untouched.
func SquashNegation(focus ast.NodeID, tree *ast.AST, _ Params, cond condition.Condition) (bool, *ast.AST, error) {
	if !prepare(focus, tree, cond) {
		return false, tree, nil
	}
	//
	node := tree.Node(focus)
	//
	if node.Token != "not" || len(node.Children) != 1 {
		return false, tree, nil
	}
	//
	var (
		child  = tree.Node(node.Children[0])
		double = child.Token == "not" && len(child.Children) == 1
		strict = negated[child.Token] != "" && !child.IsLeaf()
	)
	//
	if !double && !strict {
		return false, tree, nil
	}
	//
	clone := tree.Clone()
	//
	if double {
		// Grandchild takes the place of the outer negation
		clone.Substitute(focus, child.Children[0])
		clone.Delete(child.Id)
		clone.Delete(focus)
	} else {
		clone.Node(child.Id).Token = negated[child.Token]
		// Comparison takes the place of the negation
		clone.Substitute(focus, child.Id)
		clone.Delete(focus)
	}
	//
	clone.RebuildView()
	//
	return true, clone, nil
}
