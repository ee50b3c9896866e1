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

// ChangeBreak toggles whether the focus node is rendered on its own line.
func ChangeBreak(focus ast.NodeID, tree *ast.AST, _ Params, cond condition.Condition) (bool, *ast.AST, error) {
	return toggle(focus, tree, cond, func(node *ast.Node) {
		node.ShouldBreak = !node.ShouldBreak
	})
}

// ChangeBracket toggles whether the focus node is rendered within brackets.
func ChangeBracket(focus ast.NodeID, tree *ast.AST, _ Params, cond condition.Condition) (bool, *ast.AST, error) {
	return toggle(focus, tree, cond, func(node *ast.Node) {
		node.ShouldInBracket = !node.ShouldInBracket
	})
}

func toggle(focus ast.NodeID, tree *ast.AST, cond condition.Condition, flip func(*ast.Node)) (bool, *ast.AST, error) {
	if !prepare(focus, tree, cond) {
		return false, tree, nil
	}
	//
	clone := tree.Clone()
	flip(clone.Node(focus))
	clone.RebuildView()
	//
	return true, clone, nil
}
