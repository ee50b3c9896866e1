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

// Generalize derives the condition under which a rule applied at a given focus
// node should be applied again when replayed.  The condition describes the
// focus node as it was before the rule was applied.
func Generalize(action string, focus ast.NodeID, tree *ast.AST) condition.Condition {
	var (
		node  = tree.Node(focus)
		depth = condition.DepthEquals{Depth: tree.Depth(focus)}
	)
	//
	switch action {
	case MOVE:
		return condition.TokenEquals{Token: node.Token}
	case CHANGE_BREAK:
		return condition.NewAnd(depth, condition.FlagEquals{Flag: condition.BREAK, Value: node.ShouldBreak})
	case CHANGE_BRACKET:
		return condition.NewAnd(depth, condition.FlagEquals{Flag: condition.BRACKET, Value: node.ShouldInBracket})
	case SQUASH_NEGATION, REPLACE:
		return condition.True{}
	default:
		return condition.NewAnd(condition.TokenEquals{Token: node.Token}, depth)
	}
}
