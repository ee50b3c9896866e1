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
	"fmt"

	"github.com/consensys/go-smtx/pkg/ast"
	"github.com/consensys/go-smtx/pkg/condition"
)

// Directions understood by Move.
const (
	LEFT  = "l"
	RIGHT = "r"
)

// Operators whose operands can be reordered.
var reorderable = map[string]bool{
	"+":   true,
	"*":   true,
	"=":   true,
	"and": true,
	"or":  true,
}

// Move swaps the focus node with its left (or right) sibling, as determined by
// the direction parameter.  For example, moving z left in (+ x y z) gives
// (+ x z y).  Moving the first operand left (or the last right) does nothing.
// The parent must be one of the operators whose operands can be reordered,
// otherwise ErrUnsupportedReorder is returned.
func Move(focus ast.NodeID, tree *ast.AST, params Params, cond condition.Condition) (bool, *ast.AST, error) {
	if !prepare(focus, tree, cond) {
		return false, tree, nil
	}
	//
	node := tree.Node(focus)
	//
	if node.IsRoot() {
		return false, tree, fmt.Errorf("%w (node has no parent)", ErrUnsupportedReorder)
	}
	//
	parent := tree.Node(node.Parent)
	//
	if !reorderable[parent.Token] {
		return false, tree, fmt.Errorf("%w (%s)", ErrUnsupportedReorder, parent.Token)
	}
	//
	var (
		i = parent.IndexOf(focus)
		j int
	)
	//
	switch params.Direction {
	case LEFT:
		j = i - 1
	case RIGHT:
		j = i + 1
	default:
		return false, tree, fmt.Errorf("%w (unknown direction \"%s\")", ErrInvalidParams, params.Direction)
	}
	// Check for boundaries
	if j < 0 || j >= len(parent.Children) {
		return false, tree, nil
	}
	//
	clone := tree.Clone()
	siblings := clone.Node(parent.Id).Children
	siblings[i], siblings[j] = siblings[j], siblings[i]
	clone.RebuildView()
	//
	return true, clone, nil
}
