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

// ViewNode is a node of the visualisation graph.
type ViewNode struct {
	Id    NodeID
	Label string
}

// ViewEdge connects a parent to one of its children in the visualisation
// graph.
type ViewEdge struct {
	Id   int
	From NodeID
	To   NodeID
}

// View is a projection of the live nodes of an AST intended for display by
// external tools.  It is derived from the arena and is never a source of
// truth.
type View struct {
	Nodes []ViewNode
	Edges []ViewEdge
}

// View returns the visualisation graph of this AST, as of the last call to
// RebuildView.
func (p *AST) View() View {
	return p.view
}

// RebuildView regenerates the visualisation graph from the live nodes of this
// AST.  This must be called after any structural change.
func (p *AST) RebuildView() {
	var view View
	//
	for _, node := range p.nodes {
		if !node.IsLive() {
			continue
		}
		//
		view.Nodes = append(view.Nodes, ViewNode{node.Id, label(node)})
		//
		for _, child := range node.Children {
			view.Edges = append(view.Edges, ViewEdge{len(view.Edges), node.Id, child})
		}
	}
	//
	p.view = view
}

func label(node *Node) string {
	var label = node.Token
	//
	if node.ShouldInBracket {
		label = "(" + label + ")"
	}
	//
	if node.ShouldBreak {
		label += "↵"
	}
	//
	return label
}
