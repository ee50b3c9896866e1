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
	"fmt"
	"slices"

	"github.com/consensys/go-smtx/pkg/util/source"
)

// AST is an arena of nodes, where each node is identified by its index in the
// arena.  Deleted nodes are replaced by tombstones, so identifiers remain
// stable for the lifetime of the AST.  An AST handed out to a caller is never
// mutated.  Rewrites operate on a clone instead.
type AST struct {
	// Arena of nodes
	nodes []*Node
	// Identifier of the current root node.
	root NodeID
	// Projection of the live nodes for visualisation.
	view View
}

// Root returns the identifier of the root node of this AST.
func (p *AST) Root() NodeID {
	return p.root
}

// SetRoot makes a given node the root of this AST.
func (p *AST) SetRoot(id NodeID) {
	p.Node(id).Parent = ROOT
	p.root = id
}

// Len returns the number of slots in the arena, including tombstones.
func (p *AST) Len() int {
	return len(p.nodes)
}

// Node returns the node with a given identifier.  This panics if the
// identifier is out-of-bounds.
func (p *AST) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(p.nodes) {
		panic(fmt.Sprintf("invalid node identifier %d", id))
	}
	//
	return p.nodes[id]
}

// IsLive checks whether a given identifier refers to a live node.
func (p *AST) IsLive(id NodeID) bool {
	return id >= 0 && int(id) < len(p.nodes) && p.nodes[id].IsLive()
}

// Live returns the identifiers of all live nodes in arena order.
func (p *AST) Live() []NodeID {
	var ids = make([]NodeID, 0, len(p.nodes))
	//
	for i, n := range p.nodes {
		if n.IsLive() {
			ids = append(ids, NodeID(i))
		}
	}
	//
	return ids
}

// Add a new node to the end of the arena, returning its identifier.  The new
// node does not originate from any source text.
func (p *AST) Add(token string, kind Kind, parent NodeID, children ...NodeID) NodeID {
	id := NodeID(len(p.nodes))
	p.nodes = append(p.nodes, NewNode(id, token, kind, parent, children...))
	//
	return id
}

// Delete replaces the slot of a given node with a tombstone.  No rewiring is
// performed, hence the caller must have already redirected any references to
// this node.
func (p *AST) Delete(id NodeID) {
	// Sanity check
	p.Node(id)
	//
	p.nodes[id] = newTombstone()
}

// Substitute makes a given node take the place of another.  That is, the
// parent of old now refers to replacement (at the same position), and
// replacement's parent becomes that of old.  If old was the root, then
// replacement becomes the root.  Nothing is deleted.
func (p *AST) Substitute(old NodeID, replacement NodeID) {
	var (
		oldNode = p.Node(old)
		parent  = oldNode.Parent
	)
	//
	if parent == ROOT {
		p.SetRoot(replacement)
		return
	}
	//
	parentNode := p.Node(parent)
	parentNode.Children[parentNode.IndexOf(old)] = replacement
	p.Node(replacement).Parent = parent
}

// Depth returns the number of ancestors of a given node, such that the root
// has depth 0.  This panics if a cycle is detected amongst the parents.
func (p *AST) Depth(id NodeID) uint {
	var depth uint
	//
	for n := p.Node(id); !n.IsRoot(); n = p.Node(n.Parent) {
		depth++
		//
		if depth > uint(len(p.nodes)) {
			panic(fmt.Sprintf("cycle detected above node %d", id))
		}
	}
	//
	return depth
}

// FindNode determines the innermost live node whose source range contains a
// given line / offset position.  Where several nodes of the same depth match,
// the first in arena order is returned.  If no node matches, then false is
// returned.
func (p *AST) FindNode(line int, offset int) (NodeID, bool) {
	var (
		pos   = source.Position{Line: line, Offset: offset}
		found = false
		best  NodeID
		depth uint
	)
	//
	for _, id := range p.Live() {
		if p.nodes[id].Range.Contains(pos) {
			if d := p.Depth(id); !found || d > depth {
				found, best, depth = true, id, d
			}
		}
	}
	//
	return best, found
}

// Clone returns a deep copy of this AST.  Mutating the clone has no effect on
// this AST.  The view is copied as is, hence callers making structural changes
// to the clone must rebuild it.
func (p *AST) Clone() *AST {
	var (
		nodes = make([]*Node, len(p.nodes))
		slab  = make([]Node, len(p.nodes))
	)
	//
	for i, n := range p.nodes {
		slab[i] = *n
		slab[i].Children = slices.Clone(n.Children)
		nodes[i] = &slab[i]
	}
	//
	view := View{slices.Clone(p.view.Nodes), slices.Clone(p.view.Edges)}
	//
	return &AST{nodes: nodes, root: p.root, view: view}
}

// Validate checks the structural invariants of this AST.  Specifically, that
// the root is live, that every live node is referenced exactly once by its
// parent (and vice versa), that no live node refers to a tombstone and that
// there are no cycles.
func (p *AST) Validate() error {
	if !p.IsLive(p.root) {
		return fmt.Errorf("root %d is not live", p.root)
	} else if p.nodes[p.root].Parent != ROOT {
		return fmt.Errorf("root %d has parent %d", p.root, p.nodes[p.root].Parent)
	}
	//
	for _, id := range p.Live() {
		node := p.nodes[id]
		//
		if node.Id != id {
			return fmt.Errorf("node %d has identifier %d", id, node.Id)
		} else if node.Parent == ROOT && id != p.root {
			return fmt.Errorf("node %d has no parent but is not the root", id)
		} else if node.Parent != ROOT && !p.IsLive(node.Parent) {
			return fmt.Errorf("node %d has dead parent %d", id, node.Parent)
		} else if node.Parent != ROOT && count(p.nodes[node.Parent].Children, id) != 1 {
			return fmt.Errorf("node %d is not a child of its parent %d exactly once", id, node.Parent)
		}
		//
		for _, child := range node.Children {
			if !p.IsLive(child) {
				return fmt.Errorf("node %d has dead child %d", id, child)
			} else if p.nodes[child].Parent != id {
				return fmt.Errorf("child %d of node %d has parent %d", child, id, p.nodes[child].Parent)
			}
		}
		// Check for cycles
		if err := p.checkAcyclic(id); err != nil {
			return err
		}
	}
	//
	return nil
}

func (p *AST) checkAcyclic(id NodeID) error {
	var steps = 0
	//
	for n := p.nodes[id]; n.Parent != ROOT; n = p.nodes[n.Parent] {
		if steps++; steps > len(p.nodes) {
			return fmt.Errorf("cycle detected above node %d", id)
		} else if !p.IsLive(n.Parent) {
			return fmt.Errorf("node %d has dead ancestor %d", id, n.Parent)
		}
	}
	//
	return nil
}

func count(ids []NodeID, id NodeID) int {
	var n = 0
	//
	for _, ith := range ids {
		if ith == id {
			n++
		}
	}
	//
	return n
}
