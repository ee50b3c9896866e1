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
package render

import (
	"strings"

	"github.com/consensys/go-smtx/pkg/ast"
	"github.com/consensys/go-smtx/pkg/util/termio"
)

// NO_HIGHLIGHT can be passed as the highlighted node to disable highlighting.
const NO_HIGHLIGHT = ast.NodeID(-1)

// Marker determines how a highlighted node is delimited in rendered text.
type Marker interface {
	Open() string
	Close() string
}

// HtmlMarker wraps the highlighted node in a span element.
type HtmlMarker struct{}

// Open implementation for Marker interface.
func (HtmlMarker) Open() string { return `<span class="highlighted">` }

// Close implementation for Marker interface.
func (HtmlMarker) Close() string { return `</span>` }

// AnsiMarker highlights using terminal escapes.
type AnsiMarker struct {
	Escape termio.AnsiEscape
}

// NewAnsiMarker constructs a marker which shows the highlighted node in bold
// yellow.
func NewAnsiMarker() AnsiMarker {
	return AnsiMarker{termio.BoldAnsiEscape().FgColour(termio.TERM_YELLOW)}
}

// Open implementation for Marker interface.
func (p AnsiMarker) Open() string { return p.Escape.Build() }

// Close implementation for Marker interface.
func (p AnsiMarker) Close() string { return termio.ResetAnsiEscape().Build() }

// NoMarker does not delimit the highlighted node at all.
type NoMarker struct{}

// Open implementation for Marker interface.
func (NoMarker) Open() string { return "" }

// Close implementation for Marker interface.
func (NoMarker) Close() string { return "" }

// Renderer converts an AST back into text.
type Renderer struct {
	// Indentation written for each level of depth before a breaking node.
	Indent string
	// Delimits the highlighted node.
	Marker Marker
}

// NewRenderer constructs a renderer which indents with tabs and highlights
// using HTML.
func NewRenderer() *Renderer {
	return &Renderer{"\t", HtmlMarker{}}
}

// Render a given node using the default renderer.
func Render(tree *ast.AST, id ast.NodeID, highlight ast.NodeID) string {
	return NewRenderer().Render(tree, id, highlight)
}

// Render the subtree rooted at a given node.  Leaves are rendered as their
// token.  Otherwise, the token (unless this is a plain list) is followed by
// each rendered child, separated by spaces and bracketed when the node should
// be bracketed and there is more than one element.  The root, and any operator
// or list without children, is bracketed regardless so that it parses back as
// a compound.  The highlighted node is delimited by the marker, and breaking
// nodes start on a new line indented according to their depth.
func (p *Renderer) Render(tree *ast.AST, id ast.NodeID, highlight ast.NodeID) string {
	var (
		node   = tree.Node(id)
		result string
	)
	//
	if node.Kind == ast.LEAF {
		result = node.Token
	} else {
		var elements []string
		//
		if node.Kind != ast.LIST {
			elements = append(elements, node.Token)
		}
		//
		for _, child := range node.Children {
			elements = append(elements, p.Render(tree, child, highlight))
		}
		//
		result = strings.Join(elements, " ")
		//
		compound := len(elements) != 1 || node.IsRoot() || node.IsLeaf()
		//
		if compound && node.ShouldInBracket {
			result = "(" + result + ")"
		}
	}
	//
	if id == highlight {
		result = p.Marker.Open() + result + p.Marker.Close()
	}
	//
	if node.ShouldBreak {
		result = "\n" + strings.Repeat(p.Indent, int(tree.Depth(id))) + result
	}
	//
	return result
}
