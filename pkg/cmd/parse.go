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
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/consensys/go-smtx/pkg/ast"
	"github.com/consensys/go-smtx/pkg/render"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file",
	Short: "parse a formula and print it back.",
	Long: `Parse a given formula, reporting any syntax errors, and print it back as
rendered from its AST.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		tree := parseSourceFile(readSourceFile(args[0]))
		//
		if GetFlag(cmd, "tree") {
			writeArena(tree)
		} else {
			fmt.Println(newRenderer(cmd).Render(tree, tree.Root(), render.NO_HIGHLIGHT))
		}
	},
}

var viewCmd = &cobra.Command{
	Use:   "view [flags] file",
	Short: "print the AST of a formula as a graph.",
	Long:  `Print the visualisation graph of a given formula in Graphviz (dot) format.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		tree := parseSourceFile(readSourceFile(args[0]))
		//
		writeDot(tree.View())
	},
}

var findCmd = &cobra.Command{
	Use:   "find [flags] file",
	Short: "identify the node at a given position.",
	Long:  `Identify the innermost node of a formula at a given LINE:COLUMN (both counting from 1).`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		tree := parseSourceFile(readSourceFile(args[0]))
		//
		line, offset, err := parseCursor(GetString(cmd, "at"))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		id, ok := tree.FindNode(line, offset)
		if !ok {
			fmt.Printf("nothing to do: no node at %s\n", GetString(cmd, "at"))
			return
		}
		//
		writeNode(tree, id)
		fmt.Println(newRenderer(cmd).Render(tree, id, render.NO_HIGHLIGHT))
	},
}

func writeArena(tree *ast.AST) {
	for _, id := range tree.Live() {
		writeNode(tree, id)
	}
}

func writeNode(tree *ast.AST, id ast.NodeID) {
	node := tree.Node(id)
	//
	parent := "-"
	if !node.IsRoot() {
		parent = strconv.Itoa(int(node.Parent))
	}
	//
	fmt.Printf("[%d]\t%s\t%s\tparent=%s\tdepth=%d\trange=%s\n", id, node.Token, node.Kind.String(), parent,
		tree.Depth(id), node.Range.String())
}

func writeDot(view ast.View) {
	fmt.Println("digraph ast {")
	//
	for _, node := range view.Nodes {
		fmt.Printf("\tn%d [shape=box, label=%s];\n", node.Id, strconv.Quote(node.Label))
	}
	//
	for _, edge := range view.Edges {
		fmt.Printf("\tn%d -> n%d;\n", edge.From, edge.To)
	}
	//
	fmt.Println("}")
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(findCmd)
	parseCmd.Flags().Bool("tree", false, "print the arena of the AST rather than the formula")
	findCmd.Flags().String("at", "1:1", "position of the cursor (LINE:COLUMN)")
}
