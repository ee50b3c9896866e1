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
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/consensys/go-smtx/pkg/ast"
	"github.com/consensys/go-smtx/pkg/render"
	"github.com/consensys/go-smtx/pkg/util/source"
	"github.com/consensys/go-smtx/pkg/util/termio"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Configure log level
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Read a given source file, or exit if an error arises.
func readSourceFile(filename string) *source.File {
	log.Debug(fmt.Sprintf("reading source file %s", filename))
	//
	files, err := source.ReadFiles(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}
	//
	return &files[0]
}

// Parse a given source file into an AST, or print the syntax error and exit.
func parseSourceFile(srcfile *source.File) *ast.AST {
	tree, err := ast.ParseFile(srcfile)
	//
	if err != nil {
		reportError(err)
		os.Exit(4)
	}
	//
	return tree
}

// Report an error, giving syntax errors appropriate highlighting.
func reportError(err error) {
	var serr *source.SyntaxError
	//
	if errors.As(err, &serr) {
		printSyntaxError(serr)
	} else {
		color.Red("error: %s", err.Error())
	}
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	color.Red("%s:%d:%d-%d %s", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Println()
	// Print line
	fmt.Println(line.String())
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", lineOffset))
	// Print highlight
	marker := strings.Repeat("^", length)
	//
	if termio.IsTerminal(os.Stdout) {
		marker = termio.BoldAnsiEscape().FgColour(termio.TERM_RED).Wrap(marker)
	}
	//
	fmt.Println(marker)
}

// Parse a cursor of the form LINE:COLUMN, where both are counted from 1, into
// a zero-based line and offset.
func parseCursor(cursor string) (int, int, error) {
	var (
		parts = strings.Split(cursor, ":")
		nums  [2]int
	)
	//
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid cursor \"%s\" (expected LINE:COLUMN)", cursor)
	}
	//
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return 0, 0, fmt.Errorf("invalid cursor \"%s\" (expected LINE:COLUMN)", cursor)
		}
		//
		nums[i] = n - 1
	}
	//
	return nums[0], nums[1], nil
}

// Construct a renderer as configured by the persistent flags.
func newRenderer(cmd *cobra.Command) *render.Renderer {
	renderer := render.NewRenderer()
	renderer.Indent = GetString(cmd, "indent")
	//
	switch style := GetString(cmd, "highlight"); style {
	case "auto":
		if termio.IsTerminal(os.Stdout) {
			renderer.Marker = render.NewAnsiMarker()
		} else {
			renderer.Marker = render.NoMarker{}
		}
	case "html":
		renderer.Marker = render.HtmlMarker{}
	case "ansi":
		renderer.Marker = render.NewAnsiMarker()
	case "none":
		renderer.Marker = render.NoMarker{}
	default:
		fmt.Printf("unknown highlight style \"%s\"\n", style)
		os.Exit(2)
	}
	//
	return renderer
}
