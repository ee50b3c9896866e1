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
	"strings"

	"github.com/consensys/go-smtx/pkg/render"
	"github.com/consensys/go-smtx/pkg/rule"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply [flags] rule file",
	Short: "apply a rewrite rule at a given position.",
	Long: `Apply a rewrite rule to the innermost node of a formula at a given LINE:COLUMN
(both counting from 1), and print the rewritten formula.  The application can be
recorded as a generalised rule at the end of a rule stack file (JSON or YAML),
such that it can be replayed later.  Available rules: ` + strings.Join(rule.Names(), ", ") + ".",
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		var (
			name     = args[0]
			filename = args[1]
			record   = GetString(cmd, "record")
			params   = rule.Params{
				Direction: GetString(cmd, "direction"),
				Source:    GetString(cmd, "source"),
				Target:    GetString(cmd, "target"),
				Regex:     GetFlag(cmd, "regex"),
			}
		)
		//
		tree := parseSourceFile(readSourceFile(filename))
		//
		line, offset, err := parseCursor(GetString(cmd, "at"))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		focus, ok := tree.FindNode(line, offset)
		if !ok {
			fmt.Printf("nothing to do: no node at %s\n", GetString(cmd, "at"))
			return
		}
		//
		changed, result, applied, err := rule.Apply(name, focus, tree, params)
		//
		switch {
		case err != nil:
			reportError(err)
			os.Exit(applyExitCode(err))
		case !changed:
			fmt.Printf("nothing to do: %s does not apply at %s\n", name, GetString(cmd, "at"))
			return
		}
		//
		log.Debugf("applied %s", applied.String())
		//
		if record != "" {
			recordRule(record, applied)
		}
		//
		if GetFlag(cmd, "write") {
			text := newRenderer(cmd).Render(result, result.Root(), render.NO_HIGHLIGHT)
			//
			if err := os.WriteFile(filename, []byte(text+"\n"), 0644); err != nil {
				reportError(err)
				os.Exit(3)
			}
		} else {
			fmt.Println(newRenderer(cmd).Render(result, result.Root(), focus))
		}
	},
}

// Append a given record onto the end of a rule stack file, creating the file if
// it does not already exist.
func recordRule(filename string, record rule.Record) {
	stack, err := rule.LoadStack(filename)
	//
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		reportError(err)
		os.Exit(3)
	}
	//
	if err = rule.SaveStack(filename, append(stack, record)); err != nil {
		reportError(err)
		os.Exit(3)
	}
	//
	log.Debugf("recorded %s in %s (%d rule(s))", record.Action, filename, len(stack)+1)
}

// Determine the exit code for a failed rule application.  A move refused by
// its parent is a failure of the rewrite itself, whilst anything else is down
// to the parameters given.
func applyExitCode(err error) int {
	if errors.Is(err, rule.ErrUnsupportedReorder) {
		return 4
	}
	//
	return 2
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().String("at", "1:1", "position of the cursor (LINE:COLUMN)")
	applyCmd.Flags().String("direction", "", "direction to move a node (l or r)")
	applyCmd.Flags().String("source", "", "text to replace")
	applyCmd.Flags().String("target", "", "replacement text")
	applyCmd.Flags().Bool("regex", false, "treat source as a regular expression")
	applyCmd.Flags().String("record", "", "rule stack file to record the applied rule in")
	applyCmd.Flags().Bool("write", false, "overwrite the file with the rewritten formula")
}
