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

	"github.com/consensys/go-smtx/pkg/render"
	"github.com/consensys/go-smtx/pkg/replay"
	"github.com/consensys/go-smtx/pkg/rule"
	"github.com/consensys/go-smtx/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay [flags] file1 file2 ...",
	Short: "replay a rule stack over a batch of formulas.",
	Long: `Replay a recorded rule stack over every formula in the given files.  Formulas
within a file are separated by one or more blank lines.  Each rule is applied
until it no longer changes anything before the next rule is considered.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		var (
			formulas []source.File
			failed   = false
			renderer = newRenderer(cmd)
			engine   = replay.NewEngine(GetUint(cmd, "max-rewrites"))
		)
		//
		stack, err := rule.LoadStack(GetString(cmd, "stack"))
		if err != nil {
			reportError(err)
			os.Exit(3)
		}
		//
		files, err := source.ReadFiles(args...)
		if err != nil {
			reportError(err)
			os.Exit(3)
		}
		//
		for _, file := range files {
			formulas = append(formulas, file.SplitFormulas()...)
		}
		//
		log.Debugf("replaying %d rule(s) over %d formula(s)", len(stack), len(formulas))
		//
		for i, result := range engine.RunAll(formulas, stack) {
			if i != 0 {
				fmt.Println()
			}
			//
			if result.Err != nil {
				reportError(result.Err)
				failed = true
			}
			//
			if result.Tree != nil {
				fmt.Println(renderer.Render(result.Tree, result.Tree.Root(), render.NO_HIGHLIGHT))
			}
		}
		//
		if failed {
			os.Exit(4)
		}
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().String("stack", "", "rule stack file (JSON or YAML)")
	replayCmd.MarkFlagRequired("stack")
}
