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
	"regexp"
	"strings"

	"github.com/consensys/go-smtx/pkg/ast"
	"github.com/consensys/go-smtx/pkg/condition"
)

// Replace substitutes the first occurrence of the source parameter with the
// target parameter in the token of every live node.  This is not restricted to
// the focus node.  When the regex parameter is set, source is a regular
// expression and target may refer to its submatches (e.g. $1).
func Replace(focus ast.NodeID, tree *ast.AST, params Params, cond condition.Condition) (bool, *ast.AST, error) {
	if !prepare(focus, tree, cond) {
		return false, tree, nil
	}
	//
	replacer, err := newReplacer(params)
	if err != nil {
		return false, tree, err
	}
	//
	var clone *ast.AST
	//
	for _, id := range tree.Live() {
		token := replacer(tree.Node(id).Token)
		//
		if token == tree.Node(id).Token {
			continue
		} else if clone == nil {
			clone = tree.Clone()
		}
		//
		clone.Node(id).Token = token
	}
	//
	if clone == nil {
		return false, tree, nil
	}
	//
	clone.RebuildView()
	//
	return true, clone, nil
}

func newReplacer(params Params) (func(string) string, error) {
	if params.Source == "" {
		return nil, fmt.Errorf("%w (missing source)", ErrInvalidParams)
	} else if !params.Regex {
		return func(token string) string {
			return strings.Replace(token, params.Source, params.Target, 1)
		}, nil
	}
	//
	pattern, err := regexp.Compile(params.Source)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", ErrInvalidParams, err.Error())
	}
	//
	return func(token string) string {
		match := pattern.FindStringSubmatchIndex(token)
		if match == nil {
			return token
		}
		//
		expanded := pattern.ExpandString(nil, params.Target, token, match)
		//
		return token[:match[0]] + string(expanded) + token[match[1]:]
	}, nil
}
