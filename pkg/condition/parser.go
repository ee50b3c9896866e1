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
package condition

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/consensys/go-smtx/pkg/util/source"
	"github.com/consensys/go-smtx/pkg/util/source/sexp"
)

// Parse a condition from its S-Expression form, such as:
//
//	(and (token "x") (depth 1))
//
// For compatibility with older rule stacks, the bare symbol true (or an empty
// string) is also accepted.
func Parse(text string) (Condition, error) {
	text = strings.TrimSpace(text)
	//
	if text == "" || text == "true" {
		return True{}, nil
	}
	//
	srcfile := source.NewSourceString(text)
	//
	list, err := sexp.Parse(srcfile)
	if err != nil {
		return nil, err
	}
	//
	condition, errs := newTranslator(srcfile).Translate(list)
	if len(errs) != 0 {
		return nil, &errs[0]
	}
	//
	return condition, nil
}

func newTranslator(srcfile *source.File) *sexp.Translator[Condition] {
	p := sexp.NewTranslator[Condition](srcfile)
	//
	p.AddSymbolRule(trueRule)
	p.AddSymbolListRule("true", 0, func([]string) (Condition, error) { return True{}, nil })
	p.AddSymbolListRule("token", 1, tokenRule)
	p.AddSymbolListRule("depth", 1, depthRule)
	p.AddSymbolListRule("flag", 2, flagRule)
	p.AddRecursiveListRule("and", andRule)
	//
	return p
}

func trueRule(symbol string) (Condition, bool, error) {
	return True{}, symbol == "true", nil
}

func tokenRule(args []string) (Condition, error) {
	token := args[0]
	//
	if strings.HasPrefix(token, "\"") {
		var err error
		//
		if token, err = strconv.Unquote(token); err != nil {
			return nil, fmt.Errorf("invalid token %s", args[0])
		}
	}
	//
	return TokenEquals{token}, nil
}

func depthRule(args []string) (Condition, error) {
	depth, err := strconv.ParseUint(args[0], 10, 0)
	if err != nil {
		return nil, fmt.Errorf("invalid depth %s", args[0])
	}
	//
	return DepthEquals{uint(depth)}, nil
}

func flagRule(args []string) (Condition, error) {
	var flag Flag
	//
	switch args[0] {
	case "break":
		flag = BREAK
	case "bracket":
		flag = BRACKET
	default:
		return nil, fmt.Errorf("unknown flag %s", args[0])
	}
	//
	value, err := strconv.ParseBool(args[1])
	if err != nil {
		return nil, fmt.Errorf("invalid flag value %s", args[1])
	}
	//
	return FlagEquals{flag, value}, nil
}

func andRule(_ string, args []Condition) (Condition, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("empty conjunction")
	}
	//
	return NewAnd(args[0], args[1:]...), nil
}
