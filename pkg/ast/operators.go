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

// OPERATORS identifies the head symbols which are treated as operators.  A
// list headed by one of these becomes a node whose token is the operator and
// whose children are the remaining elements.
var OPERATORS = []string{
	"+", "-", "*", "/",
	">", "<", ">=", "<=", "=",
	"and", "or", "not", "=>",
	"assert",
	"declare-datatypes",
	"forall", "exists", "define",
	"select", "store",
}

var operators = func() map[string]bool {
	set := make(map[string]bool, len(OPERATORS))
	//
	for _, op := range OPERATORS {
		set[op] = true
	}
	//
	return set
}()

// IsOperator checks whether a given token is a known operator.
func IsOperator(token string) bool {
	return operators[token]
}
