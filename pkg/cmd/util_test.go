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
	"testing"

	"github.com/consensys/go-smtx/pkg/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCursor_00(t *testing.T) {
	line, offset, err := parseCursor("1:1")
	require.NoError(t, err)
	assert.Equal(t, 0, line)
	assert.Equal(t, 0, offset)
	//
	line, offset, err = parseCursor("3:12")
	require.NoError(t, err)
	assert.Equal(t, 2, line)
	assert.Equal(t, 11, offset)
}

func TestParseCursor_01(t *testing.T) {
	for _, cursor := range []string{"", "1", "0:1", "1:0", "1:2:3", "a:b", "-1:4"} {
		_, _, err := parseCursor(cursor)
		assert.Error(t, err, cursor)
	}
}

func TestApplyExitCode_00(t *testing.T) {
	err := fmt.Errorf("parent =: %w", rule.ErrUnsupportedReorder)
	assert.Equal(t, 4, applyExitCode(err))
}

func TestApplyExitCode_01(t *testing.T) {
	assert.Equal(t, 2, applyExitCode(rule.ErrInvalidParams))
	assert.Equal(t, 2, applyExitCode(fmt.Errorf("rule: %w", rule.ErrUnknownRule)))
}
