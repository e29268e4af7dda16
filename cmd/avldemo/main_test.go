// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(t *testing.T) *logger.L {
	log, err := setupLogging(t.TempDir(), "critical", false)
	require.NoError(t, err)
	t.Cleanup(logger.Finalise)
	return log
}

func TestInsert(t *testing.T) {
	log := testLogger(t)
	var buf bytes.Buffer
	require.NoError(t, runInsert(&buf, log, []string{"1", "2", "3", "2"}))
	assert.Equal(t, "(1:1,3:3)2:2\nroot: 2\n1 +0\n2 +0\n3 +0\n", buf.String())

	assert.Error(t, runInsert(&buf, log, []string{"x"}))
}

const testScript = `
max_size: 2
steps:
  - {op: insert, key: 1, value: a}
  - {op: insert, key: 1, value: x}
  - {op: insert, key: 2, value: b}
  - {op: insert, key: 3, value: c}
  - {op: find, key: 1}
  - {op: at, key: 5}
  - {op: erase, key: 1}
  - {op: erase, key: 9}
  - {op: upsert, key: 2, value: bb}
  - {op: index, key: 4, value: d}
  - {op: index, key: 5, value: e}
  - {op: dump}
  - {op: clear}
  - {op: find, key: 2}
`

func TestScript(t *testing.T) {
	log := testLogger(t)
	s, err := parseScript([]byte(testScript))
	require.NoError(t, err)
	require.Len(t, s.Steps, 14)

	var buf bytes.Buffer
	require.NoError(t, s.run(&buf, log))
	assert.Equal(t, []string{
		"insert 1: inserted=true",
		"insert 1: inserted=false",
		"insert 2: inserted=true",
		"insert 3: error: capacity exceeded: map holds 2 elements",
		`find 1: "a"`,
		"at 5: error: key not found: 5",
		"erase 1: next=2",
		"erase 9: error: invalid position",
		`upsert 2: replaced=true old="b"`,
		`index 4: "d"`,
		"index 5: error: capacity exceeded",
		"root: 2",
		"2 +1",
		"4 +0",
		"clear",
		"find 2: end",
	}, strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"))
}

func TestScriptUnknownOp(t *testing.T) {
	_, err := parseScript([]byte("steps:\n  - {op: rotate, key: 1}\n"))
	assert.ErrorContains(t, err, `unknown op "rotate"`)

	_, err = parseScript([]byte("steps: [1, 2"))
	assert.Error(t, err)
}

func TestBench(t *testing.T) {
	log := testLogger(t)
	var buf bytes.Buffer
	c := benchConfig{n: 500, seed: 42}
	require.NoError(t, c.run(&buf, log))
	assert.True(t, strings.HasPrefix(buf.String(), "n=500 height="), buf.String())

	c.n = 0
	assert.Error(t, c.run(&buf, log))
}
