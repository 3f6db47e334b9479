/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/deffile"
)

const defs = `
enums:
  - name: letter
    values:
      - {name: A, value: 0}
      - {name: B, value: 1}
      - {name: C, value: 2}
  - name: level
    values:
      - {name: Low, value: 1}
      - {name: High, value: 10}
  - name: access
    flags: true
    values:
      - {name: None, value: 0}
      - {name: Read, value: 1}
      - {name: Write, value: 2}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func streams() (*Streams, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &Streams{Out: &out, Err: &errOut}, &out, &errOut
}

func TestNameCmd(t *testing.T) {
	path := writeFile(t, "enums.yaml", defs)

	cases := []struct {
		name   string
		typ    string
		values []string
		want   string
	}{
		{"dense", "letter", []string{"1", "0", "2"}, "B\nA\nC\n"},
		{"sparse", "level", []string{"10", "1"}, "High\nLow\n"},
		{"flags", "access", []string{"3", "0", "0x2"}, "Read,Write\nNone\nWrite\n"},
		{"flags residual", "access", []string{"4"}, "4\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, out, _ := streams()
			cmd := &NameCmd{Source: Source{Defs: path}, Type: tc.typ, Values: tc.values}
			require.NoError(t, cmd.Run(st))
			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestNameCmd_InvalidValue(t *testing.T) {
	path := writeFile(t, "enums.yaml", defs)
	st, out, errOut := streams()

	cmd := &NameCmd{Source: Source{Defs: path}, Type: "letter", Values: []string{"1", "3", "x"}}
	err := cmd.Run(st)
	require.Error(t, err)
	assert.ErrorIs(t, err, apis.ErrInvalidValue)
	assert.Contains(t, err.Error(), "2 of 3 values")
	assert.Equal(t, "B\n", out.String())
	assert.Contains(t, errOut.String(), "3: ")
	assert.Contains(t, errOut.String(), `invalid value "x"`)
}

func TestNameCmd_UnknownEnum(t *testing.T) {
	path := writeFile(t, "enums.yaml", defs)
	st, _, _ := streams()

	cmd := &NameCmd{Source: Source{Defs: path}, Type: "missing", Values: []string{"0"}}
	err := cmd.Run(st)
	assert.ErrorIs(t, err, deffile.ErrUnknownEnum)
	assert.NotErrorIs(t, err, apis.ErrInvalidValue)
}

func TestNameCmd_ConfigSeparator(t *testing.T) {
	path := writeFile(t, "enums.yaml", defs)
	cfg := writeFile(t, "enumx.yaml", `
resolution:
  separator: " | "
  strip_whitespace: false
  max_unwrap: 4
logging:
  level: warn
`)
	st, out, _ := streams()

	cmd := &NameCmd{Source: Source{Defs: path, Config: cfg}, Type: "access", Values: []string{"3"}}
	require.NoError(t, cmd.Run(st))
	assert.Equal(t, "Read | Write\n", out.String())
}

func TestNameCmd_BadConfig(t *testing.T) {
	path := writeFile(t, "enums.yaml", defs)
	cfg := writeFile(t, "enumx.yaml", "logging:\n  level: loud\n")
	st, _, _ := streams()

	cmd := &NameCmd{Source: Source{Defs: path, Config: cfg}, Type: "letter", Values: []string{"0"}}
	assert.Error(t, cmd.Run(st))
}

func TestDescribeCmd(t *testing.T) {
	path := writeFile(t, "enums.yaml", defs)

	cases := []struct {
		typ     string
		kind    apis.Kind
		names   []string
		entries int
	}{
		{"letter", apis.Dense, []string{"A", "B", "C"}, 0},
		{"level", apis.Sparse, nil, 2},
		{"access", apis.Unsupported, nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.typ, func(t *testing.T) {
			st, out, _ := streams()
			require.NoError(t, (&DescribeCmd{Source: Source{Defs: path}, Type: tc.typ}).Run(st))

			var got apis.Outcome
			require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
			assert.Equal(t, tc.kind, got.Kind)
			assert.Equal(t, tc.typ, got.Type)
			assert.Equal(t, tc.names, got.Names)
			assert.Len(t, got.Entries, tc.entries)
		})
	}
}

func TestListCmd(t *testing.T) {
	path := writeFile(t, "enums.yaml", defs)
	st, out, _ := streams()

	require.NoError(t, (&ListCmd{Defs: path}).Run(st))
	assert.Equal(t, "letter\tenum\t3\nlevel\tenum\t2\naccess\tflags\t3\n", out.String())
}

func TestVersionCmd(t *testing.T) {
	st, out, _ := streams()
	require.NoError(t, (&VersionCmd{}).Run(st))
	assert.NotEmpty(t, bytes.TrimSpace(out.Bytes()))
}

func TestParseValue(t *testing.T) {
	cases := map[string]int64{
		"0":                    0,
		"-1":                   -1,
		"0x10":                 16,
		"0b101":                5,
		"18446744073709551615": -1,
	}
	for in, want := range cases {
		got, err := parseValue(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := parseValue("nope")
	assert.Error(t, err)
}
