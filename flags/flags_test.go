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

package flags_test

import (
	"testing"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/flags"
)

var access = apis.Descriptor{Type: "io.Access", Flags: true, Entries: []apis.Entry{
	{Value: 0, Name: "None"},
	{Value: 1, Name: "Read"},
	{Value: 2, Name: "Write"},
}}

func TestFormat(t *testing.T) {
	withAll := access
	withAll.Entries = append(append([]apis.Entry(nil), access.Entries...), apis.Entry{Value: 3, Name: "ReadWrite"})

	noZero := apis.Descriptor{Flags: true, Entries: []apis.Entry{{Value: 4, Name: "Exec"}, {Value: 1, Name: "Read"}}}

	cases := []struct {
		name  string
		desc  apis.Descriptor
		value int64
		want  string
	}{
		{"single", access, 1, "Read"},
		{"combined", access, 3, "Read, Write"},
		{"zero declared", access, 0, "None"},
		{"zero undeclared", noZero, 0, "0"},
		{"declaration order ignored", noZero, 5, "Read, Exec"},
		{"undeclared bits", access, 4, "4"},
		{"partly undeclared bits", access, 7, "7"},
		{"composite member preferred", withAll, 3, "ReadWrite"},
		{"negative undeclared", access, -8, "-8"},
		{"empty descriptor", apis.Descriptor{Flags: true}, 2, "2"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := flags.Format(tc.desc, tc.value, ", "); got != tc.want {
				t.Fatalf("Format(%d) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestFormat_HighBit(t *testing.T) {
	d := apis.Descriptor{Flags: true, Entries: []apis.Entry{
		{Value: 1, Name: "Low"},
		{Value: -1 << 63, Name: "Top"},
	}}
	if got := flags.Format(d, -1<<63|1, "|"); got != "Low|Top" {
		t.Fatalf("Format = %q, want Low|Top", got)
	}
}

func TestFormat_DoesNotReorderInput(t *testing.T) {
	d := apis.Descriptor{Entries: []apis.Entry{{Value: 2, Name: "B"}, {Value: 1, Name: "A"}}}
	_ = flags.Format(d, 3, ",")
	if d.Entries[0].Name != "B" {
		t.Fatal("Format sorted the caller's entries in place")
	}
}

func TestStrip(t *testing.T) {
	cases := map[string]string{
		"Read, Write":          "Read,Write",
		" a\tb\nc d　": "abcd",
		"":                     "",
		"NoSpace":              "NoSpace",
		"Two Words, Other":     "TwoWords,Other",
	}
	for in, want := range cases {
		if got := flags.Strip(in); got != want {
			t.Errorf("Strip(%q) = %q, want %q", in, got, want)
		}
	}
}
