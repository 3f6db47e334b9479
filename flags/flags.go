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

// Package flags renders values of flags-style enums by composing declared
// member names. It performs no validation: every bit pattern yields a string.
package flags

import (
	"slices"
	"strconv"
	"strings"
	"unicode"

	"dirpx.dev/enumx/apis"
)

// Format returns the generic composition of value over d's members.
//
// Members are considered in ascending unsigned order. Zero renders as the
// first zero-valued member, or "0" if none is declared. Otherwise members are
// taken greedily from the highest value down while their bits are contained in
// what remains; the chosen names are joined by sep in ascending order. If any
// bits remain undeclared, the decimal value is returned instead.
func Format(d apis.Descriptor, value int64, sep string) string {
	sorted := slices.Clone(d.Entries)
	slices.SortStableFunc(sorted, func(a, b apis.Entry) int {
		switch ua, ub := uint64(a.Value), uint64(b.Value); {
		case ua < ub:
			return -1
		case ua > ub:
			return 1
		default:
			return 0
		}
	})

	if value == 0 {
		if len(sorted) > 0 && sorted[0].Value == 0 {
			return sorted[0].Name
		}
		return "0"
	}

	rest := uint64(value)
	var picked []string
	for i := len(sorted) - 1; i >= 0 && rest != 0; i-- {
		v := uint64(sorted[i].Value)
		if v != 0 && rest&v == v {
			picked = append(picked, sorted[i].Name)
			rest &^= v
		}
	}
	if rest != 0 {
		return strconv.FormatInt(value, 10)
	}

	slices.Reverse(picked)
	return strings.Join(picked, sep)
}

// Strip removes every whitespace rune from s.
func Strip(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
