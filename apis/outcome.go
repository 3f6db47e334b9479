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

package apis

import (
	"fmt"
	"strings"
)

// Kind selects how an Outcome resolves a value to a name.
type Kind uint8

const (
	// Dense resolves by direct index: declared values are exactly 0..n-1.
	Dense Kind = iota
	// Sparse resolves by ordered linear match in declaration order.
	Sparse
	// Unsupported marks flags-style enums; callers must use the fallback path.
	Unsupported
)

// String returns "Dense", "Sparse", "Unsupported", or "Unknown(<n>)".
func (k Kind) String() string {
	switch k {
	case Dense:
		return "Dense"
	case Sparse:
		return "Sparse"
	case Unsupported:
		return "Unsupported"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// ParseKind parses the textual form of a Kind, case-insensitively.
func ParseKind(s string) (Kind, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Unsupported, fmt.Errorf("enumx(apis): empty kind")
	}
	switch strings.ToUpper(trimmed) {
	case "DENSE":
		return Dense, nil
	case "SPARSE":
		return Sparse, nil
	case "UNSUPPORTED":
		return Unsupported, nil
	default:
		return Unsupported, fmt.Errorf("enumx(apis): unknown kind %q", s)
	}
}

// MustParseKind is like ParseKind but panics on invalid input.
func MustParseKind(s string) Kind {
	k, err := ParseKind(s)
	if err != nil {
		panic(err)
	}
	return k
}

// MarshalText implements encoding.TextMarshaler.
// Unknown kinds are refused rather than serialized as "Unknown(n)".
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Dense, Sparse, Unsupported:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("enumx(apis): cannot marshal unknown kind %d", uint8(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler. On failure k is left unchanged.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Outcome is the resolver built once per enumerated type.
// A published Outcome is immutable; its slices must never be written to.
type Outcome struct {
	// Kind selects the dispatch strategy.
	Kind Kind `yaml:"kind" json:"kind"`
	// Type is copied from the descriptor for diagnostics.
	Type string `yaml:"type" json:"type"`
	// Names is the dense name table: Names[i] is the name of value i.
	Names []string `yaml:"names,omitempty" json:"names,omitempty"`
	// Entries is the sparse match table in declaration order.
	Entries []Entry `yaml:"entries,omitempty" json:"entries,omitempty"`
}

// Count returns the number of dense slots (0 for other kinds).
func (o Outcome) Count() int {
	if o.Kind != Dense {
		return 0
	}
	return len(o.Names)
}

// Lookup resolves value to its declared name.
// Unsupported outcomes never resolve.
func (o Outcome) Lookup(value int64) (string, bool) {
	switch o.Kind {
	case Dense:
		if value < 0 || value >= int64(len(o.Names)) {
			return "", false
		}
		return o.Names[value], true
	case Sparse:
		for _, e := range o.Entries {
			if e.Value == value {
				return e.Name, true
			}
		}
		return "", false
	default:
		return "", false
	}
}
