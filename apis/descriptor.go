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

// Entry is a single declared member of an enumerated type.
type Entry struct {
	// Value is the integral representation of the member.
	Value int64 `yaml:"value" json:"value"`
	// Name is the declared symbolic name.
	Name string `yaml:"name" json:"name" validate:"required"`
}

// Descriptor is the value/name table of one enumerated type.
// It is derived transiently on a cache miss and never persisted.
type Descriptor struct {
	// Type is a human-readable, stable identity for the enum (e.g. "palette.Color").
	Type string `yaml:"type" json:"type"`
	// Flags reports whether the type is meant to be combined as a bitmask.
	Flags bool `yaml:"flags" json:"flags"`
	// Entries are the declared members in declaration order.
	// Names are unique; values may repeat or skip.
	Entries []Entry `yaml:"entries" json:"entries" validate:"unique=Name,dive"`
}

// Equal reports whether two descriptors describe the same enum.
func (d Descriptor) Equal(o Descriptor) bool {
	if d.Type != o.Type || d.Flags != o.Flags || len(d.Entries) != len(o.Entries) {
		return false
	}
	for i := range d.Entries {
		if d.Entries[i] != o.Entries[i] {
			return false
		}
	}
	return true
}

// Provider yields the Descriptor of one enumerated type. Caches invoke it only
// on a miss; errors it returns are propagated to the caller unchanged.
type Provider func() (Descriptor, error)

// ProviderOf returns a Provider that always yields d.
func ProviderOf(d Descriptor) Provider {
	return func() (Descriptor, error) { return d, nil }
}

// Enumerator is implemented by Go enum types that describe their own members.
//
// EnumEntries is called on the zero value of the type (or a pointer to it), so
// implementations must not depend on the receiver's value.
type Enumerator interface {
	EnumEntries() []Entry
}

// Flagger marks an enum type as flags-style when EnumFlags returns true.
type Flagger interface {
	EnumFlags() bool
}
