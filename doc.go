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

// Package enumx turns raw enum values into their declared names quickly.
//
// Go has no language-level enums: an enum is a named integer type plus a set
// of constants. enumx learns the members of such a type once, from a
// Descriptor, and memoizes a specialized resolver per type so that later
// lookups skip any generic composition work.
//
// # Design
//
// Resolution is split into small layers, each behind an interface in apis:
//
//   - Descriptor acquisition: a Resolver runs a chain of strategies. The
//     default chain asks the type itself first (apis.Enumerator, optionally
//     apis.Flagger) and falls back to a Registry of explicitly registered
//     descriptors.
//
//   - Resolver building: builder.Build inspects a descriptor once and picks
//     a dispatch strategy:
//
//     1. Dense, when the declared values are exactly 0..n-1 in declaration
//     order. Lookup is a bounds check and an index.
//     2. Sparse, otherwise. Lookup scans the entries in declaration order and
//     the first declared match wins, so aliases resolve to the first name.
//     3. Unsupported, for flags-style enums. No resolver is built; callers
//     compose names with flags.Format instead.
//
//   - Caching: a Cache maps each type key to its built Outcome. Outcomes are
//     published with sync.Map.LoadOrStore, so concurrent first use of a type
//     may build twice but always converges on one stored Outcome. The cache
//     is append-only for the lifetime of its Engine.
//
// # Engines
//
// An Engine owns one Config, Registry, Resolver and Cache. Construct one per
// component (or per test) with New:
//
//	e := enumx.New(enumx.WithLogger(log))
//	_ = e.Register(reflect.TypeFor[Color](), apis.Descriptor{Entries: ...})
//	name, err := enumx.NameOf(e, Green)
//
// A process-wide default Engine backs the package-level helpers:
//
//	enumx.Register[Color](enumx.Entry(Red, "Red"), enumx.Entry(Green, "Green"))
//	name, err := enumx.Name(Green)
//	func (c Color) String() string { return enumx.String(c) }
//
// Readers load the default engine through an atomic pointer and never lock.
// Writers (SetConfig, SetBuilder, SetRegistry, SetLogger, SetDefault) take a
// build mutex, assemble a new Engine and publish it atomically.
//
// # Errors
//
// A value that matches no declared member of a non-flags enum fails with an
// *apis.LookupError, and errors.Is(err, apis.ErrInvalidValue) holds. Such a
// failure is terminal for that value. Errors raised while acquiring a
// descriptor are returned unchanged.
//
// # Flags
//
// Flags-style enums never fail: Stringify renders any bit pattern by
// composing member names with Config.Separator and, when
// Config.StripWhitespace is set (the default), removing every whitespace
// rune from the result. Member names containing spaces are altered too.
package enumx
