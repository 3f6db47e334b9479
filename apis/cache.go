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

// Cache is a type-keyed, append-only store of built outcomes.
//
// Keys identify enumerated types and must be comparable (reflect.Type for Go
// types). Implementations must be safe for concurrent use, and concurrent
// first use of one key must converge on a single published Outcome.
type Cache interface {
	// Outcome returns the Outcome stored for key, building and publishing it
	// from provider on a miss.
	Outcome(key any, provider Provider) (Outcome, error)

	// Stringify resolves value through the Outcome for key.
	// handled is false for Unsupported outcomes: the caller must use the
	// fallback path. Undeclared values fail with a *LookupError.
	Stringify(key any, provider Provider, value int64) (name string, handled bool, err error)

	// Len returns the number of published outcomes.
	Len() int

	// Entries returns a snapshot of published outcomes (order is unspecified).
	Entries() []CacheEntry

	// Stats returns counters describing cache activity.
	Stats() CacheStats
}

// CacheEntry is a single (key, outcome) pair in a Cache snapshot.
type CacheEntry struct {
	Key     any
	Outcome Outcome
}

// CacheStats are monotonically increasing counters.
type CacheStats struct {
	// Hits counts lookups served from a published outcome.
	Hits uint64
	// Misses counts lookups that invoked the provider.
	Misses uint64
	// Builds counts outcomes published.
	Builds uint64
	// Discarded counts builds that lost a publication race.
	Discarded uint64
}
