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

package resolver

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/enumx/apis"
	uref "dirpx.dev/enumx/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("enumx(resolver): nil reflect.Type provided")
	// ErrNotEnum is returned when no strategy can describe a type.
	ErrNotEnum = errors.New("enumx(resolver): type is not a described enum")
)

// New constructs an apis.Resolver that tries the given strategies in order.
// Nil strategies are ignored. The returned resolver is safe for concurrent use
// provided strategies themselves are safe for concurrent TryDescribe calls.
func New(strategies ...apis.Strategy) apis.Resolver {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{strats: out}
}

// chain is an immutable, order-preserving resolver over a set of strategies.
type chain struct {
	strats []apis.Strategy
}

// Describe runs strategies in order until one handles the type.
func (r chain) Describe(t reflect.Type, cfg apis.Config) (apis.Descriptor, error) {
	if t == nil {
		return apis.Descriptor{}, ErrNilType
	}
	for _, s := range r.strats {
		if d, ok := s.TryDescribe(t, cfg); ok {
			return d, nil
		}
	}
	// Report normalization problems before the generic miss.
	if _, err := uref.Normalize(t, cfg); err != nil {
		return apis.Descriptor{}, fmt.Errorf("%w: %v: %w", ErrNotEnum, t, err)
	}
	return apis.Descriptor{}, fmt.Errorf("%w: %v", ErrNotEnum, t)
}
