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

package strategy

import (
	"reflect"

	"dirpx.dev/enumx/apis"
	uref "dirpx.dev/enumx/utils/reflect"
)

// NewEnumeratorStrategy creates an apis.Strategy that uses apis.Enumerator.
func NewEnumeratorStrategy() apis.Strategy {
	return &enumeratorStrategy{}
}

// enumeratorStrategy is the self-description fast path: if the enum type (or
// a pointer to it) implements apis.Enumerator, its EnumEntries() are used and
// the chain stops. apis.Flagger marks the descriptor as flags-style.
type enumeratorStrategy struct{}

// Ensure enumeratorStrategy implements apis.Strategy.
var _ apis.Strategy = (*enumeratorStrategy)(nil)

// TryDescribe builds a descriptor from the zero value of the normalized type.
func (*enumeratorStrategy) TryDescribe(t reflect.Type, cfg apis.Config) (apis.Descriptor, bool) {
	if t == nil {
		return apis.Descriptor{}, false
	}
	base, err := uref.Normalize(t, cfg)
	if err != nil {
		return apis.Descriptor{}, false
	}

	var v any
	switch {
	case base.Implements(enumeratorType):
		v = reflect.Zero(base).Interface()
	case reflect.PointerTo(base).Implements(enumeratorType):
		v = reflect.New(base).Interface()
	default:
		return apis.Descriptor{}, false
	}

	d := apis.Descriptor{
		Type:    uref.TypeName(base),
		Entries: v.(apis.Enumerator).EnumEntries(),
	}
	if f, ok := v.(apis.Flagger); ok {
		d.Flags = f.EnumFlags()
	}
	return d, true
}

var enumeratorType = reflect.TypeFor[apis.Enumerator]()
