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

package reflect

import (
	"errors"
	"path"
	"reflect"
	"strings"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectNilValue is returned when an enum value is nil or a nil pointer.
	ErrReflectNilValue = errors.New("reflect: nil enum value provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping
	// pointers) is not a named, package-level type.
	ErrReflectTypeNotNamed = errors.New("reflect: type is not a named package type")
	// ErrReflectNotInteger indicates that the underlying kind is not an integer.
	ErrReflectNotInteger = errors.New("reflect: type is not an integer kind")
)

// Normalize unwraps pointers according to cfg.MaxUnwrap and returns the
// nearest named integer type, or an error if none is found.
//
// If MaxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; i < maxUnwrap && t.Kind() == reflect.Pointer; i++ {
		t = t.Elem()
	}
	if t.Kind() == reflect.Pointer {
		return nil, ErrReflectTypeNotNamed
	}
	if !IsInteger(t.Kind()) {
		return nil, ErrReflectNotInteger
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return nil, ErrReflectTypeNotNamed
	}
	return t, nil
}

// Int64 returns the integral representation of an enum value, dereferencing
// pointers up to cfg.MaxUnwrap. Unsigned values above math.MaxInt64 wrap.
func Int64(v reflect.Value, cfg apis.Config) (int64, error) {
	if !v.IsValid() {
		return 0, ErrReflectNilValue
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; i < maxUnwrap && v.Kind() == reflect.Pointer; i++ {
		if v.IsNil() {
			return 0, ErrReflectNilValue
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int64(v.Uint()), nil
	case reflect.Pointer:
		return 0, ErrReflectTypeNotNamed
	default:
		return 0, ErrReflectNotInteger
	}
}

// IsInteger reports whether k is a signed or unsigned integer kind.
func IsInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// TypeName returns a stable "pkg.Type" identifier for t with generic
// instantiation parameters stripped. Builtin types yield their bare name.
func TypeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	name := stripTypeParams(t.Name())
	if p := t.PkgPath(); p != "" {
		name = path.Base(p) + "." + name
	}
	return name
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
