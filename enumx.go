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

package enumx

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"dirpx.dev/enumx/apis"
)

// init publishes the default engine.
func init() {
	st.Store(New())
}

// Integer is the set of types that can back an enum.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Entry declares a member of enum type T.
func Entry[T Integer](v T, name string) apis.Entry {
	return apis.Entry{Value: int64(v), Name: name}
}

// Name returns the declared name of v using the default engine.
func Name[T Integer](v T) (string, error) {
	return NameOf(st.Load(), v)
}

// NameOf returns the declared name of v using e.
func NameOf[T Integer](e *Engine, v T) (string, error) {
	return e.Type(reflect.TypeFor[T](), int64(v))
}

// MustName is like Name but panics on error.
func MustName[T Integer](v T) string {
	name, err := Name(v)
	if err != nil {
		panic(err)
	}
	return name
}

// String returns the declared name of v, or "Unknown(<n>)" when v cannot be
// resolved. It never panics and is suitable for fmt.Stringer implementations.
func String[T Integer](v T) string {
	name, err := Name(v)
	if err != nil {
		return fmt.Sprintf("Unknown(%d)", int64(v))
	}
	return name
}

// Register records the members of enum type T in the default engine's registry.
func Register[T Integer](entries ...apis.Entry) error {
	return st.Load().Register(reflect.TypeFor[T](), apis.Descriptor{Entries: entries})
}

// RegisterFlags is like Register but marks T as flags-style.
func RegisterFlags[T Integer](entries ...apis.Entry) error {
	return st.Load().Register(reflect.TypeFor[T](), apis.Descriptor{Flags: true, Entries: entries})
}

// Stringify resolves value for key through the default engine.
func Stringify(key any, provider apis.Provider, value int64) (string, error) {
	return st.Load().Stringify(key, provider, value)
}

// Default returns the default engine.
func Default() *Engine {
	return st.Load()
}

// SetDefault replaces the default engine. A nil engine is ignored.
func SetDefault(e *Engine) {
	if e == nil {
		return
	}
	buildMu.Lock()
	defer buildMu.Unlock()
	st.Store(e)
}

// SetConfig rebuilds the default engine with cfg. Registered descriptors are
// migrated through the builder; the cache starts empty.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	reg := old.bld.BuildRegistry(cfg, old.reg)
	st.Store(New(WithConfig(cfg), WithBuilder(old.bld), WithRegistry(reg), WithLogger(old.log)))
}

// SetBuilder rebuilds the default engine with b, migrating registered descriptors.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	reg := b.BuildRegistry(old.cfg, old.reg)
	st.Store(New(WithConfig(old.cfg), WithBuilder(b), WithRegistry(reg), WithLogger(old.log)))
}

// SetRegistry rebuilds the default engine around reg. The cache starts empty.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(New(WithConfig(old.cfg), WithBuilder(old.bld), WithRegistry(reg), WithLogger(old.log)))
}

// SetLogger rebuilds the default engine with log, keeping its registry.
func SetLogger(log *zap.Logger) {
	if log == nil {
		return
	}
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(New(WithConfig(old.cfg), WithBuilder(old.bld), WithRegistry(old.reg), WithLogger(log)))
}

// buildMu serializes writers so we never publish partially-built engines.
var buildMu sync.Mutex

// st is the default engine. Readers load it without locking.
var st atomic.Pointer[Engine]
