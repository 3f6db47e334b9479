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

package registry_test

import (
	"reflect"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/registry"
)

// A few named integer types standing in for distinct enums.
type T0 int
type T1 uint8
type T2 int16
type T3 uint16
type T4 int32
type T5 uint32
type T6 int64
type T7 uint64
type T8 uint
type T9 int8

// TestConcurrentRegisterAndLookup verifies that Register/Lookup/Entries/Count
// are race-free and consistent under concurrent use.
func TestConcurrentRegisterAndLookup(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	types := []reflect.Type{
		reflect.TypeOf(T0(0)), reflect.TypeOf(T1(0)), reflect.TypeOf(T2(0)),
		reflect.TypeOf(T3(0)), reflect.TypeOf(T4(0)), reflect.TypeOf(T5(0)),
		reflect.TypeOf(T6(0)), reflect.TypeOf(T7(0)), reflect.TypeOf(T8(0)),
		reflect.TypeOf(T9(0)),
	}
	names := []string{"T0", "T1", "T2", "T3", "T4", "T5", "T6", "T7", "T8", "T9"}
	descs := make([]apis.Descriptor, len(names))
	for i, n := range names {
		descs[i] = apis.Descriptor{Type: n, Entries: []apis.Entry{{Value: int64(i), Name: n}}}
	}

	// Register once (sequential) to establish baseline.
	for i, tt := range types {
		if err := reg.Register(tt, descs[i]); err != nil {
			t.Fatalf("register %s: %v", tt, err)
		}
	}

	// Hammer with concurrent lookups and idempotent re-registrations.
	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				tt := types[i%len(types)]
				if got, ok := reg.Lookup(tt); !ok || got.Type == "" {
					t.Errorf("lookup failed for %v: ok=%v got=%+v", tt, ok, got)
					return
				}
				_ = reg.Count()
				_ = reg.Entries()
			}
		}()
	}

	// Writers (idempotent re-register)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				j := (i + id) % len(types)
				_ = reg.Register(types[j], descs[j]) // must be safe & idempotent
			}
		}(w)
	}

	wg.Wait()

	// Final consistency checks.
	if reg.Count() != len(types) {
		t.Fatalf("count mismatch: got %d want %d", reg.Count(), len(types))
	}
	got := map[reflect.Type]string{}
	for _, e := range reg.Entries() {
		got[e.Type] = e.Descriptor.Type
	}
	for i, tt := range types {
		if got[tt] != names[i] {
			t.Fatalf("entry mismatch for %v: got %q want %q", tt, got[tt], names[i])
		}
	}
}

// TestResetSnapshot ensures Reset is safe and Entries returns a stable snapshot.
func TestResetSnapshot(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	_ = reg.Register(reflect.TypeOf(T0(0)), apis.Descriptor{Type: "T0"})
	_ = reg.Register(reflect.TypeOf(T1(0)), apis.Descriptor{Type: "T1"})

	snap := reg.Entries() // snapshot copy expected
	reg.Reset()

	// After Reset, Count() should be 0, but previous snapshot must still be usable.
	if reg.Count() != 0 {
		t.Fatalf("count after reset: got %d want 0", reg.Count())
	}
	if len(snap) != 2 {
		t.Fatalf("snapshot length changed unexpectedly: %d", len(snap))
	}
	// sanity
	if snap[0].Descriptor.Type == "" || snap[1].Descriptor.Type == "" {
		t.Fatalf("snapshot contents invalid after reset")
	}
}

// This ensures the interface is satisfied; not a test but a compile-time check.
var _ apis.Registry = registry.New(config.DefaultConfig())
