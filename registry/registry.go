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

package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
	uref "dirpx.dev/enumx/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("enumx(registry): nil reflect.Type provided")
	// ErrInvalidDescriptor is returned when a descriptor has empty or duplicate names.
	ErrInvalidDescriptor = errors.New("enumx(registry): invalid descriptor")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a type with a different descriptor.
	ErrConflictingRegistration = errors.New("enumx(registry): conflicting type registration")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that every entry of d has a non-empty, unique name.
func Validate(d apis.Descriptor) error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDescriptor, err)
	}
	return nil
}

// New constructs a Registry that normalizes types according to cfg.
// Only MaxUnwrap is used here.
func New(cfg apis.Config) apis.Registry {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &registry{cfg: cfg}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// cfg is the configuration used for type normalization.
	cfg apis.Config
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps reflect.Type to apis.Descriptor.
	m sync.Map
	// count tracks the number of registered entries.
	count int
}

// Register associates the normalized enum type of t with d.
// An empty d.Type is filled with the "pkg.Type" name of t.
func (r *registry) Register(t reflect.Type, d apis.Descriptor) error {
	// Validate inputs early.
	if t == nil {
		return ErrNilType
	}
	if err := Validate(d); err != nil {
		return err
	}

	// Normalize to the nearest named integer type according to r.cfg.
	b, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return err
	}
	if d.Type == "" {
		d.Type = uref.TypeName(b)
	}
	d.Entries = append([]apis.Entry(nil), d.Entries...)

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(b); ok {
		return conflict(old.(apis.Descriptor), d)
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(b); ok {
		return conflict(old.(apis.Descriptor), d)
	}

	r.m.Store(b, d)
	r.count++
	return nil
}

// conflict returns nil for idempotent re-registration.
func conflict(old, d apis.Descriptor) error {
	if old.Equal(d) {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrConflictingRegistration, d.Type)
}

// Lookup returns the descriptor registered for t, if any.
func (r *registry) Lookup(t reflect.Type) (apis.Descriptor, bool) {
	if t == nil {
		return apis.Descriptor{}, false
	}
	nt, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return apis.Descriptor{}, false
	}
	if v, ok := r.m.Load(nt); ok {
		return v.(apis.Descriptor), true
	}
	return apis.Descriptor{}, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.RegistryEntry {
	entries := make([]apis.RegistryEntry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.RegistryEntry{
			Type:       key.(reflect.Type),
			Descriptor: value.(apis.Descriptor),
		})
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}
