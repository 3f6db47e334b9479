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

// Package deffile loads enum definitions from YAML documents.
//
// Definition files describe enums that have no Go type, for example enums
// owned by another system whose values arrive as raw integers:
//
//	enums:
//	  - name: access
//	    flags: true
//	    values:
//	      - {name: None, value: 0}
//	      - {name: Read, value: 1}
//	      - {name: Write, value: 2}
//
// Each enum is addressed by a Key, which can be used directly as a cache key.
package deffile

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"dirpx.dev/enumx/apis"
)

var (
	// ErrInvalidDefinition is returned when a document fails validation.
	ErrInvalidDefinition = errors.New("enumx(deffile): invalid definition")
	// ErrUnknownEnum is returned when a name is not defined in the set.
	ErrUnknownEnum = errors.New("enumx(deffile): unknown enum")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Key identifies a file-defined enum in a cache.
type Key string

// Document is the on-disk shape of a definition file.
type Document struct {
	Enums []Enum `yaml:"enums" validate:"unique=Name,dive"`
}

// Enum is one enum definition. Values keep their declaration order.
type Enum struct {
	Name   string       `yaml:"name" validate:"required"`
	Flags  bool         `yaml:"flags"`
	Values []apis.Entry `yaml:"values" validate:"unique=Name,dive"`
}

// Set is an immutable collection of parsed definitions.
type Set struct {
	names []string
	descs map[string]apis.Descriptor
}

// Load reads and parses the definition file at path.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading definitions from %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading definitions from %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a definition document.
func Parse(data []byte) (*Set, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}

	s := &Set{descs: make(map[string]apis.Descriptor, len(doc.Enums))}
	for _, e := range doc.Enums {
		s.names = append(s.names, e.Name)
		s.descs[e.Name] = apis.Descriptor{
			Type:    e.Name,
			Flags:   e.Flags,
			Entries: e.Values,
		}
	}
	return s, nil
}

// Names returns the defined enum names in document order.
func (s *Set) Names() []string {
	return slices.Clone(s.names)
}

// Lookup returns the descriptor for name.
func (s *Set) Lookup(name string) (apis.Descriptor, bool) {
	d, ok := s.descs[name]
	if !ok {
		return apis.Descriptor{}, false
	}
	d.Entries = slices.Clone(d.Entries)
	return d, true
}

// Key returns the cache key for name.
func (s *Set) Key(name string) Key {
	return Key(name)
}

// Provider returns an apis.Provider for name. Unknown names fail with
// ErrUnknownEnum when the provider is invoked.
func (s *Set) Provider(name string) apis.Provider {
	return func() (apis.Descriptor, error) {
		d, ok := s.Lookup(name)
		if !ok {
			return apis.Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownEnum, name)
		}
		return d, nil
	}
}
