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

package builder

import (
	"go.uber.org/zap"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/cache"
	"dirpx.dev/enumx/registry"
	"dirpx.dev/enumx/resolver"
	"dirpx.dev/enumx/strategy"
)

// Build decides the dispatch strategy for d.
//
// Flags-style descriptors are Unsupported without inspecting values. A
// descriptor whose i-th entry has value i for every i is Dense (an empty one
// included); anything else is Sparse with entries kept in declaration order.
func Build(d apis.Descriptor) apis.Outcome {
	if d.Flags {
		return apis.Outcome{Kind: apis.Unsupported, Type: d.Type}
	}

	dense := true
	for i, e := range d.Entries {
		if e.Value != int64(i) {
			dense = false
			break
		}
	}

	if dense {
		names := make([]string, len(d.Entries))
		for i, e := range d.Entries {
			names[i] = e.Name
		}
		return apis.Outcome{Kind: apis.Dense, Type: d.Type, Names: names}
	}

	entries := make([]apis.Entry, len(d.Entries))
	copy(entries, d.Entries)
	return apis.Outcome{Kind: apis.Sparse, Type: d.Type, Entries: entries}
}

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildOutcome delegates to Build.
func (b *builder) BuildOutcome(d apis.Descriptor) apis.Outcome {
	return Build(d)
}

// BuildRegistry builds and returns a new apis.Registry based on the provided configuration
// and pre-existing registry. If a pre-existing registry is provided, its entries are copied
// into the new registry.
func (b *builder) BuildRegistry(cfg apis.Config, preg apis.Registry) apis.Registry {
	nreg := registry.New(cfg)
	if preg != nil {
		for _, e := range preg.Entries() {
			_ = nreg.Register(e.Type, e.Descriptor)
		}
	}
	return nreg
}

// BuildResolver builds and returns a new apis.Resolver that consults
// self-describing types first and the registry second.
func (b *builder) BuildResolver(_ apis.Config, reg apis.Registry) apis.Resolver {
	return resolver.New(
		strategy.NewEnumeratorStrategy(),
		strategy.NewRegistryStrategy(reg),
	)
}

// BuildCache builds an empty cache backed by BuildOutcome.
func (b *builder) BuildCache(_ apis.Config, log *zap.Logger) apis.Cache {
	return cache.New(b.BuildOutcome, cache.WithLogger(log))
}
