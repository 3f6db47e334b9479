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

package cache

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"dirpx.dev/enumx/apis"
)

var (
	// ErrNilKey is returned when a nil cache key is provided.
	ErrNilKey = errors.New("enumx(cache): nil key provided")
	// ErrUncomparableKey is returned when a key cannot be used as a map key.
	ErrUncomparableKey = errors.New("enumx(cache): key is not comparable")
	// ErrNilProvider is returned when a miss has no provider to build from.
	ErrNilProvider = errors.New("enumx(cache): nil provider on cache miss")
)

// BuildFunc turns a descriptor into an outcome. It must be pure.
type BuildFunc func(apis.Descriptor) apis.Outcome

// Option configures a cache.
type Option func(*cache)

// WithLogger sets the logger used for build diagnostics.
// A nil logger keeps the no-op default.
func WithLogger(log *zap.Logger) Option {
	return func(c *cache) {
		if log != nil {
			c.log = log
		}
	}
}

// New constructs an empty apis.Cache that builds outcomes with build.
func New(build BuildFunc, opts ...Option) apis.Cache {
	c := &cache{build: build, log: zap.NewNop()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// cache is an append-only apis.Cache backed by sync.Map.
//
// Outcomes are published with LoadOrStore: the first stored outcome for a key
// wins and concurrent builders that lose the race discard their work.
type cache struct {
	build BuildFunc
	log   *zap.Logger

	// m maps keys to *apis.Outcome.
	m sync.Map

	size      atomic.Int64
	hits      atomic.Uint64
	misses    atomic.Uint64
	builds    atomic.Uint64
	discarded atomic.Uint64
}

// Ensure cache implements apis.Cache.
var _ apis.Cache = (*cache)(nil)

// Outcome returns the published outcome for key, building it on a miss.
// Provider errors are returned unchanged and nothing is stored.
func (c *cache) Outcome(key any, provider apis.Provider) (apis.Outcome, error) {
	if key == nil {
		return apis.Outcome{}, ErrNilKey
	}
	if !reflect.TypeOf(key).Comparable() {
		return apis.Outcome{}, ErrUncomparableKey
	}

	// Fast read path.
	if v, ok := c.m.Load(key); ok {
		c.hits.Add(1)
		return *v.(*apis.Outcome), nil
	}

	c.misses.Add(1)
	if provider == nil {
		return apis.Outcome{}, ErrNilProvider
	}
	d, err := provider()
	if err != nil {
		return apis.Outcome{}, err
	}

	o := c.build(d)
	v, loaded := c.m.LoadOrStore(key, &o)
	if loaded {
		c.discarded.Add(1)
		c.log.Debug("discarded duplicate enum resolver build",
			zap.String("type", o.Type),
			zap.Stringer("kind", o.Kind),
		)
		return *v.(*apis.Outcome), nil
	}

	c.size.Add(1)
	c.builds.Add(1)
	c.log.Debug("built enum resolver",
		zap.String("type", o.Type),
		zap.Stringer("kind", o.Kind),
		zap.Int("entries", len(d.Entries)),
	)
	return o, nil
}

// Stringify resolves value through the outcome for key.
func (c *cache) Stringify(key any, provider apis.Provider, value int64) (string, bool, error) {
	o, err := c.Outcome(key, provider)
	if err != nil {
		return "", false, err
	}
	if o.Kind == apis.Unsupported {
		return "", false, nil
	}
	if name, ok := o.Lookup(value); ok {
		return name, true, nil
	}
	return "", true, &apis.LookupError{Type: o.Type, Value: value}
}

// Len returns the number of published outcomes.
func (c *cache) Len() int {
	return int(c.size.Load())
}

// Entries returns a snapshot for diagnostics (order is unspecified).
func (c *cache) Entries() []apis.CacheEntry {
	entries := make([]apis.CacheEntry, 0, c.Len())
	c.m.Range(func(key, value any) bool {
		entries = append(entries, apis.CacheEntry{
			Key:     key,
			Outcome: *value.(*apis.Outcome),
		})
		return true
	})
	return entries
}

// Stats returns a point-in-time copy of the counters.
func (c *cache) Stats() apis.CacheStats {
	return apis.CacheStats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Builds:    c.builds.Load(),
		Discarded: c.discarded.Load(),
	}
}
