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
	"errors"
	"reflect"

	"go.uber.org/zap"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/builder"
	"dirpx.dev/enumx/cache"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/flags"
	"dirpx.dev/enumx/registry"
	uref "dirpx.dev/enumx/utils/reflect"
)

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("enumx: builder returned nil registry")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("enumx: builder returned nil resolver")
	// ErrNilCache is returned when a builder returns a nil cache.
	ErrNilCache = errors.New("enumx: builder returned nil cache")
)

// Engine stringifies enum values through a resolver cache it owns.
//
// An Engine is immutable once built and safe for concurrent use. Each Engine
// has its own cache, so tests can build a fresh one per case.
type Engine struct {
	cfg   apis.Config
	bld   apis.Builder
	reg   apis.Registry
	res   apis.Resolver
	cache apis.Cache
	log   *zap.Logger
}

// Option configures New.
type Option func(*options)

type options struct {
	cfg apis.Config
	bld apis.Builder
	reg apis.Registry
	log *zap.Logger
}

// WithConfig sets the configuration. The default is config.DefaultConfig().
func WithConfig(cfg apis.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithBuilder sets the builder that composes registry, resolver and cache.
func WithBuilder(b apis.Builder) Option {
	return func(o *options) {
		if b != nil {
			o.bld = b
		}
	}
}

// WithRegistry uses reg as is instead of building a fresh registry.
func WithRegistry(reg apis.Registry) Option {
	return func(o *options) { o.reg = reg }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// New builds an Engine. It panics if the builder returns a nil layer.
func New(opts ...Option) *Engine {
	o := options{
		cfg: config.DefaultConfig(),
		bld: builder.New(),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	reg := o.reg
	if reg == nil {
		reg = o.bld.BuildRegistry(o.cfg, nil)
	}
	if reg == nil {
		panic(ErrNilRegistry)
	}
	res := o.bld.BuildResolver(o.cfg, reg)
	if res == nil {
		panic(ErrNilResolver)
	}
	c := o.bld.BuildCache(o.cfg, o.log)
	if c == nil {
		panic(ErrNilCache)
	}

	return &Engine{
		cfg:   o.cfg,
		bld:   o.bld,
		reg:   reg,
		res:   res,
		cache: c,
		log:   o.log,
	}
}

// Config returns the engine configuration.
func (e *Engine) Config() apis.Config { return e.cfg }

// Builder returns the builder the engine was composed with.
func (e *Engine) Builder() apis.Builder { return e.bld }

// Registry returns the descriptor registry.
func (e *Engine) Registry() apis.Registry { return e.reg }

// Resolver returns the descriptor resolver chain.
func (e *Engine) Resolver() apis.Resolver { return e.res }

// Cache returns the resolver cache.
func (e *Engine) Cache() apis.Cache { return e.cache }

// Logger returns the engine logger.
func (e *Engine) Logger() *zap.Logger { return e.log }

// Register records d for the enum type t. Types must be registered before
// their first stringification: published outcomes are never rebuilt.
func (e *Engine) Register(t reflect.Type, d apis.Descriptor) error {
	err := e.reg.Register(t, d)
	if errors.Is(err, registry.ErrConflictingRegistration) {
		e.log.Warn("conflicting enum registration", zap.Stringer("go_type", t), zap.Error(err))
	}
	return err
}

// Stringify returns the declared name of value for the enum identified by key.
//
// Flags-style enums are rendered by composing member names (see flags.Format),
// with whitespace stripped when the configuration asks for it; any bit pattern
// yields a string. Other enums fail with an *apis.LookupError for undeclared
// values. Provider errors are returned unchanged.
func (e *Engine) Stringify(key any, provider apis.Provider, value int64) (string, error) {
	name, handled, err := e.cache.Stringify(key, provider, value)
	if err != nil {
		return "", err
	}
	if handled {
		return name, nil
	}
	return e.fallback(provider, value)
}

// Fallback renders value through the generic flags composition regardless of
// the enum's kind.
func (e *Engine) Fallback(provider apis.Provider, value int64) (string, error) {
	return e.fallback(provider, value)
}

func (e *Engine) fallback(provider apis.Provider, value int64) (string, error) {
	if provider == nil {
		return "", cache.ErrNilProvider
	}
	d, err := provider()
	if err != nil {
		return "", err
	}
	s := flags.Format(d, value, e.cfg.Separator)
	if e.cfg.StripWhitespace {
		s = flags.Strip(s)
	}
	return s, nil
}

// Type stringifies value as a member of the Go enum type t (pointers are
// unwrapped). Descriptors come from the engine's resolver chain.
func (e *Engine) Type(t reflect.Type, value int64) (string, error) {
	base, err := uref.Normalize(t, e.cfg)
	if err != nil {
		return "", err
	}
	return e.Stringify(base, e.provider(base), value)
}

// Value stringifies v, which must be a Go enum value or a pointer to one.
func (e *Engine) Value(v any) (string, error) {
	if v == nil {
		return "", uref.ErrReflectNilValue
	}
	n, err := uref.Int64(reflect.ValueOf(v), e.cfg)
	if err != nil {
		return "", err
	}
	return e.Type(reflect.TypeOf(v), n)
}

// Outcome returns the resolver built for the Go enum type t.
func (e *Engine) Outcome(t reflect.Type) (apis.Outcome, error) {
	base, err := uref.Normalize(t, e.cfg)
	if err != nil {
		return apis.Outcome{}, err
	}
	return e.cache.Outcome(base, e.provider(base))
}

func (e *Engine) provider(t reflect.Type) apis.Provider {
	return func() (apis.Descriptor, error) {
		return e.res.Describe(t, e.cfg)
	}
}
