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

package apis

import "go.uber.org/zap"

// Builder composes the resolution layers from a Config.
type Builder interface {
	// BuildOutcome decides the dispatch strategy for d. It must be pure and
	// deterministic: the same descriptor always yields an equal Outcome.
	BuildOutcome(d Descriptor) Outcome
	// BuildRegistry constructs a Registry for Config. May migrate entries from prev.
	BuildRegistry(cfg Config, prev Registry) Registry
	// BuildResolver constructs a Resolver for Config and Registry.
	BuildResolver(cfg Config, reg Registry) Resolver
	// BuildCache constructs an empty Cache that builds outcomes with BuildOutcome.
	BuildCache(cfg Config, log *zap.Logger) Cache
}
