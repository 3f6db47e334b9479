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

import (
	"errors"
	"fmt"
)

// ErrInvalidValue reports a value that matches no declared member of a
// non-flags enum. It is terminal: retrying with the same value fails again.
var ErrInvalidValue = errors.New("enumx: invalid enum value")

// LookupError carries the type and value of a failed lookup.
// errors.Is(err, ErrInvalidValue) holds for every LookupError.
type LookupError struct {
	Type  string
	Value int64
}

func (e *LookupError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("%s: %d", ErrInvalidValue, e.Value)
	}
	return fmt.Sprintf("%s: %d is not a declared %s", ErrInvalidValue, e.Value, e.Type)
}

// Unwrap returns ErrInvalidValue.
func (e *LookupError) Unwrap() error { return ErrInvalidValue }
