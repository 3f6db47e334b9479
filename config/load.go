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

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"dirpx.dev/enumx/apis"
)

// ErrInvalidFile is returned when a configuration document fails validation.
var ErrInvalidFile = errors.New("enumx(config): invalid configuration file")

var validate = validator.New(validator.WithRequiredStructEnabled())

// File is the on-disk configuration document.
type File struct {
	Resolution Resolution `yaml:"resolution"`
	Logging    Logging    `yaml:"logging"`
}

// Resolution mirrors apis.Config.
type Resolution struct {
	Separator       string `yaml:"separator" validate:"required"`
	StripWhitespace bool   `yaml:"strip_whitespace"`
	MaxUnwrap       int    `yaml:"max_unwrap" validate:"min=1,max=64"`
}

// Logging holds logger settings used by binaries.
type Logging struct {
	Level   string `yaml:"level" validate:"oneof=debug info warn error"`
	LogFile string `yaml:"log_file"`
}

// DefaultFile returns a File populated with defaults.
func DefaultFile() *File {
	cfg := DefaultConfig()
	return &File{
		Resolution: Resolution{
			Separator:       cfg.Separator,
			StripWhitespace: cfg.StripWhitespace,
			MaxUnwrap:       cfg.MaxUnwrap,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// Load reads path on top of the defaults (defaults < file).
// An empty path yields the defaults.
func Load(path string) (*File, error) {
	f := DefaultFile()
	if path == "" {
		return f, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	if err := Decode(data, f); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	return f, nil
}

// Decode merges YAML data into f and validates the result.
func Decode(data []byte, f *File) error {
	if err := yaml.Unmarshal(data, f); err != nil {
		return err
	}
	return f.Validate()
}

// Validate checks field constraints.
func (f *File) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	return nil
}

// Config converts the resolution section into an apis.Config.
func (f *File) Config() apis.Config {
	return NewConfig(
		WithSeparator(f.Resolution.Separator),
		WithStripWhitespace(f.Resolution.StripWhitespace),
		WithMaxUnwrap(f.Resolution.MaxUnwrap),
	)
}
