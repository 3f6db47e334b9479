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

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"dirpx.dev/enumx"
	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/deffile"
	"dirpx.dev/enumx/internal/logger"
)

// Streams are the output streams commands write to.
type Streams struct {
	Out io.Writer
	Err io.Writer
}

// Source selects the definition and configuration files.
type Source struct {
	Defs   string `help:"Enum definition file (YAML)." required:"" type:"existingfile" short:"d"`
	Config string `help:"Configuration file (YAML)." type:"existingfile" short:"c"`
}

// open loads the configuration and definitions and builds an engine for them.
func (s Source) open(st *Streams) (*deffile.Set, *enumx.Engine, *zap.Logger, error) {
	f, err := config.Load(s.Config)
	if err != nil {
		return nil, nil, nil, err
	}
	log := logger.New(f.Logging.Level, logger.DefaultFileConfig(f.Logging.LogFile), st.Err)

	set, err := deffile.Load(s.Defs)
	if err != nil {
		_ = log.Sync()
		return nil, nil, nil, err
	}
	log.Debug("loaded enum definitions", zap.String("path", s.Defs), zap.Strings("enums", set.Names()))

	return set, enumx.New(enumx.WithConfig(f.Config()), enumx.WithLogger(log)), log, nil
}

type VersionCmd struct{}

func (c *VersionCmd) Run(st *Streams) error {
	_, err := fmt.Fprintln(st.Out, Version())
	return err
}

type NameCmd struct {
	Source `embed:""`

	Type   string   `arg:"" help:"Enum name as declared in the definition file."`
	Values []string `arg:"" help:"Values to resolve (decimal, 0x hex, 0o octal or 0b binary)."`
}

// Run prints one name per value. Values that do not resolve are reported on
// the error stream and make the command fail after all values are processed.
func (c *NameCmd) Run(st *Streams) error {
	set, e, log, err := c.open(st)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	key, provider := set.Key(c.Type), set.Provider(c.Type)

	var errs []error
	for _, raw := range c.Values {
		v, err := parseValue(raw)
		if err != nil {
			errs = append(errs, err)
			fmt.Fprintf(st.Err, "%s: %v\n", raw, err)
			continue
		}
		name, err := e.Stringify(key, provider, v)
		if err != nil {
			if !errors.Is(err, apis.ErrInvalidValue) {
				return err
			}
			errs = append(errs, err)
			fmt.Fprintf(st.Err, "%s: %v\n", raw, err)
			continue
		}
		fmt.Fprintln(st.Out, name)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d values could not be resolved: %w", len(errs), len(c.Values), errors.Join(errs...))
	}
	return nil
}

type DescribeCmd struct {
	Source `embed:""`

	Type string `arg:"" help:"Enum name as declared in the definition file."`
}

func (c *DescribeCmd) Run(st *Streams) error {
	set, e, log, err := c.open(st)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	o, err := e.Cache().Outcome(set.Key(c.Type), set.Provider(c.Type))
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(st.Out)
	enc.SetIndent(2)
	if err := enc.Encode(o); err != nil {
		return err
	}
	return enc.Close()
}

type ListCmd struct {
	Defs string `help:"Enum definition file (YAML)." required:"" type:"existingfile" short:"d"`
}

func (c *ListCmd) Run(st *Streams) error {
	set, err := deffile.Load(c.Defs)
	if err != nil {
		return err
	}
	for _, name := range set.Names() {
		d, _ := set.Lookup(name)
		kind := "enum"
		if d.Flags {
			kind = "flags"
		}
		fmt.Fprintf(st.Out, "%s\t%s\t%d\n", name, kind, len(d.Entries))
	}
	return nil
}

func parseValue(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 0, 64)
	if err == nil {
		return v, nil
	}
	u, uerr := strconv.ParseUint(s, 0, 64)
	if uerr != nil {
		return 0, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return int64(u), nil
}
