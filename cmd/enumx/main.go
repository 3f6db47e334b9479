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
	"os"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Version  VersionCmd  `cmd:"" help:"Print version information."`
	Name     NameCmd     `cmd:"" help:"Print the declared name of each value."`
	Describe DescribeCmd `cmd:"" help:"Print the resolver built for an enum as YAML."`
	List     ListCmd     `cmd:"" help:"List the enums defined in a definition file."`
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("enumx"),
		kong.Description("Resolve enum values to their declared names."),
		kong.UsageOnError(),
		kong.Bind(&Streams{Out: os.Stdout, Err: os.Stderr}),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
