/*
fixdecoder — FIX protocol decoder tools
Copyright (C) 2025 Steve Clarke <stephenlclarke@mac.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.

In accordance with section 13 of the AGPL, if you modify this program,
your modified version must prominently offer all users interacting with it
remotely through a computer network an opportunity to receive the source
code of your version.
*/
// main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gordfix/fixspec/fixdict"
	"github.com/gordfix/fixspec/schema"
)

// CLIOptions holds all parsed flag values.
type CLIOptions struct {
	MsgType   string
	Enums     bool
	Version   string
	XMLPath   string
	Tag       string
	Component string
	Info      bool
}

func parseFlagsArgs(args []string, errOut io.Writer) (CLIOptions, error) {
	fs := flag.NewFlagSet("fixspec", flag.ContinueOnError)
	fs.SetOutput(errOut)

	enums := fs.Bool("E", false, "show field allowed enum values")
	version := fs.String("S", "44", "FIX version to use ("+fixdict.SupportedFixVersions()+")")
	xmlPath := fs.String("xml", "", "path to alternative FIX XML file")
	tag := fs.String("tag", "", "show the definition of a single field by tag number")
	component := fs.String("component", "", "show the expanded definition of a component")
	info := fs.Bool("info", false, "show schema summary (version, message and component counts)")

	fs.Usage = func() {
		printUsage(errOut)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return CLIOptions{}, err
	}

	var msgtype string
	if fs.NArg() > 0 {
		msgtype = fs.Arg(0)
	}

	return CLIOptions{
		MsgType:   msgtype,
		Enums:     *enums,
		Version:   *version,
		XMLPath:   *xmlPath,
		Tag:       *tag,
		Component: *component,
		Info:      *info,
	}, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "USAGE: fixspec <msgtype>|header|trailer [-E] [-S=<FIX_VERSION>]")
	fmt.Fprintln(w, "  option -E                : show field allowed enum values")
	fmt.Fprintln(w, "  option -S=<FIX_VERSION>  : use embedded spec for this version")
	fmt.Fprintln(w, "  option -xml=<path>       : use an external FIX XML file instead")
	fmt.Fprintln(w, "  option -tag=<NN>         : show a single field's definition")
	fmt.Fprintln(w, "  option -component=<name> : show a component's expanded definition")
	fmt.Fprintln(w, "  option -info             : show schema summary")
}

// loadCatalog picks between an explicit XML file and an embedded schema.
func loadCatalog(opts CLIOptions) (*schema.Catalog, error) {
	var r io.Reader

	if opts.XMLPath != "" {
		data, err := os.ReadFile(opts.XMLPath)
		if err != nil {
			return nil, err
		}

		r = strings.NewReader(string(data))
	} else {
		r = strings.NewReader(fixdict.ChooseEmbeddedXML(opts.Version))
	}

	fix, err := schema.Load(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse FIX schema XML: %w", err)
	}

	cat := schema.BuildCatalog(fix)
	schema.Index(cat)

	return cat, nil
}

// Process is the entry point: parses flags, loads a schema, runs one
// display handler, and returns an exit code.
func Process(args []string, out, errOut io.Writer) int {
	opts, err := parseFlagsArgs(args, errOut)
	if err != nil {
		return 1
	}

	cat, err := loadCatalog(opts)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	fmt.Fprintf(errOut, "Using spec : FIX%s\n", opts.Version)

	if runHandlers(opts, cat, out, errOut) {
		return 0
	}

	if opts.MsgType == "" {
		printUsage(errOut)
		return 1
	}

	return showMessageSpec(opts, cat, out, errOut)
}

func main() {
	os.Exit(Process(os.Args[1:], os.Stdout, os.Stderr))
}
