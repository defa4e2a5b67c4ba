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

	"golang.org/x/term"

	"github.com/gordfix/fixspec/fixdict"
)

// CLIOptions holds all parsed flag values.
type CLIOptions struct {
	Version   string // forces a single schema version; "" means auto-detect per message
	Redact    bool
	Colour    bool
	HasColour bool
}

func parseFlagsArgs(args []string, errOut io.Writer) (CLIOptions, []string, error) {
	fs := flag.NewFlagSet("fixtr", flag.ContinueOnError)
	fs.SetOutput(errOut)

	version := fs.String("S", "", "force a single FIX version instead of auto-detecting per message ("+fixdict.SupportedFixVersions()+")")
	redact := fs.Bool("redact", false, "replace sensitive field values with stable aliases in trace output")
	colour := fs.Bool("colour", false, "force coloured tag output")

	fs.Usage = func() {
		printUsage(errOut)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return CLIOptions{}, nil, err
	}

	return CLIOptions{Version: *version, Redact: *redact, Colour: *colour, HasColour: isSet(fs, "colour")}, fs.Args(), nil
}

func isSet(fs *flag.FlagSet, name string) bool {
	found := false

	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})

	return found
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "USAGE: fixtr [-S=<FIX_VERSION>] [-redact] [-colour] [file ...]")
	fmt.Fprintln(w, "  reads FIX messages embedded in text input (stdin or files) and traces them")
	fmt.Fprintln(w, "  option -S=<FIX_VERSION> : force a single schema version")
	fmt.Fprintln(w, "  option -redact          : redact sensitive field values")
	fmt.Fprintln(w, "  option -colour          : force coloured output")
}

func extractFileArgsOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}

	return args
}

func readAll(files []string) (string, error) {
	var sb strings.Builder

	for _, f := range files {
		var r io.Reader

		if f == "-" {
			r = os.Stdin
		} else {
			fh, err := os.Open(f)
			if err != nil {
				return "", err
			}

			defer fh.Close()

			r = fh
		}

		data, err := io.ReadAll(r)
		if err != nil {
			return "", err
		}

		sb.Write(data)
	}

	return sb.String(), nil
}

// Process is the entry point: parses flags, reads input, scans for
// embedded FIX messages, traces each, and returns an exit code.
func Process(args []string, out, errOut io.Writer) int {
	opts, rest, err := parseFlagsArgs(args, errOut)
	if err != nil {
		return 1
	}

	data, err := readAll(extractFileArgsOrStdin(rest))
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	useColour := opts.Colour
	if !opts.HasColour {
		useColour = term.IsTerminal(int(os.Stdout.Fd()))
	}

	var obf *fixdict.Obfuscator
	if opts.Redact {
		obf = fixdict.NewObfuscator(fixdict.DefaultSensitiveTags, true)
	}

	return traceInput(data, opts, obf, useColour, out, errOut)
}

func main() {
	os.Exit(Process(os.Args[1:], os.Stdout, os.Stderr))
}
