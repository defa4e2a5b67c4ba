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
// handlers.go
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gordfix/fixspec/codec"
	"github.com/gordfix/fixspec/fixdict"
)

// renderSOH substitutes SOH delimiters with '|' for display, matching
// the original's trace_raw_fix.
func renderSOH(msg string) string {
	return strings.ReplaceAll(msg, "\x01", "|")
}

// colours returns the ANSI codes used around message banners, or empty
// strings when colour is disabled (auto-detected non-TTY, or -colour not
// forced on), mirroring the teacher's DisableColours toggle.
func colours(enabled bool) (title, reset, errc string) {
	if !enabled {
		return "", "", ""
	}

	return "\033[31m", "\033[0m", "\033[31m"
}

func bindRedact(v *codec.Validator, obf *fixdict.Obfuscator, errOut io.Writer) {
	if obf == nil {
		return
	}

	v.Redact = func(tag, val string) string { return obf.Redact(tag, val, errOut) }
}

// traceInput scans data for embedded FIX messages and traces each one
// found, either against a single forced schema version or, by default,
// auto-detecting a version per message.
func traceInput(data string, opts CLIOptions, obf *fixdict.Obfuscator, useColour bool, out, errOut io.Writer) int {
	if opts.Version != "" {
		return traceFixedVersion(data, opts.Version, obf, useColour, out, errOut)
	}

	return traceAutoDetect(data, obf, useColour, out, errOut)
}

func traceFixedVersion(data, version string, obf *fixdict.Obfuscator, useColour bool, out, errOut io.Writer) int {
	cat, err := fixdict.NewResolver().Catalog(version)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	v := codec.NewValidator(cat, out)
	bindRedact(v, obf, errOut)

	results := codec.Scan(v, data)

	return reportResults(results, useColour, out, errOut)
}

func reportResults(results []codec.ScanResult, useColour bool, out, errOut io.Writer) int {
	title, reset, errc := colours(useColour)

	bad := 0

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(errOut, "%sbad frame at offset %d: %v%s\n", errc, r.Offset, r.Err, reset)
			bad++

			continue
		}

		fmt.Fprintf(out, "\n%sMSG = %s%s\n\n", title, renderSOH(r.Msg), reset)

		for _, d := range r.Diags {
			fmt.Fprintln(out, d.String())
		}
	}

	fmt.Fprintf(errOut, "%d message(s) traced, %d bad frame(s)\n", len(results)-bad, bad)

	if bad > 0 {
		return 1
	}

	return 0
}

// traceAutoDetect mirrors codec.Scan's substring-search loop but, per
// candidate, detects the schema version from the candidate's own
// BeginString/ApplVerID before picking (and caching) a Validator,
// rather than committing to one version for the whole input.
func traceAutoDetect(data string, obf *fixdict.Obfuscator, useColour bool, out, errOut io.Writer) int {
	title, reset, errc := colours(useColour)

	resolver := fixdict.NewResolver()
	validators := make(map[string]*codec.Validator)

	pos, traced, bad := 0, 0, 0

	for {
		rel := strings.Index(data[pos:], "8=FIX")
		if rel < 0 {
			break
		}

		start := pos + rel
		cand := data[start:]

		length, ok := codec.FrameLength(cand)
		if !ok {
			pos = start + 5
			continue
		}

		msg := cand[:length]
		version := fixdict.DetectVersion(msg)

		v, ok := validators[version]
		if !ok {
			cat, err := resolver.Catalog(version)
			if err != nil {
				pos = start + 5
				continue
			}

			v = codec.NewValidator(cat, out)
			bindRedact(v, obf, errOut)
			validators[version] = v
		}

		if err := codec.ValidateFraming(msg, v.Cat.Prelude()); err != nil {
			fmt.Fprintf(errOut, "%sbad frame at offset %d: %v%s\n", errc, start, err, reset)
			bad++
			pos = start + 5

			continue
		}

		fmt.Fprintf(out, "\n%sMSG = %s%s\n\n", title, renderSOH(msg), reset)

		for _, d := range v.Decode(msg) {
			fmt.Fprintln(out, d.String())
		}

		traced++
		pos = start + length
	}

	fmt.Fprintf(errOut, "%d message(s) traced, %d bad frame(s)\n", traced, bad)

	if bad > 0 {
		return 1
	}

	return 0
}
