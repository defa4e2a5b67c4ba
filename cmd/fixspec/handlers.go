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

	"github.com/gordfix/fixspec/schema"
)

// runHandlers tries each -tag/-component/-info flag handler in turn,
// returning true as soon as one of them fires.
func runHandlers(opts CLIOptions, cat *schema.Catalog, out, errOut io.Writer) bool {
	if handleInfo(opts, cat, out) {
		return true
	}

	if handleTag(opts, cat, out, errOut) {
		return true
	}

	if handleComponent(opts, cat, out, errOut) {
		return true
	}

	return false
}

func handleInfo(opts CLIOptions, cat *schema.Catalog, out io.Writer) bool {
	if !opts.Info {
		return false
	}

	fmt.Fprintf(out, "FIX Version   : %s.%s\n", cat.Major, cat.Minor)
	fmt.Fprintf(out, "Messages      : %d\n", len(cat.Messages))
	fmt.Fprintf(out, "Components    : %d\n", len(cat.Components))

	return true
}

func handleTag(opts CLIOptions, cat *schema.Catalog, out, errOut io.Writer) bool {
	if opts.Tag == "" {
		return false
	}

	def, ok := cat.FieldByTag(opts.Tag)
	if !ok {
		fmt.Fprintf(errOut, "unknown tag %q\n", opts.Tag)
		return true
	}

	schema.WriteXML(out, def)

	return true
}

func handleComponent(opts CLIOptions, cat *schema.Catalog, out, errOut io.Writer) bool {
	if opts.Component == "" {
		return false
	}

	comp, ok := cat.Components[opts.Component]
	if !ok {
		fmt.Fprintf(errOut, "unknown component %q\n", opts.Component)
		return true
	}

	schema.WriteXML(out, schema.Expand(cat, comp))

	return true
}

// showMessageSpec resolves opts.MsgType to header, trailer, or a message
// body, expands it, optionally inlines enums, and renders it as XML.
func showMessageSpec(opts CLIOptions, cat *schema.Catalog, out, errOut io.Writer) int {
	var node *schema.Node

	switch opts.MsgType {
	case "header":
		node = cat.Header
	case "trailer":
		node = cat.Trailer
	default:
		msg, ok := cat.Messages[opts.MsgType]
		if !ok {
			fmt.Fprintf(errOut, "unknown message type %q\n", opts.MsgType)
			return 1
		}

		node = msg
	}

	expanded := schema.Expand(cat, node)

	if opts.Enums {
		schema.ExpandEnums(cat, expanded)
	}

	schema.WriteXML(out, expanded)

	return 0
}
