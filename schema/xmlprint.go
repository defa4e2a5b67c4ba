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
// xmlprint.go
package schema

import (
	"fmt"
	"io"
	"sort"
)

// xmlPrintVisitor renders a Node tree back out as indented XML, in the
// attribute order produced by sorting keys (attribute order is not
// preserved through the generic map-based Node).
type xmlPrintVisitor struct {
	BaseVisitor
	w      io.Writer
	indent int
}

func (v *xmlPrintVisitor) Operator(n *Node) int {
	pad := indentString(v.indent)

	fmt.Fprintf(v.w, "%s<%s", pad, n.Elt)

	keys := make([]string, 0, len(n.Atts))
	for k := range n.Atts {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(v.w, ` %s="%s"`, k, n.Atts[k])
	}

	if len(n.Nods) == 0 {
		fmt.Fprint(v.w, "/>\n")
	} else {
		fmt.Fprint(v.w, ">\n")
	}

	return 0
}

func (v *xmlPrintVisitor) Descend(*Node) { v.indent++ }

func (v *xmlPrintVisitor) Ascend(n *Node) {
	v.indent--
	fmt.Fprintf(v.w, "%s</%s>\n", indentString(v.indent), n.Elt)
}

func indentString(n int) string {
	b := make([]byte, n*2)
	for i := range b {
		b[i] = ' '
	}

	return string(b)
}

// WriteXML renders n and its subtree to w as indented XML, ported from
// the original's XMLPrintVisitor.
func WriteXML(w io.Writer, n *Node) {
	Visit(n, &xmlPrintVisitor{w: w})
}
