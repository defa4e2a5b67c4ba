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
// indexer.go
package schema

// fieldIDWriter is a Visitor that, upon every <field> node encountered,
// copies the numeric tag from the catalog's fields-by-name index into
// that node's "id" attribute. Ported from the original's FieldIdWriter.
type fieldIDWriter struct {
	BaseVisitor
	cat *Catalog
}

func (v fieldIDWriter) Operator(n *Node) int {
	if n.IsField() {
		if tag, ok := v.cat.TagByName(n.Att("name")); ok {
			n.Atts["id"] = tag
		}
	}

	return 0
}

// Index stamps the numeric tag onto every <field> usage under header,
// trailer, messages, and components. It is idempotent: running it twice
// produces an identical tree, since it only ever (re)writes the same
// "id" values from the same name -> tag index.
func Index(cat *Catalog) {
	v := fieldIDWriter{cat: cat}

	if cat.Header != nil {
		Visit(cat.Header, v)
	}

	if cat.Trailer != nil {
		Visit(cat.Trailer, v)
	}

	for _, m := range cat.Messages {
		Visit(m, v)
	}

	for _, c := range cat.Components {
		Visit(c, v)
	}
}
