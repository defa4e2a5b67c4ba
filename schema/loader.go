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
// loader.go
package schema

import (
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
)

// LoadError reports a schema XML parse failure or an empty document.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return "schema: empty document"
	}

	return fmt.Sprintf("schema: load failed: %v", e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load consumes SAX-style start/end element events from r and builds a
// Node tree, returning the top-level <fix> node detached from its
// synthetic root. An implicit stack of open nodes is maintained: every
// start element pushes a node parented to the stack top, every end
// element pops it.
func Load(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	root := &Node{Elt: "", Atts: map[string]string{}}
	stack := []*Node{root}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, &LoadError{Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			parent := stack[len(stack)-1]
			node := NewNode(t.Name.Local, parent)

			for _, a := range t.Attr {
				node.Atts[a.Name.Local] = a.Value
			}

			stack = append(stack, node)

		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	if len(root.Nods) == 0 {
		return nil, &LoadError{}
	}

	fix := root.Nods[0]
	fix.Parent = nil
	root.Nods = nil

	return fix, nil
}
