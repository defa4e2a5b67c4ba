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
// catalog.go
package schema

// Catalog holds the four flat indexes built once from the top-level
// <fix> node: fields by tag, fields by name, messages by msgtype, and
// components by name. It is read-only after BuildCatalog and may be shared by
// multiple concurrent generators/validators.
type Catalog struct {
	Fix        *Node
	Header     *Node
	Trailer    *Node
	Messages   map[string]*Node // msgtype -> <message>
	Components map[string]*Node // name -> <component>
	Major      string
	Minor      string

	fieldsByTag  map[string]*Node // tag -> <field> (with its <value> children)
	fieldsByName map[string]string
}

// BuildCatalog indexes a raw (unexpanded) <fix> tree.
func BuildCatalog(fix *Node) *Catalog {
	cat := &Catalog{
		Fix:          fix,
		Messages:     make(map[string]*Node),
		Components:   make(map[string]*Node),
		fieldsByTag:  make(map[string]*Node),
		fieldsByName: make(map[string]string),
		Major:        fix.Att("major"),
		Minor:        fix.Att("minor"),
	}

	cat.Header = fix.Child("header")
	cat.Trailer = fix.Child("trailer")

	if fields := fix.Child("fields"); fields != nil {
		for _, f := range fields.Nods {
			tag := f.Att("number")
			cat.fieldsByTag[tag] = f
			cat.fieldsByName[f.Att("name")] = tag
		}
	}

	if comps := fix.Child("components"); comps != nil {
		for _, c := range comps.Nods {
			cat.Components[c.Att("name")] = c
		}
	}

	if msgs := fix.Child("messages"); msgs != nil {
		for _, m := range msgs.Nods {
			cat.Messages[m.Att("msgtype")] = m
		}
	}

	return cat
}

// FieldByTag returns the global <field> definition node for a numeric tag.
func (c *Catalog) FieldByTag(tag string) (*Node, bool) {
	f, ok := c.fieldsByTag[tag]
	return f, ok
}

// TagByName resolves a field name to its numeric tag string.
func (c *Catalog) TagByName(name string) (string, bool) {
	tag, ok := c.fieldsByName[name]
	return tag, ok
}

// Prelude returns the wire BeginString prelude, e.g. "FIX.4.4".
func (c *Catalog) Prelude() string {
	return "FIX." + c.Major + "." + c.Minor
}
