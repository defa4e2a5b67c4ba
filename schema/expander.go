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
// expander.go
package schema

// cursor walks a schema subtree field-by-field, transparently flattening
// <component> references by pushing the named component's children onto
// an explicit stack and resuming from there. This mirrors the original
// fixtr's MsgContext.next_fld: components are inlined on the fly without
// mutating the catalog; groups and fields are yielded as opaque units.
type cursor struct {
	cat    *Catalog
	xstack []*Node
	istack []int
}

func (c *cursor) push(n *Node) {
	c.xstack = append(c.xstack, n)
	c.istack = append(c.istack, 0)
}

func (c *cursor) pop() {
	c.xstack = c.xstack[:len(c.xstack)-1]
	c.istack = c.istack[:len(c.istack)-1]
}

// next returns the next field-or-group usage node in the flattened
// sequence, recursing into component references as they are met and
// popping back to the enclosing scope once a subtree is exhausted.
func (c *cursor) next() *Node {
	if len(c.xstack) == 0 {
		return nil
	}

	top := len(c.xstack) - 1
	spec := c.xstack[top]
	i := c.istack[top]

	if i >= len(spec.Nods) {
		c.pop()
		return c.next()
	}

	field := spec.Nods[i]
	c.istack[top] = i + 1

	if field.IsComponent() {
		if comp, ok := c.cat.Components[field.Att("name")]; ok {
			c.push(comp)
		}

		return c.next()
	}

	return field
}

// Expand produces the expanded scope for src (header, trailer, or one
// message): every <component> reference is replaced in place by its
// children (transitively); <group> nodes remain as children but their
// own children are expanded the same way, preserving the group boundary.
// Every direct child's id is set (field tag, message msgtype, or for a
// group the tag of the NumInGroup field sharing the group's own name,
// falling back to its first child's tag if no such field exists), and a
// nodmap is built mapping id to direct child for O(1) lookup during wire
// traversal.
func Expand(cat *Catalog, src *Node) *Node {
	out := &Node{Elt: src.Elt, Atts: copyAtts(src.Atts)}
	out.SetExpanded(true)

	if len(src.Nods) == 0 {
		return out
	}

	cur := &cursor{cat: cat}
	cur.push(src)

	nodmap := make(map[string]*Node)

	for {
		ch := cur.next()
		if ch == nil {
			break
		}

		var exp *Node
		if ch.IsGroup() {
			exp = Expand(cat, ch)
		} else {
			exp = ch.Copy()
			exp.SetExpanded(true)
		}

		exp.Parent = out
		out.Nods = append(out.Nods, exp)

		switch {
		case exp.IsField():
			nodmap[exp.ID()] = exp
		case exp.IsGroup():
			id, ok := cat.TagByName(exp.Att("name"))
			if !ok && len(exp.Nods) > 0 {
				id = exp.Nods[0].ID()
			}

			if id != "" {
				exp.Atts["id"] = id
				nodmap[id] = exp
			}
		case exp.IsMessage():
			exp.Atts["id"] = exp.Att("msgtype")
			nodmap[exp.Att("msgtype")] = exp
		}
	}

	out.setNodMap(nodmap)

	return out
}

// ExpandEnums appends deep copies of the global field's enum <value>
// children onto each <field> in an already-expanded scope, recursing into
// groups. Display only: it never runs during wire validation.
func ExpandEnums(cat *Catalog, scope *Node) {
	for _, ch := range scope.Nods {
		switch {
		case ch.IsField():
			if def, ok := cat.FieldByTag(ch.ID()); ok {
				for _, v := range def.Nods {
					vc := v.Copy()
					vc.Parent = ch
					ch.Nods = append(ch.Nods, vc)
				}
			}
		case ch.IsGroup():
			ExpandEnums(cat, ch)
		}
	}
}

func copyAtts(atts map[string]string) map[string]string {
	cp := make(map[string]string, len(atts))
	for k, v := range atts {
		cp[k] = v
	}

	return cp
}
