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
// node.go
package schema

// Node is the universal schema entity: a generic attributed tree node
// used for every element of a FIX schema XML document (fix, header,
// trailer, messages, components, fields, message, component, group,
// field, value). Children are exclusively owned by their parent.
type Node struct {
	Elt    string            // xml element name
	Atts   map[string]string // all attributes
	Nods   []*Node           // child nodes, owned by this node
	Parent *Node

	expanded bool             // true once components have been inlined into this subtree
	nodmap   map[string]*Node // for expanded scopes, id -> child node
}

// NewNode allocates a Node with an initialized attribute map, parented to
// par (if non-nil, it is appended to par's children).
func NewNode(elt string, par *Node) *Node {
	n := &Node{Elt: elt, Atts: make(map[string]string)}
	n.Parent = par

	if par != nil {
		par.Nods = append(par.Nods, n)
	}

	return n
}

// Att returns the value of the named attribute, or "" if absent.
func (n *Node) Att(name string) string {
	return n.Atts[name]
}

// Match reports whether attribute att equals val.
func (n *Node) Match(att, val string) bool {
	v, ok := n.Atts[att]
	return ok && v == val
}

// IsElt reports whether this node's element name equals elt.
func (n *Node) IsElt(elt string) bool {
	return n.Elt == elt
}

func (n *Node) IsField() bool     { return n.IsElt("field") }
func (n *Node) IsGroup() bool     { return n.IsElt("group") }
func (n *Node) IsMessage() bool   { return n.IsElt("message") }
func (n *Node) IsComponent() bool { return n.IsElt("component") }
func (n *Node) IsValue() bool     { return n.IsElt("value") }
func (n *Node) IsRequired() bool  { return n.Match("required", "Y") }

// ID resolves this node's identity per spec precedence: explicit "id"
// attribute, else "msgtype" for a message, else "enum" for a value,
// else "name".
func (n *Node) ID() string {
	if id, ok := n.Atts["id"]; ok {
		return id
	}

	if n.IsMessage() {
		return n.Atts["msgtype"]
	}

	if n.IsValue() {
		return n.Atts["enum"]
	}

	return n.Atts["name"]
}

// Child returns the first direct child with the given element name.
func (n *Node) Child(elt string) *Node {
	for _, c := range n.Nods {
		if c.Elt == elt {
			return c
		}
	}

	return nil
}

// Lookup finds a direct child by id, using nodmap when populated
// (expanded scopes) and falling back to a linear scan by ID().
func (n *Node) Lookup(id string) *Node {
	if id == "" {
		return nil
	}

	if len(n.nodmap) > 0 {
		return n.nodmap[id]
	}

	for _, c := range n.Nods {
		if c.ID() == id {
			return c
		}
	}

	return nil
}

// DepthMatch recursively searches the subtree for a node whose attribute
// att equals val.
func (n *Node) DepthMatch(att, val string) bool {
	if n.Match(att, val) {
		return true
	}

	for _, c := range n.Nods {
		if c.DepthMatch(att, val) {
			return true
		}
	}

	return false
}

// Copy deep-copies the node and its children. The nodmap is not copied:
// it is only ever rebuilt for expanded trees.
func (n *Node) Copy() *Node {
	cp := &Node{
		Elt:      n.Elt,
		Atts:     make(map[string]string, len(n.Atts)),
		expanded: n.expanded,
	}

	for k, v := range n.Atts {
		cp.Atts[k] = v
	}

	for _, c := range n.Nods {
		cc := c.Copy()
		cc.Parent = cp
		cp.Nods = append(cp.Nods, cc)
	}

	return cp
}

// Expanded reports whether components have already been inlined into
// this subtree.
func (n *Node) Expanded() bool { return n.expanded }

// SetExpanded marks this node as having had its components inlined.
func (n *Node) SetExpanded(b bool) { n.expanded = b }

// NodMap returns the id -> child index built for expanded scopes, or nil
// if this node has none.
func (n *Node) NodMap() map[string]*Node { return n.nodmap }

// setNodMap installs the id -> child index; used while building an
// expanded scope.
func (n *Node) setNodMap(m map[string]*Node) { n.nodmap = m }
