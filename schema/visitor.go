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
// visitor.go
package schema

// Visitor drives a depth-first traversal of a Node tree. Operator is run
// on each node between Pre and Post; Descend/Ascend bracket the recursion
// into a node's children. A negative return from Operator aborts the
// traversal and propagates that value up through Visit.
type Visitor interface {
	Pre(n *Node)
	Operator(n *Node) int
	Post(n *Node)
	Descend(n *Node)
	Ascend(n *Node)
}

// BaseVisitor gives every hook a no-op default so callers only need to
// implement the hooks they care about by embedding BaseVisitor.
type BaseVisitor struct{}

func (BaseVisitor) Pre(*Node)          {}
func (BaseVisitor) Operator(*Node) int { return 0 }
func (BaseVisitor) Post(*Node)         {}
func (BaseVisitor) Descend(*Node)      {}
func (BaseVisitor) Ascend(*Node)       {}

// Visit runs V depth-first over n: Pre, Operator, Post on n itself, then
// Descend, children (recursively), Ascend. A negative Operator result
// short-circuits the remaining siblings and is returned up the call
// chain.
func Visit(n *Node, v Visitor) int {
	v.Pre(n)
	ret := v.Operator(n)
	v.Post(n)

	if ret < 0 || len(n.Nods) == 0 {
		return ret
	}

	v.Descend(n)

	for _, ch := range n.Nods {
		ret = Visit(ch, v)
		if ret < 0 {
			v.Ascend(n)
			return ret
		}
	}

	v.Ascend(n)

	return ret
}
