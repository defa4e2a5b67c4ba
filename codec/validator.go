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
// validator.go
package codec

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gordfix/fixspec/schema"
	"github.com/gordfix/fixspec/wire"
)

// trailer sentinel tags: derived once per Validator from the trailer
// scope's own expanded field ids, rather than hard-coded, since they are
// version-specific (spec.md redesign note).
func trailerSentinels(trailer *schema.Node) map[string]bool {
	out := make(map[string]bool, len(trailer.Nods))

	for _, ch := range trailer.Nods {
		out[ch.ID()] = true
	}

	return out
}

// Validator decodes and validates a wire buffer against an expanded
// header/trailer/message scope, reporting diagnostics for unrecognized,
// missing, repeated, or type/enum-invalid fields. It never aborts on a
// bad field: diagnostics accumulate, the trace continues.
type Validator struct {
	Cat      *schema.Catalog
	Out      io.Writer // trace sink; nil discards trace lines
	Redact   func(tag, val string) string
	sentinel map[string]bool

	header  *schema.Node
	trailer *schema.Node
	bodies  map[string]*schema.Node // msgtype -> expanded message scope
}

// NewValidator builds a Validator bound to cat, pre-expanding the
// header, trailer, and every message scope once up front (the catalog
// is read-only after BuildCatalog, so these expansions are reused for
// the Validator's lifetime). Trailer sentinel tags are derived from the
// expanded trailer's own field ids rather than hard-coded.
func NewValidator(cat *schema.Catalog, out io.Writer) *Validator {
	header := schema.Expand(cat, cat.Header)
	header.Atts["name"] = "StandardHeader"

	trailer := schema.Expand(cat, cat.Trailer)
	trailer.Atts["name"] = "StandardTrailer"

	bodies := make(map[string]*schema.Node, len(cat.Messages))
	for msgtype, msg := range cat.Messages {
		bodies[msgtype] = schema.Expand(cat, msg)
	}

	return &Validator{
		Cat:      cat,
		Out:      out,
		sentinel: trailerSentinels(trailer),
		header:   header,
		trailer:  trailer,
		bodies:   bodies,
	}
}

// Header returns the Validator's expanded header scope.
func (v *Validator) Header() *schema.Node { return v.header }

// TrailerScope returns the Validator's expanded trailer scope.
func (v *Validator) TrailerScope() *schema.Node { return v.trailer }

// MessageScope returns the expanded body scope for msgtype, or nil if
// msgtype is not in the catalog.
func (v *Validator) MessageScope(msgtype string) *schema.Node { return v.bodies[msgtype] }

// Decode traces a single complete wire message (header, body, trailer)
// read from buf, returning every diagnostic raised. The message type is
// taken from the reader's MsgType, captured while tracing the header.
func (v *Validator) Decode(buf string) []Diagnostic {
	r := wire.NewReader(buf)

	var diags []Diagnostic

	diags = append(diags, v.Trace(r, v.header)...)

	body := v.bodies[r.MsgType]
	if body == nil {
		diags = append(diags, Diagnostic{Tag: "35", Reason: fmt.Sprintf("unknown message type %q", r.MsgType)})
	} else {
		diags = append(diags, v.Trace(r, body)...)
	}

	diags = append(diags, v.Trace(r, v.trailer)...)

	return diags
}

func (v *Validator) printf(format string, args ...any) {
	if v.Out == nil {
		return
	}

	fmt.Fprintf(v.Out, format, args...)
}

// Trace runs trace_fix_xspec over r starting at its current cursor
// position, against the expanded scope xspec (header, trailer, a
// message body, or a group), returning every diagnostic raised along
// the way. xspec must already be expanded (schema.Expand'd).
func (v *Validator) Trace(r *wire.Reader, xspec *schema.Node) []Diagnostic {
	var diags []Diagnostic

	seen := make(map[string]int)

	var firstInGroup string

	if xspec.IsGroup() && len(xspec.Nods) > 0 {
		firstInGroup = xspec.Nods[0].ID()

		if _, err := r.Advance(); err != nil {
			diags = append(diags, Diagnostic{Reason: err.Error()})
			return diags
		}

		if r.Tag != firstInGroup {
			r.Rewind()
			return diags
		}

		xfield := xspec.Lookup(r.Tag)
		diags = append(diags, v.traceFieldValue(xfield, r.Val)...)
		seen[r.Tag]++
	}

	for {
		n, err := r.Advance()
		if err != nil {
			diags = append(diags, Diagnostic{Reason: err.Error()})
			break
		}

		if n == 0 {
			break
		}

		xfield := xspec.Lookup(r.Tag)

		if xfield == nil {
			isHeader := xspec.Match("name", "StandardHeader")

			if isHeader || xspec.IsGroup() {
				r.Rewind()
				break
			}

			if v.sentinel[r.Tag] && !xspec.Match("name", "StandardTrailer") {
				r.Rewind()
				break
			}

			v.printf("%-3s                           << bad field, not in spec\n", r.Tag)
			diags = append(diags, Diagnostic{Tag: r.Tag, Reason: "bad field, not in spec"})

			continue
		}

		if firstInGroup != "" && r.Tag == firstInGroup {
			r.Rewind()
			break
		}

		seen[r.Tag]++

		switch {
		case xfield.IsField():
			diags = append(diags, v.traceFieldValue(xfield, r.Val)...)

		case xfield.IsGroup():
			nreps, err := strconv.Atoi(r.Val)
			if err != nil {
				diags = append(diags, Diagnostic{
					Tag:    r.Tag,
					Name:   xfield.Att("name"),
					Reason: fmt.Sprintf("bad repeat count %q", r.Val),
				})

				continue
			}

			for i := 0; i < nreps; i++ {
				diags = append(diags, v.Trace(r, xfield)...)
			}
		}
	}

	diags = append(diags, v.checkSeen(seen, xspec)...)

	return diags
}

// checkSeen reports every required child not seen, and every non-group
// child seen more than once.
func (v *Validator) checkSeen(seen map[string]int, xspec *schema.Node) []Diagnostic {
	var diags []Diagnostic

	for _, ch := range xspec.Nods {
		id := ch.ID()
		n := seen[id]

		if ch.IsRequired() && n < 1 {
			d := Diagnostic{Tag: id, Name: ch.Att("name"), Reason: "missing field"}
			diags = append(diags, d)
			v.printf("%s\n", d.String())
		}

		if n > 1 && !ch.IsGroup() {
			d := Diagnostic{Tag: id, Name: ch.Att("name"), Reason: "repeated field"}
			diags = append(diags, d)
			v.printf("%s\n", d.String())
		}
	}

	return diags
}

// traceFieldValue prints tag, name, raw value, and the long-form enum
// description if xfield's global definition carries a matching <value>,
// folding in type/enum diagnostics beyond the mandatory trace.
func (v *Validator) traceFieldValue(xfield *schema.Node, val string) []Diagnostic {
	if xfield == nil {
		return nil
	}

	id := xfield.ID()
	name := xfield.Att("name")

	var diags []Diagnostic

	display := val
	if v.Redact != nil {
		display = v.Redact(id, val)
	}

	long := ""

	def, ok := v.Cat.FieldByTag(id)
	if ok && len(def.Nods) > 0 {
		found := false

		for _, enumVal := range def.Nods {
			if enumVal.Att("enum") == val {
				long = enumVal.Att("description")
				found = true
				break
			}
		}

		if !found {
			diags = append(diags, Diagnostic{Tag: id, Name: name, Reason: fmt.Sprintf("invalid enum value %q", val)})
		}
	}

	if ok {
		if typ := def.Att("type"); typ != "" && !IsValidType(val, typ) {
			diags = append(diags, Diagnostic{Tag: id, Name: name, Reason: fmt.Sprintf("invalid type for %s: expected %s, got %q", id, typ, val)})
		}
	}

	v.printf("%-3s %-20s : %s %s\n", id, name, display, long)

	return diags
}
