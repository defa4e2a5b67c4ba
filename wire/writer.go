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
// writer.go
package wire

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gordfix/fixspec/schema"
)

// GroupValue is the value bound to a repeating group's name: one map of
// field-name -> value per repeat, emitted in order.
type GroupValue []map[string]string

// Writer concatenates "tag=value\x01" triples in schema order for a
// header, trailer, or message body, reading values out of an attribute
// map keyed by field name. Unlike MessageValidator's decode path, groups
// are written here: a GroupValue entry emits the NumInGroup count field
// followed by each repeat's fields in schema order.
type Writer struct {
	Cat *schema.Catalog
}

// NewWriter builds a Writer bound to cat for resolving <component>
// references and group count tags.
func NewWriter(cat *schema.Catalog) *Writer {
	return &Writer{Cat: cat}
}

// Write walks spec's direct children (an unexpanded header/trailer/
// message node from the catalog) in schema order, emitting a field
// whenever its name is present in attrs, recursing into <component>
// references, and emitting repeat blocks for <group> references whose
// name is bound to a GroupValue.
func (w *Writer) Write(spec *schema.Node, attrs map[string]any) (string, error) {
	var sb strings.Builder

	if err := w.write(spec, attrs, &sb); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func (w *Writer) write(spec *schema.Node, attrs map[string]any, sb *strings.Builder) error {
	for _, ch := range spec.Nods {
		switch {
		case ch.IsField():
			name := ch.Att("name")

			raw, ok := attrs[name]
			if !ok {
				continue
			}

			val, ok := raw.(string)
			if !ok {
				return fmt.Errorf("wire: field %q expects a string value, got %T", name, raw)
			}

			tag, ok := w.Cat.TagByName(name)
			if !ok {
				return fmt.Errorf("wire: unknown field name %q", name)
			}

			sb.WriteString(tag + "=" + val + soh)

		case ch.IsComponent():
			comp, ok := w.Cat.Components[ch.Att("name")]
			if !ok {
				continue
			}

			if err := w.write(comp, attrs, sb); err != nil {
				return err
			}

		case ch.IsGroup():
			name := ch.Att("name")

			raw, ok := attrs[name]
			if !ok {
				continue
			}

			reps, ok := raw.(GroupValue)
			if !ok {
				return fmt.Errorf("wire: group %q expects a wire.GroupValue, got %T", name, raw)
			}

			countTag, ok := w.Cat.TagByName(name)
			if !ok {
				return fmt.Errorf("wire: unknown group name %q", name)
			}

			sb.WriteString(countTag + "=" + strconv.Itoa(len(reps)) + soh)

			for _, rep := range reps {
				repAttrs := make(map[string]any, len(rep))
				for k, v := range rep {
					repAttrs[k] = v
				}

				if err := w.write(ch, repAttrs, sb); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
