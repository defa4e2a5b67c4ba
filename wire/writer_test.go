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
package wire

import (
	"strings"
	"testing"

	"github.com/gordfix/fixspec/schema"
)

// testSchemaXML mirrors schema's sampleSchema fixture (the two packages
// cannot share unexported test constants, so the dictionary shape is
// duplicated here in miniature).
const testSchemaXML = `<?xml version="1.0" encoding="UTF-8"?>
<fix type="FIX" major="4" minor="4" servicepack="0">
  <header>
    <field name="BeginString" required="Y"/>
  </header>
  <trailer>
    <field name="CheckSum" required="Y"/>
  </trailer>
  <messages>
    <message name="NewOrderSingle" msgtype="D" msgcat="app">
      <field name="ClOrdID" required="Y"/>
      <component name="Instrument" required="Y"/>
      <field name="Side" required="Y"/>
    </message>
  </messages>
  <components>
    <component name="Instrument">
      <field name="Symbol" required="Y"/>
      <group name="NoSecurityAltID" required="N">
        <field name="SecurityAltID" required="Y"/>
        <field name="SecurityAltIDSource" required="N"/>
      </group>
    </component>
  </components>
  <fields>
    <field number="8" name="BeginString" type="STRING"/>
    <field number="10" name="CheckSum" type="STRING"/>
    <field number="11" name="ClOrdID" type="STRING"/>
    <field number="54" name="Side" type="CHAR"/>
    <field number="55" name="Symbol" type="STRING"/>
    <field number="454" name="NoSecurityAltID" type="NUMINGROUP"/>
    <field number="455" name="SecurityAltID" type="STRING"/>
    <field number="456" name="SecurityAltIDSource" type="STRING"/>
  </fields>
</fix>
`

func loadTestCatalog(t *testing.T) *schema.Catalog {
	t.Helper()

	fix, err := schema.Load(strings.NewReader(testSchemaXML))
	if err != nil {
		t.Fatalf("schema.Load() error = %v", err)
	}

	cat := schema.BuildCatalog(fix)
	schema.Index(cat)

	return cat
}

func TestWriterEmitsFieldsAndComponent(t *testing.T) {
	cat := loadTestCatalog(t)
	w := NewWriter(cat)

	out, err := w.Write(cat.Messages["D"], map[string]any{
		"ClOrdID": "123",
		"Symbol":  "IBM",
		"Side":    "1",
	})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := "11=123\x0155=IBM\x0154=1\x01"
	if out != want {
		t.Errorf("Write() = %q, want %q", out, want)
	}
}

func TestWriterSkipsUnboundFields(t *testing.T) {
	cat := loadTestCatalog(t)
	w := NewWriter(cat)

	out, err := w.Write(cat.Messages["D"], map[string]any{
		"ClOrdID": "123",
	})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if out != "11=123\x01" {
		t.Errorf("Write() = %q, want only ClOrdID emitted", out)
	}
}

func TestWriterEmitsGroupRepeats(t *testing.T) {
	cat := loadTestCatalog(t)
	w := NewWriter(cat)

	out, err := w.Write(cat.Messages["D"], map[string]any{
		"ClOrdID": "123",
		"Symbol":  "IBM",
		"Side":    "1",
		"NoSecurityAltID": GroupValue{
			{"SecurityAltID": "A"},
			{"SecurityAltID": "B", "SecurityAltIDSource": "1"},
		},
	})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := "11=123\x0155=IBM\x01454=2\x01455=A\x01455=B\x01456=1\x0154=1\x01"
	if out != want {
		t.Errorf("Write() = %q, want %q", out, want)
	}
}

func TestWriterRejectsWrongValueType(t *testing.T) {
	cat := loadTestCatalog(t)
	w := NewWriter(cat)

	_, err := w.Write(cat.Messages["D"], map[string]any{"ClOrdID": 123})
	if err == nil {
		t.Fatalf("Write() should reject a non-string value for a field")
	}
}

func TestWriterRejectsWrongGroupType(t *testing.T) {
	cat := loadTestCatalog(t)
	w := NewWriter(cat)

	_, err := w.Write(cat.Messages["D"], map[string]any{"NoSecurityAltID": "not-a-group"})
	if err == nil {
		t.Fatalf("Write() should reject a non-GroupValue for a group")
	}
}
