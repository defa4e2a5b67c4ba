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
// versions.go
package fixdict

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed schemas/FIX44.xml
var fix44XML string

const basePrelude = `<fix type="FIX" major="4" minor="4" servicepack="0">`

type versionMeta struct {
	typ, major, minor, sp string
}

// versions maps each supported version key to the prelude attributes
// ChooseEmbeddedXML substitutes into the embedded base schema. Only
// FIX44.xml (a small hand-written subset) is embedded; every other key reuses its field/message
// catalog with its own version prelude, since the corpus did not retain
// distinct per-version dictionary XML for this pack (see DESIGN.md).
var versions = []struct {
	key  string
	meta versionMeta
}{
	{"40", versionMeta{"FIX", "4", "0", "0"}},
	{"41", versionMeta{"FIX", "4", "1", "0"}},
	{"42", versionMeta{"FIX", "4", "2", "0"}},
	{"43", versionMeta{"FIX", "4", "3", "0"}},
	{"44", versionMeta{"FIX", "4", "4", "0"}},
	{"50", versionMeta{"FIX", "5", "0", "0"}},
	{"50SP1", versionMeta{"FIX", "5", "0", "1"}},
	{"50SP2", versionMeta{"FIX", "5", "0", "2"}},
	{"T11", versionMeta{"FIXT", "1", "1", "0"}},
}

func versionIndex() map[string]versionMeta {
	idx := make(map[string]versionMeta, len(versions))
	for _, v := range versions {
		idx[v.key] = v.meta
	}

	return idx
}

// SupportedFixVersions returns the comma-joined list of version keys
// ChooseEmbeddedXML accepts, in canonical order.
func SupportedFixVersions() string {
	keys := make([]string, len(versions))
	for i, v := range versions {
		keys[i] = v.key
	}

	return strings.Join(keys, ",")
}

// ChooseEmbeddedXML returns the embedded schema XML for version, falling
// back to FIX44 for an unrecognized key.
func ChooseEmbeddedXML(version string) string {
	meta, ok := versionIndex()[version]
	if !ok {
		meta = versionMeta{"FIX", "4", "4", "0"}
	}

	prelude := fmt.Sprintf(`<fix type="%s" major="%s" minor="%s" servicepack="%s">`,
		meta.typ, meta.major, meta.minor, meta.sp)

	return strings.Replace(fix44XML, basePrelude, prelude, 1)
}
