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
// resolve.go
package fixdict

import (
	"strings"
	"sync"

	"github.com/gordfix/fixspec/schema"
)

// applVerIDSchema maps FIXT.1.1's ApplVerID (tag 1128) values to the
// application-layer schema key they imply, mirroring the classic
// BeginString->version mapping one step removed.
var applVerIDSchema = map[string]string{
	"0": "40",
	"1": "40",
	"2": "40",
	"3": "41",
	"4": "42",
	"5": "43",
	"6": "44",
	"7": "50",
	"8": "50SP1",
	"9": "50SP2",
}

func fieldValue(msg, tag string) (string, bool) {
	for _, f := range strings.Split(msg, soh) {
		if f == "" {
			continue
		}

		kv := strings.SplitN(f, "=", 2)
		if len(kv) == 2 && kv[0] == tag {
			return kv[1], true
		}
	}

	return "", false
}

const soh = "\x01"

// DetectVersion inspects a raw wire message's BeginString (tag 8), and
// for FIXT.1.1 session transport, its ApplVerID (tag 1128), returning
// the schema version key to load. Falls back to "44" if BeginString is
// absent or unrecognized.
func DetectVersion(msg string) string {
	begin, ok := fieldValue(msg, "8")
	if !ok {
		return "44"
	}

	if begin == "FIXT.1.1" {
		if appl, ok := fieldValue(msg, "1128"); ok {
			if v, ok := applVerIDSchema[appl]; ok {
				return v
			}
		}

		return "50"
	}

	key := strings.ReplaceAll(strings.TrimPrefix(begin, "FIX."), ".", "")
	if _, ok := versionIndex()[key]; !ok {
		return "44"
	}

	return key
}

// Resolver caches a Catalog per version key, parsing the embedded
// schema XML for a key at most once, and grafting FIXT.1.1 session
// fields into FIX5.0-family catalogs the way the teacher's
// mergeLookups does for its flat tag tables.
type Resolver struct {
	mu   sync.Mutex
	cats map[string]*schema.Catalog
}

// NewResolver builds an empty Resolver.
func NewResolver() *Resolver {
	return &Resolver{cats: make(map[string]*schema.Catalog)}
}

// Catalog returns the (possibly cached) Catalog for version, loading and
// indexing its embedded schema XML on first use.
func (r *Resolver) Catalog(version string) (*schema.Catalog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cat, ok := r.cats[version]; ok {
		return cat, nil
	}

	fix, err := schema.Load(strings.NewReader(ChooseEmbeddedXML(version)))
	if err != nil {
		return nil, err
	}

	cat := schema.BuildCatalog(fix)
	schema.Index(cat)

	r.cats[version] = cat

	if version == "50" || version == "50SP1" || version == "50SP2" {
		r.mergeSessionFields(cat)
	}

	return cat, nil
}

// mergeSessionFields grafts the FIXT.1.1 header/trailer field set into a
// FIX5.0-family catalog's header/trailer scopes when a field is absent,
// without holding r.mu reentrantly.
func (r *Resolver) mergeSessionFields(cat *schema.Catalog) {
	t11Fix, err := schema.Load(strings.NewReader(ChooseEmbeddedXML("T11")))
	if err != nil {
		return
	}

	t11 := schema.BuildCatalog(t11Fix)
	schema.Index(t11)

	mergeScope(cat.Header, t11.Header)
	mergeScope(cat.Trailer, t11.Trailer)
}

func mergeScope(dst, src *schema.Node) {
	if dst == nil || src == nil {
		return
	}

	have := make(map[string]bool, len(dst.Nods))
	for _, ch := range dst.Nods {
		have[ch.Att("name")] = true
	}

	for _, ch := range src.Nods {
		if !have[ch.Att("name")] {
			dst.Nods = append(dst.Nods, ch.Copy())
		}
	}
}

// ResolveCatalog is a package-level convenience combining DetectVersion
// and a private default Resolver, for callers that do not need to share
// a cache across calls.
func ResolveCatalog(msg string) (*schema.Catalog, error) {
	return defaultResolver.Catalog(DetectVersion(msg))
}

var defaultResolver = NewResolver()
