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
// scan.go
package codec

import (
	"strconv"
	"strings"

	"github.com/gordfix/fixspec/wire"
)

// FrameLength locates the end of one well-formed FIX message starting
// at the head of buf ("8="+prelude already confirmed present by the
// caller): it reads BeginString and BodyLength to find where the body
// ends, then scans trailer fields up to and including CheckSum. It
// returns the total byte length of the framed message, or false if buf
// is truncated before a complete message is found. Exported so callers
// needing per-candidate version detection (picking a Validator only
// after seeing BeginString) can frame without committing to one
// Validator's prelude up front.
func FrameLength(buf string) (int, bool) {
	r := wire.NewReader(buf)

	if _, err := r.Advance(); err != nil || r.Tag != "8" {
		return 0, false
	}

	if _, err := r.Advance(); err != nil || r.Tag != "9" {
		return 0, false
	}

	bodyLen, err := strconv.Atoi(r.Val)
	if err != nil || bodyLen < 0 {
		return 0, false
	}

	bodyEnd := r.Pos() + bodyLen
	if bodyEnd > len(buf) {
		return 0, false
	}

	tr := wire.NewReader(buf[bodyEnd:])

	for {
		n, err := tr.Advance()
		if err != nil || n == 0 {
			return 0, false
		}

		if tr.Tag == "10" {
			return bodyEnd + tr.Pos(), true
		}
	}
}

// ScanResult is one candidate found by Scan: either a decoded message
// (Msg and Diags) or a framing failure (Err), at byte Offset in the input.
type ScanResult struct {
	Offset int
	Msg    string
	Diags  []Diagnostic
	Err    error
}

// Scan repeatedly locates "8=FIX" substrings in buf: at each match it
// attempts to frame and validate a complete message (BeginString must
// equal "8="+prelude, checksum must match); on success it decodes the
// message with v and advances past it, on failure it advances past the
// match by 5 bytes and keeps scanning. Returns one result per candidate
// that FrameLength could frame: a decoded message, or an Err from
// ValidateFraming. Candidates that cannot be framed yield no result.
func Scan(v *Validator, buf string) []ScanResult {
	prelude := v.Cat.Prelude()

	var results []ScanResult

	pos := 0

	for {
		rel := strings.Index(buf[pos:], "8=FIX")
		if rel < 0 {
			break
		}

		start := pos + rel
		cand := buf[start:]

		length, ok := FrameLength(cand)
		if !ok {
			pos = start + 5
			continue
		}

		msg := cand[:length]

		if err := ValidateFraming(msg, prelude); err != nil {
			results = append(results, ScanResult{Offset: start, Err: err})
			pos = start + 5
			continue
		}

		results = append(results, ScanResult{Offset: start, Msg: msg, Diags: v.Decode(msg)})
		pos = start + length
	}

	return results
}
