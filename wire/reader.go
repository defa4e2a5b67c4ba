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
// reader.go
package wire

import (
	"fmt"
	"strings"
)

const soh = "\x01"

// ParseError reports a malformed tag=value chunk: a missing '=', a
// missing SOH terminator, or a cursor run past the end of the buffer.
type ParseError struct {
	Reason string
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("wire: parse error at offset %d: %s", e.Offset, e.Reason)
}

// Reader steps through a FIX byte buffer chunk by chunk ("tag=value\x01"),
// exposing the current tag, value, the remembered MsgType (tag 35), and a
// one-shot rewind back to the previously parsed chunk.
type Reader struct {
	buf string
	pos int

	Tag     string
	Val     string
	MsgType string

	lastLen int
}

// NewReader wraps buf for chunk-by-chunk stepping from offset 0.
func NewReader(buf string) *Reader {
	return &Reader{buf: buf}
}

// Pos returns the current cursor offset into the buffer.
func (r *Reader) Pos() int { return r.pos }

// Advance reads the next "tag=value\x01" chunk. It returns the number of
// bytes consumed (0 at end of buffer, with no error) and clears Tag/Val
// when there is nothing left to read.
func (r *Reader) Advance() (int, error) {
	r.Tag, r.Val = "", ""

	if r.pos+2 >= len(r.buf) {
		return 0, nil
	}

	rest := r.buf[r.pos:]

	eq := strings.IndexByte(rest, '=')
	if eq < 0 {
		return 0, &ParseError{Reason: "missing '='", Offset: r.pos}
	}

	valStart := eq + 1

	sohIdx := strings.IndexByte(rest[valStart:], 0x01)
	if sohIdx < 0 {
		return 0, &ParseError{Reason: "missing SOH", Offset: r.pos}
	}

	tag := rest[:eq]
	val := rest[valStart : valStart+sohIdx]

	if tag == "35" {
		r.MsgType = val
	}

	nchunk := valStart + sohIdx + 1

	r.Tag, r.Val = tag, val
	r.lastLen = nchunk
	r.pos += nchunk

	return nchunk, nil
}

// Rewind undoes the most recent non-empty Advance, so the next Advance
// reproduces the same tag/value. It is one-shot: Rewind after Rewind (or
// before any successful Advance) is a no-op.
func (r *Reader) Rewind() {
	if r.Tag == "" && r.Val == "" {
		return
	}

	r.pos -= r.lastLen
	r.Tag, r.Val = "", ""
}
