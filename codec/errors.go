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
// errors.go
package codec

import "fmt"

// UnknownMessageTypeError reports a msgtype absent from the catalog
// during generation or display.
type UnknownMessageTypeError struct {
	MsgType string
}

func (e *UnknownMessageTypeError) Error() string {
	return fmt.Sprintf("codec: unknown message type %q", e.MsgType)
}

// FramingError reports a wrong BeginString, a missing SOH after
// BeginString, a buffer too short to hold the trailer, or a bad checksum.
// BodyLength is not checked here.
type FramingError struct {
	Reason string
}

func (e *FramingError) Error() string {
	return "codec: framing error: " + e.Reason
}

// Diagnostic is a non-fatal per-field finding emitted during validation:
// an unrecognized tag, a missing required field, a repeated field, or a
// type/enum mismatch. Diagnostics never abort decoding.
type Diagnostic struct {
	Tag    string
	Name   string
	Reason string
}

func (d Diagnostic) String() string {
	if d.Name != "" {
		return fmt.Sprintf("%-3s %-20s << %s", d.Tag, d.Name, d.Reason)
	}

	return fmt.Sprintf("%-3s << %s", d.Tag, d.Reason)
}
