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
// framing.go
package codec

import (
	"fmt"
	"strings"

	"github.com/gordfix/fixspec/wire"
)

const soh = "\x01"

// ValidateFraming checks that buf opens with "8="+prelude immediately
// followed by SOH, and that its last 7 bytes are a correct CheckSum
// trailer ("10=DDD"+SOH) over everything preceding it.
func ValidateFraming(buf, prelude string) error {
	lhs := "8=" + prelude

	if !strings.HasPrefix(buf, lhs) {
		return &FramingError{Reason: fmt.Sprintf("bad FIX version, expected prefix %q", lhs)}
	}

	if !strings.HasPrefix(buf, lhs+soh) {
		return &FramingError{Reason: "missing SOH after BeginString"}
	}

	if len(buf) < 7 {
		return &FramingError{Reason: "buffer too short for trailer"}
	}

	sum := wire.Checksum(buf[:len(buf)-7])
	rhs := "10=" + sum + soh

	if buf[len(buf)-7:] != rhs {
		return &FramingError{Reason: fmt.Sprintf("bad checksum, expected %s", sum)}
	}

	return nil
}
