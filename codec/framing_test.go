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
package codec

import (
	"strconv"
	"testing"

	"github.com/gordfix/fixspec/wire"
)

func TestValidateFramingAccepts(t *testing.T) {
	body := "35=D\x0111=1\x01"
	msg := "8=FIX.4.4\x019=" + strconv.Itoa(len(body)) + "\x01" + body
	msg += "10=" + wire.Checksum(msg) + "\x01"

	if err := ValidateFraming(msg, "FIX.4.4"); err != nil {
		t.Errorf("ValidateFraming() on a well-formed message = %v, want nil", err)
	}
}

func TestValidateFramingWrongPrelude(t *testing.T) {
	body := "35=D\x01"
	msg := "8=FIX.4.2\x019=" + strconv.Itoa(len(body)) + "\x01" + body
	msg += "10=" + wire.Checksum(msg) + "\x01"

	if err := ValidateFraming(msg, "FIX.4.4"); err == nil {
		t.Errorf("ValidateFraming() should reject a BeginString for a different version")
	}
}

func TestValidateFramingMissingSOHAfterBeginString(t *testing.T) {
	msg := "8=FIX.4.4935=D\x0110=000\x01"

	if err := ValidateFraming(msg, "FIX.4.4"); err == nil {
		t.Errorf("ValidateFraming() should reject a missing SOH after BeginString")
	}
}

func TestValidateFramingBadChecksum(t *testing.T) {
	body := "35=D\x01"
	msg := "8=FIX.4.4\x019=" + strconv.Itoa(len(body)) + "\x01" + body + "10=000\x01"

	err := ValidateFraming(msg, "FIX.4.4")
	if err == nil {
		t.Fatalf("ValidateFraming() should reject a wrong checksum")
	}
}

func TestValidateFramingTooShort(t *testing.T) {
	if err := ValidateFraming("8=FIX", "FIX.4.4"); err == nil {
		t.Errorf("ValidateFraming() should reject a buffer too short to carry a trailer")
	}
}
