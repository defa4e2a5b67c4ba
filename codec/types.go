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
// types.go
package codec

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var monthYearPattern = regexp.MustCompile(`^\d{6}([0-9]{2}|(-[0-9]{1,2})|(-?w[1-5]))?$`)

// IsValidType reports whether val is a syntactically valid rendering of
// the FIX field type typ (INT, FLOAT, BOOLEAN, UTCTIMESTAMP, MONTHYEAR,
// and the other FIX44 base/derived types). Unknown or custom types are
// treated as valid: type checking is advisory, not a closed set.
func IsValidType(val, typ string) bool {
	switch strings.ToUpper(typ) {
	case "INT", "LENGTH", "NUMINGROUP", "SEQNUM", "DAYOFMONTH", "TAGNUM":
		_, err := strconv.Atoi(val)
		return err == nil

	case "FLOAT", "QTY", "PRICE", "PRICEOFFSET", "AMT", "PERCENTAGE":
		_, err := strconv.ParseFloat(val, 64)
		return err == nil

	case "BOOLEAN":
		return val == "Y" || val == "N"

	case "CHAR":
		return len(val) == 1

	case "STRING", "DATA", "CURRENCY", "EXCHANGE", "COUNTRY",
		"MULTIPLEVALUESTRING", "MULTIPLESTRINGVALUE":
		return true

	case "UTCTIMESTAMP":
		for _, layout := range []string{"20060102-15:04:05", "20060102-15:04:05.000"} {
			if _, err := time.Parse(layout, val); err == nil {
				return true
			}
		}

		return false

	case "UTCDATEONLY", "LOCALMKTDATE":
		_, err := time.Parse("20060102", val)
		return err == nil

	case "UTCTIMEONLY":
		for _, layout := range []string{"15:04", "15:04:05", "15:04:05.000"} {
			if _, err := time.Parse(layout, val); err == nil {
				return true
			}
		}

		return false

	case "MONTHYEAR":
		return monthYearPattern.MatchString(val)

	default:
		return true
	}
}
