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
// generator.go
package codec

import (
	"strconv"
	"time"

	"github.com/gordfix/fixspec/schema"
	"github.com/gordfix/fixspec/wire"
)

// Generator assembles complete FIX messages from a catalog and a logical
// field-name -> value map: body first (to determine BodyLength), then
// header, then trailer with CheckSum. MsgSeqNum is an instance field
// (not process-global) so multiple sessions can coexist.
type Generator struct {
	Cat *schema.Catalog

	writer  *wire.Writer
	nextSeq int
}

// NewGenerator builds a Generator over cat, starting MsgSeqNum at 2000.
func NewGenerator(cat *schema.Catalog) *Generator {
	return &Generator{
		Cat:     cat,
		writer:  wire.NewWriter(cat),
		nextSeq: 2000,
	}
}

// Generate builds a complete wire message for msgtype using bodyAttrs
// (field name -> string, or group name -> wire.GroupValue for repeats),
// framed with BeginString/BodyLength header fields and a CheckSum
// trailer. SendingTime is rendered in UTC.
func (g *Generator) Generate(msgtype string, bodyAttrs map[string]any, sender, target string) (string, error) {
	msg, ok := g.Cat.Messages[msgtype]
	if !ok {
		return "", &UnknownMessageTypeError{MsgType: msgtype}
	}

	body, err := g.writer.Write(msg, bodyAttrs)
	if err != nil {
		return "", err
	}

	seq := g.nextSeq
	g.nextSeq++

	// BodyLength covers everything from directly after the BodyLength
	// field through the byte before CheckSum: that is the rest of the
	// header (MsgType onward) plus the message body. BeginString and
	// BodyLength themselves are excluded from headAttrs here so Write
	// skips them, then are prepended once their combined length is known.
	headAttrs := map[string]any{
		"MsgType":      msgtype,
		"SenderCompID": sender,
		"TargetCompID": target,
		"MsgSeqNum":    strconv.Itoa(seq),
		"SendingTime":  time.Now().UTC().Format("20060102-15:04:05"),
	}

	restHeader, err := g.writer.Write(g.Cat.Header, headAttrs)
	if err != nil {
		return "", err
	}

	bodyLength := len(restHeader) + len(body)

	header := "8=" + g.Cat.Prelude() + soh + "9=" + strconv.Itoa(bodyLength) + soh + restHeader

	core := header + body

	footAttrs := map[string]any{
		"CheckSum": wire.Checksum(core),
	}

	trailer, err := g.writer.Write(g.Cat.Trailer, footAttrs)
	if err != nil {
		return "", err
	}

	return core + trailer, nil
}
