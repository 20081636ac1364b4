// Copyright 2024 OFD Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fiscal

import (
	"time"

	"github.com/ofd-go/ofd/ofderr"
	"github.com/ofd-go/ofd/protocol/ofdheader"
)

// OperatorInn is the fixed operator INN stamped on every outbound
// acknowledgment. A real deployment would source this from
// configuration instead of a constant.
const OperatorInn = "7704358518"

// AckClock returns the current time as Unix seconds for the
// acknowledgment's dateTime field. It is a variable so tests can pin a
// deterministic clock.
var AckClock = func() int64 { return time.Now().Unix() }

// BuildAck builds an operatorAck response: given an already-decoded
// document body (the object nested one level under its kind name, e.g.
// the receipt's fields), the incoming session header and frame header,
// it returns the full outbound byte stream — session header ∥ frame
// header ∥ STLV body — ready to write back to the KKT.
func (r *Registry) BuildAck(docBody map[string]any, inSession ofdheader.SessionHeader, inHeader ofdheader.FrameHeader) ([]byte, error) {
	fiscalDriveNumber, _ := docBody["fiscalDriveNumber"]
	fiscalDocumentNumber, err := asInt64(docBody["fiscalDocumentNumber"])
	if err != nil {
		return nil, ofderr.Wrap(ofderr.InvalidDocument, err, "ack: incoming document has no usable fiscalDocumentNumber")
	}

	messageToFn := NewDocument()
	messageToFn.Set("ofdResponseCode", int64(0))

	ack := NewDocument()
	ack.Set("ofdInn", OperatorInn)
	ack.Set("fiscalDriveNumber", fiscalDriveNumber)
	ack.Set("fiscalDocumentNumber", fiscalDocumentNumber)
	ack.Set("dateTime", AckClock())
	ack.Set("messageToFn", messageToFn)

	body, err := r.Encode("operatorAck", ack)
	if err != nil {
		return nil, err
	}

	outHeader := ofdheader.FrameHeader{
		Length:  uint16(ofdheader.FrameHeaderSize + len(body)),
		MsgType: ofdheader.MsgType,
		DocType: byte(TagOperatorAck),
		Version: ofdheader.FrameVersion,
		Extra1:  inHeader.Extra1,
		DevNum:  inHeader.DevNum,
		DocNum:  ofdheader.DocNumFromUint(uint32(fiscalDocumentNumber)),
	}
	copy(outHeader.Extra2[:], padLeft("0", 12))

	crc, err := ofdheader.RecalculateCRC(outHeader.Pack(), body)
	if err != nil {
		return nil, err
	}
	outHeader.CRC = crc

	container := append(outHeader.Pack(), body...)

	outSession := ofdheader.SessionHeader{
		Magic:    ofdheader.SessionMagic,
		SVersion: ofdheader.SessionVersion,
		AVersion: inSession.AVersion,
		FnID:     inSession.FnID,
		Length:   uint16(len(container)),
		Flags:    ofdheader.AckFlags,
	}

	return append(outSession.Pack(), container...), nil
}
