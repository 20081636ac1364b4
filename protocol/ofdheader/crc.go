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

package ofdheader

import (
	"sync"

	"github.com/ofd-go/ofd/ofderr"
)

// crc16CCITTFalse implements CRC-CCITT-FALSE: poly 0x1021, init 0xFFFF,
// no input/output reflection, xorout 0x0000. No CRC-16 implementation
// turned up anywhere in the retrieved example pack, so this table is
// the one deliberately stdlib-only piece of the wire codec (see
// the grounding ledger).
const crc16Poly = 0x1021

var (
	crc16TableOnce sync.Once
	crc16Table     [256]uint16
)

func crcTable() [256]uint16 {
	crc16TableOnce.Do(func() {
		for i := 0; i < 256; i++ {
			crc := uint16(i) << 8
			for bit := 0; bit < 8; bit++ {
				if crc&0x8000 != 0 {
					crc = crc<<1 ^ crc16Poly
				} else {
					crc <<= 1
				}
			}
			crc16Table[i] = crc
		}
	})
	return crc16Table
}

// crcCCITTFalse computes CRC-CCITT-FALSE over buf.
func crcCCITTFalse(buf []byte) uint16 {
	table := crcTable()
	crc := uint16(0xFFFF)
	for _, b := range buf {
		crc = crc<<8 ^ table[byte(crc>>8)^b]
	}
	return crc
}

// RecalculateCRC computes the frame CRC over header[0:2] ∥ header[4:32]
// ∥ body: the checksum covers length and the bytes from msgtype
// onward, but not the checksum field itself. header must be exactly
// FrameHeaderSize bytes.
func RecalculateCRC(header, body []byte) (uint16, error) {
	if len(header) != FrameHeaderSize {
		return 0, ofderr.New(ofderr.WrongSize, "crc input header must be %d bytes, got %d", FrameHeaderSize, len(header))
	}
	buf := make([]byte, 0, 2+(FrameHeaderSize-4)+len(body))
	buf = append(buf, header[0:2]...)
	buf = append(buf, header[4:FrameHeaderSize]...)
	buf = append(buf, body...)
	return crcCCITTFalse(buf), nil
}

// VerifyCRC reports whether header.CRC matches the recomputed checksum
// over header and body. Verification is opt-in: callers decide whether
// a mismatch is fatal.
func VerifyCRC(header FrameHeader, body []byte) (bool, error) {
	got, err := RecalculateCRC(header.Pack(), body)
	if err != nil {
		return false, err
	}
	return got == header.CRC, nil
}
