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

// Package ofdheader implements the two fixed-size wire envelopes of
// the OFD protocol: the 32-byte frame header and the 30-byte session
// header, plus the CRC-CCITT-FALSE checksum the frame header carries.
// Framing concerns are kept separate from the STLV value codec in
// protocol/fiscal.
package ofdheader

import (
	"encoding/binary"

	"github.com/ofd-go/ofd/ofderr"
)

const (
	// FrameHeaderSize is the fixed wire size of a FrameHeader.
	FrameHeaderSize = 32

	// MsgType is the constant message-type byte.
	MsgType byte = 0xA5
	// FrameVersion is the constant frame version byte.
	FrameVersion byte = 1

	extra1Size = 2
	devnumSize = 8
	docnumSize = 3
	extra2Size = 12
)

/*
FrameHeader is the fixed 32-byte little-endian container header:

	length:u16, crc:u16, msgtype:u8, doctype:u8, version:u8,
	extra1:2 bytes, devnum:8 bytes, docnum:3 bytes, extra2:12 bytes
*/
type FrameHeader struct {
	Length  uint16
	CRC     uint16
	MsgType byte
	DocType byte
	Version byte
	Extra1  [extra1Size]byte
	DevNum  [devnumSize]byte
	DocNum  [docnumSize]byte
	Extra2  [extra2Size]byte
}

// DocNumUint returns DocNum surfaced as an unsigned 24-bit integer,
// read big-endian.
func (f FrameHeader) DocNumUint() uint32 {
	return uint32(f.DocNum[0])<<16 | uint32(f.DocNum[1])<<8 | uint32(f.DocNum[2])
}

// DocNumFromUint packs n (must fit in 24 bits) into a big-endian
// 3-byte DocNum array, for callers building an outbound header.
func DocNumFromUint(n uint32) [docnumSize]byte {
	return [docnumSize]byte{byte(n >> 16), byte(n >> 8), byte(n)}
}

// MsgTypeMode selects how Unpack treats an unexpected MsgType byte.
type MsgTypeMode int

const (
	// Strict rejects any msgtype != MsgType.
	Strict MsgTypeMode = iota
	// Permissive accepts any msgtype (observed real-world traffic
	// occasionally deviates here).
	Permissive
)

// Pack serializes the header fields in declared order, little-endian.
func (f FrameHeader) Pack() []byte {
	buf := make([]byte, FrameHeaderSize)
	binary.LittleEndian.PutUint16(buf[0:2], f.Length)
	binary.LittleEndian.PutUint16(buf[2:4], f.CRC)
	buf[4] = f.MsgType
	buf[5] = f.DocType
	buf[6] = f.Version
	copy(buf[7:9], f.Extra1[:])
	copy(buf[9:17], f.DevNum[:])
	copy(buf[17:20], f.DocNum[:])
	copy(buf[20:32], f.Extra2[:])
	return buf
}

// Unpack parses a 32-byte buffer into a FrameHeader, verifying version
// == 1 always and msgtype == 0xA5 only when mode is Strict.
func Unpack(buf []byte, mode MsgTypeMode) (FrameHeader, error) {
	if len(buf) != FrameHeaderSize {
		return FrameHeader{}, ofderr.New(ofderr.WrongSize, "frame header must be %d bytes, got %d", FrameHeaderSize, len(buf))
	}
	var f FrameHeader
	f.Length = binary.LittleEndian.Uint16(buf[0:2])
	f.CRC = binary.LittleEndian.Uint16(buf[2:4])
	f.MsgType = buf[4]
	f.DocType = buf[5]
	f.Version = buf[6]
	copy(f.Extra1[:], buf[7:9])
	copy(f.DevNum[:], buf[9:17])
	copy(f.DocNum[:], buf[17:20])
	copy(f.Extra2[:], buf[20:32])

	if f.Version != FrameVersion {
		return FrameHeader{}, ofderr.New(ofderr.BadFrameVersion, "frame version %d != %d", f.Version, FrameVersion)
	}
	if mode == Strict && f.MsgType != MsgType {
		return FrameHeader{}, ofderr.New(ofderr.BadMessageType, "frame msgtype %#x != %#x", f.MsgType, MsgType)
	}
	return f, nil
}

// UnpackRaw parses the tail 28 bytes of a frame header (msgtype
// onward), for callers that are supplied length and crc out of band.
func UnpackRaw(tail []byte, length, crc uint16, mode MsgTypeMode) (FrameHeader, error) {
	const rawSize = FrameHeaderSize - 4
	if len(tail) != rawSize {
		return FrameHeader{}, ofderr.New(ofderr.WrongSize, "frame header tail must be %d bytes, got %d", rawSize, len(tail))
	}
	buf := make([]byte, FrameHeaderSize)
	binary.LittleEndian.PutUint16(buf[0:2], length)
	binary.LittleEndian.PutUint16(buf[2:4], crc)
	copy(buf[4:], tail)
	return Unpack(buf, mode)
}
