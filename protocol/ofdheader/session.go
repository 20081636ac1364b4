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
	"encoding/binary"

	"github.com/ofd-go/ofd/ofderr"
)

const (
	// SessionHeaderSize is the fixed wire size of a SessionHeader.
	SessionHeaderSize = 30

	// SessionMagic is the constant magic number opening every session
	// header.
	SessionMagic uint32 = 0x0A41082A
	// SessionVersion is the constant session-protocol version.
	SessionVersion uint16 = 0xA281

	// AppVersionV1 and AppVersionV2 are the two application-protocol
	// versions a session may declare.
	AppVersionV1 uint16 = 0x0100
	AppVersionV2 uint16 = 0x0200

	fnIDSize = 16

	// AckFlags is the flag value the acknowledgment builder stamps on
	// its outbound session header.
	AckFlags uint16 = 0b0000000000010100
)

/*
SessionHeader is the fixed 30-byte little-endian session envelope:

	magic:u32, s_version:u16, a_version:u16, fn_id:16 bytes,
	length:u16, flags:u16, crc:u16
*/
type SessionHeader struct {
	Magic     uint32
	SVersion  uint16
	AVersion  uint16
	FnID      [fnIDSize]byte
	Length    uint16
	Flags     uint16
	CRC       uint16
}

// Pack serializes the header fields in declared order, little-endian.
// a_version is always written as AppVersionV1 regardless of s.AVersion:
// outbound session headers are always stamped at the canonical
// version; s.AVersion is retained only for observation of what was
// decoded on the inbound side.
func (s SessionHeader) Pack() []byte {
	buf := make([]byte, SessionHeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], s.Magic)
	binary.LittleEndian.PutUint16(buf[4:6], s.SVersion)
	binary.LittleEndian.PutUint16(buf[6:8], AppVersionV1)
	copy(buf[8:24], s.FnID[:])
	binary.LittleEndian.PutUint16(buf[24:26], s.Length)
	binary.LittleEndian.PutUint16(buf[26:28], s.Flags)
	binary.LittleEndian.PutUint16(buf[28:30], s.CRC)
	return buf
}

// UnpackSession parses a 30-byte buffer into a SessionHeader, verifying
// the magic number, the session-protocol version, and that the
// application version is one of the two known values.
func UnpackSession(buf []byte) (SessionHeader, error) {
	if len(buf) != SessionHeaderSize {
		return SessionHeader{}, ofderr.New(ofderr.WrongSize, "session header must be %d bytes, got %d", SessionHeaderSize, len(buf))
	}
	var s SessionHeader
	s.Magic = binary.LittleEndian.Uint32(buf[0:4])
	s.SVersion = binary.LittleEndian.Uint16(buf[4:6])
	s.AVersion = binary.LittleEndian.Uint16(buf[6:8])
	copy(s.FnID[:], buf[8:24])
	s.Length = binary.LittleEndian.Uint16(buf[24:26])
	s.Flags = binary.LittleEndian.Uint16(buf[26:28])
	s.CRC = binary.LittleEndian.Uint16(buf[28:30])

	if s.Magic != SessionMagic {
		return SessionHeader{}, ofderr.New(ofderr.BadMagic, "session magic %#x != %#x", s.Magic, SessionMagic)
	}
	if s.SVersion != SessionVersion {
		return SessionHeader{}, ofderr.New(ofderr.BadSessionVersion, "session version %#x != %#x", s.SVersion, SessionVersion)
	}
	if s.AVersion != AppVersionV1 && s.AVersion != AppVersionV2 {
		return SessionHeader{}, ofderr.New(ofderr.BadAppVersion, "application version %#x is neither %#x nor %#x", s.AVersion, AppVersionV1, AppVersionV2)
	}
	return s, nil
}
