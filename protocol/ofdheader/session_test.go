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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionVector is a known-good session header byte vector.
var sessionVector = []byte{
	0x2A, 0x08, 0x41, 0x0A, 0x81, 0xA2, 0x00, 0x01,
	0x39, 0x39, 0x39, 0x39, 0x30, 0x37, 0x38, 0x39, 0x35, 0x30, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20,
	0x31, 0x01, 0x14, 0x00, 0x00, 0x00,
}

func TestUnpackSessionVector(t *testing.T) {
	s, err := UnpackSession(sessionVector)
	require.NoError(t, err)
	assert.Equal(t, SessionMagic, s.Magic)
	assert.Equal(t, AppVersionV1, s.AVersion)
	assert.Equal(t, "9999078950      ", string(s.FnID[:]))
	assert.Equal(t, uint16(305), s.Length)
	assert.Equal(t, uint16(0b10100), s.Flags)
	assert.Equal(t, uint16(0), s.CRC)
}

func TestSessionPackAlwaysStampsAppVersionV1(t *testing.T) {
	s, err := UnpackSession(sessionVector)
	require.NoError(t, err)

	s.AVersion = AppVersionV2
	packed := s.Pack()
	reparsed, err := UnpackSession(packed)
	require.NoError(t, err)
	assert.Equal(t, AppVersionV1, reparsed.AVersion)
}

func TestSessionPackUnpackRoundTrip(t *testing.T) {
	s, err := UnpackSession(sessionVector)
	require.NoError(t, err)
	assert.Equal(t, sessionVector, s.Pack())
}

func TestUnpackSessionRejectsBadMagic(t *testing.T) {
	bad := append([]byte(nil), sessionVector...)
	bad[0] = 0xFF
	_, err := UnpackSession(bad)
	assert.Error(t, err)
}

func TestUnpackSessionRejectsWrongSize(t *testing.T) {
	_, err := UnpackSession(sessionVector[:10])
	assert.Error(t, err)
}
