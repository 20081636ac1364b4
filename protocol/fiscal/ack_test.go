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
	"testing"
	"time"

	"github.com/ofd-go/ofd/protocol/ofdheader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAckWiresHeaders(t *testing.T) {
	r := DefaultRegistry()

	prevClock := AckClock
	defer func() { AckClock = prevClock }()
	const fixedNow = int64(1700000000)
	AckClock = func() int64 { return fixedNow }

	inHeader := ofdheader.FrameHeader{
		Extra1: [2]byte{0x10, 0x09},
		DevNum: [8]byte{0x99, 0x99, 0x07, 0x89, 0x12, 0x34, 0x56, 0x7F},
	}
	inSession := ofdheader.SessionHeader{
		AVersion: ofdheader.AppVersionV2,
		FnID:     [16]byte{'9', '9', '9', '9', '0', '7', '8', '9', '5', '0', ' ', ' ', ' ', ' ', ' ', ' '},
	}

	docBody := map[string]any{
		"fiscalDriveNumber":    "9999078950      ",
		"fiscalDocumentNumber": int64(1),
	}

	out, err := r.BuildAck(docBody, inSession, inHeader)
	require.NoError(t, err)

	outSession, err := ofdheader.UnpackSession(out[:ofdheader.SessionHeaderSize])
	require.NoError(t, err)
	assert.Equal(t, ofdheader.AppVersionV1, outSession.AVersion)
	assert.Equal(t, inSession.FnID, outSession.FnID)
	assert.Equal(t, ofdheader.AckFlags, outSession.Flags)
	assert.EqualValues(t, len(out)-ofdheader.SessionHeaderSize, outSession.Length)

	containerRaw := out[ofdheader.SessionHeaderSize:]
	outHeader, err := ofdheader.Unpack(containerRaw[:ofdheader.FrameHeaderSize], ofdheader.Strict)
	require.NoError(t, err)
	assert.Equal(t, byte(TagOperatorAck), outHeader.DocType)
	assert.Equal(t, inHeader.DevNum, outHeader.DevNum)
	assert.Equal(t, inHeader.Extra1, outHeader.Extra1)
	assert.Equal(t, uint32(1), outHeader.DocNumUint())
	assert.Equal(t, [12]byte{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', '0'}, outHeader.Extra2)

	ok, err := ofdheader.VerifyCRC(outHeader, containerRaw[ofdheader.FrameHeaderSize:])
	require.NoError(t, err)
	assert.True(t, ok)

	body := containerRaw[ofdheader.FrameHeaderSize:]
	top, err := r.DecodeSTLV(body, nil)
	require.NoError(t, err)
	ack, ok := top["operatorAck"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, OperatorInn, ack["ofdInn"])
	assert.Equal(t, int64(1), ack["fiscalDocumentNumber"])
	assert.Equal(t, fixedNow, ack["dateTime"])
}

// TestBuildAckDateTimeUsesRealClock guards against AckClock being left
// unwired to a real clock in production: it leaves AckClock at its
// package default and checks the ack's dateTime lands within a
// generous window of time.Now, the way an end-to-end run against
// cmd/mockofd would observe.
func TestBuildAckDateTimeUsesRealClock(t *testing.T) {
	r := DefaultRegistry()

	before := time.Now().Unix()

	docBody := map[string]any{
		"fiscalDriveNumber":    "9999078950      ",
		"fiscalDocumentNumber": int64(1),
	}
	out, err := r.BuildAck(docBody, ofdheader.SessionHeader{}, ofdheader.FrameHeader{})
	require.NoError(t, err)

	after := time.Now().Unix()

	containerRaw := out[ofdheader.SessionHeaderSize:]
	body := containerRaw[ofdheader.FrameHeaderSize:]
	top, err := r.DecodeSTLV(body, nil)
	require.NoError(t, err)
	ack, ok := top["operatorAck"].(map[string]any)
	require.True(t, ok)

	dateTime, ok := ack["dateTime"].(int64)
	require.True(t, ok)
	assert.NotZero(t, dateTime)
	assert.GreaterOrEqual(t, dateTime, before)
	assert.LessOrEqual(t, dateTime, after)
}
