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

	"github.com/ofd-go/ofd/ofderr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteCodecRoundTrip(t *testing.T) {
	c := byteCodec{}
	b, err := c.encode(int64(200))
	require.NoError(t, err)
	assert.Equal(t, []byte{200}, b)

	v, err := c.decode(b)
	require.NoError(t, err)
	assert.Equal(t, int64(200), v)
}

func TestByteCodecOverflow(t *testing.T) {
	c := byteCodec{}
	_, err := c.encode(int64(300))
	require.Error(t, err)
	assert.True(t, ofderr.IsKind(err, ofderr.Overflow))
}

func TestU32CodecRoundTrip(t *testing.T) {
	c := u32Codec{}
	b, err := c.encode(int64(1000000))
	require.NoError(t, err)
	require.Len(t, b, 4)

	v, err := c.decode(b)
	require.NoError(t, err)
	assert.Equal(t, int64(1000000), v)
}

func TestVLNRoundTripMaxlen6(t *testing.T) {
	c := vlnCodec{max: 6}
	b, err := c.encode(int64(87892227523633))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x31, 0x04, 0x00, 0x01, 0xF0, 0x4F}, b)

	v, err := c.decode(b)
	require.NoError(t, err)
	assert.Equal(t, int64(87892227523633), v)
}

func TestVLNEncodeOverflow(t *testing.T) {
	c := vlnCodec{max: 6}
	_, err := c.encode(uint64(1) << 50)
	require.Error(t, err)
	assert.True(t, ofderr.IsKind(err, ofderr.Overflow))
}

func TestVLNDecodeRejectsOverMaxlen(t *testing.T) {
	c := vlnCodec{max: 2}
	_, err := c.decode([]byte{1, 2, 3})
	require.Error(t, err)
	assert.True(t, ofderr.IsKind(err, ofderr.Overflow))
}

func TestFVLNRoundTripMaxlen5(t *testing.T) {
	c := fvlnCodec{max: 5}
	d, err := ParseDecimal("1234567.89")
	require.NoError(t, err)

	b, err := c.encode(d)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x15, 0xCD, 0x5B, 0x07}, b)

	v, err := c.decode(b)
	require.NoError(t, err)
	assert.Equal(t, d, v)
	assert.Equal(t, "1234567.89", v.(Decimal).String())
}

func TestFVLNRoundTripMaxlen8(t *testing.T) {
	c := fvlnCodec{max: 8}
	d, err := ParseDecimal("1453.67")
	require.NoError(t, err)

	b, err := c.encode(d)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0xD7, 0x37, 0x02, 0x00, 0x00, 0x00, 0x00}, b)

	v, err := c.decode(b)
	require.NoError(t, err)
	assert.Equal(t, "1453.67", v.(Decimal).String())
}

func TestFVLNEncodeOverflow(t *testing.T) {
	c := fvlnCodec{max: 5}
	d, err := ParseDecimal("1234567123.893")
	require.NoError(t, err)
	_, err = c.encode(d)
	require.Error(t, err)
	assert.True(t, ofderr.IsKind(err, ofderr.Overflow))
}

func TestStringCodecRoundTrip(t *testing.T) {
	c := stringCodec{max: 32}
	b, err := c.encode("hello")
	require.NoError(t, err)

	v, err := c.decode(b)
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
}

func TestStringCodecEmptyDecodesEmpty(t *testing.T) {
	c := stringCodec{max: 32}
	v, err := c.decode(nil)
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestByteArrayCodecRejectsOverMaxlen(t *testing.T) {
	c := byteArrayCodec{max: 2}
	_, err := c.encode([]byte{1, 2, 3})
	require.Error(t, err)
	assert.True(t, ofderr.IsKind(err, ofderr.Overflow))
}
