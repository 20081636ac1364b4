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
	"encoding/binary"

	"github.com/ofd-go/ofd/ofderr"
)

// scalarCodec is implemented by each of the seven primitive wire
// encodings. Encode/Decode operate on the `any` values used throughout
// the document tree (int64 for integer kinds, string for String,
// []byte for ByteArray, Decimal for FVLN).
type scalarCodec interface {
	maxLen() uint32
	encode(v any) ([]byte, error)
	decode(b []byte) (any, error)
}

// --- Byte --------------------------------------------------------------

type byteCodec struct{}

func (byteCodec) maxLen() uint32 { return 1 }

func (byteCodec) encode(v any) ([]byte, error) {
	n, err := asInt64(v)
	if err != nil {
		return nil, err
	}
	if n < 0 || n > 255 {
		return nil, ofderr.New(ofderr.Overflow, "byte value %d out of range [0,255]", n)
	}
	return []byte{byte(n)}, nil
}

func (byteCodec) decode(b []byte) (any, error) {
	if len(b) != 1 {
		return nil, ofderr.New(ofderr.WrongSize, "byte field must be exactly 1 byte, got %d", len(b))
	}
	return int64(b[0]), nil
}

// --- U32 -----------------------------------------------------------------

type u32Codec struct{}

func (u32Codec) maxLen() uint32 { return 4 }

func (u32Codec) encode(v any) ([]byte, error) {
	n, err := asInt64(v)
	if err != nil {
		return nil, err
	}
	if n < 0 || n > 0xFFFFFFFF {
		return nil, ofderr.New(ofderr.Overflow, "u32 value %d out of range", n)
	}
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(n))
	return b, nil
}

func (u32Codec) decode(b []byte) (any, error) {
	if len(b) != 4 {
		return nil, ofderr.New(ofderr.WrongSize, "u32 field must be exactly 4 bytes, got %d", len(b))
	}
	return int64(binary.LittleEndian.Uint32(b)), nil
}

// --- UnixTime --------------------------------------------------------------

// unixTimeCodec shares U32's wire shape; it is kept as a distinct type
// so the registry can surface the field's semantic kind.
type unixTimeCodec struct{ u32Codec }

// --- VLN -----------------------------------------------------------------

type vlnCodec struct{ max uint32 }

func (c vlnCodec) maxLen() uint32 { return c.max }

func (c vlnCodec) encode(v any) ([]byte, error) {
	n, err := asUint64(v)
	if err != nil {
		return nil, err
	}
	return truncateLE(n, int(c.max))
}

func (c vlnCodec) decode(b []byte) (any, error) {
	if uint32(len(b)) > c.max {
		return nil, ofderr.New(ofderr.Overflow, "vln actual size %d is greater than maximum %d", len(b), c.max)
	}
	return int64(padLEUint64(b)), nil
}

// --- FVLN ------------------------------------------------------------------

type fvlnCodec struct{ max uint32 }

func (c fvlnCodec) maxLen() uint32 { return c.max }

func (c fvlnCodec) encode(v any) ([]byte, error) {
	d, err := asDecimal(v)
	if err != nil {
		return nil, err
	}
	if c.max < 1 {
		return nil, ofderr.New(ofderr.Overflow, "fvln maxlen %d leaves no room for the scale byte", c.max)
	}
	mantissaBytes, err := truncateLE(d.Mantissa, int(c.max)-1)
	if err != nil {
		return nil, ofderr.New(ofderr.Overflow, "fvln mantissa %d overflows maxlen %d", d.Mantissa, c.max)
	}
	out := make([]byte, 0, 1+len(mantissaBytes))
	out = append(out, byte(d.Scale))
	out = append(out, mantissaBytes...)
	return out, nil
}

func (c fvlnCodec) decode(b []byte) (any, error) {
	if uint32(len(b)) > c.max {
		return nil, ofderr.New(ofderr.Overflow, "fvln actual size %d is greater than maximum %d", len(b), c.max)
	}
	if len(b) == 0 {
		return Decimal{}, nil
	}
	scale := int8(b[0])
	mantissa := padLEUint64(b[1:])
	return Decimal{Mantissa: mantissa, Scale: scale}, nil
}

// --- String (CP866) ---------------------------------------------------------

type stringCodec struct{ max uint32 }

func (c stringCodec) maxLen() uint32 { return c.max }

func (c stringCodec) encode(v any) ([]byte, error) {
	s, ok := v.(string)
	if !ok {
		return nil, ofderr.New(ofderr.InvalidDocument, "expected string value, got %T", v)
	}
	b, err := cp866Encode(s)
	if err != nil {
		return nil, err
	}
	if uint32(len(b)) > c.max {
		return nil, ofderr.New(ofderr.Overflow, "string %q encodes to %d bytes, exceeds maxlen %d", s, len(b), c.max)
	}
	return b, nil
}

func (c stringCodec) decode(b []byte) (any, error) {
	if uint32(len(b)) > c.max {
		return nil, ofderr.New(ofderr.Overflow, "string field is %d bytes, exceeds maxlen %d", len(b), c.max)
	}
	return cp866Decode(b)
}

// --- ByteArray ---------------------------------------------------------------

type byteArrayCodec struct{ max uint32 }

func (c byteArrayCodec) maxLen() uint32 { return c.max }

func (c byteArrayCodec) encode(v any) ([]byte, error) {
	b, ok := v.([]byte)
	if !ok {
		return nil, ofderr.New(ofderr.InvalidDocument, "expected []byte value, got %T", v)
	}
	if uint32(len(b)) > c.max {
		return nil, ofderr.New(ofderr.Overflow, "byte array is %d bytes, exceeds maxlen %d", len(b), c.max)
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (c byteArrayCodec) decode(b []byte) (any, error) {
	if uint32(len(b)) > c.max {
		return nil, ofderr.New(ofderr.Overflow, "byte array field is %d bytes, exceeds maxlen %d", len(b), c.max)
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// --- shared helpers ----------------------------------------------------------

// truncateLE packs v as 8 little-endian bytes, then truncates to
// maxBytes iff every dropped trailing byte is zero; otherwise it fails
// with Overflow. maxBytes >= 8 is a no-op truncation (full 8 bytes).
func truncateLE(v uint64, maxBytes int) ([]byte, error) {
	var full [8]byte
	binary.LittleEndian.PutUint64(full[:], v)
	if maxBytes >= 8 {
		return full[:], nil
	}
	if maxBytes < 0 {
		maxBytes = 0
	}
	for _, b := range full[maxBytes:] {
		if b != 0 {
			return nil, ofderr.New(ofderr.Overflow, "value %d does not fit in %d bytes", v, maxBytes)
		}
	}
	return full[:maxBytes], nil
}

// padLEUint64 right-zero-pads b to 8 bytes and reads a little-endian
// u64. Longer inputs are truncated to the first 8 bytes (callers are
// expected to have already bounds-checked against maxlen).
func padLEUint64(b []byte) uint64 {
	var full [8]byte
	copy(full[:], b)
	return binary.LittleEndian.Uint64(full[:])
}

func asInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	default:
		return 0, ofderr.New(ofderr.InvalidDocument, "expected integer value, got %T", v)
	}
}

func asUint64(v any) (uint64, error) {
	n, err := asInt64(v)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, ofderr.New(ofderr.InvalidDocument, "expected non-negative integer, got %d", n)
	}
	return uint64(n), nil
}

func asDecimal(v any) (Decimal, error) {
	switch d := v.(type) {
	case Decimal:
		return d, nil
	case string:
		return ParseDecimal(d)
	default:
		return Decimal{}, ofderr.New(ofderr.InvalidDocument, "expected decimal value, got %T", v)
	}
}
