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

// Package fiscal implements the FNS fiscal document TLV body: scalar
// field codecs, the tag registry, the recursive STLV codec, the
// document decode/encode facade and the operator acknowledgment
// builder.
package fiscal

// ScalarKind identifies one of the seven primitive wire encodings, or
// STLV for a nested container. It is the fiscal-protocol analogue of
// a Thrift TType.
type ScalarKind int8

const (
	KindByte ScalarKind = iota
	KindU32
	KindVLN
	KindFVLN
	KindString
	KindByteArray
	KindUnixTime
	KindSTLV
)

func (k ScalarKind) String() string {
	switch k {
	case KindByte:
		return "Byte"
	case KindU32:
		return "U32"
	case KindVLN:
		return "VLN"
	case KindFVLN:
		return "FVLN"
	case KindString:
		return "String"
	case KindByteArray:
		return "ByteArray"
	case KindUnixTime:
		return "UnixTime"
	case KindSTLV:
		return "STLV"
	default:
		return "unknown"
	}
}

// Cardinality controls whether a decoded child is placed as a scalar
// key or appended to a list, and (for encode, loosely) how many
// instances are expected.
type Cardinality int8

const (
	// CardinalityOne: exactly one instance (default for scalars).
	CardinalityOne Cardinality = iota
	// CardinalityOpt: zero or one instance.
	CardinalityOpt
	// CardinalityManyZero: zero or more instances (array).
	CardinalityManyZero
	// CardinalityManyOne: one or more instances (array).
	CardinalityManyOne
)

// IsArray reports whether children of this cardinality are collected
// into a list rather than set as a single scalar/object value.
func (c Cardinality) IsArray() bool {
	return c == CardinalityManyZero || c == CardinalityManyOne
}
