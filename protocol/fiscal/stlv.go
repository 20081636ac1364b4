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

	"github.com/ofd-go/ofd/internal/wirebuf"
	"github.com/ofd-go/ofd/ofderr"
)

// maxSTLVDepth bounds recursion the way skipType's maxdepth bounds
// Thrift struct skipping (protocol/thrift/binary.go); a malformed,
// self-referential body fails fast instead of blowing the stack.
const maxSTLVDepth = 32

// DecodeSTLV decodes a sequence of (tag, length, value) triples into
// a field map (unordered), resolving each child's cardinality and
// recursing into nested STLV containers. parentTag is nil at the
// document root.
func (r *Registry) DecodeSTLV(body []byte, parentTag *uint16) (map[string]any, error) {
	return r.decodeSTLVDepth(body, parentTag, maxSTLVDepth)
}

func (r *Registry) decodeSTLVDepth(body []byte, parentTag *uint16, depth int) (map[string]any, error) {
	if depth <= 0 {
		return nil, ofderr.New(ofderr.InvalidDocument, "stlv nesting exceeds depth limit")
	}
	in := wirebuf.NewReader(body)
	out := make(map[string]any)

	for in.Len() > 0 {
		head, err := in.Next(4)
		if err != nil {
			return nil, ofderr.Wrap(ofderr.InvalidDocument, err, "stlv: truncated tag/length header")
		}
		tag := binary.LittleEndian.Uint16(head[0:2])
		length := binary.LittleEndian.Uint16(head[2:4])

		value, err := in.Next(int(length))
		if err != nil {
			return nil, ofderr.Wrap(ofderr.InvalidDocument, err, "stlv: tag %d declares length %d past end of buffer", tag, length)
		}

		entry, ok := r.ByTag(tag)
		if !ok {
			return nil, ofderr.New(ofderr.UnknownTag, "unrecognized tag in document body").WithTag(tag)
		}

		decoded, err := r.decodeValue(entry, value, depth)
		if err != nil {
			return nil, err
		}

		if entry.Cardinality.IsArray() {
			list, _ := out[entry.Name].([]any)
			out[entry.Name] = append(list, decoded)
		} else {
			out[entry.Name] = decoded
		}
	}
	return out, nil
}

func (r *Registry) decodeValue(entry Entry, value []byte, depth int) (any, error) {
	if entry.Kind == KindSTLV {
		tag := entry.Tag
		return r.decodeSTLVDepth(value, &tag, depth-1)
	}
	codec := entry.codec()
	if uint32(len(value)) > entry.MaxLen {
		return nil, ofderr.New(ofderr.Overflow, "tag %d value is %d bytes, exceeds maxlen %d", entry.Tag, len(value), entry.MaxLen).WithTag(entry.Tag)
	}
	return codec.decode(value)
}

// EncodeSTLV serializes a plain field map back to its TLV byte
// sequence, resolving each field name to a tag under parentTag. Map
// iteration order in Go is randomized, but sibling field order is not
// semantically significant except inside an STLV array, so callers
// that need deterministic output should pass an OrderedFields to
// EncodeOrderedSTLV instead of a bare map.
func (r *Registry) EncodeSTLV(fields map[string]any, parentTag *uint16) ([]byte, error) {
	return r.EncodeOrderedSTLV(NewOrderedFields(fields), parentTag)
}

// OrderedFields preserves insertion order for field names, since
// fields encode in the order they were set.
type OrderedFields struct {
	names  []string
	values map[string]any
}

// NewOrderedFields builds an OrderedFields from a plain map. Because
// Go map iteration order is randomized, callers that care about a
// stable wire order should build documents with NewDocument/Set
// instead of a bare map literal.
func NewOrderedFields(m map[string]any) *OrderedFields {
	of := &OrderedFields{values: make(map[string]any, len(m))}
	for k, v := range m {
		of.Set(k, v)
	}
	return of
}

// NewDocument returns an empty OrderedFields ready for Set calls.
func NewDocument() *OrderedFields {
	return &OrderedFields{values: make(map[string]any)}
}

// Set assigns name=value, appending name to the insertion order on
// first use and overwriting the value (without reordering) otherwise.
func (of *OrderedFields) Set(name string, value any) {
	if _, exists := of.values[name]; !exists {
		of.names = append(of.names, name)
	}
	of.values[name] = value
}

// Get returns the value for name and whether it is present.
func (of *OrderedFields) Get(name string) (any, bool) {
	v, ok := of.values[name]
	return v, ok
}

// Names returns the field names in insertion order.
func (of *OrderedFields) Names() []string { return of.names }

// EncodeOrderedSTLV is EncodeSTLV with an explicit, caller-controlled
// field order.
func (r *Registry) EncodeOrderedSTLV(fields *OrderedFields, parentTag *uint16) ([]byte, error) {
	out := wirebuf.NewWriter()
	for _, name := range fields.Names() {
		value, _ := fields.Get(name)
		if err := r.encodeField(out, name, value, parentTag); err != nil {
			return nil, err
		}
	}
	return out.Bytes(), nil
}

func (r *Registry) encodeField(out *wirebuf.Writer, name string, value any, parentTag *uint16) error {
	if list, ok := asList(value); ok {
		for _, elem := range list {
			if err := r.encodeScalarOrObject(out, name, elem, parentTag); err != nil {
				return err
			}
		}
		return nil
	}
	return r.encodeScalarOrObject(out, name, value, parentTag)
}

func (r *Registry) encodeScalarOrObject(out *wirebuf.Writer, name string, value any, parentTag *uint16) error {
	entry, err := r.Resolve(name, parentTag)
	if err != nil {
		return err
	}

	var payload []byte
	if entry.Kind == KindSTLV {
		child := entry.Tag
		switch v := value.(type) {
		case *OrderedFields:
			payload, err = r.EncodeOrderedSTLV(v, &child)
		case map[string]any:
			payload, err = r.EncodeOrderedSTLV(NewOrderedFields(v), &child)
		default:
			return ofderr.New(ofderr.InvalidDocument, "field %q expects a nested object, got %T", name, value)
		}
		if err != nil {
			return err
		}
	} else {
		payload, err = entry.codec().encode(value)
		if err != nil {
			return err
		}
		if uint32(len(payload)) > entry.MaxLen {
			return ofderr.New(ofderr.Overflow, "field %q encodes to %d bytes, exceeds maxlen %d", name, len(payload), entry.MaxLen)
		}
	}

	head := out.Malloc(4)
	binary.LittleEndian.PutUint16(head[0:2], entry.Tag)
	binary.LittleEndian.PutUint16(head[2:4], uint16(len(payload)))
	out.WriteBytes(payload)
	return nil
}

func asList(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []map[string]any:
		out := make([]any, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out, true
	case []*OrderedFields:
		out := make([]any, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out, true
	default:
		return nil, false
	}
}
