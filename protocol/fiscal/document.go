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
	"encoding/base64"
	"strings"

	"github.com/ofd-go/ofd/ofderr"
	"github.com/ofd-go/ofd/protocol/ofdheader"
)

// innFields lists the direct body fields that hold an INN and get
// length-padding normalization on decode.
var innFields = map[string]bool{
	"userInn":     true,
	"ofdInn":      true,
	"operatorInn": true,
}

// Decode implements the document facade's high-level decode: given the
// raw bytes following the session header (frame header ∥ STLV body)
// and the fiscal-sign bytes supplied by the caller out of band
// (cryptographic signing is not implemented here), it returns the
// normalized `{"document": {<kind>: {...}}}` envelope.
func (r *Registry) Decode(containerBytes []byte, fiscalSign []byte) (map[string]any, error) {
	if len(containerBytes) < ofdheader.FrameHeaderSize {
		return nil, ofderr.New(ofderr.WrongSize, "container is %d bytes, shorter than the %d-byte frame header", len(containerBytes), ofdheader.FrameHeaderSize)
	}
	body := containerBytes[ofdheader.FrameHeaderSize:]

	top, err := r.decodeSTLVDepth(body, nil, maxSTLVDepth)
	if err != nil {
		return nil, err
	}
	if len(top) != 1 {
		return nil, ofderr.New(ofderr.InvalidDocument, "document body must contain exactly one top-level field, got %d", len(top))
	}

	var kindName string
	var fields map[string]any
	for k, v := range top {
		kindName = k
		nested, ok := v.(map[string]any)
		if !ok {
			return nil, ofderr.New(ofderr.InvalidDocument, "top-level field %q is not a nested object", k)
		}
		fields = nested
	}

	kindEntry, err := r.Resolve(kindName, nil)
	if err != nil {
		return nil, err
	}

	rawData := append(append([]byte(nil), containerBytes...), fiscalSign...)
	fields["rawData"] = base64.StdEncoding.EncodeToString(rawData)

	if codeField, ok := paymentDocumentCodes[kindEntry.Tag]; ok {
		fields[codeField] = int64(kindEntry.Tag)
	} else {
		fields["code"] = int64(kindEntry.Tag)
	}

	normalizeDocument(fields)

	return map[string]any{"document": map[string]any{kindName: fields}}, nil
}

// Encode implements the document facade's high-level encode: kindName
// is the document kind and fields its body, together the `{<kind>:
// {...}}` shape of Decode's inner object (without the facade-only
// rawData/code/*Code fields — callers building an outbound document
// supply only protocol fields). It returns the STLV body bytes ready
// to be wrapped in a frame header.
func (r *Registry) Encode(kindName string, fields *OrderedFields) ([]byte, error) {
	if _, err := r.Resolve(kindName, nil); err != nil {
		return nil, err
	}
	doc := NewDocument()
	doc.Set(kindName, fields)
	return r.EncodeOrderedSTLV(doc, nil)
}

// normalizeDocument applies the stable field normalizations to a
// decoded document body in place.
func normalizeDocument(fields map[string]any) {
	if v, ok := fields["kktRegId"].(string); ok {
		fields["kktRegId"] = padRight(strings.TrimLeft(v, " \t\n\r"), 20)
	}
	for name := range innFields {
		if v, ok := fields[name].(string); ok {
			fields[name] = normalizeInn(v)
		}
	}
}

func normalizeInn(v string) string {
	trimmed := strings.TrimSpace(v)
	if len(trimmed) > 10 && strings.HasPrefix(trimmed, "00") {
		trimmed = trimmed[2:]
	}
	return padRight(trimmed, 12)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
