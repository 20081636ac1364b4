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

// Package schema is the boundary adapter for JSON-schema validation of
// decoded documents. Loading the real Draft-04 schema documents from
// <root>/<version>/document.schema.json is out of scope; this package
// only defines the Validator seam and a minimal built-in implementation
// covering per-document required-field sets, so a caller without the
// real schema files can still exercise the boundary in tests.
package schema

import (
	"sort"
	"strings"

	"github.com/ofd-go/ofd/ofderr"
)

// Validator checks a decoded document (the `{"document": {...}}`
// envelope produced by fiscal.Registry.Decode, or just the inner
// `{<kind>: {...}}` object) against the schema for a protocol version.
type Validator interface {
	Validate(doc map[string]any, protocolVersion string) error
}

// UnknownVersionPolicy controls BuiltinValidator's behavior when asked
// to validate against a protocolVersion it has no rule set for.
type UnknownVersionPolicy int

const (
	// FailUnknownVersion rejects documents whose protocol version has
	// no registered rule set.
	FailUnknownVersion UnknownVersionPolicy = iota
	// SkipUnknownVersion accepts documents whose protocol version has
	// no registered rule set without checking anything.
	SkipUnknownVersion
)

// BuiltinValidator enforces a fixed required-field set per document
// kind, scoped to a set of known protocol versions. It stands in for a
// real Draft-04 schema loader.
type BuiltinValidator struct {
	requiredByKind map[string][]string
	knownVersions  map[string]bool
	unknown        UnknownVersionPolicy
}

// NewBuiltinValidator returns a validator seeded with default
// required-field sets for the document kinds it knows about, scoped to
// the supplied protocol versions (e.g. "1.0", "1.05", "1.1").
func NewBuiltinValidator(versions []string, unknown UnknownVersionPolicy) *BuiltinValidator {
	known := make(map[string]bool, len(versions))
	for _, v := range versions {
		known[v] = true
	}
	return &BuiltinValidator{
		requiredByKind: defaultRequiredFields(),
		knownVersions:  known,
		unknown:        unknown,
	}
}

// defaultRequiredFields returns the built-in per-kind required-field
// sets; kinds not listed here have no required-field constraint under
// the built-in validator.
func defaultRequiredFields() map[string][]string {
	return map[string][]string{
		"receipt": {
			"user", "userInn", "requestNumber", "dateTime", "shiftNumber",
			"operationType", "taxationType", "operator", "kktRegId",
			"fiscalDriveNumber", "totalSum", "cashTotalSum", "ecashTotalSum",
			"fiscalDocumentNumber", "fiscalSign",
		},
	}
}

// SetRequiredFields overrides (or adds) the required-field set for a
// document kind.
func (v *BuiltinValidator) SetRequiredFields(kind string, fields []string) {
	v.requiredByKind[kind] = fields
}

// Validate implements Validator.
func (v *BuiltinValidator) Validate(doc map[string]any, protocolVersion string) error {
	if !v.knownVersions[protocolVersion] {
		if v.unknown == SkipUnknownVersion {
			return nil
		}
		return ofderr.New(ofderr.SchemaValidation, "unknown protocol version %q", protocolVersion)
	}

	kind, body, err := unwrapDocument(doc)
	if err != nil {
		return err
	}

	required, ok := v.requiredByKind[kind]
	if !ok {
		return nil
	}

	var missing []string
	for _, field := range required {
		if _, present := body[field]; !present {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return ofderr.New(ofderr.SchemaValidation, "document %q is missing required fields: %s", kind, strings.Join(missing, ", "))
	}
	return nil
}

// unwrapDocument accepts either the full `{"document": {<kind>: {...}}}`
// envelope or a bare `{<kind>: {...}}` object and returns the kind name
// and its field map.
func unwrapDocument(doc map[string]any) (string, map[string]any, error) {
	inner := doc
	if wrapped, ok := doc["document"].(map[string]any); ok {
		inner = wrapped
	}
	if len(inner) != 1 {
		return "", nil, ofderr.New(ofderr.InvalidDocument, "expected exactly one document kind, got %d", len(inner))
	}
	for kind, v := range inner {
		body, ok := v.(map[string]any)
		if !ok {
			return "", nil, ofderr.New(ofderr.InvalidDocument, "document kind %q is not an object", kind)
		}
		return kind, body, nil
	}
	panic("unreachable")
}
