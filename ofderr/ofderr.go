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

// Package ofderr defines the error taxonomy shared by every codec in
// this module. It mirrors the shape of a Thrift ApplicationException:
// a single error type carrying a stable kind plus a human message,
// rather than a new Go error type per failure site.
package ofderr

import "fmt"

// Kind enumerates the distinct ways a decode/encode can fail.
type Kind int32

const (
	UnknownKind Kind = iota
	BadMagic
	BadSessionVersion
	BadAppVersion
	BadMessageType
	BadFrameVersion
	WrongSize
	Overflow
	UnknownTag
	AmbiguousName
	InvalidDocument
	SchemaValidation
	CRCMismatch
)

var kindNames = map[Kind]string{
	UnknownKind:       "unknown",
	BadMagic:          "bad-magic",
	BadSessionVersion: "bad-session-version",
	BadAppVersion:     "bad-app-version",
	BadMessageType:    "bad-message-type",
	BadFrameVersion:   "bad-frame-version",
	WrongSize:         "wrong-size",
	Overflow:          "overflow",
	UnknownTag:        "unknown-tag",
	AmbiguousName:     "ambiguous-name",
	InvalidDocument:   "invalid-document",
	SchemaValidation:  "schema-validation",
	CRCMismatch:       "crc-mismatch",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int32(k))
}

// Error is the single error type returned by every codec in this
// module. It carries a stable Kind for programmatic dispatch and an
// optional wrapped cause.
type Error struct {
	Kind Kind
	Msg  string
	Tag  uint16 // set via WithTag (unknown-tag and per-tag overflow errors), for diagnostics
	err  error
}

// New creates an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error of the given kind that wraps an underlying
// cause, preserving it for errors.Unwrap/errors.Is.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), err: cause}
}

// WithTag attaches a tag number for diagnostics (used by unknown-tag
// and per-tag overflow errors) and returns the receiver for chaining.
func (e *Error) WithTag(tag uint16) *Error {
	e.Tag = tag
	return e
}

func (e *Error) Error() string {
	if e.Tag != 0 {
		return fmt.Sprintf("ofd: %s: %s (tag=%d)", e.Kind, e.Msg, e.Tag)
	}
	return fmt.Sprintf("ofd: %s: %s", e.Kind, e.Msg)
}

// Unwrap exposes the wrapped cause, if any, to the errors package.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error with the same Kind, so
// callers can write `errors.Is(err, ofderr.New(ofderr.Overflow, ""))`-
// style kind checks, or more idiomatically IsKind(err, ofderr.Overflow)
// below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// IsKind reports whether err is an *ofderr.Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	for err != nil {
		if asErr, ok := err.(*Error); ok {
			e = asErr
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return e != nil && e.Kind == kind
}
