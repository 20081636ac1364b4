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

package ofderr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormatsMessage(t *testing.T) {
	err := New(Overflow, "value %d exceeds %d", 10, 5)
	assert.Equal(t, Overflow, err.Kind)
	assert.Contains(t, err.Error(), "value 10 exceeds 5")
	assert.Contains(t, err.Error(), "overflow")
}

func TestWithTag(t *testing.T) {
	err := New(UnknownTag, "unrecognized tag").WithTag(1234)
	assert.Equal(t, uint16(1234), err.Tag)
	assert.Contains(t, err.Error(), "tag=1234")
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(InvalidDocument, cause, "wrapping")
	require.ErrorIs(t, err, cause)
	assert.Equal(t, cause, err.Unwrap())
}

func TestIsKind(t *testing.T) {
	err := New(AmbiguousName, "ambiguous")
	assert.True(t, IsKind(err, AmbiguousName))
	assert.False(t, IsKind(err, Overflow))

	wrapped := Wrap(InvalidDocument, err, "outer")
	assert.False(t, IsKind(wrapped, AmbiguousName))
	assert.True(t, IsKind(wrapped, InvalidDocument))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "overflow", Overflow.String())
	assert.Equal(t, "crc-mismatch", CRCMismatch.String())
}
