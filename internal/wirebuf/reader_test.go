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

package wirebuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderNext(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4, 5})
	b, err := r.Next(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 2, r.ReadLen())

	b, err = r.Next(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 4, 5}, b)
	assert.Equal(t, 0, r.Len())
}

func TestReaderNextPastEnd(t *testing.T) {
	r := NewReader([]byte{1, 2})
	_, err := r.Next(3)
	assert.Error(t, err)
}

func TestReaderPeekDoesNotAdvance(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	b, err := r.Peek(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)
	assert.Equal(t, 3, r.Len())
}

func TestReaderSkip(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4})
	require.NoError(t, r.Skip(2))
	assert.Equal(t, 2, r.Len())
	assert.Error(t, r.Skip(5))
}
