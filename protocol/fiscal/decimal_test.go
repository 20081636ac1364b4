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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimalAndString(t *testing.T) {
	cases := []string{"1234567.89", "1453.67", "42", "0.5", "100"}
	for _, s := range cases {
		d, err := ParseDecimal(s)
		require.NoError(t, err)
		assert.Equal(t, s, d.String())
	}
}

func TestParseDecimalRejectsNegative(t *testing.T) {
	_, err := ParseDecimal("-1.5")
	assert.Error(t, err)
}

func TestParseDecimalRejectsMultipleDots(t *testing.T) {
	_, err := ParseDecimal("1.2.3")
	assert.Error(t, err)
}

func TestDecimalMarshalJSON(t *testing.T) {
	d, err := ParseDecimal("1234567.89")
	require.NoError(t, err)
	b, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "1234567.89", string(b))
}
