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

package schema

import (
	"testing"

	"github.com/ofd-go/ofd/ofderr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeReceipt() map[string]any {
	return map[string]any{
		"document": map[string]any{
			"receipt": map[string]any{
				"user": "ООО Ромашка", "userInn": "7704358518  ", "requestNumber": int64(1),
				"dateTime": int64(1000), "shiftNumber": int64(1), "operationType": int64(1),
				"taxationType": int64(1), "operator": "Иванова", "kktRegId": "12345678901234567890",
				"fiscalDriveNumber": "9999078950123456", "totalSum": "100.00", "cashTotalSum": "100.00",
				"ecashTotalSum": "0.00", "fiscalDocumentNumber": int64(1), "fiscalSign": int64(123456),
			},
		},
	}
}

func TestBuiltinValidatorAcceptsCompleteReceipt(t *testing.T) {
	v := NewBuiltinValidator([]string{"1.05"}, FailUnknownVersion)
	err := v.Validate(completeReceipt(), "1.05")
	assert.NoError(t, err)
}

func TestBuiltinValidatorRejectsMissingField(t *testing.T) {
	v := NewBuiltinValidator([]string{"1.05"}, FailUnknownVersion)
	doc := completeReceipt()
	delete(doc["document"].(map[string]any)["receipt"].(map[string]any), "totalSum")

	err := v.Validate(doc, "1.05")
	require.Error(t, err)
	assert.True(t, ofderr.IsKind(err, ofderr.SchemaValidation))
}

func TestBuiltinValidatorUnknownVersionPolicy(t *testing.T) {
	failing := NewBuiltinValidator([]string{"1.05"}, FailUnknownVersion)
	assert.Error(t, failing.Validate(completeReceipt(), "9.9"))

	skipping := NewBuiltinValidator([]string{"1.05"}, SkipUnknownVersion)
	assert.NoError(t, skipping.Validate(completeReceipt(), "9.9"))
}

func TestBuiltinValidatorSetRequiredFields(t *testing.T) {
	v := NewBuiltinValidator([]string{"1.0"}, FailUnknownVersion)
	v.SetRequiredFields("openShift", []string{"kktRegId"})

	doc := map[string]any{"document": map[string]any{"openShift": map[string]any{}}}
	assert.Error(t, v.Validate(doc, "1.0"))

	doc["document"].(map[string]any)["openShift"].(map[string]any)["kktRegId"] = "x"
	assert.NoError(t, v.Validate(doc, "1.0"))
}
