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
	"golang.org/x/text/encoding/charmap"

	"github.com/ofd-go/ofd/internal/hack"
	"github.com/ofd-go/ofd/ofderr"
)

// cp866Encode converts a text value to its CP866 byte representation.
// The input is viewed as []byte without copying; the encoder only
// reads it.
func cp866Encode(s string) ([]byte, error) {
	b, err := charmap.CodePage866.NewEncoder().Bytes(hack.StringToByteSlice(s))
	if err != nil {
		return nil, ofderr.Wrap(ofderr.InvalidDocument, err, "cp866 encode %q", s)
	}
	return b, nil
}

// cp866Decode converts CP866-encoded bytes to text. An empty input
// decodes to the empty string. The decoder's freshly allocated output
// buffer is never retained elsewhere, so it is turned into a string
// without copying.
func cp866Decode(b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	out, err := charmap.CodePage866.NewDecoder().Bytes(b)
	if err != nil {
		return "", ofderr.Wrap(ofderr.InvalidDocument, err, "cp866 decode %x", b)
	}
	return hack.ByteSliceToString(out), nil
}
