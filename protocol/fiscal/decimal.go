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
	"strconv"
	"strings"

	"github.com/ofd-go/ofd/ofderr"
)

// Decimal is a fixed-point value decoded from, or destined for, an FVLN
// field: mantissa * 10^-scale. It is kept as an exact integer mantissa
// instead of a float64 so round-tripping through the wire format never
// loses precision.
type Decimal struct {
	Mantissa uint64
	Scale    int8
}

// ParseDecimal parses a base-10 string with at most one decimal point,
// e.g. "1234567.89" or "42", into a Decimal.
func ParseDecimal(s string) (Decimal, error) {
	if strings.Count(s, ".") > 1 {
		return Decimal{}, ofderr.New(ofderr.InvalidDocument, "decimal %q has more than one decimal point", s)
	}
	neg := strings.HasPrefix(s, "-")
	if neg {
		return Decimal{}, ofderr.New(ofderr.InvalidDocument, "decimal %q: FVLN values must be non-negative", s)
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	digits := intPart + fracPart
	if digits == "" {
		return Decimal{}, ofderr.New(ofderr.InvalidDocument, "decimal %q has no digits", s)
	}
	mantissa, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return Decimal{}, ofderr.Wrap(ofderr.InvalidDocument, err, "decimal %q is not a valid number", s)
	}
	scale := 0
	if hasFrac {
		scale = len(fracPart)
	}
	if scale > 127 {
		return Decimal{}, ofderr.New(ofderr.InvalidDocument, "decimal %q has too many fractional digits", s)
	}
	return Decimal{Mantissa: mantissa, Scale: int8(scale)}, nil
}

// String renders the decimal back to its base-10 textual form.
func (d Decimal) String() string {
	if d.Scale <= 0 {
		return strconv.FormatUint(d.Mantissa*pow10(uint(-d.Scale)), 10)
	}
	s := strconv.FormatUint(d.Mantissa, 10)
	scale := int(d.Scale)
	if len(s) <= scale {
		s = strings.Repeat("0", scale-len(s)+1) + s
	}
	intPart, fracPart := s[:len(s)-scale], s[len(s)-scale:]
	return intPart + "." + fracPart
}

// MarshalJSON renders the decimal as a bare JSON number, preserving
// its exact scale instead of round-tripping through float64.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

func pow10(n uint) uint64 {
	v := uint64(1)
	for i := uint(0); i < n; i++ {
		v *= 10
	}
	return v
}
