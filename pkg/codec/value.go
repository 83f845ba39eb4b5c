/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package codec

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value holds one scalar of a given kind. The bit pattern is kept truncated
// to the kind width, signed values in two's complement.
type Value struct {
	kind Kind
	bits uint64
}

// Zero returns the zero value of kind k
func Zero(k Kind) Value {
	return Value{kind: k}
}

// IntValue returns a value of kind k holding v. Unsigned kinds accept non-negative v.
func IntValue(k Kind, v int64) (Value, error) {
	switch {
	case k.Signed():
		bits := k.Bits()
		if bits < 64 {
			min, max := -(int64(1) << uint(bits-1)), int64(1)<<uint(bits-1)-1
			if v < min || v > max {
				return Value{}, ErrValueRange{Kind: k, Value: strconv.FormatInt(v, 10)}
			}
		}
		return Value{kind: k, bits: uint64(v) & k.mask()}, nil
	case k.Unsigned():
		if v < 0 {
			return Value{}, ErrValueRange{Kind: k, Value: strconv.FormatInt(v, 10)}
		}
		return UintValue(k, uint64(v))
	case k.Float():
		return FloatValue(k, float64(v))
	}
	return Value{}, ErrUnknownKind{Name: k.String()}
}

// UintValue returns a value of kind k holding v
func UintValue(k Kind, v uint64) (Value, error) {
	switch {
	case k.Unsigned():
		if v&^k.mask() != 0 {
			return Value{}, ErrValueRange{Kind: k, Value: strconv.FormatUint(v, 10)}
		}
		return Value{kind: k, bits: v}, nil
	case k.Signed():
		if v > math.MaxInt64 {
			return Value{}, ErrValueRange{Kind: k, Value: strconv.FormatUint(v, 10)}
		}
		return IntValue(k, int64(v))
	case k.Float():
		return FloatValue(k, float64(v))
	}
	return Value{}, ErrUnknownKind{Name: k.String()}
}

// FloatValue returns a float32 or float64 value
func FloatValue(k Kind, v float64) (Value, error) {
	switch k {
	case Float32:
		if !math.IsInf(v, 0) && !math.IsNaN(v) && math.Abs(v) > math.MaxFloat32 {
			return Value{}, ErrValueRange{Kind: k, Value: strconv.FormatFloat(v, 'g', -1, 64)}
		}
		return Value{kind: k, bits: uint64(math.Float32bits(float32(v)))}, nil
	case Float64:
		return Value{kind: k, bits: math.Float64bits(v)}, nil
	}
	return Value{}, ErrValueRange{Kind: k, Value: strconv.FormatFloat(v, 'g', -1, 64)}
}

// ParseValue parses s as a value of kind k. Integers may be decimal, 0x, 0o or 0b prefixed.
func ParseValue(k Kind, s string) (Value, error) {
	switch {
	case k.Signed():
		v, err := ParseInt(s, k.Bits())
		if err != nil {
			return Value{}, parseError(k, s, err)
		}
		return IntValue(k, v)
	case k.Unsigned():
		v, err := ParseUint(s, k.Bits())
		if err != nil {
			return Value{}, parseError(k, s, err)
		}
		return UintValue(k, v)
	case k.Float():
		v, err := strconv.ParseFloat(s, k.Bits())
		if err != nil {
			return Value{}, parseError(k, s, err)
		}
		return FloatValue(k, v)
	}
	return Value{}, ErrUnknownKind{Name: k.String()}
}

func (v Value) Kind() Kind {
	return v.kind
}

// Int returns the value sign extended for signed kinds
func (v Value) Int() int64 {
	switch {
	case v.kind.Signed():
		shift := uint(64 - v.kind.Bits())
		return int64(v.bits<<shift) >> shift
	case v.kind.Float():
		return int64(v.Float())
	}
	return int64(v.bits)
}

// Uint returns the raw bit pattern for integer kinds
func (v Value) Uint() uint64 {
	if v.kind.Float() {
		return uint64(v.Float())
	}
	return v.bits
}

func (v Value) Float() float64 {
	switch v.kind {
	case Float32:
		return float64(math.Float32frombits(uint32(v.bits)))
	case Float64:
		return math.Float64frombits(v.bits)
	}
	if v.kind.Signed() {
		return float64(v.Int())
	}
	return float64(v.bits)
}

func (v Value) String() string {
	switch {
	case v.kind.Signed():
		return strconv.FormatInt(v.Int(), 10)
	case v.kind.Unsigned():
		return fmt.Sprintf("%d (0x%0*X)", v.bits, v.kind.Size()*2, v.bits)
	case v.kind.Float():
		return strconv.FormatFloat(v.Float(), 'g', -1, v.kind.Bits())
	}
	return "<invalid>"
}

// ParseUint parses a number literal. Without a 0x, 0o or 0b prefix the number is decimal,
// so leading zeros do not switch to octal: 010 is ten.
func ParseUint(s string, bitSize int) (uint64, error) {
	return strconv.ParseUint(s, numberBase(s), bitSize)
}

// ParseInt is the signed counterpart of ParseUint
func ParseInt(s string, bitSize int) (int64, error) {
	return strconv.ParseInt(s, numberBase(s), bitSize)
}

func numberBase(s string) int {
	s = strings.TrimLeft(s, "+-")
	if len(s) > 1 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			return 0
		}
	}
	return 10
}

func parseError(k Kind, s string, err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		return ErrValueRange{Kind: k, Value: s}
	}
	return ErrValueSyntax{Kind: k, Value: s, Err: err}
}
