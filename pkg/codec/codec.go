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
	"encoding/binary"
	"math"
)

// Integer is the set of scalar types the generic codec functions accept
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// SizeOf returns the wire width of T in bytes
func SizeOf[T Integer]() int {
	var v T
	return binary.Size(v)
}

// Put writes v into b in big-endian byte order and returns the number of bytes written.
// Signed values are written in two's complement.
func Put[T Integer](b []byte, v T) (int, error) {
	size := binary.Size(v)
	if err := need(b, size); err != nil {
		return 0, err
	}
	switch size {
	case 1:
		b[0] = byte(v)
	case 2:
		binary.BigEndian.PutUint16(b, uint16(v))
	case 4:
		binary.BigEndian.PutUint32(b, uint32(v))
	case 8:
		binary.BigEndian.PutUint64(b, uint64(v))
	default:
		return 0, ErrUnsupportedSize{Size: size}
	}
	return size, nil
}

// Get reads a big-endian value of type T from b into dst and returns the number of bytes read
func Get[T Integer](b []byte, dst *T) (int, error) {
	size := binary.Size(*dst)
	if err := need(b, size); err != nil {
		return 0, err
	}
	switch size {
	case 1:
		*dst = T(b[0])
	case 2:
		*dst = T(binary.BigEndian.Uint16(b))
	case 4:
		*dst = T(binary.BigEndian.Uint32(b))
	case 8:
		*dst = T(binary.BigEndian.Uint64(b))
	default:
		return 0, ErrUnsupportedSize{Size: size}
	}
	return size, nil
}

// PutSlice writes the elements of s back to back and returns the number of bytes written.
// Nothing is written unless the whole slice fits.
func PutSlice[T Integer](b []byte, s []T) (int, error) {
	if err := need(b, SizeOf[T]()*len(s)); err != nil {
		return 0, err
	}
	offset := 0
	for _, v := range s {
		n, err := Put(b[offset:], v)
		if err != nil {
			return offset, err
		}
		offset += n
	}
	return offset, nil
}

// GetSlice fills dst with consecutive big-endian values read from b.
// dst is left untouched when b is too short for all of its elements.
func GetSlice[T Integer](b []byte, dst []T) (int, error) {
	if err := need(b, SizeOf[T]()*len(dst)); err != nil {
		return 0, err
	}
	offset := 0
	for i := range dst {
		n, err := Get(b[offset:], &dst[i])
		if err != nil {
			return offset, err
		}
		offset += n
	}
	return offset, nil
}

func PutFloat32(b []byte, v float32) (int, error) {
	return Put(b, math.Float32bits(v))
}

func GetFloat32(b []byte, dst *float32) (int, error) {
	var bits uint32
	n, err := Get(b, &bits)
	if err != nil {
		return 0, err
	}
	*dst = math.Float32frombits(bits)
	return n, nil
}

func PutFloat64(b []byte, v float64) (int, error) {
	return Put(b, math.Float64bits(v))
}

func GetFloat64(b []byte, dst *float64) (int, error) {
	var bits uint64
	n, err := Get(b, &bits)
	if err != nil {
		return 0, err
	}
	*dst = math.Float64frombits(bits)
	return n, nil
}

// Encode writes the value using the width of its kind
func Encode(b []byte, v Value) (int, error) {
	switch v.kind.Size() {
	case 1:
		return Put(b, uint8(v.bits))
	case 2:
		return Put(b, uint16(v.bits))
	case 4:
		return Put(b, uint32(v.bits))
	case 8:
		return Put(b, v.bits)
	default:
		return 0, ErrUnknownKind{Name: v.kind.String()}
	}
}

// Decode reads a value of kind k from b
func Decode(b []byte, k Kind) (Value, int, error) {
	var (
		bits uint64
		n    int
		err  error
	)
	switch k.Size() {
	case 1:
		var v uint8
		n, err = Get(b, &v)
		bits = uint64(v)
	case 2:
		var v uint16
		n, err = Get(b, &v)
		bits = uint64(v)
	case 4:
		var v uint32
		n, err = Get(b, &v)
		bits = uint64(v)
	case 8:
		n, err = Get(b, &bits)
	default:
		return Value{}, 0, ErrUnknownKind{Name: k.String()}
	}
	if err != nil {
		return Value{}, 0, err
	}
	return Value{kind: k, bits: bits}, n, nil
}
