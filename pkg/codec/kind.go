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

// Kind is the scalar type of a register field
type Kind uint8

const (
	KindInvalid Kind = iota
	Uint8
	Int8
	Uint16
	Int16
	Uint32
	Int32
	Uint64
	Int64
	Float32
	Float64
)

var kindNames = map[Kind]string{
	Uint8:   "uint8",
	Int8:    "int8",
	Uint16:  "uint16",
	Int16:   "int16",
	Uint32:  "uint32",
	Int32:   "int32",
	Uint64:  "uint64",
	Int64:   "int64",
	Float32: "float32",
	Float64: "float64",
}

// ParseKind returns the kind with the given name, e.g. "int16"
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return KindInvalid, ErrUnknownKind{Name: name}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// Size returns the number of bytes the kind occupies on the wire
func (k Kind) Size() int {
	switch k {
	case Uint8, Int8:
		return 1
	case Uint16, Int16:
		return 2
	case Uint32, Int32, Float32:
		return 4
	case Uint64, Int64, Float64:
		return 8
	default:
		return 0
	}
}

// Bits returns the width of the kind in bits
func (k Kind) Bits() int {
	return k.Size() * 8
}

func (k Kind) Valid() bool {
	return k.Size() != 0
}

func (k Kind) Signed() bool {
	switch k {
	case Int8, Int16, Int32, Int64:
		return true
	default:
		return false
	}
}

func (k Kind) Unsigned() bool {
	switch k {
	case Uint8, Uint16, Uint32, Uint64:
		return true
	default:
		return false
	}
}

func (k Kind) Float() bool {
	return k == Float32 || k == Float64
}

// mask returns the bit mask covering the kind width
func (k Kind) mask() uint64 {
	if k.Bits() >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(k.Bits()) - 1
}
