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

package register

import (
	"fmt"

	"jinr.ru/greenlab/go-regcodec/pkg/codec"
)

// BitRange describes a packed sub-value of an unsigned field.
// It is metadata only: nothing in the codec extracts or inserts bits.
type BitRange struct {
	Name  string
	Start int
	End   int
	Doc   []string
}

// Mask returns the bit mask covering Start..End inclusive
func (b BitRange) Mask() uint64 {
	width := b.End - b.Start + 1
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1)<<uint(width) - 1) << uint(b.Start)
}

func (b BitRange) String() string {
	if b.Start == b.End {
		return fmt.Sprintf("%s (bit %d)", b.Name, b.Start)
	}
	return fmt.Sprintf("%s (bits %d-%d)", b.Name, b.Start, b.End)
}

type Field struct {
	Name string
	// Kind is the element kind, KindInvalid for a register field
	Kind codec.Kind
	// Count is the length of a fixed-size array, 0 for a scalar
	Count int
	// Register is set when the field holds another register.
	// Its operations delegate to the nested register.
	Register *Schema
	// Access is the field level specifier. It is informational, see Group.
	Access Direction
	Bits   []BitRange
	Doc    []string
}

// Size returns the number of bytes the field takes on the wire
func (f Field) Size() int {
	switch {
	case f.Register != nil:
		return f.Register.Size()
	case f.Count > 0:
		return f.Count * f.Kind.Size()
	}
	return f.Kind.Size()
}

// TypeName returns the field type the way it is written in a definition
func (f Field) TypeName() string {
	switch {
	case f.Register != nil:
		return f.Register.Name
	case f.Count > 0:
		return fmt.Sprintf("[%d]%s", f.Count, f.Kind)
	}
	return f.Kind.String()
}

type Constant struct {
	Name  string
	Value codec.Value
	Doc   []string
}

// Schema is the fixed layout of one register
type Schema struct {
	Name      string
	ID        uint8
	Direction Direction
	Fields    []Field
	Constants []Constant
	Doc       []string
}

// Size returns the number of bytes of the register payload
func (s *Schema) Size() int {
	size := 0
	for _, f := range s.Fields {
		size += f.Size()
	}
	return size
}

// FieldIndex returns the position of the named field or -1
func (s *Schema) FieldIndex(name string) int {
	for i, f := range s.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// Validate checks field names, field access specifiers and bit ranges
func (s *Schema) Validate() error {
	if s.Direction&^ReadWrite != 0 || s.Direction == 0 {
		return ErrInvalidSchema{Register: s.Name, What: fmt.Sprintf("bad direction %s", s.Direction)}
	}
	names := make(map[string]bool)
	for _, f := range s.Fields {
		if names[f.Name] {
			return ErrInvalidSchema{Register: s.Name, What: fmt.Sprintf("duplicate field %s", f.Name)}
		}
		names[f.Name] = true

		if err := s.validateType(f); err != nil {
			return err
		}
		if s.Direction == Read && f.Access.CanWrite() {
			return ErrInvalidSchema{Register: s.Name,
				What: fmt.Sprintf("field %s cannot be writable because register is read-only", f.Name)}
		}
		if s.Direction == Write && f.Access.CanRead() {
			return ErrInvalidSchema{Register: s.Name,
				What: fmt.Sprintf("field %s cannot be readable because register is write-only", f.Name)}
		}
		if err := s.validateBits(f); err != nil {
			return err
		}
	}
	for _, c := range s.Constants {
		if names[c.Name] {
			return ErrInvalidSchema{Register: s.Name, What: fmt.Sprintf("duplicate name %s", c.Name)}
		}
		names[c.Name] = true
	}
	return nil
}

func (s *Schema) validateType(f Field) error {
	if f.Register == nil {
		switch {
		case !f.Kind.Valid():
			return ErrInvalidSchema{Register: s.Name, What: fmt.Sprintf("field %s has no type", f.Name)}
		case f.Count < 0:
			return ErrInvalidSchema{Register: s.Name, What: fmt.Sprintf("field %s: negative array size %d", f.Name, f.Count)}
		case f.Count > 0 && len(f.Bits) > 0:
			return ErrInvalidSchema{Register: s.Name, What: fmt.Sprintf("array field %s cannot have bit fields", f.Name)}
		}
		return nil
	}

	switch {
	case f.Count != 0:
		return ErrInvalidSchema{Register: s.Name, What: fmt.Sprintf("field %s: arrays of registers are not supported", f.Name)}
	case len(f.Bits) > 0:
		return ErrInvalidSchema{Register: s.Name, What: fmt.Sprintf("register field %s cannot have bit fields", f.Name)}
	case f.Register.contains(s):
		return ErrInvalidSchema{Register: s.Name, What: fmt.Sprintf("field %s: register %s contains %s", f.Name, f.Register.Name, s.Name)}
	case f.Register.Direction&s.Direction != s.Direction:
		// every operation of s is delegated to the nested register
		return ErrInvalidSchema{Register: s.Name,
			What: fmt.Sprintf("field %s: register %s is %s, %s is %s", f.Name, f.Register.Name, f.Register.Direction, s.Name, s.Direction)}
	}
	return nil
}

// contains reports whether target is s or is nested somewhere inside s
func (s *Schema) contains(target *Schema) bool {
	return s.containsSeen(target, make(map[*Schema]bool))
}

func (s *Schema) containsSeen(target *Schema, seen map[*Schema]bool) bool {
	if s == target {
		return true
	}
	if seen[s] {
		return false
	}
	seen[s] = true
	for _, f := range s.Fields {
		if f.Register != nil && f.Register.containsSeen(target, seen) {
			return true
		}
	}
	return false
}

func (s *Schema) validateBits(f Field) error {
	if len(f.Bits) == 0 {
		return nil
	}
	if !f.Kind.Unsigned() {
		return ErrInvalidSchema{Register: s.Name,
			What: fmt.Sprintf("bit field %s must use unsigned integer type, got %s", f.Name, f.Kind)}
	}
	for _, b := range f.Bits {
		switch {
		case b.Start < 0:
			return ErrInvalidSchema{Register: s.Name,
				What: fmt.Sprintf("bit field %s.%s: negative bit position %d", f.Name, b.Name, b.Start)}
		case b.Start > b.End:
			return ErrInvalidSchema{Register: s.Name,
				What: fmt.Sprintf("bit field %s.%s: start bit %d is greater than end bit %d", f.Name, b.Name, b.Start, b.End)}
		case b.End >= f.Kind.Bits():
			return ErrInvalidSchema{Register: s.Name,
				What: fmt.Sprintf("bit field %s.%s: bit %d exceeds %s", f.Name, b.Name, b.End, f.Kind)}
		}
	}
	return nil
}

// Device is a set of registers defined together
type Device struct {
	Name      string
	Doc       []string
	Registers []*Schema
}

// Validate checks every register and the uniqueness of register ids and names
func (d *Device) Validate() error {
	ids := make(map[uint8]string)
	names := make(map[string]bool)
	for _, s := range d.Registers {
		if other, ok := ids[s.ID]; ok {
			return ErrInvalidSchema{What: fmt.Sprintf("duplicate register number %d (%s and %s)", s.ID, other, s.Name)}
		}
		ids[s.ID] = s.Name
		if names[s.Name] {
			return ErrInvalidSchema{What: fmt.Sprintf("duplicate register name %s", s.Name)}
		}
		names[s.Name] = true
		if err := s.Validate(); err != nil {
			return err
		}
		for _, f := range s.Fields {
			if f.Register != nil && d.Register(f.Register.Name) != f.Register {
				return ErrInvalidSchema{Register: s.Name,
					What: fmt.Sprintf("field %s: register %s is not defined by device %s", f.Name, f.Register.Name, d.Name)}
			}
		}
	}
	return nil
}

// Register returns the named register or nil
func (d *Device) Register(name string) *Schema {
	for _, s := range d.Registers {
		if s.Name == name {
			return s
		}
	}
	return nil
}
