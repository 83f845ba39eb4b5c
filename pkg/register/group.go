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
	"strconv"
	"strings"

	"jinr.ru/greenlab/go-regcodec/pkg/codec"
)

// Group is a register instance: a schema and the values of its fields.
//
// All four operations walk the whole field list in declaration order. The
// register direction decides which operations are allowed; field access
// specifiers do not filter fields. Register fields delegate to a nested
// Group running the same operation. A Group is not safe for concurrent use.
type Group struct {
	schema *Schema
	// values holds one slice per field: a single element for scalars,
	// Count elements for arrays and none for register fields
	values [][]codec.Value
	nested []*Group
}

// New returns a group with every field set to zero
func New(schema *Schema) *Group {
	g := &Group{
		schema: schema,
		values: make([][]codec.Value, len(schema.Fields)),
		nested: make([]*Group, len(schema.Fields)),
	}
	for i, f := range schema.Fields {
		if f.Register != nil {
			g.nested[i] = New(f.Register)
			continue
		}
		count := f.Count
		if count == 0 {
			count = 1
		}
		g.values[i] = make([]codec.Value, count)
		for j := range g.values[i] {
			g.values[i][j] = codec.Zero(f.Kind)
		}
	}
	return g
}

func (g *Group) Schema() *Schema {
	return g.schema
}

func (g *Group) Size() int {
	return g.schema.Size()
}

// SerializeRead writes the fields to buf for a read of the register
func (g *Group) SerializeRead(buf []byte) (int, error) {
	return g.serialize(buf, OpSerializeRead)
}

// SerializeWrite writes the fields to buf for a write to the register
func (g *Group) SerializeWrite(buf []byte) (int, error) {
	return g.serialize(buf, OpSerializeWrite)
}

// DeserializeRead updates the fields from data read from the device
func (g *Group) DeserializeRead(buf []byte) (int, error) {
	return g.deserialize(buf, OpDeserializeRead)
}

// DeserializeWrite updates the fields from a write command
func (g *Group) DeserializeWrite(buf []byte) (int, error) {
	return g.deserialize(buf, OpDeserializeWrite)
}

// check rejects the operation before the buffer is touched
func (g *Group) check(buf []byte, op Op) error {
	if !g.schema.Direction.Allows(op) {
		return &ErrDirectionMismatch{Register: g.schema.Name, Op: op}
	}
	if size := g.Size(); len(buf) < size {
		return &codec.ErrBufferCapacity{Need: size, Have: len(buf)}
	}
	return nil
}

func (g *Group) serialize(buf []byte, op Op) (int, error) {
	if err := g.check(buf, op); err != nil {
		return 0, err
	}
	offset := 0
	for i := range g.schema.Fields {
		if nested := g.nested[i]; nested != nil {
			n, err := nested.serialize(buf[offset:], op)
			if err != nil {
				return offset, err
			}
			offset += n
			continue
		}
		for _, v := range g.values[i] {
			n, err := codec.Encode(buf[offset:], v)
			if err != nil {
				return offset, err
			}
			offset += n
		}
	}
	return offset, nil
}

// deserialize decodes into a fresh group and commits only when every field was read
func (g *Group) deserialize(buf []byte, op Op) (int, error) {
	if err := g.check(buf, op); err != nil {
		return 0, err
	}
	fresh := New(g.schema)
	n, err := fresh.decode(buf, op)
	if err != nil {
		return n, err
	}
	g.values, g.nested = fresh.values, fresh.nested
	return n, nil
}

func (g *Group) decode(buf []byte, op Op) (int, error) {
	offset := 0
	for i, f := range g.schema.Fields {
		if nested := g.nested[i]; nested != nil {
			if err := nested.check(buf[offset:], op); err != nil {
				return offset, err
			}
			n, err := nested.decode(buf[offset:], op)
			if err != nil {
				return offset, err
			}
			offset += n
			continue
		}
		for j := range g.values[i] {
			v, n, err := codec.Decode(buf[offset:], f.Kind)
			if err != nil {
				return offset, err
			}
			g.values[i][j] = v
			offset += n
		}
	}
	return offset, nil
}

// slot resolves a field path to the value it names. A path is a field name,
// an array element such as data[2] or a nested field such as status.flags.
func (g *Group) slot(path string) (*codec.Value, error) {
	name, rest := path, ""
	if i := strings.IndexAny(path, ".["); i >= 0 {
		name, rest = path[:i], path[i:]
	}
	i := g.schema.FieldIndex(name)
	if i < 0 {
		return nil, ErrUnknownField{Register: g.schema.Name, Field: path}
	}
	f := g.schema.Fields[i]
	switch {
	case f.Register != nil:
		if !strings.HasPrefix(rest, ".") {
			break
		}
		v, err := g.nested[i].slot(rest[1:])
		if err != nil {
			return nil, ErrUnknownField{Register: g.schema.Name, Field: path}
		}
		return v, nil
	case f.Count > 0:
		if !strings.HasPrefix(rest, "[") || !strings.HasSuffix(rest, "]") {
			break
		}
		j, err := strconv.Atoi(rest[1 : len(rest)-1])
		if err != nil || j < 0 || j >= f.Count {
			break
		}
		return &g.values[i][j], nil
	case rest == "":
		return &g.values[i][0], nil
	}
	return nil, ErrUnknownField{Register: g.schema.Name, Field: path}
}

// Value returns the value of the named field
func (g *Group) Value(path string) (codec.Value, error) {
	v, err := g.slot(path)
	if err != nil {
		return codec.Value{}, err
	}
	return *v, nil
}

// Set assigns v to the named field. The kind of v must match the field kind.
func (g *Group) Set(path string, v codec.Value) error {
	slot, err := g.slot(path)
	if err != nil {
		return err
	}
	if kind := slot.Kind(); v.Kind() != kind {
		return ErrKindMismatch{Field: path, Want: kind, Got: v.Kind()}
	}
	*slot = v
	return nil
}

func (g *Group) SetInt(path string, v int64) error {
	return g.setWith(path, func(k codec.Kind) (codec.Value, error) { return codec.IntValue(k, v) })
}

func (g *Group) SetUint(path string, v uint64) error {
	return g.setWith(path, func(k codec.Kind) (codec.Value, error) { return codec.UintValue(k, v) })
}

func (g *Group) SetFloat(path string, v float64) error {
	return g.setWith(path, func(k codec.Kind) (codec.Value, error) { return codec.FloatValue(k, v) })
}

// SetString parses s according to the field kind
func (g *Group) SetString(path, s string) error {
	return g.setWith(path, func(k codec.Kind) (codec.Value, error) { return codec.ParseValue(k, s) })
}

func (g *Group) setWith(path string, conv func(codec.Kind) (codec.Value, error)) error {
	slot, err := g.slot(path)
	if err != nil {
		return err
	}
	v, err := conv(slot.Kind())
	if err != nil {
		return err
	}
	*slot = v
	return nil
}

// FieldValue is a field path paired with its current value
type FieldValue struct {
	Name  string
	Value codec.Value
}

// Values returns the field values in wire order. Arrays are listed per element
// and nested registers per field, named the way Value and Set accept them.
func (g *Group) Values() []FieldValue {
	var out []FieldValue
	for i, f := range g.schema.Fields {
		switch {
		case f.Register != nil:
			for _, v := range g.nested[i].Values() {
				out = append(out, FieldValue{Name: f.Name + "." + v.Name, Value: v.Value})
			}
		case f.Count > 0:
			for j, v := range g.values[i] {
				out = append(out, FieldValue{Name: f.Name + "[" + strconv.Itoa(j) + "]", Value: v})
			}
		default:
			out = append(out, FieldValue{Name: f.Name, Value: g.values[i][0]})
		}
	}
	return out
}

// SerializeAs calls SerializeWrite when dir is Write and SerializeRead otherwise
func (g *Group) SerializeAs(dir Direction, buf []byte) (int, error) {
	if dir == Write {
		return g.SerializeWrite(buf)
	}
	return g.SerializeRead(buf)
}

// DeserializeAs calls DeserializeWrite when dir is Write and DeserializeRead otherwise
func (g *Group) DeserializeAs(dir Direction, buf []byte) (int, error) {
	if dir == Write {
		return g.DeserializeWrite(buf)
	}
	return g.DeserializeRead(buf)
}
