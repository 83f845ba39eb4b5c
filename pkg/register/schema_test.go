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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jinr.ru/greenlab/go-regcodec/pkg/codec"
)

func TestBitRangeMask(t *testing.T) {
	tests := []struct {
		bits BitRange
		mask uint64
		str  string
	}{
		{BitRange{Name: "bit0", Start: 0, End: 0}, 0x1, "bit0 (bit 0)"},
		{BitRange{Name: "bit15", Start: 1, End: 5}, 0x3E, "bit15 (bits 1-5)"},
		{BitRange{Name: "bit23", Start: 2, End: 3}, 0xC, "bit23 (bits 2-3)"},
		{BitRange{Name: "high", Start: 22, End: 31}, 0xFFC00000, "high (bits 22-31)"},
		{BitRange{Name: "all", Start: 0, End: 63}, 0xFFFFFFFFFFFFFFFF, "all (bits 0-63)"},
	}
	for _, tt := range tests {
		t.Run(tt.bits.Name, func(t *testing.T) {
			assert.Equal(t, tt.mask, tt.bits.Mask())
			assert.Equal(t, tt.str, tt.bits.String())
		})
	}
}

func TestDirection(t *testing.T) {
	for spec, want := range map[string]Direction{"": ReadWrite, "r": Read, "w": Write} {
		d, err := ParseDirection(spec)
		require.NoError(t, err)
		assert.Equal(t, want, d)
	}
	_, err := ParseDirection("x")
	assert.Error(t, err)

	assert.True(t, ReadWrite.Allows(OpSerializeRead))
	assert.True(t, ReadWrite.Allows(OpDeserializeWrite))
	assert.False(t, Read.Allows(OpSerializeWrite))
	assert.False(t, Write.Allows(OpDeserializeRead))
	assert.Equal(t, "rw", ReadWrite.String())
	assert.Equal(t, "serialize write", OpSerializeWrite.String())
}

func TestSchemaValidate(t *testing.T) {
	tests := []struct {
		name   string
		schema Schema
		errMsg string
	}{
		{
			name:   "valid read-only",
			schema: *readOnlySchema(),
		},
		{
			name:   "valid read-write",
			schema: *readWriteSchema(),
		},
		{
			name: "duplicate field",
			schema: Schema{Name: "D", Direction: ReadWrite, Fields: []Field{
				{Name: "a", Kind: codec.Uint8, Access: ReadWrite},
				{Name: "a", Kind: codec.Uint8, Access: ReadWrite},
			}},
			errMsg: "duplicate field a",
		},
		{
			name: "writable field in read-only register",
			schema: Schema{Name: "RO", Direction: Read, Fields: []Field{
				{Name: "a", Kind: codec.Uint8, Access: Write},
			}},
			errMsg: "field a cannot be writable because register is read-only",
		},
		{
			name: "readable field in write-only register",
			schema: Schema{Name: "WO", Direction: Write, Fields: []Field{
				{Name: "a", Kind: codec.Uint8, Access: Read},
			}},
			errMsg: "field a cannot be readable because register is write-only",
		},
		{
			name: "signed bit field",
			schema: Schema{Name: "B", Direction: ReadWrite, Fields: []Field{
				{Name: "flags", Kind: codec.Int8, Access: ReadWrite, Bits: []BitRange{{Name: "b", Start: 0, End: 0}}},
			}},
			errMsg: "must use unsigned integer type",
		},
		{
			name: "bit out of range",
			schema: Schema{Name: "B", Direction: ReadWrite, Fields: []Field{
				{Name: "flags", Kind: codec.Uint8, Access: ReadWrite, Bits: []BitRange{{Name: "b", Start: 4, End: 8}}},
			}},
			errMsg: "bit 8 exceeds uint8",
		},
		{
			name: "reversed bit range",
			schema: Schema{Name: "B", Direction: ReadWrite, Fields: []Field{
				{Name: "flags", Kind: codec.Uint16, Access: ReadWrite, Bits: []BitRange{{Name: "b", Start: 5, End: 3}}},
			}},
			errMsg: "start bit 5 is greater than end bit 3",
		},
		{
			name: "constant clashes with field",
			schema: Schema{Name: "C", Direction: ReadWrite,
				Fields:    []Field{{Name: "a", Kind: codec.Uint8, Access: ReadWrite}},
				Constants: []Constant{{Name: "a", Value: codec.Zero(codec.Uint8)}},
			},
			errMsg: "duplicate name a",
		},
		{
			name:   "valid register and array fields",
			schema: *blockSchema(readOnlySchema()),
		},
		{
			name: "nested register lacks direction",
			schema: Schema{Name: "N", Direction: ReadWrite, Fields: []Field{
				{Name: "status", Register: readOnlySchema(), Access: ReadWrite},
			}},
			errMsg: "field status: register R is r, N is rw",
		},
		{
			name: "array with bit fields",
			schema: Schema{Name: "A", Direction: ReadWrite, Fields: []Field{
				{Name: "data", Kind: codec.Uint8, Count: 2, Access: ReadWrite, Bits: []BitRange{{Name: "b", Start: 0, End: 0}}},
			}},
			errMsg: "array field data cannot have bit fields",
		},
		{
			name: "negative array size",
			schema: Schema{Name: "A", Direction: ReadWrite, Fields: []Field{
				{Name: "data", Kind: codec.Uint8, Count: -1, Access: ReadWrite},
			}},
			errMsg: "negative array size -1",
		},
		{
			name: "array of registers",
			schema: Schema{Name: "A", Direction: Read, Fields: []Field{
				{Name: "all", Register: readOnlySchema(), Count: 2, Access: Read},
			}},
			errMsg: "arrays of registers are not supported",
		},
		{
			name: "register field with bits",
			schema: Schema{Name: "A", Direction: Read, Fields: []Field{
				{Name: "st", Register: readOnlySchema(), Access: Read, Bits: []BitRange{{Name: "b", Start: 0, End: 0}}},
			}},
			errMsg: "register field st cannot have bit fields",
		},
		{
			name:   "missing direction",
			schema: Schema{Name: "X"},
			errMsg: "bad direction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestDeviceValidate(t *testing.T) {
	dev := &Device{Name: "test", Registers: []*Schema{readWriteSchema(), readOnlySchema(), writeOnlySchema()}}
	require.NoError(t, dev.Validate())
	assert.Equal(t, "W", dev.Register("W").Name)
	assert.Nil(t, dev.Register("missing"))

	dup := writeOnlySchema()
	dup.Name = "W2"
	dup.ID = 1
	dev.Registers = append(dev.Registers, dup)
	err := dev.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate register number 1")

	dup.ID = 9
	dup.Name = "R"
	err = dev.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate register name R")
}

func TestRegisterFieldCycles(t *testing.T) {
	a := &Schema{Name: "A", Direction: Read}
	a.Fields = []Field{{Name: "self", Register: a, Access: Read}}
	err := a.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field self: register A contains A")

	b := &Schema{Name: "B", Direction: Read}
	c := &Schema{Name: "C", Direction: Read, Fields: []Field{{Name: "b", Register: b, Access: Read}}}
	b.Fields = []Field{{Name: "c", Register: c, Access: Read}}
	err = b.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "register C contains B")
}

func TestDeviceRegisterFields(t *testing.T) {
	status := readOnlySchema()
	dev := &Device{Name: "test", Registers: []*Schema{status, blockSchema(status)}}
	require.NoError(t, dev.Validate())

	// the nested register must be the one the device defines
	dev.Registers[1] = blockSchema(readOnlySchema())
	err := dev.Validate()
	require.Error(t, err)
	assert.EqualError(t, err, "invalid register Block: field status: register R is not defined by device test")
}
