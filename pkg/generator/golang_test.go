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

package generator

import (
	"flag"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jinr.ru/greenlab/go-regcodec/pkg/codec"
	regparser "jinr.ru/greenlab/go-regcodec/pkg/parser"
	"jinr.ru/greenlab/go-regcodec/pkg/register"
)

var update = flag.Bool("update", false, "rewrite internal/testregs/registers.go")

func testDevice() *register.Device {
	maxValue, _ := codec.IntValue(codec.Int8, 100)
	return &register.Device{
		Name: "test",
		Doc:  []string{"Test device"},
		Registers: []*register.Schema{
			{
				Name:      "RW",
				ID:        0,
				Direction: register.ReadWrite,
				Fields: []register.Field{
					{Name: "rw_field1", Kind: codec.Uint8, Access: register.ReadWrite},
					{Name: "read_field1", Kind: codec.Uint32, Access: register.Read},
					{Name: "gain", Kind: codec.Float32, Access: register.Write},
				},
			},
			{
				Name:      "R",
				ID:        1,
				Direction: register.Read,
				Doc:       []string{"Status register"},
				Fields: []register.Field{
					{Name: "status", Kind: codec.Uint8, Access: register.Read, Doc: []string{"device status"}},
					{Name: "counter", Kind: codec.Int32, Access: register.Read},
					{Name: "flags", Kind: codec.Uint8, Access: register.Read, Bits: []register.BitRange{
						{Name: "bit0", Start: 0, End: 0},
						{Name: "bit15", Start: 1, End: 5},
					}},
				},
			},
			{
				Name:      "W",
				ID:        2,
				Direction: register.Write,
				Constants: []register.Constant{{Name: "MAX_VALUE", Value: maxValue}},
				Fields: []register.Field{
					{Name: "command", Kind: codec.Uint16, Access: register.Write},
					{Name: "value", Kind: codec.Int8, Access: register.Write},
				},
			},
			{
				Name:      "empty",
				ID:        3,
				Direction: register.ReadWrite,
			},
		},
	}
}

func parseGenerated(t *testing.T, src []byte) *ast.File {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "test.go", src, parser.ParseComments)
	require.NoError(t, err, string(src))
	return f
}

func declarations(f *ast.File) (types, values, methods map[string]bool) {
	types, values, methods = map[string]bool{}, map[string]bool{}, map[string]bool{}
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch spec := spec.(type) {
				case *ast.TypeSpec:
					types[spec.Name.Name] = true
				case *ast.ValueSpec:
					for _, n := range spec.Names {
						values[n.Name] = true
					}
				}
			}
		case *ast.FuncDecl:
			recv := d.Recv.List[0].Type.(*ast.StarExpr).X.(*ast.Ident).Name
			methods[recv+"."+d.Name.Name] = true
		}
	}
	return
}

func TestGenerateGo(t *testing.T) {
	src, err := GenerateGo(testDevice(), "ngregs")
	require.NoError(t, err)

	f := parseGenerated(t, src)
	assert.Equal(t, "ngregs", f.Name.Name)

	types, values, methods := declarations(f)
	for _, typ := range []string{"RW", "R", "W", "Empty"} {
		assert.True(t, types[typ], typ)
		assert.True(t, values[typ+"ID"], typ)
		for _, m := range methodNames {
			assert.True(t, methods[typ+"."+m], typ+"."+m)
		}
	}
	assert.True(t, values["WMaxValue"])
	assert.True(t, values["RFlagsBit0Mask"])
	assert.True(t, values["RFlagsBit15Mask"])

	code := string(src)
	assert.Contains(t, code, "// Code generated by regcodec. DO NOT EDIT.")
	assert.Contains(t, code, "RwField1   uint8")
	assert.Contains(t, code, "Gain       float32")
	assert.Contains(t, code, "// device status")
	assert.Contains(t, code, "WMaxValue int8 = 100")
	assert.Contains(t, code, "RFlagsBit15Mask uint8 = 0x3E")
	assert.Contains(t, code, "codec.Put(buf[offset:], r.Counter)")
	assert.Contains(t, code, "codec.GetFloat32(buf[offset:], &v.Gain)")
	assert.Contains(t, code, `&register.ErrDirectionMismatch{Register: "R", Op: register.OpSerializeWrite}`)
	assert.Contains(t, code, `&register.ErrDirectionMismatch{Register: "W", Op: register.OpDeserializeRead}`)
	assert.Contains(t, code, "&codec.ErrBufferCapacity{Need: 6, Have: len(buf)}")
	assert.NotContains(t, code, `Register: "RW"`)
}

func TestGenerateGoWithoutFields(t *testing.T) {
	dev := &register.Device{
		Name: "bare",
		Registers: []*register.Schema{
			{Name: "ctrl", ID: 7, Direction: register.Write},
		},
	}
	src, err := GenerateGo(dev, "bare")
	require.NoError(t, err)
	f := parseGenerated(t, src)
	_, values, methods := declarations(f)
	assert.True(t, values["CtrlID"])
	assert.True(t, methods["Ctrl.DeserializeWrite"])
	for _, imp := range f.Imports {
		assert.NotEqual(t, `"jinr.ru/greenlab/go-regcodec/pkg/codec"`, imp.Path.Value, "unused import is removed")
	}
}

func TestGenerateGoErrors(t *testing.T) {
	_, err := GenerateGo(testDevice(), "bad-package")
	assert.Error(t, err)

	clash := &register.Device{
		Name: "clash",
		Registers: []*register.Schema{
			{Name: "R", ID: 1, Direction: register.Read, Fields: []register.Field{
				{Name: "size", Kind: codec.Uint8, Access: register.Read},
			}},
		},
	}
	_, err = GenerateGo(clash, "p")
	var nameErr ErrNameClash
	require.ErrorAs(t, err, &nameErr)
	assert.Equal(t, "Size", nameErr.Name)

	clash.Registers[0].Fields = []register.Field{
		{Name: "a_b", Kind: codec.Uint8, Access: register.Read},
		{Name: "a-b", Kind: codec.Uint8, Access: register.Read},
	}
	_, err = GenerateGo(clash, "p")
	require.ErrorAs(t, err, &nameErr)
	assert.Equal(t, "AB", nameErr.Name)

	invalid := &register.Device{
		Name: "invalid",
		Registers: []*register.Schema{
			{Name: "R", ID: 1, Direction: register.Read, Fields: []register.Field{
				{Name: "a", Kind: codec.Uint8, Access: register.Write},
			}},
		},
	}
	_, err = GenerateGo(invalid, "p")
	assert.Error(t, err)
}

// internal/testregs holds the code generated from testdata/registers.pa
// together with tests running it
func TestGeneratedPackageUpToDate(t *testing.T) {
	dev, err := regparser.LoadFile(filepath.Join("testdata", "registers.pa"))
	require.NoError(t, err)
	src, err := GenerateGo(dev, "testregs")
	require.NoError(t, err)

	path := filepath.Join("internal", "testregs", "registers.go")
	if *update {
		require.NoError(t, os.WriteFile(path, src, 0o644))
	}
	want, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Fields(string(want)), strings.Fields(string(src)),
		"%s is stale, rerun the test with -update", path)
}

func TestGenerateGoArraysAndRegisters(t *testing.T) {
	status := &register.Schema{
		Name:      "ng_status",
		ID:        1,
		Direction: register.Read,
		Fields:    []register.Field{{Name: "status", Kind: codec.Uint8, Access: register.Read}},
	}
	dev := &register.Device{
		Name: "block",
		Registers: []*register.Schema{
			status,
			{
				Name:      "Block",
				ID:        2,
				Direction: register.Read,
				Fields: []register.Field{
					{Name: "head", Register: status, Access: register.Read},
					{Name: "data", Kind: codec.Uint16, Count: 3, Access: register.Read},
					{Name: "volts", Kind: codec.Float64, Count: 2, Access: register.Read},
				},
			},
		},
	}
	src, err := GenerateGo(dev, "block")
	require.NoError(t, err)
	parseGenerated(t, src)

	code := string(src)
	assert.Contains(t, code, "Head  NgStatus")
	assert.Contains(t, code, "Data  [3]uint16")
	assert.Contains(t, code, "Volts [2]float64")
	assert.Contains(t, code, "r.Head.SerializeRead(buf[offset:])")
	assert.Contains(t, code, "v.Head.DeserializeRead(buf[offset:])")
	assert.Contains(t, code, "codec.PutSlice(buf[offset:], r.Data[:])")
	assert.Contains(t, code, "codec.GetSlice(buf[offset:], v.Data[:])")
	assert.Contains(t, code, "codec.GetFloat64(buf[offset:], &v.Volts[i])")
	assert.Contains(t, code, "&codec.ErrBufferCapacity{Need: 23, Have: len(buf)}")
}

func TestGenerateGoInvalidNames(t *testing.T) {
	tests := []struct {
		name   string
		schema *register.Schema
		what   string
	}{
		{
			name: "field",
			schema: &register.Schema{Name: "R", ID: 1, Direction: register.Read, Fields: []register.Field{
				{Name: "_", Kind: codec.Uint8, Access: register.Read},
			}},
			what: "field R._",
		},
		{
			name:   "register",
			schema: &register.Schema{Name: "__", ID: 1, Direction: register.Read},
			what:   "register __",
		},
		{
			name: "constant",
			schema: &register.Schema{Name: "R", ID: 1, Direction: register.Read,
				Constants: []register.Constant{{Name: "-", Value: codec.Zero(codec.Uint8)}}},
			what: "constant R.-",
		},
		{
			name: "bit",
			schema: &register.Schema{Name: "R", ID: 1, Direction: register.Read, Fields: []register.Field{
				{Name: "flags", Kind: codec.Uint8, Access: register.Read, Bits: []register.BitRange{{Name: "_", Start: 0, End: 0}}},
			}},
			what: "bit _ of R.flags",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := &register.Device{Name: "bad", Registers: []*register.Schema{tt.schema}}
			_, err := GenerateGo(dev, "p")
			var nameErr ErrInvalidName
			require.ErrorAs(t, err, &nameErr)
			assert.Equal(t, tt.what, nameErr.What)
			assert.Empty(t, nameErr.Name)
		})
	}

	dev, err := regparser.Load("u.pa", `device u
register R(1) { _ uint8; };`)
	require.NoError(t, err)
	_, err = GenerateGo(dev, "u")
	assert.EqualError(t, err, `field R._ has no valid Go name (got "")`)
}

func TestNames(t *testing.T) {
	assert.Equal(t, "RW", typeName("RW"))
	assert.Equal(t, "NgStatus", typeName("ng_status"))
	assert.Equal(t, "RwField1", memberName("rw_field1"))
	assert.Equal(t, "MaxValue", memberName("MAX_VALUE"))
	assert.Equal(t, "TestDevice", memberName("test-device"))
	assert.Equal(t, "Bit15", memberName("bit15"))
}
