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
	"bytes"
	"fmt"
	"go/token"
	"strconv"
	"text/template"

	"golang.org/x/tools/imports"

	"jinr.ru/greenlab/go-regcodec/pkg/codec"
	"jinr.ru/greenlab/go-regcodec/pkg/log"
	"jinr.ru/greenlab/go-regcodec/pkg/register"
)

var goTmpl = template.Must(template.New("go").Parse(goTemplate))

type goDevice struct {
	Package   string
	Doc       []string
	Registers []*goRegister
}

type goRegister struct {
	Name      string
	Type      string
	ID        uint8
	Size      int
	Doc       []string
	Fields    []goField
	Constants []goConst
	Masks     []goConst
	Ops       []goOp
}

type goField struct {
	GoName string
	Type   string
	Doc    []string
	Put    string
	Get    string
	// Ref is set for register fields, which call the nested method
	Ref bool
	// Loop is set for float arrays, encoded one element at a time
	Loop bool
	// Slice is appended to integer array operands
	Slice string
	// Addr is prepended to the operand of Get
	Addr string
}

type goConst struct {
	GoName  string
	Type    string
	Literal string
	Doc     []string
}

type goOp struct {
	Method    string
	Op        string
	Doc       string
	Allowed   bool
	Serialize bool
}

// methods every generated register type declares
var methodNames = []string{"ID", "Size", "SerializeRead", "SerializeWrite", "DeserializeRead", "DeserializeWrite"}

// GenerateGo returns formatted Go source with one struct type per register
// of the device, the register constants, bit masks and the four wire operations
func GenerateGo(dev *register.Device, pkg string) ([]byte, error) {
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("invalid package name %q", pkg)
	}
	if err := dev.Validate(); err != nil {
		return nil, err
	}

	data := &goDevice{Package: pkg, Doc: dev.Doc}
	global := names{}
	for _, s := range dev.Registers {
		r, err := newGoRegister(s, global)
		if err != nil {
			return nil, err
		}
		data.Registers = append(data.Registers, r)
	}

	var buf bytes.Buffer
	if err := goTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	src, err := imports.Process(pkg+".go", buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	log.Debug("Generated %d bytes of Go code for device %s", len(src), dev.Name)
	return src, nil
}

func newGoRegister(s *register.Schema, global names) (*goRegister, error) {
	r := &goRegister{
		Name: s.Name,
		Type: typeName(s.Name),
		ID:   s.ID,
		Size: s.Size(),
		Doc:  s.Doc,
	}
	if err := checkName(r.Type, "register "+s.Name); err != nil {
		return nil, err
	}
	if err := global.add(r.Type, "register "+s.Name); err != nil {
		return nil, err
	}
	if err := global.add(r.Type+"ID", "id of register "+s.Name); err != nil {
		return nil, err
	}

	members := names{}
	for _, m := range methodNames {
		members[m] = "method " + m
	}
	for _, f := range s.Fields {
		gf := newGoField(f)
		if err := checkName(gf.GoName, fmt.Sprintf("field %s.%s", s.Name, f.Name)); err != nil {
			return nil, err
		}
		if err := members.add(gf.GoName, fmt.Sprintf("field %s.%s", s.Name, f.Name)); err != nil {
			return nil, err
		}
		r.Fields = append(r.Fields, gf)

		for _, b := range f.Bits {
			if err := checkName(memberName(b.Name), fmt.Sprintf("bit %s of %s.%s", b.Name, s.Name, f.Name)); err != nil {
				return nil, err
			}
			m := goConst{
				GoName:  r.Type + gf.GoName + memberName(b.Name) + "Mask",
				Type:    gf.Type,
				Literal: fmt.Sprintf("0x%X", b.Mask()),
				Doc:     []string{b.String()},
			}
			if err := global.add(m.GoName, fmt.Sprintf("bit %s of %s.%s", b.Name, s.Name, f.Name)); err != nil {
				return nil, err
			}
			r.Masks = append(r.Masks, m)
		}
	}

	for _, c := range s.Constants {
		if err := checkName(memberName(c.Name), fmt.Sprintf("constant %s.%s", s.Name, c.Name)); err != nil {
			return nil, err
		}
		gc := goConst{
			GoName:  r.Type + memberName(c.Name),
			Type:    c.Value.Kind().String(),
			Literal: literal(c.Value),
			Doc:     c.Doc,
		}
		if err := global.add(gc.GoName, fmt.Sprintf("constant %s.%s", s.Name, c.Name)); err != nil {
			return nil, err
		}
		r.Constants = append(r.Constants, gc)
	}

	r.Ops = []goOp{
		newGoOp(s, register.OpSerializeRead, "SerializeRead", "writes the fields to buf for a read of the register", true),
		newGoOp(s, register.OpSerializeWrite, "SerializeWrite", "writes the fields to buf for a write to the register", true),
		newGoOp(s, register.OpDeserializeRead, "DeserializeRead", "updates the fields from data read from the device", false),
		newGoOp(s, register.OpDeserializeWrite, "DeserializeWrite", "updates the fields from a write command", false),
	}
	return r, nil
}

func newGoField(f register.Field) goField {
	gf := goField{
		GoName: memberName(f.Name),
		Type:   f.Kind.String(),
		Doc:    f.Doc,
		Put:    "codec.Put",
		Get:    "codec.Get",
		Addr:   "&",
	}
	if f.Register != nil {
		gf.Type = typeName(f.Register.Name)
		gf.Ref = true
		return gf
	}
	switch f.Kind {
	case codec.Float32:
		gf.Put, gf.Get = "codec.PutFloat32", "codec.GetFloat32"
	case codec.Float64:
		gf.Put, gf.Get = "codec.PutFloat64", "codec.GetFloat64"
	}
	if f.Count > 0 {
		gf.Type = fmt.Sprintf("[%d]%s", f.Count, f.Kind)
		if f.Kind.Float() {
			gf.Loop = true
		} else {
			gf.Put, gf.Get = "codec.PutSlice", "codec.GetSlice"
			gf.Slice, gf.Addr = "[:]", ""
		}
	}
	return gf
}

func checkName(goName, what string) error {
	if !token.IsIdentifier(goName) || !token.IsExported(goName) {
		return ErrInvalidName{Name: goName, What: what}
	}
	return nil
}

func newGoOp(s *register.Schema, op register.Op, method, doc string, serialize bool) goOp {
	allowed := s.Direction.Allows(op)
	if !allowed {
		doc = fmt.Sprintf("always fails, register %s is %s", s.Name, directionWords(s.Direction))
	}
	return goOp{
		Method:    method,
		Op:        "Op" + method,
		Doc:       doc,
		Allowed:   allowed,
		Serialize: serialize,
	}
}

func directionWords(d register.Direction) string {
	if d == register.Read {
		return "read-only"
	}
	return "write-only"
}

// literal returns v as a Go constant expression
func literal(v codec.Value) string {
	k := v.Kind()
	switch {
	case k.Signed():
		return strconv.FormatInt(v.Int(), 10)
	case k.Float():
		return strconv.FormatFloat(v.Float(), 'g', -1, k.Bits())
	default:
		return fmt.Sprintf("0x%X", v.Uint())
	}
}
