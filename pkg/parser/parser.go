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

package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"jinr.ru/greenlab/go-regcodec/pkg/codec"
	"jinr.ru/greenlab/go-regcodec/pkg/log"
	"jinr.ru/greenlab/go-regcodec/pkg/register"
)

// Parse returns the syntax tree of a definition file without validating it
func Parse(filename, input string) (*Document, error) {
	return definitionParser.ParseString(filename, input)
}

// LoadFile reads and loads the definition file at path
func LoadFile(path string) (*register.Device, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(path, string(data))
}

// Load parses the input and converts it to a validated device definition
func Load(filename, input string) (*register.Device, error) {
	doc, err := Parse(filename, input)
	if err != nil {
		return nil, err
	}
	b := &builder{src: input}
	dev, err := b.device(doc)
	if err != nil {
		return nil, err
	}
	if err := dev.Validate(); err != nil {
		return nil, err
	}
	log.Debug("Loaded device %s with %d registers from %s", dev.Name, len(dev.Registers), filename)
	return dev, nil
}

type builder struct {
	src string
	// docs collected for the next declaration
	pending []string
	// registers built so far, for register fields
	built    map[string]*register.Schema
	declared map[string]bool
}

func (b *builder) device(doc *Document) (*register.Device, error) {
	dev := &register.Device{
		Name: doc.Name,
		Doc:  commentText(doc.Doc),
	}
	b.built = make(map[string]*register.Schema)
	b.declared = make(map[string]bool)
	for _, item := range doc.Items {
		if item.Register != nil {
			b.declared[item.Register.Name] = true
		}
	}
	for _, item := range doc.Items {
		if item.Comment != nil {
			b.pending = append(b.pending, commentText([]string{item.Comment.Text})...)
			continue
		}
		s, err := b.register(item.Register)
		if err != nil {
			return nil, err
		}
		dev.Registers = append(dev.Registers, s)
		if _, ok := b.built[s.Name]; !ok {
			b.built[s.Name] = s
		}
	}
	return dev, nil
}

func (b *builder) register(decl *RegisterDecl) (*register.Schema, error) {
	id, err := codec.ParseUint(decl.Number, 8)
	if err != nil {
		return nil, ErrDefinition{Pos: decl.Pos, What: fmt.Sprintf("register %s: number %s must be in 0..255", decl.Name, decl.Number)}
	}
	dir, err := register.ParseDirection(decl.Access)
	if err != nil {
		return nil, ErrDefinition{Pos: decl.Pos, What: err.Error()}
	}
	s := &register.Schema{
		Name:      decl.Name,
		ID:        uint8(id),
		Direction: dir,
		Doc:       b.takeDoc(),
	}

	// doc of the last declaration, for trailing comments
	var last *[]string
	for _, item := range decl.Items {
		switch {
		case item.Comment != nil:
			text := commentText([]string{item.Comment.Text})
			if last != nil && b.trailing(item.Comment.Pos) {
				*last = append(*last, text...)
				continue
			}
			b.pending = append(b.pending, text...)
		case item.Constant != nil:
			c, err := b.constant(s, item.Constant)
			if err != nil {
				return nil, err
			}
			s.Constants = append(s.Constants, c)
			last = &s.Constants[len(s.Constants)-1].Doc
		case item.Field != nil:
			f, err := b.field(s, item.Field)
			if err != nil {
				return nil, err
			}
			s.Fields = append(s.Fields, f)
			last = &s.Fields[len(s.Fields)-1].Doc
		}
	}
	// comments before "};" belong to nothing
	b.pending = nil

	if err := s.Validate(); err != nil {
		return nil, ErrDefinition{Pos: decl.Pos, What: err.Error()}
	}
	return s, nil
}

func (b *builder) constant(s *register.Schema, decl *ConstDecl) (register.Constant, error) {
	kind, err := codec.ParseKind(decl.Type)
	if err != nil {
		return register.Constant{}, ErrDefinition{Pos: decl.Pos, What: err.Error()}
	}
	v, err := codec.ParseValue(kind, decl.Value)
	if err != nil {
		return register.Constant{}, ErrDefinition{Pos: decl.Pos, What: fmt.Sprintf("constant %s.%s: %s", s.Name, decl.Name, err)}
	}
	return register.Constant{Name: decl.Name, Value: v, Doc: b.takeDoc()}, nil
}

func (b *builder) field(s *register.Schema, decl *FieldDecl) (register.Field, error) {
	fail := func(format string, args ...interface{}) (register.Field, error) {
		what := fmt.Sprintf("field %s.%s: ", s.Name, decl.Name) + fmt.Sprintf(format, args...)
		return register.Field{}, ErrDefinition{Pos: decl.Pos, What: what}
	}
	// a field without specifier inherits the register direction
	access := s.Direction
	if decl.Access != "" {
		var err error
		if access, err = register.ParseDirection(decl.Access); err != nil {
			return register.Field{}, ErrDefinition{Pos: decl.Pos, What: err.Error()}
		}
	}
	f := register.Field{
		Name:   decl.Name,
		Access: access,
	}

	kind, err := codec.ParseKind(decl.Type)
	switch {
	case err == nil:
		f.Kind = kind
	case b.built[decl.Type] != nil:
		f.Register = b.built[decl.Type]
	case decl.Type == s.Name:
		return fail("register %s cannot contain itself", s.Name)
	case b.declared[decl.Type]:
		return fail("register %s must be declared before %s", decl.Type, s.Name)
	default:
		return fail("%s", err)
	}

	if decl.Count != nil {
		count, err := codec.ParseUint(*decl.Count, 16)
		switch {
		case err != nil && !isDigit((*decl.Count)[0]):
			return fail("variable-length array [%s] is not supported", *decl.Count)
		case err != nil || count == 0:
			return fail("array size %s must be in 1..65535", *decl.Count)
		}
		f.Count = int(count)
	}

	for _, bd := range decl.Bits {
		start, err := bitPosition(s, decl, bd, bd.Start)
		if err != nil {
			return register.Field{}, err
		}
		end := start
		if bd.End != nil {
			if end, err = bitPosition(s, decl, bd, *bd.End); err != nil {
				return register.Field{}, err
			}
		}
		f.Bits = append(f.Bits, register.BitRange{Name: bd.Name, Start: start, End: end})
	}
	f.Doc = b.takeDoc()
	return f, nil
}

func bitPosition(s *register.Schema, field *FieldDecl, bd *BitDecl, text string) (int, error) {
	pos, err := codec.ParseUint(text, 16)
	if err != nil {
		return 0, ErrDefinition{Pos: bd.Pos, What: fmt.Sprintf("bit field %s.%s.%s: bit position %s is too large", s.Name, field.Name, bd.Name, text)}
	}
	return int(pos), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (b *builder) takeDoc() []string {
	doc := b.pending
	b.pending = nil
	return doc
}

// trailing reports whether the comment follows code on the same line
func (b *builder) trailing(pos lexer.Position) bool {
	if pos.Offset > len(b.src) {
		return false
	}
	lineStart := strings.LastIndexByte(b.src[:pos.Offset], '\n') + 1
	return strings.TrimSpace(b.src[lineStart:pos.Offset]) != ""
}

// commentText strips the comment markers
func commentText(lines []string) []string {
	var out []string
	for _, l := range lines {
		out = append(out, strings.TrimSpace(strings.TrimPrefix(l, "//")))
	}
	return out
}
