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
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Document is the syntax tree of a register definition file
type Document struct {
	Pos   lexer.Position
	Doc   []string   `@Comment*`
	Name  string     `"device" @Ident`
	Items []*TopItem `@@*`
}

// Line is a single // comment
type Line struct {
	Pos  lexer.Position
	Text string `@Comment`
}

type TopItem struct {
	Comment  *Line         `  @@`
	Register *RegisterDecl `| @@`
}

type RegisterDecl struct {
	Pos    lexer.Position
	Name   string      `"register" @Ident`
	Number string      `"(" @Int ")"`
	Access string      `( ":" @("r" | "w") )?`
	Items  []*BodyItem `"{" @@* "}" ";"`
}

type BodyItem struct {
	Comment  *Line      `  @@`
	Constant *ConstDecl `| @@`
	Field    *FieldDecl `| @@`
}

type ConstDecl struct {
	Pos   lexer.Position
	Name  string `"const" @Ident "="`
	Type  string `@Ident`
	Value string `"(" @("-"? Int) ")" ";"`
}

// FieldDecl is a scalar, a fixed-size array or a register declared earlier
type FieldDecl struct {
	Pos    lexer.Position
	Name   string     `@Ident`
	Access string     `( ":" @("r" | "w") )?`
	Count  *string    `( "[" @(Int | Ident) "]" )?`
	Type   string     `@Ident`
	Bits   []*BitDecl `( "{" @@ ( "," @@ )* "}" )? ";"`
}

type BitDecl struct {
	Pos   lexer.Position
	Name  string  `@Ident ":"`
	Start string  `@Int`
	End   *string `( "-" @Int )?`
}

var definitionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\r\n]*`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*(-[a-zA-Z0-9_]+)*`},
	{Name: "Int", Pattern: `0[xX][0-9a-fA-F]+|0[bB][01]+|0[oO][0-7]+|\d+`},
	{Name: "Punct", Pattern: `[{}()\[\];:,=\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var definitionParser = participle.MustBuild[Document](
	participle.Lexer(definitionLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)
