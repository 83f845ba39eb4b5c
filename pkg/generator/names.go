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
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// typeName converts a register name to an exported Go type name, keeping
// the case of each part: RW -> RW, ng_status -> NgStatus
func typeName(s string) string {
	return joinTitled(s)
}

// memberName converts a field or constant name to an exported Go name.
// All-uppercase names are lowered first: rw_field1 -> RwField1, MAX_VALUE -> MaxValue
func memberName(s string) string {
	if strings.ToUpper(s) == s {
		s = strings.ToLower(s)
	}
	return joinTitled(s)
}

func joinTitled(s string) string {
	caser := cases.Title(language.Und, cases.NoLower)
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == '-' })
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(caser.String(p))
	}
	return b.String()
}

// names tracks the identifiers declared in one scope
type names map[string]string

func (n names) add(name, what string) error {
	if prev, ok := n[name]; ok {
		return ErrNameClash{Name: name, What: prev}
	}
	n[name] = what
	return nil
}
