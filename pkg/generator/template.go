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

const goTemplate = `// Code generated by regcodec. DO NOT EDIT.

{{range .Doc}}// {{.}}
{{end -}}
package {{.Package}}

import (
	"jinr.ru/greenlab/go-regcodec/pkg/codec"
	"jinr.ru/greenlab/go-regcodec/pkg/register"
)
{{range .Registers}}{{$r := .}}
// ================= {{.Name}} =================

// {{.Type}}ID is the number of register {{.Name}}
const {{.Type}}ID uint8 = {{.ID}}

{{range .Doc}}// {{.}}
{{end -}}
type {{.Type}} struct {
{{- range .Fields}}
{{- range .Doc}}
	// {{.}}
{{- end}}
	{{.GoName}} {{.Type}}
{{- end}}
}
{{if .Constants}}
const (
{{- range .Constants}}
{{- range .Doc}}
	// {{.}}
{{- end}}
	{{.GoName}} {{.Type}} = {{.Literal}}
{{- end}}
)
{{end}}
{{- if .Masks}}
const (
{{- range .Masks}}
{{- range .Doc}}
	// {{.}}
{{- end}}
	{{.GoName}} {{.Type}} = {{.Literal}}
{{- end}}
)
{{end}}
// ID returns the register number
func (r *{{.Type}}) ID() uint8 {
	return {{.Type}}ID
}

// Size returns the number of bytes the register takes on the wire
func (r *{{.Type}}) Size() int {
	return {{.Size}}
}
{{range .Ops}}{{$op := .}}
// {{.Method}} {{.Doc}}
func (r *{{$r.Type}}) {{.Method}}(buf []byte) (int, error) {
{{- if not .Allowed}}
	return 0, &register.ErrDirectionMismatch{Register: {{printf "%q" $r.Name}}, Op: register.{{.Op}}}
{{- else}}
{{- if $r.Size}}
	if len(buf) < {{$r.Size}} {
		return 0, &codec.ErrBufferCapacity{Need: {{$r.Size}}, Have: len(buf)}
	}
{{- end}}
{{- if .Serialize}}
	offset := 0
{{- if $r.Fields}}
	var n int
	var err error
{{- end}}
{{- range $r.Fields}}
{{- if .Ref}}
	if n, err = r.{{.GoName}}.{{$op.Method}}(buf[offset:]); err != nil {
		return offset, err
	}
	offset += n
{{- else if .Loop}}
	for i := range r.{{.GoName}} {
		if n, err = {{.Put}}(buf[offset:], r.{{.GoName}}[i]); err != nil {
			return offset, err
		}
		offset += n
	}
{{- else}}
	if n, err = {{.Put}}(buf[offset:], r.{{.GoName}}{{.Slice}}); err != nil {
		return offset, err
	}
	offset += n
{{- end}}
{{- end}}
	return offset, nil
{{- else}}
	v := *r
	offset := 0
{{- if $r.Fields}}
	var n int
	var err error
{{- end}}
{{- range $r.Fields}}
{{- if .Ref}}
	if n, err = v.{{.GoName}}.{{$op.Method}}(buf[offset:]); err != nil {
		return offset, err
	}
	offset += n
{{- else if .Loop}}
	for i := range v.{{.GoName}} {
		if n, err = {{.Get}}(buf[offset:], &v.{{.GoName}}[i]); err != nil {
			return offset, err
		}
		offset += n
	}
{{- else}}
	if n, err = {{.Get}}(buf[offset:], {{.Addr}}v.{{.GoName}}{{.Slice}}); err != nil {
		return offset, err
	}
	offset += n
{{- end}}
{{- end}}
	*r = v
	return offset, nil
{{- end}}
{{- end}}
}
{{end}}
{{- end}}`
