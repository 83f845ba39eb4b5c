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
	"errors"
	"fmt"

	"jinr.ru/greenlab/go-regcodec/pkg/codec"
)

// ErrDirectionMismatch returned when an operation is called on a register that lacks the capability,
// e.g. a write on a read-only register. The buffer is not touched.
type ErrDirectionMismatch struct {
	Register string
	Op       Op
}

func (e *ErrDirectionMismatch) Error() string {
	return fmt.Sprintf("register %s does not support %s", e.Register, e.Op)
}

// IsDirectionMismatch returns true if the err is or wraps ErrDirectionMismatch
func IsDirectionMismatch(err error) bool {
	var target *ErrDirectionMismatch
	return errors.As(err, &target)
}

type ErrUnknownField struct {
	Register string
	Field    string
}

func (e ErrUnknownField) Error() string {
	return fmt.Sprintf("register %s has no field %s", e.Register, e.Field)
}

// ErrKindMismatch returned when a value of the wrong kind is assigned to a field
type ErrKindMismatch struct {
	Field string
	Want  codec.Kind
	Got   codec.Kind
}

func (e ErrKindMismatch) Error() string {
	return fmt.Sprintf("field %s is %s, got %s", e.Field, e.Want, e.Got)
}

// ErrInvalidSchema returned when a register or device definition is inconsistent
type ErrInvalidSchema struct {
	Register string
	What     string
}

func (e ErrInvalidSchema) Error() string {
	if e.Register == "" {
		return fmt.Sprintf("invalid device definition: %s", e.What)
	}
	return fmt.Sprintf("invalid register %s: %s", e.Register, e.What)
}
