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

package codec

import (
	"errors"
	"fmt"
)

// ErrBufferCapacity returned when the buffer is shorter than the data to be encoded or decoded.
// Nothing is written to the buffer when this error is returned.
type ErrBufferCapacity struct {
	Need int
	Have int
}

func (e *ErrBufferCapacity) Error() string {
	return fmt.Sprintf("buffer too small: need %d bytes, have %d", e.Need, e.Have)
}

// IsBufferCapacity returns true if the err is or wraps ErrBufferCapacity
func IsBufferCapacity(err error) bool {
	var target *ErrBufferCapacity
	return errors.As(err, &target)
}

// ErrUnsupportedSize returned when a value has a width the codec does not handle
type ErrUnsupportedSize struct {
	Size int
}

func (e ErrUnsupportedSize) Error() string {
	return fmt.Sprintf("unsupported type size: %d", e.Size)
}

type ErrUnknownKind struct {
	Name string
}

func (e ErrUnknownKind) Error() string {
	return fmt.Sprintf("unknown field type %q", e.Name)
}

// ErrValueRange returned when a value does not fit into the kind
type ErrValueRange struct {
	Kind  Kind
	Value string
}

func (e ErrValueRange) Error() string {
	return fmt.Sprintf("value %s is out of range for %s", e.Value, e.Kind)
}

// ErrValueSyntax returned when a value is not a number at all
type ErrValueSyntax struct {
	Kind  Kind
	Value string
	Err   error
}

func (e ErrValueSyntax) Error() string {
	return fmt.Sprintf("invalid %s value %q", e.Kind, e.Value)
}

func (e ErrValueSyntax) Unwrap() error {
	return e.Err
}

// need checks the buffer capacity before anything is written to it
func need(b []byte, size int) error {
	if len(b) < size {
		return &ErrBufferCapacity{Need: size, Have: len(b)}
	}
	return nil
}
