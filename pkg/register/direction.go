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

import "fmt"

// Direction tells whether a register can be read from the device, written to it, or both
type Direction uint8

const (
	Read Direction = 1 << iota
	Write
	ReadWrite = Read | Write
)

// ParseDirection converts a definition specifier ("r", "w" or empty) to a Direction
func ParseDirection(spec string) (Direction, error) {
	switch spec {
	case "":
		return ReadWrite, nil
	case "r":
		return Read, nil
	case "w":
		return Write, nil
	default:
		return 0, fmt.Errorf("unknown direction specifier %q", spec)
	}
}

func (d Direction) CanRead() bool {
	return d&Read != 0
}

func (d Direction) CanWrite() bool {
	return d&Write != 0
}

// Allows reports whether the operation is legal for the direction
func (d Direction) Allows(op Op) bool {
	if op.readSide() {
		return d.CanRead()
	}
	return d.CanWrite()
}

func (d Direction) String() string {
	switch d {
	case Read:
		return "r"
	case Write:
		return "w"
	case ReadWrite:
		return "rw"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Op is one of the four operations of a register group
type Op uint8

const (
	OpSerializeRead Op = iota
	OpSerializeWrite
	OpDeserializeRead
	OpDeserializeWrite
)

func (op Op) readSide() bool {
	return op == OpSerializeRead || op == OpDeserializeRead
}

func (op Op) String() string {
	switch op {
	case OpSerializeRead:
		return "serialize read"
	case OpSerializeWrite:
		return "serialize write"
	case OpDeserializeRead:
		return "deserialize read"
	case OpDeserializeWrite:
		return "deserialize write"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}
