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

package store

import (
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"

	"jinr.ru/greenlab/go-regcodec/pkg/register"
)

// Record is a saved register payload
type Record struct {
	Register string `cbor:"1,keyasint"`
	ID       uint8  `cbor:"2,keyasint"`
	// Direction is the operation pair the payload was serialized with, Read or Write
	Direction register.Direction `cbor:"3,keyasint"`
	Payload   []byte             `cbor:"4,keyasint"`
	Saved     time.Time          `cbor:"5,keyasint"`
}

var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create record CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		IndefLength:       cbor.IndefLengthForbidden,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create record CBOR decoder mode: %v", err))
	}
}

func encodeRecord(r *Record) ([]byte, error) {
	return encMode.Marshal(r)
}

func decodeRecord(data []byte) (*Record, error) {
	r := &Record{}
	if err := decMode.Unmarshal(data, r); err != nil {
		return nil, err
	}
	return r, nil
}
