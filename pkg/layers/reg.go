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

package layers

import (
	"errors"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"jinr.ru/greenlab/go-regcodec/pkg/codec"
	"jinr.ru/greenlab/go-regcodec/pkg/register"
)

const (
	// RegisterLayerNum identifies the layer
	RegisterLayerNum = 1997
)

var errNoSchema = errors.New("register layer has no schema, use NewDecoder")

// RegisterLayer is the wire payload of one register. Direction selects the
// operation pair: Write uses SerializeWrite/DeserializeWrite, anything else
// uses the read pair.
type RegisterLayer struct {
	layers.BaseLayer
	Group     *register.Group
	Direction register.Direction
}

var RegisterLayerType = gopacket.RegisterLayerType(RegisterLayerNum,
	gopacket.LayerTypeMetadata{Name: "RegisterLayerType", Decoder: gopacket.DecodeFunc(decodeWithoutSchema)})

// NewRegisterLayer returns a layer holding a zeroed group of the schema
func NewRegisterLayer(schema *register.Schema, dir register.Direction) *RegisterLayer {
	return &RegisterLayer{
		Group:     register.New(schema),
		Direction: dir,
	}
}

// LayerType returns the type of the register layer in the layer catalog
func (reg *RegisterLayer) LayerType() gopacket.LayerType {
	return RegisterLayerType
}

func (reg *RegisterLayer) CanDecode() gopacket.LayerClass {
	return RegisterLayerType
}

func (reg *RegisterLayer) NextLayerType() gopacket.LayerType {
	return gopacket.LayerTypePayload
}

func (reg *RegisterLayer) serializeOp() register.Op {
	if reg.Direction == register.Write {
		return register.OpSerializeWrite
	}
	return register.OpSerializeRead
}

// SerializeTo serializes the register fields and prepends the bytes to the SerializeBuffer
func (reg *RegisterLayer) SerializeTo(b gopacket.SerializeBuffer, opts gopacket.SerializeOptions) error {
	if reg.Group == nil {
		return errNoSchema
	}
	schema := reg.Group.Schema()
	op := reg.serializeOp()
	// the buffer is left alone when the register cannot do op
	if !schema.Direction.Allows(op) {
		return &register.ErrDirectionMismatch{Register: schema.Name, Op: op}
	}
	bytes, err := b.PrependBytes(reg.Group.Size())
	if err != nil {
		return err
	}
	_, err = reg.Group.SerializeAs(reg.Direction, bytes)
	return err
}

// DecodeFromBytes updates the group from data, bytes after the register are the layer payload
func (reg *RegisterLayer) DecodeFromBytes(data []byte, df gopacket.DecodeFeedback) error {
	if reg.Group == nil {
		return errNoSchema
	}
	n, err := reg.Group.DeserializeAs(reg.Direction, data)
	if err != nil {
		if codec.IsBufferCapacity(err) {
			df.SetTruncated()
		}
		return err
	}
	reg.BaseLayer = layers.BaseLayer{
		Contents: data[:n],
		Payload:  data[n:],
	}
	return nil
}

// NewDecoder returns a decoder of register payloads of the given schema
func NewDecoder(schema *register.Schema, dir register.Direction) gopacket.Decoder {
	return gopacket.DecodeFunc(func(data []byte, p gopacket.PacketBuilder) error {
		reg := NewRegisterLayer(schema, dir)
		if err := reg.DecodeFromBytes(data, p); err != nil {
			return err
		}
		p.AddLayer(reg)
		return p.NextDecoder(gopacket.LayerTypePayload)
	})
}

func decodeWithoutSchema(data []byte, p gopacket.PacketBuilder) error {
	return errNoSchema
}
