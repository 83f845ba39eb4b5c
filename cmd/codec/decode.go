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
	"fmt"

	"github.com/google/gopacket"
	"github.com/spf13/cobra"

	regcmd "jinr.ru/greenlab/go-regcodec/pkg/cmd"
	"jinr.ru/greenlab/go-regcodec/pkg/layers"
	"jinr.ru/greenlab/go-regcodec/pkg/log"
)

func NewDecodeCommand(opts *regcmd.Options) *cobra.Command {
	var regName, op string
	cmd := &cobra.Command{
		Use:   "decode <hex>",
		Short: "Deserialize a register payload and print the field values",
		Example: `
# regcodec decode --register R --op read 07 FF FF FF FB 21
status = 7 (0x07)
counter = -5
flags = 33 (0x21)`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := opts.Schema(regName)
			if err != nil {
				return err
			}
			dir, err := regcmd.ParseOp(op)
			if err != nil {
				return err
			}
			data, err := regcmd.ParseHex(args...)
			if err != nil {
				return err
			}
			packet := gopacket.NewPacket(data, layers.NewDecoder(schema, dir), gopacket.Default)
			if errLayer := packet.ErrorLayer(); errLayer != nil {
				return errLayer.Error()
			}
			layer := packet.Layer(layers.RegisterLayerType)
			if layer == nil {
				return fmt.Errorf("no register %s in payload", schema.Name)
			}
			reg := layer.(*layers.RegisterLayer)
			if app := packet.ApplicationLayer(); app != nil {
				log.Warning("Ignoring %d trailing bytes: %s", len(app.Payload()), regcmd.FormatHex(app.Payload()))
			}
			regcmd.PrintValues(cmd.OutOrStdout(), reg.Group)
			return nil
		},
	}
	cmd.Flags().StringVar(&regName, RegisterOptionName, "", "Register name")
	cmd.Flags().StringVar(&op, OpOptionName, "read", "Operation pair: read or write")
	cmd.MarkFlagRequired(RegisterOptionName)
	return cmd
}
