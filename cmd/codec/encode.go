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
	"strings"

	"github.com/google/gopacket"
	"github.com/spf13/cobra"

	regcmd "jinr.ru/greenlab/go-regcodec/pkg/cmd"
	"jinr.ru/greenlab/go-regcodec/pkg/layers"
	"jinr.ru/greenlab/go-regcodec/pkg/log"
)

const (
	RegisterOptionName = "register"
	OpOptionName       = "op"
)

func NewEncodeCommand(opts *regcmd.Options) *cobra.Command {
	var regName, op string
	cmd := &cobra.Command{
		Use:   "encode [field=value ...]",
		Short: "Serialize register fields and print the payload in hex",
		Example: `
# regcodec encode --register R --op read status=7 counter=-5 flags=0x21
07 FF FF FF FB 21`,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := opts.Schema(regName)
			if err != nil {
				return err
			}
			dir, err := regcmd.ParseOp(op)
			if err != nil {
				return err
			}
			reg := layers.NewRegisterLayer(schema, dir)
			for _, arg := range args {
				name, value, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("wrong field assignment %q, must be name=value", arg)
				}
				if err := reg.Group.SetString(name, value); err != nil {
					return err
				}
			}
			buf := gopacket.NewSerializeBuffer()
			if err := gopacket.SerializeLayers(buf, gopacket.SerializeOptions{}, reg); err != nil {
				return err
			}
			log.Debug("Encoded register %s: %d bytes", schema.Name, len(buf.Bytes()))
			fmt.Fprintln(cmd.OutOrStdout(), regcmd.FormatHex(buf.Bytes()))
			return nil
		},
	}
	cmd.Flags().StringVar(&regName, RegisterOptionName, "", "Register name")
	cmd.Flags().StringVar(&op, OpOptionName, "read", "Operation pair: read or write")
	cmd.MarkFlagRequired(RegisterOptionName)
	return cmd
}
