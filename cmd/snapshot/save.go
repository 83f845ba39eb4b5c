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

package snapshot

import (
	"fmt"

	"github.com/spf13/cobra"

	regcmd "jinr.ru/greenlab/go-regcodec/pkg/cmd"
	"jinr.ru/greenlab/go-regcodec/pkg/register"
)

func NewSaveCommand(opts *regcmd.Options) *cobra.Command {
	var device, regName, op string
	cmd := &cobra.Command{
		Use:   "save <hex>",
		Short: "Decode a register payload and save it",
		Args:  cobra.MinimumNArgs(1),
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
			if len(data) != schema.Size() {
				return fmt.Errorf("register %s takes %d bytes, got %d", schema.Name, schema.Size(), len(data))
			}
			g := register.New(schema)
			if _, err := g.DeserializeAs(dir, data); err != nil {
				return err
			}

			device, err = deviceName(opts, device)
			if err != nil {
				return err
			}
			s, err := opts.OpenStore(device)
			if err != nil {
				return err
			}
			defer s.Close()
			rec, err := s.Save(device, g, dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%d) of %s: %s\n", rec.Register, rec.ID, device, regcmd.FormatHex(rec.Payload))
			return nil
		},
	}
	cmd.Flags().StringVar(&device, DeviceOptionName, "", "Device name, the definition file device if empty")
	cmd.Flags().StringVar(&regName, RegisterOptionName, "", "Register name")
	cmd.Flags().StringVar(&op, OpOptionName, "read", "Operation pair: read or write")
	cmd.MarkFlagRequired(RegisterOptionName)
	return cmd
}
