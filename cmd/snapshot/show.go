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
	"time"

	"github.com/spf13/cobra"

	regcmd "jinr.ru/greenlab/go-regcodec/pkg/cmd"
	"jinr.ru/greenlab/go-regcodec/pkg/log"
)

func NewShowCommand(opts *regcmd.Options) *cobra.Command {
	var device string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print saved registers of a device",
		RunE: func(cmd *cobra.Command, args []string) error {
			dev, err := opts.Device()
			if err != nil {
				return err
			}
			if device == "" {
				device = dev.Name
			}
			s, err := opts.OpenStore(device)
			if err != nil {
				return err
			}
			defer s.Close()
			records, err := s.List(device)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, rec := range records {
				fmt.Fprintf(out, "%s (%d) %s saved %s: %s\n", rec.Register, rec.ID, rec.Direction,
					rec.Saved.Local().Format(time.RFC3339), regcmd.FormatHex(rec.Payload))
				schema := dev.Register(rec.Register)
				if schema == nil {
					log.Warning("Register %s is not in %s", rec.Register, opts.Config.Definitions)
					continue
				}
				g, _, err := s.Load(device, schema)
				if err != nil {
					log.Warning("Cannot restore register %s: %s", rec.Register, err)
					continue
				}
				for _, fv := range g.Values() {
					fmt.Fprintf(out, "  %s = %s\n", fv.Name, fv.Value)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&device, DeviceOptionName, "", "Device name, the definition file device if empty")
	return cmd
}
