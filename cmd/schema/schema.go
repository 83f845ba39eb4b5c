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

package schema

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	regcmd "jinr.ru/greenlab/go-regcodec/pkg/cmd"
)

func NewCommand(opts *regcmd.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "List registers of the definition file",
		RunE: func(cmd *cobra.Command, args []string) error {
			dev, err := opts.Device()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "device %s\n", dev.Name)
			for _, s := range dev.Registers {
				fmt.Fprintf(w, "%s\t%d\t%s\t%d bytes\n", s.Name, s.ID, s.Direction, s.Size())
				for _, f := range s.Fields {
					fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", f.Name, f.TypeName(), f.Access, strings.Join(f.Doc, " "))
					for _, b := range f.Bits {
						fmt.Fprintf(w, "    %s\tmask 0x%X\t\t\n", b, b.Mask())
					}
				}
				for _, c := range s.Constants {
					fmt.Fprintf(w, "  const %s\t%s\t%s\t\n", c.Name, c.Value.Kind(), c.Value)
				}
			}
			return w.Flush()
		},
	}
	return cmd
}
