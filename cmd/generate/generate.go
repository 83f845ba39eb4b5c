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

package generate

import (
	"os"

	"github.com/spf13/cobra"

	regcmd "jinr.ru/greenlab/go-regcodec/pkg/cmd"
	"jinr.ru/greenlab/go-regcodec/pkg/generator"
	"jinr.ru/greenlab/go-regcodec/pkg/log"
)

const (
	PackageOptionName = "package"
	OutputOptionName  = "output"
)

func NewCommand(opts *regcmd.Options) *cobra.Command {
	var pkg, output string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Go register types from the definition file",
		RunE: func(cmd *cobra.Command, args []string) error {
			dev, err := opts.Device()
			if err != nil {
				return err
			}
			src, err := generator.GenerateGo(dev, pkg)
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			if err := os.WriteFile(output, src, 0644); err != nil {
				return err
			}
			log.Info("Generated %s", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&pkg, PackageOptionName, "p", "", "Go package name")
	cmd.Flags().StringVarP(&output, OutputOptionName, "o", "", "Output file, stdout if empty")
	cmd.MarkFlagRequired(PackageOptionName)
	return cmd
}
