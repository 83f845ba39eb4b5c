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

package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	regcmd "jinr.ru/greenlab/go-regcodec/pkg/cmd"
	"jinr.ru/greenlab/go-regcodec/pkg/log"
)

const (
	OverwriteOptionName = "overwrite"
)

func NewCommand(opts *regcmd.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage config",
	}
	cmd.AddCommand(NewInitCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	return cmd
}

func NewInitCommand(opts *regcmd.Options) *cobra.Command {
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write config file with the current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Config.Persist(overwrite); err != nil {
				return err
			}
			log.Info("Config written to %s", opts.Config.Path())
			return nil
		},
	}
	cmd.Flags().BoolVar(&overwrite, OverwriteOptionName, false, "Overwrite existing config file")
	return cmd
}

func NewShowCommand(opts *regcmd.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print effective config",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(opts.Config)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	return cmd
}
