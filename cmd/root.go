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

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-regcodec/cmd/codec"
	"jinr.ru/greenlab/go-regcodec/cmd/completion"
	"jinr.ru/greenlab/go-regcodec/cmd/config"
	"jinr.ru/greenlab/go-regcodec/cmd/generate"
	"jinr.ru/greenlab/go-regcodec/cmd/schema"
	"jinr.ru/greenlab/go-regcodec/cmd/snapshot"
	regcmd "jinr.ru/greenlab/go-regcodec/pkg/cmd"
	pkgconfig "jinr.ru/greenlab/go-regcodec/pkg/config"
	"jinr.ru/greenlab/go-regcodec/pkg/log"
)

const (
	ConfigOptionName      = "config"
	DefinitionsOptionName = "definitions"
	LogLevelOptionName    = "log-level"
)

func NewRootCommand(out io.Writer) *cobra.Command {
	opts := &regcmd.Options{}
	cmd := &cobra.Command{
		Use:           "regcodec",
		Short:         "Tool to work with register definitions and payloads",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.Init(cmd.ErrOrStderr())
		},
	}
	cmd.SetOut(out)
	cmd.AddCommand(config.NewCommand(opts))
	cmd.AddCommand(schema.NewCommand(opts))
	cmd.AddCommand(codec.NewEncodeCommand(opts))
	cmd.AddCommand(codec.NewDecodeCommand(opts))
	cmd.AddCommand(generate.NewCommand(opts))
	cmd.AddCommand(snapshot.NewCommand(opts))
	cmd.AddCommand(completion.NewCommand())
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, ConfigOptionName, "",
		fmt.Sprintf("Config file. Default %s", pkgconfig.DefaultConfigPath()))
	cmd.PersistentFlags().StringVar(&opts.Definitions, DefinitionsOptionName, "", "Register definition file")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, LogLevelOptionName, "", fmt.Sprintf("Log level. %s", log.HelpLevels))
	return cmd
}
