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
	"github.com/spf13/cobra"

	regcmd "jinr.ru/greenlab/go-regcodec/pkg/cmd"
)

const (
	DeviceOptionName   = "device"
	RegisterOptionName = "register"
	OpOptionName       = "op"
)

func NewCommand(opts *regcmd.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Save and show register payloads",
	}
	cmd.AddCommand(NewSaveCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	return cmd
}

// deviceName defaults to the name of the device in the definition file
func deviceName(opts *regcmd.Options, name string) (string, error) {
	if name != "" {
		return name, nil
	}
	dev, err := opts.Device()
	if err != nil {
		return "", err
	}
	return dev.Name, nil
}
