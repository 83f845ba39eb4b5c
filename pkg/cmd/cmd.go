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
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"jinr.ru/greenlab/go-regcodec/pkg/config"
	"jinr.ru/greenlab/go-regcodec/pkg/log"
	"jinr.ru/greenlab/go-regcodec/pkg/parser"
	"jinr.ru/greenlab/go-regcodec/pkg/register"
	"jinr.ru/greenlab/go-regcodec/pkg/store"
)

// Options are the global command line options shared by all commands
type Options struct {
	ConfigPath  string
	Definitions string
	LogLevel    string
	Config      *config.Config

	device *register.Device
}

// Init loads the config file, applies the command line overrides and sets up logging
func (o *Options) Init(logOut io.Writer) error {
	cfg := config.NewDefaultConfig(o.ConfigPath)
	if err := cfg.Load(); err != nil {
		return err
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	if o.Definitions != "" {
		cfg.Definitions = o.Definitions
	}
	o.Config = cfg
	return log.Init(logOut, cfg.LogLevel)
}

// Device loads the definition file once
func (o *Options) Device() (*register.Device, error) {
	if o.device != nil {
		return o.device, nil
	}
	dev, err := parser.LoadFile(o.Config.Definitions)
	if err != nil {
		return nil, err
	}
	o.device = dev
	return dev, nil
}

// Schema returns the named register of the loaded device
func (o *Options) Schema(name string) (*register.Schema, error) {
	dev, err := o.Device()
	if err != nil {
		return nil, err
	}
	s := dev.Register(name)
	if s == nil {
		return nil, fmt.Errorf("device %s has no register %s", dev.Name, name)
	}
	return s, nil
}

// OpenStore opens the snapshot database with a bucket for the device
func (o *Options) OpenStore(device string) (*store.Store, error) {
	return store.Open(o.Config.DBPath, device)
}

// ParseOp converts the --op flag value to the direction of the operation pair
func ParseOp(op string) (register.Direction, error) {
	switch strings.ToLower(op) {
	case "read", "r":
		return register.Read, nil
	case "write", "w":
		return register.Write, nil
	default:
		return 0, fmt.Errorf("wrong operation %q, must be read or write", op)
	}
}

// ParseHex decodes a payload given as hex digits, optionally split into
// several arguments or separated by spaces or colons, with an optional 0x prefix
func ParseHex(args ...string) ([]byte, error) {
	s := strings.Join(args, "")
	s = strings.NewReplacer(" ", "", ":", "", "\t", "").Replace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return hex.DecodeString(s)
}

// FormatHex prints a payload as space separated upper case bytes
func FormatHex(b []byte) string {
	return fmt.Sprintf("% X", b)
}

// PrintValues writes one "name = value" line per field
func PrintValues(out io.Writer, g *register.Group) {
	for _, fv := range g.Values() {
		fmt.Fprintf(out, "%s = %s\n", fv.Name, fv.Value)
	}
}
