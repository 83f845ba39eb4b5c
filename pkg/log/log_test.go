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

package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Init(&out, "warning"))
	defer func() { _ = SetLevel("info") }()

	Debug("debug %d", 1)
	Info("info %d", 2)
	Warning("warning %d", 3)
	Error("error %d", 4)

	text := out.String()
	assert.NotContains(t, text, "debug 1")
	assert.NotContains(t, text, "info 2")
	assert.Contains(t, text, LogPrefix)
	assert.Contains(t, text, WarningPrefix+"warning 3")
	assert.Contains(t, text, ErrorPrefix+"error 4")
	assert.Equal(t, WarningLevel, Level())
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, DebugLevel, level)
	assert.Equal(t, "debug", level.String())

	_, err = ParseLevel("verbose")
	var levelErr ErrWrongLogLevel
	require.ErrorAs(t, err, &levelErr)
	assert.Equal(t, "verbose", levelErr.Level)
	assert.Error(t, SetLevel("verbose"))
}
