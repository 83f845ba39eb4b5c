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

package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jinr.ru/greenlab/go-regcodec/pkg/codec"
	"jinr.ru/greenlab/go-regcodec/pkg/register"
)

func statusSchema() *register.Schema {
	return &register.Schema{
		Name:      "R",
		ID:        1,
		Direction: register.Read,
		Fields: []register.Field{
			{Name: "status", Kind: codec.Uint8, Access: register.Read},
			{Name: "counter", Kind: codec.Int32, Access: register.Read},
			{Name: "flags", Kind: codec.Uint8, Access: register.Read},
		},
	}
}

func commandSchema() *register.Schema {
	return &register.Schema{
		Name:      "W",
		ID:        2,
		Direction: register.Write,
		Fields: []register.Field{
			{Name: "command", Kind: codec.Uint16, Access: register.Write},
			{Name: "value", Kind: codec.Int8, Access: register.Write},
		},
	}
}

func openStore(t *testing.T, devices ...string) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "snapshots.db"), devices...)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoad(t *testing.T) {
	s := openStore(t)
	saved := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return saved }

	g := register.New(statusSchema())
	require.NoError(t, g.SetUint("status", 0x07))
	require.NoError(t, g.SetInt("counter", -5))
	require.NoError(t, g.SetUint("flags", 0x21))

	rec, err := s.Save("ng", g, register.Read)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x07, 0xFF, 0xFF, 0xFF, 0xFB, 0x21}, rec.Payload)

	loaded, stored, err := s.Load("ng", statusSchema())
	require.NoError(t, err)
	assert.Equal(t, g.Values(), loaded.Values())
	assert.Equal(t, "R", stored.Register)
	assert.Equal(t, uint8(1), stored.ID)
	assert.Equal(t, register.Read, stored.Direction)
	assert.True(t, saved.Equal(stored.Saved))
}

func TestSaveOverwrites(t *testing.T) {
	s := openStore(t, "ng")
	g := register.New(commandSchema())
	require.NoError(t, g.SetUint("command", 1))
	_, err := s.Save("ng", g, register.Write)
	require.NoError(t, err)

	require.NoError(t, g.SetUint("command", 2))
	_, err = s.Save("ng", g, register.Write)
	require.NoError(t, err)

	loaded, rec, err := s.Load("ng", commandSchema())
	require.NoError(t, err)
	assert.Equal(t, register.Write, rec.Direction)
	v, err := loaded.Value("command")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), v.Uint())

	records, err := s.List("ng")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSaveRejectsDirection(t *testing.T) {
	s := openStore(t, "ng")
	_, err := s.Save("ng", register.New(statusSchema()), register.Write)
	assert.True(t, register.IsDirectionMismatch(err))

	records, err := s.List("ng")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestList(t *testing.T) {
	s := openStore(t)
	_, err := s.Save("ng", register.New(commandSchema()), register.Write)
	require.NoError(t, err)
	_, err = s.Save("ng", register.New(statusSchema()), register.Read)
	require.NoError(t, err)

	records, err := s.List("ng")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "R", records[0].Register)
	assert.Equal(t, "W", records[1].Register)
	assert.Len(t, records[1].Payload, 3)
}

func TestLoadErrors(t *testing.T) {
	s := openStore(t, "empty")

	_, _, err := s.Load("missing", statusSchema())
	var bucketErr ErrBucketNotFound
	require.ErrorAs(t, err, &bucketErr)
	assert.Equal(t, "dev_missing", bucketErr.Bucket)

	_, err = s.List("missing")
	assert.ErrorAs(t, err, &bucketErr)

	_, _, err = s.Load("empty", statusSchema())
	var notFound ErrRecordNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, uint8(1), notFound.ID)

	_, err = s.Save("empty", register.New(statusSchema()), register.Read)
	require.NoError(t, err)
	other := commandSchema()
	other.ID = 1
	_, _, err = s.Load("empty", other)
	var mismatch ErrRecordMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "R", mismatch.Stored)
	assert.Equal(t, "W", mismatch.Want)
}

func TestLoadRejectsPayloadSize(t *testing.T) {
	s := openStore(t, "ng")
	_, err := s.Save("ng", register.New(statusSchema()), register.Read)
	require.NoError(t, err)

	// same name and number, one field less: the stored payload is too long
	shorter := statusSchema()
	shorter.Fields = shorter.Fields[:2]
	_, _, err = s.Load("ng", shorter)
	var mismatch ErrRecordMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 6, mismatch.StoredSize)
	assert.Equal(t, 5, mismatch.WantSize)
	assert.EqualError(t, err, "snapshot of register 1 has 6 bytes, R takes 5")

	longer := statusSchema()
	longer.Fields = append(longer.Fields, register.Field{Name: "extra", Kind: codec.Uint8, Access: register.Read})
	_, _, err = s.Load("ng", longer)
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 7, mismatch.WantSize)

	_, _, err = s.Load("ng", statusSchema())
	assert.NoError(t, err)
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots.db")
	s, err := Open(path)
	require.NoError(t, err)
	g := register.New(statusSchema())
	require.NoError(t, g.SetUint("flags", 0x80))
	_, err = s.Save("ng", g, register.Read)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	loaded, _, err := s.Load("ng", statusSchema())
	require.NoError(t, err)
	assert.Equal(t, g.Values(), loaded.Values())
}

func TestRecordEncoding(t *testing.T) {
	rec := &Record{Register: "R", ID: 1, Direction: register.Read, Payload: []byte{1, 2}, Saved: time.Unix(0, 5).UTC()}
	data, err := encodeRecord(rec)
	require.NoError(t, err)
	decoded, err := decodeRecord(data)
	require.NoError(t, err)
	assert.Equal(t, rec.Register, decoded.Register)
	assert.Equal(t, rec.Payload, decoded.Payload)
	assert.True(t, rec.Saved.Equal(decoded.Saved))

	_, err = decodeRecord([]byte{0xFF})
	assert.Error(t, err)
}
