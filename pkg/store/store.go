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
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"jinr.ru/greenlab/go-regcodec/pkg/log"
	"jinr.ru/greenlab/go-regcodec/pkg/register"
)

const (
	BucketNamePrefix = "dev_"
)

// Store keeps the last saved payload of each register, one bucket per device
type Store struct {
	DB  *bbolt.DB
	now func() time.Time
}

// Open opens the snapshot database at path and creates buckets for the given devices
func Open(path string, devices ...string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	if err = db.Update(func(tx *bbolt.Tx) error {
		for _, device := range devices {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucketName(device))); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{
		DB:  db,
		now: time.Now,
	}, nil
}

func bucketName(deviceName string) string {
	return fmt.Sprintf("%s%s", BucketNamePrefix, deviceName)
}

func (s *Store) Close() error {
	return s.DB.Close()
}

// Save serializes the group with the dir operation pair and stores the payload under the register ID
func (s *Store) Save(device string, g *register.Group, dir register.Direction) (*Record, error) {
	schema := g.Schema()
	payload := make([]byte, g.Size())
	if _, err := g.SerializeAs(dir, payload); err != nil {
		return nil, err
	}
	if dir != register.Write {
		dir = register.Read
	}
	rec := &Record{
		Register:  schema.Name,
		ID:        schema.ID,
		Direction: dir,
		Payload:   payload,
		Saved:     s.now().UTC(),
	}
	data, err := encodeRecord(rec)
	if err != nil {
		return nil, err
	}

	log.Debug("Saving register %s (%d) of device %s: % X", rec.Register, rec.ID, device, payload)
	if err := s.DB.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucketName(device)))
		if err != nil {
			return err
		}
		return b.Put([]byte{rec.ID}, data)
	}); err != nil {
		return nil, err
	}
	return rec, nil
}

// Load restores the saved register of the schema into a new group
func (s *Store) Load(device string, schema *register.Schema) (*register.Group, *Record, error) {
	log.Debug("Loading register %s (%d) of device %s", schema.Name, schema.ID, device)
	var rec *Record
	if err := s.DB.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName(device)))
		if b == nil {
			return ErrBucketNotFound{Bucket: bucketName(device)}
		}
		data := b.Get([]byte{schema.ID})
		if data == nil {
			return ErrRecordNotFound{Device: device, ID: schema.ID}
		}
		var err error
		rec, err = decodeRecord(data)
		return err
	}); err != nil {
		return nil, nil, err
	}
	if rec.Register != schema.Name || len(rec.Payload) != schema.Size() {
		return nil, nil, ErrRecordMismatch{
			ID:         rec.ID,
			Stored:     rec.Register,
			Want:       schema.Name,
			StoredSize: len(rec.Payload),
			WantSize:   schema.Size(),
		}
	}

	g := register.New(schema)
	if _, err := g.DeserializeAs(rec.Direction, rec.Payload); err != nil {
		return nil, nil, err
	}
	return g, rec, nil
}

// List returns the records of the device ordered by register ID
func (s *Store) List(device string) ([]*Record, error) {
	var records []*Record
	if err := s.DB.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName(device)))
		if b == nil {
			return ErrBucketNotFound{Bucket: bucketName(device)}
		}
		return b.ForEach(func(k, v []byte) error {
			rec, err := decodeRecord(v)
			if err != nil {
				return fmt.Errorf("register %d: %w", k[0], err)
			}
			records = append(records, rec)
			return nil
		})
	}); err != nil {
		return nil, err
	}
	return records, nil
}
