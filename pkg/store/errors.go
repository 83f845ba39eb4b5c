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

import "fmt"

type ErrBucketNotFound struct {
	Bucket string
}

func (e ErrBucketNotFound) Error() string {
	return fmt.Sprintf("bucket not found: %s", e.Bucket)
}

type ErrRecordNotFound struct {
	Device string
	ID     uint8
}

func (e ErrRecordNotFound) Error() string {
	return fmt.Sprintf("no snapshot of register %d for device %s", e.ID, e.Device)
}

// ErrRecordMismatch returned when a stored record was saved for another register schema,
// either under another name or with another payload size
type ErrRecordMismatch struct {
	ID         uint8
	Stored     string
	Want       string
	StoredSize int
	WantSize   int
}

func (e ErrRecordMismatch) Error() string {
	if e.Stored != e.Want {
		return fmt.Sprintf("snapshot of register %d belongs to %s, not %s", e.ID, e.Stored, e.Want)
	}
	return fmt.Sprintf("snapshot of register %d has %d bytes, %s takes %d", e.ID, e.StoredSize, e.Want, e.WantSize)
}
