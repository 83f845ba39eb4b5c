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

package generator

import "fmt"

// ErrNameClash returned when two definitions map to the same Go identifier
type ErrNameClash struct {
	Name string
	What string
}

func (e ErrNameClash) Error() string {
	return fmt.Sprintf("generated name %s clashes with %s", e.Name, e.What)
}

// ErrInvalidName returned when a definition name does not map to an exported Go identifier
type ErrInvalidName struct {
	Name string
	What string
}

func (e ErrInvalidName) Error() string {
	return fmt.Sprintf("%s has no valid Go name (got %q)", e.What, e.Name)
}
