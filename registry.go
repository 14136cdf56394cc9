/*

  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved

  Licensed under the Apache License, Version 2.0 (the "License");
  you may not use this file except in compliance with the License.
  You may obtain a copy of the License at

      http://www.apache.org/licenses/LICENSE-2.0

  Unless required by applicable law or agreed to in writing, software
  distributed under the License is distributed on an "AS IS" BASIS,
  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
  See the License for the specific language governing permissions and
  limitations under the License.

*/

package snowball

import "sync/atomic"

// threads is process-wide registry of worker identifiers
var threads registry

// registry assigns a small integer to each worker. The counter is never
// range checked, the drawn value is masked by the schema, workers alias once
// the counter exceeds the width of ⟨𝒘⟩ fraction.
type registry struct {
	seq atomic.Int64
}

func (r *registry) acquire(mask int64) int64 {
	return (r.seq.Add(1) - 1) & mask
}
