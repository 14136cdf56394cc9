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

import (
	"sync"
	"time"
)

// timelines is process-wide registry of timelines. Time units are comparable
// only within the same epoch, unit and layout, each such scale owns a timeline.
var timelines sync.Map

type scale struct {
	epoch                         int64
	unit                          time.Duration
	nodeBits, threadBits, seqBits uint64
}

func timelineOf(s *Schema) *clockwork {
	key := scale{
		epoch:      s.epoch.UnixNano(),
		unit:       s.unit,
		nodeBits:   s.nodeBits,
		threadBits: s.threadBits,
		seqBits:    s.seqBits,
	}

	c, _ := timelines.LoadOrStore(key, &clockwork{})
	return c.(*clockwork)
}

// clockwork maps worker identifier to its last time unit. Entries are created
// lazily and mutated with compare-and-swap only.
type clockwork struct {
	last sync.Map
}

// next allocates time unit for the worker. The unit is strictly greater than
// both the current one and the last one registered for the worker. Each retry
// observes a larger registered value, the loop converges.
func (c *clockwork) next(now func() int64, current, thread int64, observer Observer) int64 {
	c.last.LoadOrStore(thread, int64(0))

	for {
		val, _ := c.last.Load(thread)
		last := val.(int64)

		t := now()
		if t <= current || t <= last {
			observer.Stall(thread)
		}
		if t <= current {
			t = current + 1
		}
		if t <= last {
			t = last + 1
		}

		if c.last.CompareAndSwap(thread, last, t) {
			return t
		}
		observer.Conflict(thread)
	}
}
