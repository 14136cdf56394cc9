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

/*

Worker is the sequence state of single goroutine. The worker is not safe for
concurrent use, each goroutine creates own worker with Generator.Worker and
keeps it for its lifetime.

The worker issues ids from the range [current, max) of the time unit. Once the
range is exhausted, it rolls over to next time unit allocated by the timeline.
*/
type Worker struct {
	gen     *Generator
	thread  int64
	node    int64
	current int64
	max     int64
	timeID  int64
}

func newWorker(gen *Generator) *Worker {
	w := &Worker{
		gen:     gen,
		thread:  gen.threads.acquire(gen.schema.maxThread),
		node:    gen.node,
		current: -1,
		max:     -1,
	}
	gen.observer.Spawn(w.thread)
	return w
}

// Thread returns ⟨𝒘⟩ identifier of the worker
func (w *Worker) Thread() int64 { return w.thread }

// Next returns next identifier, it is strictly greater than any identifier
// returned previously by this worker.
func (w *Worker) Next() ID {
	w.current++

	if w.current >= w.max {
		w.rollover()
	}

	return ID(w.current)
}

func (w *Worker) rollover() {
	g := w.gen
	w.timeID = g.timeline.next(g.now, w.timeID, w.thread, g.observer)
	w.current = int64(g.schema.Encode(w.timeID, w.node, w.thread, 0))
	w.max = int64(g.schema.Encode(w.timeID, w.node, w.thread, g.schema.maxSeq))
	g.observer.Rollover(w.thread)
}
