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
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"
)

// ID is unique 64-bit identifier
type ID int64

/*

Generator of identifiers for single node. The generator is safe for
concurrent use. It is either used through workers, one per goroutine, or
through NextID that borrows workers from internal pool.
*/
type Generator struct {
	schema   *Schema
	node     int64
	clock    func() time.Time
	observer Observer

	threads  *registry
	timeline *clockwork

	pool    chan *Worker
	spawned atomic.Int64
}

// Option of generator
type Option func(*Generator)

// WithSchema configures identity schema, Default is used otherwise
func WithSchema(s *Schema) Option {
	return func(g *Generator) { g.schema = s }
}

// WithClock configures wall clock, time.Now is used otherwise
func WithClock(clock func() time.Time) Option {
	return func(g *Generator) { g.clock = clock }
}

// WithObserver configures observer of internal events
func WithObserver(observer Observer) Option {
	return func(g *Generator) {
		if observer != nil {
			g.observer = observer
		}
	}
}

// maximum number of workers retained by NextID
const poolLimit = 1024

// New creates generator for the node. The node identifier is masked to the
// width of ⟨𝒏⟩ fraction, the overflow is silently truncated.
func New(node int64, opts ...Option) *Generator {
	g := &Generator{
		schema:   Default,
		clock:    time.Now,
		observer: silent{},
		threads:  &threads,
	}

	for _, opt := range opts {
		opt(g)
	}

	g.node = g.schema.MaskNode(node)
	g.timeline = g.schema.timeline
	g.pool = make(chan *Worker, min(g.schema.maxThread+1, poolLimit))
	return g
}

// Node returns ⟨𝒏⟩ identifier of the generator
func (g *Generator) Node() int64 { return g.node }

// Schema returns identity schema used by the generator
func (g *Generator) Schema() *Schema { return g.schema }

// Worker creates new worker, the worker is owned by the calling goroutine.
func (g *Generator) Worker() *Worker {
	return newWorker(g)
}

// NextID returns unique identifier. It borrows a worker from the pool, the
// generator spawns at most as many pooled workers as distinct ⟨𝒘⟩ values and
// blocks while all of them are busy. The registry of ⟨𝒘⟩ is process-wide,
// pooled workers still alias with workers of other generators once the width
// is exhausted; aliased workers stay unique because they share the timeline
// entry of their ⟨𝒘⟩.
func (g *Generator) NextID() ID {
	w := g.acquire()
	id := w.Next()
	g.pool <- w
	return id
}

func (g *Generator) acquire() *Worker {
	select {
	case w := <-g.pool:
		return w
	default:
	}

	if g.spawned.Add(1) <= int64(cap(g.pool)) {
		return newWorker(g)
	}

	return <-g.pool
}

func (g *Generator) now() int64 {
	return g.schema.Elapsed(g.clock())
}

/*******************************************************************************

Codecs

*******************************************************************************/

// String encodes identifier to lexicographically sortable string
func (id ID) String() string {
	return encode64(id)
}

// Bytes encodes identifier to 8 bytes, big-endian
func (id ID) Bytes() []byte {
	return binary.BigEndian.AppendUint64(make([]byte, 0, 8), uint64(id))
}

// FromBytes decodes identifier from 8 bytes, big-endian
func FromBytes(val []byte) (ID, error) {
	if len(val) != 8 {
		return 0, fmt.Errorf("malformed identifier: %v", val)
	}

	return ID(binary.BigEndian.Uint64(val)), nil
}

// FromString decodes identifier from lexicographically sortable string
func FromString(val string) (ID, error) {
	return decode64(val)
}

// MarshalJSON encodes identifier to lexicographically sortable JSON string
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(encode64(id))
}

// UnmarshalJSON decodes lexicographically sortable string to identifier
func (id *ID) UnmarshalJSON(b []byte) (err error) {
	var val string
	if err = json.Unmarshal(b, &val); err != nil {
		return
	}

	*id, err = decode64(val)
	return
}
