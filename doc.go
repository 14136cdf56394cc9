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

/*

Package snowball generates compact, roughly time-ordered, unique 64-bit
identifiers without coordination between the processes that mint them.
Allocation is lock-free and runs above 100K ids per second on a single node.

Key features

↣ IDs allocation does not require centralized authority or coordination with
other nodes.

↣ IDs are strictly increasing for each worker and unique across all workers
of the process.

↣ IDs are roughly sortable by allocation time.

↣ IDs fit into a signed 64-bit integer, the native primary key type of most
databases.

Identity Schema

The identifier is the tuple ⟨𝒕, 𝒏, 𝒘, 𝒔⟩ packed high-to-low into 63 bits

     41 bit            10 bit   8 bit  4 bit
  |-----------------|--------|------|----|
          ⟨𝒕⟩           ⟨𝒏⟩      ⟨𝒘⟩    ⟨𝒔⟩

↣ ⟨𝒕⟩ is 41-bit time unit (milliseconds by default) elapsed since the epoch
2013-04-01T23:59:59.999Z. It covers about 69 years.

↣ ⟨𝒏⟩ is node identifier. The application assigns it to each process of the
fleet out-of-band. The value is masked to the width of the field.

↣ ⟨𝒘⟩ is worker (thread) identifier. It is drawn from a process-wide counter
when a worker is created and masked to the width of the field.

↣ ⟨𝒔⟩ is sequence of ids issued by the worker within single time unit.

The narrow sequence is exchanged for wide worker identifier: up to 256
goroutines mint ids concurrently without contending on a shared counter.
Widths and epoch are configurable, see NewSchema.

Workers

Each goroutine owns a Worker. The worker keeps its current and maximal ids,
and consults the shared timeline only when its sequence is exhausted. The
timeline is a lock-free map worker → last time unit, it guarantees the time
unit of a worker always moves forward, even if the wall clock stalls or goes
backwards.

  gen := snowball.New(75)

  w := gen.Worker()
  a := w.Next()
  b := w.Next() // a < b

Generator.NextID borrows a worker from a bounded pool for callers that do not
want to manage workers.

Capacity

At most 2^threadBits workers get distinct identifiers. Workers created beyond
that share identifiers with earlier ones, they remain unique but contend on
the same timeline entry. Node identifiers are not validated, collisions across
the fleet are caller's responsibility. Generator state is not persisted; a
process restarted within the same time unit may repeat identifiers.

*/
package snowball
