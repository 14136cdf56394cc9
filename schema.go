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
	"fmt"
	"time"
)

// TimeBits is width of ⟨𝒕⟩ fraction
const TimeBits = 41

// Epoch is the default zero point of ⟨𝒕⟩ fraction, 2013-04-01T23:59:59.999Z
var Epoch = time.Date(2013, time.April, 1, 23, 59, 59, 999000000, time.UTC)

/*

Schema is the bit layout of identifier

     41 bit        nodeBits  threadBits  seqBits
  |-----------------|--------|------|----|
          ⟨𝒕⟩           ⟨𝒏⟩      ⟨𝒘⟩    ⟨𝒔⟩

The schema is immutable once created, it is shared by generators.
*/
type Schema struct {
	nodeBits, threadBits, seqBits     uint64
	threadShift, nodeShift, timeShift uint64
	maxNode, maxThread, maxSeq        int64

	epoch time.Time
	unit  time.Duration

	// last time unit of each worker, shared by schemas of the same scale
	timeline *clockwork
}

// SchemaOption of identity schema
type SchemaOption func(*Schema)

// WithNodeBits defines width of ⟨𝒏⟩ fraction
func WithNodeBits(n uint64) SchemaOption {
	return func(s *Schema) { s.nodeBits = n }
}

// WithThreadBits defines width of ⟨𝒘⟩ fraction
func WithThreadBits(n uint64) SchemaOption {
	return func(s *Schema) { s.threadBits = n }
}

// WithSequenceBits defines width of ⟨𝒔⟩ fraction
func WithSequenceBits(n uint64) SchemaOption {
	return func(s *Schema) { s.seqBits = n }
}

// WithEpoch defines zero point of ⟨𝒕⟩ fraction
func WithEpoch(t time.Time) SchemaOption {
	return func(s *Schema) { s.epoch = t }
}

// WithTimeUnit defines resolution of ⟨𝒕⟩ fraction
func WithTimeUnit(d time.Duration) SchemaOption {
	return func(s *Schema) { s.unit = d }
}

// Default schema: 10 bits of node, 8 bits of worker and 4 bits of sequence,
// ⟨𝒕⟩ is milliseconds since Epoch.
var Default = MustSchema()

// NewSchema creates identity schema, fields widths must fit into 63 bits
func NewSchema(opts ...SchemaOption) (*Schema, error) {
	s := &Schema{
		nodeBits:   10,
		threadBits: 8,
		seqBits:    4,
		epoch:      Epoch,
		unit:       time.Millisecond,
	}

	for _, opt := range opts {
		opt(s)
	}

	if total := TimeBits + s.nodeBits + s.threadBits + s.seqBits; total >= 64 {
		return nil, fmt.Errorf("schema does not fit 64 bits: %d time + %d node + %d thread + %d sequence = %d",
			TimeBits, s.nodeBits, s.threadBits, s.seqBits, total)
	}

	if s.unit <= 0 {
		return nil, fmt.Errorf("invalid time unit %v", s.unit)
	}

	if t := s.Elapsed(time.Now()); t < 0 || t >= 1<<TimeBits {
		return nil, fmt.Errorf("time since %v in units of %v does not fit %d bits: %d",
			s.epoch, s.unit, TimeBits, t)
	}

	s.maxNode = -1 ^ (-1 << s.nodeBits)
	s.maxThread = -1 ^ (-1 << s.threadBits)
	s.maxSeq = -1 ^ (-1 << s.seqBits)

	s.threadShift = s.seqBits
	s.nodeShift = s.threadBits + s.threadShift
	s.timeShift = s.nodeBits + s.nodeShift

	s.timeline = timelineOf(s)
	return s, nil
}

// MustSchema is NewSchema that panics on invalid layout
func MustSchema(opts ...SchemaOption) *Schema {
	s, err := NewSchema(opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Encode packs fractions into identifier. Fractions are expected to fit
// into their fields.
func (s *Schema) Encode(t, node, thread, seq int64) ID {
	return ID((t << s.timeShift) | (node << s.nodeShift) | (thread << s.threadShift) | seq)
}

// MaskNode truncates node identifier to the width of ⟨𝒏⟩ fraction
func (s *Schema) MaskNode(node int64) int64 {
	return node & s.maxNode
}

// Elapsed converts wall clock to ⟨𝒕⟩ units
func (s *Schema) Elapsed(t time.Time) int64 {
	return int64(t.Sub(s.epoch) / s.unit)
}

// MaxNode is the largest ⟨𝒏⟩
func (s *Schema) MaxNode() int64 { return s.maxNode }

// MaxThread is the largest ⟨𝒘⟩
func (s *Schema) MaxThread() int64 { return s.maxThread }

// MaxSeq is the largest ⟨𝒔⟩
func (s *Schema) MaxSeq() int64 { return s.maxSeq }

/*******************************************************************************

Lenses of identifier

*******************************************************************************/

// Time returns ⟨𝒕⟩ fraction, time units since the epoch
func (s *Schema) Time(id ID) int64 {
	return int64(id) >> s.timeShift
}

// Node returns ⟨𝒏⟩ fraction
func (s *Schema) Node(id ID) int64 {
	return int64(id) >> s.nodeShift & s.maxNode
}

// Thread returns ⟨𝒘⟩ fraction
func (s *Schema) Thread(id ID) int64 {
	return int64(id) >> s.threadShift & s.maxThread
}

// Seq returns ⟨𝒔⟩ fraction
func (s *Schema) Seq(id ID) int64 {
	return int64(id) & s.maxSeq
}

// EpochT converts ⟨𝒕⟩ fraction of identifier to wall clock
func (s *Schema) EpochT(id ID) time.Time {
	return s.epoch.Add(time.Duration(s.Time(id)) * s.unit)
}

// FromT returns the lowest identifier of time unit. Use it to build range
// queries over identifiers.
func (s *Schema) FromT(t time.Time) ID {
	return s.Encode(s.Elapsed(t), 0, 0, 0)
}
