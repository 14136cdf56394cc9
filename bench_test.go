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

package snowball_test

import (
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/fogfish/snowball"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/sony/sonyflake"
)

func BenchmarkWorker(b *testing.B) {
	w := snowball.New(75).Worker()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Next()
	}
}

func BenchmarkWorkerParallel(b *testing.B) {
	gen := snowball.New(75)

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		w := gen.Worker()
		for pb.Next() {
			w.Next()
		}
	})
}

func BenchmarkNextID(b *testing.B) {
	gen := snowball.New(75)

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			gen.NextID()
		}
	})
}

func BenchmarkString(b *testing.B) {
	id := snowball.New(75).NextID()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = id.String()
	}
}

/*******************************************************************************

Baseline of other identity schemas

*******************************************************************************/

func BenchmarkSonyflake(b *testing.B) {
	sf := sonyflake.NewSonyflake(sonyflake.Settings{
		StartTime: time.Now(),
		MachineID: func() (uint16, error) { return 75, nil },
	})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sf.NextID(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSnowflake(b *testing.B) {
	node, err := snowflake.NewNode(75)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		node.Generate()
	}
}

func BenchmarkULID(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ulid.Make()
	}
}

func BenchmarkUUID(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		uuid.New()
	}
}
