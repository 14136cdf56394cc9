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

// Package bench measures throughput of generators and verifies uniqueness and
// ordering of identifiers minted by concurrent workers.
package bench

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/fagongzi/log"
	"github.com/fogfish/snowball"
	"golang.org/x/sync/errgroup"
)

// Report of single run
type Report struct {
	Workers int
	Count   int64
	Elapsed time.Duration
}

// Rate returns ids per second
func (r Report) Rate() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Count) / r.Elapsed.Seconds()
}

func (r Report) String() string {
	return fmt.Sprintf("%d ids by %d workers in %v (%.0f ids / second)", r.Count, r.Workers, r.Elapsed, r.Rate())
}

// Throughput mints ids by workers until the duration elapses or the context
// is canceled.
func Throughput(ctx context.Context, gen *snowball.Generator, workers int, d time.Duration) (Report, error) {
	if workers <= 0 {
		return Report{}, fmt.Errorf("invalid number of workers %d", workers)
	}

	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	log.Debugf("bench: throughput of %d workers for %v", workers, d)

	var count atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	start := time.Now()

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			w := gen.Worker()
			n := int64(0)
			for {
				// context is checked once per batch of ids
				for k := 0; k < 1024; k++ {
					w.Next()
				}
				n += 1024

				if ctx.Err() != nil {
					count.Add(n)
					return nil
				}
			}
		})
	}

	err := g.Wait()
	return Report{Workers: workers, Count: count.Load(), Elapsed: time.Since(start)}, err
}

// Verify mints n ids by each worker, it fails if any worker produced
// non-increasing sequence or if any id is produced twice.
func Verify(ctx context.Context, gen *snowball.Generator, workers, n int) (Report, error) {
	if workers <= 0 || n <= 0 {
		return Report{}, fmt.Errorf("invalid workload %d x %d", workers, n)
	}

	log.Debugf("bench: verify %d workers x %d ids", workers, n)

	seq := make([][]snowball.ID, workers)
	g, ctx := errgroup.WithContext(ctx)
	start := time.Now()

	for i := 0; i < workers; i++ {
		i := i
		g.Go(func() error {
			w := gen.Worker()
			ids := make([]snowball.ID, n)
			for k := range ids {
				ids[k] = w.Next()
				if k > 0 && ids[k] <= ids[k-1] {
					return fmt.Errorf("worker %d: id %d follows %d", w.Thread(), ids[k], ids[k-1])
				}
			}
			seq[i] = ids
			return ctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	elapsed := time.Since(start)

	all := make([]snowball.ID, 0, workers*n)
	for _, ids := range seq {
		all = append(all, ids...)
	}
	slices.Sort(all)

	for i := 1; i < len(all); i++ {
		if all[i] == all[i-1] {
			return Report{}, fmt.Errorf("duplicate id %d (%s)", all[i], all[i])
		}
	}

	return Report{Workers: workers, Count: int64(len(all)), Elapsed: elapsed}, nil
}
