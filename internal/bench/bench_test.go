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

package bench

import (
	"context"
	"testing"
	"time"

	"github.com/fogfish/it/v2"
	"github.com/fogfish/snowball"
)

func TestVerify(t *testing.T) {
	r, err := Verify(context.Background(), snowball.New(75), 2, 234)

	it.Then(t).Should(
		it.True(err == nil),
		it.Equal(r.Count, 468),
		it.Equal(r.Workers, 2),
	)
}

func TestVerifyInvalid(t *testing.T) {
	_, err := Verify(context.Background(), snowball.New(75), 0, 234)

	it.Then(t).Should(
		it.True(err != nil),
	)
}

func TestThroughput(t *testing.T) {
	r, err := Throughput(context.Background(), snowball.New(75), 4, 50*time.Millisecond)

	it.Then(t).Should(
		it.True(err == nil),
		it.True(r.Count > 0),
		it.True(r.Elapsed >= 50*time.Millisecond),
		it.True(r.Rate() > 0),
	)
}

func TestThroughputCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := Throughput(ctx, snowball.New(75), 1, time.Minute)

	it.Then(t).Should(
		it.True(err == nil),
		it.True(r.Elapsed < time.Minute),
	)
}

func TestReportRate(t *testing.T) {
	it.Then(t).Should(
		it.Equal(Report{Count: 100, Elapsed: time.Second}.Rate(), 100.0),
		it.Equal(Report{Count: 100}.Rate(), 0.0),
	)
}
