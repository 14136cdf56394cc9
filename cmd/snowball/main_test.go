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

package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/fogfish/it/v2"
	"github.com/fogfish/snowball"
	"github.com/fogfish/snowball/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func run(args ...string) (string, error) {
	out := &bytes.Buffer{}
	cmd := newRootCommand(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNext(t *testing.T) {
	out, err := run("next", "--node", "75", "-n", "3")
	lines := strings.Fields(out)

	ids := []int64{}
	for _, l := range lines {
		n, _ := strconv.ParseInt(l, 10, 64)
		ids = append(ids, n)
	}

	it.Then(t).Should(
		it.True(err == nil),
		it.Equal(len(ids), 3),
		it.True(ids[0] < ids[1] && ids[1] < ids[2]),
		it.Equal(snowball.Default.Node(snowball.ID(ids[0])), 75),
	)
}

func TestNextString(t *testing.T) {
	out, err := run("next", "--node", "75", "--format", "string")
	id, errID := snowball.FromString(strings.TrimSpace(out))

	it.Then(t).Should(
		it.True(err == nil),
		it.True(errID == nil),
		it.Equal(snowball.Default.Node(id), 75),
	)
}

func TestNextInvalidFormat(t *testing.T) {
	_, err := run("next", "--format", "xml")

	it.Then(t).Should(
		it.True(err != nil),
	)
}

func TestDecode(t *testing.T) {
	id := snowball.Default.Encode(1000, 75, 3, 7)
	out, err := run("decode", strconv.FormatInt(int64(id), 10), id.String())

	it.Then(t).Should(
		it.True(err == nil),
		it.Equal(strings.Count(out, "node=75\tthread=3\tseq=7"), 2),
		it.True(strings.Contains(out, "time=2013-04-02T00:00:00.999Z")),
	)
}

func TestDecodeInvalid(t *testing.T) {
	_, err := run("decode", "not-an-id")

	it.Then(t).Should(
		it.True(err != nil),
	)
}

func TestBench(t *testing.T) {
	out, err := run("bench", "--node", "75", "--workers", "2", "--verify", "234", "--duration", "20ms")

	it.Then(t).Should(
		it.True(err == nil),
		it.True(strings.Contains(out, "VERIFY: 468 ids by 2 workers")),
		it.True(strings.Contains(out, "THROUGHPUT:")),
	)
}

func TestInvalidSchema(t *testing.T) {
	t.Setenv("SNOWBALL_NODE_BITS", "22")
	_, err := run("next")

	it.Then(t).Should(
		it.True(err != nil),
	)
}

func TestBenchMetricsMaskedNode(t *testing.T) {
	_, err := run("bench", "--node", "1101", "--workers", "1", "--duration", "5ms")

	it.Then(t).Should(
		it.True(err == nil),
		it.True(testutil.ToFloat64(metrics.WorkerCounter.WithLabelValues("77")) >= 1.0),
		it.Equal(testutil.ToFloat64(metrics.WorkerCounter.WithLabelValues("1101")), 0.0),
	)
}
