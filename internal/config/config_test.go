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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fogfish/it/v2"
	"github.com/fogfish/snowball"
)

func TestDefaultSchema(t *testing.T) {
	s, err := Default().Schema()

	it.Then(t).Should(
		it.True(err == nil),
		it.Equal(s.MaxNode(), snowball.Default.MaxNode()),
		it.Equal(s.MaxThread(), snowball.Default.MaxThread()),
		it.Equal(s.MaxSeq(), snowball.Default.MaxSeq()),
	)
}

func TestSchemaOverflow(t *testing.T) {
	cfg := Default()
	cfg.NodeBits = 20

	_, err := cfg.Schema()

	it.Then(t).Should(
		it.True(err != nil),
	)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("SNOWBALL_NODE_ID", "75")
	t.Setenv("SNOWBALL_NODE_BITS", "12")
	t.Setenv("SNOWBALL_THREAD_BITS", "6")
	t.Setenv("SNOWBALL_SEQUENCE_BITS", "bad")
	t.Setenv("SNOWBALL_EPOCH", "2020-01-01T00:00:00Z")
	t.Setenv("SNOWBALL_TIME_UNIT", "10ms")
	t.Setenv("SNOWBALL_METRICS_PUSH_ADDR", "http://127.0.0.1:9091")
	t.Setenv("SNOWBALL_METRICS_PUSH_INTERVAL", "15s")

	cfg := Default()
	FromEnv(&cfg)

	it.Then(t).Should(
		it.Equal(cfg.NodeID, 75),
		it.Equal(cfg.NodeBits, 12),
		it.Equal(cfg.ThreadBits, 6),
		it.Equal(cfg.SequenceBits, 4),
		it.True(cfg.Epoch.Equal(time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC))),
		it.Equal(cfg.TimeUnit, 10*time.Millisecond),
		it.Equal(cfg.Metrics.PushJob, "snowball"),
		it.Equal(cfg.Metrics.PushAddress, "http://127.0.0.1:9091"),
		it.Equal(cfg.Metrics.PushInterval, 15*time.Second),
	)
}

func TestFromEnvLibraryNode(t *testing.T) {
	t.Setenv(snowball.EnvNodeID, "abc@go")

	cfg := Default()
	FromEnv(&cfg)

	it.Then(t).Should(
		it.Equal(cfg.NodeID, 0x53051caf),
	)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snowball.json")
	err := os.WriteFile(path, []byte(`{"nodeId": 42, "sequenceBits": 6}`), 0o600)

	cfg := Default()
	errLoad := Load(path, &cfg)

	it.Then(t).Should(
		it.True(err == nil),
		it.True(errLoad == nil),
		it.Equal(cfg.NodeID, 42),
		it.Equal(cfg.SequenceBits, 6),
		it.Equal(cfg.ThreadBits, 8),
	)
}

func TestLoadMissing(t *testing.T) {
	cfg := Default()
	err := Load(filepath.Join(t.TempDir(), "none.json"), &cfg)

	it.Then(t).Should(
		it.True(err != nil),
	)
}

func TestLoadTimeUnit(t *testing.T) {
	dir := t.TempDir()
	str := filepath.Join(dir, "str.json")
	num := filepath.Join(dir, "num.json")
	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(str, []byte(`{"timeUnit": "10ms"}`), 0o600)
	os.WriteFile(num, []byte(`{"timeUnit": 1000000, "nodeId": 7}`), 0o600)
	os.WriteFile(bad, []byte(`{"timeUnit": "ten"}`), 0o600)

	a, b, c := Default(), Default(), Default()
	errA := Load(str, &a)
	errB := Load(num, &b)
	errC := Load(bad, &c)

	it.Then(t).Should(
		it.True(errA == nil),
		it.Equal(a.TimeUnit, 10*time.Millisecond),
		it.Equal(a.NodeBits, 10),
		it.True(errB == nil),
		it.Equal(b.TimeUnit, time.Millisecond),
		it.Equal(b.NodeID, 7),
		it.True(errC != nil),
	)
}
