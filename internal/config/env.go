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
	"strconv"
	"time"

	"github.com/fogfish/snowball"
)

// FromEnv overlays SNOWBALL_* environment variables onto cfg.
// The node id also honors CONFIG_SNOWBALL_NODE_ID of the library.
func FromEnv(cfg *Config) {
	if v := os.Getenv(snowball.EnvNodeID); v != "" {
		cfg.NodeID = snowball.NodeFromEnv()
	}
	if v := os.Getenv("SNOWBALL_NODE_ID"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.NodeID = n
		}
	}
	if v := os.Getenv("SNOWBALL_NODE_BITS"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.NodeBits = n
		}
	}
	if v := os.Getenv("SNOWBALL_THREAD_BITS"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.ThreadBits = n
		}
	}
	if v := os.Getenv("SNOWBALL_SEQUENCE_BITS"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.SequenceBits = n
		}
	}
	if v := os.Getenv("SNOWBALL_EPOCH"); v != "" {
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			cfg.Epoch = t
		}
	}
	if v := os.Getenv("SNOWBALL_TIME_UNIT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.TimeUnit = d
		}
	}
	if v := os.Getenv("SNOWBALL_METRICS_JOB"); v != "" {
		cfg.Metrics.PushJob = v
	}
	if v := os.Getenv("SNOWBALL_METRICS_PUSH_ADDR"); v != "" {
		cfg.Metrics.PushAddress = v
	}
	if v := os.Getenv("SNOWBALL_METRICS_PUSH_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Metrics.PushInterval = d
		}
	}
}
