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

// Package config holds declarative configuration of snowball command line
// tools. Values are resolved from built-in defaults, an optional JSON file and
// SNOWBALL_* environment variables, in that order.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fogfish/snowball"
	"github.com/fogfish/snowball/metrics"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	NodeID       int64                `json:"nodeId"`
	NodeBits     uint64               `json:"nodeBits"`
	ThreadBits   uint64               `json:"threadBits"`
	SequenceBits uint64               `json:"sequenceBits"`
	Epoch        time.Time            `json:"epoch"`
	TimeUnit     time.Duration        `json:"timeUnit"` // "10ms" or nanoseconds
	Metrics      metrics.MetricConfig `json:"metrics"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		NodeBits:     10,
		ThreadBits:   8,
		SequenceBits: 4,
		Epoch:        snowball.Epoch,
		TimeUnit:     time.Millisecond,
		Metrics: metrics.MetricConfig{
			PushJob: "snowball",
		},
	}
}

// Load overlays JSON file onto cfg, missing fields keep their values.
func Load(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	return nil
}

// UnmarshalJSON decodes config, time unit is either a duration string
// accepted by time.ParseDuration or an integer number of nanoseconds.
func (cfg *Config) UnmarshalJSON(b []byte) error {
	type plain Config
	aux := struct {
		*plain
		TimeUnit json.RawMessage `json:"timeUnit"`
	}{plain: (*plain)(cfg)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	if len(aux.TimeUnit) == 0 || string(aux.TimeUnit) == "null" {
		return nil
	}

	var val string
	if err := json.Unmarshal(aux.TimeUnit, &val); err == nil {
		d, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid timeUnit: %w", err)
		}
		cfg.TimeUnit = d
		return nil
	}

	var ns int64
	if err := json.Unmarshal(aux.TimeUnit, &ns); err != nil {
		return fmt.Errorf("invalid timeUnit: %w", err)
	}
	cfg.TimeUnit = time.Duration(ns)
	return nil
}

// Schema builds identity schema, it fails if fields do not fit 64 bits.
func (cfg Config) Schema() (*snowball.Schema, error) {
	return snowball.NewSchema(
		snowball.WithNodeBits(cfg.NodeBits),
		snowball.WithThreadBits(cfg.ThreadBits),
		snowball.WithSequenceBits(cfg.SequenceBits),
		snowball.WithEpoch(cfg.Epoch),
		snowball.WithTimeUnit(cfg.TimeUnit),
	)
}
