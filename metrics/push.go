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

package metrics

import (
	"context"
	"os"
	"time"

	"github.com/fagongzi/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// MetricConfig is the metric configuration.
type MetricConfig struct {
	PushJob      string        `json:"job"`
	PushAddress  string        `json:"address"`
	PushInterval time.Duration `json:"interval"`
}

// Enabled is true if pushgateway is configured
func (cfg *MetricConfig) Enabled() bool {
	return len(cfg.PushAddress) != 0
}

func pusher(cfg *MetricConfig, gatherer prometheus.Gatherer) *push.Pusher {
	p := push.New(cfg.PushAddress, cfg.PushJob).Gatherer(gatherer)
	if host, err := os.Hostname(); err == nil {
		p = p.Grouping("instance", host)
	}
	return p
}

// PushOnce pushes default gatherer to Prometheus Pushgateway.
func PushOnce(cfg *MetricConfig) error {
	return pusher(cfg, prometheus.DefaultGatherer).Push()
}

// Push metrics in background until context is canceled.
func Push(ctx context.Context, cfg *MetricConfig) {
	if cfg.PushInterval == 0 || !cfg.Enabled() {
		log.Infof("disable prometheus push client")
		return
	}

	log.Infof("start prometheus push client to %s every %v", cfg.PushAddress, cfg.PushInterval)

	go func() {
		p := pusher(cfg, prometheus.DefaultGatherer)
		ticker := time.NewTicker(cfg.PushInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := p.Push(); err != nil {
					log.Errorf("push metrics to prometheus pushgateway failed with %+v", err)
				}
			}
		}
	}()
}
