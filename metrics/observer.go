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
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Observer counts events of a generator, counters are labeled by node
type Observer struct {
	workers   prometheus.Counter
	rollovers prometheus.Counter
	stalls    prometheus.Counter
	conflicts prometheus.Counter
}

// NewObserver creates observer for the node
func NewObserver(node int64) *Observer {
	label := strconv.FormatInt(node, 10)
	return &Observer{
		workers:   WorkerCounter.WithLabelValues(label),
		rollovers: RolloverCounter.WithLabelValues(label),
		stalls:    StallCounter.WithLabelValues(label),
		conflicts: ConflictCounter.WithLabelValues(label),
	}
}

func (o *Observer) Spawn(int64)    { o.workers.Inc() }
func (o *Observer) Rollover(int64) { o.rollovers.Inc() }
func (o *Observer) Stall(int64)    { o.stalls.Inc() }
func (o *Observer) Conflict(int64) { o.conflicts.Inc() }
