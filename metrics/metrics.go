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

// Package metrics exports internal events of id generators to prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	prometheus.Register(WorkerCounter)
	prometheus.Register(RolloverCounter)
	prometheus.Register(StallCounter)
	prometheus.Register(ConflictCounter)
}

var (
	// WorkerCounter workers created by generator
	WorkerCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snowball",
			Subsystem: "generator",
			Name:      "workers_total",
			Help:      "Total number of workers created.",
		}, []string{"node"})

	// RolloverCounter time units consumed by workers
	RolloverCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snowball",
			Subsystem: "generator",
			Name:      "rollover_total",
			Help:      "Total number of time units allocated to workers.",
		}, []string{"node"})

	// StallCounter time units forced ahead of wall clock
	StallCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snowball",
			Subsystem: "generator",
			Name:      "clock_stall_total",
			Help:      "Total number of time units forced ahead of wall clock.",
		}, []string{"node"})

	// ConflictCounter lost compare-and-swap races on timeline
	ConflictCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snowball",
			Subsystem: "generator",
			Name:      "conflict_total",
			Help:      "Total number of retries of timeline updates.",
		}, []string{"node"})
)
