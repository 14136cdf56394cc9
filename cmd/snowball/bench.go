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
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fagongzi/log"
	"github.com/fogfish/snowball"
	"github.com/fogfish/snowball/internal/bench"
	"github.com/fogfish/snowball/metrics"
	"github.com/spf13/cobra"
)

func newBenchCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure throughput and verify uniqueness of identifiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			workers, _ := cmd.Flags().GetInt("workers")
			duration, _ := cmd.Flags().GetDuration("duration")
			verify, _ := cmd.Flags().GetInt("verify")

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			if v, _ := cmd.Flags().GetString("metrics-push-addr"); v != "" {
				cfg.Metrics.PushAddress = v
			}
			if v, _ := cmd.Flags().GetString("metrics-job"); cmd.Flags().Changed("metrics-job") {
				cfg.Metrics.PushJob = v
			}

			gen, _, err := opts.generator(cmd, func(node int64) snowball.Observer {
				return metrics.NewObserver(node)
			})
			if err != nil {
				return err
			}
			metrics.Push(ctx, &cfg.Metrics)

			out := cmd.OutOrStdout()
			if verify > 0 {
				r, err := bench.Verify(ctx, gen, workers, verify)
				if err != nil {
					return fmt.Errorf("verification failed: %w", err)
				}
				fmt.Fprintf(out, "VERIFY: %s\n", r)
			}

			r, err := bench.Throughput(ctx, gen, workers, duration)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "THROUGHPUT: %s\n", r)

			if cfg.Metrics.Enabled() {
				if err := metrics.PushOnce(&cfg.Metrics); err != nil {
					log.Errorf("push metrics to prometheus pushgateway failed with %+v", err)
				}
			}
			return nil
		},
	}
	cmd.Flags().Int("workers", 1, "Number of concurrent workers")
	cmd.Flags().Duration("duration", 100*time.Millisecond, "Duration of throughput run")
	cmd.Flags().Int("verify", 0, "Ids per worker to mint and verify before the throughput run (0 disables)")
	cmd.Flags().String("metrics-push-addr", "", "Prometheus pushgateway address")
	cmd.Flags().String("metrics-job", "snowball", "Prometheus job name")

	return cmd
}
