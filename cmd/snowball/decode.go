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
	"strconv"
	"time"

	"github.com/fogfish/snowball"
	"github.com/spf13/cobra"
)

func newDecodeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decode ID...",
		Short: "Decode identifiers into time, node, thread and sequence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			schema, err := cfg.Schema()
			if err != nil {
				return fmt.Errorf("invalid schema: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, arg := range args {
				id, err := parseID(arg)
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "%d\t%s\ttime=%s\tnode=%d\tthread=%d\tseq=%d\n",
					int64(id), id,
					schema.EpochT(id).UTC().Format(time.RFC3339Nano),
					schema.Node(id), schema.Thread(id), schema.Seq(id),
				)
			}
			return nil
		},
	}
}

// parseID accepts both integer and sortable string forms
func parseID(val string) (snowball.ID, error) {
	if n, err := strconv.ParseInt(val, 10, 64); err == nil {
		return snowball.ID(n), nil
	}

	id, err := snowball.FromString(val)
	if err != nil {
		return 0, fmt.Errorf("invalid identifier %q: %w", val, err)
	}
	return id, nil
}
