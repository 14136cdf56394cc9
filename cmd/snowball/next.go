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
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newNextCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Mint identifiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			format, _ := cmd.Flags().GetString("format")

			gen, _, err := opts.generator(cmd, nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			w := gen.Worker()
			for i := 0; i < count; i++ {
				id := w.Next()
				switch format {
				case "int":
					fmt.Fprintln(out, int64(id))
				case "string":
					fmt.Fprintln(out, id.String())
				case "json":
					b, err := json.Marshal(id)
					if err != nil {
						return err
					}
					fmt.Fprintln(out, string(b))
				default:
					return fmt.Errorf("invalid --format %q; use int|string|json", format)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntP("count", "n", 1, "Number of identifiers")
	cmd.Flags().String("format", "int", "Output format: int|string|json")

	return cmd
}
