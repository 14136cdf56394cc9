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
	goflag "flag"
	"fmt"
	"io"

	"github.com/fagongzi/log"
	"github.com/fogfish/snowball"
	cfgpkg "github.com/fogfish/snowball/internal/config"
	"github.com/spf13/cobra"
)

type options struct {
	config string
	node   int64
}

func newRootCommand(out io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "snowball",
		Short: "Coordination-free 64-bit identifiers",
		Long:  "snowball mints sortable 64-bit identifiers, decodes them and measures generator throughput.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.InitLog()
		},
		SilenceUsage: true,
	}
	rootCmd.SetOut(out)
	// logger flags are declared on the standard flag set
	rootCmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
	rootCmd.PersistentFlags().StringVar(&opts.config, "config", "", "JSON configuration file")
	rootCmd.PersistentFlags().Int64Var(&opts.node, "node", 0, "Node identifier (default from SNOWBALL_NODE_ID)")

	rootCmd.AddCommand(newNextCommand(opts))
	rootCmd.AddCommand(newDecodeCommand(opts))
	rootCmd.AddCommand(newBenchCommand(opts))

	return rootCmd
}

// resolve builds configuration from defaults, file, env and flags
func (opts *options) resolve(cmd *cobra.Command) (cfgpkg.Config, error) {
	cfg := cfgpkg.Default()
	if opts.config != "" {
		if err := cfgpkg.Load(opts.config, &cfg); err != nil {
			return cfg, err
		}
	}
	cfgpkg.FromEnv(&cfg)

	if cmd.Flags().Changed("node") {
		cfg.NodeID = opts.node
	}

	return cfg, nil
}

// generator builds generator from resolved configuration, the optional observer
// is created for the node id after it is masked by the schema
func (opts *options) generator(cmd *cobra.Command, observer func(node int64) snowball.Observer) (*snowball.Generator, cfgpkg.Config, error) {
	cfg, err := opts.resolve(cmd)
	if err != nil {
		return nil, cfg, err
	}

	schema, err := cfg.Schema()
	if err != nil {
		return nil, cfg, fmt.Errorf("invalid schema: %w", err)
	}

	gopts := []snowball.Option{snowball.WithSchema(schema)}
	if observer != nil {
		gopts = append(gopts, snowball.WithObserver(observer(schema.MaskNode(cfg.NodeID))))
	}

	gen := snowball.New(cfg.NodeID, gopts...)
	if gen.Node() != cfg.NodeID {
		log.Warnf("node id %d is truncated to %d", cfg.NodeID, gen.Node())
	}

	return gen, cfg, nil
}
