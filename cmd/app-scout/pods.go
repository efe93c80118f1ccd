// Copyright (C) ConfigHub, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/confighub/app-scout/internal/clierr"
	"github.com/confighub/app-scout/pkg/cluster"
)

var podsOutput string

var podsCmd = &cobra.Command{
	Use:   "pods",
	Short: "List pods across all namespaces",
	Long: `List every pod in the cluster with its namespace and IP.

Examples:
  # Table of all pods
  app-scout pods

  # Output as JSON
  app-scout pods -o json
`,
	RunE: runPods,
}

func init() {
	rootCmd.AddCommand(podsCmd)

	podsCmd.Flags().StringVarP(&podsOutput, "output", "o", "table", "Output format: table, json or yaml")
}

func runPods(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	c, err := cluster.Connect(viper.GetString("kubeconfig"))
	if err != nil {
		return err
	}

	pods, err := c.Pods(ctx)
	if err != nil {
		return fmt.Errorf("%s", clierr.Pretty(err))
	}
	log.Debug("listed pods", "count", len(pods))

	return renderPods(os.Stdout, pods, podsOutput)
}
