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

var workloadsOutput string

var workloadsCmd = &cobra.Command{
	Use:   "workloads",
	Short: "List deployments across all namespaces",
	Long: `List every deployment in the cluster with its replica count and
container images.

Examples:
  # Table of all deployments
  app-scout workloads

  # Output as YAML
  app-scout workloads -o yaml
`,
	RunE: runWorkloads,
}

func init() {
	rootCmd.AddCommand(workloadsCmd)

	workloadsCmd.Flags().StringVarP(&workloadsOutput, "output", "o", "table", "Output format: table, json or yaml")
}

func runWorkloads(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	c, err := cluster.Connect(viper.GetString("kubeconfig"))
	if err != nil {
		return err
	}

	workloads, err := c.Workloads(ctx)
	if err != nil {
		return fmt.Errorf("%s", clierr.Pretty(err))
	}
	log.Debug("listed deployments", "count", len(workloads))

	return renderWorkloads(os.Stdout, workloads, workloadsOutput)
}
