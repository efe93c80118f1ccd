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
	"github.com/confighub/app-scout/pkg/components"
)

var componentsOutput string

var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "Derive the components deployed in the cluster",
	Long: `Derive the logical components (applications) deployed in the cluster.

Namespaces outside the reserved set each become one component, named by
their first name prefix. When the cluster keeps everything in reserved
namespaces, the pods of the fallback namespace are grouped by shared name
prefix instead, largest group first.

Examples:
  # Derive components from the current cluster
  app-scout components

  # Output as JSON
  app-scout components -o json

  # Group on a different delimiter and fallback namespace
  app-scout components --delimiter . --fallback-namespace apps

  # Treat extra namespaces as infrastructure
  app-scout components --reserved-namespaces default,kube-system,kube-public,monitoring
`,
	RunE: runComponents,
}

func init() {
	rootCmd.AddCommand(componentsCmd)

	componentsCmd.Flags().StringVarP(&componentsOutput, "output", "o", "text", "Output format: text, json or yaml")
	componentsCmd.Flags().String("delimiter", components.DefaultDelimiter, "Delimiter separating the component prefix in names")
	componentsCmd.Flags().StringSlice("reserved-namespaces", []string{"default", "kube-public", "kube-system"}, "Namespaces excluded from derivation")
	componentsCmd.Flags().String("fallback-namespace", "default", "Namespace whose pods are grouped when all namespaces are reserved")
	viper.BindPFlag("delimiter", componentsCmd.Flags().Lookup("delimiter"))
	viper.BindPFlag("reserved-namespaces", componentsCmd.Flags().Lookup("reserved-namespaces"))
	viper.BindPFlag("fallback-namespace", componentsCmd.Flags().Lookup("fallback-namespace"))
}

// deriveConfig builds the deriver config from the layered settings.
func deriveConfig() components.Config {
	reserved := make(map[string]struct{})
	for _, ns := range viper.GetStringSlice("reserved-namespaces") {
		reserved[ns] = struct{}{}
	}
	return components.Config{
		ReservedScopes: reserved,
		Delimiter:      viper.GetString("delimiter"),
		FallbackScope:  viper.GetString("fallback-namespace"),
	}
}

func runComponents(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	c, err := cluster.Connect(viper.GetString("kubeconfig"))
	if err != nil {
		return err
	}

	cfg := deriveConfig()
	log.Debug("deriving components",
		"cluster", cluster.CanonicalName(cluster.CurrentContext()),
		"delimiter", cfg.Delimiter,
		"fallback", cfg.FallbackScope)

	comps, err := components.NewDeriver(cfg).Derive(ctx, c)
	if err != nil {
		return fmt.Errorf("%s", clierr.Pretty(err))
	}

	return renderComponents(os.Stdout, comps, componentsOutput)
}
