// Copyright (C) ConfigHub, Inc.
// SPDX-License-Identifier: MIT

// Command app-scout derives a coarse application inventory from a running
// Kubernetes cluster by grouping namespace and pod names by naming prefix.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// BuildTag is set during build
	BuildTag = "dev"
	// BuildDate is set during build
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "app-scout",
	Short: "Derive the applications running in your cluster",
	Long: `app-scout - derive the applications running in your cluster

app-scout inspects a Kubernetes cluster and reports which logical
applications ("components") it runs, without requiring labels or
annotations. It provides commands for:

  - Deriving components from namespace and pod naming prefixes
  - Listing pods across all namespaces with their IPs
  - Listing deployments with replica counts and container images

Configuration may come from flags, a config file
(~/.config/app-scout/config.yaml) or APP_SCOUT_* environment variables.

Environment Variables:
  KUBECONFIG              Path to kubeconfig file (default: ~/.kube/config)
  APP_SCOUT_DELIMITER     Name delimiter for prefix grouping (default: -)
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("kubeconfig", "", "Path to kubeconfig file (default: $KUBECONFIG or ~/.kube/config)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	viper.BindPFlag("kubeconfig", rootCmd.PersistentFlags().Lookup("kubeconfig"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("app-scout version %s (built %s)\n", BuildTag, BuildDate)
		},
	})

	// Add completion command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for app-scout.

Bash:
  $ source <(app-scout completion bash)
  # Or add to ~/.bashrc:
  $ app-scout completion bash >> ~/.bashrc

Zsh:
  $ source <(app-scout completion zsh)
  # Or install to fpath:
  $ app-scout completion zsh > "${fpath[1]}/_app-scout"

Fish:
  $ app-scout completion fish | source
  # Or install:
  $ app-scout completion fish > ~/.config/fish/completions/app-scout.fish

PowerShell:
  PS> app-scout completion powershell | Out-String | Invoke-Expression
`,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.ExactArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	})
}

// initConfig layers the config file and environment over flag defaults.
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "app-scout"))
	}
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("APP_SCOUT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Debug("loaded config file", "path", viper.ConfigFileUsed())
	}
}
