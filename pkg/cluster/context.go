// Copyright (C) ConfigHub, Inc.
// SPDX-License-Identifier: MIT

package cluster

import (
	"strings"

	"k8s.io/client-go/tools/clientcmd"
)

// CurrentContext returns the current kubectl context name, or "unknown"
// when no kubeconfig can be read.
func CurrentContext() string {
	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	configOverrides := &clientcmd.ConfigOverrides{}
	kubeConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, configOverrides)

	rawConfig, err := kubeConfig.RawConfig()
	if err != nil {
		return "unknown"
	}

	if rawConfig.CurrentContext == "" {
		return "default"
	}

	return rawConfig.CurrentContext
}

// CanonicalName extracts a short cluster name from a kubectl context name.
// Handles AWS EKS ARNs, GKE context formats and kind clusters; unknown
// formats pass through unchanged.
func CanonicalName(contextName string) string {
	if contextName == "" || contextName == "unknown" {
		return contextName
	}

	// AWS EKS: arn:aws:eks:region:account:cluster/name
	if strings.HasPrefix(contextName, "arn:aws:eks:") {
		if idx := strings.LastIndex(contextName, "/"); idx != -1 {
			return contextName[idx+1:]
		}
	}

	// GKE: gke_project_zone_cluster
	if strings.HasPrefix(contextName, "gke_") {
		parts := strings.Split(contextName, "_")
		if len(parts) >= 4 {
			return parts[len(parts)-1]
		}
	}

	// kind: kind-name
	if strings.HasPrefix(contextName, "kind-") {
		return strings.TrimPrefix(contextName, "kind-")
	}

	return contextName
}
