// Copyright (C) ConfigHub, Inc.
// SPDX-License-Identifier: MIT

// Package cluster adapts a Kubernetes cluster into the raw name and
// metadata inventories the component deriver consumes. Authentication and
// transport live entirely in client-go; this package only maps API
// responses into typed records.
package cluster

import (
	"fmt"
	"os"
	"path/filepath"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// Cluster is a handle to one cluster. It memoizes pod-name listings per
// namespace for its own lifetime; objects are assumed not to change within
// a single inspection run. The handle is not safe for concurrent use.
type Cluster struct {
	clientset kubernetes.Interface

	// namespacedPods caches PodNames results keyed by namespace. Unbounded,
	// never expired; discard the handle to discard the cache.
	namespacedPods map[string][]string
}

// New wraps an existing clientset. Used directly by tests with a fake
// clientset.
func New(clientset kubernetes.Interface) *Cluster {
	return &Cluster{
		clientset:      clientset,
		namespacedPods: make(map[string][]string),
	}
}

// Connect builds a handle from the environment: in-cluster config when
// available, otherwise the given kubeconfig path, otherwise
// $HOME/.kube/config.
func Connect(kubeconfig string) (*Cluster, error) {
	cfg, err := buildConfig(kubeconfig)
	if err != nil {
		return nil, fmt.Errorf("build kubernetes config: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("create clientset: %w", err)
	}

	return New(clientset), nil
}

func buildConfig(kubeconfig string) (*rest.Config, error) {
	// Try in-cluster config first
	cfg, err := rest.InClusterConfig()
	if err == nil {
		return cfg, nil
	}

	if kubeconfig == "" {
		kubeconfig = os.Getenv("KUBECONFIG")
	}
	if kubeconfig == "" {
		home, _ := os.UserHomeDir()
		kubeconfig = filepath.Join(home, ".kube", "config")
	}

	return clientcmd.BuildConfigFromFlags("", kubeconfig)
}

