// Copyright (C) ConfigHub, Inc.
// SPDX-License-Identifier: MIT

package cluster

import (
	"context"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// PodInfo is a pod record at the API boundary.
type PodInfo struct {
	Name      string `json:"name" yaml:"name"`
	Namespace string `json:"namespace" yaml:"namespace"`
	IP        string `json:"ip" yaml:"ip"`
}

// WorkloadInfo is a deployment record at the API boundary.
type WorkloadInfo struct {
	Name      string   `json:"name" yaml:"name"`
	Namespace string   `json:"namespace" yaml:"namespace"`
	Replicas  int32    `json:"replicas" yaml:"replicas"`
	Images    []string `json:"images" yaml:"images"`
}

// Namespaces returns the names of every namespace in the cluster.
func (c *Cluster) Namespaces(ctx context.Context) ([]string, error) {
	namespaces, err := c.clientset.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list namespaces: %w", err)
	}

	names := make([]string, 0, len(namespaces.Items))
	for _, ns := range namespaces.Items {
		names = append(names, ns.Name)
	}
	return names, nil
}

// PodNames returns the names of the pods in one namespace. The first call
// per namespace hits the API; later calls return the memoized result until
// Invalidate or the handle is discarded. A failed call caches nothing.
func (c *Cluster) PodNames(ctx context.Context, namespace string) ([]string, error) {
	if cached, ok := c.namespacedPods[namespace]; ok {
		return cached, nil
	}

	pods, err := c.clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list pods in %s: %w", namespace, err)
	}

	names := make([]string, 0, len(pods.Items))
	for _, pod := range pods.Items {
		names = append(names, pod.Name)
	}
	c.namespacedPods[namespace] = names
	return names, nil
}

// Invalidate drops the memoized pod names for one namespace, forcing the
// next PodNames call to query the API again.
func (c *Cluster) Invalidate(namespace string) {
	delete(c.namespacedPods, namespace)
}

// Pods returns pod records across all namespaces. Not memoized.
func (c *Cluster) Pods(ctx context.Context) ([]PodInfo, error) {
	pods, err := c.clientset.CoreV1().Pods("").List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list pods: %w", err)
	}

	infos := make([]PodInfo, 0, len(pods.Items))
	for _, pod := range pods.Items {
		infos = append(infos, PodInfo{
			Name:      pod.Name,
			Namespace: pod.Namespace,
			IP:        pod.Status.PodIP,
		})
	}
	return infos, nil
}

// Workloads returns deployment records across all namespaces, including
// the images of every container in the pod template.
func (c *Cluster) Workloads(ctx context.Context) ([]WorkloadInfo, error) {
	deployments, err := c.clientset.AppsV1().Deployments("").List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list deployments: %w", err)
	}

	infos := make([]WorkloadInfo, 0, len(deployments.Items))
	for _, dep := range deployments.Items {
		var replicas int32
		if dep.Spec.Replicas != nil {
			replicas = *dep.Spec.Replicas
		}

		var images []string
		for _, container := range dep.Spec.Template.Spec.Containers {
			images = append(images, container.Image)
		}

		infos = append(infos, WorkloadInfo{
			Name:      dep.Name,
			Namespace: dep.Namespace,
			Replicas:  replicas,
			Images:    images,
		})
	}
	return infos, nil
}

// ListScopes implements components.Lister.
func (c *Cluster) ListScopes(ctx context.Context) ([]string, error) {
	return c.Namespaces(ctx)
}

// ListObjectsInScope implements components.Lister.
func (c *Cluster) ListObjectsInScope(ctx context.Context, scope string) ([]string, error) {
	return c.PodNames(ctx, scope)
}
