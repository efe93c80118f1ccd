// Copyright (C) ConfigHub, Inc.
// SPDX-License-Identifier: MIT

// Package clierr classifies cluster query failures for CLI output.
// The inventory code propagates lister errors unchanged; classification
// and hints happen only at the command layer.
package clierr

import (
	"errors"
	"fmt"
	"strings"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// Common error types for CLI output.
const (
	TypeNotFound  = "not_found" // Namespace or resource not found
	TypeForbidden = "forbidden" // RBAC access denied
	TypeNetwork   = "network"   // Connection/network errors
	TypeInternal  = "internal"  // Internal/unexpected errors
)

// IsForbidden checks if the error is an access denied (RBAC) error.
func IsForbidden(err error) bool {
	if err == nil {
		return false
	}
	if apierrors.IsForbidden(err) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "forbidden") ||
		strings.Contains(msg, "access denied") ||
		strings.Contains(msg, "unauthorized")
}

// IsNotFound checks if the error indicates a missing namespace or resource.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if apierrors.IsNotFound(err) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not found") ||
		strings.Contains(msg, "the server could not find")
}

// IsNetworkError checks if the error is a connection/network error.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "network is unreachable") ||
		strings.Contains(msg, "dial tcp") ||
		strings.Contains(msg, "i/o timeout") ||
		strings.Contains(msg, "context deadline exceeded")
}

// ClassifyError determines the type of error for appropriate handling.
func ClassifyError(err error) string {
	if err == nil {
		return ""
	}
	if IsForbidden(err) {
		return TypeForbidden
	}
	if IsNotFound(err) {
		return TypeNotFound
	}
	if IsNetworkError(err) {
		return TypeNetwork
	}
	return TypeInternal
}

// Pretty formats an error with a user-friendly message and actionable hints.
func Pretty(err error) string {
	if err == nil {
		return ""
	}

	baseMsg := err.Error()

	switch ClassifyError(err) {
	case TypeForbidden:
		return fmt.Sprintf("Access denied: %s\n\nHint: Check your RBAC permissions. You may need:\n"+
			"  - list permission on namespaces, pods and deployments\n"+
			"  - kubectl auth can-i list pods to verify permissions", baseMsg)

	case TypeNotFound:
		return fmt.Sprintf("Not found: %s\n\nHint: The namespace may not exist in this cluster.\n"+
			"  - kubectl get namespaces to see what exists", baseMsg)

	case TypeNetwork:
		return fmt.Sprintf("Connection error: %s\n\nHint: Check your cluster connectivity:\n"+
			"  - kubectl cluster-info to verify connection\n"+
			"  - Ensure your kubeconfig is correct", baseMsg)

	default:
		return fmt.Sprintf("Error: %s", baseMsg)
	}
}

// WrapWithHint wraps an error with an additional hint message.
func WrapWithHint(err error, hint string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w\n\nHint: %s", err, hint)
}

// NothingFound returns a user-friendly message when an inventory comes back
// empty. This is not an error - it is a valid empty result.
func NothingFound(resource string) string {
	return fmt.Sprintf("No %s found.\n\n"+
		"This might mean:\n"+
		"  - The cluster runs nothing outside the reserved namespaces\n"+
		"  - You may not have permission to list these resources", resource)
}

// Unwrap returns the underlying error, stripping any wrapper.
func Unwrap(err error) error {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}
