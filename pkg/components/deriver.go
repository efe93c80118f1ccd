// Copyright (C) ConfigHub, Inc.
// SPDX-License-Identifier: MIT

// Package components derives the logical applications deployed in a cluster
// from the names of its namespaces and pods. No labels or annotations are
// required: namespaces outside the reserved set each become one component,
// and when a cluster keeps everything in the default namespace the pods
// there are grouped by shared name prefix instead.
package components

import (
	"context"
)

// Component is a logical application derived from the cluster inventory.
// Identity is the name alone.
type Component struct {
	Name string `json:"name" yaml:"name"`
}

// Lister enumerates raw object names from a cluster. Implementations are
// expected to block on network I/O; errors pass through the deriver
// unchanged.
type Lister interface {
	// ListScopes returns namespace names.
	ListScopes(ctx context.Context) ([]string, error)

	// ListObjectsInScope returns pod names within one namespace.
	ListObjectsInScope(ctx context.Context, scope string) ([]string, error)
}

// Config controls how component names are derived. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	// ReservedScopes are namespaces excluded from derivation, matched
	// exactly and case-sensitively.
	ReservedScopes map[string]struct{}

	// Delimiter splits object names into tokens.
	Delimiter string

	// FallbackScope is queried for pods when every namespace is reserved.
	FallbackScope string
}

// DefaultConfig returns the stock Kubernetes configuration: the default
// namespace and the two kube-* infrastructure namespaces are reserved,
// names split on "-", and the pod fallback reads the default namespace.
func DefaultConfig() Config {
	return Config{
		ReservedScopes: map[string]struct{}{
			"default":     {},
			"kube-public": {},
			"kube-system": {},
		},
		Delimiter:     DefaultDelimiter,
		FallbackScope: "default",
	}
}

// Deriver turns raw cluster inventories into components. It holds no
// mutable state; the same deriver may be reused across clusters.
type Deriver struct {
	cfg Config
}

// NewDeriver returns a deriver using the given config.
func NewDeriver(cfg Config) *Deriver {
	return &Deriver{cfg: cfg}
}

// Derive produces the component list for the cluster behind lister.
//
// Namespaces outside the reserved set are the preferred signal: each one
// yields a component named by its first token, in namespace order, without
// deduplication. When no such namespace exists the pods of the fallback
// scope are grouped by first token and ranked by descending group size,
// ties keeping first-seen order, on the assumption that the dominant
// prefix group is the primary application.
//
// Lister failures are returned as-is with no partial results. Empty
// inventories are valid and yield an empty component list.
func (d *Deriver) Derive(ctx context.Context, lister Lister) ([]Component, error) {
	scopes, err := lister.ListScopes(ctx)
	if err != nil {
		return nil, err
	}

	remaining := make([]string, 0, len(scopes))
	for _, scope := range scopes {
		if _, reserved := d.cfg.ReservedScopes[scope]; !reserved {
			remaining = append(remaining, scope)
		}
	}

	if len(remaining) > 0 {
		comps := make([]Component, 0, len(remaining))
		for _, scope := range remaining {
			comps = append(comps, Component{Name: FirstToken(scope, d.cfg.Delimiter)})
		}
		return comps, nil
	}

	objects, err := lister.ListObjectsInScope(ctx, d.cfg.FallbackScope)
	if err != nil {
		return nil, err
	}

	ranked := RankByFrequency(CountFirstTokens(objects, d.cfg.Delimiter))
	comps := make([]Component, 0, len(ranked))
	for _, tc := range ranked {
		comps = append(comps, Component{Name: tc.Token})
	}
	return comps, nil
}
