// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package resource

import (
	"errors"
	"fmt"
)

// ErrUnknownResourceType is returned when no provider handles a resource type.
var ErrUnknownResourceType = errors.New("unknown resource type")

// Registry holds the providers indexed by custom resource type, e.g. "Custom::HostName".
type Registry struct {
	providers map[string]Provider
	fallback  Provider
}

// NewRegistry returns a Registry that resolves unregistered resource types to fallback.
// A nil fallback makes lookups of unregistered types fail.
func NewRegistry(fallback Provider) *Registry {
	return &Registry{
		providers: make(map[string]Provider),
		fallback:  fallback,
	}
}

// Register adds the provider for resourceType, replacing any existing one.
func (r *Registry) Register(resourceType string, p Provider) *Registry {
	r.providers[resourceType] = p
	return r
}

// Lookup returns the provider for resourceType.
func (r *Registry) Lookup(resourceType string) (Provider, error) {
	if p, ok := r.providers[resourceType]; ok {
		return p, nil
	}
	if r.fallback != nil {
		return r.fallback, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownResourceType, resourceType)
}
