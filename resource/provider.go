// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package resource dispatches custom resource lifecycle events to the provider
// registered for the event's resource type.
//
// A provider implements one capability per lifecycle request. Providers that only
// need custom Create logic can embed Passthrough for the remaining capabilities.
package resource

import (
	"context"

	"github.com/aws-samples/hostname-custom-resource/structs"
)

// Creator provisions a new resource.
// Returning an empty PhysicalResourceID lets the orchestrator assign one.
type Creator interface {
	Create(ctx context.Context, e structs.Event) (structs.Response, error)
}

// Updater reconciles an existing resource against e.ResourceProperties.
type Updater interface {
	Update(ctx context.Context, e structs.Event) (structs.Response, error)
}

// Deleter tears down an existing resource.
type Deleter interface {
	Delete(ctx context.Context, e structs.Event) (structs.Response, error)
}

// CompletionChecker reports whether the operation started by e.RequestType has finished.
// The orchestrator calls it repeatedly until it reports IsComplete.
type CompletionChecker interface {
	IsComplete(ctx context.Context, e structs.Event) (structs.CompletionResponse, error)
}

// Provider implements the full lifecycle of one resource type.
type Provider interface {
	Creator
	Updater
	Deleter
	CompletionChecker
}
