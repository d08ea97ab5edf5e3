// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package resource

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/aws-samples/hostname-custom-resource/structs"
)

// Passthrough implements Updater, Deleter and CompletionChecker without touching any
// external system. Update and Delete echo the physical resource ID and every operation
// is reported complete immediately.
type Passthrough struct {
	Logger hclog.Logger
}

func (p Passthrough) logger() hclog.Logger {
	if p.Logger == nil {
		return hclog.NewNullLogger()
	}
	return p.Logger
}

// Update returns the physical resource ID unchanged.
func (p Passthrough) Update(_ context.Context, e structs.Event) (structs.Response, error) {
	p.logger().Info("Updating resource",
		"physical_id", e.PhysicalResourceID,
		"properties", e.ResourceProperties,
		"old_properties", e.OldResourceProperties)

	return structs.Response{PhysicalResourceID: e.PhysicalResourceID}, nil
}

// Delete returns the physical resource ID unchanged.
func (p Passthrough) Delete(_ context.Context, e structs.Event) (structs.Response, error) {
	p.logger().Info("Deleting resource", "physical_id", e.PhysicalResourceID)

	return structs.Response{PhysicalResourceID: e.PhysicalResourceID}, nil
}

// IsComplete always reports completion.
func (p Passthrough) IsComplete(_ context.Context, e structs.Event) (structs.CompletionResponse, error) {
	p.logger().Debug("Checking completion",
		"physical_id", e.PhysicalResourceID,
		"request_type", e.RequestType)

	return structs.CompletionResponse{IsComplete: true}, nil
}
