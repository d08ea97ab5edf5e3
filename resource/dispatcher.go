// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package resource

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/hashicorp/go-hclog"

	"github.com/aws-samples/hostname-custom-resource/structs"
	"github.com/aws-samples/hostname-custom-resource/trace"
)

// ErrInvalidRequestType is returned for any RequestType other than Create, Update or Delete.
var ErrInvalidRequestType = errors.New("invalid request type")

// Dispatcher routes lifecycle events to the provider registered for their resource type.
type Dispatcher struct {
	registry *Registry
	logger   hclog.Logger
}

func NewDispatcher(registry *Registry, logger hclog.Logger) *Dispatcher {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Dispatcher{registry: registry, logger: logger}
}

// OnEvent invokes the Create, Update or Delete handler matching e.RequestType.
func (d *Dispatcher) OnEvent(ctx context.Context, e structs.Event) (structs.Response, error) {
	trace.Enter()
	defer trace.Exit()

	d.logger.Debug("Dispatching event",
		"request_type", e.RequestType,
		"resource_type", e.ResourceType,
		"logical_id", e.LogicalResourceID,
		"physical_id", e.PhysicalResourceID)

	p, err := d.registry.Lookup(e.ResourceType)
	if err != nil {
		return structs.Response{}, err
	}

	switch e.RequestType {
	case cfn.RequestCreate:
		return p.Create(ctx, e)
	case cfn.RequestUpdate:
		return p.Update(ctx, e)
	case cfn.RequestDelete:
		return p.Delete(ctx, e)
	}

	return structs.Response{}, fmt.Errorf("%w: %s", ErrInvalidRequestType, e.RequestType)
}

// IsComplete asks the provider for e.ResourceType whether the last operation has finished.
func (d *Dispatcher) IsComplete(ctx context.Context, e structs.Event) (structs.CompletionResponse, error) {
	trace.Enter()
	defer trace.Exit()

	p, err := d.registry.Lookup(e.ResourceType)
	if err != nil {
		return structs.CompletionResponse{}, err
	}

	return p.IsComplete(ctx, e)
}
