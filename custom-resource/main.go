// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"

	"github.com/aws-samples/hostname-custom-resource/environment"
	"github.com/aws-samples/hostname-custom-resource/structs"
)

const lambdaName = "custom-resource"

// main runs the resource as a plain CloudFormation custom resource, without the
// provider framework. cfn.LambdaWrap posts the result to the event's ResponseURL.
func main() {
	lambda.Start(cfn.LambdaWrap(HandleRequest))
}

// HandleRequest handles a lifecycle event. Asynchronous completion is not available in
// this mode, so an operation that is not complete after onEvent is reported as a failure.
func HandleRequest(ctx context.Context, event cfn.Event) (string, map[string]interface{}, error) {
	env, err := environment.Setup(lambdaName)
	if err != nil {
		fmt.Println("Error setting up the environment:", err)
		return "", nil, fmt.Errorf("setting up environment: %w", err)
	}

	logger := env.Logger
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		logger = logger.With("aws_request_id", lc.AwsRequestID)
	}
	logger.Info("Received event", "event", event)

	e := structs.FromCFN(event)
	resp, err := env.Dispatcher.OnEvent(ctx, e)
	if err != nil {
		logger.Error("Error handling event", "error", err, "request_type", e.RequestType)
		return "", nil, err
	}

	// Pass the onEvent result along the same way the provider framework does.
	if resp.PhysicalResourceID != "" {
		e.PhysicalResourceID = resp.PhysicalResourceID
	}
	e.Data = resp.Data

	done, err := env.Dispatcher.IsComplete(ctx, e)
	if err != nil {
		logger.Error("Error checking completion", "error", err, "request_type", e.RequestType)
		return "", nil, err
	}
	if !done.IsComplete {
		return "", nil, fmt.Errorf("%s of %s did not complete synchronously", e.RequestType, e.LogicalResourceID)
	}

	data := resp.Data
	for k, v := range done.Data {
		if data == nil {
			data = make(map[string]interface{})
		}
		data[k] = v
	}

	logger.Info("Handled event", "request_type", e.RequestType, "physical_id", resp.PhysicalResourceID)
	return resp.PhysicalResourceID, data, nil
}
