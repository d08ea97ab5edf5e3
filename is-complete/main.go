// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/aws-samples/hostname-custom-resource/environment"
	"github.com/aws-samples/hostname-custom-resource/structs"
)

const lambdaName = "is-complete"

func main() {
	lambda.Start(HandleRequest)
}

// HandleRequest is the isComplete handler of the CDK custom resource provider framework.
// The framework invokes it on a timer until it reports IsComplete or the total timeout expires.
func HandleRequest(ctx context.Context, rawEvent map[string]interface{}) (structs.CompletionResponse, error) {
	env, err := environment.Setup(lambdaName)
	if err != nil {
		fmt.Println("Error setting up the environment:", err)
		return structs.CompletionResponse{}, fmt.Errorf("setting up environment: %w", err)
	}

	env.Logger.Debug("Received event", "event", rawEvent)

	event, err := structs.DecodeEvent(rawEvent)
	if err != nil {
		env.Logger.Warn("Error decoding event", "error", err)
		return structs.CompletionResponse{}, err
	}

	resp, err := env.Dispatcher.IsComplete(ctx, event)
	if err != nil {
		env.Logger.Error("Error checking completion", "error", err, "physical_id", event.PhysicalResourceID)
		return structs.CompletionResponse{}, err
	}

	env.Logger.Info("Checked completion",
		"physical_id", event.PhysicalResourceID,
		"request_type", event.RequestType,
		"complete", resp.IsComplete)
	return resp, nil
}
