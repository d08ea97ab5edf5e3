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

const lambdaName = "on-event"

func main() {
	lambda.Start(HandleRequest)
}

// HandleRequest is the onEvent handler of the CDK custom resource provider framework.
func HandleRequest(ctx context.Context, rawEvent map[string]interface{}) (structs.Response, error) {
	env, err := environment.Setup(lambdaName)
	if err != nil {
		// We can't use the logger because of the error.
		fmt.Println("Error setting up the environment:", err)
		return structs.Response{}, fmt.Errorf("setting up environment: %w", err)
	}

	env.Logger.Info("Received event", "event", rawEvent)

	event, err := structs.DecodeEvent(rawEvent)
	if err != nil {
		env.Logger.Warn("Error decoding event", "error", err)
		return structs.Response{}, err
	}

	resp, err := env.Dispatcher.OnEvent(ctx, event)
	if err != nil {
		env.Logger.Error("Error handling event", "error", err, "request_type", event.RequestType)
		return structs.Response{}, err
	}

	env.Logger.Info("Handled event", "request_type", event.RequestType, "physical_id", resp.PhysicalResourceID, "data", resp.Data)
	return resp, nil
}
