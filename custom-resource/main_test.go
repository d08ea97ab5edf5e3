// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/stretchr/testify/require"

	"github.com/aws-samples/hostname-custom-resource/resource"
)

func TestHandleRequest(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")

	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "req-1"})

	cases := map[string]struct {
		event      cfn.Event
		physicalID string
		data       map[string]interface{}
		expectErr  error
	}{
		"create": {
			event: cfn.Event{
				RequestType:        cfn.RequestCreate,
				ResourceType:       "Custom::HostName",
				LogicalResourceID:  "HostName",
				ResourceProperties: map[string]interface{}{"Url": "https://example.com:8080/path"},
			},
			data: map[string]interface{}{"HostName": "example.com:8080"},
		},
		"update": {
			event: cfn.Event{
				RequestType:           cfn.RequestUpdate,
				PhysicalResourceID:    "abc-123",
				ResourceProperties:    map[string]interface{}{"Url": "http://10.0.0.5/"},
				OldResourceProperties: map[string]interface{}{"Url": "https://example.com"},
			},
			physicalID: "abc-123",
		},
		"delete": {
			event: cfn.Event{
				RequestType:        cfn.RequestDelete,
				PhysicalResourceID: "abc-123",
			},
			physicalID: "abc-123",
		},
		"unsupported request type": {
			event: cfn.Event{
				RequestType:        cfn.RequestType("Replace"),
				PhysicalResourceID: "abc-123",
			},
			expectErr: resource.ErrInvalidRequestType,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			id, data, err := HandleRequest(ctx, c.event)
			if c.expectErr != nil {
				require.True(t, errors.Is(err, c.expectErr))
				return
			}
			require.NoError(t, err)
			require.Equal(t, c.physicalID, id)
			require.Equal(t, c.data, data)
		})
	}

	t.Run("create with a missing url", func(t *testing.T) {
		_, _, err := HandleRequest(context.Background(), cfn.Event{RequestType: cfn.RequestCreate})
		require.Error(t, err)
	})
}
