// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package structs

import (
	"testing"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDecodeEvent(t *testing.T) {
	cases := map[string]struct {
		raw       map[string]interface{}
		expected  Event
		expectErr bool
	}{
		"create": {
			raw: map[string]interface{}{
				"RequestType":       "Create",
				"RequestId":         "req-1",
				"ResourceType":      "Custom::HostName",
				"LogicalResourceId": "Host",
				"StackId":           "arn:aws:cloudformation:us-east-1:111111111111:stack/s/1",
				"ResourceProperties": map[string]interface{}{
					"ServiceToken": "arn:aws:lambda:us-east-1:111111111111:function:on-event",
					"Url":          "https://example.com:8080/path",
				},
			},
			expected: Event{
				RequestType:       cfn.RequestCreate,
				RequestID:         "req-1",
				ResourceType:      "Custom::HostName",
				LogicalResourceID: "Host",
				StackID:           "arn:aws:cloudformation:us-east-1:111111111111:stack/s/1",
				ResourceProperties: map[string]interface{}{
					"ServiceToken": "arn:aws:lambda:us-east-1:111111111111:function:on-event",
					"Url":          "https://example.com:8080/path",
				},
			},
		},
		"update with old properties": {
			raw: map[string]interface{}{
				"RequestType":           "Update",
				"PhysicalResourceId":    "abc-123",
				"ResourceProperties":    map[string]interface{}{"Url": "http://b"},
				"OldResourceProperties": map[string]interface{}{"Url": "http://a"},
			},
			expected: Event{
				RequestType:           cfn.RequestUpdate,
				PhysicalResourceID:    "abc-123",
				ResourceProperties:    map[string]interface{}{"Url": "http://b"},
				OldResourceProperties: map[string]interface{}{"Url": "http://a"},
			},
		},
		"is complete input carries data": {
			raw: map[string]interface{}{
				"RequestType":        "Create",
				"PhysicalResourceId": "abc-123",
				"Data":               map[string]interface{}{"HostName": "example.com"},
			},
			expected: Event{
				RequestType:        cfn.RequestCreate,
				PhysicalResourceID: "abc-123",
				Data:               map[string]interface{}{"HostName": "example.com"},
			},
		},
		"unknown request type is still decoded": {
			raw:      map[string]interface{}{"RequestType": "Replace"},
			expected: Event{RequestType: cfn.RequestType("Replace")},
		},
		"wrong field type": {
			raw:       map[string]interface{}{"ResourceProperties": "not a map"},
			expectErr: true,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			e, err := DecodeEvent(c.raw)
			if c.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.True(t, cmp.Equal(c.expected, e), cmp.Diff(c.expected, e))
		})
	}
}

func TestFromCFN(t *testing.T) {
	in := cfn.Event{
		RequestType:           cfn.RequestDelete,
		RequestID:             "req-2",
		ResponseURL:           "https://example.com/response",
		ResourceType:          "Custom::HostName",
		PhysicalResourceID:    "abc-123",
		LogicalResourceID:     "Host",
		StackID:               "stack",
		ResourceProperties:    map[string]interface{}{"Url": "http://a"},
		OldResourceProperties: map[string]interface{}{"Url": "http://b"},
	}

	e := FromCFN(in)
	require.Equal(t, cfn.RequestDelete, e.RequestType)
	require.Equal(t, "req-2", e.RequestID)
	require.Equal(t, "https://example.com/response", e.ResponseURL)
	require.Equal(t, "Custom::HostName", e.ResourceType)
	require.Equal(t, "abc-123", e.PhysicalResourceID)
	require.Equal(t, "Host", e.LogicalResourceID)
	require.Equal(t, "stack", e.StackID)
	require.Equal(t, in.ResourceProperties, e.ResourceProperties)
	require.Equal(t, in.OldResourceProperties, e.OldResourceProperties)
	require.Nil(t, e.Data)
}
