// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package structs

import (
	"fmt"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/mitchellh/mapstructure"
)

// Event is a custom resource lifecycle event as delivered by CloudFormation or the
// CDK provider framework.
type Event struct {
	RequestType           cfn.RequestType        `json:"RequestType" mapstructure:"RequestType"`
	RequestID             string                 `json:"RequestId,omitempty" mapstructure:"RequestId"`
	ResponseURL           string                 `json:"ResponseURL,omitempty" mapstructure:"ResponseURL"`
	ResourceType          string                 `json:"ResourceType,omitempty" mapstructure:"ResourceType"`
	LogicalResourceID     string                 `json:"LogicalResourceId,omitempty" mapstructure:"LogicalResourceId"`
	PhysicalResourceID    string                 `json:"PhysicalResourceId,omitempty" mapstructure:"PhysicalResourceId"`
	StackID               string                 `json:"StackId,omitempty" mapstructure:"StackId"`
	ResourceProperties    map[string]interface{} `json:"ResourceProperties,omitempty" mapstructure:"ResourceProperties"`
	OldResourceProperties map[string]interface{} `json:"OldResourceProperties,omitempty" mapstructure:"OldResourceProperties"`

	// Data holds the attributes returned by onEvent. The provider framework merges them
	// into the isComplete input.
	Data map[string]interface{} `json:"Data,omitempty" mapstructure:"Data"`
}

// Response is returned to the orchestrator from onEvent.
// An empty PhysicalResourceID lets the orchestrator assign one.
type Response struct {
	PhysicalResourceID string                 `json:"PhysicalResourceId,omitempty"`
	Data               map[string]interface{} `json:"Data,omitempty"`
}

// CompletionResponse is returned from isComplete.
type CompletionResponse struct {
	IsComplete bool                   `json:"IsComplete"`
	Data       map[string]interface{} `json:"Data,omitempty"`
}

// DecodeEvent decodes a raw Lambda payload into an Event.
func DecodeEvent(raw map[string]interface{}) (Event, error) {
	var e Event
	if err := mapstructure.Decode(raw, &e); err != nil {
		return e, fmt.Errorf("error decoding custom resource event: %w", err)
	}
	return e, nil
}

// FromCFN converts the aws-lambda-go representation of a custom resource request.
func FromCFN(e cfn.Event) Event {
	return Event{
		RequestType:           e.RequestType,
		RequestID:             e.RequestID,
		ResponseURL:           e.ResponseURL,
		ResourceType:          e.ResourceType,
		LogicalResourceID:     e.LogicalResourceID,
		PhysicalResourceID:    e.PhysicalResourceID,
		StackID:               e.StackID,
		ResourceProperties:    e.ResourceProperties,
		OldResourceProperties: e.OldResourceProperties,
	}
}
