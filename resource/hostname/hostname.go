// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package hostname implements the Custom::HostName resource, which exposes the
// network location of a URL as the HostName attribute.
package hostname

import (
	"context"
	"fmt"
	"net/url"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/mapstructure"

	"github.com/aws-samples/hostname-custom-resource/resource"
	"github.com/aws-samples/hostname-custom-resource/structs"
)

const (
	ResourceType = "Custom::HostName"

	// HostNameAttribute is the key of the host in the Create response data.
	HostNameAttribute = "HostName"
)

// Properties are the resource properties accepted by Custom::HostName.
type Properties struct {
	URL string `mapstructure:"Url"`
}

// Provider creates Custom::HostName resources. Update, Delete and completion
// checks are not backed by any external state.
type Provider struct {
	resource.Passthrough
}

var _ resource.Provider = (*Provider)(nil)

func New(logger hclog.Logger) *Provider {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Provider{Passthrough: resource.Passthrough{Logger: logger.Named("hostname")}}
}

// Create extracts the host, including the port if present, from the Url property.
func (p *Provider) Create(_ context.Context, e structs.Event) (structs.Response, error) {
	p.Logger.Info("Creating resource", "properties", e.ResourceProperties)

	var props Properties
	if err := mapstructure.Decode(e.ResourceProperties, &props); err != nil {
		return structs.Response{}, fmt.Errorf("error decoding resource properties: %w", err)
	}
	if _, ok := e.ResourceProperties["Url"]; !ok {
		return structs.Response{}, fmt.Errorf("missing required property %q", "Url")
	}

	host, err := HostName(props.URL)
	if err != nil {
		return structs.Response{}, err
	}

	return structs.Response{
		Data: map[string]interface{}{HostNameAttribute: host},
	}, nil
}

// HostName returns the network location of rawURL.
func HostName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}
	return u.Host, nil
}
