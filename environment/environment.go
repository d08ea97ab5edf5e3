// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package environment

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/kelseyhightower/envconfig"

	"github.com/aws-samples/hostname-custom-resource/resource"
	"github.com/aws-samples/hostname-custom-resource/resource/hostname"
	"github.com/aws-samples/hostname-custom-resource/trace"
)

const (
	logFormatText = "text"
	logFormatJSON = "json"
)

// Config holds the configuration from the environment.
type Config struct {
	// LogLevel is the configured logging level.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFormat selects text or JSON log output.
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	// TraceEnabled logs the time spent in the dispatcher and handlers.
	TraceEnabled bool `envconfig:"TRACE_ENABLED" default:"false"`
}

// Validate returns every problem with the configuration.
func (c Config) Validate() error {
	var resultErr error

	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		resultErr = multierror.Append(resultErr, fmt.Errorf("invalid LOG_LEVEL %q", c.LogLevel))
	}

	switch strings.ToLower(c.LogFormat) {
	case logFormatText, logFormatJSON:
	default:
		resultErr = multierror.Append(resultErr, fmt.Errorf("invalid LOG_FORMAT %q: must be %q or %q", c.LogFormat, logFormatText, logFormatJSON))
	}

	return resultErr
}

// Environment contains the dependencies of a custom resource Lambda.
type Environment struct {
	Config

	// Logger is used to log messages.
	Logger hclog.Logger

	// Dispatcher routes lifecycle events to resource providers.
	Dispatcher *resource.Dispatcher
}

// Setup constructs the Environment for the named Lambda from environment variables.
func Setup(name string) (Environment, error) {
	var env Environment

	err := envconfig.Process("", &env.Config)
	if err != nil {
		return env, fmt.Errorf("failed to load configuration from environment: %w", err)
	}
	if err := env.Validate(); err != nil {
		return env, err
	}

	env.Logger = hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(env.LogLevel),
		JSONFormat: strings.EqualFold(env.LogFormat, logFormatJSON),
		Output:     os.Stdout,
	})

	trace.Enabled(env.TraceEnabled)
	trace.SetSink(trace.Sink{Logger: env.Logger.Named("trace")})

	registry := resource.NewRegistry(hostname.New(env.Logger)).
		Register(hostname.ResourceType, hostname.New(env.Logger))
	env.Dispatcher = resource.NewDispatcher(registry, env.Logger)

	return env, nil
}
