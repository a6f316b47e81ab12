// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import "time"

const (
	// DefaultServerName is the default value for the server name.  It is also used as the
	// application name when searching for configuration.
	DefaultServerName = "resourceserver"

	// DefaultPrimaryAddress is the default bind address of the primary server
	DefaultPrimaryAddress = ":8080"

	// DefaultHealthAddress is the default bind address of the server exposing health and metrics
	DefaultHealthAddress = ":8888"

	// DefaultShutdownTimeout bounds how long a graceful shutdown may take
	DefaultShutdownTimeout = 15 * time.Second

	// ServersKey is the Viper key under which server configuration lives
	ServersKey = "servers"

	// MetricsKey is the Viper key under which xmetrics.Options lives
	MetricsKey = "metric"

	// PrimaryHandler is the fx name of the http.Handler served by the primary server
	PrimaryHandler = "primary"

	// MetricsGroup is the fx value group that collects xmetrics.Metric slices
	MetricsGroup = "metrics"

	// HealthPath is the path of the health endpoint on the health server
	HealthPath = "/health"

	// MetricsPath is the path of the Prometheus endpoint on the health server
	MetricsPath = "/metrics"

	// healthSuffix is the string appended to server name's to produce the health server name
	healthSuffix = ".health"
)
