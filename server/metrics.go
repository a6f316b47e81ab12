// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import "github.com/xmidt-org/resourceserver/xmetrics"

const (
	APIRequestsCounter         = "api_requests_total"
	InFlightRequestsGauge      = "in_flight_requests"
	ActiveConnectionsGauge     = "active_connections"
	RejectedConnectionsCounter = "rejected_connections_total"
	RequestDurationHisto       = "request_duration_seconds"
	ResponseSizeHisto          = "response_size_bytes"

	// ServerLabel distinguishes the listeners counted by ActiveConnectionsGauge
	ServerLabel = "server"
)

// Metrics is the module function for this package that adds the default request handling metrics.
func Metrics() []xmetrics.Metric {
	return []xmetrics.Metric{
		{
			Name:       APIRequestsCounter,
			Type:       xmetrics.CounterType,
			Help:       "A counter for requests to the handler",
			LabelNames: []string{"code", "method"},
		},
		{
			Name: InFlightRequestsGauge,
			Type: xmetrics.GaugeType,
			Help: "A gauge of requests currently being served by the handler.",
		},
		{
			Name:       ActiveConnectionsGauge,
			Type:       xmetrics.GaugeType,
			Help:       "The number of active connections associated with a listener",
			LabelNames: []string{ServerLabel},
		},
		{
			Name:       RejectedConnectionsCounter,
			Type:       xmetrics.CounterType,
			Help:       "The number of connections rejected because a listener was at its maximum",
			LabelNames: []string{ServerLabel},
		},
		{
			Name:       RequestDurationHisto,
			Type:       xmetrics.HistogramType,
			Help:       "A histogram of latencies for requests.",
			LabelNames: []string{"code", "method"},
			Buckets:    []float64{.005, .025, .1, .25, .5, 1, 2.5, 5, 10},
		},
		{
			Name:    ResponseSizeHisto,
			Type:    xmetrics.HistogramType,
			Help:    "A histogram of response sizes for requests.",
			Buckets: []float64{200, 1024, 16384, 131072, 1048576, 8388608},
		},
	}
}
