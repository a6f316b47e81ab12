// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resourcehttp

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/provider"
	"github.com/xmidt-org/resourceserver/xmetrics"
)

const (
	RequestsCounter    = "resource_requests_total"
	BytesServedCounter = "resource_bytes_served_total"

	OutcomeLabel = "outcome"

	SuccessOutcome     = "success"
	NotFoundOutcome    = "not_found"
	InvalidOutcome     = "invalid"
	ErrorOutcome       = "error"
	BadOverrideOutcome = "bad_override"
)

// Metrics is the module function for this package
func Metrics() []xmetrics.Metric {
	return []xmetrics.Metric{
		{
			Name:       RequestsCounter,
			Type:       xmetrics.CounterType,
			Help:       "The number of resource requests, by outcome",
			LabelNames: []string{OutcomeLabel},
		},
		{
			Name: BytesServedCounter,
			Type: xmetrics.CounterType,
			Help: "The total payload bytes of resources resolved by GET requests",
		},
	}
}

// Measures is the set of metrics recorded by a Handler
type Measures struct {
	Requests    metrics.Counter
	BytesServed metrics.Counter
}

// NewMeasures produces Measures from a provider, which must have had Metrics registered
func NewMeasures(p provider.Provider) Measures {
	return Measures{
		Requests:    p.NewCounter(RequestsCounter),
		BytesServed: p.NewCounter(BytesServedCounter),
	}
}
