// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"net/http"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xmidt-org/resourceserver/xmetrics"
)

// InstrumentHandler decorates next with the request metrics defined by Metrics
func InstrumentHandler(r xmetrics.Registry, next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerInFlight(
		r.NewGaugeVec(InFlightRequestsGauge).WithLabelValues(),
		promhttp.InstrumentHandlerDuration(
			r.NewHistogramVec(RequestDurationHisto),
			promhttp.InstrumentHandlerCounter(
				r.NewCounterVec(APIRequestsCounter),
				promhttp.InstrumentHandlerResponseSize(
					r.NewHistogramVec(ResponseSizeHisto),
					next,
				),
			),
		),
	)
}

// Instrument is the alice.Constructor form of InstrumentHandler
func Instrument(r xmetrics.Registry) alice.Constructor {
	return func(next http.Handler) http.Handler {
		return InstrumentHandler(r, next)
	}
}
