// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistryAsGoKitProvider(t *testing.T) {
	var (
		require = require.New(t)

		o = &Options{
			Namespace:               "test",
			Subsystem:               "basic",
			DisableGoCollector:      true,
			DisableProcessCollector: true,
			Metrics: []Metric{
				{Name: "counter", Type: CounterType, Help: "a test counter", LabelNames: []string{"outcome"}},
				{Name: "gauge", Type: GaugeType, Help: "a test gauge"},
				{Name: "histogram", Type: HistogramType, Buckets: []float64{0.5, 1.0, 1.5}},
				{Name: "summary", Type: SummaryType, MaxAge: 15 * time.Hour},
			},
		}
	)

	r, err := NewRegistry(o)
	require.NoError(err)
	require.NotNil(r)

	t.Run("NewCounter", func(t *testing.T) {
		assert := assert.New(t)
		preregistered := r.NewCounter("counter")
		assert.NotNil(preregistered)
		preregistered.With("outcome", "success").Add(2)
		assert.Equal(2.0, testutil.ToFloat64(r.NewCounterVec("counter").WithLabelValues("success")))

		adHoc := r.NewCounter("new_counter")
		assert.NotNil(adHoc)
		adHoc.Add(1)
		assert.Equal(1.0, testutil.ToFloat64(r.NewCounterVec("new_counter")))

		assert.Panics(func() { r.NewCounter("gauge") })
		assert.Panics(func() { r.NewCounter("histogram") })
		assert.Panics(func() { r.NewCounter("summary") })
	})

	t.Run("NewGauge", func(t *testing.T) {
		assert := assert.New(t)
		preregistered := r.NewGauge("gauge")
		assert.NotNil(preregistered)
		preregistered.Set(12)
		assert.Equal(12.0, testutil.ToFloat64(r.NewGaugeVec("gauge")))

		assert.NotNil(r.NewGauge("new_gauge"))
		assert.Panics(func() { r.NewGauge("counter") })
		assert.Panics(func() { r.NewGauge("histogram") })
		assert.Panics(func() { r.NewGauge("summary") })
	})

	t.Run("NewHistogram", func(t *testing.T) {
		assert := assert.New(t)
		assert.NotNil(r.NewHistogram("histogram", 12))
		assert.NotNil(r.NewHistogram("summary", 12))
		assert.NotNil(r.NewHistogram("new_histogram", 12))
		assert.NotNil(r.NewHistogramVec("histogram"))
		assert.NotNil(r.NewSummaryVec("summary"))
		assert.Panics(func() { r.NewHistogram("counter", 12) })
		assert.Panics(func() { r.NewSummaryVec("histogram") })
	})

	t.Run("Gather", func(t *testing.T) {
		assert := assert.New(t)
		count, err := testutil.GatherAndCount(r, "test_basic_counter")
		assert.NoError(err)
		assert.Equal(1, count)
	})
}

func testRegistryModules(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		module = func() []Metric {
			return []Metric{{Name: "module_counter", Type: CounterType}}
		}
	)

	r, err := NewRegistry(nil, module)
	require.NoError(err)
	require.NotNil(r)
	assert.NotNil(r.NewCounterVec("module_counter"))

	r, err = NewRegistry(nil, module, module)
	assert.Error(err)
	assert.Nil(r)

	r, err = NewRegistry(nil, func() []Metric { return []Metric{{Name: "bad", Type: "unsupported"}} })
	assert.Error(err)
	assert.Nil(r)
}

func TestRegistry(t *testing.T) {
	t.Run("AsGoKitProvider", testRegistryAsGoKitProvider)
	t.Run("Modules", testRegistryModules)
}
