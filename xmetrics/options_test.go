// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptionsDefault(t *testing.T, o *Options) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	assert.Equal(DefaultNamespace, o.namespace())
	assert.Equal(DefaultSubsystem, o.subsystem())
	assert.Empty(o.Module())

	pr := o.registry()
	require.NotNil(pr)

	families, err := pr.Gather()
	require.NoError(err)
	assert.NotEmpty(families)
}

func testOptionsCustom(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		o       = Options{
			Namespace:               "custom_namespace",
			Subsystem:               "custom_subsystem",
			Pedantic:                true,
			DisableGoCollector:      true,
			DisableProcessCollector: true,
			Metrics: []Metric{
				{Name: "counter", Type: CounterType},
			},
		}
	)

	assert.Equal("custom_namespace", o.namespace())
	assert.Equal("custom_subsystem", o.subsystem())
	assert.Equal([]Metric{{Name: "counter", Type: CounterType}}, o.Module())

	pr := o.registry()
	require.NotNil(pr)

	families, err := pr.Gather()
	require.NoError(err)
	assert.Empty(families)
}

func TestOptions(t *testing.T) {
	t.Run("Nil", func(t *testing.T) { testOptionsDefault(t, nil) })
	t.Run("Default", func(t *testing.T) { testOptionsDefault(t, new(Options)) })
	t.Run("Custom", testOptionsCustom)
}
