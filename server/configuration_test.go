// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfiguration(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		var (
			assert  = assert.New(t)
			require = require.New(t)
		)

		c, err := NewConfiguration("test", viper.New())
		require.NoError(err)
		assert.Equal(DefaultConfiguration("test"), c)
		assert.Equal("test", c.Primary.Name)
		assert.Equal(DefaultPrimaryAddress, c.Primary.Address)
		assert.Equal("test.health", c.Health.Name)
		assert.Equal(DefaultHealthAddress, c.Health.Address)
		assert.Equal(DefaultShutdownTimeout, c.ShutdownTimeout)
	})

	t.Run("Configured", func(t *testing.T) {
		var (
			assert  = assert.New(t)
			require = require.New(t)
			v       = viper.New()
		)

		v.SetConfigType("yaml")
		require.NoError(v.ReadConfig(bytes.NewBufferString(`
servers:
  shutdownTimeout: 3s
  primary:
    address: "127.0.0.1:9000"
    readTimeout: 10s
    maxHeaderBytes: 4096
    header:
      X-Frame-Options: [DENY]
  health:
    name: ops
    disableKeepAlives: true
`)))

		c, err := NewConfiguration("test", v)
		require.NoError(err)
		assert.Equal(3*time.Second, c.ShutdownTimeout)

		assert.Equal("test", c.Primary.Name)
		assert.Equal("127.0.0.1:9000", c.Primary.Address)
		assert.Equal(10*time.Second, c.Primary.ReadTimeout)
		assert.Equal(4096, c.Primary.MaxHeaderBytes)
		assert.Equal([]string{"DENY"}, c.Primary.Header.Values("X-Frame-Options"))
		assert.Equal([]string{"DENY"}, c.Primary.Header["X-Frame-Options"])
		assert.NotContains(c.Primary.Header, "x-frame-options")

		assert.Equal("ops", c.Health.Name)
		assert.Equal(DefaultHealthAddress, c.Health.Address)
		assert.True(c.Health.DisableKeepAlives)
	})

	t.Run("BadDuration", func(t *testing.T) {
		v := viper.New()
		v.Set(ServersKey+".shutdownTimeout", "not a duration")
		_, err := NewConfiguration("test", v)
		assert.Error(t, err)
	})
}

func TestCanonicalHeader(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Nil(t, canonicalHeader(nil))
	})

	t.Run("Merged", func(t *testing.T) {
		assert := assert.New(t)
		h := canonicalHeader(http.Header{
			"x-test":       {"a"},
			"X-TEST":       {"b"},
			"content-type": {"text/plain"},
		})

		assert.Len(h, 2)
		assert.ElementsMatch([]string{"a", "b"}, h["X-Test"])
		assert.Equal([]string{"text/plain"}, h["Content-Type"])
	})
}

func TestServerOptions(t *testing.T) {
	var (
		assert = assert.New(t)
		s      = Server{
			Name:              "test",
			Address:           ":1234",
			ReadTimeout:       time.Second,
			ReadHeaderTimeout: 2 * time.Second,
			WriteTimeout:      3 * time.Second,
			IdleTimeout:       4 * time.Second,
			MaxHeaderBytes:    512,
			DisableKeepAlives: true,
			CertificateFile:   "cert.pem",
			KeyFile:           "key.pem",
		}

		o = s.options(nil)
	)

	assert.Equal(":1234", o.Address)
	assert.Equal(time.Second, o.ReadTimeout)
	assert.Equal(2*time.Second, o.ReadHeaderTimeout)
	assert.Equal(3*time.Second, o.WriteTimeout)
	assert.Equal(4*time.Second, o.IdleTimeout)
	assert.Equal(512, o.MaxHeaderBytes)
	assert.True(o.DisableKeepAlives)
	assert.Equal("cert.pem", o.CertificateFile)
	assert.Equal("key.pem", o.KeyFile)
}
