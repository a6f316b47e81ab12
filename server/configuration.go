// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"net/http"
	"time"

	"github.com/spf13/viper"
	"github.com/xmidt-org/resourceserver/xhttp"
	"github.com/xmidt-org/resourceserver/xviper"
	"go.uber.org/zap"
)

// Server is the externally configurable description of a single HTTP server
type Server struct {
	// Name identifies this server in logs and in the active_connections metric
	Name string `json:"name"`

	// Address is the bind address, e.g. ":8080"
	Address string `json:"address"`

	ReadTimeout       time.Duration `json:"readTimeout"`
	ReadHeaderTimeout time.Duration `json:"readHeaderTimeout"`
	WriteTimeout      time.Duration `json:"writeTimeout"`
	IdleTimeout       time.Duration `json:"idleTimeout"`
	MaxHeaderBytes    int           `json:"maxHeaderBytes"`
	DisableKeepAlives bool          `json:"disableKeepAlives"`

	// MaxConnections limits concurrent connections.  Nonpositive values mean no limit.
	MaxConnections int `json:"maxConnections"`

	// CertificateFile and KeyFile enable TLS when both are set
	CertificateFile string `json:"certificateFile"`
	KeyFile         string `json:"keyFile"`

	// Header holds static headers written to every response
	Header http.Header `json:"header"`
}

// options produces the xhttp.ServerOptions for this server
func (s Server) options(logger *zap.Logger) xhttp.ServerOptions {
	return xhttp.ServerOptions{
		Logger:            logger,
		Address:           s.Address,
		ReadTimeout:       s.ReadTimeout,
		ReadHeaderTimeout: s.ReadHeaderTimeout,
		WriteTimeout:      s.WriteTimeout,
		IdleTimeout:       s.IdleTimeout,
		MaxHeaderBytes:    s.MaxHeaderBytes,
		DisableKeepAlives: s.DisableKeepAlives,
		CertificateFile:   s.CertificateFile,
		KeyFile:           s.KeyFile,
	}
}

// Configuration holds both servers run by this package
type Configuration struct {
	Primary Server `json:"primary"`
	Health  Server `json:"health"`

	// ShutdownTimeout bounds graceful shutdown of each server
	ShutdownTimeout time.Duration `json:"shutdownTimeout"`
}

// DefaultConfiguration returns the configuration used when nothing is supplied externally
func DefaultConfiguration(applicationName string) Configuration {
	return Configuration{
		Primary: Server{
			Name:    applicationName,
			Address: DefaultPrimaryAddress,
		},
		Health: Server{
			Name:    applicationName + healthSuffix,
			Address: DefaultHealthAddress,
		},
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// NewConfiguration unmarshals the ServersKey subtree over DefaultConfiguration
func NewConfiguration(applicationName string, v *viper.Viper) (Configuration, error) {
	c := DefaultConfiguration(applicationName)
	if err := xviper.UnmarshalKey(v, ServersKey, &c); err != nil {
		return Configuration{}, err
	}

	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = DefaultShutdownTimeout
	}

	c.Primary.Header = canonicalHeader(c.Primary.Header)
	c.Health.Header = canonicalHeader(c.Health.Header)
	return c, nil
}

// canonicalHeader restores canonical header names, since Viper lowercases every key
func canonicalHeader(h http.Header) http.Header {
	if len(h) == 0 {
		return h
	}

	canonical := make(http.Header, len(h))
	for k, v := range h {
		canonical[http.CanonicalHeaderKey(k)] = append(canonical[http.CanonicalHeaderKey(k)], v...)
	}

	return canonical
}
