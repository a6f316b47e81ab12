// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"
	"github.com/xmidt-org/resourceserver/logging"
	"github.com/xmidt-org/resourceserver/logging/logginghttp"
	"github.com/xmidt-org/resourceserver/xhttp"
	"github.com/xmidt-org/resourceserver/xlistener"
	"github.com/xmidt-org/resourceserver/xmetrics"
	"github.com/xmidt-org/resourceserver/xviper"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// MetricsIn is the set of dependencies required to build the Registry
type MetricsIn struct {
	fx.In

	Viper   *viper.Viper
	Metrics [][]xmetrics.Metric `group:"metrics"`
}

// NewRegistry builds the Registry from the MetricsKey subtree, which may declare metrics of its
// own, along with every slice of metrics supplied to the MetricsGroup.
func NewRegistry(in MetricsIn) (xmetrics.Registry, error) {
	o := new(xmetrics.Options)
	if err := xviper.UnmarshalKey(in.Viper, MetricsKey, o); err != nil {
		return nil, err
	}

	modules := make([]xmetrics.Module, 0, len(in.Metrics))
	for _, m := range in.Metrics {
		m := m
		modules = append(modules, func() []xmetrics.Metric { return m })
	}

	return xmetrics.NewRegistry(o, modules...)
}

// NewLogger builds the process logger and flushes it when the application stops
func NewLogger(lc fx.Lifecycle, v *viper.Viper) (*zap.Logger, error) {
	logger, _, err := logging.NewFromViper(v)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			// Sync reports errors for console descriptors on some platforms
			_ = logger.Sync()
			return nil
		},
	})

	return logger, nil
}

// ProvideMetrics supplies a slice of metrics to the MetricsGroup
func ProvideMetrics(m func() []xmetrics.Metric) fx.Option {
	return fx.Provide(
		fx.Annotate(m, fx.ResultTags(`group:"metrics"`)),
	)
}

// PrimaryIn is the set of dependencies for the primary server
type PrimaryIn struct {
	fx.In

	Lifecycle     fx.Lifecycle
	Shutdowner    fx.Shutdowner
	Logger        *zap.Logger
	Registry      xmetrics.Registry
	Configuration Configuration
	Handler       http.Handler `name:"primary"`
}

// RunPrimary decorates the application's primary handler and binds the primary server to
// the fx lifecycle.
func RunPrimary(in PrimaryIn) {
	chain := alice.New(
		logginghttp.PopulateLogger(in.Logger),
		xhttp.StaticHeaders(in.Configuration.Primary.Header),
		Instrument(in.Registry),
	)

	bind(in.Lifecycle, in.Shutdowner, in.Logger, in.Registry, in.Configuration.Primary, in.Configuration, chain.Then(in.Handler))
}

// HealthIn is the set of dependencies for the health server
type HealthIn struct {
	fx.In

	Lifecycle     fx.Lifecycle
	Shutdowner    fx.Shutdowner
	Logger        *zap.Logger
	Registry      xmetrics.Registry
	Configuration Configuration
}

// NewHealthHandler produces the handler served by the health server:  a liveness check at
// HealthPath and the Prometheus exposition at MetricsPath.
func NewHealthHandler(logger *zap.Logger, registry xmetrics.Registry) http.Handler {
	router := mux.NewRouter()
	router.Handle(MetricsPath, promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		ErrorLog: zap.NewStdLog(logger),
	})).Methods(http.MethodGet)

	router.Handle(HealthPath, xhttp.NewJSONConstant(http.StatusOK, `{"status":"up"}`)).
		Methods(http.MethodGet, http.MethodHead)

	return router
}

// RunHealth binds the health server to the fx lifecycle
func RunHealth(in HealthIn) {
	h := alice.New(xhttp.StaticHeaders(in.Configuration.Health.Header)).
		Then(NewHealthHandler(in.Logger, in.Registry))

	bind(in.Lifecycle, in.Shutdowner, in.Logger, in.Registry, in.Configuration.Health, in.Configuration, h)
}

// bind appends the hooks that listen, serve, and gracefully shut down a single server.  A server
// that exits unexpectedly shuts down the whole application.
func bind(lc fx.Lifecycle, shutdowner fx.Shutdowner, logger *zap.Logger, registry xmetrics.Registry, s Server, c Configuration, h http.Handler) {
	logger = logger.With(zap.String(xhttp.ServerKey(), s.Name))
	o := s.options(logger)
	server := xhttp.NewServer(o)
	server.Handler = h

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			l, err := xlistener.New(xlistener.Options{
				Logger:         logger,
				MaxConnections: s.MaxConnections,
				Rejected:       registry.NewCounter(RejectedConnectionsCounter).With(ServerLabel, s.Name),
				Active:         registry.NewGauge(ActiveConnectionsGauge).With(ServerLabel, s.Name),
				Address:        s.Address,
			})

			if err != nil {
				return err
			}

			o.Listener = l
			logger.Info("listening", zap.Stringer("address", l.Addr()))
			starter := xhttp.NewStarter(o.StartOptions(), server)
			go func() {
				if err := starter(); !errors.Is(err, http.ErrServerClosed) {
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, c.ShutdownTimeout)
			defer cancel()
			return server.Shutdown(ctx)
		},
	})
}

// Module produces the fx options that run the primary and health servers for an application.
// The arguments must not include the program name.  Callers supply the primary http.Handler,
// annotated with the name "primary".
func Module(applicationName string, arguments []string) fx.Option {
	return fx.Options(
		fx.Provide(
			func() (*viper.Viper, error) {
				return NewViper(applicationName, arguments)
			},
			func(v *viper.Viper) (Configuration, error) {
				return NewConfiguration(applicationName, v)
			},
			NewLogger,
			NewRegistry,
		),
		ProvideMetrics(Metrics),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		fx.Invoke(RunPrimary, RunHealth),
	)
}
