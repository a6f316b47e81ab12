// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/xmidt-org/resourceserver/resource/resourcehttp"
	"github.com/xmidt-org/resourceserver/server"
	"go.uber.org/fx"
)

const applicationName = server.DefaultServerName

// provide assembles the application.  The arguments must not include the program name.
func provide(arguments []string) fx.Option {
	return fx.Options(
		server.Module(applicationName, arguments),
		server.ProvideMetrics(resourcehttp.Metrics),
		fx.Provide(
			NewResources,
			NewStore,
			fx.Annotate(NewPrimaryHandler, fx.ResultTags(`name:"primary"`)),
		),
	)
}

func main() {
	app := fx.New(provide(os.Args[1:]))
	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to start %s: %s\n", applicationName, err)
		os.Exit(1)
	}

	app.Run()
}
