// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"errors"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xmidt-org/resourceserver/xviper"
)

// NewFlagSet produces the standard command line for an application: --file/-f names a
// configuration file explicitly, while --name/-n changes the configuration name searched for.
func NewFlagSet(applicationName string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(applicationName, pflag.ContinueOnError)
	fs.StringP(xviper.DefaultFileFlag, "f", "", "the configuration file to use.  Overrides --name.")
	fs.StringP(xviper.DefaultNameFlag, "n", applicationName, "the configuration name to search for")
	return fs
}

// NewViper parses the given arguments, which must not include the program name, and produces a
// Viper instance configured with the standard search paths and environment prefix.  A missing
// configuration file is tolerated unless one was explicitly requested with --file.
func NewViper(applicationName string, arguments []string) (*viper.Viper, error) {
	fs := NewFlagSet(applicationName)
	if err := fs.Parse(arguments); err != nil {
		return nil, err
	}

	v, err := xviper.New(xviper.StdOptions(applicationName, fs))
	if err != nil {
		return nil, err
	}

	err = v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		err = nil
	}

	return v, err
}
