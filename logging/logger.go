// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	callerKey  = "caller"
	messageKey = "msg"
	errorKey   = "error"
)

// CallerKey returns the logging key to be used for the stack location of the logging call
func CallerKey() string {
	return callerKey
}

// MessageKey returns the logging key to be used for the textual message of the log entry
func MessageKey() string {
	return messageKey
}

// ErrorKey returns the logging key to be used for error instances
func ErrorKey() string {
	return errorKey
}

// New creates a zap Logger from a set of options.  The options object can be nil,
// in which case a logger that writes console output to os.Stdout at the ERROR level is returned.
// The returned logger records the caller of each logging statement.
func New(o *Options) *zap.Logger {
	return zap.New(
		zapcore.NewCore(o.encoder(), o.output(), o.level()),
		zap.AddCaller(),
		zap.ErrorOutput(zapcore.Lock(os.Stderr)),
	)
}
