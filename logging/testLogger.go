// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// testLogger is implemented by testing.T and testing.B
type testLogger interface {
	Log(...interface{})
}

// testWriter implements zapcore.WriteSyncer and delegates to a testLogger
type testWriter struct {
	testLogger
}

func (t testWriter) Write(data []byte) (int, error) {
	t.testLogger.Log(string(data))
	return len(data), nil
}

func (t testWriter) Sync() error {
	return nil
}

// NewTestLogger produces a zap Logger which delegates to the supplied testing log.  All levels are
// enabled, so that tests see all log output by default.
func NewTestLogger(t testLogger) *zap.Logger {
	return zap.New(
		zapcore.NewCore((*Options)(nil).encoder(), testWriter{t}, zapcore.DebugLevel),
		zap.AddCaller(),
	)
}
