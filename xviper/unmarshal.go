// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xviper

import (
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// DecodeHook is the mapstructure hook used for all configuration: durations, comma-separated
// slices, and any type implementing encoding.TextUnmarshaler.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	)
}

type keyUnmarshaler interface {
	UnmarshalKey(string, interface{}, ...viper.DecoderConfigOption) error
}

// UnmarshalKey decodes the given key into target using DecodeHook.  A missing key leaves
// target unchanged.
func UnmarshalKey(u keyUnmarshaler, key string, target interface{}) error {
	return u.UnmarshalKey(key, target, viper.DecodeHook(DecodeHook()))
}
