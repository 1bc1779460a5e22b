// SPDX-License-Identifier: EPL-2.0

package config

import "errors"

var (
	ErrUnknownKey  = errors.New("unknown config key")
	ErrBadDuration = errors.New("invalid duration")
	ErrOutOfRange  = errors.New("value out of range")
)
