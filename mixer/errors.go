// SPDX-License-Identifier: EPL-2.0

package mixer

import "errors"

var (
	ErrRateMismatch = errors.New("clip sample rate differs from mixer rate")
	ErrNoDecoder    = errors.New("no decoder for recording")
)
