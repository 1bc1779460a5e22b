// SPDX-License-Identifier: EPL-2.0

package driver

import "errors"

var (
	ErrBadPointer   = errors.New("malformed pointer position")
	ErrBadFrameRate = errors.New("frame rate must be positive")
	ErrNoTicks      = errors.New("nothing to render")
)
