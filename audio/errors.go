// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize    = errors.New("dst size must be multiple of channels")
	ErrNoExtension       = errors.New("path has no file extension")
	ErrUnsupportedFormat = errors.New("no decoder registered for format")
	ErrEmptyClip         = errors.New("source produced no samples")
	ErrInvalidRate       = errors.New("sample rate must be positive")
)
