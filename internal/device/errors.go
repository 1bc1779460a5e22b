// SPDX-License-Identifier: EPL-2.0

package device

import "errors"

var (
	ErrOpen  = errors.New("cannot open audio output")
	ErrClose = errors.New("cannot close audio output")
)
