// SPDX-License-Identifier: EPL-2.0

package spatial

import (
	"errors"
	"fmt"
)

var (
	ErrNonPositive        = errors.New("must be positive")
	ErrNegative           = errors.New("must not be negative")
	ErrNotFinite          = errors.New("must be finite")
	ErrNoOffsets          = errors.New("at least one source offset is required")
	ErrMissingRecording   = errors.New("channel recording is missing")
	ErrDuplicateRecording = errors.New("channel recordings must be distinct")
	ErrNoLoader           = errors.New("recording loader is nil")
)

// ConfigurationError reports a parameter rejected at construction time.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("spatial: invalid %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func configErr(field string, err error) error {
	return &ConfigurationError{Field: field, Err: err}
}

// PlaybackError reports a recording that could not be opened for a channel.
type PlaybackError struct {
	Source  int
	Channel Position
	Path    string
	Err     error
}

func (e *PlaybackError) Error() string {
	return fmt.Sprintf("spatial: source %d channel %s (%s): %v", e.Source, e.Channel, e.Path, e.Err)
}

func (e *PlaybackError) Unwrap() error { return e.Err }
