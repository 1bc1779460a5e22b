// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes microphone recordings stored as MP3.
//
// This package uses github.com/hajimehoshi/go-mp3, which always produces
// 16-bit little-endian stereo. The returned audio.Source therefore reports
// two channels even for mono files; audio.LoadClip folds them back down.
package mp3
