// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes microphone recordings stored as AIFF.
//
// This package uses github.com/go-audio/aiff. Signed PCM at 16, 24 and 32
// bits is supported, any channel count and sample rate:
//
//	file, _ := os.Open("assets/audio/3BR.aif")
//	src, err := aiff.Decoder{}.Decode(file)
//
// Inputs that are not io.ReadSeeker are read fully into memory first,
// since go-audio seeks between chunks.
package aiff
