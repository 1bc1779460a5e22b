// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes microphone recordings stored as Ogg Vorbis,
// using github.com/jfreymuth/oggvorbis.
package vorbis
