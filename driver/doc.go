// SPDX-License-Identifier: EPL-2.0

// Package driver runs the frame loop around a spatial.SoundSourceArray.
//
// Each tick the Driver samples a PointerSource once, eases the pointer,
// derives the heading and hands the resulting spatial.Snapshot to
// UpdateAll. Render ties ticks to a mixer and writes the result to a WAV
// file; Run ticks in real time until its context is cancelled.
package driver
