// SPDX-License-Identifier: EPL-2.0

// Package spatial turns a listener's position and facing angle into per-channel
// amplitude and stereo pan for a set of fixed sound sources.
//
// Every source was recorded with four directional microphones facing
// front-left, front-right, back-right and back-left. Each frame the driver
// takes one Snapshot of the listener and hands it to
// SoundSourceArray.UpdateAll; each channel then gets
//
//	amplitude = AngleWeight(heading, micAngle) * DistanceWeight(sourceY, listenerY, AmpRange)
//	pan       = PanFor(heading, micAngle, PanOffsetDeg)
//
// and the values are pushed to the channel's Playback. A source fades out
// both when the listener looks away from a microphone and when the listener
// moves away from it along the walking axis.
//
// # Units
//
// Angles are degrees, zero pointing forward, positive clockwise. Pan is -1
// for full left and +1 for full right. Positions use the same planar units
// as AmpRange.
//
// # Errors
//
// Only construction can fail: invalid Params yield *ConfigurationError and a
// recording the Loader cannot open yields *PlaybackError. Update paths never
// fail; every input is clamped.
//
// Nothing in this package is safe for concurrent use. Each tick runs on a
// single goroutine.
package spatial
