// SPDX-License-Identifier: EPL-2.0

// Package audspace places a listener among a row of four-microphone sound
// sources and mixes what it would hear.
//
// Every source carries four looping recordings, one per microphone facing
// (front-left, front-right, back-right, back-left). Each tick the listener's
// position and heading set the amplitude and stereo pan of all four
// channels of every source; see package spatial for the model itself.
//
// # Supported Formats
//
// Recordings are decoded through an audio.Registry. NewRegistry registers:
//   - WAV (PCM 16/24/32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16/24/32-bit) via formats/aiff
//
// # Quick Start
//
//	cfg, _ := config.Load("audspace.toml")
//	eng, _ := audspace.New(cfg)
//	defer eng.Close()
//
//	eng.Array.StartAll()
//	d := eng.Driver(eng.Traversal())
//	d.Tick()
//
//	// eng.Mixer is an audio.Source producing interleaved stereo float32.
//
// The cmd/audspace binary wraps this with real-time playback, offline
// rendering to WAV and a layout inspector.
package audspace
