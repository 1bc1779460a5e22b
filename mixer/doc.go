// SPDX-License-Identifier: EPL-2.0

// Package mixer plays decoded recordings as looping voices and sums them
// into one interleaved stereo stream.
//
// A Voice is the playback control of one microphone channel: it satisfies
// spatial.Playback, so the engine sets its amplitude and pan every tick
// while an output device pulls samples from the Mixer on another goroutine.
// Gain changes are ramped across one read to avoid zipper noise.
//
//	m := mixer.New(44100)
//	loader := mixer.NewLoader(os.DirFS("."), registry, m)
//	arr, err := spatial.NewSoundSourceArray("assets/audio/", offsets, loader, params)
//
// Mixer.ReadSamples never returns io.EOF: voices loop until the process ends.
package mixer
