// SPDX-License-Identifier: EPL-2.0

// Package audio turns recordings into loopable clips.
//
// A Source streams interleaved float32 samples in [-1, 1]. Decoders in
// the formats packages produce Sources, and a Registry picks the decoder
// for a file by its extension:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, err := reg.ForPath("rain/0FL.wav")
//
// LoadClip drains a Source into memory at the mix rate. On the way it
// runs the stream through a Resampler (cubic interpolation, with a
// one-pole low-pass when reducing the rate) and a MonoMixer, since each
// microphone channel is played as a single voice:
//
//	clip, err := audio.LoadClip(src, 44100)
//
// Sources report io.EOF once drained; the read that hits the end may
// return samples along with it.
package audio
