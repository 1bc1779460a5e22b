// SPDX-License-Identifier: EPL-2.0

// Package wav decodes microphone recordings stored as WAV and writes
// stereo mixdowns.
//
// It uses github.com/go-audio/wav for chunk parsing and encoding.
//
// # Decoding
//
// Signed integer PCM at 16, 24 or 32 bits is supported, any channel count and
// sample rate:
//
//	file, _ := os.Open("assets/audio/0FL.wav")
//	src, err := wav.Decoder{}.Decode(file)
//
// The returned audio.Source yields float32 samples in [-1.0, 1.0).
// Inputs that are not io.ReadSeeker are buffered in memory first.
//
// # Writing
//
// Writer encodes interleaved float32 frames as 16-bit PCM, or at another
// depth through NewWriterDepth:
//
//	out, _ := os.Create("walk.wav")
//	w, _ := wav.NewWriter(out, 44100, 2)
//	_ = w.Write(frames)
//	_ = w.Close()
//
// # Errors
//
//   - ErrNotWavFile: the input has no RIFF/WAVE header
//   - ErrOnlyPCMSupported: compressed or float WAV
//   - ErrUnsupportedBitDepth: bit depth other than 16/24/32
//   - ErrUnsupportedWavLayout: missing or malformed fmt chunk
package wav
