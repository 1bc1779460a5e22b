// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fakes shared by tests: synthetic sources and a
// playback recorder.
package audiotest

import "io"

// Signal is a finite synthetic recording. It implements audio.Source
// without importing it.
type Signal struct {
	rate     int
	channels int
	frames   int
	at       func(frame, channel int) float32

	pos    int
	closed bool
}

// Func yields frames frames of rate Hz audio whose samples come from at.
func Func(rate, channels, frames int, at func(frame, channel int) float32) *Signal {
	return &Signal{rate: rate, channels: channels, frames: frames, at: at}
}

// Constant yields frames frames with every sample equal to v.
func Constant(rate, channels, frames int, v float32) *Signal {
	return Func(rate, channels, frames, func(int, int) float32 { return v })
}

func (s *Signal) SampleRate() int { return s.rate }
func (s *Signal) Channels() int   { return s.channels }

func (s *Signal) Close() error {
	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *Signal) Closed() bool { return s.closed }

// Remaining returns the frames not yet read.
func (s *Signal) Remaining() int { return s.frames - s.pos }

// ReadSamples fills whole frames. The read that drains the signal returns
// io.EOF along with its samples.
func (s *Signal) ReadSamples(dst []float32) (int, error) {
	n := min(len(dst)/s.channels, s.Remaining())
	if n <= 0 && s.Remaining() == 0 {
		return 0, io.EOF
	}

	i := 0
	for f := s.pos; f < s.pos+n; f++ {
		for ch := range s.channels {
			dst[i] = s.at(f, ch)
			i++
		}
	}
	s.pos += n

	if s.Remaining() == 0 {
		return i, io.EOF
	}

	return i, nil
}
