// SPDX-License-Identifier: EPL-2.0

// Package device plays an audio.Source on the system output. Building with
// the headless tag swaps the output for a sink that drops everything.
package device

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"sync"

	"github.com/ik5/audspace/audio"
)

// Stream exposes an audio.Source as little-endian float32 bytes, the
// layout the output expects. Once the source fails or ends the stream
// keeps producing silence and Err reports why.
type Stream struct {
	src audio.Source
	buf []float32

	mu  sync.Mutex
	err error
}

func NewStream(src audio.Source) *Stream {
	return &Stream{src: src}
}

func (s *Stream) Read(p []byte) (int, error) {
	channels := s.src.Channels()
	samples := len(p) / 4 / channels * channels
	if samples == 0 {
		return 0, nil
	}

	if cap(s.buf) < samples {
		s.buf = make([]float32, samples)
	}
	buf := s.buf[:samples]

	n := 0
	if s.Err() == nil {
		var err error
		n, err = s.src.ReadSamples(buf)
		if err != nil {
			s.fail(err)
		}
	}
	clear(buf[n:])

	for i, v := range buf {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(v))
	}

	return samples * 4, nil
}

// Err returns the error that stopped the source, if any. A source that
// simply ran out reports io.EOF.
func (s *Stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Stream) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = err
	}
}

// Ended reports whether the source reached its end without failing.
func (s *Stream) Ended() bool {
	return errors.Is(s.Err(), io.EOF)
}
