// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/transforms"
)

// Clip is a fully decoded mono recording held in memory so it can be
// looped without touching the decoder again.
type Clip struct {
	Samples    []float32
	SampleRate int
}

// Duration in seconds.
func (c *Clip) Duration() float64 {
	if c.SampleRate == 0 {
		return 0
	}

	return float64(len(c.Samples)) / float64(c.SampleRate)
}

// Normalize rescales the clip so its loudest sample has magnitude 1.
// Silent clips are left untouched.
func (c *Clip) Normalize() {
	if len(c.Samples) == 0 {
		return
	}

	buf := &goaudio.FloatBuffer{
		Format: &goaudio.Format{NumChannels: 1, SampleRate: c.SampleRate},
		Data:   make([]float64, len(c.Samples)),
	}
	for i, s := range c.Samples {
		buf.Data[i] = float64(s)
	}

	transforms.NormalizeMax(buf)

	for i, v := range buf.Data {
		c.Samples[i] = float32(v)
	}
}

// LoadClip drains src into a mono Clip at targetRate.
//
// The pipeline is:
//  1. Resample to targetRate with cubic interpolation (skipped when rates match)
//  2. Fold to mono by averaging channels
//  3. Collect every sample until io.EOF
//
// src is closed before returning.
func LoadClip(src Source, targetRate int) (*Clip, error) {
	if targetRate <= 0 {
		return nil, ErrInvalidRate
	}

	var stream Source = src
	if src.SampleRate() != targetRate {
		stream = NewResampler(stream, targetRate)
	}
	mono := NewMonoMixer(stream)
	defer mono.Close()

	samples := make([]float32, 0, targetRate)
	buf := make([]float32, 4096)

	for {
		n, err := mono.ReadSamples(buf)
		samples = append(samples, buf[:n]...)

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading clip: %w", err)
		}
	}

	if len(samples) == 0 {
		return nil, ErrEmptyClip
	}

	return &Clip{Samples: samples, SampleRate: targetRate}, nil
}
