// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"slices"
	"sync"

	"github.com/ik5/audspace/audio"
)

// Mixer sums voices into interleaved stereo. It implements audio.Source.
type Mixer struct {
	sampleRate int

	mu     sync.Mutex
	voices []*Voice
	master float32
}

func New(sampleRate int) *Mixer {
	return &Mixer{sampleRate: sampleRate, master: 1}
}

func (m *Mixer) SampleRate() int { return m.sampleRate }
func (m *Mixer) Channels() int   { return 2 }
func (m *Mixer) Close() error    { return nil }

// NewVoice creates a voice for clip and adds it to the mix. The voice is
// silent until StartLoop is called.
func (m *Mixer) NewVoice(path string, clip *audio.Clip) (*Voice, error) {
	if clip == nil || len(clip.Samples) == 0 {
		return nil, audio.ErrEmptyClip
	}
	if clip.SampleRate != m.sampleRate {
		return nil, ErrRateMismatch
	}

	v := newVoice(path, clip)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.voices = append(m.voices, v)

	return v, nil
}

// Voices returns the voices in creation order.
func (m *Mixer) Voices() []*Voice {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.voices)
}

// SetMaster sets the output gain applied after summing.
func (m *Mixer) SetMaster(gain float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.master = max(gain, 0)
}

// ReadSamples fills dst with whole stereo frames. Output is hard-limited
// to [-1, 1]. It never reports io.EOF.
func (m *Mixer) ReadSamples(dst []float32) (int, error) {
	if len(dst)%2 != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	clear(dst)
	frames := len(dst) / 2

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, v := range m.voices {
		v.mixInto(dst, frames)
	}

	for i, s := range dst {
		s *= m.master
		dst[i] = min(max(s, -1), 1)
	}

	return len(dst), nil
}
