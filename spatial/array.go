// SPDX-License-Identifier: EPL-2.0

package spatial

import (
	"fmt"
	"math"
	"slices"
)

// SoundSourceArray is the fixed, ordered set of sources of an installation.
type SoundSourceArray struct {
	prefix  string
	offsets []float64
	sources []*SoundSource
}

// NewSoundSourceArray builds one source per offset, in order. Source i is
// identified by prefix+i, sits at x = ReferenceWidth/2 and
// y = ReferenceHeight*offset/100, and its recordings are opened through loader.
func NewSoundSourceArray(prefix string, offsets []float64, loader Loader, params Params) (*SoundSourceArray, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(offsets) == 0 {
		return nil, configErr("offsets", ErrNoOffsets)
	}
	if loader == nil {
		return nil, configErr("loader", ErrNoLoader)
	}
	for i, off := range offsets {
		if math.IsNaN(off) || math.IsInf(off, 0) {
			return nil, configErr(fmt.Sprintf("offset %d", i), ErrNotFinite)
		}
	}

	a := &SoundSourceArray{
		prefix:  prefix,
		offsets: slices.Clone(offsets),
		sources: make([]*SoundSource, 0, len(offsets)),
	}

	x := params.ReferenceWidth / 2
	for i, off := range offsets {
		desc := DescriptorFor(prefix, i, params.Naming)

		var voices [NumChannels]Playback
		for _, pos := range Positions {
			pb, err := loader.Load(desc.Recordings[pos])
			if err != nil {
				return nil, &PlaybackError{Source: i, Channel: pos, Path: desc.Recordings[pos], Err: err}
			}
			voices[pos] = pb
		}

		src, err := NewSoundSource(desc, x, params.ReferenceHeight*off/100, voices, params)
		if err != nil {
			return nil, err
		}
		a.sources = append(a.sources, src)
	}

	return a, nil
}

func (a *SoundSourceArray) Len() int       { return len(a.sources) }
func (a *SoundSourceArray) Prefix() string { return a.prefix }

// Source returns the i-th source.
func (a *SoundSourceArray) Source(i int) *SoundSource { return a.sources[i] }

// Sources returns the sources in construction order. The slice is a copy.
func (a *SoundSourceArray) Sources() []*SoundSource { return slices.Clone(a.sources) }

// Offsets returns the offsets the array was built from.
func (a *SoundSourceArray) Offsets() []float64 { return slices.Clone(a.offsets) }

// StartAll starts every source in order.
func (a *SoundSourceArray) StartAll() {
	for _, s := range a.sources {
		s.Start()
	}
}

// UpdateAll spatializes every source against the same snapshot, in order.
func (a *SoundSourceArray) UpdateAll(snap Snapshot) {
	for _, s := range a.sources {
		s.Update(snap)
	}
}

// Bounds returns the smallest and largest source y.
func (a *SoundSourceArray) Bounds() (minY, maxY float64) {
	minY, maxY = a.sources[0].y, a.sources[0].y
	for _, s := range a.sources[1:] {
		minY = min(minY, s.y)
		maxY = max(maxY, s.y)
	}

	return minY, maxY
}
