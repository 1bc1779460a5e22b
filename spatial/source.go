// SPDX-License-Identifier: EPL-2.0

package spatial

// Snapshot is the listener state for one tick. Read it once per tick and
// pass the same value to every source.
type Snapshot struct {
	X, Y       float64
	HeadingDeg float64
}

// SoundSource is a positioned emitter with four directional channels.
type SoundSource struct {
	id            string
	x, y          float64
	graphicRadius float64
	soundRadius   float64
	playing       bool
	channels      [NumChannels]Channel

	ampRange  float64
	panOffset float64
}

// NewSoundSource wires the four playbacks of desc to a source at (x, y).
func NewSoundSource(desc SourceDescriptor, x, y float64, voices [NumChannels]Playback, params Params) (*SoundSource, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	s := &SoundSource{
		id:            desc.ID,
		x:             x,
		y:             y,
		graphicRadius: params.GraphicRadius,
		soundRadius:   params.AudioRadius,
		ampRange:      params.AmpRange,
		panOffset:     params.PanOffsetDeg,
	}
	if params.Falloff == FalloffSourceRadius {
		s.ampRange = params.AudioRadius
	}

	for _, pos := range Positions {
		if voices[pos] == nil {
			return nil, configErr(desc.ID+" "+pos.String()+" playback", ErrMissingRecording)
		}
		s.channels[pos] = Channel{
			position: pos,
			angle:    params.MicAngles[pos],
			path:     desc.Recordings[pos],
			playback: voices[pos],
		}
	}

	return s, nil
}

func (s *SoundSource) ID() string             { return s.id }
func (s *SoundSource) X() float64             { return s.x }
func (s *SoundSource) Y() float64             { return s.y }
func (s *SoundSource) GraphicRadius() float64 { return s.graphicRadius }
func (s *SoundSource) SoundRadius() float64   { return s.soundRadius }

// Playing reports whether Start has been called.
func (s *SoundSource) Playing() bool { return s.playing }

// Channel returns the channel at pos.
func (s *SoundSource) Channel(pos Position) *Channel { return &s.channels[pos] }

// Start begins looping all four channels. Only the first call has an effect.
func (s *SoundSource) Start() {
	if s.playing {
		return
	}

	for i := range s.channels {
		s.channels[i].playback.StartLoop()
	}
	s.playing = true
}

// Update spatializes every channel against snap. Only the vertical distance
// between listener and source contributes to the distance weight.
func (s *SoundSource) Update(snap Snapshot) {
	for i := range s.channels {
		c := &s.channels[i]
		c.apply(Spatialize(snap.HeadingDeg, c.angle, s.y, snap.Y, s.ampRange, s.panOffset))
	}
}
