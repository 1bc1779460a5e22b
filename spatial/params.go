// SPDX-License-Identifier: EPL-2.0

package spatial

import (
	"fmt"
	"math"
)

// Falloff selects the distance used to fade a source out.
type Falloff int

const (
	// FalloffGlobal fades every source over Params.AmpRange.
	FalloffGlobal Falloff = iota
	// FalloffSourceRadius fades each source over its own sound radius.
	FalloffSourceRadius
)

func (f Falloff) String() string {
	switch f {
	case FalloffGlobal:
		return "global"
	case FalloffSourceRadius:
		return "source-radius"
	}

	return fmt.Sprintf("Falloff(%d)", int(f))
}

// ParseFalloff accepts the names produced by Falloff.String.
func ParseFalloff(s string) (Falloff, error) {
	switch s {
	case "", "global":
		return FalloffGlobal, nil
	case "source-radius":
		return FalloffSourceRadius, nil
	}

	return 0, configErr("falloff", fmt.Errorf("unknown mode %q", s))
}

// Installation defaults.
const (
	DefaultAmpRange         = 25.0
	DefaultPanOffsetDeg     = 45.0
	DefaultHeadingDamping   = 0.8
	DefaultReferenceWidth   = 500.0
	DefaultReferenceHeight  = 500.0
	DefaultAudioRadius      = 40.0
	DefaultGraphicRadius    = 5.0
	DefaultSourceCount      = 20
	DefaultFirstOffset      = 127.0
	DefaultOffsetSpacing    = -5.0
	DefaultRecordingsPrefix = "assets/audio/"
)

// Params holds every tunable of the engine.
type Params struct {
	// AmpRange is the distance at which a source becomes silent.
	AmpRange float64
	// PanOffsetDeg bounds the pan sweep; beyond it pan saturates.
	PanOffsetDeg float64
	// MicAngles is the facing angle of each microphone.
	MicAngles [NumChannels]float64

	HeadingDamping   float64
	HeadingHalfRange float64

	AudioRadius   float64
	GraphicRadius float64

	// ReferenceWidth and ReferenceHeight span the simulated area. Sources sit
	// on the vertical centre line; offsets are percentages of the height.
	ReferenceWidth  float64
	ReferenceHeight float64

	Falloff Falloff
	Naming  RecordingNaming
}

// DefaultMicAngles are the canonical microphone directions.
func DefaultMicAngles() [NumChannels]float64 {
	return [NumChannels]float64{
		FrontLeft:  -45,
		FrontRight: 45,
		BackRight:  135,
		BackLeft:   -135,
	}
}

func DefaultParams() Params {
	return Params{
		AmpRange:         DefaultAmpRange,
		PanOffsetDeg:     DefaultPanOffsetDeg,
		MicAngles:        DefaultMicAngles(),
		HeadingDamping:   DefaultHeadingDamping,
		HeadingHalfRange: DefaultReferenceWidth / 2,
		AudioRadius:      DefaultAudioRadius,
		GraphicRadius:    DefaultGraphicRadius,
		ReferenceWidth:   DefaultReferenceWidth,
		ReferenceHeight:  DefaultReferenceHeight,
		Falloff:          FalloffGlobal,
		Naming:           DefaultNaming(),
	}
}

// DefaultOffsets returns the installation's source offsets: 127, 122, ... 32.
func DefaultOffsets() []float64 {
	return EvenOffsets(DefaultSourceCount, DefaultFirstOffset, DefaultOffsetSpacing)
}

// EvenOffsets returns count offsets starting at first, step apart.
func EvenOffsets(count int, first, step float64) []float64 {
	out := make([]float64, 0, max(count, 0))
	for i := range count {
		out = append(out, first+float64(i)*step)
	}

	return out
}

// HeadingModel derived from the heading fields.
func (p Params) HeadingModel() HeadingModel {
	return HeadingModel{Damping: p.HeadingDamping, HalfRange: p.HeadingHalfRange}
}

func positive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return configErr(field, ErrNotFinite)
	}
	if v <= 0 {
		return configErr(field, fmt.Errorf("%w, got %v", ErrNonPositive, v))
	}

	return nil
}

func nonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return configErr(field, ErrNotFinite)
	}
	if v < 0 {
		return configErr(field, fmt.Errorf("%w, got %v", ErrNegative, v))
	}

	return nil
}

// Validate returns a *ConfigurationError for the first bad field.
func (p Params) Validate() error {
	checks := []error{
		positive("amp range", p.AmpRange),
		positive("pan offset", p.PanOffsetDeg),
		positive("reference width", p.ReferenceWidth),
		positive("reference height", p.ReferenceHeight),
		nonNegative("heading half range", p.HeadingHalfRange),
		nonNegative("audio radius", p.AudioRadius),
		nonNegative("graphic radius", p.GraphicRadius),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}

	if math.IsNaN(p.HeadingDamping) || math.IsInf(p.HeadingDamping, 0) {
		return configErr("heading damping", ErrNotFinite)
	}
	for pos, a := range p.MicAngles {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return configErr(Position(pos).String()+" mic angle", ErrNotFinite)
		}
	}

	switch p.Falloff {
	case FalloffGlobal:
	case FalloffSourceRadius:
		if err := positive("audio radius", p.AudioRadius); err != nil {
			return err
		}
	default:
		return configErr("falloff", fmt.Errorf("unknown mode %d", int(p.Falloff)))
	}

	return p.Naming.Validate()
}
