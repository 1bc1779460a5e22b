// SPDX-License-Identifier: EPL-2.0

// Package config loads the installation settings from TOML.
//
// Every key is optional; missing keys keep the values of Default. Unknown
// keys are rejected so that typos do not silently fall back to defaults.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/ik5/audspace/spatial"
)

// Duration decodes TOML strings such as "90s" or "2m30s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadDuration, err)
	}
	d.Duration = v

	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Angles holds one value per microphone channel.
type Angles struct {
	FrontLeft  float64 `toml:"fl"`
	FrontRight float64 `toml:"fr"`
	BackRight  float64 `toml:"br"`
	BackLeft   float64 `toml:"bl"`
}

// Names holds one recording file name per microphone channel.
type Names struct {
	FrontLeft  string `toml:"fl"`
	FrontRight string `toml:"fr"`
	BackRight  string `toml:"br"`
	BackLeft   string `toml:"bl"`
}

type Engine struct {
	AmpRange         float64 `toml:"amp_range"`
	PanOffsetDeg     float64 `toml:"pan_offset_deg"`
	MicAngles        Angles  `toml:"mic_angles"`
	HeadingDamping   float64 `toml:"heading_damping"`
	HeadingHalfRange float64 `toml:"heading_half_range"`
	AudioRadius      float64 `toml:"audio_radius"`
	GraphicRadius    float64 `toml:"graphic_radius"`
	Falloff          string  `toml:"falloff"`
}

type Layout struct {
	// Root is the directory recordings are resolved against.
	Root            string    `toml:"root"`
	Prefix          string    `toml:"prefix"`
	Offsets         []float64 `toml:"offsets"`
	ReferenceWidth  float64   `toml:"reference_width"`
	ReferenceHeight float64   `toml:"reference_height"`
	Naming          Names     `toml:"naming"`
	// Normalize scales every recording to full-scale peak on load.
	Normalize       bool      `toml:"normalize"`
}

type Output struct {
	SampleRate int      `toml:"sample_rate"`
	FrameRate  float64  `toml:"frame_rate"`
	Buffer     Duration `toml:"buffer"`
	Master     float64  `toml:"master"`
}

type Listener struct {
	// Easing is the fraction of the remaining distance covered per tick;
	// 1 follows the pointer exactly.
	Easing      float64  `toml:"easing"`
	WindowWidth float64  `toml:"window_width"`
	Traversal   Duration `toml:"traversal"`
	SweepPeriod Duration `toml:"sweep_period"`
}

type Config struct {
	Engine   Engine   `toml:"engine"`
	Layout   Layout   `toml:"layout"`
	Output   Output   `toml:"output"`
	Listener Listener `toml:"listener"`
}

// Default mirrors spatial.DefaultParams plus the installation's runtime settings.
func Default() *Config {
	p := spatial.DefaultParams()

	return &Config{
		Engine: Engine{
			AmpRange:     p.AmpRange,
			PanOffsetDeg: p.PanOffsetDeg,
			MicAngles: Angles{
				FrontLeft:  p.MicAngles[spatial.FrontLeft],
				FrontRight: p.MicAngles[spatial.FrontRight],
				BackRight:  p.MicAngles[spatial.BackRight],
				BackLeft:   p.MicAngles[spatial.BackLeft],
			},
			HeadingDamping:   p.HeadingDamping,
			HeadingHalfRange: p.HeadingHalfRange,
			AudioRadius:      p.AudioRadius,
			GraphicRadius:    p.GraphicRadius,
			Falloff:          p.Falloff.String(),
		},
		Layout: Layout{
			Root:            ".",
			Prefix:          spatial.DefaultRecordingsPrefix,
			Offsets:         spatial.DefaultOffsets(),
			ReferenceWidth:  p.ReferenceWidth,
			ReferenceHeight: p.ReferenceHeight,
			Naming: Names{
				FrontLeft:  p.Naming[spatial.FrontLeft],
				FrontRight: p.Naming[spatial.FrontRight],
				BackRight:  p.Naming[spatial.BackRight],
				BackLeft:   p.Naming[spatial.BackLeft],
			},
		},
		Output: Output{
			SampleRate: 44100,
			FrameRate:  60,
			Buffer:     Duration{80 * time.Millisecond},
			Master:     1,
		},
		Listener: Listener{
			Easing:      1,
			WindowWidth: 1280,
			Traversal:   Duration{2 * time.Minute},
			SweepPeriod: Duration{20 * time.Second},
		},
	}
}

// Parse decodes TOML data on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads and parses the TOML file at path.
func Load(path string) (*Config, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config at %q: %w", path, err)
	}

	cfg, err := Parse(bs)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}

	return cfg, nil
}

// Write encodes cfg as TOML.
func (c *Config) Write(w io.Writer) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Params converts the engine and layout sections.
func (c *Config) Params() (spatial.Params, error) {
	falloff, err := spatial.ParseFalloff(c.Engine.Falloff)
	if err != nil {
		return spatial.Params{}, err
	}

	e, l := c.Engine, c.Layout
	return spatial.Params{
		AmpRange:     e.AmpRange,
		PanOffsetDeg: e.PanOffsetDeg,
		MicAngles: [spatial.NumChannels]float64{
			spatial.FrontLeft:  e.MicAngles.FrontLeft,
			spatial.FrontRight: e.MicAngles.FrontRight,
			spatial.BackRight:  e.MicAngles.BackRight,
			spatial.BackLeft:   e.MicAngles.BackLeft,
		},
		HeadingDamping:   e.HeadingDamping,
		HeadingHalfRange: e.HeadingHalfRange,
		AudioRadius:      e.AudioRadius,
		GraphicRadius:    e.GraphicRadius,
		ReferenceWidth:   l.ReferenceWidth,
		ReferenceHeight:  l.ReferenceHeight,
		Falloff:          falloff,
		Naming: spatial.RecordingNaming{
			spatial.FrontLeft:  l.Naming.FrontLeft,
			spatial.FrontRight: l.Naming.FrontRight,
			spatial.BackRight:  l.Naming.BackRight,
			spatial.BackLeft:   l.Naming.BackLeft,
		},
	}, nil
}

// Validate checks the engine parameters and the runtime sections.
func (c *Config) Validate() error {
	p, err := c.Params()
	if err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}

	switch {
	case len(c.Layout.Offsets) == 0:
		return fmt.Errorf("layout.offsets: %w", spatial.ErrNoOffsets)
	case c.Output.SampleRate <= 0:
		return fmt.Errorf("%w: output.sample_rate %d", ErrOutOfRange, c.Output.SampleRate)
	case c.Output.FrameRate <= 0 || c.Output.FrameRate > float64(c.Output.SampleRate):
		return fmt.Errorf("%w: output.frame_rate %v", ErrOutOfRange, c.Output.FrameRate)
	case c.Output.Buffer.Duration <= 0:
		return fmt.Errorf("%w: output.buffer %v", ErrOutOfRange, c.Output.Buffer)
	case c.Output.Master < 0:
		return fmt.Errorf("%w: output.master %v", ErrOutOfRange, c.Output.Master)
	case c.Listener.Easing <= 0 || c.Listener.Easing > 1:
		return fmt.Errorf("%w: listener.easing %v", ErrOutOfRange, c.Listener.Easing)
	case c.Listener.WindowWidth <= 0:
		return fmt.Errorf("%w: listener.window_width %v", ErrOutOfRange, c.Listener.WindowWidth)
	case c.Listener.Traversal.Duration <= 0:
		return fmt.Errorf("%w: listener.traversal %v", ErrOutOfRange, c.Listener.Traversal)
	case c.Listener.SweepPeriod.Duration <= 0:
		return fmt.Errorf("%w: listener.sweep_period %v", ErrOutOfRange, c.Listener.SweepPeriod)
	case c.Listener.Traversal.Seconds()*c.Output.FrameRate < 1:
		return fmt.Errorf("%w: listener.traversal %v is shorter than one frame", ErrOutOfRange, c.Listener.Traversal)
	case c.Listener.SweepPeriod.Seconds()*c.Output.FrameRate < 1:
		return fmt.Errorf("%w: listener.sweep_period %v is shorter than one frame", ErrOutOfRange, c.Listener.SweepPeriod)
	}

	return nil
}
