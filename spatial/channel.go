// SPDX-License-Identifier: EPL-2.0

package spatial

import "fmt"

// Position identifies one of the four microphones of a source.
type Position int

const (
	FrontLeft Position = iota
	FrontRight
	BackRight
	BackLeft
)

// NumChannels is the fixed number of channels per source.
const NumChannels = 4

// Positions in update order.
var Positions = [NumChannels]Position{FrontLeft, FrontRight, BackRight, BackLeft}

func (p Position) String() string {
	switch p {
	case FrontLeft:
		return "FL"
	case FrontRight:
		return "FR"
	case BackRight:
		return "BR"
	case BackLeft:
		return "BL"
	}

	return fmt.Sprintf("Position(%d)", int(p))
}

// Playback is the per-channel control surface of the audio engine.
// Calls must not block.
type Playback interface {
	// SetAmplitude takes a value in [0, 1].
	SetAmplitude(amp float64)
	// SetPan takes a value in [-1, 1].
	SetPan(pan float64)
	// StartLoop starts looping playback from the beginning.
	StartLoop()
}

// Channel is one microphone feed of a SoundSource.
type Channel struct {
	position Position
	angle    float64
	path     string
	playback Playback
	gain     Gain
}

func (c *Channel) Position() Position   { return c.position }
func (c *Channel) FacingAngle() float64 { return c.angle }
func (c *Channel) Path() string         { return c.path }

// Gain last pushed to the playback.
func (c *Channel) Gain() Gain         { return c.gain }
func (c *Channel) Amplitude() float64 { return c.gain.Amplitude }
func (c *Channel) Pan() float64       { return c.gain.Pan }

func (c *Channel) apply(g Gain) {
	c.gain = g
	c.playback.SetAmplitude(g.Amplitude)
	c.playback.SetPan(g.Pan)
}
