// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"math"
	"sync"

	"github.com/ik5/audspace/audio"
	"github.com/ik5/audspace/utils"
)

// Voice loops one clip with a controllable amplitude and pan.
type Voice struct {
	path string
	clip *audio.Clip

	// mu protects everything below.
	mu      sync.Mutex
	amp     float64
	pan     float64
	left    float64 // gains applied at the end of the last mix
	right   float64
	pos     int
	looping bool
}

func newVoice(path string, clip *audio.Clip) *Voice {
	return &Voice{path: path, clip: clip}
}

func (v *Voice) Path() string { return v.path }

// SetAmplitude sets the target amplitude, clamped to [0, 1].
func (v *Voice) SetAmplitude(amp float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.amp = utils.Clamp(amp, 0, 1)
}

// SetPan sets the target pan, clamped to [-1, 1].
func (v *Voice) SetPan(pan float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pan = utils.Clamp(pan, -1, 1)
}

// StartLoop rewinds the clip and loops it from now on.
func (v *Voice) StartLoop() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pos = 0
	v.looping = true
}

// Looping reports whether StartLoop has been called.
func (v *Voice) Looping() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.looping
}

// Levels returns the current target amplitude and pan.
func (v *Voice) Levels() (amp, pan float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.amp, v.pan
}

// equalPowerPan returns left and right gains for pan in [-1, 1].
func equalPowerPan(pan float64) (float64, float64) {
	theta := (pan + 1) * math.Pi / 4
	return math.Cos(theta), math.Sin(theta)
}

// mixInto adds frames of stereo output to dst, ramping from the previous
// gains to the current targets.
func (v *Voice) mixInto(dst []float32, frames int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.looping || frames == 0 {
		return
	}

	l, r := equalPowerPan(v.pan)
	l *= v.amp
	r *= v.amp
	startL, startR := v.left, v.right
	v.left, v.right = l, r

	samples := v.clip.Samples
	if startL == 0 && startR == 0 && l == 0 && r == 0 {
		// Silent: keep the clip moving so it stays in time.
		v.pos = (v.pos + frames) % len(samples)
		return
	}

	stepL := (l - startL) / float64(frames)
	stepR := (r - startR) / float64(frames)
	for f := range frames {
		s := float64(samples[v.pos])
		gl := startL + stepL*float64(f+1)
		gr := startR + stepR*float64(f+1)
		dst[2*f] += float32(s * gl)
		dst[2*f+1] += float32(s * gr)

		v.pos++
		if v.pos == len(samples) {
			v.pos = 0
		}
	}
}
