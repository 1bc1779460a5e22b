// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"

	"github.com/ik5/audspace/internal/audiotest"
)

func newMockSource(rate, channels, frames int, at func(frame, channel int) float32) *audiotest.Signal {
	return audiotest.Func(rate, channels, frames, at)
}

func newConstantSource(rate, channels, frames int, v float32) *audiotest.Signal {
	return audiotest.Constant(rate, channels, frames, v)
}

// newRampSource rises linearly from 0 toward 1 over frames mono frames.
func newRampSource(rate, frames int) *audiotest.Signal {
	return audiotest.Func(rate, 1, frames, func(f, _ int) float32 {
		return float32(f) / float32(frames)
	})
}

var errBroken = errors.New("broken source")

type brokenSource struct{ *audiotest.Signal }

func (b brokenSource) ReadSamples([]float32) (int, error) { return 0, errBroken }
