// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audspace/utils"
)

// Resampler streams from src to a target sample rate using cubic interpolation.
// Works on interleaved samples; preserves channel count.
// A one-pole low-pass is applied to incoming frames when downsampling.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames advanced per output frame
	channels int

	// window[1] and window[2] bracket the output position; window[0] and
	// window[3] are the outer Catmull-Rom neighbours.
	window [4][]float32
	real   [4]bool
	pos    float64
	primed bool
	done   bool

	buf     []float32
	bufPos  int
	bufLen  int
	srcDone bool

	lowPass     bool
	alpha       float32
	filterState []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		step:        step,
		channels:    channels,
		buf:         make([]float32, channels*1024),
		lowPass:     step > 1,
		alpha:       0.5,
		filterState: make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// pull copies the next source frame into dst. It reports false once the
// source is exhausted.
func (r *Resampler) pull(dst []float32) (bool, error) {
	if r.bufPos+r.channels > r.bufLen {
		if r.srcDone {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.buf)
		if errors.Is(err, io.EOF) {
			r.srcDone = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}

		r.bufPos = 0
		r.bufLen = n - n%r.channels
		if r.bufLen == 0 {
			if r.srcDone {
				return false, nil
			}
			return r.pull(dst)
		}
	}

	copy(dst, r.buf[r.bufPos:r.bufPos+r.channels])
	r.bufPos += r.channels

	if r.lowPass {
		for c := range dst {
			dst[c] = r.alpha*dst[c] + (1-r.alpha)*r.filterState[c]
			r.filterState[c] = dst[c]
		}
	}

	return true, nil
}

// fill loads window slot i, padding with the previous slot past the end.
func (r *Resampler) fill(i int) error {
	ok, err := r.pull(r.window[i])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.window[i], r.window[i-1])
	}
	r.real[i] = ok

	return nil
}

func (r *Resampler) prime() error {
	first := r.window[1]

	lowPass := r.lowPass
	r.lowPass = false
	ok, err := r.pull(first)
	r.lowPass = lowPass
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}

	// Seed the filter with the first frame to avoid a warm-up transient.
	copy(r.filterState, first)
	copy(r.window[0], first)
	r.real[1] = true

	for i := 2; i < 4; i++ {
		if err := r.fill(i); err != nil {
			return err
		}
	}
	r.primed = true

	return nil
}

func (r *Resampler) shift() error {
	head := r.window[0]
	copy(r.window[:3], r.window[1:])
	copy(r.real[:3], r.real[1:])
	r.window[3] = head

	if !r.real[2] {
		copy(r.window[3], r.window[2])
		r.real[3] = false
		return nil
	}

	return r.fill(3)
}

// ReadSamples produces interleaved samples at the target rate.
// dst length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.done {
		return 0, io.EOF
	}
	if !r.primed {
		if err := r.prime(); err != nil {
			if errors.Is(err, io.EOF) {
				r.done = true
			}
			return 0, err
		}
	}

	written := 0
	for written < len(dst) {
		for r.pos >= 1 {
			r.pos--
			if err := r.shift(); err != nil {
				return written, err
			}
		}

		if !r.real[2] {
			r.done = true
			break
		}

		x := float32(r.pos)
		for c := range r.channels {
			dst[written+c] = utils.CubicInterpolate(
				r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}
		written += r.channels
		r.pos += r.step
	}

	if r.done {
		if written == 0 {
			return 0, io.EOF
		}
		return written, io.EOF
	}

	return written, nil
}
