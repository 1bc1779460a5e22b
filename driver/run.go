// SPDX-License-Identifier: EPL-2.0

package driver

import (
	"context"
	"fmt"
	"math"
	"time"

	log "github.com/golang/glog"

	"github.com/ik5/audspace/audio"
)

// FrameSink accepts interleaved stereo samples. *wav.Writer satisfies it.
type FrameSink interface {
	Write(samples []float32) error
}

// Run ticks d at frameRate until ctx is cancelled or the pointer source
// runs out. It returns nil in the latter case.
func Run(ctx context.Context, d *Driver, frameRate float64) error {
	if frameRate <= 0 || math.IsNaN(frameRate) || math.IsInf(frameRate, 0) {
		return ErrBadFrameRate
	}

	interval := time.Duration(float64(time.Second) / frameRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Infof("driver: ticking every %s", interval)

	for !d.Done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			d.Tick()
		}
	}

	log.Infof("driver: finished after %d ticks", d.Ticks())

	return nil
}

// Render ticks d ticks times and, after each tick, pulls the stereo frames
// that fall in that tick from src into sink. It returns the number of
// frames written.
func Render(ctx context.Context, d *Driver, src audio.Source, sink FrameSink, frameRate float64, ticks int) (int, error) {
	if frameRate <= 0 || math.IsNaN(frameRate) || math.IsInf(frameRate, 0) {
		return 0, ErrBadFrameRate
	}
	if ticks <= 0 {
		return 0, ErrNoTicks
	}

	channels := src.Channels()
	perTick := float64(src.SampleRate()) / frameRate

	var (
		buf     []float32
		written int
	)

	for k := range ticks {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		d.Tick()

		frames := int(math.Floor(float64(k+1)*perTick) - math.Floor(float64(k)*perTick))
		if frames == 0 {
			continue
		}

		need := frames * channels
		if cap(buf) < need {
			buf = make([]float32, need)
		}
		buf = buf[:need]

		n, err := src.ReadSamples(buf)
		if n > 0 {
			if werr := sink.Write(buf[:n]); werr != nil {
				return written, fmt.Errorf("tick %d: %w", k, werr)
			}
			written += n / channels
		}
		if err != nil {
			return written, fmt.Errorf("tick %d: %w", k, err)
		}
	}

	log.Infof("driver: rendered %d frames over %d ticks", written, ticks)

	return written, nil
}
