// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	log "github.com/golang/glog"
	"golang.org/x/term"

	"github.com/ik5/audspace"
	"github.com/ik5/audspace/audio"
	"github.com/ik5/audspace/config"
	"github.com/ik5/audspace/driver"
	"github.com/ik5/audspace/formats/wav"
	"github.com/ik5/audspace/internal/device"
	"github.com/ik5/audspace/spatial"
)

func cmdPlay(ctx context.Context, cfg *config.Config, args []string, stdin *os.File) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	fromStdin := fs.Bool("stdin", false, `follow "x y" pointer lines on stdin (default when stdin is not a terminal)`)
	if err := fs.Parse(args); err != nil {
		return err
	}

	eng, err := audspace.New(cfg)
	if err != nil {
		return err
	}
	defer eng.Close()

	dev, err := device.Open(eng.Mixer, cfg.Output.Buffer.Duration)
	if err != nil {
		return err
	}
	defer dev.Close()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	var pointer driver.PointerSource = eng.Traversal()
	if *fromStdin || !term.IsTerminal(int(stdin.Fd())) {
		feed := driver.NewFeed(driver.Pointer{
			X: cfg.Listener.WindowWidth / 2,
			Y: eng.Array.Source(0).Y(),
		})
		go func() {
			if err := feed.Consume(stdin); err != nil {
				cancel(fmt.Errorf("reading pointer: %w", err))
				return
			}
			log.Infof("stdin closed after %d positions; holding the last one", feed.Lines())
		}()
		pointer = feed
	}

	eng.Array.StartAll()
	dev.Start()

	err = driver.Run(ctx, eng.Driver(pointer), cfg.Output.FrameRate)
	if err != nil && ctx.Err() != nil {
		if cause := context.Cause(ctx); !errors.Is(cause, context.Canceled) {
			return cause
		}
		log.Info("interrupted")
		err = nil
	}

	if derr := dev.Err(); derr != nil {
		log.Warningf("output stopped early: %v", derr)
	}

	return err
}

func cmdRender(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	out := fs.String("o", "audspace.wav", "output WAV file")
	length := fs.Duration("duration", 0, "length of the mix (default: the configured traversal)")
	bits := fs.Int("bits", 16, "sample depth: 16, 24 or 32")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *length <= 0 {
		*length = cfg.Listener.Traversal.Duration
	}

	eng, err := audspace.New(cfg)
	if err != nil {
		return err
	}
	defer eng.Close()

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()

	w, err := wav.NewWriterDepth(f, eng.Mixer.SampleRate(), eng.Mixer.Channels(), *bits)
	if err != nil {
		return err
	}

	eng.Array.StartAll()
	ticks := int(length.Seconds() * cfg.Output.FrameRate)
	start := time.Now()

	frames, err := writeMix(ctx, eng.Driver(eng.Traversal()), eng.Mixer, w, cfg.Output.FrameRate, ticks)
	if err != nil {
		return fmt.Errorf("%s (%d frames kept): %w", *out, frames, err)
	}

	log.Infof("wrote %s: %d frames in %s", *out, frames, time.Since(start).Round(time.Millisecond))

	return nil
}

// writeMix renders into w and finalizes the header even when rendering
// stops early, so an interrupted mix is still a playable file.
func writeMix(ctx context.Context, d *driver.Driver, src audio.Source, w *wav.Writer, frameRate float64, ticks int) (int, error) {
	frames, err := driver.Render(ctx, d, src, w, frameRate, ticks)
	if cerr := w.Close(); err == nil {
		err = cerr
	}

	return frames, err
}

// muted stands in for playback when only the gains are of interest.
type muted struct{}

func (muted) SetAmplitude(float64) {}
func (muted) SetPan(float64)       {}
func (muted) StartLoop()           {}

func cmdInspect(cfg *config.Config, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	x := fs.Float64("x", cfg.Listener.WindowWidth/2, "pointer x in window coordinates")
	y := fs.Float64("y", 0, "listener y in layout coordinates")
	if err := fs.Parse(args); err != nil {
		return err
	}

	params, err := cfg.Params()
	if err != nil {
		return err
	}

	loader := spatial.LoaderFunc(func(string) (spatial.Playback, error) { return muted{}, nil })
	arr, err := spatial.NewSoundSourceArray(cfg.Layout.Prefix, cfg.Layout.Offsets, loader, params)
	if err != nil {
		return err
	}

	listener := driver.PointerListener{Heading: params.HeadingModel(), WindowWidth: cfg.Listener.WindowWidth}
	snap := listener.Snapshot(driver.Pointer{X: *x, Y: *y})
	arr.UpdateAll(snap)

	fmt.Fprintf(stdout, "listener y=%.1f heading=%.1f (limit %.1f)\n", snap.Y, snap.HeadingDeg, params.HeadingModel().Limit())

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprint(tw, "source\ty")
	for _, pos := range spatial.Positions {
		fmt.Fprintf(tw, "\t%s amp\t%s pan", pos, pos)
	}
	fmt.Fprintln(tw)

	for _, s := range arr.Sources() {
		fmt.Fprintf(tw, "%s\t%.1f", s.ID(), s.Y())
		for _, pos := range spatial.Positions {
			ch := s.Channel(pos)
			fmt.Fprintf(tw, "\t%.3f\t%+.3f", ch.Amplitude(), ch.Pan())
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
