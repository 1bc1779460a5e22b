// SPDX-License-Identifier: EPL-2.0

//go:build !headless

package device

import (
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	log "github.com/golang/glog"

	"github.com/ik5/audspace/audio"
)

// Device owns the process-wide output context. Only one may be opened.
type Device struct {
	ctx    *oto.Context
	player *oto.Player
	stream *Stream

	mu      sync.Mutex
	started bool
}

// Open prepares the output for src. buffer is the device latency; zero
// lets the backend choose.
func Open(src audio.Source, buffer time.Duration) (*Device, error) {
	op := &oto.NewContextOptions{
		SampleRate:   src.SampleRate(),
		ChannelCount: src.Channels(),
		Format:       oto.FormatFloat32LE,
		BufferSize:   buffer,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	<-ready

	stream := NewStream(src)

	log.Infof("device: %d Hz, %d channels, buffer %s", op.SampleRate, op.ChannelCount, buffer)

	return &Device{
		ctx:    ctx,
		player: ctx.NewPlayer(stream),
		stream: stream,
	}, nil
}

// Start begins playback. Further calls do nothing.
func (d *Device) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.started && d.player != nil {
		d.player.Play()
		d.started = true
	}
}

func (d *Device) Started() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.started
}

// Err reports why the source stopped feeding the output.
func (d *Device) Err() error { return d.stream.Err() }

func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.player == nil {
		return nil
	}

	err := d.player.Close()
	d.player = nil
	d.started = false
	if err != nil {
		return fmt.Errorf("%w: %w", ErrClose, err)
	}

	return nil
}
