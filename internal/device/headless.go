// SPDX-License-Identifier: EPL-2.0

//go:build headless

package device

import (
	"time"

	log "github.com/golang/glog"

	"github.com/ik5/audspace/audio"
)

// Device drops its output. It exists so the binary builds on machines
// without an audio stack.
type Device struct {
	stream  *Stream
	started bool
}

func Open(src audio.Source, buffer time.Duration) (*Device, error) {
	log.Infof("device: headless, discarding %d Hz output", src.SampleRate())
	return &Device{stream: NewStream(src)}, nil
}

func (d *Device) Start()        { d.started = true }
func (d *Device) Started() bool { return d.started }
func (d *Device) Err() error    { return d.stream.Err() }
func (d *Device) Close() error {
	d.started = false
	return nil
}
