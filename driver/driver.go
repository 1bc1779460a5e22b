// SPDX-License-Identifier: EPL-2.0

package driver

import (
	log "github.com/golang/glog"

	"github.com/ik5/audspace/spatial"
)

// Updater receives one snapshot per tick. *spatial.SoundSourceArray
// satisfies it.
type Updater interface {
	UpdateAll(snap spatial.Snapshot)
}

// PointerListener turns a pointer position into a listener snapshot. The
// pointer y is used as the listener y as is; only x goes through the
// heading model.
type PointerListener struct {
	Heading     spatial.HeadingModel
	WindowWidth float64
}

func (l PointerListener) Snapshot(p Pointer) spatial.Snapshot {
	return spatial.Snapshot{
		X:          p.X,
		Y:          p.Y,
		HeadingDeg: l.Heading.ComputeHeading(p.X, l.WindowWidth),
	}
}

// Driver samples its PointerSource once per tick and pushes the resulting
// snapshot to the target.
type Driver struct {
	listener PointerListener
	pointer  PointerSource
	target   Updater
	smoother Smoother
	tick     int
	last     spatial.Snapshot
}

// New builds a driver. easing is clamped to (0, 1]; anything outside that
// follows the pointer exactly.
func New(target Updater, pointer PointerSource, listener PointerListener, easing float64) *Driver {
	if easing <= 0 || easing > 1 {
		easing = 1
	}

	return &Driver{
		listener: listener,
		pointer:  pointer,
		target:   target,
		smoother: Smoother{Easing: easing},
	}
}

// Tick advances one frame and returns the snapshot that was applied.
func (d *Driver) Tick() spatial.Snapshot {
	p := d.smoother.Step(d.pointer.Pointer(d.tick))
	snap := d.listener.Snapshot(p)

	d.target.UpdateAll(snap)
	d.last = snap
	d.tick++

	if log.V(2) {
		log.Infof("tick %d: x=%.1f y=%.1f heading=%.1f", d.tick, snap.X, snap.Y, snap.HeadingDeg)
	}

	return snap
}

// Ticks returns how many ticks have run.
func (d *Driver) Ticks() int { return d.tick }

// Last returns the most recent snapshot.
func (d *Driver) Last() spatial.Snapshot { return d.last }

// Done reports whether the pointer source has run out. Sources without an
// end never finish.
func (d *Driver) Done() bool {
	f, ok := d.pointer.(interface{ Done(tick int) bool })
	return ok && f.Done(d.tick)
}
