// SPDX-License-Identifier: EPL-2.0

package audspace

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	log "github.com/golang/glog"

	"github.com/ik5/audspace/audio"
	"github.com/ik5/audspace/config"
	"github.com/ik5/audspace/driver"
	"github.com/ik5/audspace/formats/aiff"
	"github.com/ik5/audspace/formats/mp3"
	"github.com/ik5/audspace/formats/vorbis"
	"github.com/ik5/audspace/formats/wav"
	"github.com/ik5/audspace/mixer"
	"github.com/ik5/audspace/spatial"
)

// NewRegistry returns a registry with every bundled decoder.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})

	return r
}

// Engine is a loaded installation: the source array and the mixer its
// voices play through.
type Engine struct {
	Config *config.Config
	Params spatial.Params
	Mixer  *mixer.Mixer
	Array  *spatial.SoundSourceArray
}

// New loads every recording named by cfg from cfg.Layout.Root.
func New(cfg *config.Config) (*Engine, error) {
	return NewFS(cfg, os.DirFS(cfg.Layout.Root))
}

// NewFS is New with recordings read from fsys.
func NewFS(cfg *config.Config, fsys fs.FS) (*Engine, error) {
	params, err := cfg.Params()
	if err != nil {
		return nil, err
	}

	m := mixer.New(cfg.Output.SampleRate)
	m.SetMaster(float32(cfg.Output.Master))

	loader := mixer.NewLoader(fsys, NewRegistry(), m)
	loader.NormalizePeaks(cfg.Layout.Normalize)
	paths := recordings(cfg.Layout.Prefix, len(cfg.Layout.Offsets), params.Naming)
	if err := loader.Preload(context.Background(), paths, runtime.GOMAXPROCS(0)); err != nil {
		// The array reports the first failure with its source and channel.
		log.Warningf("preloading recordings: %v", err)
	}

	arr, err := spatial.NewSoundSourceArray(cfg.Layout.Prefix, cfg.Layout.Offsets, loader, params)
	if err != nil {
		return nil, fmt.Errorf("loading sources: %w", err)
	}

	log.Infof("loaded %d sources (%d voices) at %d Hz", arr.Len(), len(m.Voices()), m.SampleRate())

	return &Engine{
		Config: cfg,
		Params: params,
		Mixer:  m,
		Array:  arr,
	}, nil
}

func recordings(prefix string, count int, naming spatial.RecordingNaming) []string {
	paths := make([]string, 0, count*spatial.NumChannels)
	for i := range count {
		desc := spatial.DescriptorFor(prefix, i, naming)
		paths = append(paths, desc.Recordings[:]...)
	}

	return paths
}

// Listener converts pointer positions using the configured heading model
// and window width.
func (e *Engine) Listener() driver.PointerListener {
	return driver.PointerListener{
		Heading:     e.Params.HeadingModel(),
		WindowWidth: e.Config.Listener.WindowWidth,
	}
}

// Driver ticks the array from pointer.
func (e *Engine) Driver(pointer driver.PointerSource) *driver.Driver {
	return driver.New(e.Array, pointer, e.Listener(), e.Config.Listener.Easing)
}

// Traversal walks from the first source to the last over the configured
// duration.
func (e *Engine) Traversal() driver.Traversal {
	rate := e.Config.Output.FrameRate
	first := e.Array.Source(0)
	last := e.Array.Source(e.Array.Len() - 1)

	return driver.Traversal{
		StartY:      first.Y(),
		EndY:        last.Y(),
		Ticks:       int(e.Config.Listener.Traversal.Seconds() * rate),
		SweepTicks:  int(e.Config.Listener.SweepPeriod.Seconds() * rate),
		WindowWidth: e.Config.Listener.WindowWidth,
	}
}

func (e *Engine) Close() error {
	return e.Mixer.Close()
}
