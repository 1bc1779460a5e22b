// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"sync"

	log "github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"github.com/ik5/audspace/audio"
	"github.com/ik5/audspace/spatial"
)

// Loader resolves recording paths in fsys to voices on a Mixer. It
// satisfies spatial.Loader. Decoded clips are cached by path, so two
// channels naming the same file share the samples but not the play head.
// Safe for concurrent use.
type Loader struct {
	fsys     fs.FS
	registry *audio.Registry
	mixer    *Mixer
	peak     bool

	mu    sync.Mutex
	clips map[string]*audio.Clip
}

func NewLoader(fsys fs.FS, registry *audio.Registry, m *Mixer) *Loader {
	return &Loader{
		fsys:     fsys,
		registry: registry,
		mixer:    m,
		clips:    make(map[string]*audio.Clip),
	}
}

// NormalizePeaks makes clips decoded from now on peak at full scale.
func (l *Loader) NormalizePeaks(on bool) { l.peak = on }

func (l *Loader) Load(path string) (spatial.Playback, error) {
	clip, err := l.clip(path)
	if err != nil {
		return nil, err
	}

	v, err := l.mixer.NewVoice(path, clip)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}

func (l *Loader) clip(path string) (*audio.Clip, error) {
	l.mu.Lock()
	c, ok := l.clips[path]
	l.mu.Unlock()
	if ok {
		return c, nil
	}

	c, err := l.decode(path)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.clips[path] = c
	l.mu.Unlock()

	return c, nil
}

// Preload decodes paths into the clip cache using up to workers
// goroutines. Paths that fail are left out of the cache; the joined error
// names them, and a later Load of such a path fails again.
func (l *Loader) Preload(ctx context.Context, paths []string, workers int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	var (
		mu   sync.Mutex
		errs []error
	)

	for _, path := range slices.Compact(slices.Sorted(slices.Values(paths))) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := l.clip(path); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return errors.Join(errs...)
}

func (l *Loader) decode(path string) (*audio.Clip, error) {
	dec, err := l.registry.ForPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrNoDecoder, path, err)
	}

	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening recording: %w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	c, err := audio.LoadClip(src, l.mixer.SampleRate())
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	if l.peak {
		c.Normalize()
	}

	log.V(1).Infof("loaded %s: %.2fs at %d Hz", path, c.Duration(), c.SampleRate)

	return c, nil
}

// Cached reports how many clips are decoded.
func (l *Loader) Cached() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clips)
}
