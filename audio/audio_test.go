// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(io.Reader) (Source, error) {
	return newConstantSource(44100, 2, 100, 0), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}
	registry.Register("WAV", decoder)

	got, ok := registry.Get("wav")
	require.True(t, ok, "Get() should find a decoder registered in upper case")
	assert.Same(t, decoder, got)
}

func TestRegistry_ForPath(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wavDecoder := &mockDecoder{name: "wav"}
	oggDecoder := &mockDecoder{name: "ogg"}
	registry.Register("wav", wavDecoder)
	registry.Register("ogg", oggDecoder)

	tests := []struct {
		path    string
		want    Decoder
		wantErr error
	}{
		{"assets/audio/0BL.wav", wavDecoder, nil},
		{"assets/audio/0BL.WAV", wavDecoder, nil},
		{"rain.ogg", oggDecoder, nil},
		{"rain.flac", nil, ErrUnsupportedFormat},
		{"assets/audio/README", nil, ErrNoExtension},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := registry.ForPath(tt.path)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("mp3", &mockDecoder{})
	registry.Register("aiff", &mockDecoder{})

	got := registry.Formats()
	sort.Strings(got)
	assert.Equal(t, []string{"aiff", "mp3"}, got)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "test"}

	done := make(chan struct{})
	for range 10 {
		go func() {
			registry.Register("format", decoder)
			registry.Get("format")
			done <- struct{}{}
		}()
	}
	for range 10 {
		<-done
	}

	_, ok := registry.Get("format")
	assert.True(t, ok, "Get() failed after concurrent access")
}

func TestMonoMixer_Stereo(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 2, 10, func(_ int, channel int) float32 {
		if channel == 0 {
			return 0.2
		}
		return 0.6
	})
	mono := NewMonoMixer(src)

	assert.Equal(t, 1, mono.Channels())
	assert.Equal(t, 8000, mono.SampleRate())

	buf := make([]float32, 16)
	n, err := mono.ReadSamples(buf)
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, 10, n)
	for i := range n {
		assert.InDelta(t, 0.4, buf[i], 1e-6, "buf[%d]", i)
	}
}

func TestMonoMixer_Quad(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 4, 4, func(_ int, channel int) float32 {
		return float32(channel) * 0.25
	})
	mono := NewMonoMixer(src)

	buf := make([]float32, 4)
	n, _ := mono.ReadSamples(buf)
	require.Equal(t, 4, n)
	// (0 + 0.25 + 0.5 + 0.75) / 4
	assert.InDelta(t, 0.375, buf[0], 1e-6)
}

func TestMonoMixer_PassThroughAndClose(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 5, 0.5)
	mono := NewMonoMixer(src)

	buf := make([]float32, 5)
	n, _ := mono.ReadSamples(buf)
	assert.Equal(t, 5, n)
	assert.InDelta(t, 0.5, buf[4], 0)

	n, err := mono.ReadSamples(nil)
	assert.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, mono.Close())
	assert.True(t, src.Closed(), "Close() did not close the wrapped source")
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	r := NewResampler(newConstantSource(44100, 2, 100, 0), 22050)
	_, err := r.ReadSamples(make([]float32, 3))
	assert.ErrorIs(t, err, ErrInvalidDstSize)
}

func drain(t *testing.T, src Source) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, 512)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
	}
}

func TestResampler_Downsample(t *testing.T) {
	t.Parallel()

	r := NewResampler(newConstantSource(48000, 1, 4800, 0.5), 16000)
	assert.Equal(t, 16000, r.SampleRate())

	out := drain(t, r)
	assert.InDelta(t, 1600, len(out), 2)
	for i, v := range out {
		require.InDelta(t, 0.5, v, 1e-5, "out[%d]", i)
	}
}

func TestResampler_UpsampleIsMonotonic(t *testing.T) {
	t.Parallel()

	r := NewResampler(newRampSource(8000, 800), 16000)
	out := drain(t, r)

	assert.GreaterOrEqual(t, len(out), 1590)
	assert.LessOrEqual(t, len(out), 1600)
	for i := 1; i < len(out); i++ {
		require.GreaterOrEqual(t, out[i], out[i-1]-1e-6, "out[%d] dropped below out[%d]", i, i-1)
	}
}

func TestResampler_StereoPreservesChannels(t *testing.T) {
	t.Parallel()

	src := newMockSource(22050, 2, 2205, func(_ int, channel int) float32 {
		if channel == 0 {
			return -0.25
		}
		return 0.75
	})
	r := NewResampler(src, 44100)
	require.Equal(t, 2, r.Channels())

	out := drain(t, r)
	require.Zero(t, len(out)%2, "len(out) = %d, want even", len(out))
	for i := 0; i < len(out); i += 2 {
		require.InDelta(t, -0.25, out[i], 0, "frame %d left", i/2)
		require.InDelta(t, 0.75, out[i+1], 0, "frame %d right", i/2)
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	r := NewResampler(newConstantSource(44100, 1, 0, 0), 8000)
	n, err := r.ReadSamples(make([]float32, 8))
	assert.ErrorIs(t, err, io.EOF)
	assert.Zero(t, n)
}

func TestResampler_PropagatesSourceError(t *testing.T) {
	t.Parallel()

	src := brokenSource{newConstantSource(44100, 1, 10, 0)}
	r := NewResampler(src, 8000)
	_, err := r.ReadSamples(make([]float32, 8))
	assert.ErrorIs(t, err, errBroken)
}

func TestLoadClip(t *testing.T) {
	t.Parallel()

	t.Run("same rate stereo folds to mono", func(t *testing.T) {
		t.Parallel()

		src := newMockSource(44100, 2, 44100, func(_ int, channel int) float32 {
			return float32(channel)
		})
		clip, err := LoadClip(src, 44100)
		require.NoError(t, err)
		assert.Len(t, clip.Samples, 44100)
		assert.InDelta(t, 0.5, clip.Samples[100], 0)
		assert.InDelta(t, 1, clip.Duration(), 1e-9)
		assert.True(t, src.Closed(), "LoadClip() did not close the source")
	})

	t.Run("resamples to target", func(t *testing.T) {
		t.Parallel()

		clip, err := LoadClip(newConstantSource(48000, 1, 48000, 0.1), 24000)
		require.NoError(t, err)
		assert.Equal(t, 24000, clip.SampleRate)
		assert.GreaterOrEqual(t, len(clip.Samples), 23990)
		assert.LessOrEqual(t, len(clip.Samples), 24000)
	})

	t.Run("empty source", func(t *testing.T) {
		t.Parallel()

		_, err := LoadClip(newConstantSource(44100, 1, 0, 0), 44100)
		assert.ErrorIs(t, err, ErrEmptyClip)
	})

	t.Run("invalid rate", func(t *testing.T) {
		t.Parallel()

		_, err := LoadClip(newConstantSource(44100, 1, 10, 0), 0)
		assert.ErrorIs(t, err, ErrInvalidRate)
	})
}

func TestClip_Normalize(t *testing.T) {
	t.Parallel()

	c := &Clip{Samples: []float32{0.25, -0.5, 0.125}, SampleRate: 8000}
	c.Normalize()
	assert.InDeltaSlice(t, []float32{0.5, -1, 0.25}, c.Samples, 1e-7)

	silent := &Clip{Samples: []float32{0, 0}, SampleRate: 8000}
	silent.Normalize()
	assert.InDeltaSlice(t, []float32{0, 0}, silent.Samples, 0)
}
