// SPDX-License-Identifier: EPL-2.0

package spatial_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audspace/internal/audiotest"
	"github.com/ik5/audspace/spatial"
)

func loaderFor(l *audiotest.Loader) spatial.Loader {
	return spatial.LoaderFunc(func(path string) (spatial.Playback, error) {
		pb, err := l.Load(path)
		if err != nil {
			return nil, err
		}
		return pb, nil
	})
}

// identityParams maps offsets one to one onto y.
func identityParams() spatial.Params {
	p := spatial.DefaultParams()
	p.ReferenceHeight = 100
	return p
}

func TestNewSoundSourceArray_Layout(t *testing.T) {
	t.Parallel()

	fake := audiotest.NewLoader()
	offsets := spatial.DefaultOffsets()
	arr, err := spatial.NewSoundSourceArray("assets/audio/", offsets, loaderFor(fake), spatial.DefaultParams())
	require.NoError(t, err)

	require.Equal(t, len(offsets), arr.Len())
	assert.Len(t, fake.Opened, 4*len(offsets))
	assert.Equal(t, "assets/audio/", arr.Prefix())
	assert.Equal(t, offsets, arr.Offsets())

	for i, src := range arr.Sources() {
		assert.Equal(t, 250.0, src.X())
		assert.InDelta(t, 500*offsets[i]/100, src.Y(), 1e-9)
		assert.Equal(t, spatial.DefaultAudioRadius, src.SoundRadius())
		assert.Equal(t, spatial.DefaultGraphicRadius, src.GraphicRadius())
		assert.False(t, src.Playing())

		for _, pos := range spatial.Positions {
			ch := src.Channel(pos)
			assert.Equal(t, pos, ch.Position())
			assert.Equal(t, spatial.DefaultMicAngles()[pos], ch.FacingAngle())
			assert.Contains(t, fake.Opened, ch.Path())
		}
	}

	first := arr.Source(0)
	assert.Equal(t, "assets/audio/0", first.ID())
	assert.Equal(t, "assets/audio/0BL.wav", first.Channel(spatial.FrontLeft).Path())
	assert.Equal(t, "assets/audio/0FL.wav", first.Channel(spatial.BackLeft).Path())

	minY, maxY := arr.Bounds()
	assert.InDelta(t, 160.0, minY, 1e-9)
	assert.InDelta(t, 635.0, maxY, 1e-9)
}

func TestNewSoundSourceArray_OneSourcePerOffset(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 5, 33} {
		arr, err := spatial.NewSoundSourceArray("s", spatial.EvenOffsets(n, 0, 3), loaderFor(audiotest.NewLoader()), spatial.DefaultParams())
		require.NoError(t, err)
		assert.Equal(t, n, arr.Len())
	}
}

func TestNewSoundSourceArray_OffsetsAreCopied(t *testing.T) {
	t.Parallel()

	offsets := []float64{10, 20}
	arr, err := spatial.NewSoundSourceArray("s", offsets, loaderFor(audiotest.NewLoader()), spatial.DefaultParams())
	require.NoError(t, err)

	offsets[0] = 99
	got := arr.Offsets()
	got[1] = 99
	assert.Equal(t, []float64{10, 20}, arr.Offsets())
}

func TestNewSoundSourceArray_Errors(t *testing.T) {
	t.Parallel()

	t.Run("no offsets", func(t *testing.T) {
		t.Parallel()

		_, err := spatial.NewSoundSourceArray("s", nil, loaderFor(audiotest.NewLoader()), spatial.DefaultParams())
		var cfgErr *spatial.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.ErrorIs(t, err, spatial.ErrNoOffsets)
	})

	t.Run("nil loader", func(t *testing.T) {
		t.Parallel()

		_, err := spatial.NewSoundSourceArray("s", []float64{1}, nil, spatial.DefaultParams())
		assert.ErrorIs(t, err, spatial.ErrNoLoader)
	})

	t.Run("invalid params", func(t *testing.T) {
		t.Parallel()

		p := spatial.DefaultParams()
		p.PanOffsetDeg = 0
		_, err := spatial.NewSoundSourceArray("s", []float64{1}, loaderFor(audiotest.NewLoader()), p)
		assert.ErrorIs(t, err, spatial.ErrNonPositive)
	})

	t.Run("recording fails to load", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("decode failed")
		fake := audiotest.NewLoader()
		fake.Fail["s1FR.wav"] = boom

		_, err := spatial.NewSoundSourceArray("s", []float64{1, 2, 3}, loaderFor(fake), spatial.DefaultParams())
		var pbErr *spatial.PlaybackError
		require.ErrorAs(t, err, &pbErr)
		assert.Equal(t, 1, pbErr.Source)
		assert.Equal(t, spatial.BackRight, pbErr.Channel)
		assert.Equal(t, "s1FR.wav", pbErr.Path)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "source 1 channel BR")
	})
}

func TestSoundSource_StartIsIdempotent(t *testing.T) {
	t.Parallel()

	fake := audiotest.NewLoader()
	arr, err := spatial.NewSoundSourceArray("s", []float64{1, 2}, loaderFor(fake), spatial.DefaultParams())
	require.NoError(t, err)

	arr.StartAll()
	arr.StartAll()
	arr.Source(0).Start()

	for _, src := range arr.Sources() {
		assert.True(t, src.Playing())
	}
	for path, pb := range fake.Opened {
		assert.Equal(t, 1, pb.Loops, path)
	}
}

func TestNewSoundSource_MissingPlayback(t *testing.T) {
	t.Parallel()

	desc := spatial.DescriptorFor("s", 0, spatial.DefaultNaming())
	voices := [spatial.NumChannels]spatial.Playback{
		&audiotest.Playback{}, &audiotest.Playback{}, nil, &audiotest.Playback{},
	}

	_, err := spatial.NewSoundSource(desc, 0, 0, voices, spatial.DefaultParams())
	assert.ErrorIs(t, err, spatial.ErrMissingRecording)
}

func TestSoundSourceArray_EndToEnd(t *testing.T) {
	t.Parallel()

	fake := audiotest.NewLoader()
	p := identityParams()
	p.AmpRange = 25
	p.PanOffsetDeg = 45

	arr, err := spatial.NewSoundSourceArray("src", []float64{100, 50}, loaderFor(fake), p)
	require.NoError(t, err)
	arr.StartAll()
	arr.UpdateAll(spatial.Snapshot{Y: 100, HeadingDeg: 45})

	first := arr.Source(0)
	fr := first.Channel(spatial.FrontRight)
	assert.InDelta(t, 1.0, fr.Amplitude(), 1e-9)
	assert.InDelta(t, 0.0, fr.Pan(), 1e-9)

	fl := first.Channel(spatial.FrontLeft)
	assert.InDelta(t, 0.5, fl.Amplitude(), 1e-9)
	assert.InDelta(t, -1.0, fl.Pan(), 1e-9)

	// The values reached the playback collaborator.
	frPlayback := fake.Opened[fr.Path()]
	assert.InDelta(t, 1.0, frPlayback.Amplitude, 1e-9)
	assert.InDelta(t, 0.0, frPlayback.Pan, 1e-9)
	flPlayback := fake.Opened[fl.Path()]
	assert.InDelta(t, 0.5, flPlayback.Amplitude, 1e-9)
	assert.InDelta(t, -1.0, flPlayback.Pan, 1e-9)

	// The second source is 50 units away, past the amp range.
	for _, pos := range spatial.Positions {
		assert.Zero(t, arr.Source(1).Channel(pos).Amplitude())
	}
}

func TestSoundSourceArray_UpdateOrder(t *testing.T) {
	t.Parallel()

	fake := audiotest.NewLoader()
	arr, err := spatial.NewSoundSourceArray("s", []float64{3, 1, 2}, loaderFor(fake), identityParams())
	require.NoError(t, err)

	arr.UpdateAll(spatial.Snapshot{Y: 2, HeadingDeg: 10})

	// Each channel gets exactly one amplitude and one pan per tick.
	for _, path := range fake.Order {
		calls := fake.Opened[path].Calls
		require.Len(t, calls, 2, path)
		assert.Equal(t, "amp", calls[0].Method)
		assert.Equal(t, "pan", calls[1].Method)
	}

	// Load order follows offsets, then FL, FR, BR, BL.
	assert.Equal(t, []string{"s0BL.wav", "s0BR.wav", "s0FR.wav", "s0FL.wav"}, fake.Order[:4])
	assert.Equal(t, "s2FL.wav", fake.Order[11])
}

func TestSoundSource_RadiusFalloff(t *testing.T) {
	t.Parallel()

	p := identityParams()
	p.Falloff = spatial.FalloffSourceRadius
	p.AudioRadius = 40

	arr, err := spatial.NewSoundSourceArray("s", []float64{100}, loaderFor(audiotest.NewLoader()), p)
	require.NoError(t, err)

	// 30 units away: silent under the 25-unit global range, audible under a 40-unit radius.
	arr.UpdateAll(spatial.Snapshot{Y: 70, HeadingDeg: 45})
	assert.InDelta(t, 0.25, arr.Source(0).Channel(spatial.FrontRight).Amplitude(), 1e-9)
}

func TestSoundSourceArray_SweepStaysInBounds(t *testing.T) {
	t.Parallel()

	arr, err := spatial.NewSoundSourceArray("s", spatial.DefaultOffsets(), loaderFor(audiotest.NewLoader()), spatial.DefaultParams())
	require.NoError(t, err)

	model := spatial.DefaultParams().HeadingModel()
	for y := 100.0; y <= 700; y += 17 {
		for x := 0.0; x <= 1280; x += 97 {
			arr.UpdateAll(spatial.Snapshot{X: x, Y: y, HeadingDeg: model.ComputeHeading(x, 1280)})
			for _, src := range arr.Sources() {
				for _, pos := range spatial.Positions {
					g := src.Channel(pos).Gain()
					require.True(t, g.Amplitude >= 0 && g.Amplitude <= 1, "amplitude %v", g.Amplitude)
					require.True(t, g.Pan >= -1 && g.Pan <= 1, "pan %v", g.Pan)
				}
			}
		}
	}
}
