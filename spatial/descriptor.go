// SPDX-License-Identifier: EPL-2.0

package spatial

import (
	"fmt"
	"strconv"
)

// RecordingNaming gives the file name, relative to a source's path prefix,
// of the recording played by each microphone channel.
type RecordingNaming [NumChannels]string

// DefaultNaming is the installation's wiring. Recordings are labelled from
// the performer's side, so front and back are swapped relative to the
// listener: the front-left channel plays BL.wav and so on.
func DefaultNaming() RecordingNaming {
	return RecordingNaming{
		FrontLeft:  "BL.wav",
		FrontRight: "BR.wav",
		BackRight:  "FR.wav",
		BackLeft:   "FL.wav",
	}
}

// Validate reports missing or repeated names.
func (n RecordingNaming) Validate() error {
	seen := make(map[string]Position, NumChannels)
	for _, pos := range Positions {
		name := n[pos]
		if name == "" {
			return configErr(pos.String()+" recording", ErrMissingRecording)
		}
		if prev, ok := seen[name]; ok {
			return configErr(pos.String()+" recording",
				fmt.Errorf("%w: %q already used by %s", ErrDuplicateRecording, name, prev))
		}
		seen[name] = pos
	}

	return nil
}

// SourceDescriptor names a source and its four recordings.
type SourceDescriptor struct {
	ID         string
	Recordings [NumChannels]string
}

// DescriptorFor builds the descriptor of the source at index: its ID is
// prefix followed by the index, and each recording appends the channel's
// file name to the ID.
func DescriptorFor(prefix string, index int, naming RecordingNaming) SourceDescriptor {
	id := prefix + strconv.Itoa(index)

	var d SourceDescriptor
	d.ID = id
	for _, pos := range Positions {
		d.Recordings[pos] = id + naming[pos]
	}

	return d
}

// Loader opens a recording and returns its playback control.
type Loader interface {
	Load(path string) (Playback, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(path string) (Playback, error)

func (f LoaderFunc) Load(path string) (Playback, error) { return f(path) }
