// SPDX-License-Identifier: EPL-2.0

package audiotest

// Call is one recorded Playback call.
type Call struct {
	Method string
	Value  float64
}

// Playback records every control call it receives. It satisfies
// spatial.Playback.
type Playback struct {
	Path      string
	Amplitude float64
	Pan       float64
	Loops     int
	Calls     []Call
}

func (p *Playback) SetAmplitude(amp float64) {
	p.Amplitude = amp
	p.Calls = append(p.Calls, Call{Method: "amp", Value: amp})
}

func (p *Playback) SetPan(pan float64) {
	p.Pan = pan
	p.Calls = append(p.Calls, Call{Method: "pan", Value: pan})
}

func (p *Playback) StartLoop() {
	p.Loops++
	p.Calls = append(p.Calls, Call{Method: "loop"})
}

// Loader hands out a fresh Playback per path and remembers them.
// Paths listed in Fail return the mapped error.
type Loader struct {
	Opened map[string]*Playback
	Order  []string
	Fail   map[string]error
}

func NewLoader() *Loader {
	return &Loader{Opened: make(map[string]*Playback), Fail: make(map[string]error)}
}

// Load returns *Playback as the concrete value; callers assign it to their
// own interface type.
func (l *Loader) Load(path string) (*Playback, error) {
	if err := l.Fail[path]; err != nil {
		return nil, err
	}

	pb := &Playback{Path: path}
	l.Opened[path] = pb
	l.Order = append(l.Order, path)

	return pb, nil
}
