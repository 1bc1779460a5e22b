// SPDX-License-Identifier: EPL-2.0

package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/ik5/audspace/utils"
)

// Pointer is a pointer position in window coordinates.
type Pointer struct {
	X, Y float64
}

// PointerSource yields the pointer position for a tick.
type PointerSource interface {
	Pointer(tick int) Pointer
}

// Traversal walks the pointer from StartY to EndY over Ticks ticks while
// sweeping it left and right across the window, one full sweep every
// SweepTicks. It stands in for a visitor when no input device is attached.
type Traversal struct {
	StartY, EndY float64
	Ticks        int
	SweepTicks   int
	WindowWidth  float64
}

func (t Traversal) Pointer(tick int) Pointer {
	progress := 1.0
	if t.Ticks > 0 {
		progress = utils.Clamp(float64(tick)/float64(t.Ticks), 0, 1)
	}

	x := t.WindowWidth / 2
	if t.SweepTicks > 0 {
		x += t.WindowWidth / 2 * math.Sin(2*math.Pi*float64(tick)/float64(t.SweepTicks))
	}

	return Pointer{X: x, Y: utils.MapRange(progress, 0, 1, t.StartY, t.EndY)}
}

// Done reports whether tick is past the end of the walk.
func (t Traversal) Done(tick int) bool { return tick >= t.Ticks }

// Feed holds the latest pointer read from a line stream of "x y" pairs.
type Feed struct {
	mu     sync.Mutex
	latest Pointer
	lines  int
}

// NewFeed starts at initial until the first line arrives.
func NewFeed(initial Pointer) *Feed {
	return &Feed{latest: initial}
}

func (f *Feed) Pointer(int) Pointer {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest
}

// Lines returns how many positions have been accepted.
func (f *Feed) Lines() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lines
}

// Consume reads r until EOF, updating the latest pointer. Blank lines and
// lines starting with # are skipped; a malformed line stops the read.
func (f *Feed) Consume(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		p, err := ParsePointer(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}

		f.mu.Lock()
		f.latest = p
		f.lines++
		f.mu.Unlock()
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading pointer feed: %w", err)
	}

	return nil
}

// ParsePointer parses "x y" or "x,y".
func ParsePointer(line string) (Pointer, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return Pointer{}, fmt.Errorf("%w: %q", ErrBadPointer, line)
	}

	x, errX := strconv.ParseFloat(fields[0], 64)
	y, errY := strconv.ParseFloat(fields[1], 64)
	if err := errors.Join(errX, errY); err != nil {
		return Pointer{}, fmt.Errorf("%w: %w", ErrBadPointer, err)
	}
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return Pointer{}, fmt.Errorf("%w: %q", ErrBadPointer, line)
	}

	return Pointer{X: x, Y: y}, nil
}
