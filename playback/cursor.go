// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/ik5/audmatrix/audio"
)

const bytesPerSample = 4

// Interleave flattens m frame by frame, channels in order within a frame.
func Interleave(m *audio.Matrix) []float32 {
	return m.Interleave(nil)
}

// Cursor hands out an interleaved sample slice strictly in order. It is
// owned by the device thread once playback starts and never allocates.
type Cursor struct {
	samples []float32
	pos     int
}

// NewCursor takes ownership of samples.
func NewCursor(samples []float32) *Cursor {
	return &Cursor{samples: samples}
}

// Remaining returns the number of samples not handed out yet.
func (c *Cursor) Remaining() int { return len(c.samples) - c.pos }

// Done reports whether every sample has been handed out.
func (c *Cursor) Done() bool { return c.pos >= len(c.samples) }

// Fill copies whole frames into out and zeroes what it cannot fill. It
// returns the number of frames copied; zero means no more audio.
func (c *Cursor) Fill(out []float32, channels int) int {
	if channels <= 0 {
		clear(out)
		return 0
	}

	n := min(len(out), c.Remaining())
	n -= n % channels

	copy(out[:n], c.samples[c.pos:c.pos+n])
	clear(out[n:])
	c.pos += n

	return n / channels
}

// Read encodes the next samples as float32 little-endian for devices that
// pull bytes. It returns io.EOF once the samples are exhausted.
func (c *Cursor) Read(p []byte) (int, error) {
	if c.Done() {
		return 0, io.EOF
	}

	n := min(len(p)/bytesPerSample, c.Remaining())
	if n == 0 {
		return 0, io.ErrShortBuffer
	}

	for i, s := range c.samples[c.pos : c.pos+n] {
		binary.LittleEndian.PutUint32(p[i*bytesPerSample:], math.Float32bits(s))
	}
	c.pos += n

	return n * bytesPerSample, nil
}
