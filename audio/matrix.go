// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// Matrix is a dense (channels, frames) block of float64 samples in [-1,1],
// stored row-major by channel: sample n of channel c is Data[c*Frames+n].
//
// A Matrix returned by this module is fully populated; callers must treat it
// as read-only.
type Matrix struct {
	Channels int
	Frames   int
	Data     []float64
}

// NewMatrix allocates a zeroed matrix. It fails with ErrConversionOverflow
// when channels*frames cannot be indexed.
func NewMatrix(channels, frames int) (*Matrix, error) {
	if channels <= 0 || frames < 0 {
		return nil, fmt.Errorf("%w: matrix shape (%d, %d)", ErrInvalidArgument, channels, frames)
	}

	if frames > 0 && channels > math.MaxInt/frames {
		return nil, fmt.Errorf("%w: %d channels x %d frames", ErrConversionOverflow, channels, frames)
	}

	return &Matrix{
		Channels: channels,
		Frames:   frames,
		Data:     make([]float64, channels*frames),
	}, nil
}

// NewMatrixFromRows builds a matrix from per-channel rows of equal length.
func NewMatrixFromRows(rows ...[]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no channels", ErrInvalidArgument)
	}

	frames := len(rows[0])
	m, err := NewMatrix(len(rows), frames)
	if err != nil {
		return nil, err
	}

	for c, row := range rows {
		if len(row) != frames {
			return nil, fmt.Errorf("%w: channel %d has %d frames, want %d", ErrInvalidArgument, c, len(row), frames)
		}
		copy(m.Data[c*frames:], row)
	}

	return m, nil
}

func (m *Matrix) At(channel, frame int) float64 { return m.Data[channel*m.Frames+frame] }

func (m *Matrix) Set(channel, frame int, v float64) { m.Data[channel*m.Frames+frame] = v }

// Row returns channel c as a view into Data.
func (m *Matrix) Row(c int) []float64 {
	return m.Data[c*m.Frames : (c+1)*m.Frames : (c+1)*m.Frames]
}

// Shape returns (channels, frames).
func (m *Matrix) Shape() (int, int) { return m.Channels, m.Frames }

// Interleave converts the matrix to frame-major, channel-minor float32
// samples, reusing dst when it is large enough.
func (m *Matrix) Interleave(dst []float32) []float32 {
	n := m.Channels * m.Frames
	if cap(dst) < n {
		dst = make([]float32, n)
	}
	dst = dst[:n]

	for c := range m.Channels {
		row := m.Row(c)
		for f, v := range row {
			dst[f*m.Channels+c] = float32(v)
		}
	}

	return dst
}
