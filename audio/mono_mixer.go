// SPDX-License-Identifier: EPL-2.0

package audio

// ToMono averages the channels of m frame by frame into a new (1, N) matrix.
// m is not modified; a single-channel input yields an equal copy.
func ToMono(m *Matrix) *Matrix {
	out := &Matrix{
		Channels: 1,
		Frames:   m.Frames,
		Data:     make([]float64, m.Frames),
	}

	channels := m.Channels
	frames := m.Frames
	src := m.Data

	switch channels {
	case 1:
		copy(out.Data, src[:frames])
	case 2: // Stereo (most common)
		left, right := src[:frames], src[frames:2*frames]
		for f := range frames {
			out.Data[f] = (left[f] + right[f]) / 2
		}
	default: // Generic path
		for f := range frames {
			sum := 0.0
			for c := range channels {
				sum += src[c*frames+f]
			}
			out.Data[f] = sum / float64(channels)
		}
	}

	return out
}
