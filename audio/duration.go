// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Defaults for time–frequency representations.
const (
	DefaultSampleRate = 22050
	DefaultNFFT       = 2048
	DefaultHopLength  = 512
)

// SpectrogramShape describes a framed time–frequency representation
// (an STFT or anything derived from one, such as a mel spectrogram).
type SpectrogramShape struct {
	// Frames is the number of time frames (columns).
	Frames int
	// NFFT is the analysis window size in samples.
	NFFT int
	// HopLength is the number of samples between successive frames.
	HopLength int
	// Center is true when frame t is centred on sample t*HopLength rather
	// than starting at it.
	Center bool
}

// NewSpectrogramShape returns a centred shape with DefaultNFFT and DefaultHopLength.
func NewSpectrogramShape(frames int) SpectrogramShape {
	return SpectrogramShape{
		Frames:    frames,
		NFFT:      DefaultNFFT,
		HopLength: DefaultHopLength,
		Center:    true,
	}
}

// Samples recovers the signal length that produced s:
// NFFT + HopLength*(Frames-1), less 2*(NFFT/2) when centred.
func (s SpectrogramShape) Samples() int {
	n := s.NFFT + s.HopLength*(s.Frames-1)

	// centred frames lose half a window at each end; odd NFFT rounds down
	if s.Center {
		n -= 2 * (s.NFFT / 2)
	}

	return n
}

// DurationFromShape returns the duration in seconds of the signal behind s.
func DurationFromShape(s SpectrogramShape, sampleRate int) (float64, error) {
	if sampleRate <= 0 {
		return 0, fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidArgument, sampleRate)
	}
	if s.NFFT <= 0 {
		return 0, fmt.Errorf("%w: n_fft must be positive, got %d", ErrInvalidArgument, s.NFFT)
	}
	if s.HopLength <= 0 {
		return 0, fmt.Errorf("%w: hop length must be positive, got %d", ErrInvalidArgument, s.HopLength)
	}
	if s.Frames < 0 {
		return 0, fmt.Errorf("%w: negative frame count %d", ErrInvalidArgument, s.Frames)
	}

	return float64(s.Samples()) / float64(sampleRate), nil
}

// DurationFromMatrix returns the duration in seconds of m at sampleRate.
func DurationFromMatrix(m *Matrix, sampleRate int) (float64, error) {
	if m == nil {
		return 0, fmt.Errorf("%w: nil matrix", ErrInvalidArgument)
	}
	if sampleRate <= 0 {
		return 0, fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidArgument, sampleRate)
	}

	return float64(m.Frames) / float64(sampleRate), nil
}
