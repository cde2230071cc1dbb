// SPDX-License-Identifier: EPL-2.0

package audmatrix

import (
	"fmt"

	"github.com/ik5/audmatrix/audio"
)

// DurationSource names what a duration is computed from. The first set
// field wins, in field order: Path, then Shape, then Matrix with SampleRate.
type DurationSource struct {
	Path       string
	Shape      *audio.SpectrogramShape
	Matrix     *audio.Matrix
	SampleRate int // used with Shape and Matrix; audio.DefaultSampleRate when zero for Shape
}

// Duration returns the length in seconds described by src.
//
// Example:
//
//	shape := audio.NewSpectrogramShape(431)
//	secs, err := audmatrix.Duration(audmatrix.DurationSource{Shape: &shape})
func Duration(src DurationSource, opts ...Option) (float64, error) {
	switch {
	case src.Path != "":
		return FileDuration(src.Path, opts...)

	case src.Shape != nil:
		rate := src.SampleRate
		if rate == 0 {
			rate = audio.DefaultSampleRate
		}

		secs, err := audio.DurationFromShape(*src.Shape, rate)
		if err != nil {
			return 0, &audio.StepError{Step: "duration", Err: err}
		}

		return secs, nil

	case src.Matrix != nil:
		secs, err := audio.DurationFromMatrix(src.Matrix, src.SampleRate)
		if err != nil {
			return 0, &audio.StepError{Step: "duration", Err: err}
		}

		return secs, nil
	}

	return 0, &audio.StepError{Step: "duration", Err: fmt.Errorf("%w: no path, shape or matrix given", audio.ErrInvalidArgument)}
}
