// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// Window is the frame range a load decodes: LengthFrames frames starting
// OffsetFrames frames into the track.
type Window struct {
	OffsetFrames int64
	LengthFrames int64
}

// NewWindow converts an offset and optional duration in seconds into a
// Window over a track described by meta. Seconds are converted to frames by
// rounding down.
//
// duration is clamped to what remains after offset. When it is nil or clamped,
// the window runs to the last frame of the track.
func NewWindow(meta TrackMeta, offset float64, duration *float64) (Window, error) {
	if err := meta.Validate(); err != nil {
		return Window{}, err
	}

	if math.IsNaN(offset) || math.IsInf(offset, 0) || offset < 0 {
		return Window{}, fmt.Errorf("%w: offset %v", ErrInvalidWindow, offset)
	}

	if duration != nil && math.IsNaN(*duration) {
		return Window{}, fmt.Errorf("%w: duration NaN", ErrInvalidWindow)
	}

	sr := float64(meta.SampleRate)
	remaining := meta.Seconds() - offset

	effective := remaining
	clamped := true
	if duration != nil && *duration < remaining {
		effective = *duration
		clamped = false
	}

	if effective <= 0 {
		return Window{}, fmt.Errorf("%w: duration %.6fs after offset %.6fs of %.6fs track",
			ErrInvalidWindow, effective, offset, meta.Seconds())
	}

	offsetFrames, err := secondsToFrames(offset, sr)
	if err != nil {
		return Window{}, err
	}

	if offsetFrames >= meta.TotalFrames {
		return Window{}, fmt.Errorf("%w: offset frame %d beyond %d total frames",
			ErrInvalidWindow, offsetFrames, meta.TotalFrames)
	}

	left := meta.TotalFrames - offsetFrames
	length := left
	if !clamped {
		length, err = secondsToFrames(effective, sr)
		if err != nil {
			return Window{}, err
		}
		length = min(length, left)
	}

	if length <= 0 {
		return Window{}, fmt.Errorf("%w: duration %.6fs is shorter than one frame", ErrInvalidWindow, effective)
	}

	return Window{OffsetFrames: offsetFrames, LengthFrames: length}, nil
}

func secondsToFrames(seconds, sampleRate float64) (int64, error) {
	frames := math.Floor(seconds * sampleRate)
	if frames >= math.MaxInt64 || frames > math.MaxInt {
		return 0, fmt.Errorf("%w: %.6fs at %v Hz", ErrConversionOverflow, seconds, sampleRate)
	}

	return int64(frames), nil
}
