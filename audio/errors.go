// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	// ErrIO indicates the input could not be opened or read.
	ErrIO = errors.New("i/o failure")

	// ErrUnsupportedFormat indicates no registered format recognised the input.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrMissingMetadata indicates a required header field (channels, sample
	// rate or total frame count) is absent.
	ErrMissingMetadata = errors.New("missing metadata")

	// ErrInvalidWindow indicates the requested offset/duration does not
	// describe a non-empty range inside the stream.
	ErrInvalidWindow = errors.New("invalid window")

	// ErrDecodeFault indicates the codec reported a malformed or unsupported packet.
	ErrDecodeFault = errors.New("decode fault")

	// ErrShortStream indicates the packet stream ended before the requested
	// number of frames was collected.
	ErrShortStream = errors.New("short stream")

	// ErrConversionOverflow indicates a frame or sample count does not fit
	// the integer type used for indexing.
	ErrConversionOverflow = errors.New("conversion overflow")

	// ErrInvalidArgument indicates a caller supplied value is out of range.
	ErrInvalidArgument = errors.New("invalid argument")
)

// StepError reports which step of an operation failed and on what input.
type StepError struct {
	Step string
	Path string
	Err  error
}

func (e *StepError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Step, e.Err)
	}

	return fmt.Sprintf("%s %s: %v", e.Step, e.Path, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
