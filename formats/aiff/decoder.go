// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/audmatrix/audio"
	"github.com/ik5/audmatrix/internal/pcm"
)

// Format opens AIFF and uncompressed AIFF-C files.
type Format struct{}

func (Format) Name() string { return "aiff" }

func (Format) Probe(rs io.ReadSeeker) (audio.Demuxer, error) {
	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	// Read file info
	dec.ReadInfo()

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	meta := audio.TrackMeta{
		Codec:       "pcm",
		Channels:    format.NumChannels,
		SampleRate:  format.SampleRate,
		TotalFrames: int64(dec.NumSampleFrames),
		BitDepth:    bitDepth,
	}

	return pcm.NewDemuxer(dec, meta, format, false), nil
}
