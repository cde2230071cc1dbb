// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/audmatrix/audio"
	"github.com/ik5/audmatrix/internal/pcm"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

// Format opens RIFF/WAVE files holding integer PCM.
type Format struct{}

func (Format) Name() string { return "wav" }

func (Format) Probe(rs io.ReadSeeker) (audio.Demuxer, error) {
	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: format tag %#x", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}

	channels := int(dec.NumChans)
	meta := audio.TrackMeta{
		Codec:       "pcm",
		Channels:    channels,
		SampleRate:  int(dec.SampleRate),
		TotalFrames: audio.UnknownFrames,
		BitDepth:    bitDepth,
	}

	if bytesPerFrame := int64(channels * (bitDepth / 8)); bytesPerFrame > 0 {
		meta.TotalFrames = dec.PCMLen() / bytesPerFrame
	}

	return pcm.NewDemuxer(dec, meta, dec.Format(), true), nil
}
