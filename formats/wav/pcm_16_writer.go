// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audmatrix/audio"
	"github.com/ik5/audmatrix/utils"
)

const headerSize = 44

// WriteWAV16 writes m as an interleaved 16-bit PCM WAV at sampleRate.
// Samples outside [-1, 1] are clamped.
func WriteWAV16(w io.Writer, sampleRate int, m *audio.Matrix) error {
	if m == nil || m.Channels <= 0 || sampleRate <= 0 {
		return fmt.Errorf("%w: write wav needs a matrix and a positive sample rate", audio.ErrInvalidArgument)
	}

	numChannels := uint16(m.Channels)
	bitsPerSample := uint16(16)
	blockAlign := numChannels * (bitsPerSample / 8)

	if uint64(m.Frames)*uint64(blockAlign) > math.MaxUint32-36 || int64(sampleRate)*int64(blockAlign) > math.MaxUint32 {
		return fmt.Errorf("%w: %d frames do not fit a WAV file", audio.ErrConversionOverflow, m.Frames)
	}

	byteRate := uint32(sampleRate) * uint32(blockAlign)
	dataSize := uint32(m.Frames) * uint32(blockAlign)
	riffSize := 36 + dataSize

	// Pre-allocate buffer for entire header (44 bytes)
	header := make([]byte, headerSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	if m.Frames == 0 {
		return nil
	}

	// Write whole frames, chunkFrames at a time
	const chunkFrames = 2048
	frames := min(m.Frames, chunkFrames)
	buf := make([]byte, frames*int(blockAlign))

	for start := 0; start < m.Frames; start += chunkFrames {
		end := min(start+chunkFrames, m.Frames)
		out := buf[:(end-start)*int(blockAlign)]

		i := 0
		for f := start; f < end; f++ {
			for c := range m.Channels {
				binary.LittleEndian.PutUint16(out[i:i+2], uint16(utils.Float64ToInt16(m.At(c, f))))
				i += 2
			}
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w: %w", audio.ErrIO, err)
		}
	}

	return nil
}
