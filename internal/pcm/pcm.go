// SPDX-License-Identifier: EPL-2.0

// Package pcm holds the packet payloads shared by the integer and float
// container formats and the Decoder that turns them into float64 samples.
package pcm

import (
	"encoding/binary"
	"fmt"

	"github.com/ik5/audmatrix/audio"
	"github.com/ik5/audmatrix/utils"
)

// Ints is interleaved signed integer samples at the decoder's bit depth.
type Ints []int

// Uint8 is interleaved unsigned 8-bit samples with silence at 128.
type Uint8 []int

// S16LE is interleaved signed 16-bit little-endian samples.
type S16LE []byte

// Float32 is interleaved float samples already in [-1, 1].
type Float32 []float32

// Decoder converts pcm payloads into interleaved float64 runs.
// The returned SampleRun reuses one buffer across calls.
type Decoder struct {
	Channels int
	BitDepth int

	buf []float64
}

// NewDecoder returns a Decoder for the given layout.
func NewDecoder(channels, bitDepth int) *Decoder {
	return &Decoder{Channels: channels, BitDepth: bitDepth}
}

func (d *Decoder) grow(n int) []float64 {
	if cap(d.buf) < n {
		d.buf = make([]float64, n)
	}

	return d.buf[:n]
}

// Decode implements audio.Decoder.
func (d *Decoder) Decode(p audio.Packet) (audio.SampleRun, error) {
	if d.Channels <= 0 {
		return audio.SampleRun{}, fmt.Errorf("%w: decoder has no channels", audio.ErrDecodeFault)
	}

	var out []float64

	switch data := p.Payload.(type) {
	case Ints:
		out = d.grow(len(data) - len(data)%d.Channels)
		for i := range out {
			out[i] = utils.IntToFloat64(data[i], d.BitDepth)
		}
	case Uint8:
		out = d.grow(len(data) - len(data)%d.Channels)
		for i := range out {
			out[i] = utils.Uint8ToFloat64(data[i])
		}
	case S16LE:
		samples := len(data) / 2
		out = d.grow(samples - samples%d.Channels)
		for i := range out {
			out[i] = utils.IntToFloat64(int(int16(binary.LittleEndian.Uint16(data[2*i:]))), 16)
		}
	case Float32:
		out = d.grow(len(data) - len(data)%d.Channels)
		for i := range out {
			out[i] = float64(data[i])
		}
	default:
		return audio.SampleRun{}, fmt.Errorf("%w: unexpected payload %T", audio.ErrDecodeFault, p.Payload)
	}

	return audio.SampleRun{Channels: d.Channels, Samples: out}, nil
}
