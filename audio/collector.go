// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
)

// Collector drives a Demuxer/Decoder pair packet by packet and fills a
// pre-sized Matrix with exactly the frames of a Window.
//
// The zero value is ready to use.
type Collector struct {
	// MaxPackets bounds the number of packets pulled from the demuxer,
	// including skipped ones. Zero means unbounded.
	MaxPackets int

	Logger *slog.Logger
}

// Collect reads the frames described by w from track.
//
// Packets of other tracks are skipped without decoding. Packets lying wholly
// before the window are decoded and dropped; the packet straddling the
// window start is trimmed. Collection stops as soon as the last frame is
// written; the remainder of the stream is never read.
//
// The result is all-or-nothing: a stream that ends early fails with
// ErrShortStream and any decoder error fails with ErrDecodeFault.
func (c *Collector) Collect(ctx context.Context, dmx Demuxer, dec Decoder, track Track, w Window) (*Matrix, error) {
	log := c.Logger
	if log == nil {
		log = slog.Default()
	}

	channels := track.Meta.Channels
	if channels <= 0 {
		return nil, &missingField{"channel count"}
	}

	if w.LengthFrames <= 0 || w.OffsetFrames < 0 {
		return nil, fmt.Errorf("%w: offset %d length %d", ErrInvalidWindow, w.OffsetFrames, w.LengthFrames)
	}

	if w.LengthFrames > math.MaxInt || w.OffsetFrames > math.MaxInt {
		return nil, fmt.Errorf("%w: window %d+%d frames", ErrConversionOverflow, w.OffsetFrames, w.LengthFrames)
	}

	m, err := NewMatrix(channels, int(w.LengthFrames))
	if err != nil {
		return nil, err
	}

	var (
		idx             int
		remainingOffset = int(w.OffsetFrames)
		remainingLength = int(w.LengthFrames)
		pulled          int
		skippedPackets  int
	)

	for remainingLength > 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("collect: %w", err)
		}

		if c.MaxPackets > 0 && pulled >= c.MaxPackets {
			return nil, fmt.Errorf("%w: gave up after %d packets with %d of %d frames",
				ErrShortStream, pulled, idx, m.Frames)
		}

		pkt, err := dmx.NextPacket()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: stream ended after %d of %d frames", ErrShortStream, idx, m.Frames)
			}
			return nil, classifyPacketErr(err)
		}
		pulled++

		if pkt.TrackID != track.ID {
			continue
		}

		run, err := dec.Decode(pkt)
		if err != nil {
			if errors.Is(err, ErrDecodeFault) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %w", ErrDecodeFault, err)
		}

		if run.Channels != channels {
			return nil, fmt.Errorf("%w: packet has %d channels, track has %d", ErrDecodeFault, run.Channels, channels)
		}

		frames := run.Frames()
		samples := run.Samples[:frames*channels]

		if remainingOffset >= frames {
			remainingOffset -= frames
			skippedPackets++
			continue
		} else if remainingOffset > 0 {
			samples = samples[remainingOffset*channels:]
			remainingOffset = 0
		}

		for base := 0; base+channels <= len(samples); base += channels {
			for ch := range channels {
				m.Data[ch*m.Frames+idx] = samples[base+ch]
			}
			idx++
			remainingLength--

			if remainingLength == 0 {
				break
			}
		}
	}

	log.Debug("collected window",
		slog.Int64("offset_frames", w.OffsetFrames),
		slog.Int64("length_frames", w.LengthFrames),
		slog.Int("packets", pulled),
		slog.Int("skipped_packets", skippedPackets),
	)

	return m, nil
}

func classifyPacketErr(err error) error {
	for _, known := range []error{ErrDecodeFault, ErrIO, ErrUnsupportedFormat, ErrMissingMetadata} {
		if errors.Is(err, known) {
			return err
		}
	}

	return fmt.Errorf("%w: %w", ErrIO, err)
}
