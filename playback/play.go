// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ik5/audmatrix/audio"
)

const (
	// DefaultTail is how long Play waits past the nominal audio length.
	DefaultTail = 500 * time.Millisecond

	pollInterval = 10 * time.Millisecond
)

type options struct {
	tail   time.Duration
	logger *slog.Logger
}

// Option configures Play.
type Option func(*options)

// WithTail sets the grace period after the nominal length before the stream
// is torn down.
func WithTail(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.tail = d
		}
	}
}

// WithLogger sets the logger for playback events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Play streams m to an output opened on dev and blocks until the device has
// drained it, the audio length plus the tail has passed, or ctx ends.
func Play(ctx context.Context, dev Device, m *audio.Matrix, sampleRate int, opts ...Option) error {
	o := options{tail: DefaultTail, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	if dev == nil || m == nil || m.Channels <= 0 || m.Frames <= 0 || sampleRate <= 0 {
		return fmt.Errorf("%w: play needs a device, a non-empty matrix and a positive sample rate",
			audio.ErrInvalidArgument)
	}

	cursor := NewCursor(Interleave(m))

	stream, err := dev.Open(m.Channels, sampleRate)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(cursor); err != nil {
		return fmt.Errorf("start output: %w", err)
	}

	length := time.Duration(float64(m.Frames) / float64(sampleRate) * float64(time.Second))
	o.logger.Debug("playback started", "channels", m.Channels, "sample_rate", sampleRate, "length", length)

	deadline := time.NewTimer(length + o.tail)
	defer deadline.Stop()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for stream.Playing() {
		select {
		case <-ctx.Done():
			o.logger.Debug("playback cancelled")
			return ctx.Err()
		case <-deadline.C:
			o.logger.Debug("playback deadline reached", "length", length, "tail", o.tail)
			return nil
		case <-ticker.C:
		}
	}

	o.logger.Debug("playback finished")

	return nil
}
