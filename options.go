// SPDX-License-Identifier: EPL-2.0

package audmatrix

import (
	"log/slog"

	"github.com/ik5/audmatrix/audio"
)

// Option configures Load and the metadata queries.
//
// Example:
//
//	m, sr, err := audmatrix.Load("song.flac",
//	    audmatrix.WithOffset(30),
//	    audmatrix.WithDuration(10),
//	    audmatrix.WithMono(false),
//	)
type Option func(*loadOptions)

// loadOptions holds configuration for a single call.
type loadOptions struct {
	mono       bool     // Average all channels into one
	offset     float64  // Seconds skipped from the start of the track
	duration   *float64 // Seconds to read, nil for the rest of the track
	hint       string   // Format hint, "" to derive it from the path
	registry   *audio.Registry
	logger     *slog.Logger
	maxPackets int // 0 = no limit
}

// defaultOptions returns the default configuration.
func defaultOptions() *loadOptions {
	return &loadOptions{
		mono:     true,
		registry: DefaultRegistry,
		logger:   slog.Default(),
	}
}

func newOptions(opts []Option) *loadOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// WithMono controls the mixdown to a single channel. It is on by default.
func WithMono(mono bool) Option {
	return func(o *loadOptions) {
		o.mono = mono
	}
}

// WithOffset starts reading at the given number of seconds. The frame index
// is rounded down.
func WithOffset(seconds float64) Option {
	return func(o *loadOptions) {
		o.offset = seconds
	}
}

// WithDuration reads at most the given number of seconds. A duration past the
// end of the track is clamped to what is left.
func WithDuration(seconds float64) Option {
	return func(o *loadOptions) {
		o.duration = &seconds
	}
}

// WithHint names the container format ("wav", "flac", ...) instead of
// deriving it from the file extension. Magic-byte sniffing still runs when
// the hinted format rejects the input.
func WithHint(hint string) Option {
	return func(o *loadOptions) {
		o.hint = hint
	}
}

// WithRegistry replaces DefaultRegistry.
func WithRegistry(r *audio.Registry) Option {
	return func(o *loadOptions) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithLogger sets the logger used for debug records. slog.Default() is used
// otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(o *loadOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxPackets gives up with audio.ErrShortStream after n packets have been
// pulled without filling the window. Zero means no limit.
func WithMaxPackets(n int) Option {
	return func(o *loadOptions) {
		if n >= 0 {
			o.maxPackets = n
		}
	}
}
