// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/audmatrix/audio"
)

// ErrFormatChanged is returned when an output is requested in a format other
// than the one the process-wide oto context was created with.
var ErrFormatChanged = errors.New("output format changed")

// Device opens output streams.
type Device interface {
	Open(channels, sampleRate int) (Stream, error)
}

// Stream is an opened output. Start hands r to the device thread, which
// pulls from it until it returns an error.
type Stream interface {
	Start(r io.Reader) error
	Playing() bool
	Close() error
}

// oto allows a single context per process
var (
	otoMtx        sync.Mutex
	otoCtx        *oto.Context
	otoChannels   int
	otoSampleRate int
)

// OtoDevice plays through the system output using oto. All OtoDevice values
// share one oto context, created on the first Open.
type OtoDevice struct {
	Logger *slog.Logger
}

func (d *OtoDevice) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}

	return d.Logger
}

func (d *OtoDevice) Open(channels, sampleRate int) (Stream, error) {
	if channels <= 0 || sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d channels at %d Hz", audio.ErrInvalidArgument, channels, sampleRate)
	}

	otoMtx.Lock()
	defer otoMtx.Unlock()

	if otoCtx != nil {
		if otoChannels != channels || otoSampleRate != sampleRate {
			return nil, fmt.Errorf("%w: %dHz %dch -> %dHz %dch",
				ErrFormatChanged, otoSampleRate, otoChannels, sampleRate, channels)
		}

		d.logger().Debug("reusing audio output", "sample_rate", sampleRate, "channels", channels)
		return &otoStream{ctx: otoCtx}, nil
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatFloat32LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("%w: create oto context: %w", audio.ErrIO, err)
	}

	<-readyChan

	otoCtx = ctx
	otoChannels = channels
	otoSampleRate = sampleRate

	d.logger().Debug("audio output initialized", "sample_rate", sampleRate, "channels", channels)

	return &otoStream{ctx: ctx}, nil
}

type otoStream struct {
	ctx    *oto.Context
	player *oto.Player
}

func (s *otoStream) Start(r io.Reader) error {
	if s.player != nil {
		return fmt.Errorf("%w: stream already started", audio.ErrInvalidArgument)
	}

	s.player = s.ctx.NewPlayer(r)
	s.player.Play()

	return nil
}

func (s *otoStream) Playing() bool {
	return s.player != nil && s.player.IsPlaying()
}

func (s *otoStream) Close() error {
	if s.player == nil {
		return nil
	}

	err := s.player.Close()
	s.player = nil

	return err
}
