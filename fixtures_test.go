// SPDX-License-Identifier: EPL-2.0

package audmatrix

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audmatrix/audio"
	"github.com/ik5/audmatrix/formats/wav"
	"github.com/ik5/audmatrix/utils"
)

const (
	fixtureRate    = 44100
	fixtureSeconds = 10
)

// sawtooth gives channel 0 a 1000-frame ramp and channel 1 its negation.
func sawtooth(frame, channel int) float64 {
	v := float64(frame%1000) / 1000
	if channel == 1 {
		return -v
	}
	return v
}

// quantized is what a 16-bit WAV round trip turns v into.
func quantized(v float64) float64 {
	return utils.IntToFloat64(int(utils.Float64ToInt16(v)), 16)
}

// writeFixture writes a 16-bit WAV of the given shape to a temp dir and
// returns its path.
func writeFixture(t testing.TB, name string, channels, rate, frames int, wave func(frame, channel int) float64) string {
	t.Helper()

	m, err := audio.NewMatrix(channels, frames)
	if err != nil {
		t.Fatalf("NewMatrix() error = %v", err)
	}
	for c := range channels {
		for f := range frames {
			m.Set(c, f, wave(f, c))
		}
	}

	path := filepath.Join(t.TempDir(), name)

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer f.Close()

	if err := wav.WriteWAV16(f, rate, m); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	return path
}

// stereoFixture is the 2 channel, 44100 Hz, 10 second sawtooth.
func stereoFixture(t testing.TB) string {
	t.Helper()
	return writeFixture(t, "stereo.wav", 2, fixtureRate, fixtureRate*fixtureSeconds, sawtooth)
}
