// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV decoding and encoding.
//
// Decoding goes through github.com/go-audio/wav, which walks the RIFF chunks
// and hands back integer PCM. Format implements audio.Format so the package
// plugs into an audio.Registry:
//
//	registry.Register(wav.Format{}, "wave")
//
// # Supported Formats
//
//   - integer PCM at 8, 16, 24 or 32 bits (8-bit is unsigned)
//   - WAVE_FORMAT_EXTENSIBLE carrying integer PCM
//   - any channel count and sample rate
//
// IEEE float and compressed WAV are rejected with ErrUnsupportedEncoding.
//
// The total frame count comes from the size of the data chunk, so a file
// whose data chunk is cut short reports more frames than it holds; reading
// such a window ends in audio.ErrShortStream.
//
// # Writing WAV Files
//
// WriteWAV16 writes a Matrix as interleaved 16-bit PCM:
//
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 44100, m)
//
// It only needs an io.Writer, so it works on pipes and network streams too.
package wav
