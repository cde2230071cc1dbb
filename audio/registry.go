// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
)

// Registry maps format hints (e.g. "wav", "mp3", "ogg") to formats.
type Registry struct {
	formats map[string]Format

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		formats: make(map[string]Format),
		mtx:     &sync.Mutex{},
	}
}

// Register binds f to its own name and to every alias.
func (r *Registry) Register(f Format, aliases ...string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.formats[normalizeHint(f.Name())] = f
	for _, a := range aliases {
		r.formats[normalizeHint(a)] = f
	}
}

func (r *Registry) Get(hint string) (Format, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	f, ok := r.formats[normalizeHint(hint)]
	return f, ok
}

// Probe opens a Demuxer over rs. The hinted format is tried first; when it is
// unknown or rejects the input, the format named by the leading magic bytes
// is tried next.
func (r *Registry) Probe(rs io.ReadSeeker, hint string) (Demuxer, error) {
	var candidates []Format

	if f, ok := r.Get(hint); ok {
		candidates = append(candidates, f)
	}

	sniffed, err := sniffSeeker(rs)
	if err != nil {
		return nil, err
	}

	if f, ok := r.Get(sniffed); ok && (len(candidates) == 0 || candidates[0].Name() != f.Name()) {
		candidates = append(candidates, f)
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: hint %q", ErrUnsupportedFormat, hint)
	}

	var probeErr error
	for _, f := range candidates {
		if _, err := rs.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIO, err)
		}

		dmx, err := f.Probe(rs)
		if err == nil {
			return dmx, nil
		}

		probeErr = errors.Join(probeErr, fmt.Errorf("%s: %w", f.Name(), err))
	}

	if errors.Is(probeErr, ErrIO) {
		return nil, probeErr
	}

	return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, probeErr)
}

// HintFromPath derives a format hint from the file extension of path.
func HintFromPath(path string) string {
	return normalizeHint(filepath.Ext(path))
}

func normalizeHint(h string) string {
	return strings.ToLower(strings.TrimPrefix(h, "."))
}

// sniffLen covers the Ogg page header plus the first codec magic.
const sniffLen = 36

func sniffSeeker(rs io.ReadSeeker) (string, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}

	header := make([]byte, sniffLen)
	n, err := io.ReadFull(rs, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}

	return Sniff(header[:n]), nil
}

// Sniff names the format whose signature starts header, or "" when none does.
func Sniff(header []byte) string {
	if len(header) < 4 {
		return ""
	}

	switch {
	case bytes.HasPrefix(header, []byte("fLaC")):
		return "flac"
	case bytes.HasPrefix(header, []byte("ID3")):
		return "mp3"
	case header[0] == 0xFF && header[1]&0xE0 == 0xE0:
		return "mp3"
	case bytes.HasPrefix(header, []byte("RIFF")) && len(header) >= 12 && string(header[8:12]) == "WAVE":
		return "wav"
	case bytes.HasPrefix(header, []byte("FORM")) && len(header) >= 12 &&
		(string(header[8:12]) == "AIFF" || string(header[8:12]) == "AIFC"):
		return "aiff"
	case bytes.HasPrefix(header, []byte("OggS")):
		// first packet starts after the 27 byte page header and its segment table
		if len(header) > 26 {
			start := 27 + int(header[26])
			if start+7 <= len(header) && string(header[start+1:start+7]) == "vorbis" {
				return "ogg"
			}
			if start+8 <= len(header) && string(header[start:start+8]) == "OpusHead" {
				return "opus"
			}
		}
		return "ogg"
	}

	return ""
}
