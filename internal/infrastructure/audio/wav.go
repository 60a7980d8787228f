// Package audio decodes uploaded interview recordings into the sample
// form the prosody analysis works on.
package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNotWAV is returned when the payload is not a RIFF/WAVE container.
	ErrNotWAV = errors.New("audio: not a WAV file")
	// ErrUnsupportedFormat is returned for encodings other than PCM16.
	ErrUnsupportedFormat = errors.New("audio: unsupported WAV encoding, expected 16-bit PCM")
)

// DecodeWAV reads a PCM16 WAV stream and returns mono samples in
// [-1, 1] together with the sample rate. Multi-channel audio is
// downmixed by averaging the channels.
func DecodeWAV(r io.Reader) ([]float64, int, error) {
	var header [12]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, 0, fmt.Errorf("audio: read RIFF header: %w", err)
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return nil, 0, ErrNotWAV
	}

	var (
		sampleRate    int
		numChannels   int
		bitsPerSample int
		audioFormat   int
		haveFmt       bool
	)

	// Walk the chunk list. fmt must come before data.
	for {
		var chunkHeader [8]byte
		if _, err := io.ReadFull(r, chunkHeader[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, 0, fmt.Errorf("audio: no data chunk found")
			}
			return nil, 0, fmt.Errorf("audio: read chunk header: %w", err)
		}

		chunkID := string(chunkHeader[0:4])
		chunkSize := binary.LittleEndian.Uint32(chunkHeader[4:8])

		switch chunkID {
		case "fmt ":
			if chunkSize < 16 {
				return nil, 0, fmt.Errorf("audio: fmt chunk too short: %d bytes", chunkSize)
			}
			body := make([]byte, chunkSize)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, 0, fmt.Errorf("audio: read fmt chunk: %w", err)
			}
			audioFormat = int(binary.LittleEndian.Uint16(body[0:2]))
			numChannels = int(binary.LittleEndian.Uint16(body[2:4]))
			sampleRate = int(binary.LittleEndian.Uint32(body[4:8]))
			bitsPerSample = int(binary.LittleEndian.Uint16(body[14:16]))
			haveFmt = true

		case "data":
			if !haveFmt {
				return nil, 0, fmt.Errorf("audio: data chunk before fmt chunk")
			}
			// Format 1 is integer PCM. Some encoders write
			// WAVE_FORMAT_EXTENSIBLE (0xFFFE) for plain PCM16 too.
			if (audioFormat != 1 && audioFormat != 0xFFFE) || bitsPerSample != 16 {
				return nil, 0, ErrUnsupportedFormat
			}
			if numChannels < 1 {
				return nil, 0, fmt.Errorf("audio: invalid channel count %d", numChannels)
			}
			if sampleRate <= 0 {
				return nil, 0, fmt.Errorf("audio: invalid sample rate %d", sampleRate)
			}

			body := make([]byte, chunkSize)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, 0, fmt.Errorf("audio: read data chunk: %w", err)
			}

			samples := decodePCM16(body, numChannels)
			return samples, sampleRate, nil

		default:
			// Skip unknown chunks (LIST, fact, cue, ...)
			if err := skipChunk(r, chunkSize); err != nil {
				return nil, 0, fmt.Errorf("audio: skip %q chunk: %w", chunkID, err)
			}
		}

		// Chunks are word-aligned, odd sizes carry a pad byte
		if chunkID != "data" && chunkSize%2 == 1 {
			var pad [1]byte
			if _, err := io.ReadFull(r, pad[:]); err != nil && err != io.EOF {
				return nil, 0, fmt.Errorf("audio: read pad byte: %w", err)
			}
		}
	}
}

func decodePCM16(body []byte, numChannels int) []float64 {
	bytesPerFrame := 2 * numChannels
	frames := len(body) / bytesPerFrame
	samples := make([]float64, frames)

	for i := 0; i < frames; i++ {
		base := i * bytesPerFrame
		var sum float64
		for ch := 0; ch < numChannels; ch++ {
			raw := int16(binary.LittleEndian.Uint16(body[base+2*ch : base+2*ch+2]))
			sum += float64(raw) / 32768.0
		}
		samples[i] = sum / float64(numChannels)
	}

	return samples
}

func skipChunk(r io.Reader, size uint32) error {
	_, err := io.CopyN(io.Discard, r, int64(size))
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
