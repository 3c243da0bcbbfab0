package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-morph/dsp/core"
)

const (
	headerSize    = 44
	pcmFormat     = 1
	bitsPerSample = 16
)

// Encode writes samples as a mono 16-bit PCM RIFF/WAVE stream.
//
// The layout is the canonical 44-byte header ("RIFF", "WAVE", a 16-byte
// "fmt " sub-chunk, "data") followed by little-endian samples. Each float
// sample is clamped to [-1, 1] and scaled by 32767. The byte layout is
// stable so output files are reproducible bit for bit.
func Encode(w io.Writer, samples []float64, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("wav: sample rate must be > 0: %d", sampleRate)
	}

	const (
		channels   = 1
		blockAlign = channels * bitsPerSample / 8
	)

	dataSize := len(samples) * blockAlign

	var header [headerSize]byte

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(headerSize-8+dataSize))
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], pcmFormat)
	binary.LittleEndian.PutUint16(header[22:24], channels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataSize))

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("wav: writing header: %w", err)
	}

	buf := make([]byte, 2*len(samples))
	for i, s := range samples {
		v := int16(core.Clamp(s, -1, 1) * 32767)
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(v))
	}

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("wav: writing samples: %w", err)
	}

	return nil
}

// Decode reads a 16-bit PCM RIFF/WAVE stream and returns the samples and
// sample rate. Multi-channel input is downmixed to mono by averaging.
// Chunks other than "fmt " and "data" are skipped.
func Decode(r io.Reader) ([]float64, int, error) {
	var riff [12]byte
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return nil, 0, fmt.Errorf("wav: reading RIFF header: %w", err)
	}

	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return nil, 0, fmt.Errorf("wav: not a RIFF/WAVE stream")
	}

	var (
		channels   int
		sampleRate int
		haveFormat bool
	)

	for {
		var chunk [8]byte
		if _, err := io.ReadFull(r, chunk[:]); err != nil {
			if err == io.EOF {
				return nil, 0, fmt.Errorf("wav: no data chunk found")
			}

			return nil, 0, fmt.Errorf("wav: reading chunk header: %w", err)
		}

		id := string(chunk[0:4])
		size := int(binary.LittleEndian.Uint32(chunk[4:8]))

		switch id {
		case "fmt ":
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, 0, fmt.Errorf("wav: reading fmt chunk: %w", err)
			}

			if format := binary.LittleEndian.Uint16(body[0:2]); format != pcmFormat {
				return nil, 0, fmt.Errorf("wav: unsupported format tag %d, want PCM", format)
			}

			if bits := binary.LittleEndian.Uint16(body[14:16]); bits != bitsPerSample {
				return nil, 0, fmt.Errorf("wav: unsupported bit depth %d, want 16", bits)
			}

			channels = int(binary.LittleEndian.Uint16(body[2:4]))
			sampleRate = int(binary.LittleEndian.Uint32(body[4:8]))
			haveFormat = true
		case "data":
			if !haveFormat {
				return nil, 0, fmt.Errorf("wav: data chunk before fmt chunk")
			}

			if channels < 1 {
				return nil, 0, fmt.Errorf("wav: invalid channel count %d", channels)
			}

			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, 0, fmt.Errorf("wav: reading data chunk: %w", err)
			}

			frames := len(body) / (2 * channels)
			out := make([]float64, frames)

			for i := range frames {
				sum := 0.0
				for c := range channels {
					raw := int16(binary.LittleEndian.Uint16(body[2*(i*channels+c):]))
					sum += float64(raw) / 32768
				}

				out[i] = sum / float64(channels)
			}

			return out, sampleRate, nil
		default:
			// Skip unknown chunks (LIST, fact, cue, ...), padded to even size.
			skip := int64(size)
			if size%2 == 1 {
				skip++
			}

			if _, err := io.CopyN(io.Discard, r, skip); err != nil {
				return nil, 0, fmt.Errorf("wav: skipping %q chunk: %w", id, err)
			}
		}
	}
}

// Duration returns the play time of a sample count at a sample rate.
func Duration(samples, sampleRate int) float64 {
	if sampleRate <= 0 {
		return math.NaN()
	}

	return float64(samples) / float64(sampleRate)
}
