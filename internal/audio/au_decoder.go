// Package audio decodes the Sun/NeXT (.au) sound effects shipped with the
// arcade into the 16-bit little-endian stereo PCM that Ebitengine plays.
package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"
)

// ErrNotAU is returned when the data does not start with the ".snd" magic.
var ErrNotAU = errors.New("not an AU file")

const (
	auMagic         = 0x2e736e64 // ".snd" in big-endian
	auHeaderSize    = 24
	auUnknownSize   = 0xFFFFFFFF
	auEncodingULaw  = 1 // 8-bit μ-law
	auEncodingPCM16 = 3 // 16-bit linear PCM, big-endian

	ulawBias = 0x84
)

// AUDecoder is a fully decoded AU stream.
// Reads and seeks go through the embedded bytes.Reader over the stereo PCM;
// mono files are duplicated into both channels.
type AUDecoder struct {
	*bytes.Reader
	sampleRate int64
	channels   int // channel count of the source file
}

// header fields after the magic, in file order
type auHeader struct {
	dataOffset uint32
	dataSize   uint32
	encoding   uint32
	sampleRate uint32
	channels   uint32
}

func parseHeader(data []byte) (auHeader, error) {
	if len(data) < auHeaderSize {
		return auHeader{}, fmt.Errorf("AU file too short: %d bytes (minimum %d)", len(data), auHeaderSize)
	}
	if magic := binary.BigEndian.Uint32(data); magic != auMagic {
		return auHeader{}, fmt.Errorf("%w: magic 0x%08x", ErrNotAU, magic)
	}

	h := auHeader{
		dataOffset: binary.BigEndian.Uint32(data[4:]),
		dataSize:   binary.BigEndian.Uint32(data[8:]),
		encoding:   binary.BigEndian.Uint32(data[12:]),
		sampleRate: binary.BigEndian.Uint32(data[16:]),
		channels:   binary.BigEndian.Uint32(data[20:]),
	}
	switch {
	case h.channels < 1 || h.channels > 2:
		return h, fmt.Errorf("unsupported channel count: %d (only 1-2 supported)", h.channels)
	case h.sampleRate == 0:
		return h, errors.New("invalid sample rate: 0")
	case int(h.dataOffset) < auHeaderSize || int(h.dataOffset) > len(data):
		return h, fmt.Errorf("invalid data offset: %d (file size: %d)", h.dataOffset, len(data))
	}
	return h, nil
}

// DecodeAU decodes a Sun/NeXT audio file (.au) from the given reader.
// μ-law and 16-bit linear encodings with one or two channels are supported.
func DecodeAU(r io.Reader) (*AUDecoder, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read AU file: %w", err)
	}
	h, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	payload := data[h.dataOffset:]
	if h.dataSize != auUnknownSize && int(h.dataSize) < len(payload) {
		payload = payload[:h.dataSize]
	}

	var sample func(i int) int16
	count := 0
	switch h.encoding {
	case auEncodingULaw:
		count = len(payload)
		sample = func(i int) int16 { return ulawToLinear(payload[i]) }
	case auEncodingPCM16:
		count = len(payload) / 2
		sample = func(i int) int16 { return int16(binary.BigEndian.Uint16(payload[i*2:])) }
	default:
		return nil, fmt.Errorf("unsupported AU encoding: %d (supported: μ-law [1], 16-bit PCM [3])", h.encoding)
	}

	channels := int(h.channels)
	frames := count / channels
	pcm := make([]byte, frames*4)
	for f := 0; f < frames; f++ {
		left := sample(f * channels)
		right := left
		if channels == 2 {
			right = sample(f*channels + 1)
		}
		binary.LittleEndian.PutUint16(pcm[f*4:], uint16(left))
		binary.LittleEndian.PutUint16(pcm[f*4+2:], uint16(right))
	}

	return &AUDecoder{
		Reader:     bytes.NewReader(pcm),
		sampleRate: int64(h.sampleRate),
		channels:   channels,
	}, nil
}

// ulawToLinear expands one G.711 μ-law byte.
func ulawToLinear(b byte) int16 {
	b = ^b
	exponent := (b >> 4) & 0x07
	mantissa := int32(b & 0x0F)
	v := ((mantissa << 3) + ulawBias) << exponent
	v -= ulawBias
	if b&0x80 != 0 {
		v = -v
	}
	return int16(v)
}

// Length returns the size of the decoded stereo PCM stream in bytes.
func (d *AUDecoder) Length() int64 {
	return d.Size()
}

// SampleRate returns the sample rate of the audio in Hz.
func (d *AUDecoder) SampleRate() int64 {
	return d.sampleRate
}

// Channels returns the channel count of the source file.
func (d *AUDecoder) Channels() int {
	return d.channels
}

// Duration returns the playback length of the stream.
func (d *AUDecoder) Duration() time.Duration {
	return time.Duration(d.Size()/4) * time.Second / time.Duration(d.sampleRate)
}
