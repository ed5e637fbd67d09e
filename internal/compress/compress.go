package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Kind selects the compression algorithm.
type Kind uint8

const (
	// None stores blocks as they are.
	None Kind = iota
	// LZ4 is fast block compression.
	LZ4
	// Zstd trades speed for ratio.
	Zstd
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind parses "none", "lz4" or "zstd".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return None, nil
	case "lz4":
		return LZ4, nil
	case "zstd":
		return Zstd, nil
	}
	return None, fmt.Errorf("unknown compression %q", s)
}

var (
	// ErrCorrupt is returned for blocks whose header does not match the
	// payload.
	ErrCorrupt = errors.New("compress: corrupt block")
	// ErrTooLarge is returned for inputs that do not fit the header.
	ErrTooLarge = errors.New("compress: block too large")
)

const headerSize = 9

var (
	zstdEncoders sync.Pool
	zstdDecoders sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoders.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoders.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil)
}

// Encode frames data as one block compressed with k.
func Encode(data []byte, k Kind) ([]byte, error) {
	if uint64(len(data)) > math.MaxUint32 {
		return nil, ErrTooLarge
	}

	var packed []byte
	switch k {
	case None:
	case LZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, err
		}
		packed = buf[:n]
	case Zstd:
		enc, err := getZstdEncoder()
		if err != nil {
			return nil, err
		}
		packed = enc.EncodeAll(data, nil)
		zstdEncoders.Put(enc)
	default:
		return nil, fmt.Errorf("compress: unknown kind %d", k)
	}

	if len(packed) == 0 || float64(len(packed)) > float64(len(data))*0.9 {
		return frame(k, len(data), 0, data), nil
	}
	return frame(k, len(data), len(packed), packed), nil
}

func frame(k Kind, raw, stored int, payload []byte) []byte {
	out := make([]byte, headerSize+len(payload))
	out[0] = byte(k)
	binary.LittleEndian.PutUint32(out[1:], uint32(raw))
	binary.LittleEndian.PutUint32(out[5:], uint32(stored))
	copy(out[headerSize:], payload)
	return out
}

// Decode reverses Encode. The kind is read from the block header.
func Decode(block []byte) ([]byte, error) {
	if len(block) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrCorrupt, len(block))
	}
	k := Kind(block[0])
	raw := int(binary.LittleEndian.Uint32(block[1:]))
	stored := int(binary.LittleEndian.Uint32(block[5:]))
	payload := block[headerSize:]

	if stored == 0 {
		if len(payload) != raw {
			return nil, fmt.Errorf("%w: want %d raw bytes, have %d", ErrCorrupt, raw, len(payload))
		}
		return payload, nil
	}
	if len(payload) != stored {
		return nil, fmt.Errorf("%w: want %d stored bytes, have %d", ErrCorrupt, stored, len(payload))
	}

	switch k {
	case LZ4:
		out := make([]byte, raw)
		n, err := lz4.UncompressBlock(payload, out)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if n != raw {
			return nil, fmt.Errorf("%w: lz4 size mismatch", ErrCorrupt)
		}
		return out, nil
	case Zstd:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer zstdDecoders.Put(dec)
		out, err := dec.DecodeAll(payload, make([]byte, 0, raw))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if len(out) != raw {
			return nil, fmt.Errorf("%w: zstd size mismatch", ErrCorrupt)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: kind %s", ErrCorrupt, k)
}
