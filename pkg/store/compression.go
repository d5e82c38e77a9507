package store

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Compression selects the on-disk payload codec of the file store.
// The codec sits below the ObjectStore interface: digests are always
// computed over the uncompressed serialized object.
type Compression string

const (
	CompressionZstd Compression = "zstd"
	CompressionNone Compression = "none"
)

// ParseCompression converts a config value to a Compression.
func ParseCompression(s string) (Compression, error) {
	switch Compression(s) {
	case CompressionZstd, CompressionNone:
		return Compression(s), nil
	default:
		return "", fmt.Errorf("unknown compression codec: %q", s)
	}
}

// zstdMagic is the frame magic every zstd stream starts with. Serialized
// objects always begin with an ASCII kind tag, so the magic doubles as an
// unambiguous codec marker when reading payloads back.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
	zstdDecoder, _ = zstd.NewReader(nil)
)

// compressPayload encodes data with the selected codec.
func compressPayload(data []byte, c Compression) []byte {
	if c != CompressionZstd {
		return data
	}
	return zstdEncoder.EncodeAll(data, make([]byte, 0, len(data)))
}

// decompressPayload restores a payload written by compressPayload,
// detecting the codec from the frame itself.
func decompressPayload(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, zstdMagic) {
		return data, nil
	}
	out, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress payload: %w", err)
	}
	return out, nil
}
