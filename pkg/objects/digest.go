package objects

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Digest represents the SHA-256 identity of an object, rendered as a
// 64-character lowercase hex string.
// Example: "8aec4e4876f854f688d0ebfc8f37598f38e5fd6903cccc850ca36591175aeb60"
type Digest string

// ShortDigest represents an abbreviated digest (typically 8 characters)
type ShortDigest string

const (
	// DigestLength is the length of a full digest in hex characters
	DigestLength = 64
	// ShortDigestLength is the default length for abbreviated digests
	ShortDigestLength = 8
	// RawDigestLength is the length of a SHA-256 digest in bytes
	RawDigestLength = 32
)

// ComputeDigest computes the SHA-256 digest of the given bytes.
func ComputeDigest(data []byte) Digest {
	sum := sha256.Sum256(data)
	return Digest(hex.EncodeToString(sum[:]))
}

// ComputeObjectDigest computes an object digest from kind and canonical content.
// The kind participates in the hashed input through the serialized header, so
// equal raw bytes under different kinds always produce distinct digests.
func ComputeObjectDigest(kind ObjectKind, content []byte) Digest {
	return ComputeDigest(Encode(kind, content))
}

// ParseDigest validates a digest string supplied by a caller.
// The format is strict: exactly 64 lowercase hex characters. Uppercase input
// is rejected rather than normalized, since the digest string is a wire contract.
func ParseDigest(s string) (Digest, error) {
	d := Digest(s)
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

// String returns the digest as a string
func (d Digest) String() string {
	return string(d)
}

// Validate checks if the digest is exactly 64 lowercase hex characters.
func (d Digest) Validate() error {
	if len(d) != DigestLength {
		return NewInvalidDigestFormat("validate",
			fmt.Sprintf("digest must be %d characters long, got %d", DigestLength, len(d)))
	}
	for _, c := range d {
		if !isLowerHexChar(c) {
			return NewInvalidDigestFormat("validate",
				fmt.Sprintf("digest must contain only lowercase hex characters, found %q", c))
		}
	}
	return nil
}

// IsValid returns true if this is a valid digest string
func (d Digest) IsValid() bool {
	return d.Validate() == nil
}

// Short returns the abbreviated version of the digest
func (d Digest) Short() ShortDigest {
	if len(d) >= ShortDigestLength {
		return ShortDigest(d[:ShortDigestLength])
	}
	return ShortDigest(d)
}

// Bytes returns the digest decoded from hex
func (d Digest) Bytes() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return hex.DecodeString(string(d))
}

// MarshalText implements encoding.TextMarshaler
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Digest) UnmarshalText(text []byte) error {
	parsed, err := ParseDigest(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// String returns the short digest as a string
func (sd ShortDigest) String() string {
	return string(sd)
}

// isLowerHexChar returns true for the characters a canonical digest may contain
func isLowerHexChar(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}
