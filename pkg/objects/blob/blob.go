package blob

import (
	"fmt"
	"io"
	"sync"

	"github.com/utkarsh5026/gocaf/pkg/objects"
)

// Blob holds opaque file content. Its canonical encoding is the raw bytes.
type Blob struct {
	data []byte

	digestOnce sync.Once
	digest     objects.Digest
}

// NewBlob creates a new Blob from raw data. The input is copied so the
// blob stays immutable even if the caller reuses the buffer.
func NewBlob(data []byte) *Blob {
	owned := make([]byte, len(data))
	copy(owned, data)
	return &Blob{data: owned}
}

// ParseBlob parses a blob from its serialized form (with header).
func ParseBlob(data []byte) (*Blob, error) {
	content, err := objects.ParseContent(data, objects.BlobKind)
	if err != nil {
		return nil, err
	}

	b := NewBlob(content)
	b.digestOnce.Do(func() {
		b.digest = objects.ComputeDigest(data)
	})
	return b, nil
}

// Kind returns the object kind
func (b *Blob) Kind() objects.ObjectKind {
	return objects.BlobKind
}

// Content returns the canonical encoding, which for a blob is the data itself
func (b *Blob) Content() []byte {
	return b.data
}

// Data returns a copy of the blob's bytes
func (b *Blob) Data() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// Size returns the size of the content in bytes
func (b *Blob) Size() int64 {
	return int64(len(b.data))
}

// Digest returns the SHA-256 identity of the blob
func (b *Blob) Digest() objects.Digest {
	b.digestOnce.Do(func() {
		b.digest = objects.ComputeObjectDigest(objects.BlobKind, b.data)
	})
	return b.digest
}

// Serialize writes the blob in storage format
func (b *Blob) Serialize(w io.Writer) error {
	return objects.WriteTo(w, objects.BlobKind, b.data)
}

// String returns a human-readable representation
func (b *Blob) String() string {
	return fmt.Sprintf("Blob{size: %d, digest: %s}", b.Size(), b.Digest().Short())
}
