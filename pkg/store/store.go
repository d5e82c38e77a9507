package store

import (
	"github.com/utkarsh5026/gocaf/pkg/objects"
)

// ObjectStore is a write-once mapping from digest to serialized object.
//
// Objects are immutable and writes are idempotent by content, so every
// implementation must be safe for concurrent use: Put for the same digest
// from multiple callers resolves to a single atomic insert-if-absent, and
// reads may proceed concurrently with unrelated writes. No operation blocks
// beyond the cost of hashing and map or file access; callers needing
// cancellation wrap these calls externally.
type ObjectStore interface {
	// Put stores an object and returns its digest. If an entry with that
	// digest already exists the existing digest is returned without
	// rewriting; this is the required deduplicating behavior, not a race.
	Put(obj objects.Object) (objects.Digest, error)

	// Get retrieves an object by digest, enforcing the expected kind.
	// Fails with INVALID_DIGEST_FORMAT before any lookup, NOT_FOUND when
	// the digest is absent, KIND_MISMATCH when the stored kind tag differs
	// from want, and CORRUPT_OBJECT when the stored payload no longer
	// hashes to the digest it is filed under.
	Get(digest objects.Digest, want objects.ObjectKind) (objects.Object, error)

	// Contains reports whether the digest is present, without decoding.
	Contains(digest objects.Digest) (bool, error)

	// KindOf returns the stored kind tag without a full decode.
	// Fails with NOT_FOUND if the digest is absent.
	KindOf(digest objects.Digest) (objects.ObjectKind, error)
}
