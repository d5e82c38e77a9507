package store

import (
	"sync"
	"sync/atomic"

	"github.com/utkarsh5026/gocaf/pkg/objects"
)

// storedEntry is one committed object: its kind tag and full serialized bytes.
type storedEntry struct {
	kind objects.ObjectKind
	data []byte
}

// MemoryObjectStore keeps objects in process memory.
//
// The digest -> entry mapping is a sync.Map so the write-once insert is a
// single atomic LoadOrStore: concurrent Puts of the same content settle on
// one entry without per-object locks, and reads never block unrelated
// writes. There is no global store; construct one and pass it around.
type MemoryObjectStore struct {
	entries sync.Map // objects.Digest -> storedEntry
	count   atomic.Int64
	opts    *Options
}

// NewMemoryObjectStore creates an empty in-memory object store.
func NewMemoryObjectStore(opts ...Option) *MemoryObjectStore {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return &MemoryObjectStore{opts: options}
}

// Put stores an object, returning its digest. Writing the same content
// twice is idempotent: the second call returns the existing digest and the
// store keeps exactly one entry.
func (m *MemoryObjectStore) Put(obj objects.Object) (objects.Digest, error) {
	if m.opts.VerifyTargets {
		if err := verifyTargets(m, obj); err != nil {
			return "", err
		}
	}

	serialized := objects.Encode(obj.Kind(), obj.Content())
	digest := objects.ComputeDigest(serialized)

	entry := storedEntry{kind: obj.Kind(), data: serialized}
	if _, loaded := m.entries.LoadOrStore(digest, entry); !loaded {
		m.count.Add(1)
	}

	return digest, nil
}

// Get retrieves and decodes an object, enforcing the expected kind and
// re-verifying the payload digest against the lookup key.
func (m *MemoryObjectStore) Get(digest objects.Digest, want objects.ObjectKind) (objects.Object, error) {
	entry, err := m.lookup("get", digest)
	if err != nil {
		return nil, err
	}

	if entry.kind != want {
		return nil, kindMismatchError("get", digest, want, entry.kind)
	}

	if objects.ComputeDigest(entry.data) != digest {
		return nil, corruptObjectError("get", digest, nil)
	}

	obj, err := decodeObject(entry.data)
	if err != nil {
		// The payload hashed correctly yet failed to decode; only a broken
		// store invariant can cause this.
		return nil, corruptObjectError("get", digest, err)
	}
	return obj, nil
}

// Contains reports whether the digest is present.
func (m *MemoryObjectStore) Contains(digest objects.Digest) (bool, error) {
	if err := digest.Validate(); err != nil {
		return false, err
	}
	_, ok := m.entries.Load(digest)
	return ok, nil
}

// KindOf returns the stored kind tag without decoding.
func (m *MemoryObjectStore) KindOf(digest objects.Digest) (objects.ObjectKind, error) {
	entry, err := m.lookup("kind_of", digest)
	if err != nil {
		return "", err
	}
	return entry.kind, nil
}

// ObjectCount returns the number of stored objects.
func (m *MemoryObjectStore) ObjectCount() int64 {
	return m.count.Load()
}

// lookup validates the digest format and loads its entry.
func (m *MemoryObjectStore) lookup(op string, digest objects.Digest) (storedEntry, error) {
	if err := digest.Validate(); err != nil {
		return storedEntry{}, err
	}
	v, ok := m.entries.Load(digest)
	if !ok {
		return storedEntry{}, notFoundError(op, digest)
	}
	return v.(storedEntry), nil
}
