package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/utkarsh5026/gocaf/pkg/common/logger"
	"github.com/utkarsh5026/gocaf/pkg/objects"
	"github.com/utkarsh5026/gocaf/pkg/repository/cafpath"
)

// FileObjectStore persists objects under a repository's .caf/objects
// directory, one file per object.
//
// Each object is serialized, hashed, compressed, and stored read-only in a
// two-level directory structure keyed by its digest:
//
//	.caf/objects/
//	├── 8a/            <- first 2 characters of the digest
//	│   └── ec4e48...  <- remaining 62 characters
//	├── 47/
//	│   └── 3a0f4c...
//	└── ...
//
// Files are written to a temp file and renamed into place with mode 0444;
// the rename is the atomic insert, so concurrent Puts of the same content
// converge on one entry and an existing file is never truncated. Digests
// are computed over the uncompressed serialized bytes, so the compression
// codec can change without invalidating identities.
type FileObjectStore struct {
	objectsPath cafpath.ObjectsPath
	opts        *Options
}

// NewFileObjectStore creates a FileObjectStore. Call Initialize before use.
func NewFileObjectStore(opts ...Option) *FileObjectStore {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return &FileObjectStore{opts: options}
}

// Initialize sets up the store by creating the objects directory.
func (f *FileObjectStore) Initialize(repoPath cafpath.RepositoryPath) error {
	f.objectsPath = repoPath.CafPath().ObjectsPath()

	if err := os.MkdirAll(f.objectsPath.String(), 0755); err != nil {
		return fmt.Errorf("failed to initialize object store: %w", err)
	}

	return nil
}

// Put stores an object, returning its digest. If the object file already
// exists the digest is returned without rewriting.
func (f *FileObjectStore) Put(obj objects.Object) (objects.Digest, error) {
	if err := f.ensureInitialized(); err != nil {
		return "", err
	}

	if f.opts.VerifyTargets {
		if err := verifyTargets(f, obj); err != nil {
			return "", err
		}
	}

	serialized := objects.Encode(obj.Kind(), obj.Content())
	digest := objects.ComputeDigest(serialized)

	filePath, err := f.objectsPath.ObjectFilePath(digest)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(filePath); err == nil {
		return digest, nil
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return "", fmt.Errorf("failed to create object directory: %w", err)
	}

	payload := compressPayload(serialized, f.opts.Compression)
	if err := writeObjectFile(filePath, payload); err != nil {
		return "", err
	}

	logger.Debug("stored object", "digest", digest.String(), "kind", obj.Kind().String())
	return digest, nil
}

// writeObjectFile writes payload to a temp file beside filePath and renames
// it into place. Rename is atomic, so racing writers of the same digest
// settle on one complete file and a reader never observes partial bytes.
func writeObjectFile(filePath string, payload []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(filePath), ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create object temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write object file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write object file: %w", err)
	}
	if err := os.Chmod(tmpName, 0444); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set object file mode: %w", err)
	}
	if err := os.Rename(tmpName, filePath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to store object file: %w", err)
	}
	return nil
}

// Get retrieves and decodes an object, enforcing the expected kind and
// re-verifying the payload digest against the lookup key.
func (f *FileObjectStore) Get(digest objects.Digest, want objects.ObjectKind) (objects.Object, error) {
	serialized, err := f.readObject("get", digest)
	if err != nil {
		return nil, err
	}

	kind, err := objects.PeekKind(serialized)
	if err != nil {
		return nil, corruptObjectError("get", digest, err)
	}
	if kind != want {
		return nil, kindMismatchError("get", digest, want, kind)
	}

	if objects.ComputeDigest(serialized) != digest {
		return nil, corruptObjectError("get", digest, nil)
	}

	obj, err := decodeObject(serialized)
	if err != nil {
		return nil, corruptObjectError("get", digest, err)
	}
	return obj, nil
}

// Contains reports whether the digest is present, without reading the file.
func (f *FileObjectStore) Contains(digest objects.Digest) (bool, error) {
	if err := f.ensureInitialized(); err != nil {
		return false, err
	}

	filePath, err := f.objectsPath.ObjectFilePath(digest)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(filePath)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check object existence: %w", err)
	}
	return true, nil
}

// KindOf returns the stored kind tag by reading only the object header.
func (f *FileObjectStore) KindOf(digest objects.Digest) (objects.ObjectKind, error) {
	serialized, err := f.readObject("kind_of", digest)
	if err != nil {
		return "", err
	}

	kind, err := objects.PeekKind(serialized)
	if err != nil {
		return "", corruptObjectError("kind_of", digest, err)
	}
	return kind, nil
}

// ObjectCount returns the total number of objects in the store.
func (f *FileObjectStore) ObjectCount() (int64, error) {
	if err := f.ensureInitialized(); err != nil {
		return 0, err
	}

	var count int64
	err := filepath.Walk(f.objectsPath.String(), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count objects: %w", err)
	}

	return count, nil
}

// IsInitialized reports whether Initialize has been called.
func (f *FileObjectStore) IsInitialized() bool {
	return f.objectsPath.IsValid()
}

// ObjectsPath returns the path to the objects directory.
func (f *FileObjectStore) ObjectsPath() cafpath.ObjectsPath {
	return f.objectsPath
}

// readObject validates the digest, resolves its path, and returns the
// uncompressed serialized bytes.
func (f *FileObjectStore) readObject(op string, digest objects.Digest) ([]byte, error) {
	if err := f.ensureInitialized(); err != nil {
		return nil, err
	}

	filePath, err := f.objectsPath.ObjectFilePath(digest)
	if err != nil {
		return nil, err
	}

	payload, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, notFoundError(op, digest)
		}
		return nil, fmt.Errorf("failed to read object file: %w", err)
	}

	serialized, err := decompressPayload(payload)
	if err != nil {
		return nil, corruptObjectError(op, digest, err)
	}
	return serialized, nil
}

func (f *FileObjectStore) ensureInitialized() error {
	if !f.objectsPath.IsValid() {
		return fmt.Errorf("object store not initialized")
	}
	return nil
}
