package cafrepo

import (
	"fmt"
	"os"

	"github.com/utkarsh5026/gocaf/pkg/common/logger"
	"github.com/utkarsh5026/gocaf/pkg/config"
	"github.com/utkarsh5026/gocaf/pkg/objects"
	"github.com/utkarsh5026/gocaf/pkg/repository/cafpath"
	"github.com/utkarsh5026/gocaf/pkg/store"
)

// CafRepository is the on-disk repository implementation. It manages the
// repository layout and provides access to objects and configuration.
//
// A repository has the following structure:
// ┌─ <root-directory>/
// │ ├─ .caf/            ← metadata directory
// │ │ ├─ objects/       ← object storage (blobs, trees, commits, tags)
// │ │ │ ├─ 8a/          ← fan-out subdirectories (first 2 chars of digest)
// │ │ │ │ └─ ec4e48...  ← object files (remaining 62 chars of digest)
// │ │ │ └─ ...
// │ │ └─ config.toml    ← repository configuration
// │ ├─ file1.txt        ← user files, never touched by the repository
// │ └─ ...
type CafRepository struct {
	rootDir     cafpath.RepositoryPath
	cafDir      cafpath.CafPath
	objectStore *store.FileObjectStore
	cfg         *config.Config
	initialized bool
}

// NewCafRepository creates a new CafRepository instance with default
// configuration. Call Initialize or use Open/Find to make it usable.
func NewCafRepository() *CafRepository {
	return &CafRepository{
		cfg:         config.Default(),
		initialized: false,
	}
}

// Initialize creates a new repository at the given path.
//
// Directory structure created:
// - .caf/
// - .caf/objects/
//
// Files created:
// - .caf/config.toml (repository configuration)
func (cr *CafRepository) Initialize(path cafpath.RepositoryPath) error {
	exists, err := RepositoryExists(path)
	if err != nil {
		return fmt.Errorf("failed to check if repository exists: %w", err)
	}
	if exists {
		return fmt.Errorf("already a caf repository: %s", path)
	}

	cr.rootDir = path
	cr.cafDir = path.CafPath()

	if err := os.MkdirAll(cr.cafDir.String(), 0755); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", cafpath.CafDir, err)
	}

	if err := cr.openStore(); err != nil {
		return err
	}

	if err := cr.cfg.Save(cr.cafDir.ConfigPath()); err != nil {
		return fmt.Errorf("failed to write repository config: %w", err)
	}

	cr.initialized = true
	logger.Debug("initialized repository", "caf_dir", cr.cafDir.String())
	return nil
}

// RootDirectory returns the path to the repository's root directory
func (cr *CafRepository) RootDirectory() cafpath.RepositoryPath {
	if !cr.initialized {
		panic("repository not initialized")
	}
	return cr.rootDir
}

// CafDirectory returns the path to the .caf metadata directory
func (cr *CafRepository) CafDirectory() cafpath.CafPath {
	if !cr.initialized {
		panic("repository not initialized")
	}
	return cr.cafDir
}

// ObjectStore returns the object store for this repository
func (cr *CafRepository) ObjectStore() store.ObjectStore {
	return cr.objectStore
}

// Config returns the repository configuration
func (cr *CafRepository) Config() *config.Config {
	return cr.cfg
}

// ReadObject reads an object of the expected kind by its digest
func (cr *CafRepository) ReadObject(digest objects.Digest, kind objects.ObjectKind) (objects.Object, error) {
	if !cr.initialized {
		return nil, fmt.Errorf("repository not initialized")
	}
	return cr.objectStore.Get(digest, kind)
}

// WriteObject writes an object to the repository and returns its digest
func (cr *CafRepository) WriteObject(obj objects.Object) (objects.Digest, error) {
	if !cr.initialized {
		return "", fmt.Errorf("repository not initialized")
	}
	return cr.objectStore.Put(obj)
}

// Exists checks if a repository exists at the root directory
func (cr *CafRepository) Exists() (bool, error) {
	if !cr.initialized {
		return false, fmt.Errorf("repository not initialized")
	}
	return RepositoryExists(cr.rootDir)
}

// IsInitialized returns whether the repository has been initialized
func (cr *CafRepository) IsInitialized() bool {
	return cr.initialized
}

// openStore builds the file store from the current config and points it at
// the repository root.
func (cr *CafRepository) openStore() error {
	cr.objectStore = store.NewFileObjectStore(
		store.WithCompression(cr.cfg.Compression()),
	)
	if err := cr.objectStore.Initialize(cr.rootDir); err != nil {
		return fmt.Errorf("failed to initialize object store: %w", err)
	}
	return nil
}
