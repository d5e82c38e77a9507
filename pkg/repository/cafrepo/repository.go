package cafrepo

import (
	"github.com/utkarsh5026/gocaf/pkg/config"
	"github.com/utkarsh5026/gocaf/pkg/objects"
	"github.com/utkarsh5026/gocaf/pkg/repository/cafpath"
	"github.com/utkarsh5026/gocaf/pkg/store"
)

// Repository defines the interface for content-addressable repository
// operations. It provides access to the repository's root directory,
// metadata directory, and object storage.
type Repository interface {
	// Initialize creates a new repository at the given path
	Initialize(path cafpath.RepositoryPath) error

	// RootDirectory returns the path to the repository's root directory
	RootDirectory() cafpath.RepositoryPath

	// CafDirectory returns the path to the .caf metadata directory
	CafDirectory() cafpath.CafPath

	// ObjectStore returns the object store for this repository
	ObjectStore() store.ObjectStore

	// ReadObject reads an object of the expected kind by its digest
	ReadObject(digest objects.Digest, kind objects.ObjectKind) (objects.Object, error)

	// WriteObject writes an object to the repository
	WriteObject(obj objects.Object) (objects.Digest, error)

	// Config returns the repository configuration
	Config() *config.Config

	// Exists checks if a repository exists at the root directory
	Exists() (bool, error)
}
