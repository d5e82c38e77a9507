package cafpath

import (
	"fmt"
	"path/filepath"

	"github.com/utkarsh5026/gocaf/pkg/objects"
)

const (
	// CafDir is the name of the repository metadata directory
	CafDir = ".caf"

	// ObjectsDir is the name of the objects directory inside CafDir
	ObjectsDir = "objects"

	// ConfigFile is the name of the config file inside CafDir
	ConfigFile = "config.toml"
)

// RepositoryPath represents an absolute path to a repository root directory
// Example: "/home/user/myproject"
type RepositoryPath string

// CafPath represents the path to a repository's .caf directory
type CafPath string

// ObjectsPath represents the path to the objects directory
type ObjectsPath string

// NewRepositoryPath creates a RepositoryPath from a string, resolving it
// to an absolute path.
func NewRepositoryPath(path string) (RepositoryPath, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve repository path: %w", err)
	}
	return RepositoryPath(absPath), nil
}

// String returns the path as a string
func (rp RepositoryPath) String() string {
	return string(rp)
}

// IsValid checks if this is a valid absolute path
func (rp RepositoryPath) IsValid() bool {
	return filepath.IsAbs(string(rp))
}

// CafPath returns the path to the .caf directory
func (rp RepositoryPath) CafPath() CafPath {
	return CafPath(filepath.Join(string(rp), CafDir))
}

// String returns the path as a string
func (cp CafPath) String() string {
	return string(cp)
}

// IsValid checks if this is a valid caf path
func (cp CafPath) IsValid() bool {
	return len(cp) > 0
}

// ObjectsPath returns the path to the objects directory
func (cp CafPath) ObjectsPath() ObjectsPath {
	return ObjectsPath(filepath.Join(string(cp), ObjectsDir))
}

// ConfigPath returns the path to the repository config file
func (cp CafPath) ConfigPath() string {
	return filepath.Join(string(cp), ConfigFile)
}

// String returns the path as a string
func (op ObjectsPath) String() string {
	return string(op)
}

// IsValid checks if this is a valid objects path
func (op ObjectsPath) IsValid() bool {
	return len(op) > 0
}

// ObjectFilePath returns the fan-out file path for a digest.
// The first two hex characters become a directory prefix so no single
// directory accumulates every object.
// Example: digest "8aec4e48..." maps to "<objects>/8a/ec4e48..."
func (op ObjectsPath) ObjectFilePath(digest objects.Digest) (string, error) {
	if err := digest.Validate(); err != nil {
		return "", err
	}
	d := digest.String()
	return filepath.Join(string(op), d[:2], d[2:]), nil
}
