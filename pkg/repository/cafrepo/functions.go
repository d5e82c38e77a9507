package cafrepo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/utkarsh5026/gocaf/pkg/common/logger"
	"github.com/utkarsh5026/gocaf/pkg/config"
	"github.com/utkarsh5026/gocaf/pkg/repository/cafpath"
)

// FindRepository searches for a repository by traversing up the directory
// tree from the given start path, returning the nearest enclosing
// repository. Returns (nil, nil) when no repository is found.
func FindRepository(startPath cafpath.RepositoryPath) (*CafRepository, error) {
	currentPath := startPath.String()

	for {
		repoPath, err := cafpath.NewRepositoryPath(currentPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create repository path: %w", err)
		}

		exists, err := RepositoryExists(repoPath)
		if err != nil {
			return nil, fmt.Errorf("failed to check repository existence: %w", err)
		}

		if exists {
			return Open(repoPath)
		}

		parentPath := filepath.Dir(currentPath)

		if parentPath == currentPath {
			return nil, nil
		}

		currentPath = parentPath
	}
}

// RepositoryExists checks whether a repository exists at the specified path.
// A repository is considered to exist if there is a .caf directory at the
// given location.
func RepositoryExists(path cafpath.RepositoryPath) (bool, error) {
	cafDir := path.CafPath()
	info, err := os.Stat(cafDir.String())

	if os.IsNotExist(err) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to check %s directory: %w", cafpath.CafDir, err)
	}

	return info.IsDir(), nil
}

// Open opens an existing repository at the specified path, loading its
// configuration and attaching the object store.
func Open(path cafpath.RepositoryPath) (*CafRepository, error) {
	exists, err := RepositoryExists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to check repository existence: %w", err)
	}

	if !exists {
		return nil, fmt.Errorf("not a caf repository: %s", path)
	}

	repo := NewCafRepository()
	repo.rootDir = path
	repo.cafDir = path.CafPath()

	cfg, err := config.Load(repo.cafDir.ConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load repository config: %w", err)
	}
	repo.cfg = cfg

	if err := repo.openStore(); err != nil {
		return nil, err
	}

	repo.initialized = true
	logger.Debug("opened repository",
		"root", path.String(),
		"compression", string(cfg.Compression()))
	return repo, nil
}

// InitializeRepository is a convenience function to initialize a new
// repository at the given path.
func InitializeRepository(path string) (*CafRepository, error) {
	repoPath, err := cafpath.NewRepositoryPath(path)
	if err != nil {
		return nil, err
	}

	repo := NewCafRepository()
	if err := repo.Initialize(repoPath); err != nil {
		return nil, err
	}

	return repo, nil
}
