package main

import (
	"fmt"
	"os"

	"github.com/utkarsh5026/gocaf/pkg/objects"
	"github.com/utkarsh5026/gocaf/pkg/repository/cafpath"
	"github.com/utkarsh5026/gocaf/pkg/repository/cafrepo"
)

// findRepository locates the nearest enclosing repository, starting from the
// current directory.
func findRepository() (*cafrepo.CafRepository, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	startPath, err := cafpath.NewRepositoryPath(cwd)
	if err != nil {
		return nil, fmt.Errorf("invalid repository path: %w", err)
	}

	repo, err := cafrepo.FindRepository(startPath)
	if err != nil {
		return nil, err
	}
	if repo == nil {
		return nil, fmt.Errorf("not a caf repository (or any parent up to mount point)")
	}
	return repo, nil
}

// parseDigestArg converts a command argument into a validated digest.
func parseDigestArg(arg string) (objects.Digest, error) {
	digest, err := objects.ParseDigest(arg)
	if err != nil {
		return "", fmt.Errorf("invalid digest %q: %w", arg, err)
	}
	return digest, nil
}
