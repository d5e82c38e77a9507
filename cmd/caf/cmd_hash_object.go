package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/utkarsh5026/gocaf/pkg/objects"
	"github.com/utkarsh5026/gocaf/pkg/objects/blob"
	"github.com/utkarsh5026/gocaf/pkg/repository/cafrepo"
)

func newHashObjectCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "hash-object [flags] <file>...",
		Short: "Compute the digest of files as blob objects",
		Long: `Compute the content digest each file would have as a blob object.
With -w, the blobs are also written to the repository's object store.
Storing the same content twice is a no-op: the store keeps one copy.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var repo *cafrepo.CafRepository
			if write {
				r, err := findRepository()
				if err != nil {
					return err
				}
				repo = r
			}

			digests, err := hashFiles(args, repo)
			if err != nil {
				return err
			}

			for _, digest := range digests {
				fmt.Println(digest)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the blobs to the object store")

	return cmd
}

// hashFiles hashes the given files concurrently, writing them to repo when it
// is non-nil. Results come back in argument order regardless of completion
// order.
func hashFiles(paths []string, repo *cafrepo.CafRepository) ([]objects.Digest, error) {
	digests := make([]objects.Digest, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			b := blob.NewBlob(data)
			if repo != nil {
				digest, err := repo.WriteObject(b)
				if err != nil {
					return fmt.Errorf("failed to store %s: %w", path, err)
				}
				digests[i] = digest
				return nil
			}

			digests[i] = b.Digest()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return digests, nil
}
