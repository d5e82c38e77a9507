package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/utkarsh5026/gocaf/cmd/ui"
	"github.com/utkarsh5026/gocaf/pkg/repository/cafpath"
	"github.com/utkarsh5026/gocaf/pkg/repository/cafrepo"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Initialize a new caf repository",
		Long: `Initialize a new caf repository in the current directory or specified path.
This creates a .caf directory with the object store and a default config.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			repoPath, err := cafpath.NewRepositoryPath(path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			repo := cafrepo.NewCafRepository()
			if err := repo.Initialize(repoPath); err != nil {
				return fmt.Errorf("failed to initialize repository: %w", err)
			}

			fmt.Println(ui.SuccessMessage(
				"Initialized empty caf repository in",
				repo.CafDirectory().String(),
			))
			return nil
		},
	}

	return cmd
}
