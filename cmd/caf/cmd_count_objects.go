package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/utkarsh5026/gocaf/cmd/ui"
	"github.com/utkarsh5026/gocaf/pkg/store"
)

func newCountObjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count-objects",
		Short: "Show object store statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := findRepository()
			if err != nil {
				return err
			}

			fileStore, ok := repo.ObjectStore().(*store.FileObjectStore)
			if !ok {
				return fmt.Errorf("repository store does not live on disk")
			}

			count, err := fileStore.ObjectCount()
			if err != nil {
				return err
			}

			diskSize, err := storeDiskSize(fileStore.ObjectsPath().String())
			if err != nil {
				return err
			}

			fmt.Println(ui.Header(" Object Store "))
			fmt.Println()

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Objects", "Disk Size", "Compression")
			table.Append(
				fmt.Sprintf("%d", count),
				formatBytes(diskSize),
				repo.Config().Storage.Compression,
			)
			table.Render()
			return nil
		},
	}

	return cmd
}

// storeDiskSize sums the on-disk size of every object file.
func storeDiskSize(objectsDir string) (int64, error) {
	var total int64
	err := filepath.Walk(objectsDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			total += info.Size()
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to measure object store: %w", err)
	}
	return total, nil
}

// formatBytes renders a byte count with a binary unit suffix.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
