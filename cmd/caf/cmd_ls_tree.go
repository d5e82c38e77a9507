package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/utkarsh5026/gocaf/cmd/ui"
	"github.com/utkarsh5026/gocaf/pkg/objects"
	"github.com/utkarsh5026/gocaf/pkg/objects/tree"
)

func newLsTreeCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "ls-tree [flags] <digest>",
		Short: "List the records of a tree object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digest, err := parseDigestArg(args[0])
			if err != nil {
				return err
			}

			repo, err := findRepository()
			if err != nil {
				return err
			}

			obj, err := repo.ReadObject(digest, objects.TreeKind)
			if err != nil {
				return err
			}
			t := obj.(*tree.Tree)

			if plain {
				for _, record := range t.Records() {
					fmt.Printf("%s %s %s\t%s\n",
						record.Mode(), record.Mode().TargetKind(), record.Target(), record.Name())
				}
				return nil
			}

			displayTreeAsTable(t)
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print raw records without table formatting")

	return cmd
}

// displayTreeAsTable shows tree records in a table, one row per record.
func displayTreeAsTable(t *tree.Tree) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Mode", "Kind", "Digest", "Name")

	for _, record := range t.Records() {
		kind := record.Mode().TargetKind()
		table.Append(
			record.Mode().String(),
			ui.KindStyle(kind)(kind.String()),
			ui.FormatDigest(kind, record.Target()),
			record.Name(),
		)
	}

	table.Render()
}
