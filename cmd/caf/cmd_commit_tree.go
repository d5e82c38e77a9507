package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/gocaf/pkg/objects/commit"
)

func newCommitTreeCmd() *cobra.Command {
	var (
		parents   []string
		message   string
		author    string
		timestamp int64
	)

	cmd := &cobra.Command{
		Use:   "commit-tree [flags] <tree-digest>",
		Short: "Create a commit object pointing at a tree",
		Long: `Create a commit object referencing the given tree and write it to the
object store. Parents are recorded in the order the -p flags appear;
the same history with reordered parents is a different commit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			treeDigest, err := parseDigestArg(args[0])
			if err != nil {
				return err
			}

			repo, err := findRepository()
			if err != nil {
				return err
			}

			if author == "" {
				author = repo.Config().User.Name
			}
			if author == "" {
				return fmt.Errorf("no author: pass --author or set user.name in the repository config")
			}

			if timestamp < 0 {
				return fmt.Errorf("timestamp cannot be negative")
			}
			if !cmd.Flags().Changed("timestamp") {
				timestamp = time.Now().Unix()
			}

			builder := commit.NewCommitBuilder().
				Tree(treeDigest).
				Author(author).
				Timestamp(timestamp).
				Message(message)

			for _, p := range parents {
				parent, err := parseDigestArg(p)
				if err != nil {
					return err
				}
				builder.Parent(parent)
			}

			c, err := builder.Build()
			if err != nil {
				return err
			}

			digest, err := repo.WriteObject(c)
			if err != nil {
				return err
			}

			fmt.Println(digest)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&parents, "parent", "p", nil, "Parent commit digest (repeatable, order preserved)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")
	cmd.Flags().StringVarP(&author, "author", "a", "", "Author (defaults to user.name from config)")
	cmd.Flags().Int64Var(&timestamp, "timestamp", 0, "Commit time as seconds since epoch (defaults to now)")

	return cmd
}
