package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/gocaf/cmd/ui"
	"github.com/utkarsh5026/gocaf/pkg/objects/tag"
)

func newTagCmd() *cobra.Command {
	var (
		message   string
		tagger    string
		timestamp int64
	)

	cmd := &cobra.Command{
		Use:   "tag [flags] <name> <target-digest>",
		Short: "Create an annotated tag object",
		Long: `Create a tag object naming the target digest and write it to the object
store. The target may be any object kind, including another tag.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			target, err := parseDigestArg(args[1])
			if err != nil {
				return err
			}

			repo, err := findRepository()
			if err != nil {
				return err
			}

			if tagger == "" {
				tagger = repo.Config().User.Name
			}
			if tagger == "" {
				return fmt.Errorf("no tagger: pass --tagger or set user.name in the repository config")
			}

			if !cmd.Flags().Changed("timestamp") {
				timestamp = time.Now().Unix()
			}

			t, err := tag.NewTag(target, name, tagger, timestamp, message)
			if err != nil {
				return err
			}

			digest, err := repo.WriteObject(t)
			if err != nil {
				return err
			}

			fmt.Println(ui.SuccessMessage("Created tag", name, digest.String()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Tag message")
	cmd.Flags().StringVarP(&tagger, "tagger", "t", "", "Tagger (defaults to user.name from config)")
	cmd.Flags().Int64Var(&timestamp, "timestamp", 0, "Tag time as seconds since epoch (defaults to now)")

	return cmd
}
