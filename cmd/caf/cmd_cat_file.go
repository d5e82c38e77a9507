package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/gocaf/pkg/objects"
	"github.com/utkarsh5026/gocaf/pkg/objects/commit"
	"github.com/utkarsh5026/gocaf/pkg/objects/tag"
	"github.com/utkarsh5026/gocaf/pkg/objects/tree"
)

func newCatFileCmd() *cobra.Command {
	var (
		showKind bool
		showSize bool
		pretty   bool
	)

	cmd := &cobra.Command{
		Use:   "cat-file [flags] <digest>",
		Short: "Show the kind, size, or content of a stored object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !showKind && !showSize && !pretty {
				return fmt.Errorf("one of -t, -s, or -p is required")
			}

			digest, err := parseDigestArg(args[0])
			if err != nil {
				return err
			}

			repo, err := findRepository()
			if err != nil {
				return err
			}

			kind, err := repo.ObjectStore().KindOf(digest)
			if err != nil {
				return err
			}

			if showKind {
				fmt.Println(kind)
				return nil
			}

			obj, err := repo.ReadObject(digest, kind)
			if err != nil {
				return err
			}

			if showSize {
				fmt.Println(obj.Size())
				return nil
			}

			return prettyPrint(obj)
		},
	}

	cmd.Flags().BoolVarP(&showKind, "type", "t", false, "Show the object's kind")
	cmd.Flags().BoolVarP(&showSize, "size", "s", false, "Show the object's content size in bytes")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the object's content")

	return cmd
}

// prettyPrint writes a human-readable rendering of the object to stdout.
// Blob content goes out verbatim; structured objects are printed field by
// field.
func prettyPrint(obj objects.Object) error {
	switch o := obj.(type) {
	case *tree.Tree:
		for _, record := range o.Records() {
			fmt.Printf("%s %s %s\t%s\n",
				record.Mode(), record.Mode().TargetKind(), record.Target(), record.Name())
		}
		return nil
	case *commit.Commit:
		fmt.Printf("tree %s\n", o.TreeDigest())
		for _, parent := range o.Parents() {
			fmt.Printf("parent %s\n", parent)
		}
		fmt.Printf("author %s\n", o.Author())
		fmt.Printf("timestamp %d\n", o.Timestamp())
		fmt.Printf("\n%s\n", o.Message())
		return nil
	case *tag.Tag:
		fmt.Printf("object %s\n", o.Target())
		fmt.Printf("tag %s\n", o.Name())
		fmt.Printf("tagger %s\n", o.Tagger())
		fmt.Printf("timestamp %d\n", o.Timestamp())
		fmt.Printf("\n%s\n", o.Message())
		return nil
	default:
		_, err := os.Stdout.Write(obj.Content())
		return err
	}
}
