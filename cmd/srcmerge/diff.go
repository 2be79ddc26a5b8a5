package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"srcmerge/internal/compare"
	"srcmerge/internal/tree"
)

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Compare two merged documents file by file",
		Long:  "Compare two merged documents and list added, modified and deleted files. Exits with status 1 when they differ.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := afero.NewOsFs()

			var oldDoc, newDoc *tree.Node
			var g errgroup.Group
			g.Go(func() error {
				var err error
				if oldDoc, err = tree.Load(fs, args[0]); err != nil {
					return fmt.Errorf("failed to load %s: %w", args[0], err)
				}
				return nil
			})
			g.Go(func() error {
				var err error
				if newDoc, err = tree.Load(fs, args[1]); err != nil {
					return fmt.Errorf("failed to load %s: %w", args[1], err)
				}
				return nil
			})
			if err := g.Wait(); err != nil {
				return err
			}

			result := compare.Compare(oldDoc, newDoc)
			fmt.Fprintln(cmd.OutOrStdout(), compare.FormatReport(result))

			if result.HasChanges() {
				return &exitError{code: 1}
			}
			return nil
		},
	}
}
