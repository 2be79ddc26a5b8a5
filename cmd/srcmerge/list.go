package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"srcmerge/internal/config"
	"srcmerge/internal/walker"
)

func newListCmd() *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "list [relative_path]",
		Short: "Print the folders and files a merge would include",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rel := "."
			if len(args) == 1 {
				rel = args[0]
			}

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			logger, closeLog, err := newRunLogger(cmd, cwd)
			if err != nil {
				return err
			}
			defer closeLog()

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			filters.apply(cmd.Flags(), cfg)

			root, err := config.ResolveRoot(cwd, rel)
			if err != nil {
				return err
			}

			result, err := walker.Walk(afero.NewOsFs(), root, policyFor(cfg))
			if err != nil {
				return fmt.Errorf("failed to walk directory: %w", err)
			}
			for _, walkErr := range result.Errors {
				logger.Warn("Skipped unreadable entry", "err", walkErr)
			}

			if err := walker.Print(cmd.OutOrStdout(), result); err != nil {
				return err
			}
			logger.Info("Listing complete", "files", result.Files, "errors", len(result.Errors))
			return nil
		},
	}

	filters.register(cmd.Flags())
	return cmd
}
