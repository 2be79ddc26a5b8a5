package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

// exitError carries a process exit code without an error message.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "srcmerge",
		Short:         "Merge a source tree into a single JSON document",
		Long:          `srcmerge walks a directory, keeps the files whose extensions are allowed, optionally compacts XML, JSON and C# content, and writes everything as one nested JSON document.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose (debug level) logging")
	root.PersistentFlags().StringP("config", "c", "srcmerge.yaml", "Config file path (.yaml, .yml or .toml)")
	root.PersistentFlags().String("log-file", "", "Also write logs to this file (default MergeCode.log in the working directory when verbose)")

	root.AddCommand(newMergeCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newDiffCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
