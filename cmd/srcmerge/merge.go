package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"srcmerge/internal/config"
	"srcmerge/internal/hash"
	"srcmerge/internal/tree"
)

type mergeOptions struct {
	filters     filterFlags
	output      string
	outputExt   string
	compactXML  bool
	compactJSON bool
	prettyJSON  bool
}

func newMergeCmd() *cobra.Command {
	opts := &mergeOptions{}

	cmd := &cobra.Command{
		Use:   "merge [relative_path]",
		Short: "Merge source files below a directory into one file",
		Long: `Merge source files below relative_path (default "Source", resolved against the
working directory) into a single JSON document. Without --output the file is
written to the working directory as <cwd name>.<relative path><output-ext>.`,
		Example: "  srcmerge merge Source --compact-xml --compact-json\n  srcmerge merge / -o merged --output-ext .json --pretty-json",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rel := "Source"
			if len(args) == 1 {
				rel = args[0]
			}
			return runMerge(cmd, opts, rel)
		},
	}

	flags := cmd.Flags()
	opts.filters.register(flags)
	flags.StringVarP(&opts.output, "output", "o", "", "Output file path (its extension is replaced by --output-ext)")
	flags.StringVar(&opts.outputExt, "output-ext", config.DefaultOutputExt, "Extension of the output file")
	flags.BoolVar(&opts.compactXML, "compact-xml", false, "Compact files matched by --xml-exts")
	flags.BoolVar(&opts.compactJSON, "compact-json", false, "Compact files matched by --json-exts")
	flags.BoolVar(&opts.prettyJSON, "pretty-json", false, "Indent the output document (default: compact)")

	return cmd
}

func runMerge(cmd *cobra.Command, opts *mergeOptions, rel string) error {
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
	flags := cmd.Flags()
	opts.filters.apply(flags, cfg)
	if flags.Changed("output") {
		cfg.OutputFile = opts.output
	}
	if flags.Changed("output-ext") {
		cfg.OutputExt = opts.outputExt
	}
	if flags.Changed("compact-xml") {
		cfg.CompactXML = opts.compactXML
	}
	if flags.Changed("compact-json") {
		cfg.CompactJSON = opts.compactJSON
	}
	if flags.Changed("pretty-json") {
		cfg.PrettyJSON = opts.prettyJSON
	}

	logger.Info("Working directory", "path", cwd)

	root, err := config.ResolveRoot(cwd, rel)
	if err != nil {
		return err
	}
	if filepath.IsAbs(rel) && rel != "/" {
		logger.Warn("Absolute path provided, processing it directly", "path", root)
	}

	outputPath := config.OutputPath(cwd, rel, cfg.OutputFile, cfg.OutputExt)
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	logger.Info("Target directory", "path", root)
	logger.Info("Output file", "path", outputPath)
	logger.Info("XML compaction", "enabled", cfg.CompactXML, "exts", cfg.XMLExts)
	logger.Info("JSON compaction", "enabled", cfg.CompactJSON, "exts", cfg.JSONExts)
	logger.Info("C# processing", "exts", cfg.CSharpExts)
	logger.Debug("Excluded directories", "names", cfg.ExcludeDirs)
	logger.Debug("Allowed extensions", "exts", cfg.AllowedExts)
	logger.Debug("Skip patterns", "patterns", cfg.Skip)
	logger.Info("Output indented", "enabled", cfg.PrettyJSON)

	fs := afero.NewOsFs()
	builder := tree.NewBuilder(fs, policyFor(cfg), classifierFor(cfg), logger)

	doc, err := builder.Build(root)
	if err != nil {
		return err
	}

	if doc == nil {
		logger.Warn("No allowed files or subdirectories found, output will be empty", "path", root)
	} else {
		logger.Info("Writing merged document", "path", outputPath)
	}

	if err := tree.Save(fs, doc, outputPath, cfg.PrettyJSON); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	entries := make([]hash.Entry, 0, builder.Stats.Files)
	for _, f := range doc.Files() {
		entries = append(entries, hash.Entry{Path: f.Path, Content: f.Content})
	}
	fingerprint, err := hash.Fingerprint(entries)
	if err != nil {
		logger.Warn("Could not compute fingerprint", "err", err)
	}

	logger.Info("Merge complete", "output", outputPath, "fingerprint", fingerprint, "summary", builder.Stats.String())
	return nil
}
