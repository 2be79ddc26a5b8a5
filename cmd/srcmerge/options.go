package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"srcmerge/internal/config"
	"srcmerge/internal/logging"
	"srcmerge/internal/normalize"
	"srcmerge/internal/tree"
)

const defaultLogFile = "MergeCode.log"

// newRunLogger builds the logger for one command run from the persistent
// flags. The caller must invoke the returned close function.
func newRunLogger(cmd *cobra.Command, cwd string) (*log.Logger, func() error, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logFile, _ := cmd.Flags().GetString("log-file")
	if logFile == "" && verbose {
		logFile = filepath.Join(cwd, defaultLogFile)
	}
	return logging.New(os.Stderr, logging.Options{Verbose: verbose, LogFile: logFile})
}

// filterFlags are the inclusion and normalization flags shared by merge and
// list. Only flags the user actually set override the config file.
type filterFlags struct {
	excludeDirs string
	allowedExts string
	xmlExts     string
	jsonExts    string
	csharpExts  string
	skip        []string
}

func (f *filterFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.excludeDirs, "exclude-dirs", config.DefaultExcludeDirs, "Comma-separated directory names to exclude (case-insensitive)")
	fs.StringVar(&f.allowedExts, "allowed-exts", config.DefaultAllowedExts, "Comma-separated file extensions to include (with leading dot)")
	fs.StringVar(&f.xmlExts, "xml-exts", config.DefaultXMLExts, "Comma-separated extensions treated as XML")
	fs.StringVar(&f.jsonExts, "json-exts", config.DefaultJSONExts, "Comma-separated extensions treated as JSON")
	fs.StringVar(&f.csharpExts, "csharp-exts", config.DefaultCSharpExts, "Comma-separated extensions processed as C#")
	fs.StringSliceVar(&f.skip, "skip", nil, "Glob patterns of files to leave out (doublestar syntax, relative to the root)")
}

func (f *filterFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("exclude-dirs") {
		cfg.ExcludeDirs = config.ParseNames(f.excludeDirs)
	}
	if fs.Changed("allowed-exts") {
		cfg.AllowedExts = config.ParseExtensions(f.allowedExts)
	}
	if fs.Changed("xml-exts") {
		cfg.XMLExts = config.ParseExtensions(f.xmlExts)
	}
	if fs.Changed("json-exts") {
		cfg.JSONExts = config.ParseExtensions(f.jsonExts)
	}
	if fs.Changed("csharp-exts") {
		cfg.CSharpExts = config.ParseExtensions(f.csharpExts)
	}
	if fs.Changed("skip") {
		cfg.Skip = f.skip
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func policyFor(cfg *config.Config) *tree.Policy {
	return &tree.Policy{
		ExcludeDirs: config.Set(cfg.ExcludeDirs),
		AllowedExts: config.Set(cfg.AllowedExts),
		Skip:        cfg.Skip,
	}
}

func classifierFor(cfg *config.Config) *normalize.Classifier {
	return &normalize.Classifier{
		XMLExts:     config.Set(cfg.XMLExts),
		JSONExts:    config.Set(cfg.JSONExts),
		CSharpExts:  config.Set(cfg.CSharpExts),
		CompactXML:  cfg.CompactXML,
		CompactJSON: cfg.CompactJSON,
	}
}
