package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var ErrParentReference = errors.New("parent path references ('..') are not allowed")

type Config struct {
	ExcludeDirs []string `yaml:"exclude_dirs" toml:"exclude_dirs"`
	AllowedExts []string `yaml:"allowed_exts" toml:"allowed_exts"`
	XMLExts     []string `yaml:"xml_exts" toml:"xml_exts"`
	JSONExts    []string `yaml:"json_exts" toml:"json_exts"`
	CSharpExts  []string `yaml:"csharp_exts" toml:"csharp_exts"`
	Skip        []string `yaml:"skip" toml:"skip"`
	CompactXML  bool     `yaml:"compact_xml" toml:"compact_xml"`
	CompactJSON bool     `yaml:"compact_json" toml:"compact_json"`
	PrettyJSON  bool     `yaml:"pretty_json" toml:"pretty_json"`
	OutputFile  string   `yaml:"output_file" toml:"output_file"`
	OutputExt   string   `yaml:"output_ext" toml:"output_ext"`
}

const (
	DefaultExcludeDirs = ".git,.vs,.cursor,.github,.vscode,migrations,obj,bin,pkg,lib,node_modules,properties,testresults,coveragereports,uploads"
	DefaultAllowedExts = ".md,.slnx,.sln,.csproj,.cs,.razor,.json,.xml,.vbproj,.fsproj,.shproj,.proj,.props,.targets,.nuspec,.config,.settings,.resx,.runsettings,.ruleset,.pubxml,.xdt,.vcxproj.filter,.py,.cmd,.sh"
	DefaultXMLExts     = ".xml,.slnx,.csproj,.vbproj,.fsproj,.shproj,.proj,.props,.targets,.nuspec,.config,.settings,.resx,.runsettings,.ruleset,.pubxml,.xdt,.vcxproj.filter"
	DefaultJSONExts    = ".json"
	DefaultCSharpExts  = ".cs"
	DefaultOutputExt   = ".src"
)

func DefaultConfig() *Config {
	return &Config{
		ExcludeDirs: ParseNames(DefaultExcludeDirs),
		AllowedExts: ParseExtensions(DefaultAllowedExts),
		XMLExts:     ParseExtensions(DefaultXMLExts),
		JSONExts:    ParseExtensions(DefaultJSONExts),
		CSharpExts:  ParseExtensions(DefaultCSharpExts),
		Skip:        []string{},
		OutputExt:   DefaultOutputExt,
	}
}

// LoadConfig reads a YAML or TOML file (chosen by extension) on top of the
// defaults. Keys absent from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	c.ExcludeDirs = lowerAll(c.ExcludeDirs, false)
	c.AllowedExts = lowerAll(c.AllowedExts, true)
	c.XMLExts = lowerAll(c.XMLExts, true)
	c.JSONExts = lowerAll(c.JSONExts, true)
	c.CSharpExts = lowerAll(c.CSharpExts, true)
	if c.Skip == nil {
		c.Skip = []string{}
	}
	if c.OutputExt == "" {
		c.OutputExt = DefaultOutputExt
	}
}

// ParseExtensions splits a comma-separated list into lowercase extensions.
// Entries without a leading dot are dropped.
func ParseExtensions(list string) []string {
	return lowerAll(strings.Split(list, ","), true)
}

// ParseNames splits a comma-separated list of directory names.
func ParseNames(list string) []string {
	return lowerAll(strings.Split(list, ","), false)
}

func lowerAll(items []string, requireDot bool) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))
		if item == "" {
			continue
		}
		if requireDot && !strings.HasPrefix(item, ".") {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Set converts a list into a membership set.
func Set(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
