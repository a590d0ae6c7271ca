package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	flags "github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"

	"github.com/alokyd/jsondiff"
)

// DefaultConfigFile is read from the working directory when --config isn't
// given. A missing default file isn't an error
const DefaultConfigFile = ".jsondiff.yaml"

// settings are the fully resolved knobs for a run
type settings struct {
	Mode      string `yaml:"mode"`
	MaxLines  int    `yaml:"maxLines"`
	Threshold int    `yaml:"threshold"`
	BasePath  string `yaml:"basePath"`
	Format    string `yaml:"format"`
	Filter    string `yaml:"filter"`
	Color     string `yaml:"color"`
	Stats     bool   `yaml:"stats"`
}

func defaultSettings() settings {
	return settings{
		Mode:      "tree",
		Threshold: jsondiff.LargeFileThreshold,
		Format:    "pretty",
		Color:     "auto",
	}
}

// options are the command line flags. Anything set here overrides the
// config file
type options struct {
	Mode      string `long:"mode" choice:"lines" choice:"tree" choice:"both" description:"which diffs to compute (default: tree)"`
	MaxLines  int    `long:"max-lines" value-name:"N" description:"only compare the first N lines of each side, 0 for no limit"`
	Threshold int    `long:"threshold" value-name:"N" description:"compare lines by position once either side has more than N lines (default: 1000)"`
	BasePath  string `long:"base-path" value-name:"PATH" description:"prefix for every path in tree diffs"`
	Format    string `long:"format" choice:"pretty" choice:"json" choice:"patch" choice:"yaml" description:"output format (default: pretty)"`
	Filter    string `long:"filter" value-name:"EXPR" description:"only report tree differences matching an expression, eg: 'change == \"added\"'"`
	Color     string `long:"color" choice:"auto" choice:"always" choice:"never" description:"colorize pretty output (default: auto)"`
	Config    string `long:"config" value-name:"FILE" description:"read settings from a yaml file (default: .jsondiff.yaml if present)"`
	Stats     bool   `long:"stats" description:"print a summary of each diff"`
	Verbose   bool   `short:"v" long:"verbose" description:"log progress to stderr"`
}

// loadSettings reads the config file at path over the defaults. When
// required is false a missing file leaves the defaults untouched
func loadSettings(path string, required bool) (settings, error) {
	s := defaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return s, s.validate()
}

// apply copies every flag the user actually passed onto s
func (s *settings) apply(p *flags.Parser, opts *options) {
	set := func(long string) bool {
		opt := p.FindOptionByLongName(long)
		return opt != nil && opt.IsSet()
	}
	if set("mode") {
		s.Mode = opts.Mode
	}
	if set("max-lines") {
		s.MaxLines = opts.MaxLines
	}
	if set("threshold") {
		s.Threshold = opts.Threshold
	}
	if set("base-path") {
		s.BasePath = opts.BasePath
	}
	if set("format") {
		s.Format = opts.Format
	}
	if set("filter") {
		s.Filter = opts.Filter
	}
	if set("color") {
		s.Color = opts.Color
	}
	if set("stats") {
		s.Stats = opts.Stats
	}
}

func (s settings) validate() error {
	switch s.Mode {
	case "lines", "tree", "both":
	default:
		return fmt.Errorf("invalid mode %q", s.Mode)
	}
	switch s.Format {
	case "pretty", "json", "yaml":
	case "patch":
		if s.Mode != "tree" {
			return fmt.Errorf("patch output requires tree mode")
		}
	default:
		return fmt.Errorf("invalid format %q", s.Format)
	}
	switch s.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color setting %q", s.Color)
	}
	if s.Threshold < 0 {
		return fmt.Errorf("threshold can't be negative")
	}
	return nil
}

// diffOptions converts settings into library options
func (s settings) diffOptions() []jsondiff.Option {
	return []jsondiff.Option{
		jsondiff.OptionMaxLines(s.MaxLines),
		jsondiff.OptionLargeFileThreshold(s.Threshold),
		jsondiff.OptionBasePath(s.BasePath),
	}
}
