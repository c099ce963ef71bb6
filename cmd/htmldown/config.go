package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/htmldown/htmldown"
)

// fileConfig is the YAML shape of a conversion configuration file. Only
// fields present in the file override the defaults.
type fileConfig struct {
	HeadingStyle    string   `yaml:"heading_style"`
	Bullets         string   `yaml:"bullets"`
	ListIndentWidth int      `yaml:"list_indent_width"`
	UseTabs         bool     `yaml:"use_tabs"`
	StrongEmSymbol  string   `yaml:"strong_em_symbol"`
	CodeBlockStyle  string   `yaml:"code_block_style"`
	CodeLanguage    string   `yaml:"code_language"`
	HighlightStyle  string   `yaml:"highlight_style"`
	Wrap            int      `yaml:"wrap"`
	Autolinks       *bool    `yaml:"autolinks"`
	BrInTables      bool     `yaml:"br_in_tables"`
	EscapeMisc      *bool    `yaml:"escape_misc"`
	EscapeAsterisks *bool    `yaml:"escape_asterisks"`
	EscapeUnders    *bool    `yaml:"escape_underscores"`
	EscapeNonASCII  bool     `yaml:"escape_non_ascii"`
	MetadataComment *bool    `yaml:"metadata_comment"`
	StripTags       []string `yaml:"strip_tags"`
	PreserveTags    []string `yaml:"preserve_tags"`
	Preprocess      string   `yaml:"preprocess"`

	HOCR struct {
		MinConfidence     float64 `yaml:"min_confidence"`
		ColumnThreshold   float64 `yaml:"column_threshold"`
		RowThresholdRatio float64 `yaml:"row_threshold_ratio"`
	} `yaml:"hocr"`
}

// loadConfigFile applies a YAML configuration file on top of opts.
func loadConfigFile(path string, opts *htmldown.ConversionOptions) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if fc.HeadingStyle != "" {
		style, err := parseHeadingStyle(fc.HeadingStyle)
		if err != nil {
			return err
		}
		opts.HeadingStyle = style
	}
	if fc.Bullets != "" {
		opts.Bullets = fc.Bullets
	}
	if fc.ListIndentWidth > 0 {
		opts.ListIndentWidth = fc.ListIndentWidth
	}
	if fc.UseTabs {
		opts.ListIndentType = htmldown.ListIndentTabs
	}
	if fc.StrongEmSymbol != "" {
		opts.StrongEmSymbol = rune(fc.StrongEmSymbol[0])
	}
	if fc.CodeBlockStyle != "" {
		switch fc.CodeBlockStyle {
		case "backtick":
			opts.CodeBlockStyle = htmldown.CodeBlockBacktick
		case "tilde":
			opts.CodeBlockStyle = htmldown.CodeBlockTilde
		case "indented":
			opts.CodeBlockStyle = htmldown.CodeBlockIndented
		default:
			return fmt.Errorf("unknown code block style %q (want backtick, tilde or indented)", fc.CodeBlockStyle)
		}
	}
	if fc.CodeLanguage != "" {
		opts.CodeLanguage = fc.CodeLanguage
	}
	if fc.HighlightStyle != "" {
		switch fc.HighlightStyle {
		case "double-equal":
			opts.HighlightStyle = htmldown.HighlightDoubleEqual
		case "html":
			opts.HighlightStyle = htmldown.HighlightHTML
		case "bold":
			opts.HighlightStyle = htmldown.HighlightBold
		case "none":
			opts.HighlightStyle = htmldown.HighlightNone
		default:
			return fmt.Errorf("unknown highlight style %q (want double-equal, html, bold or none)", fc.HighlightStyle)
		}
	}
	if fc.Wrap > 0 {
		opts.Wrap = true
		opts.WrapWidth = fc.Wrap
	}
	if fc.Autolinks != nil {
		opts.Autolinks = *fc.Autolinks
	}
	if fc.BrInTables {
		opts.BrInTables = true
	}
	if fc.EscapeMisc != nil {
		opts.EscapeMisc = *fc.EscapeMisc
	}
	if fc.EscapeAsterisks != nil {
		opts.EscapeAsterisks = *fc.EscapeAsterisks
	}
	if fc.EscapeUnders != nil {
		opts.EscapeUnderscores = *fc.EscapeUnders
	}
	if fc.EscapeNonASCII {
		opts.EscapeNonASCII = true
	}
	if fc.MetadataComment != nil {
		opts.ExtractMetadata = *fc.MetadataComment
	}
	if len(fc.StripTags) > 0 {
		opts.StripTags = fc.StripTags
	}
	if len(fc.PreserveTags) > 0 {
		opts.PreserveTags = fc.PreserveTags
	}
	if fc.Preprocess != "" {
		preset, err := parsePreset(fc.Preprocess)
		if err != nil {
			return err
		}
		opts.Preprocessing.Enabled = true
		opts.Preprocessing.Preset = preset
	}
	if fc.HOCR.MinConfidence > 0 {
		opts.HOCR.MinConfidence = fc.HOCR.MinConfidence
	}
	if fc.HOCR.ColumnThreshold > 0 {
		opts.HOCR.ColumnThreshold = fc.HOCR.ColumnThreshold
	}
	if fc.HOCR.RowThresholdRatio > 0 {
		opts.HOCR.RowThresholdRatio = fc.HOCR.RowThresholdRatio
	}
	return nil
}
