// Package main provides the command-line interface for htmldown.
// It converts HTML files or standard input to Markdown, optionally writing
// a metadata JSON sidecar and extracting embedded images to a directory.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/htmldown/htmldown"
)

func main() {
	app := &cli.App{
		Name:      "htmldown",
		Usage:     "convert HTML documents to Markdown",
		Version:   htmldown.Version,
		ArgsUsage: "[FILE...]",
		Description: "Converts the given HTML files (or standard input when no file or\n" +
			"'-' is given) to Markdown. Conversion behavior can be set through\n" +
			"flags or a YAML configuration file; flags win over the file.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "load conversion options from YAML `FILE`",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write Markdown to `FILE` (default: stdout)",
			},
			&cli.StringFlag{
				Name:  "output-dir",
				Usage: "write one .md file per input into `DIR`",
			},
			&cli.StringFlag{
				Name:  "heading-style",
				Usage: "heading style: atx, atx-closed or underlined",
			},
			&cli.StringFlag{
				Name:  "bullets",
				Usage: "bullet characters cycled by list depth, e.g. \"*+-\"",
			},
			&cli.IntFlag{
				Name:  "wrap",
				Usage: "wrap paragraphs at `WIDTH` columns",
			},
			&cli.BoolFlag{
				Name:  "inline",
				Usage: "render inline content only, without block structure",
			},
			&cli.BoolFlag{
				Name:  "strip-newlines",
				Usage: "replace source newlines with spaces before parsing",
			},
			&cli.BoolFlag{
				Name:  "no-escape",
				Usage: "do not escape Markdown-significant characters",
			},
			&cli.BoolFlag{
				Name:  "no-metadata-comment",
				Usage: "omit the metadata HTML comment from the output",
			},
			&cli.StringFlag{
				Name:  "metadata-json",
				Usage: "write collected metadata as JSON to `FILE` ('-' for stdout)",
			},
			&cli.StringFlag{
				Name:  "extract-images",
				Usage: "write images embedded in the document into `DIR`",
			},
			&cli.StringFlag{
				Name:  "preprocess",
				Usage: "clean non-content chrome first: minimal, standard or aggressive",
			},
			&cli.Float64Flag{
				Name:  "min-confidence",
				Usage: "drop OCR words below this confidence in hOCR documents",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "htmldown: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	opts, err := buildOptions(c)
	if err != nil {
		return err
	}
	conv := htmldown.New(htmldown.WithOptions(opts))

	inputs := c.Args().Slice()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	if c.String("output") != "" && len(inputs) > 1 {
		return fmt.Errorf("--output accepts a single input; use --output-dir for multiple files")
	}

	for _, path := range inputs {
		if err := convertOne(c, conv, path); err != nil {
			return fmt.Errorf("%s: %w", inputName(path), err)
		}
	}
	return nil
}

func inputName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}

func convertOne(c *cli.Context, conv htmldown.Converter, path string) error {
	var input []byte
	var err error
	if path == "-" {
		input, err = io.ReadAll(os.Stdin)
	} else {
		input, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}

	markdown, err := convert(c, conv, string(input))
	if err != nil {
		return err
	}

	if imgDir := c.String("extract-images"); imgDir != "" {
		if err := writeImages(conv, string(input), imgDir); err != nil {
			return err
		}
	}

	out := c.String("output")
	if dir := c.String("output-dir"); dir != "" && path != "-" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		base := filepath.Base(path)
		out = filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+".md")
	}
	if out == "" {
		_, err := io.WriteString(os.Stdout, markdown)
		return err
	}
	return os.WriteFile(out, []byte(markdown), 0o644)
}

// convert runs the conversion, producing the metadata sidecar when asked.
func convert(c *cli.Context, conv htmldown.Converter, input string) (string, error) {
	sidecar := c.String("metadata-json")
	if sidecar == "" {
		return conv.ConvertString(input)
	}

	result, err := conv.ConvertWithMetadata(input)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(result.Metadata, "", "  ")
	if err != nil {
		return "", err
	}
	if sidecar == "-" {
		fmt.Println(string(data))
	} else if err := os.WriteFile(sidecar, data, 0o644); err != nil {
		return "", err
	}
	return result.Markdown, nil
}

func writeImages(conv htmldown.Converter, input, dir string) error {
	extraction, err := conv.ExtractInlineImages(input)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, img := range extraction.Images {
		name := filepath.Join(dir, img.Filename)
		if err := os.WriteFile(name, img.Data, 0o644); err != nil {
			return err
		}
	}
	for _, w := range extraction.Warnings {
		fmt.Fprintf(os.Stderr, "htmldown: image %d: %s\n", w.Index, w.Message)
	}
	return nil
}

// buildOptions layers the YAML configuration file under the command-line
// flags.
func buildOptions(c *cli.Context) (htmldown.ConversionOptions, error) {
	opts := htmldown.DefaultOptions()

	if path := c.String("config"); path != "" {
		if err := loadConfigFile(path, &opts); err != nil {
			return opts, err
		}
	}

	if c.IsSet("heading-style") {
		style, err := parseHeadingStyle(c.String("heading-style"))
		if err != nil {
			return opts, err
		}
		opts.HeadingStyle = style
	}
	if c.IsSet("bullets") {
		opts.Bullets = c.String("bullets")
	}
	if c.IsSet("wrap") {
		opts.Wrap = true
		opts.WrapWidth = c.Int("wrap")
	}
	if c.Bool("inline") {
		opts.ConvertAsInline = true
	}
	if c.Bool("strip-newlines") {
		opts.StripNewlines = true
	}
	if c.Bool("no-escape") {
		opts.EscapeMisc = false
		opts.EscapeAsterisks = false
		opts.EscapeUnderscores = false
	}
	if c.Bool("no-metadata-comment") {
		opts.ExtractMetadata = false
	}
	if c.IsSet("preprocess") {
		preset, err := parsePreset(c.String("preprocess"))
		if err != nil {
			return opts, err
		}
		opts.Preprocessing.Enabled = true
		opts.Preprocessing.Preset = preset
	}
	if c.IsSet("min-confidence") {
		opts.HOCR.MinConfidence = c.Float64("min-confidence")
	}
	return opts, nil
}

func parseHeadingStyle(s string) (htmldown.HeadingStyle, error) {
	switch strings.ToLower(s) {
	case "atx":
		return htmldown.HeadingATX, nil
	case "atx-closed":
		return htmldown.HeadingATXClosed, nil
	case "underlined", "setext":
		return htmldown.HeadingUnderlined, nil
	default:
		return 0, fmt.Errorf("unknown heading style %q (want atx, atx-closed or underlined)", s)
	}
}

func parsePreset(s string) (htmldown.PreprocessingPreset, error) {
	switch strings.ToLower(s) {
	case "minimal":
		return htmldown.PresetMinimal, nil
	case "standard":
		return htmldown.PresetStandard, nil
	case "aggressive":
		return htmldown.PresetAggressive, nil
	default:
		return 0, fmt.Errorf("unknown preprocessing preset %q (want minimal, standard or aggressive)", s)
	}
}
