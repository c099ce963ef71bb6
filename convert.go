package htmldown

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/htmldown/htmldown/internal/images"
	"github.com/htmldown/htmldown/internal/metadata"
	"github.com/htmldown/htmldown/internal/preprocess"
	"github.com/htmldown/htmldown/internal/render"
	"github.com/htmldown/htmldown/types"
)

// Converter defines the interface for HTML to Markdown conversion.
// A Converter is safe for concurrent use as long as the visitor it was
// configured with is; the converter itself keeps no per-call state.
type Converter interface {
	// ConvertString converts an HTML string to Markdown.
	ConvertString(html string) (string, error)

	// ConvertReader converts HTML read from r to Markdown.
	ConvertReader(r io.Reader) (string, error)

	// ConvertWithMetadata converts an HTML string and returns the Markdown
	// together with the metadata collected during the same traversal.
	ConvertWithMetadata(html string) (*ConversionResult, error)

	// ExtractInlineImages converts an HTML string and returns the Markdown
	// together with images embedded as data URIs or inline SVG. Broken
	// image payloads produce warnings, never an error.
	ExtractInlineImages(html string) (*Extraction, error)
}

// Option represents a function that modifies the converter configuration.
// This follows the functional options pattern.
type Option func(*config)

type config struct {
	conversion ConversionOptions
	metadata   MetadataConfig
	images     InlineImageConfig
	visitor    *Visitor
}

// WithOptions replaces the whole conversion options structure.
func WithOptions(opts ConversionOptions) Option {
	return func(c *config) {
		c.conversion = opts
	}
}

// WithHeadingStyle selects ATX, closed ATX or underlined headings.
func WithHeadingStyle(style HeadingStyle) Option {
	return func(c *config) {
		c.conversion.HeadingStyle = style
	}
}

// WithListIndent sets the indent character and width for nested lists.
func WithListIndent(indentType ListIndentType, width int) Option {
	return func(c *config) {
		c.conversion.ListIndentType = indentType
		c.conversion.ListIndentWidth = width
	}
}

// WithBullets sets the bullet characters cycled through list nesting
// levels, e.g. "*+-".
func WithBullets(bullets string) Option {
	return func(c *config) {
		c.conversion.Bullets = bullets
	}
}

// WithStrongEmSymbol selects '*' or '_' for strong and emphasized text.
func WithStrongEmSymbol(symbol rune) Option {
	return func(c *config) {
		c.conversion.StrongEmSymbol = symbol
	}
}

// WithEscaping controls which characters are escaped in literal text.
func WithEscaping(misc, asterisks, underscores bool) Option {
	return func(c *config) {
		c.conversion.EscapeMisc = misc
		c.conversion.EscapeAsterisks = asterisks
		c.conversion.EscapeUnderscores = underscores
	}
}

// WithEscapeNonASCII escapes non-ASCII runes as numeric character
// references.
func WithEscapeNonASCII(enable bool) Option {
	return func(c *config) {
		c.conversion.EscapeNonASCII = enable
	}
}

// WithCodeBlockStyle selects backtick, tilde or indented code blocks.
func WithCodeBlockStyle(style CodeBlockStyle) Option {
	return func(c *config) {
		c.conversion.CodeBlockStyle = style
	}
}

// WithCodeLanguage sets the fallback language for code blocks that do not
// declare one.
func WithCodeLanguage(lang string) Option {
	return func(c *config) {
		c.conversion.CodeLanguage = lang
	}
}

// WithAutolinks renders links whose text equals their href as <href>.
func WithAutolinks(enable bool) Option {
	return func(c *config) {
		c.conversion.Autolinks = enable
	}
}

// WithDefaultTitle uses the href as a link title when none is present.
func WithDefaultTitle(enable bool) Option {
	return func(c *config) {
		c.conversion.DefaultTitle = enable
	}
}

// WithBrInTables joins multi-line table cell content with <br> instead of
// spaces.
func WithBrInTables(enable bool) Option {
	return func(c *config) {
		c.conversion.BrInTables = enable
	}
}

// WithHighlightStyle selects how <mark> content is rendered.
func WithHighlightStyle(style HighlightStyle) Option {
	return func(c *config) {
		c.conversion.HighlightStyle = style
	}
}

// WithExtractMetadata controls the metadata HTML comment prefixed to the
// output.
func WithExtractMetadata(enable bool) Option {
	return func(c *config) {
		c.conversion.ExtractMetadata = enable
	}
}

// WithWhitespaceMode selects normalized or strict whitespace handling.
func WithWhitespaceMode(mode WhitespaceMode) Option {
	return func(c *config) {
		c.conversion.WhitespaceMode = mode
	}
}

// WithStripNewlines replaces source newlines with spaces before parsing.
func WithStripNewlines(enable bool) Option {
	return func(c *config) {
		c.conversion.StripNewlines = enable
	}
}

// WithWrap enables paragraph wrapping at the given width.
func WithWrap(width int) Option {
	return func(c *config) {
		c.conversion.Wrap = true
		c.conversion.WrapWidth = width
	}
}

// WithConvertAsInline renders only inline content, without block
// structure.
func WithConvertAsInline(enable bool) Option {
	return func(c *config) {
		c.conversion.ConvertAsInline = enable
	}
}

// WithSubSup sets the symbols wrapped around subscript and superscript
// text.
func WithSubSup(sub, sup string) Option {
	return func(c *config) {
		c.conversion.SubSymbol = sub
		c.conversion.SupSymbol = sup
	}
}

// WithNewlineStyle selects two-space or backslash hard line breaks.
func WithNewlineStyle(style NewlineStyle) Option {
	return func(c *config) {
		c.conversion.NewlineStyle = style
	}
}

// WithKeepInlineImagesIn lists parent tags in which images keep full
// Markdown syntax even in inline contexts.
func WithKeepInlineImagesIn(tags []string) Option {
	return func(c *config) {
		c.conversion.KeepInlineImagesIn = tags
	}
}

// WithStripTags removes the named elements and their content entirely.
func WithStripTags(tags ...string) Option {
	return func(c *config) {
		c.conversion.StripTags = tags
	}
}

// WithPreserveTags keeps the named elements as raw HTML.
func WithPreserveTags(tags ...string) Option {
	return func(c *config) {
		c.conversion.PreserveTags = tags
	}
}

// WithHOCROptions tunes spatial table reconstruction for hOCR documents.
func WithHOCROptions(opts HOCROptions) Option {
	return func(c *config) {
		c.conversion.HOCR = opts
	}
}

// WithPreprocessing enables the cleanup pass that removes non-content
// chrome before conversion.
func WithPreprocessing(opts PreprocessingOptions) Option {
	return func(c *config) {
		c.conversion.Preprocessing = opts
	}
}

// WithVisitor attaches a visitor whose callbacks run before default
// rendering on every node.
func WithVisitor(v *Visitor) Option {
	return func(c *config) {
		c.visitor = v
	}
}

// WithMetadataConfig selects which metadata categories are collected in
// metadata mode.
func WithMetadataConfig(cfg MetadataConfig) Option {
	return func(c *config) {
		c.metadata = cfg
	}
}

// WithInlineImageConfig configures inline image extraction.
func WithInlineImageConfig(cfg InlineImageConfig) Option {
	return func(c *config) {
		c.images = cfg
	}
}

// New creates a new Converter with the provided options.
//
// Example:
//
//	conv := htmldown.New(
//	    htmldown.WithHeadingStyle(htmldown.HeadingUnderlined),
//	    htmldown.WithBullets("-"),
//	)
func New(opts ...Option) Converter {
	cfg := config{
		conversion: DefaultOptions(),
		metadata:   DefaultMetadataConfig(),
		images:     DefaultInlineImageConfig(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &converter{cfg: cfg}
}

// converter is the concrete implementation of the Converter interface.
type converter struct {
	cfg config
}

// validateOptions rejects option combinations the renderer cannot honor.
// Validation failures surface before any traversal work happens.
func validateOptions(opts *ConversionOptions) error {
	if opts.ListIndentWidth < 0 {
		return fmt.Errorf("invalid options: negative list indent width %d", opts.ListIndentWidth)
	}
	if opts.WrapWidth < 0 {
		return fmt.Errorf("invalid options: negative wrap width %d", opts.WrapWidth)
	}
	if s := opts.StrongEmSymbol; s != 0 && s != '*' && s != '_' {
		return fmt.Errorf("invalid options: strong/emphasis symbol must be '*' or '_', got %q", s)
	}
	for _, b := range opts.Bullets {
		if b != '*' && b != '+' && b != '-' {
			return fmt.Errorf("invalid options: bullet character %q is not a Markdown list marker", b)
		}
	}
	return nil
}

// parse normalizes line endings and parses the input into a document tree,
// applying the preprocessing pass when enabled.
func (c *converter) parse(input string) (*html.Node, error) {
	if input == "" {
		return nil, ErrEmptyInput
	}
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")
	if c.cfg.conversion.StripNewlines {
		input = strings.ReplaceAll(input, "\n", " ")
	}

	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return nil, &types.ParseError{Err: err}
	}
	preprocess.Apply(doc, c.cfg.conversion.Preprocessing)
	return doc, nil
}

func (c *converter) engine() *render.Engine {
	eng := render.New(c.cfg.conversion)
	if c.cfg.visitor != nil {
		eng.SetVisitor(c.cfg.visitor)
	}
	return eng
}

// ConvertString converts an HTML string to Markdown.
func (c *converter) ConvertString(input string) (string, error) {
	if err := validateOptions(&c.cfg.conversion); err != nil {
		return "", err
	}
	doc, err := c.parse(input)
	if err != nil {
		return "", err
	}
	return c.engine().Render(doc)
}

// ConvertReader converts HTML read from r to Markdown.
func (c *converter) ConvertReader(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return c.ConvertString(string(data))
}

// ConvertWithMetadata converts an HTML string and collects metadata in the
// same traversal. Headers, links and images skipped by a visitor do not
// appear in the collected metadata.
func (c *converter) ConvertWithMetadata(input string) (*ConversionResult, error) {
	if err := validateOptions(&c.cfg.conversion); err != nil {
		return nil, err
	}
	doc, err := c.parse(input)
	if err != nil {
		return nil, err
	}

	collector := metadata.NewCollector(c.cfg.metadata)
	collector.CollectDocument(doc)
	collector.CollectStructuredData(doc)

	eng := c.engine()
	eng.SetCollector(collector)

	markdown, err := eng.Render(doc)
	if err != nil {
		return nil, err
	}
	return &ConversionResult{
		Markdown: markdown,
		Metadata: collector.Result(),
	}, nil
}

// ExtractInlineImages converts an HTML string and extracts embedded
// images. Image decode failures are reported as warnings; the Markdown is
// always produced.
func (c *converter) ExtractInlineImages(input string) (*Extraction, error) {
	if err := validateOptions(&c.cfg.conversion); err != nil {
		return nil, err
	}
	doc, err := c.parse(input)
	if err != nil {
		return nil, err
	}

	markdown, err := c.engine().Render(doc)
	if err != nil {
		return nil, err
	}
	imgs, warnings := images.Extract(doc, c.cfg.images)
	return &Extraction{
		Markdown: markdown,
		Images:   imgs,
		Warnings: warnings,
	}, nil
}

// Convert converts an HTML string to Markdown using default options plus
// the given overrides.
func Convert(input string, opts ...Option) (string, error) {
	return New(opts...).ConvertString(input)
}

// ConvertWithVisitor converts an HTML string with the visitor's callbacks
// interposed at every node.
func ConvertWithVisitor(input string, v *Visitor, opts ...Option) (string, error) {
	return New(append(opts, WithVisitor(v))...).ConvertString(input)
}

// ConvertWithMetadata converts an HTML string and returns the Markdown
// together with collected metadata.
func ConvertWithMetadata(input string, opts ...Option) (*ConversionResult, error) {
	return New(opts...).ConvertWithMetadata(input)
}

// ExtractInlineImages converts an HTML string and returns the Markdown
// together with embedded images and any per-image warnings.
func ExtractInlineImages(input string, opts ...Option) (*Extraction, error) {
	return New(opts...).ExtractInlineImages(input)
}
