// Package types provides the core data structures for the htmldown library.
package types

// HeadingStyle selects how headings are rendered.
type HeadingStyle int

const (
	// HeadingATX renders headings as "# Heading".
	HeadingATX HeadingStyle = iota
	// HeadingATXClosed renders headings as "# Heading #".
	HeadingATXClosed
	// HeadingUnderlined renders h1/h2 as setext headings ("===" / "---")
	// and falls back to ATX for h3 and deeper.
	HeadingUnderlined
)

// ListIndentType selects the character used to indent nested lists.
type ListIndentType int

const (
	ListIndentSpaces ListIndentType = iota
	ListIndentTabs
)

// HighlightStyle selects how <mark> (and <ins>) content is rendered.
type HighlightStyle int

const (
	// HighlightDoubleEqual renders highlights as ==text==.
	HighlightDoubleEqual HighlightStyle = iota
	// HighlightHTML keeps the <mark> tags in the output.
	HighlightHTML
	// HighlightBold renders highlights as **text**.
	HighlightBold
	// HighlightNone renders the text without any marker.
	HighlightNone
)

// WhitespaceMode controls how whitespace in text nodes is treated.
type WhitespaceMode int

const (
	// WhitespaceNormalized collapses runs of spaces and tabs (including
	// Unicode spaces) to a single space. Newlines are kept as soft breaks.
	WhitespaceNormalized WhitespaceMode = iota
	// WhitespaceStrict preserves the source whitespace as-is.
	WhitespaceStrict
)

// NewlineStyle selects the Markdown hard line break produced for <br>.
type NewlineStyle int

const (
	// NewlineSpaces ends the line with two trailing spaces.
	NewlineSpaces NewlineStyle = iota
	// NewlineBackslash ends the line with a backslash.
	NewlineBackslash
)

// CodeBlockStyle selects how <pre> blocks are fenced.
type CodeBlockStyle int

const (
	CodeBlockBacktick CodeBlockStyle = iota
	CodeBlockTilde
	CodeBlockIndented
)

// PreprocessingPreset selects how aggressively the preprocessor removes
// non-content chrome before conversion.
type PreprocessingPreset int

const (
	PresetMinimal PreprocessingPreset = iota
	PresetStandard
	PresetAggressive
)

// PreprocessingOptions configures the optional HTML cleanup pass that runs
// before conversion. Disabled by default.
type PreprocessingOptions struct {
	Enabled          bool
	Preset           PreprocessingPreset
	RemoveNavigation bool
	RemoveForms      bool
}

// HOCROptions tunes the spatial table reconstruction applied to hOCR
// (HTML-based OCR) documents.
type HOCROptions struct {
	// MinConfidence drops OCR words below this x_wconf value. Zero keeps all.
	MinConfidence float64
	// ColumnThreshold is the maximum horizontal distance, in page units,
	// between word centers grouped into the same column.
	ColumnThreshold float64
	// RowThresholdRatio scales the median word height to obtain the maximum
	// vertical distance between word centers grouped into the same row.
	RowThresholdRatio float64
}

// ConversionOptions configures HTML to Markdown conversion.
type ConversionOptions struct {
	HeadingStyle      HeadingStyle
	ListIndentType    ListIndentType
	ListIndentWidth   int    // Spaces per list nesting level
	Bullets           string // Bullet characters cycled by list depth, e.g. "*+-"
	StrongEmSymbol    rune   // '*' or '_'
	EscapeAsterisks   bool
	EscapeUnderscores bool
	EscapeMisc        bool // Escape \ & < ` [ > ~ # = + | - and "1." / "1)"
	EscapeNonASCII    bool // Escape non-ASCII runes as numeric character references
	CodeLanguage      string
	CodeBlockStyle    CodeBlockStyle
	Autolinks         bool // Render <a href="X">X</a> as <X>
	DefaultTitle      bool // Use href as link title when no title is present
	BrInTables        bool // Join multi-line cell content with <br> instead of spaces
	HighlightStyle    HighlightStyle
	ExtractMetadata   bool // Prefix output with a metadata HTML comment
	WhitespaceMode    WhitespaceMode
	StripNewlines     bool // Replace source newlines with spaces before parsing
	Wrap              bool
	WrapWidth         int
	ConvertAsInline   bool // Render only inline content, no block structure
	SubSymbol         string
	SupSymbol         string
	NewlineStyle      NewlineStyle

	// KeepInlineImagesIn lists parent tags in which images keep full
	// Markdown syntax even in contexts that normally reduce them to alt
	// text (headings, inline mode).
	KeepInlineImagesIn []string

	// StripTags removes the named elements and their content entirely.
	StripTags []string
	// PreserveTags keeps the named elements as raw HTML.
	PreserveTags []string

	HOCR          HOCROptions
	Preprocessing PreprocessingOptions
}

// DefaultOptions returns the default conversion options.
// Headings use ATX style, lists indent by four spaces with bullets cycling
// through "*+-", Markdown-significant characters are escaped, and document
// metadata is extracted into a leading HTML comment.
func DefaultOptions() ConversionOptions {
	return ConversionOptions{
		HeadingStyle:      HeadingATX,
		ListIndentType:    ListIndentSpaces,
		ListIndentWidth:   4,
		Bullets:           "*+-",
		StrongEmSymbol:    '*',
		EscapeAsterisks:   true,
		EscapeUnderscores: true,
		EscapeMisc:        true,
		EscapeNonASCII:    false,
		CodeBlockStyle:    CodeBlockBacktick,
		Autolinks:         true,
		DefaultTitle:      false,
		BrInTables:        false,
		HighlightStyle:    HighlightDoubleEqual,
		ExtractMetadata:   true,
		WhitespaceMode:    WhitespaceNormalized,
		StripNewlines:     false,
		Wrap:              false,
		WrapWidth:         80,
		ConvertAsInline:   false,
		NewlineStyle:      NewlineSpaces,
		HOCR: HOCROptions{
			MinConfidence:     0,
			ColumnThreshold:   50,
			RowThresholdRatio: 0.5,
		},
		Preprocessing: PreprocessingOptions{
			Enabled:          false,
			Preset:           PresetStandard,
			RemoveNavigation: true,
			RemoveForms:      true,
		},
	}
}
