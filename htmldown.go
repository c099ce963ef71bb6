package htmldown

import (
	"github.com/htmldown/htmldown/types"
)

// ConversionOptions configures HTML to Markdown conversion.
type ConversionOptions = types.ConversionOptions

// DefaultOptions returns the default conversion options.
func DefaultOptions() ConversionOptions {
	return types.DefaultOptions()
}

// Rendering style selections.
type (
	HeadingStyle        = types.HeadingStyle
	ListIndentType      = types.ListIndentType
	HighlightStyle      = types.HighlightStyle
	WhitespaceMode      = types.WhitespaceMode
	NewlineStyle        = types.NewlineStyle
	CodeBlockStyle      = types.CodeBlockStyle
	PreprocessingPreset = types.PreprocessingPreset
)

const (
	HeadingATX        = types.HeadingATX
	HeadingATXClosed  = types.HeadingATXClosed
	HeadingUnderlined = types.HeadingUnderlined

	ListIndentSpaces = types.ListIndentSpaces
	ListIndentTabs   = types.ListIndentTabs

	HighlightDoubleEqual = types.HighlightDoubleEqual
	HighlightHTML        = types.HighlightHTML
	HighlightBold        = types.HighlightBold
	HighlightNone        = types.HighlightNone

	WhitespaceNormalized = types.WhitespaceNormalized
	WhitespaceStrict     = types.WhitespaceStrict

	NewlineSpaces    = types.NewlineSpaces
	NewlineBackslash = types.NewlineBackslash

	CodeBlockBacktick = types.CodeBlockBacktick
	CodeBlockTilde    = types.CodeBlockTilde
	CodeBlockIndented = types.CodeBlockIndented

	PresetMinimal    = types.PresetMinimal
	PresetStandard   = types.PresetStandard
	PresetAggressive = types.PresetAggressive
)

// PreprocessingOptions configures the optional cleanup pass that removes
// non-content chrome before conversion.
type PreprocessingOptions = types.PreprocessingOptions

// HOCROptions tunes spatial table reconstruction for hOCR documents.
type HOCROptions = types.HOCROptions

// NodeType classifies a node for visitor dispatch.
type NodeType = types.NodeType

// NodeContext describes the node a visitor callback is observing.
type NodeContext = types.NodeContext

// Visitor holds optional callbacks invoked during conversion.
type Visitor = types.Visitor

// VisitResult is returned by visitor callbacks to control conversion.
type VisitResult = types.VisitResult

// VisitResultType indicates how the converter proceeds after a callback.
type VisitResultType = types.VisitResultType

const (
	VisitContinue     = types.VisitContinue
	VisitCustom       = types.VisitCustom
	VisitSkip         = types.VisitSkip
	VisitPreserveHTML = types.VisitPreserveHTML
	VisitAbort        = types.VisitAbort
)

// Continue returns a result that keeps the default rendering.
func Continue() *VisitResult { return types.Continue() }

// Custom returns a result that substitutes output for the node.
func Custom(output string) *VisitResult { return types.Custom(output) }

// Skip returns a result that omits the node and its subtree.
func Skip() *VisitResult { return types.Skip() }

// PreserveHTML returns a result that keeps the node's source HTML.
func PreserveHTML() *VisitResult { return types.PreserveHTML() }

// Abort returns a result that stops the conversion with an error.
func Abort(message string) *VisitResult { return types.Abort(message) }

// Metadata types.
type (
	ExtendedMetadata = types.ExtendedMetadata
	DocumentMetadata = types.DocumentMetadata
	HeaderMetadata   = types.HeaderMetadata
	LinkMetadata     = types.LinkMetadata
	ImageMetadata    = types.ImageMetadata
	StructuredData   = types.StructuredData
	MetadataConfig   = types.MetadataConfig
	ConversionResult = types.ConversionResult
	Dimensions       = types.Dimensions

	LinkType           = types.LinkType
	ImageRefType       = types.ImageRefType
	StructuredDataType = types.StructuredDataType
)

const (
	LinkAnchor   = types.LinkAnchor
	LinkEmail    = types.LinkEmail
	LinkPhone    = types.LinkPhone
	LinkExternal = types.LinkExternal
	LinkInternal = types.LinkInternal
	LinkOther    = types.LinkOther

	ImageDataURI   = types.ImageDataURI
	ImageInlineSVG = types.ImageInlineSVG
	ImageExternal  = types.ImageExternal
	ImageRelative  = types.ImageRelative

	StructuredJSONLD    = types.StructuredJSONLD
	StructuredMicrodata = types.StructuredMicrodata
	StructuredRDFa      = types.StructuredRDFa
)

// DefaultMetadataConfig returns a configuration with every metadata
// category enabled.
func DefaultMetadataConfig() MetadataConfig {
	return types.DefaultMetadataConfig()
}

// Inline image types.
type (
	InlineImage       = types.InlineImage
	ImageWarning      = types.ImageWarning
	InlineImageConfig = types.InlineImageConfig
	Extraction        = types.Extraction
	ImageFormat       = types.ImageFormat
	ImageSource       = types.ImageSource
)

const (
	FormatPNG   = types.FormatPNG
	FormatJPEG  = types.FormatJPEG
	FormatGIF   = types.FormatGIF
	FormatBMP   = types.FormatBMP
	FormatWebP  = types.FormatWebP
	FormatSVG   = types.FormatSVG
	FormatOther = types.FormatOther

	SourceImgDataURI = types.SourceImgDataURI
	SourceSVGElement = types.SourceSVGElement
)

// DefaultInlineImageConfig returns the default extraction configuration.
func DefaultInlineImageConfig() InlineImageConfig {
	return types.DefaultInlineImageConfig()
}

// ErrEmptyInput is returned when the input document is empty.
var ErrEmptyInput = types.ErrEmptyInput

// ParseError reports a failure to parse the input HTML.
type ParseError = types.ParseError

// VisitError reports that a visitor callback aborted the conversion.
type VisitError = types.VisitError

// BuildInfo contains version and build information for the library.
type BuildInfo = types.BuildInfo

// GetBuildInfo returns the current version information for the library.
func GetBuildInfo() BuildInfo {
	return types.GetBuildInfo()
}

// Version is the current version of the htmldown library.
const Version = types.Version

// Name is the name of the htmldown library.
const Name = types.Name
