package types

// ImageFormat identifies the format of an extracted inline image.
type ImageFormat string

const (
	FormatPNG   ImageFormat = "png"
	FormatJPEG  ImageFormat = "jpeg"
	FormatGIF   ImageFormat = "gif"
	FormatBMP   ImageFormat = "bmp"
	FormatWebP  ImageFormat = "webp"
	FormatSVG   ImageFormat = "svg"
	FormatOther ImageFormat = "other"
)

// Extension returns the file extension for the format, without the dot.
func (f ImageFormat) Extension() string {
	switch f {
	case FormatJPEG:
		return "jpg"
	case FormatOther:
		return "bin"
	default:
		return string(f)
	}
}

// ImageSource records where an inline image was found.
type ImageSource string

const (
	// SourceImgDataURI marks images decoded from an img src data URI.
	SourceImgDataURI ImageSource = "img_data_uri"
	// SourceSVGElement marks images captured from a literal <svg> element.
	SourceSVGElement ImageSource = "svg_element"
)

// InlineImage is an image embedded directly in the HTML document.
type InlineImage struct {
	// Data holds the decoded payload: raw bytes for data URIs, UTF-8 SVG
	// markup for captured svg elements.
	Data        []byte            `json:"data"`
	Format      ImageFormat       `json:"format"`
	Filename    string            `json:"filename"`
	Description string            `json:"description,omitempty"`
	Dimensions  *Dimensions       `json:"dimensions,omitempty"`
	Source      ImageSource       `json:"source"`
	Attributes  map[string]string `json:"attributes,omitempty"`
}

// ImageWarning reports a recoverable problem with one embedded image.
// Index refers to the document-order position of the offending element
// among extraction candidates.
type ImageWarning struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// InlineImageConfig configures inline image extraction.
type InlineImageConfig struct {
	// MaxDecodedSizeBytes drops payloads whose decoded size exceeds the
	// limit. The default is 5MiB.
	MaxDecodedSizeBytes int
	// FilenamePrefix is prepended to generated filenames.
	FilenamePrefix string
	// CaptureSVG includes literal <svg> elements as images.
	CaptureSVG bool
	// InferDimensions reads image headers to fill Dimensions for raster
	// payloads. The payload is never fully decoded.
	InferDimensions bool
}

// DefaultInlineImageConfig returns the default extraction configuration.
func DefaultInlineImageConfig() InlineImageConfig {
	return InlineImageConfig{
		MaxDecodedSizeBytes: 5 * 1024 * 1024, // 5MiB
		CaptureSVG:          true,
		InferDimensions:     false,
	}
}

// Extraction pairs converted Markdown with the images found in the
// document and any per-image warnings.
type Extraction struct {
	Markdown string         `json:"markdown"`
	Images   []InlineImage  `json:"images"`
	Warnings []ImageWarning `json:"warnings,omitempty"`
}
