package types

// LinkType classifies a hyperlink by the shape of its href.
type LinkType string

const (
	LinkAnchor   LinkType = "anchor"   // Fragment-only href ("#...")
	LinkEmail    LinkType = "email"    // mailto:
	LinkPhone    LinkType = "phone"    // tel:
	LinkExternal LinkType = "external" // Absolute URL on a different host
	LinkInternal LinkType = "internal" // Same host or relative path
	LinkOther    LinkType = "other"
)

// ImageRefType classifies an image by the shape of its source.
type ImageRefType string

const (
	ImageDataURI   ImageRefType = "data_uri"
	ImageInlineSVG ImageRefType = "inline_svg"
	ImageExternal  ImageRefType = "external"
	ImageRelative  ImageRefType = "relative"
)

// StructuredDataType names the serialization a StructuredData block was
// found in.
type StructuredDataType string

const (
	StructuredJSONLD    StructuredDataType = "json_ld"
	StructuredMicrodata StructuredDataType = "microdata"
	StructuredRDFa      StructuredDataType = "rdfa"
)

// DocumentMetadata holds document-level metadata from the head element and
// the root html element.
type DocumentMetadata struct {
	Title         string            `json:"title,omitempty"`
	Description   string            `json:"description,omitempty"`
	Keywords      []string          `json:"keywords,omitempty"`
	Author        string            `json:"author,omitempty"`
	CanonicalURL  string            `json:"canonical_url,omitempty"`
	BaseHref      string            `json:"base_href,omitempty"`
	Language      string            `json:"language,omitempty"`
	TextDirection string            `json:"text_direction,omitempty"`
	OpenGraph     map[string]string `json:"open_graph,omitempty"`
	TwitterCard   map[string]string `json:"twitter_card,omitempty"`
	MetaTags      map[string]string `json:"meta_tags,omitempty"`
}

// HeaderMetadata describes one h1-h6 element in document order.
type HeaderMetadata struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	ID    string `json:"id,omitempty"`
	// Depth is the header's position in the implied outline: the number of
	// ancestor headers with a smaller level preceding it.
	Depth int `json:"depth"`
	// Offset is the document-order index of the header among all headers.
	Offset int `json:"offset"`
}

// LinkMetadata describes one anchor element with an href.
type LinkMetadata struct {
	Href       string            `json:"href"`
	Text       string            `json:"text"`
	Title      string            `json:"title,omitempty"`
	Type       LinkType          `json:"link_type"`
	Rel        []string          `json:"rel,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Dimensions holds pixel dimensions of an image.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ImageMetadata describes one img element.
type ImageMetadata struct {
	Src        string            `json:"src"`
	Alt        string            `json:"alt,omitempty"`
	Title      string            `json:"title,omitempty"`
	Type       ImageRefType      `json:"image_type"`
	Dimensions *Dimensions       `json:"dimensions,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// StructuredData holds one embedded structured data block.
type StructuredData struct {
	Type StructuredDataType `json:"data_type"`
	// RawJSON is the block's payload: the script body for JSON-LD, the
	// element's markup for microdata and RDFa.
	RawJSON string `json:"raw_json"`
	// SchemaType is the schema.org type when one could be determined.
	SchemaType string `json:"schema_type,omitempty"`
}

// ExtendedMetadata aggregates everything the metadata collector gathers in
// one conversion pass.
type ExtendedMetadata struct {
	Document       DocumentMetadata `json:"document"`
	Headers        []HeaderMetadata `json:"headers,omitempty"`
	Links          []LinkMetadata   `json:"links,omitempty"`
	Images         []ImageMetadata  `json:"images,omitempty"`
	StructuredData []StructuredData `json:"structured_data,omitempty"`
}

// MetadataConfig selects which metadata categories are collected.
type MetadataConfig struct {
	ExtractDocument       bool
	ExtractHeaders        bool
	ExtractLinks          bool
	ExtractImages         bool
	ExtractStructuredData bool
	// MaxStructuredDataSize caps the byte size of a single structured data
	// payload. Oversized payloads are dropped.
	MaxStructuredDataSize int
}

// DefaultMetadataConfig returns a configuration with every category
// enabled and structured data payloads capped at 1MB.
func DefaultMetadataConfig() MetadataConfig {
	return MetadataConfig{
		ExtractDocument:       true,
		ExtractHeaders:        true,
		ExtractLinks:          true,
		ExtractImages:         true,
		ExtractStructuredData: true,
		MaxStructuredDataSize: 1024 * 1024, // 1MB
	}
}

// ConversionResult pairs the rendered Markdown with collected metadata.
type ConversionResult struct {
	Markdown string            `json:"markdown"`
	Metadata *ExtendedMetadata `json:"metadata,omitempty"`
}
