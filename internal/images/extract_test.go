package images

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/htmldown/htmldown/types"
)

// A 1x1 transparent PNG.
const onePixelPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func parseDoc(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestExtractDataURI(t *testing.T) {
	doc := parseDoc(t, `<p><img src="data:image/png;base64,`+onePixelPNG+`" alt="dot" class="icon"></p>`)

	imgs, warnings := Extract(doc, types.DefaultInlineImageConfig())
	if len(warnings) != 0 {
		t.Fatalf("warnings: %+v", warnings)
	}
	if len(imgs) != 1 {
		t.Fatalf("got %d images", len(imgs))
	}
	img := imgs[0]
	if img.Format != types.FormatPNG || img.Source != types.SourceImgDataURI {
		t.Errorf("format/source = %v/%v", img.Format, img.Source)
	}
	if img.Filename != "image_001.png" {
		t.Errorf("filename = %q", img.Filename)
	}
	if img.Description != "dot" {
		t.Errorf("description = %q", img.Description)
	}
	if img.Attributes["class"] != "icon" {
		t.Errorf("attributes = %v", img.Attributes)
	}
	if len(img.Data) < 4 || string(img.Data[1:4]) != "PNG" {
		t.Errorf("decoded data does not look like a PNG: %v", img.Data)
	}
}

func TestExtractInferDimensions(t *testing.T) {
	doc := parseDoc(t, `<img src="data:image/png;base64,`+onePixelPNG+`">`)

	cfg := types.DefaultInlineImageConfig()
	cfg.InferDimensions = true
	imgs, _ := Extract(doc, cfg)
	if len(imgs) != 1 {
		t.Fatalf("got %d images", len(imgs))
	}
	d := imgs[0].Dimensions
	if d == nil || d.Width != 1 || d.Height != 1 {
		t.Errorf("dimensions = %+v", d)
	}
}

func TestExtractAttributeDimensionsWin(t *testing.T) {
	doc := parseDoc(t, `<img src="data:image/png;base64,`+onePixelPNG+`" width="10" height="20">`)

	cfg := types.DefaultInlineImageConfig()
	cfg.InferDimensions = true
	imgs, _ := Extract(doc, cfg)
	if len(imgs) != 1 {
		t.Fatalf("got %d images", len(imgs))
	}
	d := imgs[0].Dimensions
	if d == nil || d.Width != 10 || d.Height != 20 {
		t.Errorf("dimensions = %+v", d)
	}
}

func TestExtractInvalidBase64(t *testing.T) {
	doc := parseDoc(t, `<img src="data:image/png;base64,Z" alt="broken">`)

	imgs, warnings := Extract(doc, types.DefaultInlineImageConfig())
	if len(imgs) != 0 {
		t.Errorf("broken payload produced images: %+v", imgs)
	}
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings", len(warnings))
	}
	if warnings[0].Index != 0 || !strings.Contains(warnings[0].Message, "base64") {
		t.Errorf("warning = %+v", warnings[0])
	}
}

func TestExtractPercentEncodedSVG(t *testing.T) {
	doc := parseDoc(t, `<img src="data:image/svg+xml,%3Csvg%20xmlns='http://www.w3.org/2000/svg'%3E%3C/svg%3E">`)

	imgs, warnings := Extract(doc, types.DefaultInlineImageConfig())
	if len(warnings) != 0 {
		t.Fatalf("warnings: %+v", warnings)
	}
	if len(imgs) != 1 {
		t.Fatalf("got %d images", len(imgs))
	}
	if imgs[0].Format != types.FormatSVG {
		t.Errorf("format = %v", imgs[0].Format)
	}
	if !strings.HasPrefix(string(imgs[0].Data), "<svg") {
		t.Errorf("data = %q", imgs[0].Data)
	}
	if imgs[0].Filename != "image_001.svg" {
		t.Errorf("filename = %q", imgs[0].Filename)
	}
}

func TestExtractSizeCap(t *testing.T) {
	doc := parseDoc(t, `<img src="data:image/png;base64,`+onePixelPNG+`">`)

	cfg := types.DefaultInlineImageConfig()
	cfg.MaxDecodedSizeBytes = 10
	imgs, warnings := Extract(doc, cfg)
	if len(imgs) != 0 {
		t.Errorf("oversized payload kept: %+v", imgs)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0].Message, "limit") {
		t.Errorf("warnings = %+v", warnings)
	}
}

func TestExtractSVGElement(t *testing.T) {
	doc := parseDoc(t, `<body><svg width="24" height="24" aria-label="ignored"><title>Close icon</title><path d="M0 0"></path></svg></body>`)

	imgs, warnings := Extract(doc, types.DefaultInlineImageConfig())
	if len(warnings) != 0 {
		t.Fatalf("warnings: %+v", warnings)
	}
	if len(imgs) != 1 {
		t.Fatalf("got %d images", len(imgs))
	}
	img := imgs[0]
	if img.Format != types.FormatSVG || img.Source != types.SourceSVGElement {
		t.Errorf("format/source = %v/%v", img.Format, img.Source)
	}
	if img.Description != "Close icon" {
		t.Errorf("description = %q", img.Description)
	}
	if img.Dimensions == nil || img.Dimensions.Width != 24 {
		t.Errorf("dimensions = %+v", img.Dimensions)
	}
	if !strings.Contains(string(img.Data), "<path") {
		t.Errorf("markup = %q", img.Data)
	}
}

func TestExtractSVGDisabled(t *testing.T) {
	doc := parseDoc(t, `<body><svg><title>x</title></svg></body>`)

	cfg := types.DefaultInlineImageConfig()
	cfg.CaptureSVG = false
	imgs, warnings := Extract(doc, cfg)
	if len(imgs) != 0 || len(warnings) != 0 {
		t.Errorf("svg captured while disabled: %+v %+v", imgs, warnings)
	}
}

func TestExtractIndexingAndPrefix(t *testing.T) {
	doc := parseDoc(t, `<body>
		<img src="data:image/gif;base64,Z">
		<img src="data:image/jpeg;base64,/9g=">
		<img src="https://example.com/skipped.png">
	</body>`)

	cfg := types.DefaultInlineImageConfig()
	cfg.FilenamePrefix = "doc_"
	imgs, warnings := Extract(doc, cfg)

	// The first candidate fails, the second succeeds, the remote image is
	// not a candidate at all.
	if len(warnings) != 1 || warnings[0].Index != 0 {
		t.Fatalf("warnings = %+v", warnings)
	}
	if len(imgs) != 1 {
		t.Fatalf("images = %+v", imgs)
	}
	if imgs[0].Filename != "doc_image_002.jpg" {
		t.Errorf("filename = %q", imgs[0].Filename)
	}
	if imgs[0].Format != types.FormatJPEG {
		t.Errorf("format = %v", imgs[0].Format)
	}
}

func TestFormatForMediaType(t *testing.T) {
	tests := []struct {
		mediaType string
		want      types.ImageFormat
	}{
		{"image/png", types.FormatPNG},
		{"image/jpeg", types.FormatJPEG},
		{"image/jpg", types.FormatJPEG},
		{"IMAGE/GIF", types.FormatGIF},
		{"image/x-ms-bmp", types.FormatBMP},
		{"image/webp", types.FormatWebP},
		{"image/svg+xml", types.FormatSVG},
		{"application/octet-stream", types.FormatOther},
	}
	for _, tt := range tests {
		if got := formatForMediaType(tt.mediaType); got != tt.want {
			t.Errorf("formatForMediaType(%q) = %v, want %v", tt.mediaType, got, tt.want)
		}
	}
}
