// Package images extracts images embedded directly in an HTML document:
// img elements with data URI sources and literal svg elements. Broken
// payloads produce warnings rather than failing the document.
package images

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	// Header-only dimension probing via image.DecodeConfig.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/htmldown/htmldown/types"
)

// Extract walks the document and returns its embedded images along with
// warnings for payloads that could not be decoded. The index in a warning
// is the document-order position among extraction candidates.
func Extract(root *html.Node, cfg types.InlineImageConfig) ([]types.InlineImage, []types.ImageWarning) {
	if cfg.MaxDecodedSizeBytes <= 0 {
		cfg.MaxDecodedSizeBytes = 5 * 1024 * 1024
	}

	var imgs []types.InlineImage
	var warnings []types.ImageWarning
	index := 0

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "img":
				if src := attrVal(n, "src"); strings.HasPrefix(src, "data:") {
					img, err := decodeDataURI(n, src, cfg)
					if err != nil {
						warnings = append(warnings, types.ImageWarning{Index: index, Message: err.Error()})
					} else {
						img.Filename = filename(cfg.FilenamePrefix, index, img.Format)
						imgs = append(imgs, img)
					}
					index++
				}
				return
			case "svg":
				if cfg.CaptureSVG {
					img, err := captureSVG(n, cfg)
					if err != nil {
						warnings = append(warnings, types.ImageWarning{Index: index, Message: err.Error()})
					} else {
						img.Filename = filename(cfg.FilenamePrefix, index, types.FormatSVG)
						imgs = append(imgs, img)
					}
					index++
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return imgs, warnings
}

func filename(prefix string, index int, format types.ImageFormat) string {
	return fmt.Sprintf("%simage_%03d.%s", prefix, index+1, format.Extension())
}

// decodeDataURI decodes an img data URI payload into an InlineImage.
func decodeDataURI(n *html.Node, src string, cfg types.InlineImageConfig) (types.InlineImage, error) {
	var img types.InlineImage

	rest := strings.TrimPrefix(src, "data:")
	comma := strings.IndexByte(rest, ',')
	if comma < 0 {
		return img, fmt.Errorf("malformed data URI: no payload separator")
	}
	header, payload := rest[:comma], rest[comma+1:]

	mediaType := header
	isBase64 := false
	if i := strings.IndexByte(header, ';'); i >= 0 {
		mediaType = header[:i]
		isBase64 = strings.Contains(header[i:], "base64")
	}

	var data []byte
	if isBase64 {
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			// Some encoders emit the URL-safe alphabet.
			decoded, err = base64.URLEncoding.DecodeString(payload)
			if err != nil {
				return img, fmt.Errorf("invalid base64 payload: %v", err)
			}
		}
		data = decoded
	} else {
		unescaped, err := url.PathUnescape(payload)
		if err != nil {
			return img, fmt.Errorf("invalid percent-encoded payload: %v", err)
		}
		data = []byte(unescaped)
	}

	if len(data) > cfg.MaxDecodedSizeBytes {
		return img, fmt.Errorf("decoded payload is %d bytes, over the %d byte limit", len(data), cfg.MaxDecodedSizeBytes)
	}

	img.Data = data
	img.Format = formatForMediaType(mediaType)
	img.Source = types.SourceImgDataURI
	img.Description = attrVal(n, "alt")
	img.Attributes = collectAttrs(n, "src", "alt", "width", "height")
	img.Dimensions = attrDimensions(n)

	if cfg.InferDimensions && img.Dimensions == nil && img.Format != types.FormatSVG {
		if c, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
			img.Dimensions = &types.Dimensions{Width: c.Width, Height: c.Height}
		}
	}
	return img, nil
}

// captureSVG serializes a literal svg element as an image.
func captureSVG(n *html.Node, cfg types.InlineImageConfig) (types.InlineImage, error) {
	var img types.InlineImage

	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return img, fmt.Errorf("serializing svg element: %v", err)
	}
	markup := b.String()
	if len(markup) > cfg.MaxDecodedSizeBytes {
		return img, fmt.Errorf("svg markup is %d bytes, over the %d byte limit", len(markup), cfg.MaxDecodedSizeBytes)
	}

	img.Data = []byte(markup)
	img.Format = types.FormatSVG
	img.Source = types.SourceSVGElement
	img.Description = svgDescription(n)
	img.Attributes = collectAttrs(n, "width", "height")
	img.Dimensions = attrDimensions(n)
	return img, nil
}

// svgDescription prefers the svg title element, then aria-label.
func svgDescription(n *html.Node) string {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && strings.ToLower(c.Data) == "title" {
			if t := strings.TrimSpace(textContent(c)); t != "" {
				return t
			}
		}
	}
	return attrVal(n, "aria-label")
}

func formatForMediaType(mediaType string) types.ImageFormat {
	switch strings.ToLower(strings.TrimSpace(mediaType)) {
	case "image/png":
		return types.FormatPNG
	case "image/jpeg", "image/jpg":
		return types.FormatJPEG
	case "image/gif":
		return types.FormatGIF
	case "image/bmp", "image/x-bmp", "image/x-ms-bmp":
		return types.FormatBMP
	case "image/webp":
		return types.FormatWebP
	case "image/svg+xml":
		return types.FormatSVG
	default:
		return types.FormatOther
	}
}

// attrDimensions reads numeric width and height attributes.
func attrDimensions(n *html.Node) *types.Dimensions {
	w, werr := strconv.Atoi(attrVal(n, "width"))
	h, herr := strconv.Atoi(attrVal(n, "height"))
	if werr != nil || herr != nil || w <= 0 || h <= 0 {
		return nil
	}
	return &types.Dimensions{Width: w, Height: h}
}

func collectAttrs(n *html.Node, skip ...string) map[string]string {
	var attrs map[string]string
	for _, a := range n.Attr {
		skipped := false
		for _, s := range skip {
			if a.Key == s {
				skipped = true
				break
			}
		}
		if skipped {
			continue
		}
		if attrs == nil {
			attrs = make(map[string]string)
		}
		attrs[a.Key] = a.Val
	}
	return attrs
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
