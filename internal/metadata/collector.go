// Package metadata gathers document metadata alongside a conversion pass.
// Document-level fields and structured data come from a direct scan of the
// parsed tree; headers, links and images are observed by the render walk so
// that nodes a visitor skips never reach the collected metadata.
package metadata

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"github.com/htmldown/htmldown/types"
)

// Collector accumulates metadata for one document.
type Collector struct {
	cfg  types.MetadataConfig
	meta types.ExtendedMetadata

	docHost      string
	headerOffset int
	levelStack   []int
}

// NewCollector returns a collector using the given configuration.
func NewCollector(cfg types.MetadataConfig) *Collector {
	return &Collector{cfg: cfg}
}

// Result returns everything collected so far.
func (c *Collector) Result() *types.ExtendedMetadata {
	return &c.meta
}

// ObserveHeading records one h1-h6 in document order. Depth counts the
// enclosing headers of smaller level, giving the header's position in the
// implied outline.
func (c *Collector) ObserveHeading(level int, text, id string) {
	if !c.cfg.ExtractHeaders {
		return
	}
	for len(c.levelStack) > 0 && c.levelStack[len(c.levelStack)-1] >= level {
		c.levelStack = c.levelStack[:len(c.levelStack)-1]
	}
	h := types.HeaderMetadata{
		Level:  level,
		Text:   text,
		ID:     id,
		Depth:  len(c.levelStack),
		Offset: c.headerOffset,
	}
	c.levelStack = append(c.levelStack, level)
	c.headerOffset++
	c.meta.Headers = append(c.meta.Headers, h)
}

// ObserveLink records one anchor element with an href.
func (c *Collector) ObserveLink(n *html.Node, text string) {
	if !c.cfg.ExtractLinks {
		return
	}
	href := attrVal(n, "href")
	if href == "" {
		return
	}
	link := types.LinkMetadata{
		Href:  href,
		Text:  text,
		Title: attrVal(n, "title"),
		Type:  c.classifyLink(href),
	}
	if rel := attrVal(n, "rel"); rel != "" {
		link.Rel = strings.Fields(rel)
	}
	for _, a := range n.Attr {
		switch a.Key {
		case "href", "title", "rel":
		default:
			if link.Attributes == nil {
				link.Attributes = make(map[string]string)
			}
			link.Attributes[a.Key] = a.Val
		}
	}
	c.meta.Links = append(c.meta.Links, link)
}

// classifyLink applies the first matching rule: fragment, mailto, tel,
// absolute URL on another host, then internal.
func (c *Collector) classifyLink(href string) types.LinkType {
	switch {
	case strings.HasPrefix(href, "#"):
		return types.LinkAnchor
	case strings.HasPrefix(href, "mailto:"):
		return types.LinkEmail
	case strings.HasPrefix(href, "tel:"):
		return types.LinkPhone
	}
	u, err := url.Parse(href)
	if err != nil {
		return types.LinkOther
	}
	if u.IsAbs() {
		if u.Scheme != "http" && u.Scheme != "https" {
			return types.LinkOther
		}
		if c.docHost != "" && strings.EqualFold(u.Host, c.docHost) {
			return types.LinkInternal
		}
		return types.LinkExternal
	}
	return types.LinkInternal
}

// ObserveImage records one img element.
func (c *Collector) ObserveImage(n *html.Node) {
	if !c.cfg.ExtractImages {
		return
	}
	src := attrVal(n, "src")
	img := types.ImageMetadata{
		Src:   src,
		Alt:   attrVal(n, "alt"),
		Title: attrVal(n, "title"),
		Type:  classifyImage(src),
	}
	w, werr := strconv.Atoi(attrVal(n, "width"))
	h, herr := strconv.Atoi(attrVal(n, "height"))
	if werr == nil && herr == nil && w > 0 && h > 0 {
		img.Dimensions = &types.Dimensions{Width: w, Height: h}
	}
	for _, a := range n.Attr {
		switch a.Key {
		case "src", "alt", "title", "width", "height":
		default:
			if img.Attributes == nil {
				img.Attributes = make(map[string]string)
			}
			img.Attributes[a.Key] = a.Val
		}
	}
	c.meta.Images = append(c.meta.Images, img)
}

// ObserveSVG records one inline svg element. Inline svg has no src; the
// accessible name comes from a title child or an aria-label attribute.
func (c *Collector) ObserveSVG(n *html.Node) {
	if !c.cfg.ExtractImages {
		return
	}
	img := types.ImageMetadata{
		Alt:   attrVal(n, "aria-label"),
		Title: svgTitle(n),
		Type:  types.ImageInlineSVG,
	}
	w, werr := strconv.Atoi(attrVal(n, "width"))
	h, herr := strconv.Atoi(attrVal(n, "height"))
	if werr == nil && herr == nil && w > 0 && h > 0 {
		img.Dimensions = &types.Dimensions{Width: w, Height: h}
	}
	for _, a := range n.Attr {
		switch a.Key {
		case "aria-label", "width", "height":
		default:
			if img.Attributes == nil {
				img.Attributes = make(map[string]string)
			}
			img.Attributes[a.Key] = a.Val
		}
	}
	c.meta.Images = append(c.meta.Images, img)
}

func svgTitle(n *html.Node) string {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && strings.ToLower(c.Data) == "title" {
			return strings.TrimSpace(htmlquery.InnerText(c))
		}
	}
	return ""
}

func classifyImage(src string) types.ImageRefType {
	switch {
	case strings.HasPrefix(src, "data:"):
		return types.ImageDataURI
	case strings.Contains(src, "://"):
		return types.ImageExternal
	case strings.HasPrefix(src, "//"):
		return types.ImageExternal
	default:
		return types.ImageRelative
	}
}

// CollectDocument extracts document-level metadata from the parsed tree.
// Call it before the render walk so link classification can use the
// document's host.
func (c *Collector) CollectDocument(root *html.Node) {
	if !c.cfg.ExtractDocument {
		return
	}
	doc := goquery.NewDocumentFromNode(root)
	dm := &c.meta.Document

	if title := strings.TrimSpace(doc.Find("head title").First().Text()); title != "" {
		dm.Title = normalize(title)
	}
	if href, ok := doc.Find("base[href]").First().Attr("href"); ok {
		dm.BaseHref = href
	}
	if href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok {
		dm.CanonicalURL = href
	}
	if lang, ok := doc.Find("html").First().Attr("lang"); ok {
		dm.Language = lang
	}
	if dir, ok := doc.Find("html").First().Attr("dir"); ok {
		dm.TextDirection = dir
	}

	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		content, ok := s.Attr("content")
		if !ok {
			return
		}
		if name, ok := s.Attr("name"); ok && name != "" {
			key := strings.ToLower(name)
			switch key {
			case "description":
				dm.Description = normalize(content)
			case "keywords":
				for _, k := range strings.Split(content, ",") {
					if k = strings.TrimSpace(k); k != "" {
						dm.Keywords = append(dm.Keywords, k)
					}
				}
			case "author":
				dm.Author = normalize(content)
			default:
				if strings.HasPrefix(key, "twitter:") {
					if dm.TwitterCard == nil {
						dm.TwitterCard = make(map[string]string)
					}
					dm.TwitterCard[strings.TrimPrefix(key, "twitter:")] = content
				} else {
					if dm.MetaTags == nil {
						dm.MetaTags = make(map[string]string)
					}
					dm.MetaTags[key] = content
				}
			}
			return
		}
		if prop, ok := s.Attr("property"); ok && strings.HasPrefix(strings.ToLower(prop), "og:") {
			if dm.OpenGraph == nil {
				dm.OpenGraph = make(map[string]string)
			}
			dm.OpenGraph[strings.TrimPrefix(strings.ToLower(prop), "og:")] = content
		}
	})

	// Prefer the canonical host for internal/external link classification,
	// falling back to og:url and base.
	for _, candidate := range []string{dm.CanonicalURL, dm.OpenGraph["url"], dm.BaseHref} {
		if candidate == "" {
			continue
		}
		if u, err := url.Parse(candidate); err == nil && u.Host != "" {
			c.docHost = u.Host
			break
		}
	}
}

// CollectStructuredData extracts JSON-LD, microdata and RDFa blocks,
// dropping any payload over the configured size cap.
func (c *Collector) CollectStructuredData(root *html.Node) {
	if !c.cfg.ExtractStructuredData {
		return
	}
	maxSize := c.cfg.MaxStructuredDataSize

	for _, script := range htmlquery.Find(root, `//script[@type="application/ld+json"]`) {
		payload := strings.TrimSpace(htmlquery.InnerText(script))
		if payload == "" || oversized(payload, maxSize) {
			continue
		}
		c.meta.StructuredData = append(c.meta.StructuredData, types.StructuredData{
			Type:       types.StructuredJSONLD,
			RawJSON:    payload,
			SchemaType: jsonLDType(payload),
		})
	}

	for _, el := range htmlquery.Find(root, "//*[@itemscope and @itemtype]") {
		if insideItemscope(el) {
			continue
		}
		markup := renderNode(el)
		if oversized(markup, maxSize) {
			continue
		}
		itemtype := attrVal(el, "itemtype")
		c.meta.StructuredData = append(c.meta.StructuredData, types.StructuredData{
			Type:       types.StructuredMicrodata,
			RawJSON:    markup,
			SchemaType: schemaName(itemtype),
		})
	}

	for _, el := range htmlquery.Find(root, "//*[@typeof]") {
		markup := renderNode(el)
		if oversized(markup, maxSize) {
			continue
		}
		c.meta.StructuredData = append(c.meta.StructuredData, types.StructuredData{
			Type:       types.StructuredRDFa,
			RawJSON:    markup,
			SchemaType: schemaName(attrVal(el, "typeof")),
		})
	}
}

// jsonLDType pulls @type out of a JSON-LD payload, handling both a single
// object and a top-level array.
func jsonLDType(payload string) string {
	var v interface{}
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		return ""
	}
	switch t := v.(type) {
	case map[string]interface{}:
		if s, ok := t["@type"].(string); ok {
			return s
		}
	case []interface{}:
		for _, item := range t {
			if m, ok := item.(map[string]interface{}); ok {
				if s, ok := m["@type"].(string); ok {
					return s
				}
			}
		}
	}
	return ""
}

// schemaName reduces a schema.org URL or CURIE to its type name.
func schemaName(itemtype string) string {
	itemtype = strings.TrimSpace(itemtype)
	if itemtype == "" {
		return ""
	}
	if i := strings.IndexAny(itemtype, " \t"); i >= 0 {
		itemtype = itemtype[:i]
	}
	if i := strings.LastIndexAny(itemtype, "/#:"); i >= 0 && i+1 < len(itemtype) {
		return itemtype[i+1:]
	}
	return itemtype
}

// insideItemscope reports whether an ancestor also declares itemscope, so
// nested items are not collected twice.
func insideItemscope(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && hasAttr(p, "itemscope") {
			return true
		}
	}
	return false
}

func oversized(payload string, maxSize int) bool {
	return maxSize > 0 && len(payload) > maxSize
}

func renderNode(n *html.Node) string {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return ""
	}
	return b.String()
}

// normalize applies NFKC so ligatures and width variants in head metadata
// compare equal to their plain forms.
func normalize(s string) string {
	return norm.NFKC.String(strings.Join(strings.Fields(s), " "))
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}
