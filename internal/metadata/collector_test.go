package metadata

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/htmldown/htmldown/types"
)

func parseDoc(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func findTag(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findTag(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func TestClassifyLink(t *testing.T) {
	c := NewCollector(types.DefaultMetadataConfig())
	c.docHost = "example.com"

	tests := []struct {
		href string
		want types.LinkType
	}{
		{"#section", types.LinkAnchor},
		{"mailto:jo@example.com", types.LinkEmail},
		{"tel:+1234567890", types.LinkPhone},
		{"https://example.com/page", types.LinkInternal},
		{"https://EXAMPLE.COM/page", types.LinkInternal},
		{"https://other.org/page", types.LinkExternal},
		{"http://other.org", types.LinkExternal},
		{"/relative/path", types.LinkInternal},
		{"page.html", types.LinkInternal},
		{"ftp://files.example.com/x", types.LinkOther},
		{"javascript:void(0)", types.LinkOther},
	}
	for _, tt := range tests {
		if got := c.classifyLink(tt.href); got != tt.want {
			t.Errorf("classifyLink(%q) = %v, want %v", tt.href, got, tt.want)
		}
	}
}

func TestClassifyLinkWithoutHost(t *testing.T) {
	c := NewCollector(types.DefaultMetadataConfig())
	// Without a document host every absolute http(s) URL is external.
	if got := c.classifyLink("https://example.com/page"); got != types.LinkExternal {
		t.Errorf("classifyLink = %v, want external", got)
	}
}

func TestClassifyImage(t *testing.T) {
	tests := []struct {
		src  string
		want types.ImageRefType
	}{
		{"data:image/png;base64,AAAA", types.ImageDataURI},
		{"https://cdn.example.com/a.png", types.ImageExternal},
		{"img/photo.jpg", types.ImageRelative},
		{"/static/logo.svg", types.ImageRelative},
	}
	for _, tt := range tests {
		if got := classifyImage(tt.src); got != tt.want {
			t.Errorf("classifyImage(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestObserveHeadingOutline(t *testing.T) {
	c := NewCollector(types.DefaultMetadataConfig())
	c.ObserveHeading(1, "Title", "top")
	c.ObserveHeading(2, "Part One", "")
	c.ObserveHeading(3, "Detail", "")
	c.ObserveHeading(2, "Part Two", "")

	headers := c.Result().Headers
	if len(headers) != 4 {
		t.Fatalf("got %d headers", len(headers))
	}
	wantDepths := []int{0, 1, 2, 1}
	for i, want := range wantDepths {
		if headers[i].Depth != want {
			t.Errorf("header %d depth = %d, want %d", i, headers[i].Depth, want)
		}
		if headers[i].Offset != i {
			t.Errorf("header %d offset = %d, want %d", i, headers[i].Offset, i)
		}
	}
	if headers[0].Text != "Title" || headers[0].ID != "top" || headers[0].Level != 1 {
		t.Errorf("first header = %+v", headers[0])
	}
}

func TestObserveLink(t *testing.T) {
	doc := parseDoc(t, `<a href="https://other.org/x" title="Other" rel="nofollow external" data-track="1">read</a>`)
	a := findTag(doc, "a")

	c := NewCollector(types.DefaultMetadataConfig())
	c.ObserveLink(a, "read")

	links := c.Result().Links
	if len(links) != 1 {
		t.Fatalf("got %d links", len(links))
	}
	l := links[0]
	if l.Href != "https://other.org/x" || l.Text != "read" || l.Title != "Other" {
		t.Errorf("link = %+v", l)
	}
	if l.Type != types.LinkExternal {
		t.Errorf("type = %v", l.Type)
	}
	if len(l.Rel) != 2 || l.Rel[0] != "nofollow" || l.Rel[1] != "external" {
		t.Errorf("rel = %v", l.Rel)
	}
	if l.Attributes["data-track"] != "1" {
		t.Errorf("attributes = %v", l.Attributes)
	}
}

func TestObserveLinkWithoutHref(t *testing.T) {
	doc := parseDoc(t, `<a name="legacy">anchor</a>`)
	c := NewCollector(types.DefaultMetadataConfig())
	c.ObserveLink(findTag(doc, "a"), "anchor")
	if len(c.Result().Links) != 0 {
		t.Errorf("href-less anchor recorded: %+v", c.Result().Links)
	}
}

func TestObserveImage(t *testing.T) {
	doc := parseDoc(t, `<img src="photo.jpg" alt="A photo" title="Photo" width="640" height="480" loading="lazy">`)
	c := NewCollector(types.DefaultMetadataConfig())
	c.ObserveImage(findTag(doc, "img"))

	images := c.Result().Images
	if len(images) != 1 {
		t.Fatalf("got %d images", len(images))
	}
	img := images[0]
	if img.Src != "photo.jpg" || img.Alt != "A photo" || img.Type != types.ImageRelative {
		t.Errorf("image = %+v", img)
	}
	if img.Dimensions == nil || img.Dimensions.Width != 640 || img.Dimensions.Height != 480 {
		t.Errorf("dimensions = %+v", img.Dimensions)
	}
	if img.Attributes["loading"] != "lazy" {
		t.Errorf("attributes = %v", img.Attributes)
	}
}

func TestObserveSVG(t *testing.T) {
	doc := parseDoc(t, `<svg width="24" height="24" aria-label="close"><title>Close icon</title></svg>`)
	c := NewCollector(types.DefaultMetadataConfig())
	c.ObserveSVG(findTag(doc, "svg"))

	images := c.Result().Images
	if len(images) != 1 {
		t.Fatalf("got %d images", len(images))
	}
	img := images[0]
	if img.Type != types.ImageInlineSVG {
		t.Errorf("type = %q", img.Type)
	}
	if img.Src != "" {
		t.Errorf("src = %q", img.Src)
	}
	if img.Title != "Close icon" || img.Alt != "close" {
		t.Errorf("image = %+v", img)
	}
	if img.Dimensions == nil || img.Dimensions.Width != 24 || img.Dimensions.Height != 24 {
		t.Errorf("dimensions = %+v", img.Dimensions)
	}
}

func TestCollectDocument(t *testing.T) {
	doc := parseDoc(t, `<html lang="en" dir="ltr"><head>
		<title>  My   Page  </title>
		<base href="https://example.com/docs/">
		<link rel="canonical" href="https://example.com/docs/page">
		<meta name="description" content="A test page">
		<meta name="keywords" content="go, markdown , html">
		<meta name="author" content="Jo Doe">
		<meta name="generator" content="hand">
		<meta name="twitter:card" content="summary">
		<meta property="og:title" content="My Page">
		<meta property="og:url" content="https://example.com/docs/page">
	</head><body></body></html>`)

	c := NewCollector(types.DefaultMetadataConfig())
	c.CollectDocument(doc)
	dm := c.Result().Document

	if dm.Title != "My Page" {
		t.Errorf("title = %q", dm.Title)
	}
	if dm.BaseHref != "https://example.com/docs/" {
		t.Errorf("base = %q", dm.BaseHref)
	}
	if dm.CanonicalURL != "https://example.com/docs/page" {
		t.Errorf("canonical = %q", dm.CanonicalURL)
	}
	if dm.Language != "en" || dm.TextDirection != "ltr" {
		t.Errorf("lang/dir = %q/%q", dm.Language, dm.TextDirection)
	}
	if dm.Description != "A test page" || dm.Author != "Jo Doe" {
		t.Errorf("description/author = %q/%q", dm.Description, dm.Author)
	}
	if len(dm.Keywords) != 3 || dm.Keywords[0] != "go" || dm.Keywords[1] != "markdown" {
		t.Errorf("keywords = %v", dm.Keywords)
	}
	if dm.MetaTags["generator"] != "hand" {
		t.Errorf("meta tags = %v", dm.MetaTags)
	}
	if dm.TwitterCard["card"] != "summary" {
		t.Errorf("twitter = %v", dm.TwitterCard)
	}
	if dm.OpenGraph["title"] != "My Page" {
		t.Errorf("opengraph = %v", dm.OpenGraph)
	}

	// The canonical URL supplies the host for link classification.
	if got := c.classifyLink("https://example.com/other"); got != types.LinkInternal {
		t.Errorf("classifyLink after collect = %v, want internal", got)
	}
}

func TestCollectDocumentNFKC(t *testing.T) {
	// The ligature and fullwidth forms normalize to plain ASCII.
	doc := parseDoc(t, "<html><head><title>ﬁle Ａ</title></head></html>")
	c := NewCollector(types.DefaultMetadataConfig())
	c.CollectDocument(doc)
	if got := c.Result().Document.Title; got != "file A" {
		t.Errorf("title = %q", got)
	}
}

func TestCollectStructuredDataJSONLD(t *testing.T) {
	doc := parseDoc(t, `<html><head><script type="application/ld+json">
		{"@context": "https://schema.org", "@type": "Article", "headline": "Hi"}
	</script></head><body></body></html>`)

	c := NewCollector(types.DefaultMetadataConfig())
	c.CollectStructuredData(doc)

	sd := c.Result().StructuredData
	if len(sd) != 1 {
		t.Fatalf("got %d blocks", len(sd))
	}
	if sd[0].Type != types.StructuredJSONLD || sd[0].SchemaType != "Article" {
		t.Errorf("block = %+v", sd[0])
	}
	if !strings.Contains(sd[0].RawJSON, `"headline"`) {
		t.Errorf("raw payload = %q", sd[0].RawJSON)
	}
}

func TestCollectStructuredDataMicrodataAndRDFa(t *testing.T) {
	doc := parseDoc(t, `<body>
		<div itemscope itemtype="https://schema.org/Person">
			<span itemprop="name">Jo</span>
			<div itemscope itemtype="https://schema.org/PostalAddress"></div>
		</div>
		<div typeof="schema:Event">concert</div>
	</body>`)

	c := NewCollector(types.DefaultMetadataConfig())
	c.CollectStructuredData(doc)

	sd := c.Result().StructuredData
	if len(sd) != 2 {
		t.Fatalf("got %d blocks: %+v", len(sd), sd)
	}
	if sd[0].Type != types.StructuredMicrodata || sd[0].SchemaType != "Person" {
		t.Errorf("microdata = %+v", sd[0])
	}
	if sd[1].Type != types.StructuredRDFa || sd[1].SchemaType != "Event" {
		t.Errorf("rdfa = %+v", sd[1])
	}
}

func TestCollectStructuredDataSizeCap(t *testing.T) {
	big := strings.Repeat("x", 200)
	doc := parseDoc(t, `<head><script type="application/ld+json">{"@type": "Thing", "pad": "`+big+`"}</script></head>`)

	cfg := types.DefaultMetadataConfig()
	cfg.MaxStructuredDataSize = 100
	c := NewCollector(cfg)
	c.CollectStructuredData(doc)

	if got := c.Result().StructuredData; len(got) != 0 {
		t.Errorf("oversized payload kept: %+v", got)
	}
}

func TestJSONLDType(t *testing.T) {
	tests := []struct {
		payload string
		want    string
	}{
		{`{"@type": "Article"}`, "Article"},
		{`[{"name": "x"}, {"@type": "Recipe"}]`, "Recipe"},
		{`{"name": "no type"}`, ""},
		{`not json`, ""},
	}
	for _, tt := range tests {
		if got := jsonLDType(tt.payload); got != tt.want {
			t.Errorf("jsonLDType(%q) = %q, want %q", tt.payload, got, tt.want)
		}
	}
}

func TestSchemaName(t *testing.T) {
	tests := []struct {
		itemtype string
		want     string
	}{
		{"https://schema.org/Person", "Person"},
		{"http://schema.org/Article", "Article"},
		{"schema:Event", "Event"},
		{"Thing", "Thing"},
		{"https://schema.org/Person https://schema.org/Employee", "Person"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := schemaName(tt.itemtype); got != tt.want {
			t.Errorf("schemaName(%q) = %q, want %q", tt.itemtype, got, tt.want)
		}
	}
}

func TestDisabledCategories(t *testing.T) {
	doc := parseDoc(t, `<html><head><title>T</title></head><body><a href="/x">x</a></body></html>`)
	c := NewCollector(types.MetadataConfig{})

	c.CollectDocument(doc)
	c.ObserveHeading(1, "H", "")
	c.ObserveLink(findTag(doc, "a"), "x")
	c.ObserveImage(findTag(doc, "a")) // any node works; it returns early

	m := c.Result()
	if m.Document.Title != "" || len(m.Headers) != 0 || len(m.Links) != 0 || len(m.Images) != 0 {
		t.Errorf("disabled collector recorded data: %+v", m)
	}
}
