// Package render implements the single-pass DOM walk that turns parsed
// HTML into Markdown. The walk visits every node exactly once, consulting
// the optional visitor before applying the default rule for a node and
// feeding the optional metadata collector along the way.
package render

import (
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/htmldown/htmldown/internal/hocr"
	"github.com/htmldown/htmldown/internal/metadata"
	"github.com/htmldown/htmldown/types"
)

// Engine converts a parsed HTML document to Markdown.
type Engine struct {
	opts    types.ConversionOptions
	visitor *types.Visitor
	meta    *metadata.Collector
	err     error
}

// New returns an Engine for the given options.
func New(opts types.ConversionOptions) *Engine {
	if opts.ListIndentWidth <= 0 {
		opts.ListIndentWidth = 4
	}
	if opts.Bullets == "" {
		opts.Bullets = "*+-"
	}
	if opts.StrongEmSymbol == 0 {
		opts.StrongEmSymbol = '*'
	}
	if opts.WrapWidth <= 0 {
		opts.WrapWidth = 80
	}
	return &Engine{opts: opts}
}

// SetVisitor attaches a visitor whose callbacks run before default
// rendering. A nil visitor disables interception.
func (e *Engine) SetVisitor(v *types.Visitor) {
	e.visitor = v
}

// SetCollector attaches a metadata collector that observes headings, links
// and images during the walk.
func (e *Engine) SetCollector(c *metadata.Collector) {
	e.meta = c
}

// Render walks the document and returns the Markdown output.
func (e *Engine) Render(doc *html.Node) (string, error) {
	var out buffer
	e.err = nil

	isHOCR := hocr.IsHOCRDocument(doc)
	if e.opts.ExtractMetadata && !e.opts.ConvertAsInline && !isHOCR {
		out.WriteString(metadataComment(doc))
	}

	st := state{convertAsInline: e.opts.ConvertAsInline}
	e.walk(doc, &out, st, 0)
	if e.err != nil {
		return "", e.err
	}
	return e.finalize(out.String()), nil
}

func (e *Engine) finalize(s string) string {
	s = strings.TrimLeft(s, "\n")
	s = strings.TrimRight(s, " \t\n")
	if s == "" {
		return ""
	}
	if e.opts.ConvertAsInline {
		return s
	}
	return s + "\n"
}

func (e *Engine) walk(n *html.Node, out *buffer, st state, depth int) {
	if e.err != nil {
		return
	}
	switch n.Type {
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			e.walk(c, out, st, depth)
		}
	case html.TextNode:
		e.renderText(n, out, st, depth)
	case html.ElementNode:
		e.renderElement(n, out, st, depth)
	}
	// comments, doctypes and processing instructions produce no output
}

func (e *Engine) walkChildren(n *html.Node, out *buffer, st state, depth int) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		e.walk(c, out, st, depth)
	}
}

func (e *Engine) renderText(n *html.Node, out *buffer, st state, depth int) {
	text := n.Data
	if text == "" {
		return
	}

	if v := e.visitor; v != nil && v.OnText != nil {
		ctx := e.ctxFor(n, depth)
		if e.resolve(v.OnText(ctx, text), n, types.NodeText, out, out.Len()) == actHandled {
			return
		}
	}

	// Whitespace-only text nodes carry structure, not content.
	if strings.TrimSpace(text) == "" {
		switch {
		case st.inCode:
			out.WriteString(text)
		case e.opts.WhitespaceMode == types.WhitespaceStrict:
			if st.convertAsInline || st.inTableCell || st.inListItem {
				out.WriteString(text)
				return
			}
			if strings.Contains(text, "\n\n") {
				if !out.EndsWith("\n\n") {
					out.WriteByte('\n')
				}
				return
			}
			out.WriteString(text)
		default:
			// Normalized: keep one space between inline content, drop it
			// at block boundaries.
			if out.Len() == 0 || out.endsWithWhitespace() {
				return
			}
			out.WriteByte(' ')
		}
		return
	}

	if st.inCode {
		out.WriteString(text)
		return
	}

	if e.opts.WhitespaceMode == types.WhitespaceNormalized {
		text = strings.ReplaceAll(text, "\n", " ")
		text = CollapseSpaces(text)
	}
	if st.inHeading {
		text = strings.ReplaceAll(text, "\n", " ")
	}

	text = Escape(text, e.opts.EscapeMisc, e.opts.EscapeAsterisks, e.opts.EscapeUnderscores)
	if e.opts.EscapeNonASCII {
		text = EscapeNonASCII(text)
	}

	// No leading space at the start of a block or after output that
	// already ends in whitespace
	if strings.HasPrefix(text, " ") && (out.Len() == 0 || out.endsWithWhitespace()) {
		text = strings.TrimLeft(text, " ")
	}
	out.WriteString(text)
}

func (e *Engine) renderElement(n *html.Node, out *buffer, st state, depth int) {
	tag := strings.ToLower(n.Data)

	if e.tagListed(tag, e.opts.StripTags) {
		return
	}
	if e.tagListed(tag, e.opts.PreserveTags) {
		e.writeRawHTML(n, out)
		return
	}

	if v := e.visitor; v != nil && v.OnElementStart != nil {
		ctx := e.ctxFor(n, depth)
		if e.resolve(v.OnElementStart(ctx), n, ctx.NodeType, out, out.Len()) == actHandled {
			return
		}
	}

	start := out.Len()
	e.renderTag(tag, n, out, st, depth)
	if e.err != nil {
		return
	}

	if v := e.visitor; v != nil && v.OnElementEnd != nil {
		ctx := e.ctxFor(n, depth)
		e.resolve(v.OnElementEnd(ctx, out.Since(start)), n, ctx.NodeType, out, start)
	}
}

// renderTag applies the default rendering rule for an element.
func (e *Engine) renderTag(tag string, n *html.Node, out *buffer, st state, depth int) {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		e.renderHeading(tag, n, out, st, depth)
	case "p":
		e.renderParagraph(n, out, st, depth)
	case "div":
		e.renderDiv(n, out, st, depth)
	case "blockquote":
		e.renderBlockquote(n, out, st, depth)
	case "pre":
		e.renderCodeBlock(n, out, st, depth)
	case "code", "kbd", "samp":
		e.renderCodeInline(n, out, st, depth)
	case "strong", "b":
		e.renderStrong(n, out, st, depth)
	case "em", "i":
		e.renderEmphasis(n, out, st, depth)
	case "a":
		e.renderLink(n, out, st, depth)
	case "img":
		e.renderImage(n, out, st, depth)
	case "br":
		e.renderLineBreak(n, out, st, depth)
	case "hr":
		e.renderHorizontalRule(n, out, st, depth)
	case "wbr":
		// word break opportunities disappear in Markdown
	case "del", "s", "strike":
		e.renderStrikethrough(n, out, st, depth)
	case "ins":
		e.renderHighlight(n, out, st, depth, types.NodeIns)
	case "mark":
		e.renderHighlight(n, out, st, depth, types.NodeMark)
	case "u", "small":
		e.renderUnderline(n, out, st, depth)
	case "sub":
		e.renderSubSup(n, out, st, depth, false)
	case "sup":
		e.renderSubSup(n, out, st, depth, true)
	case "abbr":
		e.renderAbbr(n, out, st, depth)
	case "cite", "dfn", "var":
		e.renderCite(n, out, st, depth)
	case "q":
		e.renderQuote(n, out, st, depth)
	case "ul", "ol", "menu":
		e.renderList(tag, n, out, st, depth)
	case "li":
		e.renderListItem(n, out, st, depth)
	case "dl":
		e.renderDefinitionList(n, out, st, depth)
	case "dt":
		e.renderDefinitionTerm(n, out, st, depth)
	case "dd":
		e.renderDefinitionDescription(n, out, st, depth)
	case "table":
		e.renderTable(n, out, st, depth)
	case "caption":
		e.renderCaption(n, out, st, depth)
	case "thead", "tbody", "tfoot", "tr", "td", "th", "colgroup", "col":
		// table internals are driven by renderTable; stray ones render
		// their children
		if tag != "colgroup" && tag != "col" {
			e.walkChildren(n, out, st, depth)
		}
	case "figure":
		e.renderFigure(n, out, st, depth)
	case "figcaption":
		e.renderFigcaption(n, out, st, depth)
	case "article", "section", "nav", "aside", "header", "footer", "main", "dialog", "address":
		e.renderSemanticBlock(n, out, st, depth)
	case "details":
		e.renderDetails(n, out, st, depth)
	case "summary":
		e.renderSummary(n, out, st, depth)
	case "audio":
		e.renderMedia(n, out, st, depth, types.NodeAudio)
	case "video":
		e.renderMedia(n, out, st, depth, types.NodeVideo)
	case "iframe", "embed", "object":
		e.renderMedia(n, out, st, depth, types.NodeIframe)
	case "picture":
		e.renderPicture(n, out, st, depth)
	case "source", "track":
		// only meaningful inside their media parent
	case "svg":
		e.renderInlineSVG(n, out, st, depth)
	case "math":
		e.renderTextContent(n, out, st, depth)
	case "form":
		e.renderForm(n, out, st, depth)
	case "fieldset":
		e.renderFieldset(n, out, st, depth)
	case "legend":
		e.renderBoldLabel(n, out, st, depth)
	case "select":
		e.renderSelect(n, out, st, depth)
	case "optgroup":
		e.renderBoldLabel(n, out, st, depth)
	case "option":
		e.renderOption(n, out, st, depth)
	case "input":
		e.renderInput(n, out, st, depth)
	case "button":
		e.renderButton(n, out, st, depth)
	case "textarea", "output":
		e.renderInlineText(n, out, st, depth)
	case "progress", "meter":
		e.renderInlineText(n, out, st, depth)
	case "label", "time", "data", "bdi", "bdo":
		e.walkChildren(n, out, st, depth)
	case "ruby":
		e.renderRuby(n, out, st, depth)
	case "rb":
		e.renderRubyBase(n, out, st, depth)
	case "rt":
		e.renderRubyText(n, out, st, depth)
	case "rp":
		e.renderRubyParen(n, out, st, depth)
	case "rtc":
		e.walkChildren(n, out, st, depth)
	case "head", "script", "style", "template", "noscript", "title", "meta", "base", "link":
		// never rendered; metadata is collected separately
	case "span":
		e.renderSpan(n, out, st, depth)
	case "html", "body":
		e.walkChildren(n, out, st, depth)
	default:
		if strings.Contains(tag, "-") {
			e.renderCustomElement(tag, n, out, st, depth)
			return
		}
		e.walkChildren(n, out, st, depth)
	}
}

// renderBuffered renders the node's children into a fresh buffer and
// returns the result, leaving the main output untouched.
func (e *Engine) renderBuffered(n *html.Node, st state, depth int) string {
	var tmp buffer
	e.walkChildren(n, &tmp, st, depth)
	return tmp.String()
}

func (e *Engine) tagListed(tag string, list []string) bool {
	for _, t := range list {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// metadataComment renders head metadata as a leading HTML comment in
// key-sorted order so identical documents produce identical output.
func metadataComment(doc *html.Node) string {
	meta := headMetadata(doc)
	if len(meta) == 0 {
		return ""
	}
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("<!--\n")
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(strings.ReplaceAll(meta[k], "-->", "--&gt;"))
		b.WriteByte('\n')
	}
	b.WriteString("-->\n\n")
	return b.String()
}

// headMetadata pulls title, meta, base and link values out of the head
// element.
func headMetadata(doc *html.Node) map[string]string {
	head := findElement(doc, "head")
	if head == nil {
		return nil
	}
	meta := make(map[string]string)
	for c := head.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch strings.ToLower(c.Data) {
		case "title":
			title := strings.TrimSpace(CollapseSpaces(textContent(c)))
			if title != "" {
				meta["title"] = title
			}
		case "base":
			if href := attrVal(c, "href"); href != "" {
				meta["base-href"] = href
			}
		case "meta":
			name := attrVal(c, "name")
			property := attrVal(c, "property")
			httpEquiv := attrVal(c, "http-equiv")
			content, hasContent := attrLookup(c, "content")
			if !hasContent {
				continue
			}
			switch {
			case name != "":
				meta["meta-"+strings.ToLower(name)] = content
			case property != "":
				key := strings.ReplaceAll(strings.ToLower(property), ":", "-")
				meta["meta-"+key] = content
			case httpEquiv != "":
				meta["meta-"+strings.ToLower(httpEquiv)] = content
			}
		case "link":
			rel := strings.ToLower(attrVal(c, "rel"))
			href := attrVal(c, "href")
			if href == "" {
				continue
			}
			switch rel {
			case "canonical":
				meta["canonical"] = href
			case "author", "license", "alternate":
				meta["link-"+rel] = href
			}
		}
	}
	return meta
}
