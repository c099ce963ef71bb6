package render

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/htmldown/htmldown/types"
)

// inlineContent renders the node's children and splits off boundary
// whitespace so delimiters can wrap the trimmed content.
func (e *Engine) inlineContent(n *html.Node, st state, depth int) (prefix, suffix, text string) {
	return Chomp(e.renderBuffered(n, st, depth+1))
}

// writeWrapped emits prefix + delim + text + delim + suffix, degrading to
// bare spacing when the content is empty.
func writeWrapped(out *buffer, prefix, suffix, text, delim string) {
	if text == "" {
		if (prefix != "" || suffix != "") && !out.endsWithWhitespace() {
			out.WriteByte(' ')
		}
		return
	}
	out.WriteString(prefix)
	out.WriteString(delim)
	out.WriteString(text)
	out.WriteString(delim)
	out.WriteString(suffix)
}

func (e *Engine) renderStrong(n *html.Node, out *buffer, st state, depth int) {
	prefix, suffix, text := e.inlineContent(n, st, depth)
	if e.err != nil {
		return
	}
	if v := e.visitor; v != nil && v.OnStrong != nil {
		ctx := e.ctxFor(n, depth)
		if e.resolve(v.OnStrong(ctx, text), n, types.NodeStrong, out, out.Len()) == actHandled {
			return
		}
	}
	writeWrapped(out, prefix, suffix, text, strings.Repeat(string(e.opts.StrongEmSymbol), 2))
}

func (e *Engine) renderEmphasis(n *html.Node, out *buffer, st state, depth int) {
	prefix, suffix, text := e.inlineContent(n, st, depth)
	if e.err != nil {
		return
	}
	if v := e.visitor; v != nil && v.OnEmphasis != nil {
		ctx := e.ctxFor(n, depth)
		if e.resolve(v.OnEmphasis(ctx, text), n, types.NodeEm, out, out.Len()) == actHandled {
			return
		}
	}
	writeWrapped(out, prefix, suffix, text, string(e.opts.StrongEmSymbol))
}

func (e *Engine) renderStrikethrough(n *html.Node, out *buffer, st state, depth int) {
	prefix, suffix, text := e.inlineContent(n, st, depth)
	if e.err != nil {
		return
	}
	if v := e.visitor; v != nil && v.OnStrikethrough != nil {
		ctx := e.ctxFor(n, depth)
		if e.resolve(v.OnStrikethrough(ctx, text), n, types.NodeStrikethrough, out, out.Len()) == actHandled {
			return
		}
	}
	writeWrapped(out, prefix, suffix, text, "~~")
}

// renderHighlight covers <mark> and <ins>, both rendered per the
// configured highlight style.
func (e *Engine) renderHighlight(n *html.Node, out *buffer, st state, depth int, nt types.NodeType) {
	prefix, suffix, text := e.inlineContent(n, st, depth)
	if e.err != nil {
		return
	}
	if v := e.visitor; v != nil {
		var res *types.VisitResult
		switch {
		case nt == types.NodeMark && v.OnMark != nil:
			res = v.OnMark(e.ctxFor(n, depth), text)
		case nt == types.NodeIns && v.OnUnderline != nil:
			res = v.OnUnderline(e.ctxFor(n, depth), text)
		}
		if res != nil && e.resolve(res, n, nt, out, out.Len()) == actHandled {
			return
		}
	}
	if text == "" {
		writeWrapped(out, prefix, suffix, text, "")
		return
	}
	switch e.opts.HighlightStyle {
	case types.HighlightHTML:
		tag := "mark"
		if nt == types.NodeIns {
			tag = "ins"
		}
		out.WriteString(prefix + "<" + tag + ">" + text + "</" + tag + ">" + suffix)
	case types.HighlightBold:
		writeWrapped(out, prefix, suffix, text, "**")
	case types.HighlightNone:
		out.WriteString(prefix + text + suffix)
	default:
		writeWrapped(out, prefix, suffix, text, "==")
	}
}

func (e *Engine) renderUnderline(n *html.Node, out *buffer, st state, depth int) {
	prefix, suffix, text := e.inlineContent(n, st, depth)
	if e.err != nil {
		return
	}
	if v := e.visitor; v != nil && v.OnUnderline != nil {
		ctx := e.ctxFor(n, depth)
		if e.resolve(v.OnUnderline(ctx, text), n, types.NodeUnderline, out, out.Len()) == actHandled {
			return
		}
	}
	out.WriteString(prefix + text + suffix)
}

func (e *Engine) renderSubSup(n *html.Node, out *buffer, st state, depth int, super bool) {
	prefix, suffix, text := e.inlineContent(n, st, depth)
	if e.err != nil {
		return
	}
	symbol := e.opts.SubSymbol
	nt := types.NodeSubscript
	if super {
		symbol = e.opts.SupSymbol
		nt = types.NodeSuperscript
	}
	if v := e.visitor; v != nil {
		var res *types.VisitResult
		if super && v.OnSuperscript != nil {
			res = v.OnSuperscript(e.ctxFor(n, depth), text)
		} else if !super && v.OnSubscript != nil {
			res = v.OnSubscript(e.ctxFor(n, depth), text)
		}
		if res != nil && e.resolve(res, n, nt, out, out.Len()) == actHandled {
			return
		}
	}
	writeWrapped(out, prefix, suffix, text, symbol)
}

func (e *Engine) renderAbbr(n *html.Node, out *buffer, st state, depth int) {
	prefix, suffix, text := e.inlineContent(n, st, depth)
	if e.err != nil {
		return
	}
	if text == "" {
		writeWrapped(out, prefix, suffix, text, "")
		return
	}
	if title := attrVal(n, "title"); title != "" {
		out.WriteString(prefix + text + " (" + title + ")" + suffix)
		return
	}
	out.WriteString(prefix + text + suffix)
}

func (e *Engine) renderCite(n *html.Node, out *buffer, st state, depth int) {
	prefix, suffix, text := e.inlineContent(n, st, depth)
	if e.err != nil {
		return
	}
	writeWrapped(out, prefix, suffix, text, "*")
}

func (e *Engine) renderQuote(n *html.Node, out *buffer, st state, depth int) {
	prefix, suffix, text := e.inlineContent(n, st, depth)
	if e.err != nil {
		return
	}
	if text == "" {
		writeWrapped(out, prefix, suffix, text, "")
		return
	}
	text = strings.ReplaceAll(text, `"`, `\"`)
	out.WriteString(prefix + `"` + text + `"` + suffix)
}

func (e *Engine) renderLink(n *html.Node, out *buffer, st state, depth int) {
	href := attrVal(n, "href")
	title := attrVal(n, "title")
	prefix, suffix, text := e.inlineContent(n, st, depth)
	if e.err != nil {
		return
	}

	var res *types.VisitResult
	if v := e.visitor; v != nil && v.OnLink != nil {
		res = v.OnLink(e.ctxFor(n, depth), href, text, title)
	}
	if e.meta != nil && href != "" && !skipResult(res) {
		e.meta.ObserveLink(n, strings.TrimSpace(CollapseSpaces(textContent(n))))
	}
	if e.resolve(res, n, types.NodeLink, out, out.Len()) == actHandled {
		return
	}

	if href == "" {
		out.WriteString(prefix + text + suffix)
		return
	}
	if e.opts.Autolinks && title == "" && !e.opts.DefaultTitle && text == href {
		out.WriteString(prefix + "<" + href + ">" + suffix)
		return
	}
	if e.opts.DefaultTitle && title == "" {
		title = href
	}
	titlePart := ""
	if title != "" {
		titlePart = ` "` + strings.ReplaceAll(title, `"`, `\"`) + `"`
	}
	out.WriteString(prefix + "[" + text + "](" + href + titlePart + ")" + suffix)
}

func (e *Engine) renderImage(n *html.Node, out *buffer, st state, depth int) {
	src := attrVal(n, "src")
	alt := attrVal(n, "alt")
	title := attrVal(n, "title")

	var res *types.VisitResult
	if v := e.visitor; v != nil && v.OnImage != nil {
		res = v.OnImage(e.ctxFor(n, depth), src, alt, title)
	}
	if e.meta != nil && !skipResult(res) {
		e.meta.ObserveImage(n)
	}
	if e.resolve(res, n, types.NodeImage, out, out.Len()) == actHandled {
		return
	}

	// Explicit dimensions cannot be expressed in Markdown
	if hasAttr(n, "width") || hasAttr(n, "height") {
		e.writeRawHTML(n, out)
		return
	}

	// In headings and inline contexts images reduce to their alt text
	// unless the parent tag opts back in.
	if st.inHeading || st.convertAsInline {
		parentTag := ""
		if p := n.Parent; p != nil && p.Type == html.ElementNode {
			parentTag = strings.ToLower(p.Data)
		}
		if !e.tagListed(parentTag, e.opts.KeepInlineImagesIn) &&
			!e.tagListed(st.headingTag, e.opts.KeepInlineImagesIn) {
			out.WriteString(alt)
			return
		}
	}

	titlePart := ""
	if title != "" {
		titlePart = ` "` + strings.ReplaceAll(title, `"`, `\"`) + `"`
	}
	out.WriteString("![" + alt + "](" + src + titlePart + ")")
}

func (e *Engine) renderCodeInline(n *html.Node, out *buffer, st state, depth int) {
	if st.inCode {
		e.walkChildren(n, out, st, depth)
		return
	}
	// pre>code is handled by the code block rule
	if p := n.Parent; p != nil && p.Type == html.ElementNode && strings.ToLower(p.Data) == "pre" {
		out.WriteString(textContent(n))
		return
	}

	text := textContent(n)
	text = strings.ReplaceAll(text, "\n", " ")

	if v := e.visitor; v != nil && v.OnCodeInline != nil {
		ctx := e.ctxFor(n, depth)
		if e.resolve(v.OnCodeInline(ctx, text), n, types.NodeCode, out, out.Len()) == actHandled {
			return
		}
	}
	if strings.TrimSpace(text) == "" {
		return
	}

	prefix, suffix, trimmed := Chomp(text)
	delim := strings.Repeat("`", longestRun(trimmed, '`')+1)
	pad := ""
	if strings.HasPrefix(trimmed, "`") || strings.HasSuffix(trimmed, "`") {
		pad = " "
	}
	out.WriteString(prefix + delim + pad + trimmed + pad + delim + suffix)
}
