package render

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/htmldown/htmldown/types"
)

// mediaSrc resolves the playable source of a media element, falling back
// to the first <source> child.
func mediaSrc(n *html.Node) string {
	if src := attrVal(n, "src"); src != "" {
		return src
	}
	if src := attrVal(n, "data"); src != "" { // <object data="...">
		return src
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && strings.ToLower(c.Data) == "source" {
			if src := attrVal(c, "src"); src != "" {
				return src
			}
		}
	}
	return ""
}

func (e *Engine) renderMedia(n *html.Node, out *buffer, st state, depth int, nt types.NodeType) {
	src := mediaSrc(n)

	if v := e.visitor; v != nil {
		var res *types.VisitResult
		switch nt {
		case types.NodeAudio:
			if v.OnAudio != nil {
				res = v.OnAudio(e.ctxFor(n, depth), src)
			}
		case types.NodeVideo:
			if v.OnVideo != nil {
				res = v.OnVideo(e.ctxFor(n, depth), src)
			}
		default:
			if v.OnIframe != nil {
				res = v.OnIframe(e.ctxFor(n, depth), src)
			}
		}
		if res != nil && e.resolve(res, n, nt, out, out.Len()) == actHandled {
			return
		}
	}

	if src == "" {
		// fallback content inside the element is all we have
		e.walkChildren(n, out, st, depth)
		return
	}
	link := "[" + src + "](" + src + ")"
	if st.convertAsInline || st.inTableCell || st.inListItem {
		out.WriteString(link)
		return
	}
	out.ensureBlockSep()
	out.WriteString(link + "\n\n")
}

func (e *Engine) renderPicture(n *html.Node, out *buffer, st state, depth int) {
	if img := firstChildElement(n, "img"); img != nil {
		e.renderElement(img, out, st, depth)
		return
	}
	e.walkChildren(n, out, st, depth)
}

func (e *Engine) renderInlineSVG(n *html.Node, out *buffer, st state, depth int) {
	if e.meta != nil {
		e.meta.ObserveSVG(n)
	}
	// svg has no Markdown form; keep whatever text it carries (titles,
	// descriptions, tspans)
	e.renderTextContent(n, out, st, depth)
}

func (e *Engine) renderForm(n *html.Node, out *buffer, st state, depth int) {
	if v := e.visitor; v != nil && v.OnForm != nil {
		ctx := e.ctxFor(n, depth)
		action := attrVal(n, "action")
		method := attrVal(n, "method")
		if e.resolve(v.OnForm(ctx, action, method), n, types.NodeForm, out, out.Len()) == actHandled {
			return
		}
	}
	e.renderSemanticBlock(n, out, st, depth)
}

func (e *Engine) renderFieldset(n *html.Node, out *buffer, st state, depth int) {
	e.renderSemanticBlock(n, out, st, depth)
}

// renderBoldLabel covers <legend> and <optgroup>, which render as a bold
// line introducing their group.
func (e *Engine) renderBoldLabel(n *html.Node, out *buffer, st state, depth int) {
	var text string
	if strings.ToLower(n.Data) == "optgroup" {
		text = strings.TrimSpace(attrVal(n, "label"))
	} else {
		text = strings.TrimSpace(e.renderBuffered(n, st, depth+1))
	}
	if e.err != nil {
		return
	}
	if text != "" {
		if st.convertAsInline || st.inTableCell {
			out.WriteString(text)
		} else {
			out.TrimTrailingSpaces()
			if out.Len() > 0 && !out.EndsWith("\n") {
				out.WriteByte('\n')
			}
			out.WriteString("**" + text + "**\n")
		}
	}
	if strings.ToLower(n.Data) == "optgroup" {
		e.walkChildren(n, out, st, depth)
	}
}

func (e *Engine) renderSelect(n *html.Node, out *buffer, st state, depth int) {
	if st.convertAsInline || st.inTableCell {
		e.walkChildren(n, out, st, depth)
		return
	}
	out.ensureBlockSep()
	e.walkChildren(n, out, st, depth)
	if !out.EndsWith("\n\n") && out.EndsWith("\n") {
		out.WriteByte('\n')
	}
}

func (e *Engine) renderOption(n *html.Node, out *buffer, st state, depth int) {
	text := strings.TrimSpace(e.renderBuffered(n, st, depth+1))
	if text == "" || e.err != nil {
		return
	}
	if st.convertAsInline || st.inTableCell {
		if out.Len() > 0 && !out.endsWithWhitespace() {
			out.WriteByte(' ')
		}
		out.WriteString(text)
		return
	}
	out.TrimTrailingSpaces()
	if out.Len() > 0 && !out.EndsWith("\n") {
		out.WriteByte('\n')
	}
	if hasAttr(n, "selected") {
		out.WriteString("* " + text + "\n")
	} else {
		out.WriteString(text + "\n")
	}
}

func (e *Engine) renderInput(n *html.Node, out *buffer, st state, depth int) {
	if v := e.visitor; v != nil && v.OnInput != nil {
		ctx := e.ctxFor(n, depth)
		res := v.OnInput(ctx, attrVal(n, "type"), attrVal(n, "name"), attrVal(n, "value"))
		if res != nil && e.resolve(res, n, types.NodeInput, out, out.Len()) == actHandled {
			return
		}
	}
	// inputs render nothing; the checkbox case is handled by list items
}

func (e *Engine) renderButton(n *html.Node, out *buffer, st state, depth int) {
	text := strings.TrimSpace(e.renderBuffered(n, st, depth+1))
	if e.err != nil {
		return
	}
	if v := e.visitor; v != nil && v.OnButton != nil {
		ctx := e.ctxFor(n, depth)
		if e.resolve(v.OnButton(ctx, text), n, types.NodeButton, out, out.Len()) == actHandled {
			return
		}
	}
	if text == "" {
		return
	}
	if st.convertAsInline || st.inTableCell || st.inListItem {
		out.WriteString(text)
		return
	}
	out.ensureBlockSep()
	out.WriteString(text + "\n\n")
}

// renderInlineText covers textarea, output, progress and meter: their
// text content flows as a block of plain text.
func (e *Engine) renderInlineText(n *html.Node, out *buffer, st state, depth int) {
	text := strings.TrimSpace(textContent(n))
	if text == "" {
		return
	}
	if st.convertAsInline || st.inTableCell || st.inListItem {
		out.WriteString(text)
		return
	}
	out.ensureBlockSep()
	out.WriteString(text + "\n\n")
}
