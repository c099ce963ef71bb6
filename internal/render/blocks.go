package render

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/htmldown/htmldown/types"
)

func (e *Engine) renderHeading(tag string, n *html.Node, out *buffer, st state, depth int) {
	level := int(tag[1] - '0')

	hst := st
	hst.inHeading = true
	hst.headingTag = tag
	text := e.renderBuffered(n, hst, depth+1)
	if e.err != nil {
		return
	}
	// Headings are single-line constructs
	text = strings.TrimSpace(CollapseSpaces(strings.ReplaceAll(text, "\n", " ")))
	id := attrVal(n, "id")

	var res *types.VisitResult
	if v := e.visitor; v != nil && v.OnHeading != nil {
		res = v.OnHeading(e.ctxFor(n, depth), level, text, id)
	}
	if e.meta != nil && !skipResult(res) {
		e.meta.ObserveHeading(level, strings.TrimSpace(CollapseSpaces(textContent(n))), id)
	}
	if e.resolve(res, n, types.NodeHeading, out, out.Len()) == actHandled {
		return
	}

	if st.convertAsInline || st.inTableCell {
		out.WriteString(text)
		return
	}
	if text == "" {
		return
	}

	out.ensureBlockSep()
	switch e.opts.HeadingStyle {
	case types.HeadingUnderlined:
		switch level {
		case 1:
			out.WriteString(Underline(text, '='))
		case 2:
			out.WriteString(Underline(text, '-'))
		default:
			out.WriteString(strings.Repeat("#", level) + " " + text + "\n\n")
		}
	case types.HeadingATXClosed:
		hashes := strings.Repeat("#", level)
		out.WriteString(hashes + " " + text + " " + hashes + "\n\n")
	default:
		out.WriteString(strings.Repeat("#", level) + " " + text + "\n\n")
	}
}

func (e *Engine) renderParagraph(n *html.Node, out *buffer, st state, depth int) {
	if st.convertAsInline {
		e.walkChildren(n, out, st, depth)
		return
	}
	start := out.Len()
	e.renderBlockContainer(n, out, st, depth)
	if e.opts.Wrap && !st.inTableCell && !st.inListItem {
		seg := out.Since(start)
		body := strings.TrimRight(seg, "\n")
		tail := seg[len(body):]
		out.Truncate(start)
		out.WriteString(Wrap(body, e.opts.WrapWidth))
		out.WriteString(tail)
	}
}

func (e *Engine) renderDiv(n *html.Node, out *buffer, st state, depth int) {
	if hasClass(n, "ocr_page") || hasClass(n, "ocr_carea") {
		if e.renderHOCRArea(n, out, st, depth) {
			return
		}
	}
	e.renderBlockContainer(n, out, st, depth)
}

// renderBlockContainer handles generic block content (p, div) including
// the continuation rules inside list items and table cells.
func (e *Engine) renderBlockContainer(n *html.Node, out *buffer, st state, depth int) {
	// In table cells block elements join with <br>
	isTableContinuation := st.inTableCell && out.Len() > 0 &&
		!out.EndsWith("|") && !out.EndsWith("<br>")

	// In list items later blocks continue under the marker's indentation
	isListContinuation := st.inListItem && out.Len() > 0 &&
		!out.EndsWithAny("* ", "- ", "+ ", ". ")

	needsLeadingSep := !st.inTableCell && !st.inListItem && !st.convertAsInline &&
		out.Len() > 0 && !out.EndsWith("\n\n")

	switch {
	case isTableContinuation:
		out.TrimTrailingSpaces()
		out.WriteString("<br>")
	case isListContinuation:
		out.TrimTrailingSpaces()
		if !out.EndsWith("\n") {
			out.WriteByte('\n')
		}
		// marker indentation plus one continuation level
		indentLevel := 0
		if st.listDepth > 0 {
			indentLevel = 2*st.listDepth - 1
		}
		out.WriteString(strings.Repeat(strings.Repeat(" ", e.opts.ListIndentWidth), indentLevel))
	case needsLeadingSep:
		out.ensureBlockSep()
	}

	contentStart := out.Len()
	e.walkChildren(n, out, st, depth)
	if out.Len() == contentStart {
		return
	}

	out.TrimTrailingSpaces()
	switch {
	case st.inTableCell:
		// cell joining happens at the cell level
	case st.inListItem:
		if isListContinuation {
			if !out.EndsWith("\n") {
				out.WriteByte('\n')
			}
		} else if !out.EndsWith("\n\n") {
			if out.EndsWith("\n") {
				out.WriteByte('\n')
			} else {
				out.WriteString("\n\n")
			}
		}
	case !st.convertAsInline:
		if !out.EndsWith("\n\n") {
			if out.EndsWith("\n") {
				out.WriteByte('\n')
			} else {
				out.WriteString("\n\n")
			}
		}
	}
}

func (e *Engine) renderBlockquote(n *html.Node, out *buffer, st state, depth int) {
	if st.convertAsInline {
		e.walkChildren(n, out, st, depth)
		return
	}

	qst := st
	qst.blockquoteDepth = st.blockquoteDepth + 1
	content := e.renderBuffered(n, qst, depth+1)
	if e.err != nil {
		return
	}
	content = strings.Trim(content, "\n")
	content = strings.TrimRight(content, " \t\n")
	cite := attrVal(n, "cite")

	if v := e.visitor; v != nil && v.OnBlockquote != nil {
		ctx := e.ctxFor(n, depth)
		if e.resolve(v.OnBlockquote(ctx, content, qst.blockquoteDepth), n, types.NodeBlockquote, out, out.Len()) == actHandled {
			return
		}
	}
	if content == "" && cite == "" {
		return
	}

	out.ensureBlockSep()
	for _, line := range strings.Split(content, "\n") {
		if line == "" {
			out.WriteString(">\n")
		} else {
			out.WriteString("> " + line + "\n")
		}
	}
	if cite != "" {
		out.WriteString("> — <" + cite + ">\n")
	}
	out.WriteByte('\n')
}

func (e *Engine) renderCodeBlock(n *html.Node, out *buffer, st state, depth int) {
	codeNode := firstChildElement(n, "code")
	lang := e.opts.CodeLanguage
	src := n
	if codeNode != nil {
		src = codeNode
		if l := languageFromClass(attrVal(codeNode, "class")); l != "" {
			lang = l
		}
	}
	if l := languageFromClass(attrVal(n, "class")); l != "" && lang == e.opts.CodeLanguage {
		lang = l
	}
	content := textContent(src)
	content = strings.ReplaceAll(content, "\r\n", "\n")

	if v := e.visitor; v != nil && v.OnCodeBlock != nil {
		ctx := e.ctxFor(n, depth)
		if e.resolve(v.OnCodeBlock(ctx, lang, content), n, types.NodePre, out, out.Len()) == actHandled {
			return
		}
	}

	if st.convertAsInline {
		out.WriteString(strings.TrimSpace(strings.ReplaceAll(content, "\n", " ")))
		return
	}

	content = strings.Trim(content, "\n")
	out.ensureBlockSep()

	if e.opts.CodeBlockStyle == types.CodeBlockIndented {
		out.WriteString(Indent(content, 1, "    "))
		out.WriteString("\n\n")
		return
	}

	fenceChar := byte('`')
	if e.opts.CodeBlockStyle == types.CodeBlockTilde {
		fenceChar = '~'
	}
	fenceLen := 3
	if run := longestRun(content, fenceChar); run >= fenceLen {
		fenceLen = run + 1
	}
	fence := strings.Repeat(string(fenceChar), fenceLen)

	out.WriteString(fence + lang + "\n")
	out.WriteString(content)
	if content != "" {
		out.WriteByte('\n')
	}
	out.WriteString(fence + "\n\n")
}

// languageFromClass extracts a code language from class values like
// "language-go" or "lang-python".
func languageFromClass(class string) string {
	for _, c := range strings.Fields(class) {
		if strings.HasPrefix(c, "language-") {
			return strings.TrimPrefix(c, "language-")
		}
		if strings.HasPrefix(c, "lang-") {
			return strings.TrimPrefix(c, "lang-")
		}
	}
	return ""
}

func longestRun(s string, c byte) int {
	longest, run := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest
}

func (e *Engine) renderLineBreak(n *html.Node, out *buffer, st state, depth int) {
	if v := e.visitor; v != nil && v.OnLineBreak != nil {
		ctx := e.ctxFor(n, depth)
		if e.resolve(v.OnLineBreak(ctx), n, types.NodeBR, out, out.Len()) == actHandled {
			return
		}
	}
	switch {
	case st.inHeading || st.convertAsInline:
		out.WriteByte(' ')
	case st.inTableCell:
		// cells join their lines with <br> or spaces afterwards
		out.WriteByte('\n')
	case e.opts.NewlineStyle == types.NewlineBackslash:
		out.TrimTrailingSpaces()
		out.WriteString("\\\n")
	default:
		out.TrimTrailingSpaces()
		out.WriteString("  \n")
	}
}

func (e *Engine) renderHorizontalRule(n *html.Node, out *buffer, st state, depth int) {
	if v := e.visitor; v != nil && v.OnHorizontalRule != nil {
		ctx := e.ctxFor(n, depth)
		if e.resolve(v.OnHorizontalRule(ctx), n, types.NodeHR, out, out.Len()) == actHandled {
			return
		}
	}
	if st.convertAsInline {
		return
	}
	out.ensureBlockSep()
	out.WriteString("---\n\n")
}

func (e *Engine) renderSemanticBlock(n *html.Node, out *buffer, st state, depth int) {
	if st.convertAsInline || st.inTableCell || st.inListItem {
		e.walkChildren(n, out, st, depth)
		return
	}
	content := e.renderBuffered(n, st, depth+1)
	if e.err != nil {
		return
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return
	}
	out.ensureBlockSep()
	out.WriteString(content)
	out.WriteString("\n\n")
}

func (e *Engine) renderDetails(n *html.Node, out *buffer, st state, depth int) {
	if v := e.visitor; v != nil && v.OnDetails != nil {
		ctx := e.ctxFor(n, depth)
		if e.resolve(v.OnDetails(ctx, hasAttr(n, "open")), n, types.NodeDetails, out, out.Len()) == actHandled {
			return
		}
	}
	e.renderSemanticBlock(n, out, st, depth)
}

func (e *Engine) renderSummary(n *html.Node, out *buffer, st state, depth int) {
	text := strings.TrimSpace(e.renderBuffered(n, st, depth+1))
	if e.err != nil {
		return
	}
	if v := e.visitor; v != nil && v.OnSummary != nil {
		ctx := e.ctxFor(n, depth)
		if e.resolve(v.OnSummary(ctx, text), n, types.NodeSummary, out, out.Len()) == actHandled {
			return
		}
	}
	if text == "" {
		return
	}
	if st.convertAsInline {
		out.WriteString(text)
		return
	}
	out.ensureBlockSep()
	out.WriteString("**" + text + "**\n\n")
}

func (e *Engine) renderFigure(n *html.Node, out *buffer, st state, depth int) {
	if v := e.visitor; v != nil && v.OnFigureStart != nil {
		ctx := e.ctxFor(n, depth)
		if e.resolve(v.OnFigureStart(ctx), n, types.NodeFigure, out, out.Len()) == actHandled {
			return
		}
	}
	start := out.Len()
	e.renderSemanticBlock(n, out, st, depth)
	if e.err != nil {
		return
	}
	if v := e.visitor; v != nil && v.OnFigureEnd != nil {
		ctx := e.ctxFor(n, depth)
		e.resolve(v.OnFigureEnd(ctx, out.Since(start)), n, types.NodeFigure, out, start)
	}
}

func (e *Engine) renderFigcaption(n *html.Node, out *buffer, st state, depth int) {
	text := strings.TrimSpace(e.renderBuffered(n, st, depth+1))
	if e.err != nil {
		return
	}
	if v := e.visitor; v != nil && v.OnFigcaption != nil {
		ctx := e.ctxFor(n, depth)
		if e.resolve(v.OnFigcaption(ctx, text), n, types.NodeFigcaption, out, out.Len()) == actHandled {
			return
		}
	}
	if text == "" {
		return
	}
	if st.convertAsInline || st.inTableCell {
		out.WriteString(text)
		return
	}
	out.ensureBlockSep()
	out.WriteString("*" + text + "*\n\n")
}

// renderCaption handles a table caption encountered outside renderTable.
func (e *Engine) renderCaption(n *html.Node, out *buffer, st state, depth int) {
	text := strings.TrimSpace(e.renderBuffered(n, st, depth+1))
	if text == "" || e.err != nil {
		return
	}
	if st.convertAsInline || st.inTableCell {
		out.WriteString(text)
		return
	}
	out.ensureBlockSep()
	out.WriteString("*" + text + "*\n\n")
}

func (e *Engine) renderSpan(n *html.Node, out *buffer, st state, depth int) {
	// hOCR word spans need a separating space; OCR output has no text
	// nodes between them.
	if hasClass(n, "ocrx_word") {
		if out.Len() > 0 && !out.endsWithWhitespace() {
			out.WriteByte(' ')
		}
	}
	e.walkChildren(n, out, st, depth)
}

func (e *Engine) renderCustomElement(tag string, n *html.Node, out *buffer, st state, depth int) {
	if v := e.visitor; v != nil && v.OnCustomElement != nil {
		var raw buffer
		e.writeRawHTML(n, &raw)
		ctx := e.ctxFor(n, depth)
		if e.resolve(v.OnCustomElement(ctx, tag, raw.String()), n, types.NodeCustom, out, out.Len()) == actHandled {
			return
		}
	}
	e.walkChildren(n, out, st, depth)
}

// renderTextContent emits the node's raw text, trimmed. Used for elements
// with no Markdown equivalent whose text is still worth keeping.
func (e *Engine) renderTextContent(n *html.Node, out *buffer, st state, depth int) {
	text := strings.TrimSpace(CollapseSpaces(textContent(n)))
	if text == "" {
		return
	}
	out.WriteString(text)
}
