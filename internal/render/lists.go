package render

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/htmldown/htmldown/types"
)

func (e *Engine) renderList(tag string, n *html.Node, out *buffer, st state, depth int) {
	ordered := tag == "ol"

	if st.convertAsInline || st.inTableCell {
		// lists flatten to space-joined item text in inline contexts
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && strings.ToLower(c.Data) == "li" {
				text := strings.TrimSpace(e.renderBuffered(c, st, depth+1))
				if text == "" {
					continue
				}
				if out.Len() > 0 && !out.endsWithWhitespace() {
					out.WriteByte(' ')
				}
				out.WriteString(text)
			}
		}
		return
	}

	if v := e.visitor; v != nil && v.OnListStart != nil {
		ctx := e.ctxFor(n, depth)
		if e.resolve(v.OnListStart(ctx, ordered), n, types.NodeList, out, out.Len()) == actHandled {
			return
		}
	}

	if st.inListItem || st.inList {
		// nested list: continue on the next line under the parent item
		out.TrimTrailingSpaces()
		if out.Len() > 0 && !out.EndsWith("\n") {
			out.WriteByte('\n')
		}
	} else {
		out.ensureBlockSep()
	}
	start := out.Len()

	lst := st
	lst.inList = true
	lst.inListItem = false
	lst.inOrderedList = ordered
	lst.listDepth = st.listDepth + 1
	lst.looseList = isLooseList(n)

	counter := 0
	if ordered {
		if s := attrVal(n, "start"); s != "" {
			if v, err := strconv.Atoi(s); err == nil {
				counter = v - 1
			}
		}
	}

	bullet := "*"
	if len(e.opts.Bullets) > 0 {
		bullet = string(e.opts.Bullets[(lst.listDepth-1)%len(e.opts.Bullets)])
	}

	first := true
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch strings.ToLower(c.Data) {
		case "li":
			counter++
			marker := bullet + " "
			if ordered {
				marker = fmt.Sprintf("%d. ", counter)
			}
			e.renderOneListItem(c, out, lst, depth+1, ordered, marker, first)
			first = false
		case "ul", "ol", "menu":
			// lists nested directly under a list adopt this nesting level
			e.renderList(strings.ToLower(c.Data), c, out, lst, depth+1)
		}
		if e.err != nil {
			return
		}
	}

	if !st.inList && !st.inListItem {
		if !out.EndsWith("\n\n") && out.EndsWith("\n") {
			out.WriteByte('\n')
		}
	}

	if v := e.visitor; v != nil && v.OnListEnd != nil {
		ctx := e.ctxFor(n, depth)
		e.resolve(v.OnListEnd(ctx, ordered, out.Since(start)), n, types.NodeList, out, start)
	}
}

func (e *Engine) renderOneListItem(n *html.Node, out *buffer, lst state, depth int, ordered bool, marker string, first bool) {
	ist := lst
	ist.inListItem = true
	ist.inList = false
	ist.prevItemHadBlocks = false

	out.TrimTrailingSpaces()
	if out.Len() > 0 && !out.EndsWith("\n") {
		out.WriteByte('\n')
	}
	if lst.looseList && !first && !out.EndsWith("\n\n") && out.Len() > 0 {
		out.WriteByte('\n')
	}

	indentUnit := strings.Repeat(" ", e.opts.ListIndentWidth)
	if e.opts.ListIndentType == types.ListIndentTabs {
		indentUnit = "\t"
	}
	indent := strings.Repeat(indentUnit, lst.listDepth-1)

	if cb := findCheckbox(n); cb != nil {
		if hasAttr(cb, "checked") {
			marker += "[x] "
		} else {
			marker += "[ ] "
		}
	}

	itemStart := out.Len()
	out.WriteString(indent)
	out.WriteString(marker)
	contentStart := out.Len()

	e.walkChildren(n, out, ist, depth)
	if e.err != nil {
		return
	}

	if v := e.visitor; v != nil && v.OnListItem != nil {
		text := strings.TrimSpace(out.Since(contentStart))
		ctx := e.ctxFor(n, depth)
		res := v.OnListItem(ctx, ordered, strings.TrimRight(marker, " "), text)
		if res != nil && res.ResultType == types.VisitCustom {
			out.Truncate(itemStart)
			out.WriteString(indent + marker + res.CustomOutput + "\n")
			return
		}
		if e.resolve(res, n, types.NodeListItem, out, itemStart) == actHandled {
			return
		}
	}

	out.TrimTrailingSpaces()
	if !out.EndsWith("\n") {
		out.WriteByte('\n')
	}
}

// isLooseList reports whether any item contains block-level children,
// which makes the whole list render with blank lines between items.
func isLooseList(n *html.Node) bool {
	for li := n.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != html.ElementNode || strings.ToLower(li.Data) != "li" {
			continue
		}
		for c := li.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch strings.ToLower(c.Data) {
			case "p", "div", "blockquote", "pre", "table":
				return true
			}
		}
	}
	return false
}

// findCheckbox locates a checkbox input inside a list item, looking
// through labels but not into nested lists.
func findCheckbox(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch strings.ToLower(c.Data) {
		case "ul", "ol", "menu":
			continue
		case "input":
			if strings.EqualFold(attrVal(c, "type"), "checkbox") {
				return c
			}
		default:
			if found := findCheckbox(c); found != nil {
				return found
			}
		}
	}
	return nil
}

func (e *Engine) renderListItem(n *html.Node, out *buffer, st state, depth int) {
	// stray li outside a list renders as a single unordered item
	lst := st
	if lst.listDepth == 0 {
		lst.listDepth = 1
	}
	lst.looseList = false
	bullet := "*"
	if len(e.opts.Bullets) > 0 {
		bullet = string(e.opts.Bullets[(lst.listDepth-1)%len(e.opts.Bullets)])
	}
	e.renderOneListItem(n, out, lst, depth, false, bullet+" ", false)
}

func (e *Engine) renderDefinitionList(n *html.Node, out *buffer, st state, depth int) {
	if st.convertAsInline || st.inTableCell {
		e.walkChildren(n, out, st, depth)
		return
	}
	if v := e.visitor; v != nil && v.OnDefinitionListStart != nil {
		ctx := e.ctxFor(n, depth)
		if e.resolve(v.OnDefinitionListStart(ctx), n, types.NodeDefinitionList, out, out.Len()) == actHandled {
			return
		}
	}
	out.ensureBlockSep()
	start := out.Len()
	e.walkChildren(n, out, st, depth)
	if e.err != nil {
		return
	}
	if !out.EndsWith("\n\n") && out.EndsWith("\n") {
		out.WriteByte('\n')
	}
	if v := e.visitor; v != nil && v.OnDefinitionListEnd != nil {
		ctx := e.ctxFor(n, depth)
		e.resolve(v.OnDefinitionListEnd(ctx, out.Since(start)), n, types.NodeDefinitionList, out, start)
	}
}

func (e *Engine) renderDefinitionTerm(n *html.Node, out *buffer, st state, depth int) {
	text := strings.TrimSpace(e.renderBuffered(n, st, depth+1))
	if e.err != nil {
		return
	}
	if v := e.visitor; v != nil && v.OnDefinitionTerm != nil {
		ctx := e.ctxFor(n, depth)
		if e.resolve(v.OnDefinitionTerm(ctx, text), n, types.NodeDefinitionTerm, out, out.Len()) == actHandled {
			return
		}
	}
	if text == "" {
		return
	}
	out.TrimTrailingSpaces()
	if out.Len() > 0 && !out.EndsWith("\n") {
		out.WriteByte('\n')
	}
	out.WriteString(text + "\n")
}

func (e *Engine) renderDefinitionDescription(n *html.Node, out *buffer, st state, depth int) {
	text := strings.TrimSpace(e.renderBuffered(n, st, depth+1))
	if e.err != nil {
		return
	}
	if v := e.visitor; v != nil && v.OnDefinitionDesc != nil {
		ctx := e.ctxFor(n, depth)
		if e.resolve(v.OnDefinitionDesc(ctx, text), n, types.NodeDefinitionDescription, out, out.Len()) == actHandled {
			return
		}
	}
	if text == "" {
		return
	}
	lines := strings.Split(text, "\n")
	out.WriteString(":   " + lines[0] + "\n")
	for _, line := range lines[1:] {
		if line == "" {
			out.WriteByte('\n')
			continue
		}
		out.WriteString("    " + line + "\n")
	}
	out.WriteByte('\n')
}
