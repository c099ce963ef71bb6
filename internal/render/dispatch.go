package render

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/htmldown/htmldown/types"
)

type visitAction int

const (
	// actContinue keeps the default rendering for the node.
	actContinue visitAction = iota
	// actHandled means the visit result already determined the output.
	actHandled
)

// resolve interprets a visitor result for node n. Anything other than
// Continue replaces the buffer content after start: Custom with the
// callback's output, Skip with nothing, PreserveHTML with the node's
// source markup. Error records the abort on the engine.
func (e *Engine) resolve(res *types.VisitResult, n *html.Node, nt types.NodeType, out *buffer, start int) visitAction {
	if res == nil || res.ResultType == types.VisitContinue {
		return actContinue
	}
	switch res.ResultType {
	case types.VisitCustom:
		out.Truncate(start)
		out.WriteString(res.CustomOutput)
	case types.VisitSkip:
		out.Truncate(start)
	case types.VisitPreserveHTML:
		out.Truncate(start)
		e.writeRawHTML(n, out)
	case types.VisitAbort:
		tag := ""
		if n != nil && n.Type == html.ElementNode {
			tag = n.Data
		}
		e.err = &types.VisitError{NodeType: nt, TagName: tag, Message: res.ErrorMessage}
	}
	return actHandled
}

// skipResult reports whether a visitor result removes the node. A skipped
// node is also kept out of the collected metadata; Custom and PreserveHTML
// only replace output, so their nodes are still observed.
func skipResult(res *types.VisitResult) bool {
	return res != nil && res.ResultType == types.VisitSkip
}

// ctxFor builds the NodeContext handed to visitor callbacks. Attributes
// are copied so callbacks can hold on to the map.
func (e *Engine) ctxFor(n *html.Node, depth int) *types.NodeContext {
	ctx := &types.NodeContext{Depth: depth}
	switch n.Type {
	case html.TextNode:
		ctx.NodeType = types.NodeText
	case html.ElementNode:
		tag := strings.ToLower(n.Data)
		ctx.TagName = tag
		ctx.NodeType = types.NodeTypeForTag(tag)
		ctx.IsInline = isInlineTag(tag)
		if len(n.Attr) > 0 {
			ctx.Attributes = make(map[string]string, len(n.Attr))
			for _, a := range n.Attr {
				ctx.Attributes[a.Key] = a.Val
			}
		}
	}
	if p := n.Parent; p != nil && p.Type == html.ElementNode {
		ctx.ParentTag = strings.ToLower(p.Data)
	}
	idx := 0
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode || s.Type == html.TextNode {
			idx++
		}
	}
	ctx.IndexInParent = idx
	return ctx
}

// writeRawHTML serializes the node back to its source markup.
func (e *Engine) writeRawHTML(n *html.Node, out *buffer) {
	_ = html.Render(out, n)
}

// Write makes buffer an io.Writer for html.Render.
func (w *buffer) Write(p []byte) (int, error) {
	w.b = append(w.b, p...)
	return len(p), nil
}

var inlineTags = map[string]bool{
	"a": true, "abbr": true, "b": true, "bdi": true, "bdo": true,
	"br": true, "cite": true, "code": true, "data": true, "dfn": true,
	"em": true, "i": true, "img": true, "ins": true, "kbd": true,
	"mark": true, "q": true, "rb": true, "rp": true, "rt": true,
	"ruby": true, "s": true, "samp": true, "small": true, "span": true,
	"strike": true, "strong": true, "sub": true, "sup": true, "time": true,
	"u": true, "var": true, "wbr": true, "del": true, "label": true,
	"button": true, "input": true, "select": true, "output": true,
	"meter": true, "progress": true,
}

func isInlineTag(tag string) bool {
	return inlineTags[tag]
}

// attrVal returns the value of the named attribute, or "".
func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// attrLookup returns the value of the named attribute and whether it was
// present at all.
func attrLookup(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasAttr(n *html.Node, key string) bool {
	_, ok := attrLookup(n, key)
	return ok
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attrVal(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// textContent returns the concatenated text of the node and its
// descendants, unescaped and unnormalized.
func textContent(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return b.String()
}

// findElement returns the first element with the given tag in document
// order, or nil.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// firstChildElement returns the first child element with the given tag.
func firstChildElement(n *html.Node, tag string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && strings.EqualFold(c.Data, tag) {
			return c
		}
	}
	return nil
}
