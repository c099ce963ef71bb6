package render

import (
	"strings"

	"golang.org/x/net/html"
)

// Ruby annotations render as base text followed by parenthesized readings:
// <ruby>漢字<rt>kanji</rt></ruby> becomes 漢字(kanji). Both the interleaved
// pattern (base, rt, base, rt) and the grouped pattern (all bases, then all
// annotations, optionally an rtc container) occur in the wild and lay out
// differently.
func (e *Engine) renderRuby(n *html.Node, out *buffer, st state, depth int) {
	rst := st
	rst.inRuby = true

	interleaved, hasRTC := rubyShape(n)

	if interleaved {
		var base buffer
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch {
			case c.Type == html.ElementNode && strings.ToLower(c.Data) == "rt":
				var annotation buffer
				e.walk(c, &annotation, rst, depth+1)
				if base.Len() > 0 {
					out.WriteString(strings.TrimSpace(base.String()))
					base = buffer{}
				}
				out.WriteString(strings.TrimSpace(annotation.String()))
			case c.Type == html.ElementNode && strings.ToLower(c.Data) == "rp":
				// parentheses come from the rt rule
			default:
				e.walk(c, &base, rst, depth+1)
			}
			if e.err != nil {
				return
			}
		}
		if base.Len() > 0 {
			out.WriteString(strings.TrimSpace(base.String()))
		}
		return
	}

	var base buffer
	var rtc buffer
	var annotations []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			switch strings.ToLower(c.Data) {
			case "rt":
				var annotation buffer
				e.walk(c, &annotation, rst, depth+1)
				annotations = append(annotations, annotation.String())
				continue
			case "rtc":
				e.walk(c, &rtc, rst, depth+1)
				continue
			case "rp":
				continue
			}
		}
		e.walk(c, &base, rst, depth+1)
		if e.err != nil {
			return
		}
	}

	out.WriteString(strings.TrimSpace(base.String()))

	if len(annotations) > 0 {
		var joined strings.Builder
		for _, a := range annotations {
			joined.WriteString(strings.TrimSpace(a))
		}
		rtText := joined.String()
		if rtText != "" {
			if hasRTC && strings.TrimSpace(rtc.String()) != "" && len(annotations) > 1 {
				out.WriteString("(" + rtText + ")")
			} else {
				out.WriteString(rtText)
			}
		}
	}
	if t := strings.TrimSpace(rtc.String()); t != "" {
		out.WriteString(t)
	}
}

// rubyShape reports whether the ruby uses the interleaved base/annotation
// pattern and whether it contains an rtc container.
func rubyShape(n *html.Node) (interleaved, hasRTC bool) {
	sawRT := false
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			if sawRT && c.Type == html.TextNode && strings.TrimSpace(c.Data) != "" {
				interleaved = true
			}
			continue
		}
		switch strings.ToLower(c.Data) {
		case "rt":
			sawRT = true
		case "rtc":
			hasRTC = true
		case "rp":
		default:
			if sawRT {
				interleaved = true
			}
		}
	}
	return interleaved, hasRTC
}

func (e *Engine) renderRubyBase(n *html.Node, out *buffer, st state, depth int) {
	text := e.renderBuffered(n, st, depth+1)
	out.WriteString(strings.TrimSpace(text))
}

func (e *Engine) renderRubyText(n *html.Node, out *buffer, st state, depth int) {
	text := strings.TrimSpace(e.renderBuffered(n, st, depth+1))
	// an immediately preceding <rp> already opened the parenthesis
	if out.EndsWith("(") {
		out.WriteString(text)
		return
	}
	out.WriteString("(" + text + ")")
}

func (e *Engine) renderRubyParen(n *html.Node, out *buffer, st state, depth int) {
	text := strings.TrimSpace(e.renderBuffered(n, st, depth+1))
	if text != "" {
		out.WriteString(text)
	}
}
