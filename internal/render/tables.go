package render

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/htmldown/htmldown/types"
)

func (e *Engine) renderTable(n *html.Node, out *buffer, st state, depth int) {
	if st.convertAsInline {
		e.walkChildren(n, out, st, depth)
		return
	}

	if v := e.visitor; v != nil && v.OnTableStart != nil {
		ctx := e.ctxFor(n, depth)
		if e.resolve(v.OnTableStart(ctx), n, types.NodeTable, out, out.Len()) == actHandled {
			return
		}
	}

	out.ensureBlockSep()
	start := out.Len()

	rowIndex := 0
	rowspans := make(map[int]int)

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch strings.ToLower(c.Data) {
		case "caption":
			text := strings.TrimSpace(e.renderBuffered(c, st, depth+1))
			if text != "" {
				out.WriteString("*" + text + "*\n\n")
			}
		case "thead", "tbody", "tfoot":
			for r := c.FirstChild; r != nil; r = r.NextSibling {
				if r.Type == html.ElementNode && strings.ToLower(r.Data) == "tr" {
					e.renderTableRow(r, out, st, depth+1, rowIndex, rowspans)
					rowIndex++
				}
				if e.err != nil {
					return
				}
			}
		case "tr":
			e.renderTableRow(c, out, st, depth+1, rowIndex, rowspans)
			rowIndex++
		}
		if e.err != nil {
			return
		}
	}

	if rowIndex > 0 {
		out.WriteByte('\n')
	}

	if v := e.visitor; v != nil && v.OnTableEnd != nil {
		ctx := e.ctxFor(n, depth)
		e.resolve(v.OnTableEnd(ctx, out.Since(start)), n, types.NodeTable, out, start)
	}
}

func (e *Engine) renderTableRow(n *html.Node, out *buffer, st state, depth int, rowIndex int, rowspans map[int]int) {
	var cellNodes []*html.Node
	isHeader := rowIndex == 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch strings.ToLower(c.Data) {
		case "th", "td":
			cellNodes = append(cellNodes, c)
		}
	}

	// Render cells with rowspan placeholders interleaved at the columns a
	// spanning cell from an earlier row still occupies.
	var cells []string
	col := 0
	next := 0
	for {
		if remaining, ok := rowspans[col]; ok && remaining > 0 {
			cells = append(cells, "")
			if remaining == 1 {
				delete(rowspans, col)
			} else {
				rowspans[col] = remaining - 1
			}
			col++
			continue
		}
		if next >= len(cellNodes) {
			break
		}
		cell := cellNodes[next]
		next++
		text := e.renderTableCell(cell, st, depth)
		if e.err != nil {
			return
		}
		colspan := spanAttr(cell, "colspan")
		if rs := spanAttr(cell, "rowspan"); rs > 1 {
			rowspans[col] = rs - 1
		}
		cells = append(cells, text)
		for i := 1; i < colspan; i++ {
			cells = append(cells, "")
		}
		col += colspan
	}

	if v := e.visitor; v != nil && v.OnTableRow != nil {
		ctx := e.ctxFor(n, depth)
		if e.resolve(v.OnTableRow(ctx, cells, isHeader), n, types.NodeTableRow, out, out.Len()) == actHandled {
			return
		}
	}

	out.WriteByte('|')
	for _, cell := range cells {
		out.WriteByte(' ')
		out.WriteString(cell)
		out.WriteString(" |")
	}
	out.WriteByte('\n')

	if isHeader {
		total := len(cells)
		if total == 0 {
			total = 1
		}
		out.WriteString("| ")
		for i := 0; i < total; i++ {
			if i > 0 {
				out.WriteString(" | ")
			}
			out.WriteString("---")
		}
		out.WriteString(" |\n")
	}
}

func (e *Engine) renderTableCell(n *html.Node, st state, depth int) string {
	cst := st
	cst.inTableCell = true
	text := strings.TrimSpace(e.renderBuffered(n, cst, depth+1))
	if e.opts.BrInTables {
		var parts []string
		for _, p := range strings.Split(text, "\n") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		text = strings.Join(parts, "<br>")
	} else {
		text = strings.ReplaceAll(text, "\n", " ")
		text = CollapseSpaces(text)
	}
	return text
}

func spanAttr(n *html.Node, key string) int {
	v, err := strconv.Atoi(attrVal(n, key))
	if err != nil || v < 1 {
		return 1
	}
	return v
}
