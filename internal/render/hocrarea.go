package render

import (
	"golang.org/x/net/html"

	"github.com/htmldown/htmldown/internal/hocr"
)

// renderHOCRArea attempts spatial table reconstruction for an hOCR page or
// content area. It reports whether a table was emitted; when the words do
// not form at least two columns the caller falls back to normal block
// rendering so single-column OCR text flows as paragraphs.
func (e *Engine) renderHOCRArea(n *html.Node, out *buffer, st state, depth int) bool {
	if st.convertAsInline || st.inTableCell {
		return false
	}

	words := hocr.ExtractWords(n, e.opts.HOCR.MinConfidence)
	if len(words) == 0 {
		return false
	}

	table := hocr.Reconstruct(words, e.opts.HOCR.ColumnThreshold, e.opts.HOCR.RowThresholdRatio)
	if table.Columns() < 2 || table.Rows() < 1 {
		return false
	}

	out.ensureBlockSep()
	out.WriteString(table.Markdown())
	out.WriteByte('\n')
	return true
}
