// Package hocr reconstructs tables from hOCR (HTML-based OCR) output.
// hOCR carries no table markup, only per-word bounding boxes, so rows and
// columns have to be recovered from word positions on the page.
package hocr

import (
	"sort"
	"strconv"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// Word is one recognized word with its bounding box and OCR confidence.
type Word struct {
	Text       string
	X1, Y1     float64
	X2, Y2     float64
	Confidence float64
}

// CenterX returns the horizontal center of the word's bounding box.
func (w Word) CenterX() float64 { return (w.X1 + w.X2) / 2 }

// CenterY returns the vertical center of the word's bounding box.
func (w Word) CenterY() float64 { return (w.Y1 + w.Y2) / 2 }

// Height returns the height of the word's bounding box.
func (w Word) Height() float64 { return w.Y2 - w.Y1 }

// IsHOCRDocument reports whether the document is hOCR output: an
// ocr-system or ocr-capabilities meta tag, or any element carrying one of
// the hOCR class names.
func IsHOCRDocument(doc *html.Node) bool {
	var check func(*html.Node) bool
	check = func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if strings.ToLower(n.Data) == "meta" {
				name := attr(n, "name")
				if name == "ocr-system" || name == "ocr-capabilities" {
					return true
				}
			}
			if class := attr(n, "class"); class != "" {
				for _, c := range []string{"ocr_page", "ocrx_word", "ocr_carea", "ocr_par", "ocr_line"} {
					if strings.Contains(class, c) {
						return true
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if check(c) {
				return true
			}
		}
		return false
	}
	return check(doc)
}

// ExtractWords collects the ocrx_word spans under n, dropping words whose
// confidence falls below minConfidence.
func ExtractWords(n *html.Node, minConfidence float64) []Word {
	var words []Word
	for _, span := range htmlquery.Find(n, "//span[contains(@class,'ocrx_word')]") {
		title := attr(span, "title")
		x1, y1, x2, y2, ok := ParseBBox(title)
		if !ok {
			continue
		}
		text := strings.TrimSpace(htmlquery.InnerText(span))
		if text == "" {
			continue
		}
		conf := ParseConfidence(title)
		if conf < minConfidence {
			continue
		}
		words = append(words, Word{Text: text, X1: x1, Y1: y1, X2: x2, Y2: y2, Confidence: conf})
	}
	return words
}

// ParseBBox reads the bounding box from an hOCR title attribute, e.g.
// "bbox 100 200 300 250; x_wconf 95".
func ParseBBox(title string) (x1, y1, x2, y2 float64, ok bool) {
	for _, part := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) != 5 || fields[0] != "bbox" {
			continue
		}
		vals := make([]float64, 4)
		for i, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return 0, 0, 0, 0, false
			}
			vals[i] = v
		}
		return vals[0], vals[1], vals[2], vals[3], true
	}
	return 0, 0, 0, 0, false
}

// ParseConfidence reads the x_wconf value from an hOCR title attribute.
// Missing confidence counts as fully confident.
func ParseConfidence(title string) float64 {
	for _, part := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) == 2 && fields[0] == "x_wconf" {
			if v, err := strconv.ParseFloat(fields[1], 64); err == nil {
				return v
			}
		}
	}
	return 100
}

// Table is a reconstructed grid of cell texts.
type Table struct {
	Cells [][]string // Cells[row][col]
}

// Rows returns the number of rows in the table.
func (t *Table) Rows() int { return len(t.Cells) }

// Columns returns the number of columns in the table.
func (t *Table) Columns() int {
	if len(t.Cells) == 0 {
		return 0
	}
	return len(t.Cells[0])
}

// Reconstruct builds a table from word positions. Columns come from
// clustering horizontal centers within columnThreshold; rows from
// clustering vertical centers within the median word height scaled by
// rowThresholdRatio. Every word lands in the cell whose row and column
// centers are nearest. Empty rows and columns are dropped.
func Reconstruct(words []Word, columnThreshold, rowThresholdRatio float64) *Table {
	if len(words) == 0 {
		return &Table{}
	}
	if columnThreshold <= 0 {
		columnThreshold = 50
	}
	if rowThresholdRatio <= 0 {
		rowThresholdRatio = 0.5
	}

	colCenters := detectColumns(words, columnThreshold)
	rowCenters := detectRows(words, rowThresholdRatio)

	grid := make([][][]Word, len(rowCenters))
	for i := range grid {
		grid[i] = make([][]Word, len(colCenters))
	}
	for _, w := range words {
		r := nearest(rowCenters, w.CenterY())
		c := nearest(colCenters, w.CenterX())
		grid[r][c] = append(grid[r][c], w)
	}

	cells := make([][]string, len(grid))
	for r, row := range grid {
		cells[r] = make([]string, len(row))
		for c, cell := range row {
			sort.Slice(cell, func(i, j int) bool { return cell[i].X1 < cell[j].X1 })
			texts := make([]string, len(cell))
			for i, w := range cell {
				texts[i] = w.Text
			}
			cells[r][c] = strings.Join(texts, " ")
		}
	}

	return &Table{Cells: pruneEmpty(cells)}
}

func detectColumns(words []Word, threshold float64) []float64 {
	centers := make([]float64, len(words))
	for i, w := range words {
		centers[i] = w.CenterX()
	}
	return clusterCenters(centers, threshold)
}

func detectRows(words []Word, ratio float64) []float64 {
	heights := make([]float64, len(words))
	centers := make([]float64, len(words))
	for i, w := range words {
		heights[i] = w.Height()
		centers[i] = w.CenterY()
	}
	threshold := median(heights) * ratio
	if threshold <= 0 {
		threshold = 1
	}
	return clusterCenters(centers, threshold)
}

// clusterCenters groups sorted values whose gap to the previous value is
// within threshold and returns the median of each group.
func clusterCenters(values []float64, threshold float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	var centers []float64
	group := []float64{sorted[0]}
	for _, v := range sorted[1:] {
		if v-group[len(group)-1] <= threshold {
			group = append(group, v)
			continue
		}
		centers = append(centers, median(group))
		group = []float64{v}
	}
	centers = append(centers, median(group))
	return centers
}

func median(sortedOrNot []float64) float64 {
	if len(sortedOrNot) == 0 {
		return 0
	}
	s := append([]float64(nil), sortedOrNot...)
	sort.Float64s(s)
	mid := len(s) / 2
	if len(s)%2 == 1 {
		return s[mid]
	}
	return (s[mid-1] + s[mid]) / 2
}

func nearest(centers []float64, v float64) int {
	best := 0
	bestDist := -1.0
	for i, c := range centers {
		d := c - v
		if d < 0 {
			d = -d
		}
		if bestDist < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// pruneEmpty removes rows and columns that hold no text at all.
func pruneEmpty(cells [][]string) [][]string {
	var rows [][]string
	for _, row := range cells {
		empty := true
		for _, c := range row {
			if c != "" {
				empty = false
				break
			}
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil
	}

	cols := len(rows[0])
	keep := make([]bool, cols)
	for c := 0; c < cols; c++ {
		for _, row := range rows {
			if c < len(row) && row[c] != "" {
				keep[c] = true
				break
			}
		}
	}
	var pruned [][]string
	for _, row := range rows {
		var nr []string
		for c, v := range row {
			if c < len(keep) && keep[c] {
				nr = append(nr, v)
			}
		}
		pruned = append(pruned, nr)
	}
	return pruned
}

// Markdown renders the table as a Markdown pipe table with a header
// separator after the first row. Literal pipes in cell text are escaped.
func (t *Table) Markdown() string {
	if t.Rows() == 0 {
		return ""
	}
	var b strings.Builder
	for r, row := range t.Cells {
		b.WriteByte('|')
		for _, cell := range row {
			b.WriteByte(' ')
			b.WriteString(strings.ReplaceAll(cell, "|", `\|`))
			b.WriteString(" |")
		}
		b.WriteByte('\n')
		if r == 0 {
			b.WriteString("| ")
			for i := 0; i < len(row); i++ {
				if i > 0 {
					b.WriteString(" | ")
				}
				b.WriteString("---")
			}
			b.WriteString(" |\n")
		}
	}
	return b.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
