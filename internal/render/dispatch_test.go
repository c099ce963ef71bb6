package render

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/htmldown/htmldown/types"
)

func renderWithVisitor(t *testing.T, input string, v *types.Visitor) (string, error) {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	eng := New(types.DefaultOptions())
	eng.SetVisitor(v)
	return eng.Render(doc)
}

func TestVisitorCustomHeading(t *testing.T) {
	v := &types.Visitor{
		OnHeading: func(ctx *types.NodeContext, level int, text, id string) *types.VisitResult {
			return types.Custom("# CUSTOM")
		},
	}
	got, err := renderWithVisitor(t, "<h1>Original</h1>", v)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "# CUSTOM") {
		t.Errorf("custom output missing: %q", got)
	}
	if strings.Contains(got, "Original") {
		t.Errorf("default output leaked: %q", got)
	}
}

func TestVisitorHeadingInInlineContext(t *testing.T) {
	v := &types.Visitor{
		OnHeading: func(ctx *types.NodeContext, level int, text, id string) *types.VisitResult {
			return types.Custom("CUSTOM")
		},
	}
	doc, err := html.Parse(strings.NewReader("<h1>Original</h1>"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	opts := types.DefaultOptions()
	opts.ConvertAsInline = true
	eng := New(opts)
	eng.SetVisitor(v)
	got, err := eng.Render(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "CUSTOM") {
		t.Errorf("custom output missing: %q", got)
	}
	if strings.Contains(got, "Original") {
		t.Errorf("default output leaked: %q", got)
	}
}

func TestVisitorHeadingInTableCell(t *testing.T) {
	v := &types.Visitor{
		OnHeading: func(ctx *types.NodeContext, level int, text, id string) *types.VisitResult {
			return types.Custom("CELL")
		},
	}
	got, err := renderWithVisitor(t,
		"<table><tr><td><h3>Original</h3></td><td>plain</td></tr></table>", v)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "| CELL |") {
		t.Errorf("custom output missing: %q", got)
	}
	if strings.Contains(got, "Original") {
		t.Errorf("default output leaked: %q", got)
	}
}

func TestVisitorSkipSubtree(t *testing.T) {
	v := &types.Visitor{
		OnElementStart: func(ctx *types.NodeContext) *types.VisitResult {
			if ctx.TagName == "aside" {
				return types.Skip()
			}
			return types.Continue()
		},
	}
	got, err := renderWithVisitor(t, "<p>keep</p><aside><p>drop</p><a href='/x'>link</a></aside>", v)
	if err != nil {
		t.Fatal(err)
	}
	if got != "keep\n" {
		t.Errorf("got %q", got)
	}
}

func TestVisitorPreserveHTML(t *testing.T) {
	v := &types.Visitor{
		OnElementStart: func(ctx *types.NodeContext) *types.VisitResult {
			if ctx.TagName == "table" {
				return types.PreserveHTML()
			}
			return types.Continue()
		},
	}
	got, err := renderWithVisitor(t, "<table><tr><td>x</td></tr></table>", v)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "<table>") || !strings.Contains(got, "<td>x</td>") {
		t.Errorf("source markup missing: %q", got)
	}
}

func TestVisitorAbort(t *testing.T) {
	v := &types.Visitor{
		OnLink: func(ctx *types.NodeContext, href, text, title string) *types.VisitResult {
			return types.Abort("forbidden link")
		},
	}
	got, err := renderWithVisitor(t, "<p>before</p><p><a href='/x'>x</a></p><p>after</p>", v)
	if err == nil {
		t.Fatal("expected error")
	}
	var ve *types.VisitError
	if !errors.As(err, &ve) {
		t.Fatalf("expected VisitError, got %T", err)
	}
	if ve.Message != "forbidden link" || ve.TagName != "a" {
		t.Errorf("unexpected error details: %+v", ve)
	}
	// No partial output on abort.
	if got != "" {
		t.Errorf("partial output returned: %q", got)
	}
}

func TestVisitorElementEndOverride(t *testing.T) {
	var seen string
	v := &types.Visitor{
		OnElementEnd: func(ctx *types.NodeContext, output string) *types.VisitResult {
			if ctx.TagName == "p" {
				seen = output
				return types.Custom("REPLACED\n\n")
			}
			return types.Continue()
		},
	}
	got, err := renderWithVisitor(t, "<p>original text</p>", v)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(seen, "original text") {
		t.Errorf("end hook did not receive default output: %q", seen)
	}
	if got != "REPLACED\n" {
		t.Errorf("got %q", got)
	}
}

func TestVisitorOnText(t *testing.T) {
	v := &types.Visitor{
		OnText: func(ctx *types.NodeContext, text string) *types.VisitResult {
			if strings.Contains(text, "secret") {
				return types.Custom("[redacted]")
			}
			return types.Continue()
		},
	}
	got, err := renderWithVisitor(t, "<p>the secret word</p>", v)
	if err != nil {
		t.Fatal(err)
	}
	if got != "[redacted]\n" {
		t.Errorf("got %q", got)
	}
}

func TestVisitorListItemCustom(t *testing.T) {
	v := &types.Visitor{
		OnListItem: func(ctx *types.NodeContext, ordered bool, marker, text string) *types.VisitResult {
			if text == "b" {
				return types.Custom("B!")
			}
			return types.Continue()
		},
	}
	got, err := renderWithVisitor(t, "<ul><li>a</li><li>b</li></ul>", v)
	if err != nil {
		t.Fatal(err)
	}
	if got != "* a\n* B!\n" {
		t.Errorf("got %q", got)
	}
}

func TestVisitorNodeContext(t *testing.T) {
	var ctxs []types.NodeContext
	v := &types.Visitor{
		OnElementStart: func(ctx *types.NodeContext) *types.VisitResult {
			ctxs = append(ctxs, *ctx)
			return types.Continue()
		},
	}
	_, err := renderWithVisitor(t, `<div id="outer"><p>one <em>two</em></p></div>`, v)
	if err != nil {
		t.Fatal(err)
	}

	var div, p, em *types.NodeContext
	for i := range ctxs {
		switch ctxs[i].TagName {
		case "div":
			div = &ctxs[i]
		case "p":
			p = &ctxs[i]
		case "em":
			em = &ctxs[i]
		}
	}
	if div == nil || p == nil || em == nil {
		t.Fatalf("missing contexts: %+v", ctxs)
	}
	if div.Attributes["id"] != "outer" {
		t.Errorf("div attributes: %+v", div.Attributes)
	}
	if p.ParentTag != "div" {
		t.Errorf("p parent = %q", p.ParentTag)
	}
	if em.ParentTag != "p" || !em.IsInline {
		t.Errorf("em context: %+v", em)
	}
	if em.NodeType != types.NodeEm {
		t.Errorf("em node type = %v", em.NodeType)
	}
	// em follows the text node "one ", so it is the second child.
	if em.IndexInParent != 1 {
		t.Errorf("em index = %d", em.IndexInParent)
	}
}

func TestVisitorLinkArguments(t *testing.T) {
	var gotHref, gotText, gotTitle string
	v := &types.Visitor{
		OnLink: func(ctx *types.NodeContext, href, text, title string) *types.VisitResult {
			gotHref, gotText, gotTitle = href, text, title
			return types.Continue()
		},
	}
	_, err := renderWithVisitor(t, `<p><a href="/docs" title="Docs">read me</a></p>`, v)
	if err != nil {
		t.Fatal(err)
	}
	if gotHref != "/docs" || gotText != "read me" || gotTitle != "Docs" {
		t.Errorf("link args = (%q, %q, %q)", gotHref, gotText, gotTitle)
	}
}

func TestVisitorNilFieldsAreNoOps(t *testing.T) {
	plain := mustRender(t, "<h1>T</h1><p>x</p>", types.DefaultOptions())

	doc, _ := html.Parse(strings.NewReader("<h1>T</h1><p>x</p>"))
	eng := New(types.DefaultOptions())
	eng.SetVisitor(&types.Visitor{})
	withEmpty, err := eng.Render(doc)
	if err != nil {
		t.Fatal(err)
	}
	if withEmpty != plain {
		t.Errorf("empty visitor changed output: %q vs %q", withEmpty, plain)
	}
}

func TestVisitorTableRow(t *testing.T) {
	var rows [][]string
	var headers []bool
	v := &types.Visitor{
		OnTableRow: func(ctx *types.NodeContext, cells []string, isHeader bool) *types.VisitResult {
			rows = append(rows, cells)
			headers = append(headers, isHeader)
			return types.Continue()
		},
	}
	_, err := renderWithVisitor(t, "<table><tr><th>A</th></tr><tr><td>1</td></tr></table>", v)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[0][0] != "A" || rows[1][0] != "1" {
		t.Errorf("rows = %+v", rows)
	}
	if !headers[0] || headers[1] {
		t.Errorf("headers = %+v", headers)
	}
}
