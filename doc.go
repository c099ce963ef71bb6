/*
Package htmldown converts HTML documents to Markdown with per-node control
over the conversion through a visitor callback protocol. In the same pass it
can extract structured document metadata, collect images embedded as data
URIs or inline SVG, and reconstruct tables from hOCR output by clustering
word bounding boxes into rows and columns.

Basic Usage:

	import "github.com/htmldown/htmldown"

	markdown, err := htmldown.Convert("<h1>Hello World</h1>")
	if err != nil {
	    // Handle error
	}
	fmt.Println(markdown) // "# Hello World"

Converter with Options:

	conv := htmldown.New(
	    htmldown.WithHeadingStyle(htmldown.HeadingATXClosed),
	    htmldown.WithBullets("-"),
	    htmldown.WithWrap(100),
	)
	markdown, err := conv.ConvertString(htmlString)

Visitors intercept any node before its default rendering:

	visitor := &htmldown.Visitor{
	    OnLink: func(ctx *htmldown.NodeContext, href, text, title string) *htmldown.VisitResult {
	        if strings.HasPrefix(href, "javascript:") {
	            return htmldown.Skip()
	        }
	        return htmldown.Continue()
	    },
	}
	markdown, err := htmldown.ConvertWithVisitor(htmlString, visitor)

Metadata mode returns the document's headers, links, images and structured
data alongside the Markdown:

	result, err := htmldown.ConvertWithMetadata(htmlString)
	for _, link := range result.Metadata.Links {
	    fmt.Printf("%s -> %s (%s)\n", link.Text, link.Href, link.Type)
	}

Features:

  - Single-pass DOM traversal with configurable Markdown dialect options
  - Visitor callbacks for every node type with Continue, Custom, Skip,
    PreserveHTML and Error outcomes
  - Document, header, link, image and structured data metadata extraction
  - Inline image extraction from data URIs and literal svg elements
  - Spatial table reconstruction for hOCR documents
*/
package htmldown
