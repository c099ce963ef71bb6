package htmldown_test

import (
	"fmt"

	"github.com/htmldown/htmldown"
)

func Example() {
	markdown, err := htmldown.Convert("<h1>Hello World</h1><p>This is <strong>Markdown</strong> now.</p>")
	if err != nil {
		panic(err)
	}
	fmt.Println(markdown)
	// Output:
	// # Hello World
	//
	// This is **Markdown** now.
}

func ExampleNew() {
	conv := htmldown.New(
		htmldown.WithHeadingStyle(htmldown.HeadingUnderlined),
		htmldown.WithBullets("-"),
	)
	markdown, err := conv.ConvertString("<h1>Shopping</h1><ul><li>Bread</li><li>Milk</li></ul>")
	if err != nil {
		panic(err)
	}
	fmt.Println(markdown)
	// Output:
	// Shopping
	// ========
	//
	// - Bread
	// - Milk
}

func ExampleConvertWithVisitor() {
	v := &htmldown.Visitor{
		OnLink: func(ctx *htmldown.NodeContext, href, text, title string) *htmldown.VisitResult {
			return htmldown.Custom(text)
		},
	}
	markdown, err := htmldown.ConvertWithVisitor(`<p>See the <a href="/docs">documentation</a>.</p>`, v)
	if err != nil {
		panic(err)
	}
	fmt.Println(markdown)
	// Output:
	// See the documentation.
}

func ExampleConvertWithMetadata() {
	input := `<html><head><title>My Page</title></head>
	<body><h1>My Page</h1><p><a href="mailto:jo@example.com">mail me</a></p></body></html>`

	res, err := htmldown.ConvertWithMetadata(input)
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Metadata.Document.Title)
	for _, l := range res.Metadata.Links {
		fmt.Println(l.Href, l.Type)
	}
	// Output:
	// My Page
	// mailto:jo@example.com email
}
