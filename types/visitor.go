package types

// VisitResultType indicates how the converter proceeds after a visitor
// callback returns.
type VisitResultType int

const (
	// VisitContinue uses the default conversion behavior for the node.
	VisitContinue VisitResultType = iota
	// VisitCustom replaces the node's entire rendered output with
	// the callback's string. Children are not rendered separately.
	VisitCustom
	// VisitSkip omits the node and all descendants from the output and
	// from metadata collection.
	VisitSkip
	// VisitPreserveHTML emits the node's original HTML verbatim.
	VisitPreserveHTML
	// VisitAbort halts the conversion and reports the callback's message.
	VisitAbort
)

// VisitResult is returned by visitor callbacks to control conversion.
// The zero value means Continue. A nil *VisitResult also means Continue.
type VisitResult struct {
	ResultType   VisitResultType
	CustomOutput string // Used when ResultType is VisitCustom
	ErrorMessage string // Used when ResultType is VisitAbort
}

// Continue returns a result that keeps the default rendering.
func Continue() *VisitResult {
	return &VisitResult{ResultType: VisitContinue}
}

// Custom returns a result that substitutes output for the node.
func Custom(output string) *VisitResult {
	return &VisitResult{ResultType: VisitCustom, CustomOutput: output}
}

// Skip returns a result that omits the node and its subtree.
func Skip() *VisitResult {
	return &VisitResult{ResultType: VisitSkip}
}

// PreserveHTML returns a result that keeps the node's source HTML.
func PreserveHTML() *VisitResult {
	return &VisitResult{ResultType: VisitPreserveHTML}
}

// Abort returns a result that stops the conversion with an error.
func Abort(message string) *VisitResult {
	return &VisitResult{ResultType: VisitAbort, ErrorMessage: message}
}

// NodeContext describes the node a visitor callback is observing.
// The Attributes map is a copy; mutating it has no effect on conversion.
type NodeContext struct {
	NodeType      NodeType
	TagName       string
	Attributes    map[string]string
	Depth         int
	IndexInParent int
	ParentTag     string
	IsInline      bool
}

// Visitor holds optional callbacks invoked during conversion. Nil fields
// are skipped with no overhead beyond the nil check, so a zero Visitor
// behaves exactly like no visitor at all.
//
// For container elements (lists, tables, definition lists, figures) the
// start callback fires before children render and the end callback receives
// the fully rendered default output. Leaf callbacks receive the node's
// extracted arguments (for example href, text and title for a link) instead
// of raw markup.
type Visitor struct {
	// Generic hooks, fired for every element.
	OnElementStart func(ctx *NodeContext) *VisitResult
	OnElementEnd   func(ctx *NodeContext, output string) *VisitResult

	// Text nodes. This is the most frequent callback.
	OnText func(ctx *NodeContext, text string) *VisitResult

	// Links and images. title is empty when absent.
	OnLink  func(ctx *NodeContext, href, text, title string) *VisitResult
	OnImage func(ctx *NodeContext, src, alt, title string) *VisitResult

	// Headings h1 through h6. id is empty when absent.
	OnHeading func(ctx *NodeContext, level int, text, id string) *VisitResult

	// Code. lang is empty when no language is known.
	OnCodeBlock  func(ctx *NodeContext, lang, code string) *VisitResult
	OnCodeInline func(ctx *NodeContext, code string) *VisitResult

	// Lists.
	OnListStart func(ctx *NodeContext, ordered bool) *VisitResult
	OnListItem  func(ctx *NodeContext, ordered bool, marker, text string) *VisitResult
	OnListEnd   func(ctx *NodeContext, ordered bool, output string) *VisitResult

	// Tables.
	OnTableStart func(ctx *NodeContext) *VisitResult
	OnTableRow   func(ctx *NodeContext, cells []string, isHeader bool) *VisitResult
	OnTableEnd   func(ctx *NodeContext, output string) *VisitResult

	// Blockquotes. depth is the quote nesting level, starting at 1.
	OnBlockquote func(ctx *NodeContext, content string, depth int) *VisitResult

	// Inline formatting.
	OnStrong        func(ctx *NodeContext, text string) *VisitResult
	OnEmphasis      func(ctx *NodeContext, text string) *VisitResult
	OnStrikethrough func(ctx *NodeContext, text string) *VisitResult
	OnUnderline     func(ctx *NodeContext, text string) *VisitResult
	OnSubscript     func(ctx *NodeContext, text string) *VisitResult
	OnSuperscript   func(ctx *NodeContext, text string) *VisitResult
	OnMark          func(ctx *NodeContext, text string) *VisitResult

	// Breaks.
	OnLineBreak      func(ctx *NodeContext) *VisitResult
	OnHorizontalRule func(ctx *NodeContext) *VisitResult

	// Custom elements (web components) and unknown tags. html is the
	// node's source markup.
	OnCustomElement func(ctx *NodeContext, tagName, html string) *VisitResult

	// Definition lists.
	OnDefinitionListStart func(ctx *NodeContext) *VisitResult
	OnDefinitionTerm      func(ctx *NodeContext, text string) *VisitResult
	OnDefinitionDesc      func(ctx *NodeContext, text string) *VisitResult
	OnDefinitionListEnd   func(ctx *NodeContext, output string) *VisitResult

	// Forms.
	OnForm   func(ctx *NodeContext, action, method string) *VisitResult
	OnInput  func(ctx *NodeContext, inputType, name, value string) *VisitResult
	OnButton func(ctx *NodeContext, text string) *VisitResult

	// Media. src is empty when the element has no usable source.
	OnAudio  func(ctx *NodeContext, src string) *VisitResult
	OnVideo  func(ctx *NodeContext, src string) *VisitResult
	OnIframe func(ctx *NodeContext, src string) *VisitResult

	// Semantic HTML5.
	OnDetails     func(ctx *NodeContext, open bool) *VisitResult
	OnSummary     func(ctx *NodeContext, text string) *VisitResult
	OnFigureStart func(ctx *NodeContext) *VisitResult
	OnFigcaption  func(ctx *NodeContext, text string) *VisitResult
	OnFigureEnd   func(ctx *NodeContext, output string) *VisitResult
}
