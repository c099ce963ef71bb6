package types

// NodeType is a coarse classification of HTML nodes used for visitor
// dispatch. Every element the renderer understands maps to one of these;
// unknown elements (web components, vendor tags) map to NodeCustom.
type NodeType int

const (
	// Text and generic
	NodeText NodeType = iota
	NodeElement

	// Block elements
	NodeHeading
	NodeParagraph
	NodeDiv
	NodeBlockquote
	NodePre
	NodeHR

	// Lists
	NodeList
	NodeListItem
	NodeDefinitionList
	NodeDefinitionTerm
	NodeDefinitionDescription

	// Tables
	NodeTable
	NodeTableRow
	NodeTableCell
	NodeTableHeader
	NodeTableBody
	NodeTableHead
	NodeTableFoot

	// Inline formatting
	NodeLink
	NodeImage
	NodeStrong
	NodeEm
	NodeCode
	NodeStrikethrough
	NodeUnderline
	NodeSubscript
	NodeSuperscript
	NodeMark
	NodeSmall
	NodeBR
	NodeSpan

	// Semantic HTML5
	NodeArticle
	NodeSection
	NodeNav
	NodeAside
	NodeHeader
	NodeFooter
	NodeMain
	NodeFigure
	NodeFigcaption
	NodeTime
	NodeDetails
	NodeSummary

	// Forms
	NodeForm
	NodeInput
	NodeSelect
	NodeOption
	NodeButton
	NodeTextarea
	NodeLabel
	NodeFieldset
	NodeLegend

	// Media
	NodeAudio
	NodeVideo
	NodePicture
	NodeSource
	NodeIframe
	NodeSVG
	NodeCanvas

	// Advanced and semantic inline
	NodeRuby
	NodeRT
	NodeRP
	NodeAbbr
	NodeKbd
	NodeSamp
	NodeVar
	NodeCite
	NodeQ
	NodeDel
	NodeIns
	NodeData
	NodeMeter
	NodeProgress
	NodeOutput
	NodeTemplate
	NodeSlot

	// Document structure
	NodeHTML
	NodeHead
	NodeBody
	NodeTitle
	NodeMeta
	NodeLinkTag
	NodeStyle
	NodeScript
	NodeBase

	// Custom or unknown elements
	NodeCustom
)

var nodeTypeByTag = map[string]NodeType{
	"h1": NodeHeading, "h2": NodeHeading, "h3": NodeHeading,
	"h4": NodeHeading, "h5": NodeHeading, "h6": NodeHeading,
	"p": NodeParagraph, "div": NodeDiv, "blockquote": NodeBlockquote,
	"pre": NodePre, "hr": NodeHR,
	"ul": NodeList, "ol": NodeList, "menu": NodeList, "li": NodeListItem,
	"dl": NodeDefinitionList, "dt": NodeDefinitionTerm, "dd": NodeDefinitionDescription,
	"table": NodeTable, "tr": NodeTableRow, "td": NodeTableCell,
	"th": NodeTableHeader, "tbody": NodeTableBody, "thead": NodeTableHead,
	"tfoot": NodeTableFoot,
	"a":     NodeLink, "img": NodeImage,
	"strong": NodeStrong, "b": NodeStrong,
	"em": NodeEm, "i": NodeEm,
	"code": NodeCode,
	"s":    NodeStrikethrough, "del": NodeDel, "strike": NodeStrikethrough,
	"u": NodeUnderline, "ins": NodeIns,
	"sub": NodeSubscript, "sup": NodeSuperscript,
	"mark": NodeMark, "small": NodeSmall, "br": NodeBR, "span": NodeSpan,
	"article": NodeArticle, "section": NodeSection, "nav": NodeNav,
	"aside": NodeAside, "header": NodeHeader, "footer": NodeFooter,
	"main": NodeMain, "figure": NodeFigure, "figcaption": NodeFigcaption,
	"time": NodeTime, "details": NodeDetails, "summary": NodeSummary,
	"form": NodeForm, "input": NodeInput, "select": NodeSelect,
	"option": NodeOption, "button": NodeButton, "textarea": NodeTextarea,
	"label": NodeLabel, "fieldset": NodeFieldset, "legend": NodeLegend,
	"audio": NodeAudio, "video": NodeVideo, "picture": NodePicture,
	"source": NodeSource, "iframe": NodeIframe, "svg": NodeSVG,
	"canvas": NodeCanvas,
	"ruby":   NodeRuby, "rt": NodeRT, "rp": NodeRP,
	"abbr": NodeAbbr, "kbd": NodeKbd, "samp": NodeSamp, "var": NodeVar,
	"cite": NodeCite, "q": NodeQ, "data": NodeData,
	"meter": NodeMeter, "progress": NodeProgress, "output": NodeOutput,
	"template": NodeTemplate, "slot": NodeSlot,
	"html": NodeHTML, "head": NodeHead, "body": NodeBody,
	"title": NodeTitle, "meta": NodeMeta, "link": NodeLinkTag,
	"style": NodeStyle, "script": NodeScript, "base": NodeBase,
}

// NodeTypeForTag returns the NodeType for an HTML tag name.
// Tags the renderer has no dedicated rule for map to NodeCustom when they
// contain a hyphen (custom elements) and NodeElement otherwise.
func NodeTypeForTag(tag string) NodeType {
	if t, ok := nodeTypeByTag[tag]; ok {
		return t
	}
	for i := 0; i < len(tag); i++ {
		if tag[i] == '-' {
			return NodeCustom
		}
	}
	return NodeElement
}

// String returns the lower-case name of the node type.
func (t NodeType) String() string {
	if int(t) >= 0 && int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "unknown"
}

var nodeTypeNames = []string{
	"text", "element", "heading", "paragraph", "div", "blockquote", "pre",
	"hr", "list", "list_item", "definition_list", "definition_term",
	"definition_description", "table", "table_row", "table_cell",
	"table_header", "table_body", "table_head", "table_foot", "link",
	"image", "strong", "em", "code", "strikethrough", "underline",
	"subscript", "superscript", "mark", "small", "br", "span", "article",
	"section", "nav", "aside", "header", "footer", "main", "figure",
	"figcaption", "time", "details", "summary", "form", "input", "select",
	"option", "button", "textarea", "label", "fieldset", "legend", "audio",
	"video", "picture", "source", "iframe", "svg", "canvas", "ruby", "rt",
	"rp", "abbr", "kbd", "samp", "var", "cite", "q", "del", "ins", "data",
	"meter", "progress", "output", "template", "slot", "html", "head",
	"body", "title", "meta", "link_tag", "style", "script", "base",
	"custom",
}
