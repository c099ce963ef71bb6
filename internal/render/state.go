package render

// state carries the traversal context down the DOM walk. It is passed by
// value so child modifications never leak back into the parent scope.
type state struct {
	inCode            bool
	inOrderedList     bool
	lastWasDT         bool
	inTableCell       bool
	convertAsInline   bool
	inListItem        bool
	inList            bool
	looseList         bool
	prevItemHadBlocks bool
	inHeading         bool
	inParagraph       bool
	inRuby            bool
	headingTag        string
	listCounter       int
	listDepth         int
	blockquoteDepth   int
}
