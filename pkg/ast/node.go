// Package ast defines the markdown syntax tree. A Document is an ordered
// list of Block nodes; blocks that carry formatted content own ordered
// Inline children. Every node owns an exact source span, and concatenating
// the block spans of a document reproduces the parsed input byte for byte.
package ast

import "github.com/yaklabco/mdedit/pkg/span"

// NodeKind classifies the type of an AST node.
type NodeKind uint16

// Node kinds for block-level and inline-level elements.
const (
	// Block-level nodes.
	KindHeading NodeKind = iota
	KindParagraph
	KindThematicBreak
	KindBlankLine
	KindFencedCode
	KindBlockquote
	KindUnorderedListItem
	KindOrderedListItem
	KindSetextHeading
	KindTable
	KindMathBlock
	KindFootnoteDefinition
	KindYamlFrontMatter
	KindTableOfContents

	// Inline-level nodes.
	KindPlainText
	KindBold
	KindItalic
	KindBoldItalic
	KindInlineCode
	KindStrikethrough
	KindHighlight
	KindSubscript
	KindSuperscript
	KindEscapedChar
	KindLink
	KindImage
	KindAutolink
	KindInlineMath
	KindFootnoteRef
	KindEmoji
)

// kindNames maps each kind to a stable debug name.
var kindNames = map[NodeKind]string{
	KindHeading:            "Heading",
	KindParagraph:          "Paragraph",
	KindThematicBreak:      "ThematicBreak",
	KindBlankLine:          "BlankLine",
	KindFencedCode:         "FencedCode",
	KindBlockquote:         "Blockquote",
	KindUnorderedListItem:  "UnorderedListItem",
	KindOrderedListItem:    "OrderedListItem",
	KindSetextHeading:      "SetextHeading",
	KindTable:              "Table",
	KindMathBlock:          "MathBlock",
	KindFootnoteDefinition: "FootnoteDefinition",
	KindYamlFrontMatter:    "YamlFrontMatter",
	KindTableOfContents:    "TableOfContents",
	KindPlainText:          "PlainText",
	KindBold:               "Bold",
	KindItalic:             "Italic",
	KindBoldItalic:         "BoldItalic",
	KindInlineCode:         "InlineCode",
	KindStrikethrough:      "Strikethrough",
	KindHighlight:          "Highlight",
	KindSubscript:          "Subscript",
	KindSuperscript:        "Superscript",
	KindEscapedChar:        "EscapedChar",
	KindLink:               "Link",
	KindImage:              "Image",
	KindAutolink:           "Autolink",
	KindInlineMath:         "InlineMath",
	KindFootnoteRef:        "FootnoteRef",
	KindEmoji:              "Emoji",
}

// String returns the debug name of the kind.
func (k NodeKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsBlock returns true for block-level node kinds.
func (k NodeKind) IsBlock() bool {
	return k <= KindTableOfContents
}

// IsInline returns true for inline-level node kinds.
func (k NodeKind) IsInline() bool {
	return k >= KindPlainText
}

// Node is a single node in the syntax tree. Nodes are immutable value
// objects produced by one parse call and discarded on the next.
type Node interface {
	Kind() NodeKind
	Span() span.Span
}

// Block is a structural, line-oriented unit.
type Block interface {
	Node
	blockNode()
}

// Inline is a character-span-level formatting unit nested within a block.
type Inline interface {
	Node
	inlineNode()
}
